package scheme

// Evaluation holds the mutable (expression, environment, value) triple
// that drives one top-level eval. Exactly one of (expr, value) is live
// at a time: SetValue clears expr, SetExpr clears value. Tail-position
// special forms call SetExpr to hand the next step a new (expr, env)
// pair, reusing this same Evaluation rather than recursing on the host
// stack; non-tail subexpressions go back through Eval and get a fresh
// Evaluation of their own.
type Evaluation struct {
	expr  Value
	env   *Environment
	value Value
}

// NewEvaluation starts an evaluation of expr in env.
func NewEvaluation(expr Value, env *Environment) *Evaluation {
	return &Evaluation{expr: expr, env: env}
}

// SetValue completes the evaluation with value.
func (ev *Evaluation) SetValue(value Value) {
	ev.expr = nil
	ev.value = value
}

// SetExpr replaces the expression under evaluation. If env is non-nil it
// also replaces the environment; passing nil keeps the current one.
func (ev *Evaluation) SetExpr(expr Value, env *Environment) {
	ev.expr = expr
	ev.value = nil
	if env != nil {
		ev.env = env
	}
}

// Evaluated reports whether this evaluation has produced a value.
func (ev *Evaluation) Evaluated() bool {
	return ev.value != nil
}

// FullEval evaluates expr to completion in env (or ev.env if env is
// nil), via a brand-new Evaluation. This is how non-tail subexpressions
// recurse: on the host stack, not by reusing ev.
func (ev *Evaluation) FullEval(expr Value, env *Environment) (Value, error) {
	if env == nil {
		env = ev.env
	}
	return Eval(expr, env)
}

// Step advances the evaluation by one increment.
func (ev *Evaluation) Step() error {
	expr := ev.expr

	switch t := expr.(type) {
	case Symbol:
		v, err := ev.env.Lookup(t)
		if err != nil {
			return err
		}
		ev.SetValue(v)
		return nil

	case nilType:
		return &SchemeError{Message: "malformed list"}

	case *Pair:
		if !IsList(expr) {
			return &SchemeError{Message: "malformed list"}
		}
		if sym, ok := t.Car.(Symbol); ok {
			if handler, ok := specialForms[sym]; ok {
				return handler(ev)
			}
		}
		return ev.stepCall()

	default:
		// Atomic self-evaluating expression: numbers, booleans,
		// closures, primitives, unspecified, eof.
		ev.SetValue(expr)
		return nil
	}
}

// Eval drives Step until a value is produced and returns it. Every
// evaluator entry point, including non-tail subexpressions, goes
// through this function.
func Eval(expr Value, env *Environment) (Value, error) {
	ev := NewEvaluation(expr, env)
	for !ev.Evaluated() {
		if err := ev.Step(); err != nil {
			return nil, err
		}
	}
	return ev.value, nil
}

// checkForm validates that expr is a proper list whose length is at
// least min and, when max >= 0, no more than max.
func checkForm(expr Value, min, max int) error {
	if !IsList(expr) {
		return &SchemeError{Message: "badly formed expression"}
	}
	n := ListLength(expr)
	if n < min {
		return &SchemeError{Message: "too few operands in form"}
	}
	if max >= 0 && n > max {
		return &SchemeError{Message: "too many operands in form"}
	}
	return nil
}

// nth returns the n-th element (0-based) of the proper list v.
func nth(v Value, n int) Value {
	for n > 0 {
		v = v.(*Pair).Cdr
		n--
	}
	return v.(*Pair).Car
}
