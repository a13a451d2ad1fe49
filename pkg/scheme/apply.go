package scheme

// stepCall is the generic (non-special-form) call handler: it evaluates
// the operator and every operand left to right, then applies. Primitive
// procedures deposit their result directly; closures install their body
// and a freshly built call frame as the next step, so a closure call in
// tail position reuses this Evaluation instead of recursing.
func (ev *Evaluation) stepCall() error {
	expr := ev.expr.(*Pair)
	if err := checkForm(ev.expr, 1, -1); err != nil {
		return err
	}

	op, err := ev.FullEval(expr.Car, nil)
	if err != nil {
		return err
	}

	var args []Value
	for rest := expr.Cdr; IsPair(rest); rest = rest.(*Pair).Cdr {
		v, err := ev.FullEval(rest.(*Pair).Car, nil)
		if err != nil {
			return err
		}
		args = append(args, v)
	}

	return ev.applyStep(op, args)
}

// applyStep unifies primitive and closure application behind one
// protocol: primitives set a value, closures install a new (expr, env).
func (ev *Evaluation) applyStep(op Value, args []Value) error {
	switch fn := op.(type) {
	case *Primitive:
		result, err := fn.Fn(args)
		if err != nil {
			if se, ok := err.(*SchemeError); ok {
				return se
			}
			return &SchemeError{Message: fn.Name + " received an incorrect number of arguments"}
		}
		ev.SetValue(result)
		return nil

	case *Closure:
		frame, err := fn.Env.MakeCallFrame(fn.Formals, args)
		if err != nil {
			return err
		}
		ev.SetExpr(fn.Body, frame)
		return nil

	default:
		return &SchemeError{Message: Write(op) + " is not applicable"}
	}
}

// Apply calls op with the already-evaluated args and runs the resulting
// evaluation to completion. It is the non-tail entry point used by the
// `apply` primitive and by Go code embedding the evaluator.
func Apply(op Value, args []Value) (Value, error) {
	ev := NewEvaluation(nil, nil)
	if err := ev.applyStep(op, args); err != nil {
		return nil, err
	}
	for !ev.Evaluated() {
		if err := ev.Step(); err != nil {
			return nil, err
		}
	}
	return ev.value, nil
}
