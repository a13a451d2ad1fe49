package scheme

// Special-form handlers. Each operates on the Evaluation's current
// expression (still the whole form, leading keyword included) and
// either completes it with SetValue or hands back a new (expr, env) for
// the driving loop to continue with via SetExpr — the latter is how tail
// positions avoid growing the host call stack. The dispatch table is
// built once, keyed by interned symbol identity, matching
// original_source/scheme.py's SPECIAL_FORMS map.

type specialFormHandler func(ev *Evaluation) error

var specialForms map[Symbol]specialFormHandler

func init() {
	specialForms = map[Symbol]specialFormHandler{
		Intern("quote"):  doQuote,
		Intern("lambda"): doLambda,
		Intern("if"):     doIf,
		Intern("and"):    doAnd,
		Intern("or"):     doOr,
		Intern("cond"):   doCond,
		Intern("case"):   doCase,
		Intern("set!"):   doSetBang,
		Intern("define"): doDefine,
		Intern("begin"):  doBegin,
		Intern("let"):    doLet,
		Intern("let*"):   doLetStar,
	}
}

var elseSym = Intern("else")
var arrowSym = Intern("=>")
var beginSym = Intern("begin")

func doQuote(ev *Evaluation) error {
	if err := checkForm(ev.expr, 2, 2); err != nil {
		return err
	}
	ev.SetValue(nth(ev.expr, 1))
	return nil
}

// makeSingleBody wraps multiple body expressions in (begin ...), or
// returns the lone expression unchanged if there is only one.
func makeSingleBody(exprs Value) Value {
	p := exprs.(*Pair)
	if IsNull(p.Cdr) {
		return p.Car
	}
	return Cons(beginSym, exprs)
}

func doLambda(ev *Evaluation) error {
	if err := checkForm(ev.expr, 3, -1); err != nil {
		return err
	}
	formals := nth(ev.expr, 1)
	if err := CheckFormals(formals); err != nil {
		return err
	}
	body := makeSingleBody(ev.expr.(*Pair).Cdr.(*Pair).Cdr)
	ev.SetValue(&Closure{Formals: formals, Body: body, Env: ev.env})
	return nil
}

func doIf(ev *Evaluation) error {
	if err := checkForm(ev.expr, 3, 4); err != nil {
		return err
	}
	cond, err := ev.FullEval(nth(ev.expr, 1), nil)
	if err != nil {
		return err
	}
	var ans Value
	if IsTruthy(cond) {
		ans = nth(ev.expr, 2)
	} else if ListLength(ev.expr) == 3 {
		ans = Unspecified
	} else {
		ans = nth(ev.expr, 3)
	}
	ev.SetExpr(ans, nil)
	return nil
}

func doAnd(ev *Evaluation) error {
	if err := checkForm(ev.expr, 1, -1); err != nil {
		return err
	}
	if ListLength(ev.expr) == 1 {
		ev.SetValue(True)
		return nil
	}
	rest := ev.expr.(*Pair).Cdr
	for IsPair(rest.(*Pair).Cdr) {
		p := rest.(*Pair)
		v, err := ev.FullEval(p.Car, nil)
		if err != nil {
			return err
		}
		if !IsTruthy(v) {
			ev.SetExpr(p.Car, nil)
			return nil
		}
		rest = p.Cdr
	}
	ev.SetExpr(rest.(*Pair).Car, nil)
	return nil
}

func doOr(ev *Evaluation) error {
	if err := checkForm(ev.expr, 1, -1); err != nil {
		return err
	}
	if ListLength(ev.expr) == 1 {
		ev.SetValue(False)
		return nil
	}
	rest := ev.expr.(*Pair).Cdr
	for IsPair(rest.(*Pair).Cdr) {
		p := rest.(*Pair)
		v, err := ev.FullEval(p.Car, nil)
		if err != nil {
			return err
		}
		if IsTruthy(v) {
			ev.SetExpr(p.Car, nil)
			return nil
		}
		rest = p.Cdr
	}
	ev.SetExpr(rest.(*Pair).Car, nil)
	return nil
}

// evalSeqAndSetLast evaluates every expression in exprSeq but the last,
// then hands the last one to SetExpr so it runs in tail position. An
// empty sequence hands back the given default instead.
func (ev *Evaluation) evalSeqAndSetLast(exprSeq Value, fallback Value) error {
	if IsNull(exprSeq) {
		ev.SetExpr(fallback, nil)
		return nil
	}
	for IsPair(exprSeq.(*Pair).Cdr) {
		p := exprSeq.(*Pair)
		if _, err := ev.FullEval(p.Car, nil); err != nil {
			return err
		}
		exprSeq = p.Cdr
	}
	ev.SetExpr(exprSeq.(*Pair).Car, nil)
	return nil
}

func doCond(ev *Evaluation) error {
	if err := checkForm(ev.expr, 1, -1); err != nil {
		return err
	}
	clauses := ev.expr.(*Pair).Cdr
	for IsPair(clauses) {
		clause := clauses.(*Pair).Car
		if err := checkForm(clause, 1, -1); err != nil {
			return err
		}
		clausePair := clause.(*Pair)

		var test Value
		isElse := clausePair.Car == elseSym
		if isElse {
			if err := checkForm(clause, 2, 2); err != nil {
				return &SchemeError{Message: "badly formed else clause"}
			}
			if !IsNull(clauses.(*Pair).Cdr) {
				return &SchemeError{Message: "else clause must be the last clause in cond"}
			}
			test = True
		} else {
			v, err := ev.FullEval(clausePair.Car, nil)
			if err != nil {
				return err
			}
			test = v
		}

		if IsTruthy(test) {
			switch {
			case ListLength(clause) == 1:
				ev.SetValue(test)
			case clausePair.Cdr.(*Pair).Car == arrowSym:
				rest := clausePair.Cdr.(*Pair).Cdr
				if IsNull(rest) {
					return &SchemeError{Message: "no function specified for 'cond'"}
				}
				proc := rest.(*Pair).Car
				ev.SetExpr(NewList(proc, test), nil)
			default:
				if err := ev.evalSeqAndSetLast(clausePair.Cdr, Unspecified); err != nil {
					return err
				}
			}
			return nil
		}
		clauses = clauses.(*Pair).Cdr
	}
	ev.SetValue(Unspecified)
	return nil
}

func doCase(ev *Evaluation) error {
	if err := checkForm(ev.expr, 2, -1); err != nil {
		return err
	}
	key, err := ev.FullEval(nth(ev.expr, 1), nil)
	if err != nil {
		return err
	}
	clauses := ev.expr.(*Pair).Cdr.(*Pair).Cdr

	for IsPair(clauses) {
		clause := clauses.(*Pair).Car
		if err := checkForm(clause, 1, -1); err != nil {
			return err
		}
		clausePair := clause.(*Pair)
		data := clausePair.Car
		exprSeq := clausePair.Cdr

		if data == elseSym {
			if err := checkForm(clause, 2, -1); err != nil {
				return &SchemeError{Message: "badly formed else clause"}
			}
			if !IsNull(clauses.(*Pair).Cdr) {
				return &SchemeError{Message: "else clause must be the last clause in cond"}
			}
			return ev.evalSeqAndSetLast(exprSeq, True)
		}

		matched := false
		if IsAtom(data) {
			matched = Eqv(key, data)
		} else {
			for d := data; IsPair(d); d = d.(*Pair).Cdr {
				if Eqv(key, d.(*Pair).Car) {
					matched = true
					break
				}
			}
		}
		if matched {
			return ev.evalSeqAndSetLast(exprSeq, True)
		}
		clauses = clauses.(*Pair).Cdr
	}
	ev.SetValue(Unspecified)
	return nil
}

func doSetBang(ev *Evaluation) error {
	if err := checkForm(ev.expr, 3, 3); err != nil {
		return err
	}
	toSet, ok := nth(ev.expr, 1).(Symbol)
	if !ok {
		return &SchemeError{Message: "first argument is not a symbol!"}
	}
	newValue, err := ev.FullEval(nth(ev.expr, 2), nil)
	if err != nil {
		return err
	}
	if err := ev.env.Assign(toSet, newValue); err != nil {
		return err
	}
	ev.SetValue(Unspecified)
	return nil
}

func doDefine(ev *Evaluation) error {
	if err := checkForm(ev.expr, 3, -1); err != nil {
		return err
	}
	target := nth(ev.expr, 1)

	if sym, ok := target.(Symbol); ok {
		if err := checkForm(ev.expr, 3, 3); err != nil {
			return err
		}
		value, err := ev.FullEval(nth(ev.expr, 2), nil)
		if err != nil {
			return err
		}
		ev.env.Define(sym, value)
		ev.SetValue(Unspecified)
		return nil
	}

	targetPair, ok := target.(*Pair)
	if !ok {
		return &SchemeError{Message: "bad argument to define"}
	}
	name, ok := targetPair.Car.(Symbol)
	if !ok {
		return &SchemeError{Message: "bad argument to define"}
	}
	if err := CheckFormals(targetPair.Cdr); err != nil {
		return err
	}
	body := makeSingleBody(ev.expr.(*Pair).Cdr.(*Pair).Cdr)
	ev.env.Define(name, &Closure{Formals: targetPair.Cdr, Body: body, Env: ev.env})
	ev.SetValue(Unspecified)
	return nil
}

func doBegin(ev *Evaluation) error {
	if err := checkForm(ev.expr, 2, -1); err != nil {
		return err
	}
	return ev.evalSeqAndSetLast(ev.expr.(*Pair).Cdr, Unspecified)
}

// doLet evaluates every init expression in the outer environment,
// left to right, then binds all of them simultaneously into one new
// frame — not sequentially, unlike let*. This is spec.md's documented
// open question about the original's reversed-list construction; the
// externally observable behavior is what matters and is preserved here.
func doLet(ev *Evaluation) error {
	if err := checkForm(ev.expr, 3, -1); err != nil {
		return err
	}
	bindings := nth(ev.expr, 1)
	if !IsList(bindings) {
		return &SchemeError{Message: "badly formed expression"}
	}

	var symbols []Symbol
	var values []Value
	for b := bindings; IsPair(b); b = b.(*Pair).Cdr {
		binding := b.(*Pair).Car
		if err := checkForm(binding, 2, 2); err != nil {
			return err
		}
		sym, ok := nth(binding, 0).(Symbol)
		if !ok {
			return &SchemeError{Message: "badly formed expression"}
		}
		v, err := ev.FullEval(nth(binding, 1), ev.env)
		if err != nil {
			return err
		}
		symbols = append(symbols, sym)
		values = append(values, v)
	}

	letFrame := NewEnvironment(ev.env)
	for i, sym := range symbols {
		letFrame.Define(sym, values[i])
	}

	body := ev.expr.(*Pair).Cdr.(*Pair).Cdr
	return ev.evalSeqAndSetLastInFrame(body, letFrame)
}

// doLetStar evaluates each init expression in the partially built
// frame, so later bindings see earlier ones.
func doLetStar(ev *Evaluation) error {
	if err := checkForm(ev.expr, 3, -1); err != nil {
		return err
	}
	bindings := nth(ev.expr, 1)
	if !IsList(bindings) {
		return &SchemeError{Message: "badly formed expression"}
	}

	letFrame := NewEnvironment(ev.env)
	for b := bindings; IsPair(b); b = b.(*Pair).Cdr {
		binding := b.(*Pair).Car
		if err := checkForm(binding, 2, 2); err != nil {
			return err
		}
		sym, ok := nth(binding, 0).(Symbol)
		if !ok {
			return &SchemeError{Message: "badly formed expression"}
		}
		v, err := ev.FullEval(nth(binding, 1), letFrame)
		if err != nil {
			return err
		}
		letFrame.Define(sym, v)
	}

	body := ev.expr.(*Pair).Cdr.(*Pair).Cdr
	return ev.evalSeqAndSetLastInFrame(body, letFrame)
}

// evalSeqAndSetLastInFrame is evalSeqAndSetLast but evaluates in frame
// instead of ev.env, and leaves the evaluation positioned in frame for
// its tail expression.
func (ev *Evaluation) evalSeqAndSetLastInFrame(exprSeq Value, frame *Environment) error {
	for IsPair(exprSeq.(*Pair).Cdr) {
		p := exprSeq.(*Pair)
		if _, err := ev.FullEval(p.Car, frame); err != nil {
			return err
		}
		exprSeq = p.Cdr
	}
	ev.SetExpr(exprSeq.(*Pair).Car, frame)
	return nil
}
