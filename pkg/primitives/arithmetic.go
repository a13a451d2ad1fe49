package primitives

import (
	"math"

	"github.com/leinonen/goscheme/pkg/scheme"
)

// number is an operand that has already been checked as numeric. i and f
// both hold the value — i exactly when exact is true, f always, for the
// ops that only ever need a float64 (comparisons, floor/ceiling's
// rounding). Keeping i separate lets +/-/* accumulate in int64 and never
// round-trip an exact operand through float64, which would silently
// lose precision above 2^53.
type number struct {
	i     int64
	f     float64
	exact bool
}

func toNumber(name string, v scheme.Value) (number, error) {
	switch n := v.(type) {
	case scheme.Integer:
		return number{i: int64(n), f: float64(n), exact: true}, nil
	case scheme.Float:
		return number{f: float64(n), exact: false}, nil
	default:
		return number{}, scheme.NewError("the object " + scheme.Write(v) + ", passed as an argument to " + name + ", is not the correct type")
	}
}

func numbers(name string, args []scheme.Value) ([]number, error) {
	out := make([]number, len(args))
	for i, a := range args {
		n, err := toNumber(name, a)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func allExact(ns []number) bool {
	for _, n := range ns {
		if !n.exact {
			return false
		}
	}
	return true
}

// result converts a float64 back to Integer when every operand was
// exact and the value has no fractional part, else to Float. Used only
// where the computation itself must go through float64 (division,
// floor/ceiling's rounding); +/-/* compute their exact case directly in
// int64 instead of calling this.
func result(f float64, exact bool) scheme.Value {
	if exact && f == math.Trunc(f) {
		return scheme.Integer(int64(f))
	}
	return scheme.Float(f)
}

func registerArithmetic(env *scheme.Environment) {
	define(env, func(args []scheme.Value) (scheme.Value, error) {
		ns, err := numbers("+", args)
		if err != nil {
			return nil, err
		}
		if allExact(ns) {
			var sum int64
			for _, n := range ns {
				sum += n.i
			}
			return scheme.Integer(sum), nil
		}
		sum := 0.0
		for _, n := range ns {
			sum += n.f
		}
		return scheme.Float(sum), nil
	}, "+")

	define(env, func(args []scheme.Value) (scheme.Value, error) {
		ns, err := numbers("-", args)
		if err != nil {
			return nil, err
		}
		if len(ns) == 0 {
			return nil, arityError("-")
		}
		if allExact(ns) {
			if len(ns) == 1 {
				return scheme.Integer(-ns[0].i), nil
			}
			diff := ns[0].i
			for _, n := range ns[1:] {
				diff -= n.i
			}
			return scheme.Integer(diff), nil
		}
		if len(ns) == 1 {
			return scheme.Float(-ns[0].f), nil
		}
		diff := ns[0].f
		for _, n := range ns[1:] {
			diff -= n.f
		}
		return scheme.Float(diff), nil
	}, "-")

	define(env, func(args []scheme.Value) (scheme.Value, error) {
		ns, err := numbers("*", args)
		if err != nil {
			return nil, err
		}
		if allExact(ns) {
			prod := int64(1)
			for _, n := range ns {
				prod *= n.i
			}
			return scheme.Integer(prod), nil
		}
		prod := 1.0
		for _, n := range ns {
			prod *= n.f
		}
		return scheme.Float(prod), nil
	}, "*")

	define(env, func(args []scheme.Value) (scheme.Value, error) {
		ns, err := numbers("/", args)
		if err != nil {
			return nil, err
		}
		if len(ns) == 0 {
			return nil, arityError("/")
		}
		if len(ns) == 1 {
			if ns[0].f == 0 {
				return nil, scheme.NewError("division by zero signalled by /")
			}
			return result(1/ns[0].f, false), nil
		}
		quot := ns[0].f
		for _, n := range ns[1:] {
			if n.f == 0 {
				return nil, scheme.NewError("division by zero signalled by /")
			}
			quot /= n.f
		}
		return result(quot, false), nil
	}, "/")

	define(env, integerBinOp("quotient", func(a, b int64) (int64, error) {
		if b == 0 {
			return 0, scheme.NewError("division by zero signalled by quotient")
		}
		return a / b, nil
	}), "quotient")

	define(env, integerBinOp("remainder", func(a, b int64) (int64, error) {
		if b == 0 {
			return 0, scheme.NewError("division by zero signalled by remainder")
		}
		return a % b, nil
	}), "remainder")

	define(env, integerBinOp("modulo", func(a, b int64) (int64, error) {
		if b == 0 {
			return 0, scheme.NewError("division by zero signalled by modulo")
		}
		m := a % b
		if m != 0 && (m < 0) != (b < 0) {
			m += b
		}
		return m, nil
	}), "modulo")

	define(env, func(args []scheme.Value) (scheme.Value, error) {
		if len(args) != 1 {
			return nil, arityError("floor")
		}
		n, err := toNumber("floor", oneArg(args))
		if err != nil {
			return nil, err
		}
		if n.exact {
			return scheme.Integer(n.i), nil
		}
		return result(math.Floor(n.f), false), nil
	}, "floor")

	define(env, func(args []scheme.Value) (scheme.Value, error) {
		if len(args) != 1 {
			return nil, arityError("ceiling")
		}
		n, err := toNumber("ceiling", oneArg(args))
		if err != nil {
			return nil, err
		}
		if n.exact {
			return scheme.Integer(n.i), nil
		}
		return result(math.Ceil(n.f), false), nil
	}, "ceiling")

	define(env, comparison("<", func(a, b float64) bool { return a < b }), "<")
	define(env, comparison(">", func(a, b float64) bool { return a > b }), ">")
	define(env, comparison("<=", func(a, b float64) bool { return a <= b }), "<=")
	define(env, comparison(">=", func(a, b float64) bool { return a >= b }), ">=")
	define(env, comparison("=", func(a, b float64) bool { return a == b }), "=")
}

// oneArg returns args[0], or Nil if args is empty; the caller still
// checks len(args) itself so the arity error names the right primitive.
func oneArg(args []scheme.Value) scheme.Value {
	if len(args) == 0 {
		return scheme.Nil
	}
	return args[0]
}

func integerBinOp(name string, op func(a, b int64) (int64, error)) func([]scheme.Value) (scheme.Value, error) {
	return func(args []scheme.Value) (scheme.Value, error) {
		if len(args) != 2 {
			return nil, arityError(name)
		}
		a, ok1 := args[0].(scheme.Integer)
		b, ok2 := args[1].(scheme.Integer)
		if !ok1 || !ok2 {
			return nil, scheme.NewError(name + " requires integer arguments")
		}
		v, err := op(int64(a), int64(b))
		if err != nil {
			return nil, err
		}
		return scheme.Integer(v), nil
	}
}

func comparison(name string, cmp func(a, b float64) bool) func([]scheme.Value) (scheme.Value, error) {
	return func(args []scheme.Value) (scheme.Value, error) {
		ns, err := numbers(name, args)
		if err != nil {
			return nil, err
		}
		for i := 1; i < len(ns); i++ {
			if !cmp(ns[i-1].f, ns[i].f) {
				return scheme.False, nil
			}
		}
		return scheme.True, nil
	}
}
