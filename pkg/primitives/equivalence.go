package primitives

import "github.com/leinonen/goscheme/pkg/scheme"

func registerEquivalence(env *scheme.Environment) {
	define(env, func(args []scheme.Value) (scheme.Value, error) {
		if len(args) != 2 {
			return nil, arityError("eq?")
		}
		return scheme.Boolean(scheme.Eq(args[0], args[1])), nil
	}, "eq?")

	define(env, func(args []scheme.Value) (scheme.Value, error) {
		if len(args) != 2 {
			return nil, arityError("eqv?")
		}
		return scheme.Boolean(scheme.Eqv(args[0], args[1])), nil
	}, "eqv?")

	define(env, func(args []scheme.Value) (scheme.Value, error) {
		if len(args) != 2 {
			return nil, arityError("equal?")
		}
		return scheme.Boolean(scheme.Equal(args[0], args[1])), nil
	}, "equal?")

	define(env, unaryPredicate("atom?", func(v scheme.Value) bool { return scheme.IsAtom(v) }), "atom?")
	define(env, unaryPredicate("pair?", func(v scheme.Value) bool { return scheme.IsPair(v) }), "pair?")
	define(env, unaryPredicate("null?", func(v scheme.Value) bool { return scheme.IsNull(v) }), "null?")
	define(env, unaryPredicate("list?", func(v scheme.Value) bool { return scheme.IsList(v) }), "list?")
	define(env, unaryPredicate("symbol?", func(v scheme.Value) bool { return scheme.IsSymbol(v) }), "symbol?")
	define(env, unaryPredicate("not", func(v scheme.Value) bool { return !scheme.IsTruthy(v) }), "not")

	define(env, unaryPredicate("boolean?", func(v scheme.Value) bool {
		_, ok := v.(scheme.Boolean)
		return ok
	}), "boolean?")

	define(env, unaryPredicate("integer?", func(v scheme.Value) bool {
		_, ok := v.(scheme.Integer)
		return ok
	}), "integer?")

	define(env, unaryPredicate("number?", func(v scheme.Value) bool {
		switch v.(type) {
		case scheme.Integer, scheme.Float:
			return true
		default:
			return false
		}
	}), "number?")

	define(env, unaryPredicate("procedure?", func(v scheme.Value) bool {
		switch v.(type) {
		case *scheme.Primitive, *scheme.Closure:
			return true
		default:
			return false
		}
	}), "procedure?")

	define(env, unaryPredicate("eof-object?", func(v scheme.Value) bool {
		return v == scheme.EOF
	}), "eof-object?")
}

// unaryPredicate adapts a one-argument Go predicate into a primitive
// function, checking arity once instead of in every category file.
func unaryPredicate(name string, pred func(scheme.Value) bool) func([]scheme.Value) (scheme.Value, error) {
	return func(args []scheme.Value) (scheme.Value, error) {
		if len(args) != 1 {
			return nil, arityError(name)
		}
		return scheme.Boolean(pred(args[0])), nil
	}
}
