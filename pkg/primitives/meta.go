package primitives

import "github.com/leinonen/goscheme/pkg/scheme"

// registerMeta installs eval and apply. Both operate against the global
// environment: primitives receive only already-evaluated arguments, not
// a calling environment, so like the original's scm_eval they cannot see
// into a caller's lexical scope.
func registerMeta(env *scheme.Environment, ctx *Context) {
	define(env, func(args []scheme.Value) (scheme.Value, error) {
		if len(args) != 1 {
			return nil, arityError("eval")
		}
		return scheme.Eval(args[0], ctx.Global)
	}, "eval")

	define(env, func(args []scheme.Value) (scheme.Value, error) {
		if len(args) != 2 {
			return nil, arityError("apply")
		}
		argList, err := scheme.ListToSlice(args[1])
		if err != nil {
			return nil, scheme.NewError("apply's second argument must be a list")
		}
		return scheme.Apply(args[0], argList)
	}, "apply")
}
