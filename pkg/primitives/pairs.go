package primitives

import "github.com/leinonen/goscheme/pkg/scheme"

func registerPairs(env *scheme.Environment) {
	define(env, func(args []scheme.Value) (scheme.Value, error) {
		if len(args) != 2 {
			return nil, arityError("cons")
		}
		return scheme.Cons(args[0], args[1]), nil
	}, "cons")

	define(env, func(args []scheme.Value) (scheme.Value, error) {
		p, err := asPair("car", args)
		if err != nil {
			return nil, err
		}
		return p.Car, nil
	}, "car")

	define(env, func(args []scheme.Value) (scheme.Value, error) {
		p, err := asPair("cdr", args)
		if err != nil {
			return nil, err
		}
		return p.Cdr, nil
	}, "cdr")

	define(env, func(args []scheme.Value) (scheme.Value, error) {
		if len(args) != 2 {
			return nil, arityError("set-car!")
		}
		p, err := asPair("set-car!", args[:1])
		if err != nil {
			return nil, err
		}
		p.Car = args[1]
		return scheme.Unspecified, nil
	}, "set-car!")

	define(env, func(args []scheme.Value) (scheme.Value, error) {
		if len(args) != 2 {
			return nil, arityError("set-cdr!")
		}
		p, err := asPair("set-cdr!", args[:1])
		if err != nil {
			return nil, err
		}
		p.Cdr = args[1]
		return scheme.Unspecified, nil
	}, "set-cdr!")

	define(env, func(args []scheme.Value) (scheme.Value, error) {
		if len(args) != 1 {
			return nil, arityError("length")
		}
		n := scheme.ListLength(args[0])
		if n < 0 {
			return nil, scheme.NewError("length called on a non-list")
		}
		return scheme.Integer(n), nil
	}, "length")

	define(env, func(args []scheme.Value) (scheme.Value, error) {
		return scheme.NewList(args...), nil
	}, "list")

	define(env, func(args []scheme.Value) (scheme.Value, error) {
		if len(args) == 0 {
			return scheme.Nil, nil
		}
		var elems []scheme.Value
		for _, list := range args[:len(args)-1] {
			items, err := scheme.ListToSlice(list)
			if err != nil {
				return nil, scheme.NewError("append called on a non-list")
			}
			elems = append(elems, items...)
		}
		result := args[len(args)-1]
		for i := len(elems) - 1; i >= 0; i-- {
			result = scheme.Cons(elems[i], result)
		}
		return result, nil
	}, "append")
}

func asPair(name string, args []scheme.Value) (*scheme.Pair, error) {
	if len(args) != 1 {
		return nil, arityError(name)
	}
	p, ok := args[0].(*scheme.Pair)
	if !ok {
		return nil, scheme.NewError("the object " + scheme.Write(args[0]) + ", passed as the first argument to " + name + ", is not the correct type")
	}
	return p, nil
}
