package primitives

import (
	"strconv"

	"github.com/leinonen/goscheme/pkg/scheme"
)

// registerWords installs the Logo-flavored helpers the original carries
// alongside its list primitives: word/first/butfirst/last/butlast treat
// a symbol or number as a sequence of characters, and sentence flattens
// its arguments into one list the way Logo's `se` does.
func registerWords(env *scheme.Environment) {
	define(env, func(args []scheme.Value) (scheme.Value, error) {
		var out string
		for _, a := range args {
			s, ok := wordString(a)
			if !ok {
				return nil, scheme.NewError("word requires word (symbol or number) arguments")
			}
			out += s
		}
		return scheme.Intern(out), nil
	}, "word")

	define(env, func(args []scheme.Value) (scheme.Value, error) {
		v, err := oneArgChecked("first", args)
		if err != nil {
			return nil, err
		}
		if p, ok := v.(*scheme.Pair); ok {
			return p.Car, nil
		}
		s, ok := wordString(v)
		if !ok || s == "" {
			return nil, scheme.NewError("first called on an empty word or an improper value")
		}
		return charValue(s[:1]), nil
	}, "first")

	define(env, func(args []scheme.Value) (scheme.Value, error) {
		v, err := oneArgChecked("butfirst", args)
		if err != nil {
			return nil, err
		}
		if p, ok := v.(*scheme.Pair); ok {
			return p.Cdr, nil
		}
		s, ok := wordString(v)
		if !ok || s == "" {
			return nil, scheme.NewError("butfirst called on an empty word or an improper value")
		}
		return scheme.Intern(s[1:]), nil
	}, "butfirst", "bf")

	define(env, func(args []scheme.Value) (scheme.Value, error) {
		v, err := oneArgChecked("last", args)
		if err != nil {
			return nil, err
		}
		if scheme.IsPair(v) || scheme.IsNull(v) {
			items, err := scheme.ListToSlice(v)
			if err != nil || len(items) == 0 {
				return nil, scheme.NewError("last called on an empty list or an improper list")
			}
			return items[len(items)-1], nil
		}
		s, ok := wordString(v)
		if !ok || s == "" {
			return nil, scheme.NewError("last called on an empty word or an improper value")
		}
		return charValue(s[len(s)-1:]), nil
	}, "last")

	define(env, func(args []scheme.Value) (scheme.Value, error) {
		v, err := oneArgChecked("butlast", args)
		if err != nil {
			return nil, err
		}
		if scheme.IsPair(v) || scheme.IsNull(v) {
			items, err := scheme.ListToSlice(v)
			if err != nil || len(items) == 0 {
				return nil, scheme.NewError("butlast called on an empty list or an improper list")
			}
			return scheme.NewList(items[:len(items)-1]...), nil
		}
		s, ok := wordString(v)
		if !ok || s == "" {
			return nil, scheme.NewError("butlast called on an empty word or an improper value")
		}
		return scheme.Intern(s[:len(s)-1]), nil
	}, "butlast", "bl")

	define(env, func(args []scheme.Value) (scheme.Value, error) {
		var elems []scheme.Value
		for _, a := range args {
			if scheme.IsPair(a) || scheme.IsNull(a) {
				items, err := scheme.ListToSlice(a)
				if err != nil {
					return nil, scheme.NewError("sentence requires proper lists or words")
				}
				elems = append(elems, items...)
				continue
			}
			elems = append(elems, a)
		}
		return scheme.NewList(elems...), nil
	}, "sentence", "se")
}

func oneArgChecked(name string, args []scheme.Value) (scheme.Value, error) {
	if len(args) != 1 {
		return nil, arityError(name)
	}
	return args[0], nil
}

// wordString returns the printed characters of a word (symbol or
// number), or ok=false if v isn't a word at all.
func wordString(v scheme.Value) (string, bool) {
	switch v.(type) {
	case scheme.Symbol, scheme.Integer, scheme.Float:
		return scheme.Write(v), true
	default:
		return "", false
	}
}

// charValue turns a single printed character back into a number if it
// parses as one, else an interned one-character symbol.
func charValue(c string) scheme.Value {
	if iv, err := strconv.ParseInt(c, 10, 64); err == nil {
		return scheme.Integer(iv)
	}
	return scheme.Intern(c)
}
