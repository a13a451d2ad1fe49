package primitives

import (
	"fmt"
	"os"

	"github.com/leinonen/goscheme/pkg/reader"
	"github.com/leinonen/goscheme/pkg/scheme"
)

// registerIO installs write, display, newline, read, load, error and
// exit — the primitives that touch the outside world, per spec.md §4.5.
// Scheme has no first-class string type here, so write and display
// coincide: both print a value's external representation via
// scheme.Write.
func registerIO(env *scheme.Environment, ctx *Context) {
	printer := func(name string) func(args []scheme.Value) (scheme.Value, error) {
		return func(args []scheme.Value) (scheme.Value, error) {
			if len(args) != 1 {
				return nil, arityError(name)
			}
			fmt.Fprint(ctx.Out, scheme.Write(args[0]))
			return scheme.Unspecified, nil
		}
	}
	define(env, printer("write"), "write")
	define(env, printer("display"), "display")

	define(env, func(args []scheme.Value) (scheme.Value, error) {
		if len(args) != 0 {
			return nil, arityError("newline")
		}
		fmt.Fprintln(ctx.Out)
		return scheme.Unspecified, nil
	}, "newline")

	define(env, func(args []scheme.Value) (scheme.Value, error) {
		if len(args) != 0 {
			return nil, arityError("read")
		}
		in := ctx.CurrentInput()
		if in == nil {
			return scheme.EOF, nil
		}
		return in.Read()
	}, "read")

	define(env, func(args []scheme.Value) (scheme.Value, error) {
		if len(args) != 1 {
			return nil, arityError("load")
		}
		sym, ok := args[0].(scheme.Symbol)
		if !ok {
			return nil, scheme.NewError("load requires a symbol naming a file")
		}
		return scheme.Unspecified, loadFile(ctx, string(sym))
	}, "load")

	define(env, func(args []scheme.Value) (scheme.Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = scheme.Write(a)
		}
		msg := ""
		for i, p := range parts {
			if i > 0 {
				msg += " "
			}
			msg += p
		}
		return nil, scheme.NewError(msg)
	}, "error")

	define(env, func(args []scheme.Value) (scheme.Value, error) {
		code := 0
		if len(args) == 1 {
			if n, ok := args[0].(scheme.Integer); ok {
				code = int(n)
			}
		}
		os.Exit(code)
		return scheme.Unspecified, nil
	}, "exit", "bye")
}

// loadFile reads and evaluates every datum in path against the global
// environment, matching the original's load primitive: it runs with no
// prompt or echo, the way a file argument on the command line does.
func loadFile(ctx *Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return scheme.NewError("could not open file " + path)
	}
	defer f.Close()

	r := reader.New(f)
	ctx.PushInput(r)
	defer ctx.PopInput()

	for {
		datum, err := r.Read()
		if err != nil {
			return err
		}
		if datum == scheme.EOF {
			return nil
		}
		if _, err := scheme.Eval(datum, ctx.Global); err != nil {
			return err
		}
	}
}
