package primitives

import (
	"os"

	"github.com/leinonen/goscheme/pkg/scheme"
)

// registerTurtle wires the Logo-style turtle-graphics primitives onto
// ctx.Turtle, the headless recorder (pkg/turtle). None of these render;
// they only update pose and log operations, per spec.md §4.6.
func registerTurtle(env *scheme.Environment, ctx *Context) {
	t := ctx.Turtle

	define(env, numericOp("forward", t.Forward), "forward", "fd")
	define(env, numericOp("backward", t.Backward), "backward", "back", "bk")
	define(env, numericOp("right", t.Right), "right", "rt")
	define(env, numericOp("left", t.Left), "left", "lt")
	define(env, numericOp("circle", t.Circle), "circle")
	define(env, numericOp("setheading", t.SetHeading), "setheading", "seth")
	define(env, numericOp("speed", t.SetSpeed), "speed")

	define(env, func(args []scheme.Value) (scheme.Value, error) {
		if len(args) != 2 {
			return nil, arityError("setpos")
		}
		x, err := toNumber("setpos", args[0])
		if err != nil {
			return nil, err
		}
		y, err := toNumber("setpos", args[1])
		if err != nil {
			return nil, err
		}
		t.SetPosition(x.f, y.f)
		return scheme.Unspecified, nil
	}, "setpos", "setposition", "goto")

	define(env, nullaryOp("penup", t.PenUp), "penup", "pu")
	define(env, nullaryOp("pendown", t.PenDownOp), "pendown", "pd")
	define(env, nullaryOp("showturtle", t.ShowTurtle), "showturtle", "st")
	define(env, nullaryOp("hideturtle", t.HideTurtle), "hideturtle", "ht")
	define(env, nullaryOp("clear", t.Clear), "clear")
	define(env, nullaryOp("begin-fill", t.BeginFill), "begin-fill")
	define(env, nullaryOp("end-fill", t.EndFill), "end-fill")

	define(env, func(args []scheme.Value) (scheme.Value, error) {
		if len(args) != 1 {
			return nil, arityError("color")
		}
		s, ok := wordString(args[0])
		if !ok {
			return nil, scheme.NewError("color requires a symbol naming a color")
		}
		t.SetColor(s)
		return scheme.Unspecified, nil
	}, "color")

	// exitonclick is meaningful only with an interactive renderer; there
	// is none here, so it just ends the process the way a closed turtle
	// window would.
	define(env, func(args []scheme.Value) (scheme.Value, error) {
		os.Exit(0)
		return scheme.Unspecified, nil
	}, "exitonclick")
}

func numericOp(name string, fn func(float64)) func([]scheme.Value) (scheme.Value, error) {
	return func(args []scheme.Value) (scheme.Value, error) {
		if len(args) != 1 {
			return nil, arityError(name)
		}
		n, err := toNumber(name, args[0])
		if err != nil {
			return nil, err
		}
		fn(n.f)
		return scheme.Unspecified, nil
	}
}

func nullaryOp(name string, fn func()) func([]scheme.Value) (scheme.Value, error) {
	return func(args []scheme.Value) (scheme.Value, error) {
		if len(args) != 0 {
			return nil, arityError(name)
		}
		fn()
		return scheme.Unspecified, nil
	}
}
