// Package primitives is the external collaborator spec.md §6 calls the
// "primitives table": a fixed list of (name, host function) bindings
// installed in the global frame before the prelude runs, grounded on
// original_source/scheme.py's _PRIMITIVES tuple and organized one file
// per category the way the teacher repo's pkg/plugins does.
package primitives

import (
	"io"
	"os"

	"github.com/leinonen/goscheme/pkg/reader"
	"github.com/leinonen/goscheme/pkg/scheme"
	"github.com/leinonen/goscheme/pkg/turtle"
)

// Context is the shared state primitives that reach outside pure
// evaluation need: where output goes, what the global frame is (eval,
// apply and load all operate against it, matching the original's
// single the_global_environment), the current input port (read, and
// the stack load pushes onto), and the headless turtle recorder.
type Context struct {
	Out    io.Writer
	Err    io.Writer
	Global *scheme.Environment
	Turtle *turtle.State

	ports []*reader.Reader
}

// NewContext builds a Context wired to stdout/stderr and global.
func NewContext(global *scheme.Environment) *Context {
	return &Context{
		Out:    os.Stdout,
		Err:    os.Stderr,
		Global: global,
		Turtle: turtle.NewState(),
	}
}

// PushInput makes r the current input port, e.g. while `load` runs a file.
func (c *Context) PushInput(r *reader.Reader) {
	c.ports = append(c.ports, r)
}

// PopInput restores the previous input port.
func (c *Context) PopInput() {
	c.ports = c.ports[:len(c.ports)-1]
}

// CurrentInput returns the innermost active input port, or nil if none.
func (c *Context) CurrentInput() *reader.Reader {
	if len(c.ports) == 0 {
		return nil
	}
	return c.ports[len(c.ports)-1]
}

// Register installs every primitive category into env.
func Register(env *scheme.Environment, ctx *Context) {
	registerEquivalence(env)
	registerPairs(env)
	registerArithmetic(env)
	registerIO(env, ctx)
	registerMeta(env, ctx)
	registerWords(env)
	registerTurtle(env, ctx)
}

// define binds one or more names to the same primitive, matching the
// original's define_primitives helper, which accepts either a bare name
// or a list of aliases for the same function.
func define(env *scheme.Environment, fn func(args []scheme.Value) (scheme.Value, error), names ...string) {
	for _, name := range names {
		env.Define(scheme.Intern(name), &scheme.Primitive{Name: name, Fn: fn})
	}
}

func arityError(name string) error {
	return scheme.NewError(name + " received an incorrect number of arguments")
}
