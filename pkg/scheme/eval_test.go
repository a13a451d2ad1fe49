package scheme

import (
	"strings"
	"testing"
)

// mustEval is a small test helper: it evaluates an expression the test
// has built directly from pairs, failing the test on error. pkg/reader
// depends on pkg/scheme and cannot be imported back here, so tests
// exercise the evaluator through Go-built expressions, and through
// pkg/reader-backed source in integration tests living alongside the
// reader and primitives packages.
func mustEval(t *testing.T, expr Value, env *Environment) Value {
	t.Helper()
	v, err := Eval(expr, env)
	if err != nil {
		t.Fatalf("Eval(%s) returned an error: %v", Write(expr), err)
	}
	return v
}

func TestEvalSelfEvaluating(t *testing.T) {
	env := NewEnvironment(nil)
	if v := mustEval(t, Integer(5), env); v != Integer(5) {
		t.Errorf("got %v, want 5", v)
	}
	if v := mustEval(t, True, env); v != True {
		t.Errorf("got %v, want #t", v)
	}
}

func TestEvalSymbolLookup(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define(Intern("x"), Integer(10))
	if v := mustEval(t, Intern("x"), env); v != Integer(10) {
		t.Errorf("got %v, want 10", v)
	}
}

func TestEvalQuote(t *testing.T) {
	env := NewEnvironment(nil)
	expr := NewList(Intern("quote"), NewList(Integer(1), Integer(2)))
	v := mustEval(t, expr, env)
	if Write(v) != "(1 2)" {
		t.Errorf("got %s, want (1 2)", Write(v))
	}
}

// TestEvalFactorial exercises a recursive closure defined with define,
// proving lambda/if/define/application compose.
func TestEvalFactorial(t *testing.T) {
	env := NewEnvironment(nil)
	registerArith(env)

	def := NewList(Intern("define"),
		NewList(Intern("fact"), Intern("n")),
		NewList(Intern("if"),
			NewList(Intern("="), Intern("n"), Integer(0)),
			Integer(1),
			NewList(Intern("*"), Intern("n"),
				NewList(Intern("fact"), NewList(Intern("-"), Intern("n"), Integer(1))))))
	mustEval(t, def, env)

	result := mustEval(t, NewList(Intern("fact"), Integer(5)), env)
	if result != Integer(120) {
		t.Errorf("(fact 5) = %v, want 120", result)
	}
}

// TestTailCallDoesNotGrowHostStack drives a counted loop far past any
// reasonable Go call-stack depth, relying on tail position reuse inside
// if/application to keep this from overflowing.
func TestTailCallDoesNotGrowHostStack(t *testing.T) {
	env := NewEnvironment(nil)
	registerArith(env)

	def := NewList(Intern("define"),
		NewList(Intern("loop"), Intern("n"), Intern("acc")),
		NewList(Intern("if"),
			NewList(Intern("="), Intern("n"), Integer(0)),
			Intern("acc"),
			NewList(Intern("loop"),
				NewList(Intern("-"), Intern("n"), Integer(1)),
				NewList(Intern("+"), Intern("acc"), Integer(1)))))
	mustEval(t, def, env)

	result := mustEval(t, NewList(Intern("loop"), Integer(100000), Integer(0)), env)
	if result != Integer(100000) {
		t.Errorf("loop result = %v, want 100000", result)
	}
}

func TestSetBangOnUndefinedIdentifierErrors(t *testing.T) {
	env := NewEnvironment(nil)
	expr := NewList(Intern("set!"), Intern("never-defined"), Integer(1))
	if _, err := Eval(expr, env); err == nil {
		t.Errorf("expected an error assigning an undefined identifier")
	} else if !strings.Contains(err.Error(), "unknown identifier") {
		t.Errorf("got error %q, want it to mention the unknown identifier", err.Error())
	}
}

// registerArith installs just enough arithmetic/comparison primitives
// for eval_test.go's scenarios, without importing pkg/primitives (which
// imports pkg/scheme and would form an import cycle).
func registerArith(env *Environment) {
	define2 := func(name string, fn func(a, b Value) Value) {
		env.Define(Intern(name), &Primitive{Name: name, Fn: func(args []Value) (Value, error) {
			return fn(args[0], args[1]), nil
		}})
	}
	define2("+", func(a, b Value) Value { return Integer(a.(Integer) + b.(Integer)) })
	define2("-", func(a, b Value) Value { return Integer(a.(Integer) - b.(Integer)) })
	define2("*", func(a, b Value) Value { return Integer(a.(Integer) * b.(Integer)) })
	define2("=", func(a, b Value) Value { return Boolean(a.(Integer) == b.(Integer)) })
}
