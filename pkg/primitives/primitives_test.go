package primitives

import (
	"bytes"
	"strings"
	"testing"

	"github.com/leinonen/goscheme/pkg/reader"
	"github.com/leinonen/goscheme/pkg/scheme"
)

// newTestEnv builds a global environment with every primitive
// registered, plus an in-memory Context so tests can inspect output.
func newTestEnv(t *testing.T) (*scheme.Environment, *Context, *bytes.Buffer) {
	t.Helper()
	env := scheme.NewEnvironment(nil)
	ctx := NewContext(env)
	var out bytes.Buffer
	ctx.Out = &out
	Register(env, ctx)
	return env, ctx, &out
}

func evalSrc(t *testing.T, env *scheme.Environment, src string) scheme.Value {
	t.Helper()
	r := reader.New(strings.NewReader(src))
	var last scheme.Value = scheme.Unspecified
	for {
		datum, err := r.Read()
		if err != nil {
			t.Fatalf("reading %q: %v", src, err)
		}
		if datum == scheme.EOF {
			return last
		}
		v, err := scheme.Eval(datum, env)
		if err != nil {
			t.Fatalf("evaluating %q: %v", src, err)
		}
		last = v
	}
}

func TestEquivalencePrimitives(t *testing.T) {
	env, _, _ := newTestEnv(t)
	if v := evalSrc(t, env, "(eq? 'a 'a)"); v != scheme.True {
		t.Errorf("eq? on identical symbols should be #t, got %v", v)
	}
	if v := evalSrc(t, env, "(equal? (list 1 2) (list 1 2))"); v != scheme.True {
		t.Errorf("equal? should compare structurally, got %v", v)
	}
	if v := evalSrc(t, env, "(pair? (cons 1 2))"); v != scheme.True {
		t.Errorf("pair? of a cons should be #t, got %v", v)
	}
	if v := evalSrc(t, env, "(null? '())"); v != scheme.True {
		t.Errorf("null? of the empty list should be #t, got %v", v)
	}
	if v := evalSrc(t, env, "(not #f)"); v != scheme.True {
		t.Errorf("(not #f) should be #t, got %v", v)
	}
}

func TestPairsAndListsPrimitives(t *testing.T) {
	env, _, _ := newTestEnv(t)
	if v := evalSrc(t, env, "(car (cons 1 2))"); v != scheme.Integer(1) {
		t.Errorf("got %v, want 1", v)
	}
	if v := evalSrc(t, env, "(length (list 1 2 3))"); v != scheme.Integer(3) {
		t.Errorf("got %v, want 3", v)
	}
	got := evalSrc(t, env, "(append (list 1 2) (list 3 4))")
	if scheme.Write(got) != "(1 2 3 4)" {
		t.Errorf("got %s, want (1 2 3 4)", scheme.Write(got))
	}
	evalSrc(t, env, "(define p (cons 1 2))")
	evalSrc(t, env, "(set-car! p 9)")
	if v := evalSrc(t, env, "(car p)"); v != scheme.Integer(9) {
		t.Errorf("set-car! should mutate in place, got %v", v)
	}
}

func TestArithmeticPrimitives(t *testing.T) {
	env, _, _ := newTestEnv(t)
	tests := []struct {
		src  string
		want scheme.Value
	}{
		{"(+ 1 2 3)", scheme.Integer(6)},
		{"(- 10 3 2)", scheme.Integer(5)},
		{"(* 2 3 4)", scheme.Integer(24)},
		{"(quotient 7 2)", scheme.Integer(3)},
		{"(remainder 7 2)", scheme.Integer(1)},
		{"(modulo -7 2)", scheme.Integer(1)},
		{"(< 1 2 3)", scheme.True},
		{"(< 1 3 2)", scheme.False},
		{"(= 1 1 1)", scheme.True},
		{"(floor 3.7)", scheme.Float(3)},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if got := evalSrc(t, env, tt.src); got != tt.want {
				t.Errorf("%s = %v, want %v", tt.src, got, tt.want)
			}
		})
	}
}

func TestArithmeticExactBeyondFloat64Precision(t *testing.T) {
	env, _, _ := newTestEnv(t)
	got := evalSrc(t, env, "(* 99999999 99999999)")
	want := scheme.Integer(9999999800000001)
	if got != want {
		t.Errorf("(* 99999999 99999999) = %v, want %v (exact int64 arithmetic, not float64)", got, want)
	}
}

func TestArithmeticDivisionByZero(t *testing.T) {
	env := scheme.NewEnvironment(nil)
	ctx := NewContext(env)
	Register(env, ctx)
	r := reader.New(strings.NewReader("(/ 1 0)"))
	datum, _ := r.Read()
	if _, err := scheme.Eval(datum, env); err == nil {
		t.Errorf("expected a division-by-zero error")
	}
}

func TestIOPrimitives(t *testing.T) {
	env, _, out := newTestEnv(t)
	evalSrc(t, env, "(display 42)")
	evalSrc(t, env, "(newline)")
	if out.String() != "42\n" {
		t.Errorf("got %q, want %q", out.String(), "42\n")
	}
}

func TestErrorPrimitive(t *testing.T) {
	env, _, _ := newTestEnv(t)
	r := reader.New(strings.NewReader(`(error 'bad 1 2)`))
	datum, _ := r.Read()
	_, err := scheme.Eval(datum, env)
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !strings.Contains(err.Error(), "bad") {
		t.Errorf("got %q, want it to mention the message parts", err.Error())
	}
}

func TestMetaPrimitives(t *testing.T) {
	env, _, _ := newTestEnv(t)
	if v := evalSrc(t, env, "(apply + (list 1 2 3))"); v != scheme.Integer(6) {
		t.Errorf("apply + over (1 2 3) = %v, want 6", v)
	}
	if v := evalSrc(t, env, "(eval (list '+ 1 2))"); v != scheme.Integer(3) {
		t.Errorf("eval (+ 1 2) = %v, want 3", v)
	}
}

func TestWordPrimitives(t *testing.T) {
	env, _, _ := newTestEnv(t)
	if v := evalSrc(t, env, "(word 'foo 'bar)"); v != scheme.Intern("foobar") {
		t.Errorf("got %v, want foobar", v)
	}
	if v := evalSrc(t, env, "(first 'hello)"); v != scheme.Intern("h") {
		t.Errorf("first of a word should be its first character, got %v", v)
	}
	if v := evalSrc(t, env, "(first (list 1 2 3))"); v != scheme.Integer(1) {
		t.Errorf("first of a list should be car, got %v", v)
	}
	got := evalSrc(t, env, "(sentence 'a (list 'b 'c))")
	if scheme.Write(got) != "(a b c)" {
		t.Errorf("got %s, want (a b c)", scheme.Write(got))
	}
}

func TestTurtlePrimitivesRecordHistory(t *testing.T) {
	env, ctx, _ := newTestEnv(t)
	evalSrc(t, env, "(forward 10)")
	evalSrc(t, env, "(right 90)")
	if len(ctx.Turtle.History()) != 2 {
		t.Errorf("expected 2 recorded operations, got %d", len(ctx.Turtle.History()))
	}
	if ctx.Turtle.X < 9.999 || ctx.Turtle.X > 10.001 {
		t.Errorf("forward primitive should move the shared turtle state, got x=%v", ctx.Turtle.X)
	}
}
