package prelude

import (
	"strings"
	"testing"

	"github.com/leinonen/goscheme/pkg/primitives"
	"github.com/leinonen/goscheme/pkg/reader"
	"github.com/leinonen/goscheme/pkg/scheme"
)

func newEnv(t *testing.T) *scheme.Environment {
	t.Helper()
	env := scheme.NewEnvironment(nil)
	ctx := primitives.NewContext(env)
	primitives.Register(env, ctx)
	if err := Load(env); err != nil {
		t.Fatalf("Load returned an error: %v", err)
	}
	return env
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

func TestPreludeLoads(t *testing.T) {
	newEnv(t) // fails the test via t.Fatalf if Load errors
}

func TestCxrFamily(t *testing.T) {
	env := newEnv(t)
	if v := evalSrc(t, env, "(cadr (list 1 2 3))"); v != scheme.Integer(2) {
		t.Errorf("(cadr '(1 2 3)) = %v, want 2", v)
	}
	if v := evalSrc(t, env, "(caddr (list 1 2 3))"); v != scheme.Integer(3) {
		t.Errorf("(caddr '(1 2 3)) = %v, want 3", v)
	}
}

func TestReverse(t *testing.T) {
	env := newEnv(t)
	got := evalSrc(t, env, "(reverse (list 1 2 3))")
	if scheme.Write(got) != "(3 2 1)" {
		t.Errorf("got %s, want (3 2 1)", scheme.Write(got))
	}
}

func TestListRef(t *testing.T) {
	env := newEnv(t)
	if v := evalSrc(t, env, "(list-ref (list 10 20 30) 1)"); v != scheme.Integer(20) {
		t.Errorf("got %v, want 20", v)
	}
}

func TestMapFilterReduce(t *testing.T) {
	env := newEnv(t)
	evalSrc(t, env, "(define (square x) (* x x))")
	got := evalSrc(t, env, "(map square (list 1 2 3))")
	if scheme.Write(got) != "(1 4 9)" {
		t.Errorf("map: got %s, want (1 4 9)", scheme.Write(got))
	}

	evalSrc(t, env, "(define (even-arg x) (= 0 (modulo x 2)))")
	got = evalSrc(t, env, "(filter even-arg (list 1 2 3 4 5 6))")
	if scheme.Write(got) != "(2 4 6)" {
		t.Errorf("filter: got %s, want (2 4 6)", scheme.Write(got))
	}

	if v := evalSrc(t, env, "(reduce + 0 (list 1 2 3 4))"); v != scheme.Integer(10) {
		t.Errorf("reduce: got %v, want 10", v)
	}
}

func TestForEach(t *testing.T) {
	env := newEnv(t)
	evalSrc(t, env, "(define total 0)")
	evalSrc(t, env, "(for-each (lambda (x) (set! total (+ total x))) (list 1 2 3))")
	if v := evalSrc(t, env, "total"); v != scheme.Integer(6) {
		t.Errorf("for-each should have summed to 6, got %v", v)
	}
}

func TestConsStar(t *testing.T) {
	env := newEnv(t)
	got := evalSrc(t, env, "(cons* 1 2 (list 3 4))")
	if scheme.Write(got) != "(1 2 3 4)" {
		t.Errorf("got %s, want (1 2 3 4)", scheme.Write(got))
	}
}
