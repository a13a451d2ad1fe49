package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/leinonen/goscheme/pkg/primitives"
	"github.com/leinonen/goscheme/pkg/scheme"
)

func TestParenDelta(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"(+ 1 2)", 0},
		{"(+ 1 2", 1},
		{"+ 1 2)", -1},
		{"(a (b c", 2},
		{"; (ignored (comment", 0},
		{"(a) ; (ignored", 0},
	}
	for _, tt := range tests {
		if got := parenDelta(tt.line); got != tt.want {
			t.Errorf("parenDelta(%q) = %d, want %d", tt.line, got, tt.want)
		}
	}
}

func TestFormatError(t *testing.T) {
	got := formatError(scheme.NewError("bad argument"))
	if got != "Error: bad argument" {
		t.Errorf("got %q, want %q", got, "Error: bad argument")
	}
}

func TestRunPlainEvaluatesAndPrints(t *testing.T) {
	env := scheme.NewEnvironment(nil)
	ctx := primitives.NewContext(env)
	primitives.Register(env, ctx)

	in := strings.NewReader("(+ 1 2)\n")
	var out bytes.Buffer
	if err := runPlain(env, ctx, in, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "3") {
		t.Errorf("expected the result 3 to appear in output, got %q", out.String())
	}
}

func TestRunPlainReportsErrors(t *testing.T) {
	env := scheme.NewEnvironment(nil)
	ctx := primitives.NewContext(env)
	primitives.Register(env, ctx)
	ctx.Err = &bytes.Buffer{}

	in := strings.NewReader("(undefined-name)\n")
	var out bytes.Buffer
	if err := runPlain(env, ctx, in, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	errOut := ctx.Err.(*bytes.Buffer).String()
	if !strings.Contains(errOut, "Error") {
		t.Errorf("expected an Error line on the diagnostic stream, got %q", errOut)
	}
}
