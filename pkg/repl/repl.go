// Package repl implements the top-level loop spec.md §4.4 describes:
// read one datum, evaluate it in the global environment, print the
// result unless it is unspecified, report errors to the diagnostic
// stream, and continue. It is an external collaborator to the
// evaluator — only the contract above is specified; the prompt/TTY
// framing here (readline history, colorized output) is ours to choose,
// grounded on the teacher's pkg/repl/repl.go.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/leinonen/goscheme/pkg/primitives"
	"github.com/leinonen/goscheme/pkg/reader"
	"github.com/leinonen/goscheme/pkg/scheme"
)

var (
	promptColor = color.New(color.FgBlue, color.Bold)
	contColor   = color.New(color.FgHiBlack)
	resultColor = color.New(color.FgGreen)
	errorColor  = color.New(color.FgRed)
)

// Run starts the top-level loop reading from stdin. When stdin is a
// terminal it uses readline for history and line editing and colorizes
// prompts, results and errors; otherwise (input piped or redirected) it
// falls back to a plain prompt over the evaluator's own reader, which
// still satisfies spec.md §6's "read from standard input with a
// prompt" contract without depending on a real terminal.
func Run(env *scheme.Environment, ctx *primitives.Context) error {
	if isatty.IsTerminal(os.Stdin.Fd()) {
		return runInteractive(env, ctx)
	}
	return runPlain(env, ctx, os.Stdin, os.Stdout)
}

func runInteractive(env *scheme.Environment, ctx *primitives.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          promptColor.Sprint("goscheme> "),
		HistoryFile:     historyPath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		return runPlain(env, ctx, os.Stdin, os.Stdout)
	}
	defer rl.Close()

	fmt.Fprintln(ctx.Out, "goscheme — a small Scheme. Ctrl-D to exit.")

	for {
		text, err := readBalancedForm(rl)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		evalAndPrint(text, env, ctx, true)
	}
}

// readBalancedForm reads lines via readline until parentheses balance,
// switching to a dimmer continuation prompt, matching the teacher's
// paren-counting approach to multi-line input.
func readBalancedForm(rl *readline.Instance) (string, error) {
	var lines []string
	depth := 0
	first := true

	for {
		if first {
			rl.SetPrompt(promptColor.Sprint("goscheme> "))
			first = false
		} else {
			rl.SetPrompt(contColor.Sprint("...       "))
		}

		line, err := rl.Readline()
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
		depth += parenDelta(line)

		joined := strings.Join(lines, "\n")
		if depth <= 0 && strings.TrimSpace(joined) != "" {
			return joined, nil
		}
	}
}

func parenDelta(line string) int {
	delta := 0
	for _, c := range line {
		switch c {
		case ';':
			return delta
		case '(':
			delta++
		case ')':
			delta--
		}
	}
	return delta
}

// runPlain drives the top-level loop exactly as spec.md §4.4 describes
// it, with no line editing: print a prompt, read one datum via the
// shared reader, evaluate, print.
func runPlain(env *scheme.Environment, ctx *primitives.Context, in io.Reader, out io.Writer) error {
	r := reader.New(bufio.NewReader(in))
	for {
		fmt.Fprint(out, "goscheme> ")
		datum, err := r.Read()
		if err != nil {
			fmt.Fprintln(ctx.Err, formatError(err))
			continue
		}
		if datum == scheme.EOF {
			return nil
		}
		value, err := scheme.Eval(datum, env)
		if err != nil {
			fmt.Fprintln(ctx.Err, formatError(err))
			continue
		}
		if value != scheme.Unspecified {
			fmt.Fprintln(out, scheme.Write(value))
		}
	}
}

// evalAndPrint reads every datum in text (a readline-balanced form may
// still contain more than one top-level expression) and evaluates each
// in turn, printing results or errors with color when colored is true.
func evalAndPrint(text string, env *scheme.Environment, ctx *primitives.Context, colored bool) {
	r := reader.New(strings.NewReader(text))
	for {
		datum, err := r.Read()
		if err != nil {
			printErr(ctx, err, colored)
			return
		}
		if datum == scheme.EOF {
			return
		}
		value, err := scheme.Eval(datum, env)
		if err != nil {
			printErr(ctx, err, colored)
			continue
		}
		if value == scheme.Unspecified {
			continue
		}
		if colored {
			fmt.Fprintf(ctx.Out, "%s\n", resultColor.Sprint(scheme.Write(value)))
		} else {
			fmt.Fprintln(ctx.Out, scheme.Write(value))
		}
	}
}

func printErr(ctx *primitives.Context, err error, colored bool) {
	msg := formatError(err)
	if colored {
		errorColor.Fprintln(ctx.Err, msg)
	} else {
		fmt.Fprintln(ctx.Err, msg)
	}
}

// formatError renders a failure the way spec.md §7 requires: "Error"
// alone when there is no message, "Error: <message>" otherwise.
func formatError(err error) string {
	if se, ok := err.(*scheme.SchemeError); ok && se.Message != "" {
		return "Error: " + se.Message
	}
	if err.Error() == "" {
		return "Error"
	}
	return "Error: " + err.Error()
}

func historyPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home + "/.goscheme_history"
	}
	return ""
}
