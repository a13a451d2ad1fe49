// Command goscheme is the CLI spec.md §6 names: `goscheme [file]`. With
// no file and stdin attached to a terminal it starts the colorized,
// readline-backed top-level loop; with a file argument it loads and
// runs that file silently. Framed with cobra the way the pack's
// dwscript command frames its own single-binary CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leinonen/goscheme/pkg/prelude"
	"github.com/leinonen/goscheme/pkg/primitives"
	"github.com/leinonen/goscheme/pkg/reader"
	"github.com/leinonen/goscheme/pkg/repl"
	"github.com/leinonen/goscheme/pkg/scheme"
)

var rootCmd = &cobra.Command{
	Use:           "goscheme [file]",
	Short:         "A small Scheme interpreter",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, ctx, err := bootstrap()
		if err != nil {
			return err
		}
		if len(args) == 1 {
			return runFile(env, ctx, args[0])
		}
		return repl.Run(env, ctx)
	},
}

// bootstrap builds the global environment, installs the primitive
// table, and loads the embedded prelude — in that order, per
// SPEC_FULL.md §4.7.
func bootstrap() (*scheme.Environment, *primitives.Context, error) {
	env := scheme.NewEnvironment(nil)
	ctx := primitives.NewContext(env)
	primitives.Register(env, ctx)
	if err := prelude.Load(env); err != nil {
		return nil, nil, fmt.Errorf("loading prelude: %w", err)
	}
	return env, ctx, nil
}

// runFile loads and evaluates path silently: values are not echoed,
// matching spec.md §6. Exit code 1 if the file cannot be opened.
func runFile(env *scheme.Environment, ctx *primitives.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open %s", path)
	}
	defer f.Close()

	r := reader.New(f)
	ctx.PushInput(r)
	defer ctx.PopInput()

	for {
		datum, err := r.Read()
		if err != nil {
			fmt.Fprintln(ctx.Err, "Error: "+err.Error())
			continue
		}
		if datum == scheme.EOF {
			return nil
		}
		if _, err := scheme.Eval(datum, env); err != nil {
			if se, ok := err.(*scheme.SchemeError); ok {
				fmt.Fprintln(ctx.Err, "Error: "+se.Message)
			} else {
				fmt.Fprintln(ctx.Err, "Error: "+err.Error())
			}
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
