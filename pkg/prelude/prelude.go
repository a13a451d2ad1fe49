// Package prelude embeds and loads the derived forms spec.md §4.7
// specifies are written in Scheme itself atop the primitive table,
// grounded on the teacher's use of go:embed for static assets in
// t73fde-sx/sxbuiltins/prelude.go.
package prelude

import (
	_ "embed"
	"strings"

	"github.com/leinonen/goscheme/pkg/reader"
	"github.com/leinonen/goscheme/pkg/scheme"
)

//go:embed prelude.scm
var source string

// Load evaluates every form in the embedded prelude against env. A
// syntax or runtime error here means the prelude itself is broken, not
// anything the user did, so the caller treats it as a startup failure.
func Load(env *scheme.Environment) error {
	r := reader.New(strings.NewReader(source))
	for {
		datum, err := r.Read()
		if err != nil {
			return err
		}
		if datum == scheme.EOF {
			return nil
		}
		if _, err := scheme.Eval(datum, env); err != nil {
			return err
		}
	}
}
