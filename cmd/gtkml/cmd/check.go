package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/go-drift/gtkml/pkg/errors"
)

func init() {
	RegisterCommand(&Command{
		Name:  "check",
		Short: "Build an application and report every diagnostic",
		Long: `Parse and build the application without running it, then list every
diagnostic: unresolved tags, broken widget modules, missing handlers and
assets, logic unit failures and recovered panics.

Exits with a non-zero status when anything was reported.`,
		Usage: "gtkml check [--widgets DIR] [--assets DIR] [--verbose] [path]",
		Run:   runCheck,
	})
}

func runCheck(args []string) error {
	return check(args, os.Stdout)
}

// check builds the application with a Recorder and prints a summary.
func check(args []string, out io.Writer) error {
	paths, opts, err := parseAppArgs(args)
	if err != nil {
		return err
	}
	start, err := firstArg(paths)
	if err != nil {
		return err
	}

	rec := &errors.Recorder{}
	var diag errors.Handler = rec
	if opts.verbose {
		diag = errors.Multi{rec, &errors.LogHandler{Out: out, Verbose: true}}
	}

	app, _, err := loadApp(start, opts, diag)
	if err != nil {
		return err
	}
	if _, err := app.Activate(); err != nil {
		return err
	}

	for _, e := range rec.Errors() {
		fmt.Fprintf(out, "%s: %v\n", e.Kind, e.Err)
	}
	for _, p := range rec.Panics() {
		fmt.Fprintln(out, p)
	}

	if n := rec.Count(); n > 0 {
		return fmt.Errorf("%d problem(s) found in %s", n, app.Context().Doc.Path)
	}
	fmt.Fprintf(out, "ok: %s (%d widgets with ids, %d handlers)\n",
		app.Context().Doc.Path, len(app.Context().IDs()), len(app.Context().Handlers()))
	return nil
}
