package cmd

import (
	"io"
	"os"

	"github.com/go-drift/gtkml/pkg/errors"
	"github.com/go-drift/gtkml/pkg/toolkit/headless"
)

func init() {
	RegisterCommand(&Command{
		Name:  "dump",
		Short: "Print the widget tree of an application",
		Long: `Build the application without running its event loop and print the
resulting widget tree, one widget per line, children indented.

Diagnostics are printed to standard error.`,
		Usage: "gtkml dump [--widgets DIR] [--assets DIR] [--verbose] [path]",
		Run:   runDump,
	})
}

func runDump(args []string) error {
	return dump(args, os.Stdout, &errors.LogHandler{})
}

func dump(args []string, out io.Writer, diag *errors.LogHandler) error {
	paths, opts, err := parseAppArgs(args)
	if err != nil {
		return err
	}
	start, err := firstArg(paths)
	if err != nil {
		return err
	}
	diag.Verbose = opts.verbose

	app, _, err := loadApp(start, opts, diag)
	if err != nil {
		return err
	}
	win, err := app.Activate()
	if err != nil {
		return err
	}
	return headless.Dump(out, win)
}
