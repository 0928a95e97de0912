package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/go-drift/gtkml/pkg/errors"
	"github.com/go-drift/gtkml/pkg/gtkml"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Build the application and run its event loop",
		Long: `Build the application and run it on the headless toolkit.

The path is an application directory or a markup file. Without one, the
application enclosing the working directory is used, else the example
installed next to the executable.

While running, commands are read from standard input, one per line:
  click <id>, toggle <id>, type <id> <text>, activate <action>,
  lookup <name>, ids, dump, help, quit

End of input or quit stops the application. SIGINT and SIGTERM stop it
as well.

Flags:
  --widgets DIR   Search DIR for widget modules first
  --assets DIR    Search DIR for images first
  --app-id ID     Override the application id
  --verbose       Print operations, kinds and stack traces`,
		Usage: "gtkml run [--widgets DIR] [--assets DIR] [--app-id ID] [--verbose] [path]",
		Run:   runRun,
	})
}

func runRun(args []string) error {
	paths, opts, err := parseAppArgs(args)
	if err != nil {
		return err
	}
	start, err := firstArg(paths)
	if err != nil {
		return err
	}

	diag := &errors.LogHandler{Verbose: opts.verbose}
	app, _, err := loadApp(start, opts, diag)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return serveApp(ctx, app, os.Stdin, os.Stdout)
}

// serveApp runs the application loop and the command session side by side.
// Whichever ends first stops the other: the session quits the application,
// and the loop closes the input when it returns.
func serveApp(ctx context.Context, app *gtkml.App, in io.ReadCloser, out io.Writer) error {
	g, gctx := errgroup.WithContext(ctx)
	s := &session{ctx: app.Context(), out: out}
	stopped := make(chan struct{})

	g.Go(func() error {
		defer in.Close()
		defer close(stopped)
		err := app.Run(gctx)
		if err == context.Canceled && ctx.Err() != nil {
			return nil
		}
		return err
	})
	g.Go(func() error {
		return s.serve(gctx, in, stopped)
	})
	return g.Wait()
}
