package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-drift/gtkml/pkg/errors"
	"github.com/go-drift/gtkml/pkg/gtkml"
	"github.com/go-drift/gtkml/pkg/toolkit"
	"github.com/go-drift/gtkml/pkg/toolkit/headless"
)

const sessionHelp = `commands:
  click <id>          click a button, check button or switch
  toggle <id>         flip a toggle's state
  type <id> <text>    replace the text of an entry or text view
  activate <action>   activate an application action (about, quit)
  lookup <name>       resolve a name through the context lookup
  ids                 list registered ids
  dump                print the widget tree
  quit                stop the application`

// session drives a running application from line commands.
type session struct {
	ctx *gtkml.Context
	out io.Writer
}

// exec runs one command line. It reports whether the session should end.
// Errors are written to out; they never end the session.
func (s *session) exec(line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	verb, rest := strings.ToLower(fields[0]), fields[1:]

	var err error
	switch verb {
	case "click":
		err = s.withWidget(rest, headless.Click)
	case "toggle":
		err = s.withWidget(rest, func(w toolkit.Widget) error {
			t, ok := w.(toolkit.Toggle)
			if !ok {
				return fmt.Errorf("%s is not a toggle", w.TypeName())
			}
			t.SetActive(!t.Active())
			return nil
		})
	case "type":
		if len(rest) < 1 {
			err = fmt.Errorf("usage: type <id> <text>")
			break
		}
		args := strings.TrimSpace(strings.TrimSpace(line)[len(fields[0]):])
		text := strings.TrimSpace(strings.TrimPrefix(args, rest[0]))
		err = s.withWidget(rest[:1], func(w toolkit.Widget) error { return headless.Type(w, text) })
	case "activate":
		if len(rest) != 1 {
			err = fmt.Errorf("usage: activate <action>")
		} else if !s.ctx.App.Activate(rest[0]) {
			err = fmt.Errorf("no action %q", rest[0])
		}
	case "lookup":
		if len(rest) != 1 {
			err = fmt.Errorf("usage: lookup <name>")
			break
		}
		v, ok := s.ctx.Lookup(rest[0])
		switch {
		case !ok:
			err = fmt.Errorf("%s: not found", rest[0])
		default:
			fmt.Fprintf(s.out, "%s: %s\n", rest[0], describe(v))
		}
	case "ids":
		for _, id := range s.ctx.IDs() {
			fmt.Fprintln(s.out, id)
		}
	case "dump":
		if s.ctx.Window == nil {
			err = fmt.Errorf("window not built")
			break
		}
		err = headless.Dump(s.out, s.ctx.Window)
	case "help":
		fmt.Fprintln(s.out, sessionHelp)
	case "quit", "exit":
		return true
	default:
		err = fmt.Errorf("unknown command %q (try help)", verb)
	}
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
	}
	return false
}

func (s *session) withWidget(args []string, fn func(toolkit.Widget) error) error {
	if len(args) != 1 {
		return fmt.Errorf("expected one id")
	}
	w, ok := s.ctx.Widget(args[0])
	if !ok {
		return fmt.Errorf("no widget with id %q", args[0])
	}
	return fn(w)
}

func describe(v any) string {
	if d, ok := v.(headless.Describer); ok {
		return d.Describe()
	}
	return fmt.Sprintf("%T", v)
}

// serve reads commands from in and runs each on the application's loop,
// waiting for it to finish before reading the next line. End of input or a
// quit command stops the application. stopped is closed when the loop has
// returned.
//
// Lines are read on a separate goroutine that serve never waits for: a
// read blocked on a terminal is not interrupted by closing it, so serve
// returns on ctx or stopped and leaves that read behind.
func (s *session) serve(ctx context.Context, in io.Reader, stopped <-chan struct{}) error {
	lines := make(chan string)
	eof := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		eof <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-stopped:
			return nil
		case err := <-eof:
			s.ctx.App.Quit()
			if err == nil || ctx.Err() != nil || errors.Is(err, os.ErrClosed) || errors.Is(err, io.ErrClosedPipe) {
				return nil
			}
			return err
		case line := <-lines:
			if s.run(ctx, line, stopped) {
				return nil
			}
		}
	}
}

// run posts line to the application's loop and waits for it. It reports
// whether the session is over.
func (s *session) run(ctx context.Context, line string, stopped <-chan struct{}) bool {
	done := make(chan bool, 1)
	s.ctx.App.Post(func() { done <- s.exec(line) })
	select {
	case <-ctx.Done():
		return true
	case <-stopped:
		return true
	case quit := <-done:
		if quit {
			s.ctx.App.Quit()
		}
		return quit
	}
}
