package headless

import (
	"strconv"
	"strings"

	"github.com/go-drift/gtkml/pkg/toolkit"
)

// Window is a top-level window.
type Window struct {
	Bin
	app       *Application
	title     string
	width     int
	height    int
	titlebar  toolkit.Widget
	presented bool
	closed    bool
}

func (w *Window) SetTitle(s string) { w.title = s }
func (w *Window) Title() string     { return w.title }

func (w *Window) SetDefaultSize(width, height int) { w.width, w.height = width, height }

// DefaultSize returns the size set with SetDefaultSize.
func (w *Window) DefaultSize() (width, height int) { return w.width, w.height }

func (w *Window) SetTitlebar(t toolkit.Widget) { w.titlebar = t }

// Titlebar returns the custom title bar, or nil.
func (w *Window) Titlebar() toolkit.Widget { return w.titlebar }

func (w *Window) Present() { w.presented = true }

// Presented reports whether Present was called.
func (w *Window) Presented() bool { return w.presented }

// Close hides the window and releases it from its application.
func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	_ = w.Emit("close-request")
	if w.app != nil {
		w.app.removeWindow(w)
	}
}

// Closed reports whether Close was called.
func (w *Window) Closed() bool { return w.closed }

// Children returns the title bar, if any, followed by the child.
func (w *Window) Children() []toolkit.Widget {
	var out []toolkit.Widget
	if w.titlebar != nil {
		out = append(out, w.titlebar)
	}
	return append(out, w.Bin.Children()...)
}

func (w *Window) Describe() string {
	return w.describe("title="+strconv.Quote(w.title), strconv.Itoa(w.width)+"x"+strconv.Itoa(w.height))
}

// Delegate exposes the window's members by their snake_case names.
func (w *Window) Delegate(name string) (any, bool) {
	switch strings.ToLower(name) {
	case "title", "get_title":
		return w.Title, true
	case "set_title":
		return w.SetTitle, true
	case "set_default_size":
		return w.SetDefaultSize, true
	case "get_default_size":
		return w.DefaultSize, true
	case "present":
		return w.Present, true
	case "close":
		return w.Close, true
	case "get_child":
		return w.Child, true
	case "set_child":
		return w.SetChild, true
	}
	return nil, false
}
