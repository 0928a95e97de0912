package headless

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-drift/gtkml/pkg/errors"
	"github.com/go-drift/gtkml/pkg/toolkit"
)

// Describer is implemented by every headless widget.
type Describer interface {
	toolkit.Widget
	// Describe returns a one-line summary of the widget's state.
	Describe() string
	// Children returns the widget's children in display order.
	Children() []toolkit.Widget
}

// node carries the state every widget shares.
type node struct {
	kind      string
	signals   []string
	margins   [4]int
	halign    toolkit.Align
	valign    toolkit.Align
	hexpand   bool
	vexpand   bool
	sensitive bool
	classes   []string
	handlers  map[string][]toolkit.Callback
	children  []toolkit.Widget
}

func newNode(kind string, signals ...string) node {
	return node{kind: kind, signals: signals, sensitive: true}
}

func (n *node) TypeName() string { return n.kind }

func (n *node) SetMarginTop(v int)    { n.margins[0] = v }
func (n *node) SetMarginBottom(v int) { n.margins[1] = v }
func (n *node) SetMarginStart(v int)  { n.margins[2] = v }
func (n *node) SetMarginEnd(v int)    { n.margins[3] = v }

func (n *node) SetHAlign(a toolkit.Align) { n.halign = a }
func (n *node) SetVAlign(a toolkit.Align) { n.valign = a }
func (n *node) SetHExpand(v bool)         { n.hexpand = v }
func (n *node) SetVExpand(v bool)         { n.vexpand = v }
func (n *node) SetSensitive(v bool)       { n.sensitive = v }

func (n *node) AddCSSClass(name string) {
	if name == "" || slices.Contains(n.classes, name) {
		return
	}
	n.classes = append(n.classes, name)
}

func (n *node) Connect(signal string, cb toolkit.Callback) error {
	if !slices.Contains(n.signals, signal) {
		return fmt.Errorf("%s has no signal %q: %w", n.kind, signal, errors.ErrUnknownSignal)
	}
	if cb == nil {
		return nil
	}
	if n.handlers == nil {
		n.handlers = make(map[string][]toolkit.Callback)
	}
	n.handlers[signal] = append(n.handlers[signal], cb)
	return nil
}

// Margins returns the top, bottom, start and end margins.
func (n *node) Margins() (top, bottom, start, end int) {
	return n.margins[0], n.margins[1], n.margins[2], n.margins[3]
}

// HAlign returns the horizontal alignment.
func (n *node) HAlign() toolkit.Align { return n.halign }

// VAlign returns the vertical alignment.
func (n *node) VAlign() toolkit.Align { return n.valign }

// HExpand reports the horizontal expansion flag.
func (n *node) HExpand() bool { return n.hexpand }

// VExpand reports the vertical expansion flag.
func (n *node) VExpand() bool { return n.vexpand }

// Sensitive reports whether the widget accepts input.
func (n *node) Sensitive() bool { return n.sensitive }

// Classes returns the style classes in the order they were added.
func (n *node) Classes() []string { return append([]string(nil), n.classes...) }

// HasClass reports whether the style class was added.
func (n *node) HasClass(name string) bool { return slices.Contains(n.classes, name) }

// Children returns the widget's children in display order.
func (n *node) Children() []toolkit.Widget { return n.children }

// HandlerCount returns how many callbacks are connected to signal.
func (n *node) HandlerCount(signal string) int { return len(n.handlers[signal]) }

// Emit invokes every callback connected to signal, in connection order.
func (n *node) Emit(signal string, args ...any) error {
	if !slices.Contains(n.signals, signal) {
		return fmt.Errorf("%s has no signal %q: %w", n.kind, signal, errors.ErrUnknownSignal)
	}
	for _, cb := range n.handlers[signal] {
		cb(args...)
	}
	return nil
}

func (n *node) describe(extra ...string) string {
	parts := []string{n.kind}
	parts = append(parts, extra...)
	if n.margins != [4]int{} {
		parts = append(parts, fmt.Sprintf("margin=%d,%d,%d,%d", n.margins[0], n.margins[1], n.margins[2], n.margins[3]))
	}
	if n.halign != toolkit.AlignFill {
		parts = append(parts, "halign="+n.halign.String())
	}
	if n.valign != toolkit.AlignFill {
		parts = append(parts, "valign="+n.valign.String())
	}
	if n.hexpand {
		parts = append(parts, "hexpand")
	}
	if n.vexpand {
		parts = append(parts, "vexpand")
	}
	if !n.sensitive {
		parts = append(parts, "insensitive")
	}
	if len(n.classes) > 0 {
		parts = append(parts, "class="+strings.Join(n.classes, ","))
	}
	return strings.Join(parts, " ")
}
