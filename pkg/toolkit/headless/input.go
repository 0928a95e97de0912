package headless

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-drift/gtkml/pkg/errors"
	"github.com/go-drift/gtkml/pkg/toolkit"
)

// ErrInsensitive is returned when input targets a disabled widget.
var ErrInsensitive = errors.New("headless: widget is insensitive")

// Click simulates a pointer click. Push and link buttons emit "clicked";
// toggle buttons flip and emit "clicked" then "toggled"; check buttons and
// switches flip their state.
func Click(w toolkit.Widget) error {
	switch v := w.(type) {
	case *Button:
		if !v.sensitive {
			return ErrInsensitive
		}
		if err := v.Emit("clicked"); err != nil {
			return err
		}
		if v.toggle {
			v.SetActive(!v.active)
		}
		return nil
	case *Toggle:
		if !v.sensitive {
			return ErrInsensitive
		}
		v.SetActive(!v.active)
		return nil
	case *Box:
		// A labelled switch is a box; forward to its toggle.
		for _, c := range v.children {
			if t, ok := c.(*Toggle); ok {
				return Click(t)
			}
		}
	}
	return fmt.Errorf("headless: cannot click %s", w.TypeName())
}

// Type replaces the text of an entry or text view.
func Type(w toolkit.Widget, text string) error {
	switch v := w.(type) {
	case *Entry:
		if !v.sensitive {
			return ErrInsensitive
		}
		v.SetText(text)
		return nil
	case *TextView:
		if !v.sensitive {
			return ErrInsensitive
		}
		v.SetText(text)
		return nil
	}
	return fmt.Errorf("headless: cannot type into %s", w.TypeName())
}

// Dump writes an indented description of the tree rooted at w.
func Dump(out io.Writer, w toolkit.Widget) error {
	return dump(out, w, 0)
}

func dump(out io.Writer, w toolkit.Widget, depth int) error {
	if w == nil {
		return nil
	}
	d, ok := w.(Describer)
	if !ok {
		_, err := fmt.Fprintf(out, "%s%s\n", strings.Repeat("  ", depth), w.TypeName())
		return err
	}
	if _, err := fmt.Fprintf(out, "%s%s\n", strings.Repeat("  ", depth), d.Describe()); err != nil {
		return err
	}
	for _, c := range d.Children() {
		if err := dump(out, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}
