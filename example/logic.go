// Package example is the greeter application shipped with gtkml.
//
// Its markup references logic.go; the unit below is linked into the gtkml
// binary and registered as "logic", so the reference resolves by file
// stem.
package example

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-drift/gtkml/pkg/errors"
	"github.com/go-drift/gtkml/pkg/gtkml"
	"github.com/go-drift/gtkml/pkg/toolkit"
)

// LogicName is the registry name of the greeter's logic unit.
const LogicName = "logic"

func init() {
	gtkml.RegisterLogic(LogicName, Handlers)
}

// Handlers returns the greeter's handler table.
func Handlers(ctx *gtkml.Context) (gtkml.HandlerTable, error) {
	return gtkml.HandlerTable{
		"nameSubmit":   nameSubmit,
		"nameChanged":  nameChanged,
		"shoutToggled": shoutToggled,
		"cancel":       cancel,
		"showSource":   showSource,
	}, nil
}

func greeting(ctx *gtkml.Context) string {
	name := "stranger"
	if w, ok := ctx.Widget("nameEntry"); ok {
		entry, ok := w.(toolkit.Entry)
		if !ok {
			ctx.Logf("nameEntry is a %s, not an entry", w.TypeName())
		} else if n := strings.TrimSpace(entry.Text()); n != "" {
			name = n
		}
	}
	hello := "Hello"
	if active(ctx, "formal") {
		hello = "Good day"
	}
	text := fmt.Sprintf("%s, %s!", hello, name)
	if active(ctx, "shout") {
		text = strings.ToUpper(text)
	}
	if active(ctx, "emoji") {
		text += " \U0001F44B"
	}
	return text
}

func active(ctx *gtkml.Context, id string) bool {
	w, ok := ctx.Widget(id)
	if !ok {
		return false
	}
	if t, ok := w.(toolkit.Toggle); ok {
		return t.Active()
	}
	// A labelled switch is a box holding the toggle.
	if d, ok := w.(interface{ Children() []toolkit.Widget }); ok {
		for _, c := range d.Children() {
			if t, ok := c.(toolkit.Toggle); ok {
				return t.Active()
			}
		}
	}
	return false
}

func setLabel(ctx *gtkml.Context, text string) {
	if w, ok := ctx.Widget("nameLabel"); ok {
		if l, ok := w.(toolkit.Label); ok {
			l.SetText(text)
		}
	}
}

func nameSubmit(ctx *gtkml.Context, _ toolkit.Widget, _ ...any) {
	setLabel(ctx, greeting(ctx))
}

// nameChanged clears a stale greeting while the name is edited.
func nameChanged(ctx *gtkml.Context, _ toolkit.Widget, _ ...any) {
	setLabel(ctx, "")
}

func shoutToggled(ctx *gtkml.Context, _ toolkit.Widget, args ...any) {
	if len(args) > 0 {
		ctx.Logf("shout: %v", args[0])
	}
}

func cancel(ctx *gtkml.Context, _ toolkit.Widget, _ ...any) {
	if ctx.Window != nil {
		ctx.Window.Close()
	}
	ctx.App.Quit()
}

// showSource loads the markup document into the source view.
func showSource(ctx *gtkml.Context, _ toolkit.Widget, _ ...any) {
	w, ok := ctx.Widget("sourceTextView")
	if !ok {
		return
	}
	src, err := os.ReadFile(ctx.Doc.Path)
	if err != nil {
		errors.Warn(ctx.Diagnostics(), "example.showSource", errors.KindLogic, fmt.Errorf("could not open source file: %w", err))
		return
	}
	if tv, ok := w.(toolkit.TextView); ok {
		tv.SetText(string(src))
	}
}
