package widgets

import (
	"github.com/go-drift/gtkml/pkg/gtkml"
	"github.com/go-drift/gtkml/pkg/markup"
	"github.com/go-drift/gtkml/pkg/toolkit"
)

// VBox builds a vertical box. Its spacing comes from the common spacing
// attribute.
func VBox(ctx *gtkml.Context, el *markup.Element) (toolkit.Widget, error) {
	return box(ctx, el, toolkit.Vertical), nil
}

// HBox builds a horizontal box.
func HBox(ctx *gtkml.Context, el *markup.Element) (toolkit.Widget, error) {
	return box(ctx, el, toolkit.Horizontal), nil
}

func box(ctx *gtkml.Context, el *markup.Element, o toolkit.Orientation) toolkit.Box {
	b := ctx.Toolkit.NewBox(o, 0)
	ctx.AppendChildren(b, el)
	return b
}
