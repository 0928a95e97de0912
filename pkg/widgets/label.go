package widgets

import (
	"strings"

	"github.com/go-drift/gtkml/pkg/gtkml"
	"github.com/go-drift/gtkml/pkg/markup"
	"github.com/go-drift/gtkml/pkg/toolkit"
)

// Label builds a label from the element's inline text, or from its text
// attribute when the element has none.
func Label(ctx *gtkml.Context, el *markup.Element) (toolkit.Widget, error) {
	text := strings.TrimSpace(el.Text())
	if text == "" {
		text = el.AttrOr("text", "")
	}
	return ctx.Toolkit.NewLabel(text), nil
}
