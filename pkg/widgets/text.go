package widgets

import (
	"strings"

	"github.com/go-drift/gtkml/pkg/gtkml"
	"github.com/go-drift/gtkml/pkg/markup"
	"github.com/go-drift/gtkml/pkg/toolkit"
)

// Entry builds a single-line input. The inline text is the placeholder and
// the text attribute the initial value. onchange receives the new text.
func Entry(ctx *gtkml.Context, el *markup.Element) (toolkit.Widget, error) {
	e := ctx.Toolkit.NewEntry()
	if p := strings.TrimSpace(el.Text()); p != "" {
		e.SetPlaceholder(p)
	}
	if v, ok := el.Attr("text"); ok {
		e.SetText(v)
	}
	ctx.Bind(e, "changed", el, "onchange")
	return e, nil
}

// TextView builds a multi-line text area holding the trimmed inline text.
func TextView(ctx *gtkml.Context, el *markup.Element) (toolkit.Widget, error) {
	tv := ctx.Toolkit.NewTextView()
	if text := strings.TrimSpace(el.Text()); text != "" {
		tv.SetText(text)
	}
	return tv, nil
}
