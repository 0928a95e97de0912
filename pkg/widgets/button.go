package widgets

import (
	"fmt"
	"strings"

	"github.com/go-drift/gtkml/pkg/gtkml"
	"github.com/go-drift/gtkml/pkg/markup"
	"github.com/go-drift/gtkml/pkg/toolkit"
)

// Button builds a push, toggle or link button labelled with the inline
// text. The type attribute selects the kind (normal, toggle or link); link
// buttons open href, "#" by default. onclick binds to "clicked", or to
// "toggled" for toggle buttons.
func Button(ctx *gtkml.Context, el *markup.Element) (toolkit.Widget, error) {
	tk := ctx.Toolkit
	label := strings.TrimSpace(el.Text())

	var (
		b      toolkit.Button
		signal = "clicked"
	)
	switch kind := strings.ToLower(strings.TrimSpace(el.AttrOr("type", "normal"))); kind {
	case "normal", "":
		b = tk.NewButton(label)
	case "toggle":
		b = tk.NewToggleButton(label)
		signal = "toggled"
		if t, ok := b.(toolkit.Toggle); ok && el.Bool("active") {
			t.SetActive(true)
		}
	case "link":
		b = tk.NewLinkButton(el.AttrOr("href", "#"), label)
	default:
		return nil, fmt.Errorf("unknown button type %q", kind)
	}
	ctx.Bind(b, signal, el, "onclick")
	return b, nil
}

// Checkbox builds a check button from the label and active attributes.
// onclick receives the new state.
func Checkbox(ctx *gtkml.Context, el *markup.Element) (toolkit.Widget, error) {
	cb := ctx.Toolkit.NewCheckButton(strings.TrimSpace(el.AttrOr("label", "")))
	cb.SetActive(el.Bool("active"))
	ctx.Bind(cb, "toggled", el, "onclick")
	return cb, nil
}

// Switch builds a switch. With a label attribute the result is a
// horizontal box holding the label and the switch. onclick is bound to the
// switch's "state-set" and receives the new state.
func Switch(ctx *gtkml.Context, el *markup.Element) (toolkit.Widget, error) {
	tk := ctx.Toolkit
	sw := tk.NewSwitch()
	sw.SetActive(el.Bool("active"))
	ctx.Bind(sw, "state-set", el, "onclick")

	label, ok := el.Attr("label")
	if !ok || label == "" {
		return sw, nil
	}
	row := tk.NewBox(toolkit.Horizontal, 8)
	l := tk.NewLabel(label)
	l.SetHAlign(toolkit.AlignStart)
	row.Append(l)
	row.Append(sw)
	return row, nil
}
