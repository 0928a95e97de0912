package widgets

import (
	"github.com/go-drift/gtkml/pkg/gtkml"
	"github.com/go-drift/gtkml/pkg/markup"
	"github.com/go-drift/gtkml/pkg/toolkit"
)

// Frame builds a labelled frame. A single image or label child is centered
// and expanded to fill the frame; several children are stacked in a
// vertical box.
func Frame(ctx *gtkml.Context, el *markup.Element) (toolkit.Widget, error) {
	f := ctx.Toolkit.NewFrame(el.AttrOr("label", ""))
	children := ctx.CreateChildren(el)
	switch len(children) {
	case 0:
	case 1:
		child := children[0]
		switch child.TypeName() {
		case "Image", "Picture", "Label":
			child.SetHAlign(toolkit.AlignCenter)
			child.SetVAlign(toolkit.AlignCenter)
			child.SetHExpand(true)
			child.SetVExpand(true)
		}
		f.SetChild(child)
	default:
		box := ctx.Toolkit.NewBox(toolkit.Vertical, gtkml.BoxSpacing)
		for _, w := range children {
			box.Append(w)
		}
		f.SetChild(box)
	}
	return f, nil
}

// Scroll builds a scrolled window with automatic scrollbars around its
// children.
func Scroll(ctx *gtkml.Context, el *markup.Element) (toolkit.Widget, error) {
	s := ctx.Toolkit.NewScrolled()
	s.SetPolicy(toolkit.PolicyAutomatic, toolkit.PolicyAutomatic)
	if child := ctx.SingleChild(el); child != nil {
		s.SetChild(child)
	}
	return s, nil
}

// Notebook builds a notebook with one page per tab child. A page is a
// vertical box of the tab's children, labelled by the tab's label
// attribute. Children other than tabs are ignored.
func Notebook(ctx *gtkml.Context, el *markup.Element) (toolkit.Widget, error) {
	nb := ctx.Toolkit.NewNotebook()
	for _, tab := range el.ChildrenByTag("tab") {
		page := ctx.Toolkit.NewBox(toolkit.Vertical, gtkml.BoxSpacing)
		ctx.AppendChildren(page, tab)
		nb.AppendPage(page, tab.AttrOr("label", "Tab"))
	}
	return nb, nil
}
