package gtkml

import (
	"fmt"
	"strings"

	"github.com/go-drift/gtkml/pkg/errors"
	"github.com/go-drift/gtkml/pkg/markup"
	"github.com/go-drift/gtkml/pkg/toolkit"
)

const (
	// DefaultTitle is the window title when neither the window nor the
	// head names one.
	DefaultTitle = "gtkML Application"

	DefaultWidth  = 640
	DefaultHeight = 480

	// BoxSpacing is the spacing of the window body and of vertical boxes
	// synthesized around several children.
	BoxSpacing = 6
)

// structural tags never reach the resolver.
var structural = map[string]bool{
	markup.TagHead:      true,
	markup.TagScript:    true,
	markup.TagHeaderBar: true,
}

// Build constructs the window described by the document. The body is a
// vertical box holding the window element's children in document order;
// the first headerbar child becomes the title bar. Elements that fail to
// resolve or construct are reported and left out. Build fails only when
// the document has no window.
func (c *Context) Build() (toolkit.Window, error) {
	var el *markup.Element
	if c.Doc != nil {
		el = c.Doc.Window
	}
	if el == nil {
		return nil, &errors.StructureError{Source: c.UIPath, Err: errors.ErrNoWindow}
	}

	win := c.Toolkit.NewWindow(c.App)
	c.Window = win
	win.SetTitle(c.title(el))
	width, height := DefaultWidth, DefaultHeight
	if n, ok := el.Int("width"); ok && n > 0 {
		width = n
	}
	if n, ok := el.Int("height"); ok && n > 0 {
		height = n
	}
	win.SetDefaultSize(width, height)

	if hb := el.FirstChild(markup.TagHeaderBar); hb != nil {
		win.SetTitlebar(c.buildHeaderBar(hb))
	}

	body := c.Toolkit.NewBox(toolkit.Vertical, BoxSpacing)
	body.SetHExpand(true)
	body.SetVExpand(true)
	for _, child := range el.Children() {
		if structural[child.Tag()] {
			continue
		}
		if w := c.CreateWidget(child); w != nil {
			body.Append(w)
		}
	}
	win.SetChild(body)
	c.ApplyCommon(win, el.Attrs())
	return win, nil
}

func (c *Context) title(el *markup.Element) string {
	if t, ok := el.Attr("title"); ok && strings.TrimSpace(t) != "" {
		return t
	}
	return c.Info.Get("program_name", DefaultTitle)
}

// CreateWidget runs one element through the pipeline: resolve its tag,
// construct the widget, apply the common properties. It returns nil when
// the element produces no widget; the reason has been reported.
func (c *Context) CreateWidget(el *markup.Element) toolkit.Widget {
	m, err := c.resolver.Resolve(el.Tag())
	if err != nil {
		c.Warn(el, errors.KindResolve, err)
		return nil
	}

	var w toolkit.Widget
	op := fmt.Sprintf("gtkml.Construct <%s>", el.Tag())
	if ok := errors.Guard(c.diag, op, func() { w, err = m.Construct(c, el) }); !ok {
		return nil
	}
	if err != nil {
		c.Warn(el, errors.KindModule, err)
		return nil
	}
	if w == nil {
		return nil
	}

	attrs := el.Attrs()
	if src, ok := m.(AttributeSource); ok {
		attrs = src.Attributes(c, el)
	}
	c.ApplyCommon(w, attrs)
	return w
}

// CreateChildren builds the children of el in document order, dropping
// those that produce no widget.
func (c *Context) CreateChildren(el *markup.Element) []toolkit.Widget {
	var out []toolkit.Widget
	for _, child := range el.Children() {
		if w := c.CreateWidget(child); w != nil {
			out = append(out, w)
		}
	}
	return out
}

// AppendChildren builds the children of el into parent.
func (c *Context) AppendChildren(parent toolkit.Container, el *markup.Element) {
	for _, w := range c.CreateChildren(el) {
		parent.Append(w)
	}
}

// SingleChild builds the children of el as one widget for containers that
// hold a single child: nil for none, the child itself for one, and a
// vertical box around them for several.
func (c *Context) SingleChild(el *markup.Element) toolkit.Widget {
	children := c.CreateChildren(el)
	switch len(children) {
	case 0:
		return nil
	case 1:
		return children[0]
	}
	box := c.Toolkit.NewBox(toolkit.Vertical, BoxSpacing)
	for _, w := range children {
		box.Append(w)
	}
	return box
}

// Bind connects the handler named by el's attr attribute to signal on w.
// The handler is looked up now, not when the signal fires. A missing
// handler is reported and w stays inert for that event. Bind reports
// whether a handler was connected.
func (c *Context) Bind(w toolkit.Widget, signal string, el *markup.Element, attr string) bool {
	name, ok := el.Attr(attr)
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return false
	}
	h, ok := c.Handler(name)
	if !ok {
		c.Warn(el, errors.KindHandler, fmt.Errorf("%s=%q: %w", attr, name, errors.ErrHandlerNotFound))
		return false
	}
	op := "gtkml.handler " + name
	err := w.Connect(signal, func(args ...any) {
		errors.Guard(c.diag, op, func() { h(c, w, args...) })
	})
	if err != nil {
		c.Warn(el, errors.KindHandler, fmt.Errorf("%s=%q: %w", attr, name, err))
		return false
	}
	return true
}

func (c *Context) buildHeaderBar(el *markup.Element) toolkit.HeaderBar {
	hb := c.Toolkit.NewHeaderBar()
	if t, ok := el.Attr("title"); ok {
		hb.SetTitleWidget(c.Toolkit.NewLabel(t))
	}
	for _, child := range el.Children() {
		if child.Tag() == "menu" {
			if !strings.EqualFold(child.AttrOr("include", ""), "default") {
				c.Warn(child, errors.KindModule, fmt.Errorf("unsupported menu %q", child.AttrOr("include", "")))
				continue
			}
			hb.PackEnd(c.defaultMenu())
			continue
		}
		w := c.CreateWidget(child)
		if w == nil {
			continue
		}
		if strings.EqualFold(child.AttrOr("pack", "start"), "end") {
			hb.PackEnd(w)
		} else {
			hb.PackStart(w)
		}
	}
	c.ApplyCommon(hb, el.Attrs())
	return hb
}
