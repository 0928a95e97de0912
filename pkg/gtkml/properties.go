package gtkml

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/gtkml/pkg/errors"
	"github.com/go-drift/gtkml/pkg/markup"
	"github.com/go-drift/gtkml/pkg/toolkit"
)

// property applies one common attribute. attrs is the full attribute list,
// for properties that depend on others.
type property struct {
	name  string
	apply func(c *Context, w toolkit.Widget, v string, attrs []markup.Attr)
}

// commonProperties are applied in this order.
var commonProperties = []property{
	{"margin", func(_ *Context, w toolkit.Widget, v string, _ []markup.Attr) {
		if n, ok := atoi(v); ok {
			w.SetMarginTop(n)
			w.SetMarginBottom(n)
			w.SetMarginStart(n)
			w.SetMarginEnd(n)
		}
	}},
	{"margin-top", intSetter(toolkit.Widget.SetMarginTop)},
	{"margin-bottom", intSetter(toolkit.Widget.SetMarginBottom)},
	{"margin-start", intSetter(toolkit.Widget.SetMarginStart)},
	{"margin-end", intSetter(toolkit.Widget.SetMarginEnd)},
	{"spacing", func(_ *Context, w toolkit.Widget, v string, _ []markup.Attr) {
		if s, ok := w.(toolkit.Spacer); ok {
			if n, ok := atoi(v); ok {
				s.SetSpacing(n)
			}
		}
	}},
	{"halign", alignSetter(toolkit.Widget.SetHAlign)},
	{"valign", alignSetter(toolkit.Widget.SetVAlign)},
	{"expand", func(_ *Context, w toolkit.Widget, v string, _ []markup.Attr) {
		on := markup.Truthy(v)
		w.SetHExpand(on)
		w.SetVExpand(on)
	}},
	{"hexpand", boolSetter(toolkit.Widget.SetHExpand)},
	{"vexpand", boolSetter(toolkit.Widget.SetVExpand)},
	{"disabled", func(_ *Context, w toolkit.Widget, v string, _ []markup.Attr) {
		if markup.Truthy(v) {
			w.SetSensitive(false)
		}
	}},
	{"enabled", func(_ *Context, w toolkit.Widget, v string, attrs []markup.Attr) {
		if _, ok := markup.Lookup(attrs, "disabled"); ok {
			return
		}
		w.SetSensitive(markup.Truthy(v))
	}},
	{"class", addClasses},
	{"classes", addClasses},
	{"id", func(c *Context, w toolkit.Widget, v string, _ []markup.Attr) {
		c.Register(v, w)
	}},
}

func atoi(v string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	return n, err == nil
}

func intSetter(set func(toolkit.Widget, int)) func(*Context, toolkit.Widget, string, []markup.Attr) {
	return func(_ *Context, w toolkit.Widget, v string, _ []markup.Attr) {
		if n, ok := atoi(v); ok {
			set(w, n)
		}
	}
}

func boolSetter(set func(toolkit.Widget, bool)) func(*Context, toolkit.Widget, string, []markup.Attr) {
	return func(_ *Context, w toolkit.Widget, v string, _ []markup.Attr) {
		set(w, markup.Truthy(v))
	}
}

func alignSetter(set func(toolkit.Widget, toolkit.Align)) func(*Context, toolkit.Widget, string, []markup.Attr) {
	return func(_ *Context, w toolkit.Widget, v string, _ []markup.Attr) {
		if a, ok := toolkit.ParseAlign(strings.ToLower(strings.TrimSpace(v))); ok {
			set(w, a)
		}
	}
}

func addClasses(_ *Context, w toolkit.Widget, v string, _ []markup.Attr) {
	for _, name := range strings.Fields(v) {
		w.AddCSSClass(name)
	}
}

// ApplyCommon applies the common properties named in attrs to w. Each
// property is applied on its own: a panic from the toolkit while applying
// one is reported and the remaining properties still apply. Unparsable
// numbers and unknown alignment keywords are ignored.
func (c *Context) ApplyCommon(w toolkit.Widget, attrs []markup.Attr) {
	if w == nil {
		return
	}
	for _, p := range commonProperties {
		v, ok := markup.Lookup(attrs, p.name)
		if !ok {
			continue
		}
		c.applyOne(w, p, v, attrs)
	}
}

func (c *Context) applyOne(w toolkit.Widget, p property, v string, attrs []markup.Attr) {
	defer func() {
		if r := recover(); r != nil {
			errors.Report(c.diag, &errors.Error{
				Op:         "gtkml.ApplyCommon",
				Kind:       errors.KindProperty,
				Severity:   errors.SeverityWarn,
				Tag:        w.TypeName(),
				Err:        fmt.Errorf("%s=%q: %v", p.name, v, r),
				StackTrace: errors.CaptureStack(),
			})
		}
	}()
	p.apply(c, w, v, attrs)
}
