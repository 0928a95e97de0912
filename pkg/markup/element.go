package markup

import (
	"strconv"
	"strings"
)

// Attr is one attribute of an Element, in source order.
type Attr struct {
	Name  string
	Value string
}

// Element is one parsed node of a markup document.
//
// Elements are immutable once parsed. Tags are lowercased by the parser;
// attribute lookups ignore case. Slices returned by accessors are shared
// with the tree and must not be modified.
type Element struct {
	tag      string
	attrs    []Attr
	text     string
	children []*Element
	line     int
}

// NewElement builds an element outside the parser, for modules that
// synthesize markup. The tag is lowercased.
func NewElement(tag string, attrs []Attr, text string, children ...*Element) *Element {
	return &Element{
		tag:      strings.ToLower(tag),
		attrs:    append([]Attr(nil), attrs...),
		text:     text,
		children: append([]*Element(nil), children...),
	}
}

// Tag returns the lowercased tag name.
func (e *Element) Tag() string {
	return e.tag
}

// Attrs returns the attributes in source order.
func (e *Element) Attrs() []Attr {
	return e.attrs
}

// Text returns the inline text: the character data that precedes the first
// child element, untrimmed.
func (e *Element) Text() string {
	return e.text
}

// Children returns the child elements in document order.
func (e *Element) Children() []*Element {
	return e.children
}

// Line returns the source line of the start tag, or 0 for synthesized
// elements.
func (e *Element) Line() int {
	return e.line
}

// Attr returns the value of the named attribute. Names are compared
// case-insensitively; the first occurrence wins.
func (e *Element) Attr(name string) (string, bool) {
	return Lookup(e.attrs, name)
}

// AttrOr returns the named attribute or fallback when it is absent.
func (e *Element) AttrOr(name, fallback string) string {
	if v, ok := e.Attr(name); ok {
		return v
	}
	return fallback
}

// Has reports whether the named attribute is present.
func (e *Element) Has(name string) bool {
	_, ok := e.Attr(name)
	return ok
}

// Bool reports whether the named attribute is present and truthy.
func (e *Element) Bool(name string) bool {
	v, ok := e.Attr(name)
	return ok && Truthy(v)
}

// Int parses the named attribute as a base-10 integer.
func (e *Element) Int(name string) (int, bool) {
	v, ok := e.Attr(name)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return n, true
}

// ChildrenByTag returns the direct children with the given tag.
func (e *Element) ChildrenByTag(tag string) []*Element {
	tag = strings.ToLower(tag)
	var out []*Element
	for _, c := range e.children {
		if c.tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// FirstChild returns the first direct child with the given tag, or nil.
func (e *Element) FirstChild(tag string) *Element {
	tag = strings.ToLower(tag)
	for _, c := range e.children {
		if c.tag == tag {
			return c
		}
	}
	return nil
}

// Walk visits e and its descendants depth-first in document order.
// Returning false from fn stops descent into that element's children.
func (e *Element) Walk(fn func(*Element) bool) {
	if !fn(e) {
		return
	}
	for _, c := range e.children {
		c.Walk(fn)
	}
}

// Lookup finds name in attrs, ignoring case.
func Lookup(attrs []Attr, name string) (string, bool) {
	for _, a := range attrs {
		if strings.EqualFold(a.Name, name) {
			return a.Value, true
		}
	}
	return "", false
}

// Merge returns defaults overlaid by attrs: every attribute of attrs is kept
// in order, followed by the defaults whose names attrs does not mention.
func Merge(defaults, attrs []Attr) []Attr {
	out := append([]Attr(nil), attrs...)
	for _, d := range defaults {
		if _, ok := Lookup(attrs, d.Name); !ok {
			out = append(out, d)
		}
	}
	return out
}

// Truthy reports whether v spells a true boolean: 1, true, yes or on,
// ignoring case and surrounding space.
func Truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
