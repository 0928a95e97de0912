package headless

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/go-drift/gtkml/pkg/toolkit"
)

// Box is a linear container.
type Box struct {
	node
	orientation toolkit.Orientation
	spacing     int
}

func (b *Box) Append(child toolkit.Widget) { b.children = append(b.children, child) }
func (b *Box) SetSpacing(v int)            { b.spacing = v }

// Spacing returns the inter-child spacing.
func (b *Box) Spacing() int { return b.spacing }

// Orientation returns the box's main axis.
func (b *Box) Orientation() toolkit.Orientation { return b.orientation }

func (b *Box) Describe() string {
	return b.describe(b.orientation.String(), "spacing="+strconv.Itoa(b.spacing))
}

// Label displays text.
type Label struct {
	node
	text string
}

func (l *Label) SetText(s string) { l.text = s }
func (l *Label) Text() string     { return l.text }
func (l *Label) Describe() string { return l.describe(strconv.Quote(l.text)) }

// Button is a push, toggle or link button.
type Button struct {
	node
	label  string
	uri    string
	toggle bool
	active bool
}

func (b *Button) Label() string { return b.label }

// URI returns the link target of a link button.
func (b *Button) URI() string { return b.uri }

// SetActive sets a toggle button's state, emitting "toggled" on change.
func (b *Button) SetActive(v bool) {
	if !b.toggle || b.active == v {
		return
	}
	b.active = v
	_ = b.Emit("toggled", v)
}

// Active reports a toggle button's state.
func (b *Button) Active() bool { return b.active }

func (b *Button) Describe() string {
	extra := []string{strconv.Quote(b.label)}
	if b.uri != "" {
		extra = append(extra, "uri="+b.uri)
	}
	if b.toggle && b.active {
		extra = append(extra, "active")
	}
	return b.describe(extra...)
}

// Toggle is a check button or a switch.
type Toggle struct {
	node
	label  string
	signal string
	active bool
}

// SetActive sets the state, emitting the toggle signal on change.
func (t *Toggle) SetActive(v bool) {
	if t.active == v {
		return
	}
	t.active = v
	_ = t.Emit(t.signal, v)
}

func (t *Toggle) Active() bool { return t.active }

// Label returns the check button's label.
func (t *Toggle) Label() string { return t.label }

func (t *Toggle) Describe() string {
	extra := []string{}
	if t.label != "" {
		extra = append(extra, strconv.Quote(t.label))
	}
	if t.active {
		extra = append(extra, "active")
	}
	return t.describe(extra...)
}

// Entry is a single-line text input.
type Entry struct {
	node
	placeholder string
	text        string
}

func (e *Entry) SetPlaceholder(s string) { e.placeholder = s }

// Placeholder returns the hint shown while the entry is empty.
func (e *Entry) Placeholder() string { return e.placeholder }

// SetText replaces the text, emitting "changed" on change.
func (e *Entry) SetText(s string) {
	if e.text == s {
		return
	}
	e.text = s
	_ = e.Emit("changed", s)
}

func (e *Entry) Text() string { return e.text }

func (e *Entry) Describe() string {
	extra := []string{}
	if e.placeholder != "" {
		extra = append(extra, "placeholder="+strconv.Quote(e.placeholder))
	}
	if e.text != "" {
		extra = append(extra, "text="+strconv.Quote(e.text))
	}
	return e.describe(extra...)
}

// TextView is a multi-line text area.
type TextView struct {
	node
	text string
}

func (t *TextView) SetText(s string) { t.text = s }
func (t *TextView) Text() string     { return t.text }

func (t *TextView) Describe() string {
	lines := strings.Count(t.text, "\n")
	if t.text != "" {
		lines++
	}
	return t.describe(fmt.Sprintf("lines=%d", lines))
}

// Bin holds at most one child.
type Bin struct {
	node
	label string
}

func (b *Bin) SetChild(child toolkit.Widget) {
	b.children = b.children[:0]
	if child != nil {
		b.children = append(b.children, child)
	}
}

// Child returns the bin's child, or nil.
func (b *Bin) Child() toolkit.Widget {
	if len(b.children) == 0 {
		return nil
	}
	return b.children[0]
}

func (b *Bin) Describe() string {
	if b.label != "" {
		return b.describe(strconv.Quote(b.label))
	}
	return b.describe()
}

// Scrolled is a scrollable bin.
type Scrolled struct {
	Bin
	hpolicy, vpolicy toolkit.Policy
}

func (s *Scrolled) SetPolicy(h, v toolkit.Policy) { s.hpolicy, s.vpolicy = h, v }

// Policy returns the horizontal and vertical scrollbar policies.
func (s *Scrolled) Policy() (h, v toolkit.Policy) { return s.hpolicy, s.vpolicy }

// Notebook is a tabbed container.
type Notebook struct {
	node
	labels []string
}

func (n *Notebook) AppendPage(child toolkit.Widget, label string) {
	n.children = append(n.children, child)
	n.labels = append(n.labels, label)
}

// TabLabels returns the page labels in order.
func (n *Notebook) TabLabels() []string { return append([]string(nil), n.labels...) }

func (n *Notebook) Describe() string {
	quoted := make([]string, len(n.labels))
	for i, l := range n.labels {
		quoted[i] = strconv.Quote(l)
	}
	return n.describe("tabs=" + strings.Join(quoted, ","))
}

// Picture displays an image. A Picture without an image is the empty
// placeholder returned by Toolkit.NewImage.
type Picture struct {
	node
	img           image.Image
	width, height int
	fit           toolkit.ContentFit
}

func (p *Picture) SetSizeRequest(w, h int)            { p.width, p.height = w, h }
func (p *Picture) SetContentFit(f toolkit.ContentFit) { p.fit = f }

// Image returns the displayed image, or nil for a placeholder.
func (p *Picture) Image() image.Image { return p.img }

// SizeRequest returns the requested size.
func (p *Picture) SizeRequest() (w, h int) { return p.width, p.height }

// Empty reports whether the picture is a placeholder.
func (p *Picture) Empty() bool { return p.img == nil }

func (p *Picture) Describe() string {
	if p.img == nil {
		return p.describe("empty")
	}
	b := p.img.Bounds()
	extra := []string{fmt.Sprintf("%dx%d", b.Dx(), b.Dy())}
	if p.width > 0 || p.height > 0 {
		extra = append(extra, fmt.Sprintf("request=%dx%d", p.width, p.height))
	}
	return p.describe(extra...)
}

// HeaderBar is a window title bar.
type HeaderBar struct {
	node
	title toolkit.Widget
	start []toolkit.Widget
	end   []toolkit.Widget
}

func (h *HeaderBar) SetTitleWidget(w toolkit.Widget) { h.title = w; h.rebuild() }
func (h *HeaderBar) PackStart(w toolkit.Widget)      { h.start = append(h.start, w); h.rebuild() }
func (h *HeaderBar) PackEnd(w toolkit.Widget)        { h.end = append(h.end, w); h.rebuild() }

// TitleWidget returns the custom title widget, or nil.
func (h *HeaderBar) TitleWidget() toolkit.Widget { return h.title }

// Start returns the widgets packed at the start.
func (h *HeaderBar) Start() []toolkit.Widget { return h.start }

// End returns the widgets packed at the end.
func (h *HeaderBar) End() []toolkit.Widget { return h.end }

func (h *HeaderBar) rebuild() {
	h.children = h.children[:0]
	if h.title != nil {
		h.children = append(h.children, h.title)
	}
	h.children = append(h.children, h.start...)
	h.children = append(h.children, h.end...)
}

func (h *HeaderBar) Describe() string {
	return h.describe(fmt.Sprintf("start=%d end=%d", len(h.start), len(h.end)))
}

// MenuButton opens a menu of application actions.
type MenuButton struct {
	node
	icon  string
	items []toolkit.MenuItem
}

// Items returns the menu entries.
func (m *MenuButton) Items() []toolkit.MenuItem { return append([]toolkit.MenuItem(nil), m.items...) }

func (m *MenuButton) Describe() string {
	labels := make([]string, len(m.items))
	for i, it := range m.items {
		labels[i] = it.Label
	}
	return m.describe("icon="+m.icon, "items="+strings.Join(labels, ","))
}
