// Package headless is a retained, in-memory toolkit provider.
//
// Every widget records the properties set on it and the callbacks connected
// to it, so a built tree can be inspected, dumped and driven without a
// display. Input helpers such as [Click] and [Type] emit the same signals a
// native toolkit would emit for user input.
package headless

import (
	"fmt"
	"image"
	"os"
	"sync"

	"github.com/go-drift/gtkml/pkg/toolkit"
)

// Toolkit constructs headless widgets.
type Toolkit struct {
	mu     sync.Mutex
	css    []string
	abouts []toolkit.AboutInfo
}

// New returns a headless toolkit.
func New() *Toolkit {
	return &Toolkit{}
}

var _ toolkit.Toolkit = (*Toolkit)(nil)

func (t *Toolkit) Name() string { return "headless" }

func (t *Toolkit) NewApplication(id string) toolkit.Application {
	return newApplication(id)
}

func (t *Toolkit) NewWindow(app toolkit.Application) toolkit.Window {
	w := &Window{Bin: Bin{node: newNode("Window", "close-request")}}
	if app != nil {
		app.AddWindow(w)
	}
	return w
}

func (t *Toolkit) NewHeaderBar() toolkit.HeaderBar {
	return &HeaderBar{node: newNode("HeaderBar")}
}

func (t *Toolkit) NewBox(o toolkit.Orientation, spacing int) toolkit.Box {
	return &Box{node: newNode("Box"), orientation: o, spacing: spacing}
}

func (t *Toolkit) NewLabel(text string) toolkit.Label {
	return &Label{node: newNode("Label"), text: text}
}

func (t *Toolkit) NewButton(label string) toolkit.Button {
	return &Button{node: newNode("Button", "clicked"), label: label}
}

func (t *Toolkit) NewToggleButton(label string) toolkit.Button {
	return &Button{node: newNode("ToggleButton", "clicked", "toggled"), label: label, toggle: true}
}

func (t *Toolkit) NewLinkButton(uri, label string) toolkit.Button {
	if label == "" {
		label = uri
	}
	return &Button{node: newNode("LinkButton", "clicked", "activate-link"), label: label, uri: uri}
}

func (t *Toolkit) NewCheckButton(label string) toolkit.Toggle {
	return &Toggle{node: newNode("CheckButton", "toggled"), label: label, signal: "toggled"}
}

func (t *Toolkit) NewSwitch() toolkit.Toggle {
	return &Toggle{node: newNode("Switch", "state-set"), signal: "state-set"}
}

func (t *Toolkit) NewEntry() toolkit.Entry {
	return &Entry{node: newNode("Entry", "changed", "activate")}
}

func (t *Toolkit) NewTextView() toolkit.TextView {
	return &TextView{node: newNode("TextView")}
}

func (t *Toolkit) NewFrame(label string) toolkit.Frame {
	return &Bin{node: newNode("Frame"), label: label}
}

func (t *Toolkit) NewNotebook() toolkit.Notebook {
	return &Notebook{node: newNode("Notebook", "switch-page")}
}

func (t *Toolkit) NewScrolled() toolkit.Scrolled {
	return &Scrolled{Bin: Bin{node: newNode("ScrolledWindow")}}
}

func (t *Toolkit) NewPicture(img image.Image) toolkit.Picture {
	return &Picture{node: newNode("Picture"), img: img}
}

func (t *Toolkit) NewImage() toolkit.Widget {
	return &Picture{node: newNode("Image")}
}

func (t *Toolkit) NewMenuButton(icon string, items []toolkit.MenuItem) toolkit.Widget {
	return &MenuButton{node: newNode("MenuButton"), icon: icon, items: append([]toolkit.MenuItem(nil), items...)}
}

func (t *Toolkit) ShowAbout(parent toolkit.Window, info toolkit.AboutInfo) {
	t.mu.Lock()
	t.abouts = append(t.abouts, info)
	t.mu.Unlock()
}

// Abouts returns the about dialogs shown so far.
func (t *Toolkit) Abouts() []toolkit.AboutInfo {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]toolkit.AboutInfo(nil), t.abouts...)
}

// LoadCSS records the stylesheet. The file must exist.
func (t *Toolkit) LoadCSS(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("headless: stylesheet %s is a directory", path)
	}
	t.mu.Lock()
	t.css = append(t.css, path)
	t.mu.Unlock()
	return nil
}

// Stylesheets returns the stylesheets loaded so far.
func (t *Toolkit) Stylesheets() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.css...)
}

// Symbol exposes enumerations and constructors by name.
func (t *Toolkit) Symbol(name string) (any, bool) {
	switch name {
	case "Align":
		return map[string]toolkit.Align{
			"FILL":   toolkit.AlignFill,
			"START":  toolkit.AlignStart,
			"CENTER": toolkit.AlignCenter,
			"END":    toolkit.AlignEnd,
		}, true
	case "Orientation":
		return map[string]toolkit.Orientation{
			"HORIZONTAL": toolkit.Horizontal,
			"VERTICAL":   toolkit.Vertical,
		}, true
	case "Label":
		return t.NewLabel, true
	case "Button":
		return t.NewButton, true
	case "Box":
		return t.NewBox, true
	case "Entry":
		return t.NewEntry, true
	}
	return nil, false
}
