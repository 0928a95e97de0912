// Package toolkit defines the construction contract between the gtkml
// runtime and a native widget toolkit.
//
// The runtime never names a concrete toolkit type. Widget modules build
// widgets through a [Toolkit] and hand back [Widget] values; the builder
// applies common properties through the Widget methods and assembles the
// tree through [Container] and [Bin]. A provider implements the whole
// contract once. The headless subpackage is the reference provider.
package toolkit

import (
	"context"
	"image"
)

// Align is a widget's placement inside the space its parent allocates.
type Align int

const (
	// AlignFill stretches the widget over the allocation.
	AlignFill Align = iota
	// AlignStart places the widget at the leading edge.
	AlignStart
	// AlignCenter centers the widget.
	AlignCenter
	// AlignEnd places the widget at the trailing edge.
	AlignEnd
)

func (a Align) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return "fill"
	}
}

// ParseAlign maps an alignment keyword to an Align.
func ParseAlign(s string) (Align, bool) {
	switch s {
	case "fill":
		return AlignFill, true
	case "start":
		return AlignStart, true
	case "center":
		return AlignCenter, true
	case "end":
		return AlignEnd, true
	}
	return AlignFill, false
}

// Orientation is the main axis of a box.
type Orientation int

const (
	// Horizontal lays children out left to right.
	Horizontal Orientation = iota
	// Vertical lays children out top to bottom.
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Policy controls when a scrolled window shows scrollbars.
type Policy int

const (
	// PolicyAutomatic shows scrollbars when content overflows.
	PolicyAutomatic Policy = iota
	// PolicyAlways always shows scrollbars.
	PolicyAlways
	// PolicyNever never shows scrollbars.
	PolicyNever
)

// ContentFit controls how a picture fills its allocation.
type ContentFit int

const (
	// FitContain scales the content to fit, keeping the aspect ratio.
	FitContain ContentFit = iota
	// FitFill stretches the content.
	FitFill
	// FitCover scales the content to cover, keeping the aspect ratio.
	FitCover
)

// Callback receives the signal-specific arguments of an emitted signal.
type Callback func(args ...any)

// Widget is the handle to a toolkit-native widget object.
type Widget interface {
	// TypeName returns the toolkit's name for the widget type.
	TypeName() string

	SetMarginTop(int)
	SetMarginBottom(int)
	SetMarginStart(int)
	SetMarginEnd(int)
	SetHAlign(Align)
	SetVAlign(Align)
	SetHExpand(bool)
	SetVExpand(bool)
	SetSensitive(bool)
	AddCSSClass(name string)

	// Connect attaches cb to the named signal. It fails with
	// errors.ErrUnknownSignal when the widget has no such signal.
	Connect(signal string, cb Callback) error
}

// Spacer is implemented by widgets with inter-child spacing.
type Spacer interface {
	SetSpacing(int)
}

// Container holds an ordered list of children.
type Container interface {
	Widget
	Append(child Widget)
}

// Bin holds at most one child.
type Bin interface {
	Widget
	SetChild(child Widget)
}

// Box is a linear container.
type Box interface {
	Container
	Spacer
}

// Label displays text.
type Label interface {
	Widget
	SetText(string)
	Text() string
}

// Button is a push, toggle or link button. Push and link buttons emit
// "clicked"; toggle buttons emit "toggled" with the active state.
type Button interface {
	Widget
	Label() string
}

// Toggle is a two-state control. Check buttons emit "toggled" and switches
// emit "state-set", both with the new state as the only argument.
type Toggle interface {
	Widget
	SetActive(bool)
	Active() bool
}

// Entry is a single-line text input. It emits "changed" with the new text.
type Entry interface {
	Widget
	SetPlaceholder(string)
	SetText(string)
	Text() string
}

// TextView is a multi-line text area.
type TextView interface {
	Widget
	SetText(string)
	Text() string
}

// Frame is a labelled bin.
type Frame interface {
	Bin
}

// Notebook is a tabbed container.
type Notebook interface {
	Widget
	AppendPage(child Widget, label string)
}

// Scrolled is a scrollable bin.
type Scrolled interface {
	Bin
	SetPolicy(h, v Policy)
}

// Picture displays an image.
type Picture interface {
	Widget
	SetSizeRequest(width, height int)
	SetContentFit(ContentFit)
}

// HeaderBar is a window title bar.
type HeaderBar interface {
	Widget
	SetTitleWidget(Widget)
	PackStart(Widget)
	PackEnd(Widget)
}

// MenuItem is one entry of a menu button. Action names an application
// action registered with Application.AddAction.
type MenuItem struct {
	Label  string
	Action string
}

// AboutInfo populates an about dialog.
type AboutInfo struct {
	ProgramName string
	Version     string
	Comments    string
	Website     string
	Authors     []string
	Logo        image.Image
}

// Window is a top-level window.
type Window interface {
	Widget
	Bin
	SetTitle(string)
	Title() string
	SetDefaultSize(width, height int)
	SetTitlebar(Widget)
	Present()
	Close()
	// Delegate exposes window members by name to code that only holds a
	// string, such as a logic unit. It reports false for unknown names.
	Delegate(name string) (any, bool)
}

// Application owns the toolkit's event loop.
type Application interface {
	// ID returns the application identifier.
	ID() string
	// OnActivate registers fn to run when the loop starts.
	OnActivate(fn func())
	// AddWindow adopts w; the application keeps running while it has windows.
	AddWindow(w Window)
	// AddAction registers a named action, invocable from menus.
	AddAction(name string, fn func())
	// Activate invokes a registered action. It reports false for unknown names.
	Activate(action string) bool
	// Post schedules fn on the UI thread. It is safe to call from any goroutine.
	Post(fn func())
	// Run runs the event loop until ctx is done or Quit is called.
	Run(ctx context.Context) error
	// Quit stops the event loop.
	Quit()
}

// Toolkit constructs widgets.
type Toolkit interface {
	// Name identifies the provider.
	Name() string

	NewApplication(id string) Application
	NewWindow(app Application) Window
	NewHeaderBar() HeaderBar
	NewBox(o Orientation, spacing int) Box
	NewLabel(text string) Label
	NewButton(label string) Button
	NewToggleButton(label string) Button
	NewLinkButton(uri, label string) Button
	NewCheckButton(label string) Toggle
	NewSwitch() Toggle
	NewEntry() Entry
	NewTextView() TextView
	NewFrame(label string) Frame
	NewNotebook() Notebook
	NewScrolled() Scrolled
	NewPicture(img image.Image) Picture
	// NewImage returns an empty image, used as a placeholder.
	NewImage() Widget
	NewMenuButton(icon string, items []MenuItem) Widget
	// ShowAbout presents an about dialog over parent.
	ShowAbout(parent Window, info AboutInfo)

	// LoadCSS installs the stylesheet at path for the whole display.
	LoadCSS(path string) error
	// Symbol looks up a toolkit constant or constructor by name.
	Symbol(name string) (any, bool)
}
