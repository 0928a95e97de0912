package gtkml

import (
	"os"
	"strings"

	"golang.org/x/text/cases"

	"github.com/go-drift/gtkml/pkg/assets"
	"github.com/go-drift/gtkml/pkg/errors"
	"github.com/go-drift/gtkml/pkg/markup"
	"github.com/go-drift/gtkml/pkg/toolkit"
)

// Context is the application context shared by the builder, widget modules
// and logic units. It is created by NewApp and passed by reference to every
// construction and handler call.
type Context struct {
	// Toolkit creates the widgets.
	Toolkit toolkit.Toolkit
	// App is the toolkit application.
	App toolkit.Application
	// Window is the built window, nil before Build.
	Window toolkit.Window
	// Doc is the parsed document.
	Doc *markup.Document
	// Info is the document's head metadata.
	Info markup.AppInfo

	// UIPath is the markup file, AppDir its directory.
	UIPath string
	AppDir string
	// AppRoot is the detected application root.
	AppRoot string
	// AssetsDir is the explicitly configured asset directory, if any.
	AssetsDir string
	// Assets caches decoded images.
	Assets *assets.Cache

	diag     errors.Handler
	resolver *Resolver

	handlers HandlerTable
	logicRef string

	widgets map[string]named
	ids     []string
}

type named struct {
	id     string
	widget toolkit.Widget
}

func newContext(tk toolkit.Toolkit, doc *markup.Document, diag errors.Handler) *Context {
	if diag == nil {
		diag = errors.Default()
	}
	return &Context{
		Toolkit: tk,
		Doc:     doc,
		Info:    doc.Info,
		UIPath:  doc.Path,
		AppDir:  doc.Dir,
		Assets:  assets.NewCache(),
		diag:    diag,
		widgets: make(map[string]named),
	}
}

func foldID(id string) string {
	return cases.Fold().String(strings.TrimSpace(id))
}

// Widget returns the widget registered under id. Ids are case-insensitive.
func (c *Context) Widget(id string) (toolkit.Widget, bool) {
	n, ok := c.widgets[foldID(id)]
	return n.widget, ok
}

// IDs returns the registered ids in registration order, as written.
func (c *Context) IDs() []string {
	return append([]string(nil), c.ids...)
}

// Register adds w to the Identifier Registry under id. A later
// registration of the same id replaces the earlier widget.
func (c *Context) Register(id string, w toolkit.Widget) {
	key := foldID(id)
	if key == "" || w == nil {
		return
	}
	if prev, dup := c.widgets[key]; dup {
		errors.Logf(c.diag, "id %q registered again, replacing %s", id, prev.widget.TypeName())
	} else {
		c.ids = append(c.ids, id)
	}
	c.widgets[key] = named{id: id, widget: w}
}

// Toolkit symbol prefixes recognized by Lookup.
var symbolPrefixes = []string{"Gtk_", "Gdk_"}

// Lookup resolves name against, in order, the Identifier Registry, the
// toolkit symbol table for names carrying a Gtk_ or Gdk_ prefix, and the
// window's delegate. It reports false when no tier knows the name.
func (c *Context) Lookup(name string) (any, bool) {
	if w, ok := c.Widget(name); ok {
		return w, true
	}
	for _, prefix := range symbolPrefixes {
		if rest, ok := strings.CutPrefix(name, prefix); ok && rest != "" && c.Toolkit != nil {
			if v, ok := c.Toolkit.Symbol(rest); ok {
				return v, true
			}
		}
	}
	if c.Window != nil {
		return c.Window.Delegate(name)
	}
	return nil, false
}

// Handler returns the handler named name from the current logic unit.
func (c *Context) Handler(name string) (Handler, bool) {
	h, ok := c.handlers[name]
	return h, ok && h != nil
}

// Handlers returns the sorted names of the current handlers.
func (c *Context) Handlers() []string {
	return c.handlers.Names()
}

// LogicRef returns the reference of the last logic unit load.
func (c *Context) LogicRef() string {
	return c.logicRef
}

// Diagnostics returns the handler receiving the context's reports.
func (c *Context) Diagnostics() errors.Handler {
	return c.diag
}

// Resolver returns the widget module resolver.
func (c *Context) Resolver() *Resolver {
	return c.resolver
}

// AssetResolver returns the resolver for asset paths: the configured asset
// directory, then the application root, then the working directory.
func (c *Context) AssetResolver() assets.Resolver {
	wd, _ := os.Getwd()
	return assets.Resolver{Bases: []string{c.AssetsDir, c.AppRoot, wd}}
}

// Logf sends an informational message to the context's diagnostics.
func (c *Context) Logf(format string, args ...any) {
	errors.Logf(c.diag, format, args...)
}

// Warn reports a recoverable error for the element el.
func (c *Context) Warn(el *markup.Element, kind errors.ErrorKind, err error) {
	if err == nil {
		return
	}
	e := &errors.Error{Op: "gtkml.Build", Kind: kind, Severity: errors.SeverityWarn, Err: err}
	if el != nil {
		e.Tag = el.Tag()
	}
	errors.Report(c.diag, e)
}

func (c *Context) report(op string, kind errors.ErrorKind, path string, err error) {
	errors.Report(c.diag, &errors.Error{
		Op:       op,
		Kind:     kind,
		Severity: errors.SeverityWarn,
		Path:     path,
		Err:      err,
	})
}
