package gtkml

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/go-drift/gtkml/pkg/errors"
	"github.com/go-drift/gtkml/pkg/markup"
	"github.com/go-drift/gtkml/pkg/toolkit"
)

// DefaultAppID is the application id used when none is configured.
const DefaultAppID = "com.zerostormy.gtkml"

// Options configures an App.
type Options struct {
	// UIPath is the markup file. Required by NewApp.
	UIPath string
	// LogicPath names the logic unit. It takes precedence over the
	// document's script reference.
	LogicPath string
	// CSSPath is the stylesheet. When empty the head's css entry is used,
	// relative to the document directory.
	CSSPath string
	// WidgetsDir is searched for widget modules before the default
	// locations.
	WidgetsDir string
	// AssetsDir is searched for assets before the application root.
	AssetsDir string
	// AppRoot is the application root. Defaults to the document directory.
	AppRoot string
	// AppID is the toolkit application id. Defaults to DefaultAppID.
	AppID string
	// Diagnostics receives warnings and log messages. Defaults to
	// errors.Default().
	Diagnostics errors.Handler
}

// App is the application shell: it owns the context and drives the build
// from the toolkit's activation.
type App struct {
	ctx  *Context
	opts Options

	window   toolkit.Window
	buildErr error
	built    bool
}

// NewApp parses the markup file and prepares the application. Malformed
// markup and a document without a window are returned as errors; a missing
// or broken logic unit is only reported.
func NewApp(tk toolkit.Toolkit, opts Options) (*App, error) {
	if opts.UIPath == "" {
		return nil, fmt.Errorf("gtkml: no UI file given")
	}
	doc, err := markup.ParseFile(opts.UIPath)
	if err != nil {
		return nil, err
	}
	return NewAppFromDocument(tk, doc, opts)
}

// NewAppFromDocument prepares an application for an already parsed
// document. opts.UIPath is ignored.
func NewAppFromDocument(tk toolkit.Toolkit, doc *markup.Document, opts Options) (*App, error) {
	if doc == nil || doc.Window == nil {
		source := ""
		if doc != nil {
			source = doc.Path
		}
		return nil, &errors.StructureError{Source: source, Err: errors.ErrNoWindow}
	}

	c := newContext(tk, doc, opts.Diagnostics)
	c.AppRoot = opts.AppRoot
	if c.AppRoot == "" {
		c.AppRoot = doc.Dir
	}
	c.AssetsDir = opts.AssetsDir
	c.resolver = NewResolver(SearchDirs(opts.WidgetsDir, doc.Dir, c.AppRoot), c.diag)

	id := opts.AppID
	if id == "" {
		id = DefaultAppID
	}
	c.App = tk.NewApplication(id)

	ref := opts.LogicPath
	if ref == "" {
		ref = doc.Logic
	}
	c.LoadLogic(ref)

	return &App{ctx: c, opts: opts}, nil
}

// Context returns the application context.
func (a *App) Context() *Context {
	return a.ctx
}

// Activate builds the window, adds it to the application and presents it.
// The window is built once; later calls return the first result.
func (a *App) Activate() (toolkit.Window, error) {
	if a.built {
		return a.window, a.buildErr
	}
	a.built = true
	win, err := a.ctx.Build()
	if err != nil {
		a.buildErr = err
		return nil, err
	}
	a.window = win
	a.ctx.App.AddWindow(win)
	win.Present()
	return win, nil
}

// Run loads the stylesheet, builds the window on activation and runs the
// toolkit's event loop until ctx is done or the application quits.
func (a *App) Run(ctx context.Context) error {
	a.loadCSS()
	a.ctx.App.OnActivate(func() {
		if _, err := a.Activate(); err != nil {
			a.ctx.App.Quit()
		}
	})
	err := a.ctx.App.Run(ctx)
	if a.buildErr != nil {
		return a.buildErr
	}
	return err
}

// CSSPath returns the stylesheet Run loads, or "" for none.
func (a *App) CSSPath() string {
	path := a.opts.CSSPath
	if path == "" {
		path = a.ctx.Info.Get("css", "")
		if path != "" && !filepath.IsAbs(path) {
			path = filepath.Join(a.ctx.AppDir, path)
		}
	}
	return path
}

func (a *App) loadCSS() {
	path := a.CSSPath()
	if path == "" {
		return
	}
	if err := a.ctx.Toolkit.LoadCSS(path); err != nil {
		a.ctx.report("gtkml.LoadCSS", errors.KindConfig, path, fmt.Errorf("could not load stylesheet: %w", err))
		return
	}
	a.ctx.Logf("loaded stylesheet %s", path)
}

// Actions of the default application menu.
const (
	ActionAbout = "about"
	ActionQuit  = "quit"
)

func (c *Context) defaultMenu() toolkit.Widget {
	c.App.AddAction(ActionAbout, c.ShowAbout)
	c.App.AddAction(ActionQuit, c.App.Quit)
	return c.Toolkit.NewMenuButton("open-menu-symbolic", []toolkit.MenuItem{
		{Label: "About", Action: "app." + ActionAbout},
		{Label: "Quit", Action: "app." + ActionQuit},
	})
}

// AboutInfo returns the about dialog contents derived from the head
// metadata. An icon that cannot be loaded is reported and left out.
func (c *Context) AboutInfo() toolkit.AboutInfo {
	info := toolkit.AboutInfo{
		ProgramName: c.Info.Get("program_name", DefaultTitle),
		Version:     NormalizeVersion(c.Info.Get("version", "1.0")),
		Comments:    c.Info.Get("comments", "No description provided."),
		Website:     c.Info.Get("website", "https://example.com"),
	}
	for _, a := range strings.Split(c.Info.Get("authors", "Unknown"), ",") {
		if a = strings.TrimSpace(a); a != "" {
			info.Authors = append(info.Authors, a)
		}
	}

	if icon := c.Info.Get("icon", ""); icon != "" {
		path := icon
		if !filepath.IsAbs(path) {
			path = filepath.Join(c.AppDir, path)
		}
		img, err := c.Assets.Load(path, 128, 128)
		if err != nil {
			c.report("gtkml.AboutInfo", errors.KindAsset, path, fmt.Errorf("could not load icon %q: %w", icon, err))
		} else {
			info.Logo = img
		}
	}
	return info
}

// ShowAbout presents the about dialog over the window.
func (c *Context) ShowAbout() {
	c.Toolkit.ShowAbout(c.Window, c.AboutInfo())
}

// NormalizeVersion returns v in canonical semantic version form without
// the leading "v" ("1.2" becomes "1.2.0"). Other strings are returned
// unchanged.
func NormalizeVersion(v string) string {
	v = strings.TrimSpace(v)
	sv := v
	if !strings.HasPrefix(sv, "v") {
		sv = "v" + sv
	}
	if !semver.IsValid(sv) {
		return v
	}
	return strings.TrimPrefix(semver.Canonical(sv), "v")
}
