package gtkml_test

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/go-drift/gtkml/pkg/errors"
	"github.com/go-drift/gtkml/pkg/gtkml"
	"github.com/go-drift/gtkml/pkg/markup"
	"github.com/go-drift/gtkml/pkg/toolkit"
	"github.com/go-drift/gtkml/pkg/toolkit/headless"
	_ "github.com/go-drift/gtkml/pkg/widgets"
)

var logicSeq atomic.Int32

// registerLogic registers unit under a fresh name and returns the name.
func registerLogic(unit gtkml.LogicUnit) string {
	name := fmt.Sprintf("gtkmltest/logic%d", logicSeq.Add(1))
	gtkml.RegisterLogic(name, unit)
	return name
}

// handlers registers a logic unit returning table.
func handlers(table gtkml.HandlerTable) string {
	return registerLogic(func(*gtkml.Context) (gtkml.HandlerTable, error) {
		return table, nil
	})
}

type fixture struct {
	dir string
	tk  *headless.Toolkit
	app *gtkml.App
	ctx *gtkml.Context
	rec *errors.Recorder
}

// newFixture writes src as dir/ui.gtkm and creates an app for it.
func newFixture(t *testing.T, src string, opts gtkml.Options) *fixture {
	t.Helper()
	dir := opts.AppRoot
	if dir == "" {
		dir = t.TempDir()
	}
	path := filepath.Join(dir, "ui.gtkm")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	f := &fixture{dir: dir, tk: headless.New(), rec: &errors.Recorder{}}
	opts.UIPath = path
	opts.Diagnostics = f.rec
	app, err := gtkml.NewApp(f.tk, opts)
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	f.app = app
	f.ctx = app.Context()
	return f
}

// build creates a fixture and activates it.
func build(t *testing.T, src string, opts gtkml.Options) (*fixture, *headless.Window) {
	t.Helper()
	f := newFixture(t, src, opts)
	win, err := f.app.Activate()
	if err != nil {
		t.Fatalf("Activate: %v", err)
	}
	return f, win.(*headless.Window)
}

// body returns the children of the window's body box.
func body(t *testing.T, win *headless.Window) []toolkit.Widget {
	t.Helper()
	box, ok := win.Child().(*headless.Box)
	if !ok {
		t.Fatalf("window child = %T, want *headless.Box", win.Child())
	}
	return box.Children()
}

func (f *fixture) widget(t *testing.T, id string) toolkit.Widget {
	t.Helper()
	w, ok := f.ctx.Widget(id)
	if !ok {
		t.Fatalf("no widget registered as %q", id)
	}
	return w
}

func dump(t *testing.T, w toolkit.Widget) string {
	t.Helper()
	var sb strings.Builder
	if err := headless.Dump(&sb, w); err != nil {
		t.Fatal(err)
	}
	return sb.String()
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{B: 255, A: 255})
		}
	}
	out, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer out.Close()
	if err := png.Encode(out, img); err != nil {
		t.Fatal(err)
	}
}

func parse(t *testing.T, src string) *markup.Document {
	t.Helper()
	doc, err := markup.ParseString(src, "")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}
