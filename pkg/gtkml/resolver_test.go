package gtkml_test

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/go-drift/gtkml/pkg/errors"
	"github.com/go-drift/gtkml/pkg/gtkml"
	"github.com/go-drift/gtkml/pkg/toolkit"
	"github.com/go-drift/gtkml/pkg/toolkit/headless"
)

func countingStat(count *int) func(string) bool {
	return func(path string) bool {
		*count++
		info, err := os.Stat(path)
		return err == nil && info.Mode().IsRegular()
	}
}

func TestResolveIsCached(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "fancy.yaml"), "extends: label\n")

	r := gtkml.NewResolver([]string{dir}, &errors.Recorder{})
	probes := 0
	r.Stat = countingStat(&probes)

	first, err := r.Resolve("fancy")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	before := probes
	second, err := r.Resolve("FANCY")
	if err != nil {
		t.Fatalf("second Resolve: %v", err)
	}
	if first != second {
		t.Error("second resolution returned a different module")
	}
	if probes != before {
		t.Errorf("second resolution probed the filesystem %d times", probes-before)
	}
}

func TestResolveMissesAreNotCached(t *testing.T) {
	dir := t.TempDir()
	r := gtkml.NewResolver([]string{dir}, &errors.Recorder{})

	if _, err := r.Resolve("later"); !errors.Is(err, errors.ErrNoModule) {
		t.Fatalf("err = %v, want ErrNoModule", err)
	}
	writeFile(t, filepath.Join(dir, "later.yml"), "extends: label\n")
	if _, err := r.Resolve("later"); err != nil {
		t.Errorf("Resolve after adding the module: %v", err)
	}
}

func TestResolveErrorListsTried(t *testing.T) {
	dir := t.TempDir()
	_, err := gtkml.NewResolver([]string{dir}, &errors.Recorder{}).Resolve("ghost")
	var re *errors.ResolveError
	if !errors.As(err, &re) {
		t.Fatalf("err = %v, want *ResolveError", err)
	}
	for _, want := range []string{filepath.Join(dir, "ghost.so"), filepath.Join(dir, "ghost.yaml"), "gtkml/widgets/ghost", "ghost"} {
		if !slices.Contains(re.Tried, want) {
			t.Errorf("Tried = %v, missing %s", re.Tried, want)
		}
	}
}

func TestResolverCandidatesDeduplicated(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	r := gtkml.NewResolver([]string{a, "", a + string(filepath.Separator), b, a}, nil)
	if got, want := r.Candidates(), []string{a, b}; !slices.Equal(got, want) {
		t.Errorf("Candidates = %v, want %v", got, want)
	}
}

func TestSearchDirsOrder(t *testing.T) {
	dirs := gtkml.SearchDirs("/cfg/widgets", "/doc", "/root")
	if len(dirs) < 3 {
		t.Fatalf("SearchDirs = %v", dirs)
	}
	want := []string{"/cfg/widgets", filepath.Join("/doc", "widgets"), filepath.Join("/root", "widgets")}
	if !slices.Equal(dirs[:3], want) {
		t.Errorf("SearchDirs = %v, want prefix %v", dirs, want)
	}
	wd, _ := os.Getwd()
	if dirs[len(dirs)-1] != filepath.Join(wd, "widgets") {
		t.Errorf("last dir = %s, want the working directory", dirs[len(dirs)-1])
	}
}

func TestConfiguredWidgetsDirWins(t *testing.T) {
	configured := t.TempDir()
	root := t.TempDir()
	writeFile(t, filepath.Join(configured, "fancy.yaml"), "extends: label\nattributes:\n  class: configured\n")
	writeFile(t, filepath.Join(root, "widgets", "fancy.yaml"), "extends: label\nattributes:\n  class: local\n")

	f, _ := build(t, `<window><fancy id="f">x</fancy></window>`, gtkml.Options{AppRoot: root, WidgetsDir: configured})
	l := f.widget(t, "f").(*headless.Label)
	if !l.HasClass("configured") || l.HasClass("local") {
		t.Errorf("classes = %v, want the configured module", l.Classes())
	}
}

func TestDocumentWidgetsDirBeatsRegistry(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "widgets", "label.yaml"), "extends: textview\n")

	f, _ := build(t, `<window><label id="l">x</label></window>`, gtkml.Options{AppRoot: root})
	if _, ok := f.widget(t, "l").(*headless.TextView); !ok {
		t.Errorf("label built as %s, want the local module", f.widget(t, "l").TypeName())
	}
}

func TestDeclarativeModule(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "widgets", "primary.yaml"), `
extends: button
text: Submit
attributes:
  class: suggested-action
  margin: "4"
  onclick: submit
`)
	clicks := 0
	logic := handlers(gtkml.HandlerTable{
		"submit": func(*gtkml.Context, toolkit.Widget, ...any) { clicks++ },
	})

	f, _ := build(t, `<window>
		<primary id="a"/>
		<primary id="b" class="mine">Send</primary>
	</window>`, gtkml.Options{AppRoot: root, LogicPath: logic})

	a := f.widget(t, "a").(*headless.Button)
	if a.Label() != "Submit" || !a.HasClass("suggested-action") {
		t.Errorf("a = %s", a.Describe())
	}
	if top, _, _, _ := a.Margins(); top != 4 {
		t.Errorf("default margin not applied: %d", top)
	}
	if err := headless.Click(a); err != nil || clicks != 1 {
		t.Errorf("default onclick not bound: err=%v clicks=%d", err, clicks)
	}

	b := f.widget(t, "b").(*headless.Button)
	if b.Label() != "Send" {
		t.Errorf("b label = %q, want Send", b.Label())
	}
	if !slices.Equal(b.Classes(), []string{"mine"}) {
		t.Errorf("b classes = %v, want element attribute to override", b.Classes())
	}
}

func TestDeclarativeChain(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "widgets", "base.yaml"), "extends: label\nattributes:\n  margin: \"2\"\n  class: base\n")
	writeFile(t, filepath.Join(root, "widgets", "derived.yaml"), "extends: base\nattributes:\n  class: derived\n")

	f, _ := build(t, `<window><derived id="d">x</derived></window>`, gtkml.Options{AppRoot: root})
	l := f.widget(t, "d").(*headless.Label)
	if !slices.Equal(l.Classes(), []string{"derived"}) {
		t.Errorf("classes = %v, want [derived]", l.Classes())
	}
	if top, _, _, _ := l.Margins(); top != 2 {
		t.Errorf("inherited margin = %d, want 2", top)
	}
}

func TestDeclarativeCycle(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "widgets", "ping.yaml"), "extends: pong\n")
	writeFile(t, filepath.Join(root, "widgets", "pong.yaml"), "extends: ping\n")

	f, win := build(t, `<window><ping/><label>after</label></window>`, gtkml.Options{AppRoot: root})
	if n := len(body(t, win)); n != 1 {
		t.Errorf("body has %d children, want 1", n)
	}
	if len(f.rec.ByKind(errors.KindModule)) != 1 {
		t.Errorf("module warnings = %v", f.rec.Errors())
	}
}

func TestDeclarativeNestingIsNotAChain(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "widgets", "card.yaml"), "extends: vbox\nattributes:\n  class: card\n")

	const depth = 20
	src := `<window>` + strings.Repeat(`<card>`, depth) + `<label id="deep">x</label>` + strings.Repeat(`</card>`, depth) + `</window>`
	f, _ := build(t, src, gtkml.Options{AppRoot: root})
	if f.rec.Count() != 0 {
		t.Fatalf("diagnostics: %v", f.rec.Errors())
	}
	if l := f.widget(t, "deep").(*headless.Label); l.Text() != "x" {
		t.Errorf("deep label text = %q", l.Text())
	}
}

func TestBrokenModuleFilesWarn(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "widgets", "noext.yaml"), "attributes:\n  class: x\n")
	writeFile(t, filepath.Join(root, "widgets", "selfish.yaml"), "extends: selfish\n")
	writeFile(t, filepath.Join(root, "widgets", "garbled.yaml"), "extends: [label\n")

	f, win := build(t, `<window><noext/><selfish/><garbled/><label>ok</label></window>`, gtkml.Options{AppRoot: root})
	if n := len(body(t, win)); n != 1 {
		t.Errorf("body has %d children, want 1", n)
	}
	modules := f.rec.ByKind(errors.KindModule)
	if len(modules) != 3 {
		t.Fatalf("got %d module warnings, want 3: %v", len(modules), modules)
	}
	if !errors.Is(modules[0], errors.ErrNoConstructor) {
		t.Errorf("missing extends = %v, want ErrNoConstructor", modules[0])
	}
	if len(f.rec.ByKind(errors.KindResolve)) != 3 {
		t.Error("each broken module should end unresolved")
	}
}

func TestBrokenModuleFileFallsBackToRegistry(t *testing.T) {
	configured := t.TempDir()
	root := t.TempDir()
	writeFile(t, filepath.Join(configured, "faulty.yaml"), "extends: [label\n")
	writeFile(t, filepath.Join(root, "widgets", "faulty.yaml"), "extends: label\nattributes:\n  class: local\n")

	f, _ := build(t, `<window><faulty id="f">x</faulty></window>`, gtkml.Options{AppRoot: root, WidgetsDir: configured})
	if _, ok := f.widget(t, "f").(faultyLabel); !ok {
		t.Errorf("built %s, want the registered module", f.widget(t, "f").TypeName())
	}
	if n := len(f.rec.ByKind(errors.KindModule)); n != 1 {
		t.Errorf("got %d module warnings, want 1: %v", n, f.rec.Errors())
	}
}

func TestImportStyleFallback(t *testing.T) {
	f, _ := build(t, `<window><faulty id="f">x</faulty></window>`, gtkml.Options{})
	if _, ok := f.widget(t, "f").(faultyLabel); !ok {
		t.Error("module registered as widgets/faulty not found")
	}
}

func TestRegisteredWidgets(t *testing.T) {
	names := gtkml.RegisteredWidgets()
	for _, want := range []string{"gtkml/widgets/button", "gtkml/widgets/vbox", "widgets/faulty"} {
		if !slices.Contains(names, want) {
			t.Errorf("RegisteredWidgets missing %s", want)
		}
	}
	if !slices.IsSorted(names) {
		t.Error("RegisteredWidgets not sorted")
	}
}

func TestRegisterInvalidPathPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	gtkml.RegisterWidget("bad path with spaces", gtkml.ConstructFunc(nil))
}
