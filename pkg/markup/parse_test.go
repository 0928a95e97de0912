package markup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-drift/gtkml/pkg/errors"
)

func TestParseWrappedWindow(t *testing.T) {
	doc, err := ParseString(`<gtkm>
  <head>
    <program_name>  Greeter </program_name>
    <Version>1.2</Version>
  </head>
  <window title="Hello">
    <vbox spacing="6"><label>Hi</label></vbox>
  </window>
</gtkm>`, "")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if doc.Root.Tag() != "gtkm" {
		t.Errorf("Root.Tag() = %q, want gtkm", doc.Root.Tag())
	}
	if doc.Window == nil || doc.Window.Tag() != TagWindow {
		t.Fatalf("Window = %v, want the window element", doc.Window)
	}
	if got := doc.Window.AttrOr("title", ""); got != "Hello" {
		t.Errorf("title = %q, want Hello", got)
	}
	if got := doc.Info["program_name"]; got != "Greeter" {
		t.Errorf("program_name = %q, want Greeter", got)
	}
	if got := doc.Info.Get("VERSION", ""); got != "1.2" {
		t.Errorf("version = %q, want 1.2", got)
	}
	if doc.Logic != "" {
		t.Errorf("Logic = %q, want empty", doc.Logic)
	}
}

func TestParseBareWindow(t *testing.T) {
	doc, err := ParseString(`<Window><Button ID="b1">Go</Button></Window>`, "")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.Window != doc.Root {
		t.Error("expected a bare window root to be its own window")
	}
	btn := doc.Window.Children()[0]
	if btn.Tag() != "button" {
		t.Errorf("tag = %q, want lowercased button", btn.Tag())
	}
	if v, ok := btn.Attr("id"); !ok || v != "b1" {
		t.Errorf("Attr(id) = %q, %v; want b1, true", v, ok)
	}
	if btn.Text() != "Go" {
		t.Errorf("Text() = %q, want Go", btn.Text())
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unclosed", `<window><vbox></window>`},
		{"empty", ``},
		{"two roots", `<window/><window/>`},
		{"text after root", `<window/>trailing`},
		{"bad attribute", `<window title=unquoted/>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.src, "ui.gtkm")
			var me *errors.MarkupError
			if !errors.As(err, &me) {
				t.Fatalf("err = %v, want *MarkupError", err)
			}
			if me.Source != "ui.gtkm" {
				t.Errorf("Source = %q, want ui.gtkm", me.Source)
			}
		})
	}
}

func TestParseMalformedLine(t *testing.T) {
	_, err := ParseString("<window>\n<vbox>\n</hbox>\n</window>", "ui.gtkm")
	var me *errors.MarkupError
	if !errors.As(err, &me) {
		t.Fatalf("err = %v, want *MarkupError", err)
	}
	if me.Line != 3 {
		t.Errorf("Line = %d, want 3", me.Line)
	}
}

func TestParseWithoutWindow(t *testing.T) {
	tests := []string{
		`<gtkm><vbox/></gtkm>`,
		`<gtkm><vbox><window/></vbox></gtkm>`,
	}
	for _, src := range tests {
		_, err := ParseString(src, "")
		var se *errors.StructureError
		if !errors.As(err, &se) {
			t.Errorf("Parse(%q) err = %v, want *StructureError", src, err)
		}
		if !errors.Is(err, errors.ErrNoWindow) {
			t.Errorf("Parse(%q) err should wrap ErrNoWindow", src)
		}
	}
}

func TestHeadLastEntryWins(t *testing.T) {
	doc, err := ParseString(`<gtkm>
  <head><css>a.css</css><css>b.css</css></head>
  <window><head><css>c.css</css></head></window>
</gtkm>`, "")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := doc.Info["css"]; got != "c.css" {
		t.Errorf("css = %q, want c.css", got)
	}
}

func TestScriptLastInDocumentOrderWins(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "second.so"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	src := `<gtkm>
  <script src="first.so"/>
  <window>
    <vbox><script src="second.so"/></vbox>
  </window>
  <script/>
</gtkm>`
	doc, err := ParseString(src, filepath.Join(dir, "ui.gtkm"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := filepath.Join(dir, "second.so")
	if doc.Logic != want {
		t.Errorf("Logic = %q, want %q", doc.Logic, want)
	}
}

func TestScriptUnresolvedPassesThrough(t *testing.T) {
	doc, err := ParseString(`<gtkm><script src="app/logic"/><window/></gtkm>`, filepath.Join(t.TempDir(), "ui.gtkm"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.Logic != "app/logic" {
		t.Errorf("Logic = %q, want raw reference app/logic", doc.Logic)
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ui.gtkm")
	if err := os.WriteFile(path, []byte(`<window title="T"/>`), 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if doc.Dir != dir {
		t.Errorf("Dir = %q, want %q", doc.Dir, dir)
	}

	_, err = ParseFile(filepath.Join(dir, "missing.gtkm"))
	var me *errors.MarkupError
	if !errors.As(err, &me) {
		t.Errorf("ParseFile(missing) err = %v, want *MarkupError", err)
	}
}

func TestParseLatin1(t *testing.T) {
	src := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><window title=\"caf\xe9\"/>"
	doc, err := ParseString(src, "")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := doc.Window.AttrOr("title", ""); got != "café" {
		t.Errorf("title = %q, want café", got)
	}
}
