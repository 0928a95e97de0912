package markup

import (
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/htmlindex"

	"github.com/go-drift/gtkml/pkg/errors"
)

// Reserved structural tags.
const (
	TagWindow    = "window"
	TagHead      = "head"
	TagScript    = "script"
	TagHeaderBar = "headerbar"
)

// AppInfo holds the metadata entries of a document's head section, keyed by
// lowercased tag name.
type AppInfo map[string]string

// Get returns the entry for key, or fallback when it is absent or empty.
func (a AppInfo) Get(key, fallback string) string {
	if v := a[strings.ToLower(key)]; v != "" {
		return v
	}
	return fallback
}

// Document is the result of parsing a markup source.
type Document struct {
	// Root is the top-level element as written.
	Root *Element
	// Window is the window element narrowed from Root.
	Window *Element
	// Info holds the head metadata.
	Info AppInfo
	// Logic is the logic unit reference named by the last script element,
	// resolved against Dir when it exists there. Empty when absent.
	Logic string
	// Path is the absolute path of the source, if it came from a file.
	Path string
	// Dir is the directory relative references resolve against.
	Dir string
}

// ParseFile reads and parses the document at path.
func ParseFile(path string) (*Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &errors.MarkupError{Source: path, Err: err}
	}
	f, err := os.Open(abs)
	if err != nil {
		return nil, &errors.MarkupError{Source: path, Err: err}
	}
	defer f.Close()
	return Parse(f, abs)
}

// ParseString parses src as if it had been read from path.
func ParseString(src, path string) (*Document, error) {
	return Parse(strings.NewReader(src), path)
}

// Parse parses a markup document. path names the source in errors and
// anchors relative script references; it may be empty.
//
// A source that is not well-formed yields a *errors.MarkupError. A document
// without a window element yields a *errors.StructureError.
func Parse(r io.Reader, path string) (*Document, error) {
	root, err := parseTree(r, path)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Root: root,
		Info: AppInfo{},
		Path: path,
	}
	if path != "" {
		doc.Dir = filepath.Dir(path)
	}

	root.Walk(func(el *Element) bool {
		switch el.tag {
		case TagHead:
			for _, meta := range el.children {
				doc.Info[meta.tag] = strings.TrimSpace(meta.text)
			}
		case TagScript:
			if src, ok := el.Attr("src"); ok && src != "" {
				doc.Logic = resolveScript(doc.Dir, src)
			}
		}
		return true
	})

	doc.Window = FindWindow(root)
	if doc.Window == nil {
		return nil, &errors.StructureError{Source: path, Err: errors.ErrNoWindow}
	}
	return doc, nil
}

// FindWindow narrows root to its window element: root itself when it is a
// window, else its first direct window child. It returns nil when neither
// exists.
func FindWindow(root *Element) *Element {
	if root == nil {
		return nil
	}
	if root.tag == TagWindow {
		return root
	}
	return root.FirstChild(TagWindow)
}

func resolveScript(dir, src string) string {
	candidate := src
	if !filepath.IsAbs(src) {
		candidate = filepath.Join(dir, src)
	}
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return src
}

func parseTree(r io.Reader, source string) (*Element, error) {
	d := xml.NewDecoder(r)
	d.Strict = true
	d.CharsetReader = charsetReader

	var (
		root  *Element
		stack []*Element
	)
	fail := func(err error) error {
		line, _ := d.InputPos()
		var syn *xml.SyntaxError
		if errors.As(err, &syn) {
			line = syn.Line
		}
		return &errors.MarkupError{Source: source, Line: line, Err: err}
	}

	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fail(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if root != nil && len(stack) == 0 {
				return nil, fail(errors.New("junk after document element"))
			}
			line, _ := d.InputPos()
			el := &Element{tag: strings.ToLower(t.Name.Local), line: line}
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
					continue
				}
				el.attrs = append(el.attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}
			if len(stack) == 0 {
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				if strings.TrimSpace(string(t)) != "" {
					return nil, fail(errors.New("text outside the document element"))
				}
				continue
			}
			top := stack[len(stack)-1]
			if len(top.children) == 0 {
				top.text += string(t)
			}
		}
	}

	if root == nil {
		return nil, &errors.MarkupError{Source: source, Err: errors.New("no document element")}
	}
	return root, nil
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, err
	}
	return enc.NewDecoder().Reader(input), nil
}
