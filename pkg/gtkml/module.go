package gtkml

import (
	"fmt"
	"os"
	"plugin"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/gtkml/pkg/errors"
	"github.com/go-drift/gtkml/pkg/markup"
	"github.com/go-drift/gtkml/pkg/toolkit"
)

// WidgetModule constructs the widget for one tag.
//
// Construct returns the widget for el, or nil when el produces no widget.
// It must not apply the common properties itself; the builder does that
// once for every constructed widget. Containers build their children with
// Context.CreateWidget.
type WidgetModule interface {
	Construct(ctx *Context, el *markup.Element) (toolkit.Widget, error)
}

// AttributeSource is implemented by modules whose effective attributes
// differ from the element's, such as declarative modules with defaults.
// The builder applies common properties from Attributes instead of
// el.Attrs().
type AttributeSource interface {
	Attributes(ctx *Context, el *markup.Element) []markup.Attr
}

// ConstructFunc adapts a function to the WidgetModule interface.
type ConstructFunc func(ctx *Context, el *markup.Element) (toolkit.Widget, error)

// Construct calls f(ctx, el).
func (f ConstructFunc) Construct(ctx *Context, el *markup.Element) (toolkit.Widget, error) {
	return f(ctx, el)
}

// PluginSymbol is the symbol a widget module plugin exports.
const PluginSymbol = "Construct"

// openPlugin loads a widget module from a Go plugin. The plugin exports
// Construct as a function or a function variable with ConstructFunc's
// signature.
func openPlugin(path string) (WidgetModule, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, err
	}
	sym, err := p.Lookup(PluginSymbol)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, errors.ErrNoConstructor)
	}
	switch fn := sym.(type) {
	case func(*Context, *markup.Element) (toolkit.Widget, error):
		return ConstructFunc(fn), nil
	case *func(*Context, *markup.Element) (toolkit.Widget, error):
		return ConstructFunc(*fn), nil
	case *ConstructFunc:
		return *fn, nil
	}
	return nil, fmt.Errorf("%s: %s has type %T: %w", path, PluginSymbol, sym, errors.ErrNoConstructor)
}

// maxExtendsDepth bounds chains of declarative modules.
const maxExtendsDepth = 16

// declarative is a widget module described in YAML. It builds its base
// tag's widget from a derived element carrying the default attributes.
type declarative struct {
	path     string
	base     string
	defaults []markup.Attr
	text     string
}

type declarativeSpec struct {
	Extends    string    `yaml:"extends"`
	Attributes yaml.Node `yaml:"attributes"`
	Text       string    `yaml:"text"`
}

func openDeclarative(path, tag string) (WidgetModule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var spec declarativeSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	base := strings.ToLower(strings.TrimSpace(spec.Extends))
	if base == "" {
		return nil, fmt.Errorf("%s: missing extends: %w", path, errors.ErrNoConstructor)
	}
	if base == tag {
		return nil, fmt.Errorf("%s: module extends itself", path)
	}

	m := &declarative{path: path, base: base, text: spec.Text}
	switch spec.Attributes.Kind {
	case 0:
	case yaml.MappingNode:
		// Mapping content alternates keys and values; keep source order.
		for i := 0; i+1 < len(spec.Attributes.Content); i += 2 {
			k, v := spec.Attributes.Content[i], spec.Attributes.Content[i+1]
			if v.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%s:%d: attribute %q must be a scalar", path, v.Line, k.Value)
			}
			m.defaults = append(m.defaults, markup.Attr{Name: k.Value, Value: v.Value})
		}
	default:
		return nil, fmt.Errorf("%s:%d: attributes must be a mapping", path, spec.Attributes.Line)
	}
	return m, nil
}

func (m *declarative) derive(el *markup.Element) *markup.Element {
	text := el.Text()
	if strings.TrimSpace(text) == "" && m.text != "" {
		text = m.text
	}
	return markup.NewElement(m.base, markup.Merge(m.defaults, el.Attrs()), text, el.Children()...)
}

// chain follows extends through declarative modules to the first module
// that constructs widgets itself, deriving el at every step. Only the
// chain counts against maxExtendsDepth; the document nesting does not.
func (m *declarative) chain(ctx *Context, el *markup.Element) (WidgetModule, *markup.Element, error) {
	cur := m
	for depth := 0; depth < maxExtendsDepth; depth++ {
		el = cur.derive(el)
		base, err := ctx.resolver.Resolve(cur.base)
		if err != nil {
			return nil, nil, err
		}
		next, ok := base.(*declarative)
		if !ok {
			return base, el, nil
		}
		cur = next
	}
	return nil, nil, fmt.Errorf("%s: extends chain deeper than %d", m.path, maxExtendsDepth)
}

func (m *declarative) Construct(ctx *Context, el *markup.Element) (toolkit.Widget, error) {
	base, derived, err := m.chain(ctx, el)
	if err != nil {
		return nil, err
	}
	return base.Construct(ctx, derived)
}

func (m *declarative) Attributes(ctx *Context, el *markup.Element) []markup.Attr {
	base, derived, err := m.chain(ctx, el)
	if err != nil {
		return m.derive(el).Attrs()
	}
	if src, ok := base.(AttributeSource); ok {
		return src.Attributes(ctx, derived)
	}
	return derived.Attrs()
}
