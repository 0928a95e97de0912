package gtkml

import (
	"fmt"
	"os"
	"path/filepath"
	"plugin"
	"sort"
	"strings"

	"github.com/go-drift/gtkml/pkg/errors"
	"github.com/go-drift/gtkml/pkg/toolkit"
)

// Handler is a function of a logic unit bound to a widget event. It
// receives the widget that emitted the event followed by the signal's
// arguments, such as the new state of a toggle.
type Handler func(ctx *Context, w toolkit.Widget, args ...any)

// HandlerTable maps handler names, as written in event attributes, to
// handlers. Names are case-sensitive.
type HandlerTable map[string]Handler

// Names returns the sorted handler names.
func (t HandlerTable) Names() []string {
	out := make([]string, 0, len(t))
	for name := range t {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// LogicUnit produces the handler table of a logic unit. It runs once per
// load, with the context the handlers will later receive.
type LogicUnit func(ctx *Context) (HandlerTable, error)

// LogicSymbol is the symbol a logic unit plugin exports.
const LogicSymbol = "Handlers"

// LoadLogic loads the logic unit named by ref and installs its handlers,
// replacing any previous table. Failures are reported as warnings: the
// context is left without handlers and nil is returned.
func (c *Context) LoadLogic(ref string) HandlerTable {
	c.handlers = nil
	c.logicRef = ref
	if ref == "" {
		return nil
	}

	unit, err := findLogic(ref)
	if err != nil {
		c.report("gtkml.LoadLogic", errors.KindLogic, ref, err)
		return nil
	}

	var table HandlerTable
	ok := errors.Guard(c.diag, "gtkml.LoadLogic", func() {
		table, err = unit(c)
	})
	if !ok {
		return nil
	}
	if err != nil {
		c.report("gtkml.LoadLogic", errors.KindLogic, ref, err)
		return nil
	}
	if table == nil {
		table = HandlerTable{}
	}
	c.handlers = table
	errors.Logf(c.diag, "loaded logic unit %s (%d handlers)", ref, len(table))
	return table
}

func findLogic(ref string) (LogicUnit, error) {
	if strings.HasSuffix(ref, ".so") {
		if _, err := os.Stat(ref); err == nil {
			return openLogicPlugin(ref)
		}
	}
	if unit, ok := logicUnits.lookup(ref); ok {
		return unit, nil
	}
	stem := strings.TrimSuffix(filepath.Base(ref), filepath.Ext(ref))
	if unit, ok := logicUnits.lookup(stem); ok {
		return unit, nil
	}
	return nil, fmt.Errorf("%s: %w", ref, errors.ErrLogicNotFound)
}

func openLogicPlugin(path string) (LogicUnit, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, err
	}
	sym, err := p.Lookup(LogicSymbol)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	switch fn := sym.(type) {
	case func(*Context) (HandlerTable, error):
		return fn, nil
	case *func(*Context) (HandlerTable, error):
		return *fn, nil
	case *LogicUnit:
		return *fn, nil
	}
	return nil, fmt.Errorf("%s: %s has unexpected type %T", path, LogicSymbol, sym)
}
