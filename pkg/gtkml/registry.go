package gtkml

import (
	"fmt"
	"sort"
	"sync"

	"golang.org/x/mod/module"
)

// Modules and logic units linked into the binary, keyed by import-style
// path. Both registries are filled from init functions.
type registry[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

func newRegistry[T any]() *registry[T] {
	return &registry[T]{items: make(map[string]T)}
}

func (r *registry[T]) register(kind, name string, v T) {
	if err := module.CheckImportPath(name); err != nil {
		panic(fmt.Sprintf("gtkml: invalid %s name %q: %v", kind, name, err))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.items[name]; dup {
		panic(fmt.Sprintf("gtkml: %s %q registered twice", kind, name))
	}
	r.items[name] = v
}

func (r *registry[T]) lookup(name string) (T, bool) {
	r.mu.RLock()
	v, ok := r.items[name]
	r.mu.RUnlock()
	return v, ok
}

func (r *registry[T]) names() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.items))
	for name := range r.items {
		out = append(out, name)
	}
	r.mu.RUnlock()
	sort.Strings(out)
	return out
}

var (
	widgetModules = newRegistry[WidgetModule]()
	logicUnits    = newRegistry[LogicUnit]()
)

// RegisterWidget makes a widget module available to the resolver's
// import-style lookup under path. Built-in modules use
// "gtkml/widgets/<tag>". It panics if path is not a valid import path, if m
// is nil, or if path is already registered.
func RegisterWidget(path string, m WidgetModule) {
	if m == nil {
		panic("gtkml: RegisterWidget module is nil")
	}
	widgetModules.register("widget module", path, m)
}

// RegisterLogic makes a logic unit loadable by name. A script reference
// matches a name either exactly or by its file stem, so a unit registered
// as "logic" serves <script src="logic.so"/> when no such file exists.
// It panics on an invalid or duplicate name or a nil unit.
func RegisterLogic(name string, unit LogicUnit) {
	if unit == nil {
		panic("gtkml: RegisterLogic unit is nil")
	}
	logicUnits.register("logic unit", name, unit)
}

// RegisteredWidgets returns the sorted paths of the registered widget
// modules.
func RegisteredWidgets() []string {
	return widgetModules.names()
}

// RegisteredLogic returns the sorted names of the registered logic units.
func RegisteredLogic() []string {
	return logicUnits.names()
}
