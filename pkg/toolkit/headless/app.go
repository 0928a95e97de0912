package headless

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/go-drift/gtkml/pkg/toolkit"
)

// Application runs a single-threaded event loop. Callbacks registered with
// OnActivate and work queued with Post all run on the goroutine that called
// Run.
type Application struct {
	id string

	mu       sync.Mutex
	activate []func()
	actions  map[string]func()
	windows  []*Window
	pending  []func()
	running  bool

	wake     chan struct{}
	quit     chan struct{}
	quitOnce sync.Once
}

func newApplication(id string) *Application {
	return &Application{
		id:      id,
		actions: make(map[string]func()),
		wake:    make(chan struct{}, 1),
		quit:    make(chan struct{}),
	}
}

func (a *Application) ID() string { return a.id }

func (a *Application) OnActivate(fn func()) {
	a.mu.Lock()
	a.activate = append(a.activate, fn)
	a.mu.Unlock()
}

func (a *Application) AddWindow(w toolkit.Window) {
	hw, ok := w.(*Window)
	if !ok {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if !slices.Contains(a.windows, hw) {
		a.windows = append(a.windows, hw)
	}
	hw.app = a
}

// Windows returns the windows the application holds.
func (a *Application) Windows() []*Window {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]*Window(nil), a.windows...)
}

func (a *Application) removeWindow(w *Window) {
	a.mu.Lock()
	a.windows = slices.DeleteFunc(a.windows, func(x *Window) bool { return x == w })
	last := a.running && len(a.windows) == 0
	a.mu.Unlock()
	if last {
		a.Quit()
	}
}

func (a *Application) AddAction(name string, fn func()) {
	a.mu.Lock()
	a.actions[name] = fn
	a.mu.Unlock()
}

func (a *Application) Activate(action string) bool {
	a.mu.Lock()
	fn, ok := a.actions[action]
	a.mu.Unlock()
	if !ok || fn == nil {
		return false
	}
	fn()
	return true
}

func (a *Application) Post(fn func()) {
	if fn == nil {
		return
	}
	a.mu.Lock()
	a.pending = append(a.pending, fn)
	a.mu.Unlock()
	select {
	case a.wake <- struct{}{}:
	default:
	}
}

// Run invokes the activation callbacks and then serves posted work until
// ctx is done or Quit is called. It returns ctx.Err() when the context
// ended the loop and nil after Quit.
func (a *Application) Run(ctx context.Context) (err error) {
	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		return fmt.Errorf("headless: application %q is already running", a.id)
	}
	a.running = true
	activate := append([]func(){}, a.activate...)
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		a.running = false
		a.mu.Unlock()
	}()

	for _, fn := range activate {
		fn()
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-a.quit:
			a.drain()
			return nil
		case <-a.wake:
			a.drain()
		}
	}
}

func (a *Application) drain() {
	for {
		a.mu.Lock()
		work := a.pending
		a.pending = nil
		a.mu.Unlock()
		if len(work) == 0 {
			return
		}
		for _, fn := range work {
			fn()
		}
	}
}

func (a *Application) Quit() {
	a.quitOnce.Do(func() { close(a.quit) })
}
