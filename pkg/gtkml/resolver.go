package gtkml

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/mod/module"
	"golang.org/x/sync/singleflight"

	"github.com/go-drift/gtkml/pkg/errors"
)

// ModuleExts lists the widget module file extensions probed in each
// directory, in order.
var ModuleExts = []string{".so", ".yaml", ".yml"}

// importGuesses are the registry paths tried for a tag, in order.
var importGuesses = []string{"gtkml/widgets/%s", "widgets/%s", "%s"}

// Resolver maps tags to widget modules.
//
// Successful resolutions are cached for the resolver's lifetime, so a tag
// resolved twice yields the same module without touching the filesystem
// again. Misses are not cached.
type Resolver struct {
	dirs []string
	diag errors.Handler

	// Stat reports whether path names a regular file. Defaults to os.Stat.
	Stat func(path string) bool

	group singleflight.Group
	mu    sync.Mutex
	cache map[string]WidgetModule
}

// NewResolver creates a resolver searching dirs in order. Empty and
// duplicate entries are dropped. Load failures are reported to diag.
func NewResolver(dirs []string, diag errors.Handler) *Resolver {
	r := &Resolver{
		diag:  diag,
		Stat:  isFile,
		cache: make(map[string]WidgetModule),
	}
	seen := make(map[string]bool)
	for _, d := range dirs {
		if d == "" {
			continue
		}
		d = filepath.Clean(d)
		if seen[d] {
			continue
		}
		seen[d] = true
		r.dirs = append(r.dirs, d)
	}
	return r
}

// SearchDirs returns the widget directories for a document in search order:
// the configured directory, then the widgets subdirectory of the document
// directory, the application root, the executable's directory and the
// working directory. Unknown locations are left empty; NewResolver drops
// them.
func SearchDirs(widgetsDir, docDir, appRoot string) []string {
	dirs := []string{widgetsDir, sub(docDir), sub(appRoot)}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, sub(filepath.Dir(exe)))
	}
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, sub(wd))
	}
	return dirs
}

func sub(dir string) string {
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "widgets")
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Candidates returns the directories searched, in order.
func (r *Resolver) Candidates() []string {
	return append([]string(nil), r.dirs...)
}

// Resolve returns the module for tag. Tags are case-insensitive. A miss is
// an *errors.ResolveError listing everything that was tried.
func (r *Resolver) Resolve(tag string) (WidgetModule, error) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if m, ok := r.cached(tag); ok {
		return m, nil
	}
	v, err, _ := r.group.Do(tag, func() (any, error) {
		if m, ok := r.cached(tag); ok {
			return m, nil
		}
		m, err := r.find(tag)
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		r.cache[tag] = m
		r.mu.Unlock()
		return m, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(WidgetModule), nil
}

func (r *Resolver) cached(tag string) (WidgetModule, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.cache[tag]
	return m, ok
}

func (r *Resolver) find(tag string) (WidgetModule, error) {
	var tried []string
	if tag == "" {
		return nil, &errors.ResolveError{Tag: tag}
	}

	// A module file that exists but fails to load ends the file search;
	// only the registry is consulted after it.
files:
	for _, dir := range r.dirs {
		for _, ext := range ModuleExts {
			path := filepath.Join(dir, tag+ext)
			tried = append(tried, path)
			if !r.Stat(path) {
				continue
			}
			m, err := r.open(path, ext, tag)
			if err != nil {
				errors.Report(r.diag, &errors.Error{
					Op:   "gtkml.Resolve",
					Kind: errors.KindModule,
					Tag:  tag,
					Path: path,
					Err:  err,
				})
				break files
			}
			return m, nil
		}
	}

	for _, format := range importGuesses {
		name := strings.ReplaceAll(format, "%s", tag)
		if module.CheckImportPath(name) != nil {
			continue
		}
		tried = append(tried, name)
		if m, ok := widgetModules.lookup(name); ok {
			return m, nil
		}
	}
	return nil, &errors.ResolveError{Tag: tag, Tried: tried}
}

func (r *Resolver) open(path, ext, tag string) (WidgetModule, error) {
	if ext == ".so" {
		return openPlugin(path)
	}
	return openDeclarative(path, tag)
}
