package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Descriptor names, in lookup order.
var DescriptorNames = []string{"gtkml.yaml", "gtkml.yml", "gtkml.json"}

// Conventional file names used when the descriptor does not name a file.
const (
	DefaultUI    = "ui.gtkm"
	DefaultStyle = "style.css"
)

// DefaultLogic lists the conventional logic unit names, in lookup order.
var DefaultLogic = []string{"logic.so", "logic.go"}

// Config represents the optional gtkml descriptor.
type Config struct {
	Main    string `yaml:"main,omitempty" json:"main,omitempty"`
	Logic   string `yaml:"logic,omitempty" json:"logic,omitempty"`
	Style   string `yaml:"style,omitempty" json:"style,omitempty"`
	Widgets string `yaml:"widgets,omitempty" json:"widgets,omitempty"`
	Assets  string `yaml:"assets,omitempty" json:"assets,omitempty"`
	ID      string `yaml:"id,omitempty" json:"id,omitempty"`
}

// Resolved contains resolved configuration values. Paths are absolute;
// empty means not found.
type Resolved struct {
	AppDir     string
	Descriptor string
	UIPath     string
	LogicPath  string
	CSSPath    string
	WidgetsDir string
	AssetsDir  string
	AppID      string

	// Warnings holds recoverable problems, such as a descriptor that
	// failed to parse.
	Warnings []error
}

// LoadOptional reads the first descriptor present in dir. It returns an
// empty Config and an empty path when there is none.
func LoadOptional(dir string) (*Config, string, error) {
	for _, name := range DescriptorNames {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return &Config{}, path, fmt.Errorf("failed to read %s: %w", name, err)
		}

		var cfg Config
		if filepath.Ext(name) == ".json" {
			err = json.Unmarshal(data, &cfg)
		} else {
			err = yaml.Unmarshal(data, &cfg)
		}
		if err != nil {
			return &Config{}, path, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		return &cfg, path, nil
	}
	return &Config{}, "", nil
}

// Resolve finds the application files for start, which is either an
// application directory or a markup file inside one.
//
// Descriptor entries win over conventional names. An unreadable descriptor
// is recorded in Warnings and conventional names are used instead. The
// only error is an invalid application id.
func Resolve(start string) (*Resolved, error) {
	start, err := filepath.Abs(start)
	if err != nil {
		return nil, err
	}
	appDir := start
	if info, err := os.Stat(start); err != nil || !info.IsDir() {
		appDir = filepath.Dir(start)
	}

	res := &Resolved{AppDir: appDir}
	cfg, descriptor, err := LoadOptional(appDir)
	res.Descriptor = descriptor
	if err != nil {
		res.Warnings = append(res.Warnings, err)
	}

	res.UIPath = join(appDir, cfg.Main)
	if res.UIPath == "" {
		switch {
		case isFile(filepath.Join(appDir, DefaultUI)):
			res.UIPath = filepath.Join(appDir, DefaultUI)
		case isFile(start) && strings.EqualFold(filepath.Ext(start), ".gtkm"):
			res.UIPath = start
		}
	}

	res.LogicPath = join(appDir, cfg.Logic)
	if res.LogicPath == "" {
		for _, name := range DefaultLogic {
			if p := filepath.Join(appDir, name); isFile(p) {
				res.LogicPath = p
				break
			}
		}
	}

	res.CSSPath = join(appDir, cfg.Style)
	if res.CSSPath == "" && isFile(filepath.Join(appDir, DefaultStyle)) {
		res.CSSPath = filepath.Join(appDir, DefaultStyle)
	}

	res.WidgetsDir = join(appDir, cfg.Widgets)
	res.AssetsDir = join(appDir, cfg.Assets)

	res.AppID = strings.TrimSpace(cfg.ID)
	if res.AppID != "" {
		if err := ValidateAppID(res.AppID); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// FindAppRoot walks up from dir to the nearest directory holding a
// descriptor or the conventional markup file.
func FindAppRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	markers := slices.Concat(DescriptorNames, []string{DefaultUI})
	for {
		for _, name := range markers {
			if isFile(filepath.Join(dir, name)) {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a gtkml application (no %s or %s found)", DefaultUI, DescriptorNames[0])
		}
		dir = parent
	}
}

func join(dir, name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(dir, name)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ValidateAppID checks a reverse-DNS application id.
func ValidateAppID(appID string) error {
	if !strings.Contains(appID, ".") {
		return fmt.Errorf("id must contain at least one '.' (got %q)", appID)
	}
	for _, segment := range strings.Split(appID, ".") {
		if segment == "" {
			return fmt.Errorf("id contains an empty segment (%q)", appID)
		}
		if segment[0] >= '0' && segment[0] <= '9' {
			return fmt.Errorf("id segments cannot start with a digit (%q)", appID)
		}
		for _, r := range segment {
			if !(r == '_' || r == '-' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
				return fmt.Errorf("id contains invalid character %q in %q", r, appID)
			}
		}
	}
	return nil
}
