package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/gtkml/cmd/gtkml/internal/config"
	"github.com/go-drift/gtkml/pkg/errors"
	"github.com/go-drift/gtkml/pkg/gtkml"
	"github.com/go-drift/gtkml/pkg/toolkit/headless"

	// Built-in widget modules and the bundled example's logic unit.
	_ "github.com/go-drift/gtkml/example"
	_ "github.com/go-drift/gtkml/pkg/widgets"
)

// appOptions holds the flags shared by run, dump and check.
type appOptions struct {
	widgets string
	assets  string
	appID   string
	verbose bool
}

// parseAppArgs splits args into positional arguments and application flags.
// Value flags accept both "--flag value" and "--flag=value".
func parseAppArgs(args []string) ([]string, appOptions, error) {
	var opts appOptions
	var positional []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, value, hasValue := strings.Cut(arg, "=")

		var target *string
		switch name {
		case "--widgets":
			target = &opts.widgets
		case "--assets":
			target = &opts.assets
		case "--app-id":
			target = &opts.appID
		case "--verbose":
			if hasValue {
				return nil, opts, fmt.Errorf("--verbose takes no value")
			}
			opts.verbose = true
			continue
		default:
			if strings.HasPrefix(arg, "--") {
				return nil, opts, fmt.Errorf("unknown flag %s", name)
			}
			positional = append(positional, arg)
			continue
		}

		if !hasValue {
			if i+1 >= len(args) {
				return nil, opts, fmt.Errorf("%s requires a value", name)
			}
			i++
			value = args[i]
		}
		*target = value
	}
	return positional, opts, nil
}

// defaultStart picks the application when no path is given: the enclosing
// application of the working directory, else the example next to the
// executable.
func defaultStart() string {
	if wd, err := os.Getwd(); err == nil {
		if root, err := config.FindAppRoot(wd); err == nil {
			return root
		}
	}
	if exe, err := os.Executable(); err == nil {
		return filepath.Join(filepath.Dir(exe), "example")
	}
	return "."
}

// loadApp resolves the application at start and prepares it on a headless
// toolkit. Configuration warnings go to diag.
func loadApp(start string, opts appOptions, diag errors.Handler) (*gtkml.App, *headless.Toolkit, error) {
	if start == "" {
		start = defaultStart()
	}
	res, err := config.Resolve(start)
	if err != nil {
		return nil, nil, err
	}
	for _, w := range res.Warnings {
		errors.Warn(diag, "config.Resolve", errors.KindConfig, w)
	}
	if res.UIPath == "" {
		return nil, nil, fmt.Errorf("no markup document found in %s (expected %s or a descriptor)", res.AppDir, config.DefaultUI)
	}

	appOpts := gtkml.Options{
		UIPath:      res.UIPath,
		LogicPath:   res.LogicPath,
		CSSPath:     res.CSSPath,
		WidgetsDir:  res.WidgetsDir,
		AssetsDir:   res.AssetsDir,
		AppRoot:     res.AppDir,
		AppID:       res.AppID,
		Diagnostics: diag,
	}
	if opts.widgets != "" {
		appOpts.WidgetsDir = opts.widgets
	}
	if opts.assets != "" {
		appOpts.AssetsDir = opts.assets
	}
	if opts.appID != "" {
		if err := config.ValidateAppID(opts.appID); err != nil {
			return nil, nil, err
		}
		appOpts.AppID = opts.appID
	}

	tk := headless.New()
	app, err := gtkml.NewApp(tk, appOpts)
	if err != nil {
		return nil, nil, err
	}
	return app, tk, nil
}

func firstArg(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "", nil
	case 1:
		return args[0], nil
	}
	return "", fmt.Errorf("expected at most one path, got %d", len(args))
}
