// Package config loads the optional compose.yaml or compose.toml project
// configuration and resolves defaults from the enclosing Go module.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// File names searched in order; the first one present wins.
const (
	YAMLFile = "compose.yaml"
	TOMLFile = "compose.toml"
)

// Config represents the optional project configuration.
type Config struct {
	App    AppConfig    `yaml:"app" toml:"app"`
	Engine EngineConfig `yaml:"engine" toml:"engine"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty" toml:"name,omitempty"`
}

// EngineConfig contains engine settings. Zero values mean "use the
// default".
type EngineConfig struct {
	GCGrace int     `yaml:"gcGrace,omitempty" toml:"gcGrace,omitempty"`
	Verbose bool    `yaml:"verbose,omitempty" toml:"verbose,omitempty"`
	Width   float64 `yaml:"width,omitempty" toml:"width,omitempty"`
	Height  float64 `yaml:"height,omitempty" toml:"height,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	Source     string
	ModulePath string
	AppName    string
	GCGrace    int
	Verbose    bool
	Width      float64
	Height     float64
}

// Defaults applied by Resolve.
const (
	DefaultGCGrace = 2
	DefaultWidth   = 800
	DefaultHeight  = 600
)

// LoadOptional reads compose.yaml or compose.toml from dir if present. It
// returns the parsed config and the path it came from, empty when neither
// file exists.
func LoadOptional(dir string) (*Config, string, error) {
	for _, name := range []string{YAMLFile, TOMLFile} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, "", fmt.Errorf("failed to read %s: %w", name, err)
		}

		var cfg Config
		if name == TOMLFile {
			err = toml.Unmarshal(data, &cfg)
		} else {
			err = yaml.Unmarshal(data, &cfg)
		}
		if err != nil {
			return nil, "", fmt.Errorf("failed to parse %s: %w", name, err)
		}
		return &cfg, path, nil
	}
	return &Config{}, "", nil
}

// Resolve loads the project configuration (if present) and resolves
// defaults. A missing go.mod is not an error; the app name then falls back
// to the directory name.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	cfg, source, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(source), err)
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	r := &Resolved{
		Root:       dir,
		Source:     source,
		ModulePath: modulePath,
		AppName:    appName,
		GCGrace:    cfg.Engine.GCGrace,
		Verbose:    cfg.Engine.Verbose,
		Width:      cfg.Engine.Width,
		Height:     cfg.Engine.Height,
	}
	if r.GCGrace == 0 {
		r.GCGrace = DefaultGCGrace
	}
	if r.Width == 0 {
		r.Width = DefaultWidth
	}
	if r.Height == 0 {
		r.Height = DefaultHeight
	}
	return r, nil
}

// FindProjectRoot walks up from start to find go.mod. It returns start
// itself when no enclosing module exists.
func FindProjectRoot(start string) string {
	dir := start
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return start
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	modName, _, ok := module.SplitPathVersion(modulePath)
	if ok && modName != "" {
		parts := strings.Split(modName, "/")
		base = parts[len(parts)-1]
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "compose_app"
	}
	return base
}

func validate(cfg *Config) error {
	if cfg.Engine.GCGrace < 0 {
		return fmt.Errorf("engine.gcGrace must not be negative (got %d)", cfg.Engine.GCGrace)
	}
	if cfg.Engine.Width < 0 || cfg.Engine.Height < 0 {
		return fmt.Errorf("engine size must not be negative (got %gx%g)", cfg.Engine.Width, cfg.Engine.Height)
	}
	return nil
}
