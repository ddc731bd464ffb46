package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/swipe/pkg/swipe"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// FileName is the optional project configuration file.
const FileName = "swipe.yaml"

const (
	defaultItemCount = 12
	defaultPadding   = 7
)

// Config represents the optional swipe.yaml configuration.
type Config struct {
	Title   string   `yaml:"title,omitempty"`
	Items   []string `yaml:"items,omitempty"`
	Padding *float64 `yaml:"padding,omitempty"`
	// Options names a YAML or TOML options file, relative to the project.
	Options string `yaml:"options,omitempty"`
	// Carousel holds inline options, applied after the options file.
	Carousel yaml.Node `yaml:"carousel,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	Title      string
	Items      []string
	Padding    float64
	Options    swipe.Options
}

// LoadOptional reads swipe.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads swipe.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(cfg.Title)
	if title == "" {
		title = defaultTitle(modulePath, dir)
	}

	items := cfg.Items
	if len(items) == 0 {
		items = make([]string, defaultItemCount)
		for i := range items {
			items[i] = fmt.Sprintf("Item %d", i)
		}
	}

	padding := float64(defaultPadding)
	if cfg.Padding != nil {
		if *cfg.Padding < 0 {
			return nil, fmt.Errorf("padding must not be negative (got %v)", *cfg.Padding)
		}
		padding = *cfg.Padding
	}

	opts := swipe.DefaultOptions()
	if cfg.Options != "" {
		path := cfg.Options
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		if opts, err = swipe.LoadOptions(path); err != nil {
			return nil, err
		}
	}
	if !cfg.Carousel.IsZero() {
		if err := cfg.Carousel.Decode(&opts); err != nil {
			return nil, fmt.Errorf("failed to parse carousel options: %w", err)
		}
	}
	if opts.ItemsPerPage < 1 {
		return nil, fmt.Errorf("items_per_page must be at least 1 (got %d)", opts.ItemsPerPage)
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		Title:      title,
		Items:      items,
		Padding:    padding,
		Options:    opts,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

// modulePath returns the module path declared in dir's go.mod, or "" when
// dir has no go.mod.
func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultTitle(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modName, _, ok := module.SplitPathVersion(modulePath); ok && modulePath != "" {
		parts := strings.Split(modName, "/")
		base = parts[len(parts)-1]
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "swipe"
	}
	return base
}
