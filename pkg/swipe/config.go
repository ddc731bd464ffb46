package swipe

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/swipe/pkg/errors"
	"github.com/go-drift/swipe/pkg/geometry"
)

// Alignment controls where the scroll frame sits inside the container.
type Alignment int

const (
	// AlignCenter insets the frame so ItemsPerPage items appear centered.
	AlignCenter Alignment = iota
	// AlignEdge anchors the frame at the container's leading edge.
	AlignEdge
)

func (a Alignment) String() string {
	switch a {
	case AlignEdge:
		return "edge"
	default:
		return "center"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Alignment) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Alignment) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "center":
		*a = AlignCenter
	case "edge":
		*a = AlignEdge
	default:
		return fmt.Errorf("unknown alignment %q", text)
	}
	return nil
}

// Options mirrors every configurable container property. The zero value is
// not the default; start from [DefaultOptions].
type Options struct {
	Orientation           geometry.Axis `yaml:"orientation" toml:"orientation"`
	Alignment             Alignment     `yaml:"alignment" toml:"alignment"`
	ItemsPerPage          int           `yaml:"items_per_page" toml:"items_per_page"`
	TruncateFinalPage     bool          `yaml:"truncate_final_page" toml:"truncate_final_page"`
	WrapEnabled           bool          `yaml:"wrap" toml:"wrap"`
	PagingEnabled         bool          `yaml:"paging" toml:"paging"`
	ScrollEnabled         bool          `yaml:"scroll_enabled" toml:"scroll_enabled"`
	Bounces               bool          `yaml:"bounces" toml:"bounces"`
	DecelerationRate      float64       `yaml:"deceleration_rate" toml:"deceleration_rate"`
	AutoscrollRate        float64       `yaml:"autoscroll_rate" toml:"autoscroll_rate"`
	DefersItemViewLoading bool          `yaml:"defers_item_view_loading" toml:"defers_item_view_loading"`
}

// DefaultDecelerationRate matches a typical native fast-deceleration rate.
const DefaultDecelerationRate = 0.1

// DefaultOptions returns the options a new container starts with.
func DefaultOptions() Options {
	return Options{
		Orientation:      geometry.AxisHorizontal,
		Alignment:        AlignCenter,
		ItemsPerPage:     1,
		PagingEnabled:    true,
		ScrollEnabled:    true,
		Bounces:          true,
		DecelerationRate: DefaultDecelerationRate,
	}
}

// LoadOptions reads options from a file, starting from DefaultOptions.
// Files ending in .toml are decoded as TOML, everything else as YAML.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, configError("swipe.LoadOptions", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = DecodeTOML(data, &opts)
	} else {
		err = DecodeYAML(data, &opts)
	}
	if err != nil {
		return DefaultOptions(), configError("swipe.LoadOptions", fmt.Errorf("%s: %w", path, err))
	}
	return opts, nil
}

// DecodeYAML decodes YAML over the values already in opts.
func DecodeYAML(data []byte, opts *Options) error {
	if err := yaml.Unmarshal(data, opts); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	return nil
}

// DecodeTOML decodes TOML over the values already in opts.
func DecodeTOML(data []byte, opts *Options) error {
	md, err := toml.Decode(string(data), opts)
	if err != nil {
		return fmt.Errorf("parse toml: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown option %q", undecoded[0].String())
	}
	return nil
}

func configError(op string, err error) error {
	return &errors.SwipeError{Op: op, Kind: errors.KindConfig, Index: -1, Err: err}
}

// Options returns the container's current configuration.
func (c *Container) Options() Options {
	return Options{
		Orientation:           c.orientation,
		Alignment:             c.alignment,
		ItemsPerPage:          c.itemsPerPage,
		TruncateFinalPage:     c.truncateFinalPage,
		WrapEnabled:           c.wrapEnabled,
		PagingEnabled:         c.pagingEnabled,
		ScrollEnabled:         c.scrollEnabled,
		Bounces:               c.bounces,
		DecelerationRate:      c.decelerationRate,
		AutoscrollRate:        c.autoscrollRate,
		DefersItemViewLoading: c.defersItemViewLoading,
	}
}

// Apply routes every option through its setter and reports whether any of
// them requires a layout pass.
func (c *Container) Apply(o Options) bool {
	needsLayout := c.SetOrientation(o.Orientation)
	needsLayout = c.SetAlignment(o.Alignment) || needsLayout
	needsLayout = c.SetItemsPerPage(o.ItemsPerPage) || needsLayout
	needsLayout = c.SetTruncateFinalPage(o.TruncateFinalPage) || needsLayout
	needsLayout = c.SetWrapEnabled(o.WrapEnabled) || needsLayout
	needsLayout = c.SetPagingEnabled(o.PagingEnabled) || needsLayout
	needsLayout = c.SetScrollEnabled(o.ScrollEnabled) || needsLayout
	needsLayout = c.SetBounces(o.Bounces) || needsLayout
	needsLayout = c.SetDecelerationRate(o.DecelerationRate) || needsLayout
	needsLayout = c.SetDefersItemViewLoading(o.DefersItemViewLoading) || needsLayout
	needsLayout = c.SetAutoscrollRate(o.AutoscrollRate) || needsLayout
	return needsLayout
}
