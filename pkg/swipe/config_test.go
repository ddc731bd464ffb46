package swipe

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-drift/swipe/pkg/errors"
	"github.com/go-drift/swipe/pkg/geometry"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadOptionsYAML(t *testing.T) {
	path := writeFile(t, "swipe.yaml", `
orientation: vertical
alignment: edge
items_per_page: 3
wrap: true
autoscroll_rate: 0.5
`)
	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	want := DefaultOptions()
	want.Orientation = geometry.AxisVertical
	want.Alignment = AlignEdge
	want.ItemsPerPage = 3
	want.WrapEnabled = true
	want.AutoscrollRate = 0.5
	if opts != want {
		t.Errorf("LoadOptions() = %+v, want %+v", opts, want)
	}
}

func TestLoadOptionsTOML(t *testing.T) {
	path := writeFile(t, "swipe.toml", `
orientation = "h"
alignment = "center"
paging = false
defers_item_view_loading = true
deceleration_rate = 0.25
`)
	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	want := DefaultOptions()
	want.PagingEnabled = false
	want.DefersItemViewLoading = true
	want.DecelerationRate = 0.25
	if opts != want {
		t.Errorf("LoadOptions() = %+v, want %+v", opts, want)
	}
}

func TestLoadOptionsErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"bad alignment", "swipe.yaml", "alignment: diagonal\n"},
		{"bad axis", "swipe.toml", "orientation = \"sideways\"\n"},
		{"unknown toml key", "swipe.toml", "wrapping = true\n"},
		{"malformed yaml", "swipe.yml", "wrap: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadOptions(writeFile(t, tt.file, tt.content))
			if err == nil {
				t.Fatal("expected an error")
			}
			var swipeErr *errors.SwipeError
			if !stderrors.As(err, &swipeErr) || swipeErr.Kind != errors.KindConfig {
				t.Errorf("error %v is not a config SwipeError", err)
			}
		})
	}

	if _, err := LoadOptions(filepath.Join(t.TempDir(), "missing.yaml")); !stderrors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}
}

func TestAlignmentText(t *testing.T) {
	for _, a := range []Alignment{AlignCenter, AlignEdge} {
		text, err := a.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText: %v", err)
		}
		var got Alignment
		if err := got.UnmarshalText(text); err != nil || got != a {
			t.Errorf("round trip of %v gave %v, %v", a, got, err)
		}
	}
}

func TestScrollStateString(t *testing.T) {
	if got := StateProgrammaticAnimating.String(); got != "animating" {
		t.Errorf("String() = %q", got)
	}
	if got := ScrollState(42).String(); got != "ScrollState(42)" {
		t.Errorf("String() = %q", got)
	}
}
