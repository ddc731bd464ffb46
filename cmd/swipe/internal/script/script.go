// Package script runs reproducible swipe scenarios without a terminal.
//
// A script describes a container (item count, item size, bounds and
// options) and a list of steps: drags, releases, programmatic scrolls,
// taps and frame advances. Run plays it on the in-memory host with a fake
// clock and writes every container event with its timestamp, so the same
// script always produces the same log.
package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-drift/swipe/pkg/animation"
	"github.com/go-drift/swipe/pkg/geometry"
	"github.com/go-drift/swipe/pkg/swipe"
	swipetest "github.com/go-drift/swipe/pkg/testing"
	"gopkg.in/yaml.v3"
)

// FrameInterval is the simulated time between frames.
const FrameInterval = 16 * time.Millisecond

// Script is a decoded scenario.
type Script struct {
	Items    int           `yaml:"items"`
	ItemSize geometry.Size `yaml:"item_size"`
	Bounds   geometry.Size `yaml:"bounds"`
	Options  yaml.Node     `yaml:"options"`
	Steps    []Step        `yaml:"steps"`

	options swipe.Options
}

// Step is one action. Exactly one action field must be set; Duration
// applies to scroll_to and scroll_by.
type Step struct {
	Drag       *float64      `yaml:"drag"`
	Release    *bool         `yaml:"release"`
	Settle     bool          `yaml:"settle"`
	ScrollTo   *int          `yaml:"scroll_to"`
	ScrollBy   *int          `yaml:"scroll_by"`
	Duration   time.Duration `yaml:"duration"`
	Autoscroll *float64      `yaml:"autoscroll"`
	Tap        *float64      `yaml:"tap"`
	Reload     *int          `yaml:"reload"`
	Frames     int           `yaml:"frames"`
}

// Name returns the step's action name.
func (s Step) Name() string {
	names := s.actions()
	if len(names) != 1 {
		return "invalid"
	}
	return names[0]
}

func (s Step) actions() []string {
	var names []string
	add := func(set bool, name string) {
		if set {
			names = append(names, name)
		}
	}
	add(s.Drag != nil, "drag")
	add(s.Release != nil, "release")
	add(s.Settle, "settle")
	add(s.ScrollTo != nil, "scroll_to")
	add(s.ScrollBy != nil, "scroll_by")
	add(s.Autoscroll != nil, "autoscroll")
	add(s.Tap != nil, "tap")
	add(s.Reload != nil, "reload")
	add(s.Frames != 0, "frames")
	return names
}

// Load reads and validates a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a script. Unknown keys are rejected.
func Parse(data []byte) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse script: %w", err)
	}

	s.options = swipe.DefaultOptions()
	if !s.Options.IsZero() {
		if err := s.Options.Decode(&s.options); err != nil {
			return nil, fmt.Errorf("parse options: %w", err)
		}
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Script) validate() error {
	if s.Items < 0 {
		return fmt.Errorf("items must not be negative (got %d)", s.Items)
	}
	if s.Bounds.Width <= 0 || s.Bounds.Height <= 0 {
		return fmt.Errorf("bounds must be positive (got %vx%v)", s.Bounds.Width, s.Bounds.Height)
	}
	if s.ItemSize.IsZero() {
		s.ItemSize = s.Bounds
	}
	for i, step := range s.Steps {
		switch names := step.actions(); {
		case len(names) == 0:
			return fmt.Errorf("step %d: no action", i+1)
		case len(names) > 1:
			return fmt.Errorf("step %d: one action per step (got %s)", i+1, strings.Join(names, ", "))
		}
		if step.Duration != 0 && step.ScrollTo == nil && step.ScrollBy == nil {
			return fmt.Errorf("step %d: duration only applies to scroll_to and scroll_by", i+1)
		}
		if step.Frames < 0 {
			return fmt.Errorf("step %d: frames must not be negative", i+1)
		}
		if step.Reload != nil && *step.Reload < 0 {
			return fmt.Errorf("step %d: reload count must not be negative", i+1)
		}
	}
	return nil
}

// runner is one playback of a script.
type runner struct {
	s      *Script
	w      io.Writer
	clock  *swipetest.FakeClock
	start  time.Time
	view   *swipetest.FakeScrollView
	source *swipetest.FakeDataSource
	c      *swipe.Container
	err    error
}

// Run plays the script and writes the event log to w. The animation clock
// is replaced for the duration of the run.
func (s *Script) Run(w io.Writer) error {
	clock := swipetest.NewFakeClock()
	prev := animation.SetClock(clock)
	defer animation.SetClock(prev)

	r := &runner{
		s:      s,
		w:      w,
		clock:  clock,
		start:  clock.Now(),
		view:   swipetest.NewFakeScrollView(),
		source: swipetest.NewFakeDataSource(s.Items, s.ItemSize),
	}
	r.c = swipe.New(r.view)
	r.view.Observer = r.c
	r.c.SetDataSource(r.source)
	r.c.SetDelegate(r.delegate())
	r.c.Apply(s.options)
	r.c.SetBounds(s.Bounds)
	r.c.Attach()
	defer r.c.Detach()
	r.c.Layout()
	r.logState("start")

	for i, step := range s.Steps {
		r.apply(step)
		r.logState(fmt.Sprintf("step %d %s", i+1, step.Name()))
		if r.err != nil {
			return r.err
		}
	}
	return nil
}

func (r *runner) logf(format string, args ...any) {
	if r.err != nil {
		return
	}
	ms := r.clock.Now().Sub(r.start).Milliseconds()
	_, r.err = fmt.Fprintf(r.w, "%6dms  "+format+"\n", append([]any{ms}, args...)...)
}

func (r *runner) logState(what string) {
	c := r.c
	r.logf("%s: offset=%.3f index=%d page=%d state=%s visible=%v",
		what, c.ScrollOffset(), c.CurrentItemIndex(), c.CurrentPage(), c.State(), c.VisibleIndices())
}

func (r *runner) delegate() swipe.Delegate {
	return swipe.Delegate{
		OnCurrentIndexChanged: func(index int) { r.logf("index %d", index) },
		OnDragBegin:           func() { r.logf("drag begin") },
		OnDragEnd:             func(decelerate bool) { r.logf("drag end decelerate=%v", decelerate) },
		OnDecelerateBegin:     func() { r.logf("decelerate begin") },
		OnDecelerateEnd:       func() { r.logf("decelerate end") },
		OnAnimationEnd:        func() { r.logf("animation end offset=%.3f", r.c.ScrollOffset()) },
		OnItemSelected:        func(index int) { r.logf("selected %d", index) },
	}
}

func (r *runner) apply(step Step) {
	c, view := r.c, r.view
	axis := c.Options().Orientation

	switch {
	case step.Drag != nil:
		if !view.IsDragging() {
			view.BeginDrag()
		}
		view.DragBy(axis.Point(*step.Drag, 0))
	case step.Release != nil:
		if view.IsDragging() {
			view.EndDrag(*step.Release)
		}
	case step.Settle:
		if view.IsDecelerating() {
			view.EndDeceleration()
		}
	case step.ScrollTo != nil:
		c.ScrollToItem(*step.ScrollTo, step.Duration)
	case step.ScrollBy != nil:
		c.ScrollByItems(*step.ScrollBy, step.Duration)
	case step.Autoscroll != nil:
		c.SetAutoscrollRate(*step.Autoscroll)
	case step.Tap != nil:
		c.DidTap(axis.Point(*step.Tap, 0))
	case step.Reload != nil:
		r.source.Count = *step.Reload
		c.ReloadData()
		c.Layout()
	case step.Frames > 0:
		for range step.Frames {
			r.clock.Advance(FrameInterval)
			animation.StepTickers()
			c.LayoutIfNeeded()
		}
	}
}
