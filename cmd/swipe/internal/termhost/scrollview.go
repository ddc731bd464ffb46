// Package termhost runs a swipe container in a terminal.
//
// [ScrollView] is a native scroll surface measured in pixels of the 7x13
// label face, so one glyph of an item label covers exactly one terminal
// cell. It implements drags, momentum, paging and rubber-band bounce the
// way a touch scroll view would, and reports every offset change to its
// observer synchronously.
package termhost

import (
	"math"
	"slices"
	"time"

	"github.com/go-drift/swipe/pkg/geometry"
	"github.com/go-drift/swipe/pkg/swipe"
)

// Cell size in pixels.
const (
	CellWidth  = 7
	CellHeight = 13
)

const (
	// minVelocity is the speed in px/s below which momentum stops.
	minVelocity = 20.0
	// snapRate is the fraction of the remaining distance covered per
	// second while settling onto a page or a bound.
	snapRate = 10.0
	// projection is how far ahead a release velocity is projected when
	// choosing the page to settle on.
	projection = 0.1
	// rubberBand scales drag movement past the content bounds.
	rubberBand = 0.5
)

// Observer receives scroll and gesture reports. [swipe.Container]
// implements it.
type Observer interface {
	DidScroll()
	WillBeginDragging()
	DidEndDragging(willDecelerate bool)
	WillBeginDecelerating()
	DidEndDecelerating()
}

// ScrollView is a terminal implementation of swipe.ScrollView.
type ScrollView struct {
	Observer Observer
	// Axis is the scroll direction. Drags and momentum only move along it.
	Axis geometry.Axis

	frame         geometry.Rect
	contentSize   geometry.Size
	contentOffset geometry.Offset
	subviews      []swipe.View

	pagingEnabled    bool
	scrollEnabled    bool
	bounces          bool
	decelerationRate float64

	dragging     bool
	decelerating bool
	dragStart    float64
	velocity     float64
	lastSample   time.Time
	target       float64
	hasTarget    bool
}

// NewScrollView returns a scroll view along axis.
func NewScrollView(axis geometry.Axis) *ScrollView {
	return &ScrollView{
		Axis:             axis,
		scrollEnabled:    true,
		bounces:          true,
		decelerationRate: swipe.DefaultDecelerationRate,
	}
}

func (s *ScrollView) Frame() geometry.Rect             { return s.frame }
func (s *ScrollView) SetFrame(frame geometry.Rect)     { s.frame = frame }
func (s *ScrollView) ContentSize() geometry.Size       { return s.contentSize }
func (s *ScrollView) ContentOffset() geometry.Offset   { return s.contentOffset }
func (s *ScrollView) IsDragging() bool                 { return s.dragging }
func (s *ScrollView) IsDecelerating() bool             { return s.decelerating }
func (s *ScrollView) SetPagingEnabled(enabled bool)    { s.pagingEnabled = enabled }
func (s *ScrollView) SetBounces(enabled bool)          { s.bounces = enabled }
func (s *ScrollView) SetDecelerationRate(rate float64) { s.decelerationRate = rate }

// SetContentSize resizes the scrollable content.
func (s *ScrollView) SetContentSize(size geometry.Size) {
	s.contentSize = size
}

// SetScrollEnabled enables or disables user drags. Disabling cancels a
// drag in progress.
func (s *ScrollView) SetScrollEnabled(enabled bool) {
	s.scrollEnabled = enabled
	if !enabled && s.dragging {
		s.EndDrag()
	}
}

// SetContentOffset moves the content and reports the change. A pending
// snap target moves with the content so a position correction made by the
// observer does not restart the settle.
func (s *ScrollView) SetContentOffset(offset geometry.Offset) {
	delta := s.Axis.Main(offset) - s.Axis.Main(s.contentOffset)
	if s.hasTarget {
		s.target += delta
	}
	s.dragStart += delta
	s.setOffset(offset)
}

func (s *ScrollView) setOffset(offset geometry.Offset) {
	s.contentOffset = offset
	if s.Observer != nil {
		s.Observer.DidScroll()
	}
}

// AddSubview adds v on top. Adding a view twice is a no-op.
func (s *ScrollView) AddSubview(v swipe.View) {
	if !slices.Contains(s.subviews, v) {
		s.subviews = append(s.subviews, v)
	}
}

// RemoveSubview removes v if present.
func (s *ScrollView) RemoveSubview(v swipe.View) {
	if i := slices.Index(s.subviews, v); i >= 0 {
		s.subviews = slices.Delete(s.subviews, i, i+1)
	}
}

// Subviews returns the current subviews in insertion order.
func (s *ScrollView) Subviews() []swipe.View {
	return slices.Clone(s.subviews)
}

func (s *ScrollView) main() float64 {
	return s.Axis.Main(s.contentOffset)
}

func (s *ScrollView) pageExtent() float64 {
	return s.Axis.MainExtent(s.frame.Size())
}

func (s *ScrollView) maxOffset() float64 {
	return max(0, s.Axis.MainExtent(s.contentSize)-s.pageExtent())
}

func (s *ScrollView) bound(main float64) float64 {
	return min(max(main, 0), s.maxOffset())
}

// BeginDrag starts a user drag at now. Momentum in progress stops.
func (s *ScrollView) BeginDrag(now time.Time) {
	if !s.scrollEnabled || s.dragging {
		return
	}
	s.decelerating = false
	s.hasTarget = false
	s.dragging = true
	s.dragStart = s.main()
	s.velocity = 0
	s.lastSample = now
	if s.Observer != nil {
		s.Observer.WillBeginDragging()
	}
}

// DragBy moves the content by delta pixels along the axis, the way a
// finger moving against the content would. Past the bounds the content
// follows at half speed when bouncing and stops otherwise.
func (s *ScrollView) DragBy(delta float64, now time.Time) {
	if !s.dragging {
		return
	}
	if dt := now.Sub(s.lastSample).Seconds(); dt > 0 {
		s.velocity = delta / dt
	}
	s.lastSample = now

	main := s.main()
	next := main + delta
	if s.bounces {
		if bounded := s.bound(next); bounded != next {
			next = bounded + (next-bounded)*rubberBand
		}
	} else {
		next = s.bound(next)
	}
	if next != main {
		s.setOffset(s.Axis.Point(next, 0))
	}
}

// EndDrag releases the drag. The view decelerates when released with
// enough speed, when it has to settle onto a page or back inside the
// bounds.
func (s *ScrollView) EndDrag() {
	if !s.dragging {
		return
	}
	s.dragging = false
	main := s.main()

	switch page := s.pageExtent(); {
	case s.pagingEnabled && page > 0:
		start := math.Round(s.dragStart / page)
		n := math.Round((main + s.velocity*projection) / page)
		n = min(max(n, start-1), start+1)
		s.target, s.hasTarget = s.bound(n*page), true
	case s.bound(main) != main:
		s.target, s.hasTarget = s.bound(main), true
	}

	momentum := math.Abs(s.velocity) >= minVelocity
	if s.hasTarget {
		momentum = s.target != main
		s.hasTarget = momentum
	}
	if s.Observer != nil {
		s.Observer.DidEndDragging(momentum)
	}
	if momentum {
		s.decelerating = true
		if s.Observer != nil {
			s.Observer.WillBeginDecelerating()
		}
	}
}

// Step advances momentum scrolling by dt.
func (s *ScrollView) Step(dt time.Duration) {
	if !s.decelerating || dt <= 0 {
		return
	}
	main := s.main()
	secs := dt.Seconds()

	var next float64
	done := false
	if s.hasTarget {
		next = main + (s.target-main)*min(1, secs*snapRate)
		if math.Abs(s.target-next) < 0.5 {
			next, done = s.target, true
		}
	} else {
		s.velocity *= math.Pow(s.decelerationRate, secs)
		next = main + s.velocity*secs
		if bounded := s.bound(next); bounded != next {
			if s.bounces {
				s.target, s.hasTarget = bounded, true
			} else {
				next = bounded
				s.velocity = 0
			}
		}
		done = !s.hasTarget && math.Abs(s.velocity) < minVelocity
	}

	if next != main {
		s.setOffset(s.Axis.Point(next, 0))
	}
	if done {
		s.decelerating = false
		s.hasTarget = false
		s.velocity = 0
		if s.Observer != nil {
			s.Observer.DidEndDecelerating()
		}
	}
}
