package testing

import (
	"slices"

	"github.com/go-drift/swipe/pkg/geometry"
	"github.com/go-drift/swipe/pkg/swipe"
)

// ScrollObserver receives native scroll reports from a FakeScrollView.
type ScrollObserver interface {
	DidScroll()
}

// GestureObserver is implemented by observers that also follow drags and
// momentum scrolling, such as [swipe.Container].
type GestureObserver interface {
	WillBeginDragging()
	DidEndDragging(willDecelerate bool)
	WillBeginDecelerating()
	DidEndDecelerating()
}

// FakeScrollView is an in-memory [swipe.ScrollView]. It reports every
// content offset change to Observer synchronously and records the host
// options it was given.
type FakeScrollView struct {
	Observer ScrollObserver

	frame         geometry.Rect
	contentSize   geometry.Size
	contentOffset geometry.Offset
	subviews      []swipe.View
	dragging      bool
	decelerating  bool

	PagingEnabled    bool
	ScrollEnabled    bool
	Bounces          bool
	DecelerationRate float64

	// Writes counts SetContentOffset calls.
	Writes int
}

// NewFakeScrollView returns an empty fake scroll view.
func NewFakeScrollView() *FakeScrollView {
	return &FakeScrollView{ScrollEnabled: true}
}

func (s *FakeScrollView) Frame() geometry.Rect              { return s.frame }
func (s *FakeScrollView) SetFrame(frame geometry.Rect)      { s.frame = frame }
func (s *FakeScrollView) ContentSize() geometry.Size        { return s.contentSize }
func (s *FakeScrollView) SetContentSize(size geometry.Size) { s.contentSize = size }
func (s *FakeScrollView) ContentOffset() geometry.Offset    { return s.contentOffset }
func (s *FakeScrollView) IsDragging() bool                  { return s.dragging }
func (s *FakeScrollView) IsDecelerating() bool              { return s.decelerating }
func (s *FakeScrollView) SetPagingEnabled(enabled bool)     { s.PagingEnabled = enabled }
func (s *FakeScrollView) SetScrollEnabled(enabled bool)     { s.ScrollEnabled = enabled }
func (s *FakeScrollView) SetBounces(enabled bool)           { s.Bounces = enabled }
func (s *FakeScrollView) SetDecelerationRate(rate float64)  { s.DecelerationRate = rate }

// SetContentOffset moves the content and reports the change.
func (s *FakeScrollView) SetContentOffset(offset geometry.Offset) {
	s.Writes++
	s.contentOffset = offset
	if s.Observer != nil {
		s.Observer.DidScroll()
	}
}

// AddSubview adds v on top. Adding a view twice is a no-op.
func (s *FakeScrollView) AddSubview(v swipe.View) {
	if slices.Contains(s.subviews, v) {
		return
	}
	s.subviews = append(s.subviews, v)
}

// RemoveSubview removes v if present.
func (s *FakeScrollView) RemoveSubview(v swipe.View) {
	if i := slices.Index(s.subviews, v); i >= 0 {
		s.subviews = slices.Delete(s.subviews, i, i+1)
	}
}

// Subviews returns the current subviews in insertion order.
func (s *FakeScrollView) Subviews() []swipe.View {
	return slices.Clone(s.subviews)
}

// BeginDrag starts a user drag.
func (s *FakeScrollView) BeginDrag() {
	s.dragging = true
	if g, ok := s.Observer.(GestureObserver); ok {
		g.WillBeginDragging()
	}
}

// DragBy moves the content by delta during a drag, the way a finger
// moving against the content would.
func (s *FakeScrollView) DragBy(delta geometry.Offset) {
	s.contentOffset = geometry.Offset{X: s.contentOffset.X + delta.X, Y: s.contentOffset.Y + delta.Y}
	if s.Observer != nil {
		s.Observer.DidScroll()
	}
}

// EndDrag ends the drag. With momentum the view enters deceleration until
// EndDeceleration is called.
func (s *FakeScrollView) EndDrag(momentum bool) {
	s.dragging = false
	g, _ := s.Observer.(GestureObserver)
	if g != nil {
		g.DidEndDragging(momentum)
	}
	if momentum {
		s.decelerating = true
		if g != nil {
			g.WillBeginDecelerating()
		}
	}
}

// EndDeceleration stops momentum scrolling.
func (s *FakeScrollView) EndDeceleration() {
	s.decelerating = false
	if g, ok := s.Observer.(GestureObserver); ok {
		g.DidEndDecelerating()
	}
}
