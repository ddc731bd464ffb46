package swipe

import "github.com/go-drift/swipe/pkg/geometry"

// View is an opaque item view handle owned by the host view tree.
//
// The container never creates views; it receives them from a [DataSource],
// positions them and moves them in and out of the host [ScrollView].
type View interface {
	// Frame is the view's current frame in its parent's coordinates. The
	// container reads it once to measure the item size when no preferred
	// size is supplied.
	Frame() geometry.Rect
	// Center is the view's centre in scroll-content coordinates.
	Center() geometry.Offset
	SetCenter(center geometry.Offset)
	// SetBounds sets the view's size, keeping its centre.
	SetBounds(size geometry.Size)
	SetInteractive(enabled bool)
}

// ScrollView is the host's native scrolling surface.
//
// Contract: SetContentOffset must report the change back synchronously by
// calling [Container.DidScroll] before it returns, exactly like a native
// scroll view reports programmatic offset changes. The container relies on
// this to recognise (and ignore) its own writes.
type ScrollView interface {
	Frame() geometry.Rect
	SetFrame(frame geometry.Rect)
	ContentSize() geometry.Size
	SetContentSize(size geometry.Size)
	ContentOffset() geometry.Offset
	SetContentOffset(offset geometry.Offset)

	AddSubview(v View)
	RemoveSubview(v View)

	// IsDragging reports whether a user drag is in progress.
	IsDragging() bool
	// IsDecelerating reports whether native momentum scrolling is running.
	IsDecelerating() bool

	SetPagingEnabled(enabled bool)
	SetScrollEnabled(enabled bool)
	SetBounces(enabled bool)
	SetDecelerationRate(rate float64)
}

// HitTester answers view-tree ownership questions for touch handling.
type HitTester interface {
	// Contains reports whether descendant is item or lies inside it.
	Contains(item, descendant View) bool
	// HandlesTouches reports whether v, or one of its ancestors below the
	// scroll view, consumes touches itself (buttons, text fields).
	HandlesTouches(v View) bool
}

// TransitionScope suspends the host's implicit view animations.
//
// Suspend returns a function that restores the previous state; the
// container calls it before returning from the positioning routine.
type TransitionScope interface {
	Suspend() (restore func())
}

// identityHitTester treats every view as its own item with no touch
// handling of its own.
type identityHitTester struct{}

func (identityHitTester) Contains(item, descendant View) bool { return item == descendant }
func (identityHitTester) HandlesTouches(View) bool            { return false }

// noTransitions is used when the host has no implicit animations.
type noTransitions struct{}

func (noTransitions) Suspend() func() { return func() {} }
