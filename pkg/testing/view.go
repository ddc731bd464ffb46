package testing

import (
	"fmt"

	"github.com/go-drift/swipe/pkg/geometry"
	"github.com/go-drift/swipe/pkg/swipe"
)

// FakeView is an in-memory item view.
type FakeView struct {
	// Item is the index the view was last configured for.
	Item int
	// Parent is the view containing this one, if any.
	Parent *FakeView
	// HandlesTouches marks views that consume touches themselves.
	HandlesTouches bool

	Interactive bool
	Translation geometry.Offset

	center geometry.Offset
	size   geometry.Size
}

// NewFakeView returns a view of the given size centered on the origin.
func NewFakeView(item int, size geometry.Size) *FakeView {
	return &FakeView{Item: item, size: size}
}

func (v *FakeView) Frame() geometry.Rect             { return geometry.RectFromCenter(v.center, v.size) }
func (v *FakeView) Center() geometry.Offset          { return v.center }
func (v *FakeView) SetCenter(center geometry.Offset) { v.center = center }
func (v *FakeView) SetBounds(size geometry.Size)     { v.size = size }
func (v *FakeView) SetInteractive(enabled bool)      { v.Interactive = enabled }
func (v *FakeView) SetTranslation(t geometry.Offset) { v.Translation = t }

func (v *FakeView) String() string {
	return fmt.Sprintf("view(%d)", v.Item)
}

// FakeHitTester resolves ownership through FakeView.Parent links.
type FakeHitTester struct{}

// Contains reports whether descendant is item or one of its descendants.
func (FakeHitTester) Contains(item, descendant swipe.View) bool {
	for v, _ := descendant.(*FakeView); v != nil; v = v.Parent {
		if swipe.View(v) == item {
			return true
		}
	}
	return false
}

// HandlesTouches reports whether v or one of its ancestors handles
// touches.
func (FakeHitTester) HandlesTouches(view swipe.View) bool {
	for v, _ := view.(*FakeView); v != nil; v = v.Parent {
		if v.HandlesTouches {
			return true
		}
	}
	return false
}

// FakeTransitions counts suspensions of implicit animations.
type FakeTransitions struct {
	Depth    int
	Suspends int
}

// Suspend implements swipe.TransitionScope.
func (t *FakeTransitions) Suspend() func() {
	t.Depth++
	t.Suspends++
	return func() { t.Depth-- }
}
