package swipe

import (
	"math"

	"github.com/go-drift/swipe/pkg/geometry"
)

// ShouldReceiveTouch reports whether a tap landing on v should be handled
// as an item selection: v must belong to a loaded item, the delegate must
// not decline the item, and v must not handle touches itself.
func (c *Container) ShouldReceiveTouch(v View) bool {
	index, ok := c.IndexOfViewOrDescendant(v)
	if !ok {
		return false
	}
	if !c.delegate.shouldSelect(index) {
		return false
	}
	return !c.hitTester.HandlesTouches(v)
}

// DidTap maps a tap at point, in scroll-content coordinates, to an item
// and reports the selection. It returns the selected index.
func (c *Container) DidTap(point geometry.Offset) (int, bool) {
	if c.itemCount == 0 {
		return 0, false
	}
	index := int(math.Floor(c.orientation.Main(point) / c.itemExtent()))
	if c.wrapEnabled {
		index %= c.itemCount
	}
	if index < 0 || index >= c.itemCount {
		return 0, false
	}
	c.delegate.itemSelected(index)
	return index, true
}
