package swipe

import (
	"math"
	"time"

	"github.com/go-drift/swipe/pkg/animation"
)

// ScrollByOffset scrolls by delta items. A positive duration animates with
// the ease-in-out curve; otherwise the offset jumps immediately. Without
// wrapping the target is clamped to the item range.
func (c *Container) ScrollByOffset(delta float64, duration time.Duration) {
	if duration <= 0 {
		c.SetScrollOffset(c.scrollOffset + delta)
		return
	}
	end := c.scrollOffset + delta
	if !c.wrapEnabled {
		end = ClampOffset(end, c.itemCount, false)
	}
	c.anim = scrollAnimation{
		start:     c.scrollOffset,
		end:       end,
		startTime: animation.Now(),
		duration:  duration,
	}
	if c.state == StateProgrammaticAnimating {
		return
	}
	c.setState(StateProgrammaticAnimating)
}

// ScrollToOffset scrolls to offset along the shortest path.
func (c *Container) ScrollToOffset(offset float64, duration time.Duration) {
	c.ScrollByOffset(MinDistance(c.scrollOffset, offset, c.itemCount, c.wrapEnabled), duration)
}

// ScrollByItems scrolls n items forward (negative: backward). Animated
// scrolls travel to the whole item boundary n items away in the direction
// of travel; n == 0 settles on the nearest item. Immediate scrolls jump to
// the item n away from the current one.
func (c *Container) ScrollByItems(n int, duration time.Duration) {
	if duration <= 0 {
		c.SetScrollOffset(float64(ClampIndex(c.previousItemIndex+n, c.itemCount, c.wrapEnabled)))
		return
	}
	var delta float64
	switch {
	case n > 0:
		delta = math.Floor(c.scrollOffset) + float64(n) - c.scrollOffset
	case n < 0:
		delta = math.Ceil(c.scrollOffset) + float64(n) - c.scrollOffset
	default:
		delta = math.Round(c.scrollOffset) - c.scrollOffset
	}
	c.ScrollByOffset(delta, duration)
}

// ScrollToItem scrolls to item index along the shortest path.
func (c *Container) ScrollToItem(index int, duration time.Duration) {
	c.ScrollToOffset(float64(index), duration)
}

// ScrollToPage scrolls to the first item of page. With a truncated final
// page the target never starts past itemCount-itemsPerPage.
func (c *Container) ScrollToPage(page int, duration time.Duration) {
	index := page * c.itemsPerPage
	if c.truncateFinalPage {
		index = min(index, c.itemCount-c.itemsPerPage)
	}
	c.ScrollToItem(index, duration)
}
