package swipe

import (
	"math"
	"slices"

	"github.com/go-drift/swipe/pkg/geometry"
)

// minItemExtent is the floor applied to each item dimension.
const minItemExtent = 0.0001

// refreshItemSizeAndCount re-reads the item count and derives the item
// size: the delegate's preferred size if it has one, otherwise the frame
// of the first item view. Each dimension is floored to 1.
func (c *Container) refreshItemSizeAndCount() {
	c.itemCount = itemCount(c.dataSource)

	if size := c.delegate.preferredItemSize(); !size.IsZero() {
		c.itemSize = size
	} else if c.itemCount > 0 && len(c.pool.live) == 0 {
		if view := viewForItem(c.dataSource, 0, c.pool.dequeue()); view != nil {
			c.itemSize = view.Frame().Size()
			c.pool.enqueue(view)
		}
	}

	if c.itemSize.Width < minItemExtent {
		c.itemSize.Width = 1
	}
	if c.itemSize.Height < minItemExtent {
		c.itemSize.Height = 1
	}
}

func (c *Container) itemExtent() float64 {
	return c.orientation.MainExtent(c.itemSize)
}

func (c *Container) metrics() itemMetrics {
	return itemMetrics{
		count:     c.itemCount,
		wrap:      c.wrapEnabled,
		alignment: c.alignment,
		extent:    c.itemExtent(),
		viewport:  c.orientation.MainExtent(c.bounds),
		origin:    c.orientation.MainOrigin(c.scrollView.Frame()),
	}
}

// containerFrame returns the scroll view frame and content size for the
// current bounds, item size and options.
func (c *Container) containerFrame() (geometry.Rect, geometry.Size) {
	axis := c.orientation
	extent := c.itemExtent()
	viewport := axis.MainExtent(c.bounds)
	cross := axis.CrossExtent(c.bounds)
	span := extent * float64(c.itemsPerPage)

	var origin, content float64
	switch c.alignment {
	case AlignEdge:
		content = extent*float64(c.itemCount) - (viewport - span)
	default:
		origin = (viewport - span) / 2
		content = extent * float64(c.itemCount)
	}

	if c.wrapEnabled {
		itemsWide := 3 * c.itemCount
		if c.itemCount == 1 {
			itemsWide = 1
		}
		content = extent * float64(itemsWide)
	} else if c.pagingEnabled && !c.truncateFinalPage && span > 0 {
		content = math.Ceil(content/span) * span
	}
	content = math.Max(0, content)

	p := axis.Point(origin, 0)
	s := axis.Extent(span, cross)
	return geometry.RectFromLTWH(p.X, p.Y, s.Width, s.Height), axis.Extent(content, cross)
}

func (c *Container) updateDimensions() {
	frame, content := c.containerFrame()
	if !c.scrollView.Frame().Equal(frame) {
		c.scrollView.SetFrame(frame)
	}
	if !c.scrollView.ContentSize().Equal(content) {
		c.scrollView.SetContentSize(content)
	}
}

// correctScrollOffset keeps the native position inside the middle third
// of the wrapped content, clamps the offset and zeroes the cross axis.
func (c *Container) correctScrollOffset() {
	axis := c.orientation
	native := c.scrollView.ContentOffset()
	main := axis.Main(native)

	if c.wrapEnabled {
		itemsWide := 3.0
		if c.itemCount == 1 {
			itemsWide = 1
		}
		span := axis.MainExtent(c.scrollView.ContentSize()) / itemsWide
		if span > 0 {
			if main < span {
				c.nativeOffset += span
				main += span
			} else if main >= 2*span {
				c.nativeOffset -= span
				main -= span
			}
		}
	}
	c.scrollOffset = ClampOffset(c.scrollOffset, c.itemCount, c.wrapEnabled)

	if target := axis.Point(main, 0); !target.Equal(native) {
		c.writeContentOffset(target)
	}
}

// writeContentOffset moves the native scroll position without treating
// the resulting scroll report as user input.
func (c *Container) writeContentOffset(offset geometry.Offset) {
	if c.scrollView.ContentOffset().Equal(offset) {
		return
	}
	restore := c.transitions.Suspend()
	c.suppressEcho = true
	c.scrollView.SetContentOffset(offset)
	c.suppressEcho = false
	restore()
	c.nativeOffset = c.orientation.Main(c.scrollView.ContentOffset())
}

// visibleRange returns the sorted, de-duplicated indices that cover the
// viewport.
func (c *Container) visibleRange() []int {
	extent := c.itemExtent()
	if extent == 0 || c.itemCount == 0 {
		return nil
	}
	viewport := c.orientation.MainExtent(c.bounds)
	origin := c.orientation.MainOrigin(c.scrollView.Frame())

	start := ClampOffset(c.scrollOffset-origin/extent, c.itemCount, c.wrapEnabled)
	startIndex := int(math.Floor(start))
	count := int(math.Ceil(viewport/extent + (start - float64(startIndex))))
	if c.defersItemViewLoading {
		startIndex = c.currentItemIndex - int(math.Ceil(origin/extent)) - 1
		count = int(math.Ceil(viewport/extent)) + 3
	}
	count = min(count, c.itemCount)

	indices := make([]int, 0, max(count, 0))
	for i := range max(count, 0) {
		indices = append(indices, ClampIndex(startIndex+i, c.itemCount, c.wrapEnabled))
	}
	slices.Sort(indices)
	return slices.Compact(indices)
}

// positionItem centers view on its slot. Views are only positioned while
// the container is attached.
func (c *Container) positionItem(view View, index int) {
	if !c.attached {
		return
	}
	axis := c.orientation
	extent := c.itemExtent()
	main := (c.metrics().relativeOffset(index, c.scrollOffset)+0.5)*extent +
		axis.Main(c.scrollView.ContentOffset())
	cross := axis.CrossExtent(c.scrollView.Frame().Size()) / 2
	center := axis.Point(main, cross)

	if center.Equal(view.Center()) {
		view.SetBounds(c.itemSize)
		return
	}
	restore := c.transitions.Suspend()
	view.SetCenter(center)
	view.SetBounds(c.itemSize)
	restore()
}

func (c *Container) layoutItems() {
	for index, view := range c.pool.live {
		c.positionItem(view, index)
	}
}
