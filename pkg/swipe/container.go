// Package swipe implements a virtualized, wrap-aware swipe carousel.
//
// A [Container] keeps a continuous scroll offset measured in items, derives
// the current item index from it, and keeps only the item views that cover
// the viewport alive, recycling the rest through a pool. It sits on top of
// a host [ScrollView] that provides native dragging and momentum, and adds
// its own eased scroll animations and autoscroll driven by
// [animation.StepTickers].
//
// All methods must be called from the host's UI goroutine.
//
// Basic usage:
//
//	c := swipe.New(scrollView)
//	c.SetWrapEnabled(true)
//	c.SetDataSource(items)
//	c.SetBounds(geometry.Size{Width: 320, Height: 120})
//	c.Attach()
//	c.LayoutIfNeeded()
//	c.ScrollToItem(3, 300*time.Millisecond)
package swipe

import (
	"math"
	"time"

	"github.com/go-drift/swipe/pkg/animation"
	"github.com/go-drift/swipe/pkg/geometry"
)

// Container is the swipe engine. Create one with [New].
type Container struct {
	scrollView  ScrollView
	dataSource  DataSource
	delegate    Delegate
	hitTester   HitTester
	transitions TransitionScope

	orientation           geometry.Axis
	alignment             Alignment
	itemsPerPage          int
	truncateFinalPage     bool
	wrapEnabled           bool
	pagingEnabled         bool
	scrollEnabled         bool
	bounces               bool
	decelerationRate      float64
	autoscrollRate        float64
	defersItemViewLoading bool

	bounds      geometry.Size
	attached    bool
	needsLayout bool
	// needsResync is set when the native position must be rewritten from
	// the offset on the next layout pass.
	needsResync bool

	itemSize  geometry.Size
	itemCount int
	pool      itemPool

	scrollOffset      float64
	lastUpdateOffset  float64
	currentItemIndex  int
	previousItemIndex int
	// nativeOffset is the last native position seen on the scroll axis.
	nativeOffset float64
	suppressEcho bool

	state    ScrollState
	anim     scrollAnimation
	ticker   *animation.Ticker
	lastTick time.Time
}

// New creates a container on top of scrollView with [DefaultOptions]
// applied. The container is detached until [Container.Attach] is called.
func New(scrollView ScrollView) *Container {
	c := &Container{
		scrollView:   scrollView,
		hitTester:    identityHitTester{},
		transitions:  noTransitions{},
		pool:         newItemPool(),
		itemsPerPage: 1,
		needsLayout:  true,
	}
	c.Apply(DefaultOptions())
	c.nativeOffset = c.orientation.Main(scrollView.ContentOffset())
	return c
}

// SetDataSource replaces the data source and reloads every item.
func (c *Container) SetDataSource(ds DataSource) {
	c.dataSource = ds
	c.ReloadData()
}

// SetDelegate replaces the delegate and marks the layout dirty.
func (c *Container) SetDelegate(d Delegate) {
	c.delegate = d
	c.needsLayout = true
}

// SetHitTester replaces the collaborator used for tap ownership queries.
// Nil restores the default, which treats each item view as a leaf.
func (c *Container) SetHitTester(h HitTester) {
	if h == nil {
		h = identityHitTester{}
	}
	c.hitTester = h
}

// SetTransitionScope replaces the collaborator that suspends implicit host
// animations while views are moved. Nil disables suspension.
func (c *Container) SetTransitionScope(t TransitionScope) {
	if t == nil {
		t = noTransitions{}
	}
	c.transitions = t
}

// The setters below store an option and report whether the change needs a
// layout pass. The container also marks itself dirty, so hosts can either
// act on the result or call LayoutIfNeeded once per frame.

func (c *Container) markDirty(changed bool) bool {
	if changed {
		c.needsLayout = true
	}
	return changed
}

// SetOrientation sets the scroll axis.
func (c *Container) SetOrientation(axis geometry.Axis) bool {
	if c.orientation == axis {
		return false
	}
	c.orientation = axis
	c.needsResync = true
	return c.markDirty(true)
}

// SetAlignment sets where the scroll frame sits in the container.
func (c *Container) SetAlignment(a Alignment) bool {
	if c.alignment == a {
		return false
	}
	c.alignment = a
	return c.markDirty(true)
}

// SetItemsPerPage sets how many items one page shows. Values below 1 are
// treated as 1.
func (c *Container) SetItemsPerPage(n int) bool {
	n = max(1, n)
	if c.itemsPerPage == n {
		return false
	}
	c.itemsPerPage = n
	return c.markDirty(true)
}

// SetTruncateFinalPage stops the last page from starting past
// itemCount-itemsPerPage.
func (c *Container) SetTruncateFinalPage(truncate bool) bool {
	if c.truncateFinalPage == truncate {
		return false
	}
	c.truncateFinalPage = truncate
	return c.markDirty(true)
}

// SetWrapEnabled turns modular offset arithmetic on or off. Host bouncing
// is disabled while wrapping.
func (c *Container) SetWrapEnabled(wrap bool) bool {
	if c.wrapEnabled == wrap {
		return false
	}
	c.wrapEnabled = wrap
	c.scrollOffset = ClampOffset(c.scrollOffset, c.itemCount, wrap)
	c.needsResync = true
	c.scrollView.SetBounces(c.bounces && !wrap)
	return c.markDirty(true)
}

// SetPagingEnabled turns native snap-to-page on or off.
func (c *Container) SetPagingEnabled(paging bool) bool {
	if c.pagingEnabled == paging {
		return false
	}
	c.pagingEnabled = paging
	c.scrollView.SetPagingEnabled(paging)
	return c.markDirty(true)
}

// SetScrollEnabled turns user scrolling on or off.
func (c *Container) SetScrollEnabled(enabled bool) bool {
	if c.scrollEnabled == enabled {
		return false
	}
	c.scrollEnabled = enabled
	c.scrollView.SetScrollEnabled(enabled)
	return false
}

// SetBounces turns native edge bouncing on or off.
func (c *Container) SetBounces(bounces bool) bool {
	if c.bounces == bounces {
		return false
	}
	c.bounces = bounces
	c.scrollView.SetBounces(bounces && !c.wrapEnabled)
	return false
}

// SetDecelerationRate passes rate to the host's momentum scrolling.
func (c *Container) SetDecelerationRate(rate float64) bool {
	if c.decelerationRate == rate {
		return false
	}
	c.decelerationRate = rate
	c.scrollView.SetDecelerationRate(rate)
	return false
}

// SetAutoscrollRate sets a continuous drift in items per second. A nonzero
// rate starts autoscrolling when the container is idle; zero stops it.
func (c *Container) SetAutoscrollRate(rate float64) bool {
	if c.autoscrollRate == rate {
		return false
	}
	c.autoscrollRate = rate
	switch {
	case rate != 0 && c.state == StateIdle && !c.scrollView.IsDragging():
		c.setState(StateAutoscrolling)
	case rate == 0 && c.state == StateAutoscrolling:
		c.setState(StateIdle)
		c.stopDriver()
	}
	return false
}

// SetDefersItemViewLoading widens the visible range and only refreshes it
// once the offset has moved a whole item.
func (c *Container) SetDefersItemViewLoading(defers bool) bool {
	if c.defersItemViewLoading == defers {
		return false
	}
	c.defersItemViewLoading = defers
	return c.markDirty(true)
}

// SetBounds sets the container's own size.
func (c *Container) SetBounds(size geometry.Size) bool {
	if c.bounds.Equal(size) {
		return false
	}
	c.bounds = size
	return c.markDirty(true)
}

// Bounds returns the container's own size.
func (c *Container) Bounds() geometry.Size { return c.bounds }

// Attach tells the container it is part of a live view tree. Layout is
// marked dirty and a pending animation or autoscroll resumes.
func (c *Container) Attach() {
	if c.attached {
		return
	}
	c.attached = true
	c.needsLayout = true
	if c.state == StateProgrammaticAnimating || c.state == StateAutoscrolling {
		c.startDriver()
	}
}

// Detach stops the frame tick. No tick fires after Detach returns.
func (c *Container) Detach() {
	c.stopDriver()
	c.attached = false
}

// IsAttached reports whether the container is in a live view tree.
func (c *Container) IsAttached() bool { return c.attached }

// NeedsLayout reports whether a layout pass is pending.
func (c *Container) NeedsLayout() bool { return c.needsLayout }

// LayoutIfNeeded runs a layout pass when one is pending.
func (c *Container) LayoutIfNeeded() {
	if c.needsLayout {
		c.Layout()
	}
}

// Layout refreshes the item size and count, resizes the scroll view,
// reconciles and positions the visible items. When paging and idle it
// snaps to the current item with a short eased scroll.
func (c *Container) Layout() {
	c.needsLayout = false
	size := c.itemSize
	c.refreshItemSizeAndCount()
	c.updateDimensions()
	if c.needsResync || !size.Equal(c.itemSize) {
		c.needsResync = false
		c.writeContentOffset(c.orientation.Point(c.scrollOffset*c.itemExtent(), 0))
		c.nativeOffset = c.orientation.Main(c.scrollView.ContentOffset())
	}
	c.correctScrollOffset()
	c.reconcile(c.visibleRange())
	c.layoutItems()

	if c.pagingEnabled && c.state == StateIdle &&
		math.Abs(float64(c.currentItemIndex)-c.scrollOffset) > minItemExtent {
		c.ScrollToItem(c.currentItemIndex, pagingSnapDuration)
	}
}

const pagingSnapDuration = 250 * time.Millisecond

// ReloadData drops every item view and the recycle pool, and re-reads the
// item count and size. Views are reloaded on the next layout pass.
func (c *Container) ReloadData() {
	c.reloadAll()
	if clamped := ClampOffset(c.scrollOffset, c.itemCount, c.wrapEnabled); c.itemCount > 0 && clamped != c.scrollOffset {
		c.SetScrollOffset(clamped)
	}
}

// ReloadItem reloads the view at index if it is currently visible.
func (c *Container) ReloadItem(index int) {
	if _, ok := c.pool.live[index]; ok {
		c.loadView(index)
	}
}

// ItemCount returns the cached item count.
func (c *Container) ItemCount() int { return c.itemCount }

// ItemSize returns the item size in use.
func (c *Container) ItemSize() geometry.Size { return c.itemSize }

// ScrollOffset returns the scroll position in items.
func (c *Container) ScrollOffset() float64 { return c.scrollOffset }

// SetScrollOffset jumps to offset, cancelling any programmatic animation.
func (c *Container) SetScrollOffset(offset float64) {
	if c.state == StateProgrammaticAnimating {
		c.settle()
	}
	c.applyOffset(offset)
}

// applyOffset moves to offset (clamped) and runs a forced scroll update.
// Changes of at most 0.0001 items are ignored.
func (c *Container) applyOffset(offset float64) {
	if math.Abs(c.scrollOffset-offset) <= minItemExtent {
		return
	}
	c.refreshItemSizeAndCount()
	offset = ClampOffset(offset, c.itemCount, c.wrapEnabled)
	if math.Abs(c.scrollOffset-offset) <= minItemExtent {
		return
	}
	c.scrollOffset = offset
	c.forceRefresh()
	c.updateDimensions()
	c.writeContentOffset(c.orientation.Point(offset*c.itemExtent(), 0))
	c.update()
}

// CurrentItemIndex returns the index of the item at the current offset.
func (c *Container) CurrentItemIndex() int { return c.currentItemIndex }

// SetCurrentItemIndex jumps to item index.
func (c *Container) SetCurrentItemIndex(index int) {
	c.SetScrollOffset(float64(index))
}

// PageCount returns ceil(itemCount/itemsPerPage).
func (c *Container) PageCount() int {
	return (c.itemCount + c.itemsPerPage - 1) / c.itemsPerPage
}

// CurrentPage returns the page containing the current item. With a
// truncated final page, any item past the last full page reports the
// final page.
func (c *Container) CurrentPage() int {
	ipp := c.itemsPerPage
	if ipp > 1 && c.truncateFinalPage && !c.wrapEnabled &&
		c.currentItemIndex > (c.itemCount/ipp-1)*ipp {
		return c.PageCount() - 1
	}
	return int(math.Round(float64(c.currentItemIndex) / float64(ipp)))
}

// SetCurrentPage jumps to page.
func (c *Container) SetCurrentPage(page int) {
	if page*c.itemsPerPage != c.currentItemIndex {
		c.ScrollToPage(page, 0)
	}
}

// State returns the scrolling mode.
func (c *Container) State() ScrollState { return c.state }

// IsDragging reports whether the host has a user drag in progress.
func (c *Container) IsDragging() bool { return c.scrollView.IsDragging() }

// IsDecelerating reports whether host momentum scrolling is running.
func (c *Container) IsDecelerating() bool { return c.scrollView.IsDecelerating() }

// IsAnimating reports whether a programmatic scroll is in progress.
func (c *Container) IsAnimating() bool { return c.state == StateProgrammaticAnimating }

// AutoscrollRate returns the autoscroll drift in items per second.
func (c *Container) AutoscrollRate() float64 { return c.autoscrollRate }
