// Package pager implements a full-page container that snaps between pages
// using the host's native paging.
//
// Unlike [swipe.Container] it does not recycle views: every page gets its
// own slot and keeps its content once loaded. Programmatic page changes can
// slide the outgoing and incoming pages past each other.
package pager

import (
	"fmt"
	"math"
	"time"

	"github.com/go-drift/swipe/pkg/animation"
	"github.com/go-drift/swipe/pkg/errors"
	"github.com/go-drift/swipe/pkg/geometry"
	"github.com/go-drift/swipe/pkg/swipe"
)

// SlideDuration is the length of an animated page change.
const SlideDuration = 300 * time.Millisecond

// DataSource supplies page content.
type DataSource interface {
	ItemCount() int
	ViewForItem(index int) swipe.View
}

// Delegate receives page events. Nil fields are skipped.
type Delegate struct {
	// OnPageChanged fires once the container settles on a new page.
	OnPageChanged func(index int)
}

// Translatable is implemented by views that can be shifted visually
// without changing their layout position. Page views that do not
// implement it jump instead of sliding.
type Translatable interface {
	SetTranslation(t geometry.Offset)
}

// page is the slot for one item.
type page struct {
	frame   geometry.Rect
	content swipe.View
}

// Container is a paged, non-recycling container.
type Container struct {
	scrollView swipe.ScrollView
	dataSource DataSource
	delegate   Delegate

	pages         []page
	bounds        geometry.Size
	selectedIndex int
	notified      int
	suppressEcho  bool

	slide        *animation.AnimationController
	slideViews   [2]Translatable
	slideTweens  [2]*animation.Tween[float64]
	slideTarget  int
	unsubscribes []func()
}

// New creates a pager on top of scrollView and enables native paging.
func New(scrollView swipe.ScrollView) *Container {
	c := &Container{
		scrollView: scrollView,
		notified:   -1,
		slide:      animation.NewAnimationController(SlideDuration),
	}
	c.slide.Curve = animation.LinearCurve
	c.unsubscribes = append(c.unsubscribes,
		c.slide.AddListener(c.applySlide),
		c.slide.AddStatusListener(func(status animation.AnimationStatus) {
			if status == animation.AnimationCompleted {
				c.finishSlide()
				c.notify(c.slideTarget)
			}
		}),
	)
	scrollView.SetPagingEnabled(true)
	scrollView.SetBounces(false)
	return c
}

// SetDelegate replaces the delegate.
func (c *Container) SetDelegate(d Delegate) {
	c.delegate = d
}

// SetDataSource creates one slot per item, selects the first page and
// shows it.
func (c *Container) SetDataSource(ds DataSource) {
	c.cancelSlide()
	for _, p := range c.pages {
		if p.content != nil {
			c.scrollView.RemoveSubview(p.content)
		}
	}
	c.dataSource = ds
	c.pages = make([]page, c.itemCount())
	c.layoutPages()
	c.selectedIndex = 0
	c.notified = -1
	c.showPage(0, false)
}

// Layout sizes the scroll view to bounds and lays the pages out side by
// side.
func (c *Container) Layout(bounds geometry.Size) {
	c.bounds = bounds
	c.layoutPages()
	c.writeContentOffset(float64(c.selectedIndex) * bounds.Width)
}

func (c *Container) layoutPages() {
	w, h := c.bounds.Width, c.bounds.Height
	c.scrollView.SetFrame(geometry.RectFromLTWH(0, 0, w, h))
	c.scrollView.SetContentSize(geometry.Size{Width: float64(len(c.pages)) * w, Height: h})
	for i := range c.pages {
		c.pages[i].frame = geometry.RectFromLTWH(float64(i)*w, 0, w, h)
		if v := c.pages[i].content; v != nil {
			v.SetCenter(c.pages[i].frame.Center())
			v.SetBounds(c.bounds)
		}
	}
}

// SelectedIndex returns the selected page.
func (c *Container) SelectedIndex() int { return c.selectedIndex }

// PageCount returns the number of pages.
func (c *Container) PageCount() int { return len(c.pages) }

// PageView returns the content loaded for index, or nil.
func (c *Container) PageView(index int) swipe.View {
	if index < 0 || index >= len(c.pages) {
		return nil
	}
	return c.pages[index].content
}

// IsAnimating reports whether a page slide is running.
func (c *Container) IsAnimating() bool { return c.slide.IsAnimating() }

// SetSelectedIndex moves to page index, clamped to the page range. When
// animated the old and new pages slide past each other and OnPageChanged
// fires when the slide completes; otherwise it fires immediately.
func (c *Container) SetSelectedIndex(index int, animated bool) {
	if len(c.pages) == 0 {
		return
	}
	index = swipe.ClampIndex(index, len(c.pages), false)
	if index == c.selectedIndex {
		return
	}
	c.showPage(index, animated)
}

func (c *Container) showPage(index int, animated bool) {
	if index < 0 || index >= len(c.pages) {
		return
	}
	c.cancelSlide()
	old := c.selectedIndex
	c.loadPage(index)
	c.writeContentOffset(float64(index) * c.bounds.Width)
	c.selectedIndex = index

	if !animated || old == index || !c.startSlide(old, index) {
		c.notify(index)
	}
}

// startSlide animates the old and new page contents past each other. It
// returns false when neither page can be translated.
func (c *Container) startSlide(old, index int) bool {
	w := c.bounds.Width
	newView, _ := c.pages[index].content.(Translatable)
	oldView, _ := c.PageView(old).(Translatable)
	if newView == nil && oldView == nil {
		return false
	}

	shift, step := w, 1
	if index < old {
		shift, step = -w, -1
	}
	d := index - old
	c.slideViews = [2]Translatable{newView, oldView}
	c.slideTweens = [2]*animation.Tween[float64]{
		animation.TweenFloat64(shift, 0),
		animation.TweenFloat64(float64(d)*w, float64(d-step)*w),
	}
	c.slideTarget = index
	c.slide.Forward()
	c.applySlide()
	return true
}

func (c *Container) applySlide() {
	for i, v := range c.slideViews {
		if v != nil {
			v.SetTranslation(geometry.Offset{X: c.slideTweens[i].Transform(c.slide)})
		}
	}
}

// finishSlide clears translations once a slide ends or is cancelled.
func (c *Container) finishSlide() {
	for _, v := range c.slideViews {
		if v != nil {
			v.SetTranslation(geometry.Offset{})
		}
	}
	c.slideViews = [2]Translatable{}
}

func (c *Container) cancelSlide() {
	if c.slide.IsAnimating() {
		c.slide.Stop()
		c.finishSlide()
	}
}

// DidScroll must be called by the host when the native content offset
// changes.
func (c *Container) DidScroll() {
	if c.suppressEcho || c.bounds.Width <= 0 || len(c.pages) == 0 {
		return
	}
	c.cancelSlide()
	offset := c.scrollView.ContentOffset().X / c.bounds.Width
	index := swipe.ClampIndex(int(offset+0.5), len(c.pages), false)
	if index != c.selectedIndex {
		c.loadPage(index)
		c.selectedIndex = index
	}
	// Keep the page being revealed loaded while dragging.
	c.loadPage(swipe.ClampIndex(int(math.Floor(offset)), len(c.pages), false))
	c.loadPage(swipe.ClampIndex(int(math.Ceil(offset)), len(c.pages), false))

	if offset == math.Trunc(offset) {
		c.notify(index)
	}
}

// loadPage asks the data source for the content of index unless it is
// already loaded.
func (c *Container) loadPage(index int) {
	if c.dataSource == nil || index < 0 || index >= len(c.pages) || c.pages[index].content != nil {
		return
	}
	view := c.viewForItem(index)
	if view == nil {
		return
	}
	c.pages[index].content = view
	view.SetCenter(c.pages[index].frame.Center())
	view.SetBounds(c.bounds)
	view.SetInteractive(true)
	c.scrollView.AddSubview(view)
}

func (c *Container) viewForItem(index int) (view swipe.View) {
	defer errors.RecoverWithCallback("pager.DataSource.ViewForItem", func(any) { view = nil })
	view = c.dataSource.ViewForItem(index)
	if view == nil {
		errors.Report(&errors.SwipeError{
			Op:    "pager.DataSource.ViewForItem",
			Kind:  errors.KindDataSource,
			Index: index,
			Err:   fmt.Errorf("data source returned no view"),
		})
	}
	return view
}

func (c *Container) itemCount() int {
	if c.dataSource == nil {
		return 0
	}
	return max(0, c.dataSource.ItemCount())
}

func (c *Container) writeContentOffset(x float64) {
	target := geometry.Offset{X: x}
	if c.scrollView.ContentOffset().Equal(target) {
		return
	}
	c.suppressEcho = true
	c.scrollView.SetContentOffset(target)
	c.suppressEcho = false
}

// notify fires OnPageChanged once per distinct settled page.
func (c *Container) notify(index int) {
	if index == c.notified {
		return
	}
	c.notified = index
	if c.delegate.OnPageChanged == nil {
		return
	}
	defer errors.Recover("pager.delegate.OnPageChanged")
	c.delegate.OnPageChanged(index)
}

// Dispose stops any running slide and releases the slide controller.
func (c *Container) Dispose() {
	c.cancelSlide()
	for _, unsubscribe := range c.unsubscribes {
		unsubscribe()
	}
	c.unsubscribes = nil
	c.slide.Dispose()
}
