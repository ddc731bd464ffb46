package swipe_test

import (
	"math"
	"slices"
	"testing"
	"time"

	swipeerrors "github.com/go-drift/swipe/pkg/errors"
	"github.com/go-drift/swipe/pkg/geometry"
	"github.com/go-drift/swipe/pkg/swipe"
	swipetest "github.com/go-drift/swipe/pkg/testing"
)

var itemSize = geometry.Size{Width: 100, Height: 50}

// recorder collects delegate events.
type recorder struct {
	offsets       []float64
	indexChanges  []int
	animationEnds int
	events        []string
	selected      []int
}

func (r *recorder) delegate() swipe.Delegate {
	return swipe.Delegate{
		OnScroll:              func(offset float64) { r.offsets = append(r.offsets, offset) },
		OnCurrentIndexChanged: func(index int) { r.indexChanges = append(r.indexChanges, index) },
		OnDragBegin:           func() { r.events = append(r.events, "dragBegin") },
		OnDragEnd: func(willDecelerate bool) {
			if willDecelerate {
				r.events = append(r.events, "dragEnd(decelerate)")
			} else {
				r.events = append(r.events, "dragEnd")
			}
		},
		OnDecelerateBegin: func() { r.events = append(r.events, "decelerateBegin") },
		OnDecelerateEnd:   func() { r.events = append(r.events, "decelerateEnd") },
		OnAnimationEnd:    func() { r.animationEnds++ },
		OnItemSelected:    func(index int) { r.selected = append(r.selected, index) },
	}
}

type harness struct {
	c     *swipe.Container
	sv    *swipetest.FakeScrollView
	ds    *swipetest.FakeDataSource
	clock *swipetest.FakeClock
	rec   *recorder
}

// newHarness builds an attached, laid out container showing count items
// of itemSize in a viewport of the given width.
func newHarness(t *testing.T, count int, width float64, configure func(c *swipe.Container)) *harness {
	t.Helper()
	h := &harness{
		sv:    swipetest.NewFakeScrollView(),
		ds:    swipetest.NewFakeDataSource(count, itemSize),
		clock: swipetest.UseFakeClock(t),
		rec:   &recorder{},
	}
	h.c = swipe.New(h.sv)
	h.sv.Observer = h.c
	if configure != nil {
		configure(h.c)
	}
	h.c.SetDelegate(h.rec.delegate())
	h.c.SetDataSource(h.ds)
	h.c.SetBounds(geometry.Size{Width: width, Height: itemSize.Height})
	h.c.Attach()
	h.c.LayoutIfNeeded()
	t.Cleanup(h.c.Detach)
	return h
}

func (h *harness) reset() {
	*h.rec = recorder{}
}

// checkPool verifies that the scroll view holds exactly the loaded views.
func (h *harness) checkPool(t *testing.T) {
	t.Helper()
	visible := h.c.VisibleViews()
	subviews := h.sv.Subviews()
	if len(visible) != len(subviews) {
		t.Fatalf("%d visible views but %d subviews", len(visible), len(subviews))
	}
	for i, index := range h.c.VisibleIndices() {
		v := visible[i]
		if !slices.Contains(subviews, v) {
			t.Errorf("view for index %d is not in the scroll view", index)
		}
		if got := v.(*swipetest.FakeView).Item; got != index {
			t.Errorf("view at index %d configured for item %d", index, got)
		}
	}
}

func TestNewAppliesDefaults(t *testing.T) {
	sv := swipetest.NewFakeScrollView()
	c := swipe.New(sv)

	if got := c.Options(); got != swipe.DefaultOptions() {
		t.Errorf("Options() = %+v, want defaults", got)
	}
	if !sv.PagingEnabled || !sv.Bounces || !sv.ScrollEnabled {
		t.Errorf("host options not forwarded: paging=%v bounces=%v scroll=%v", sv.PagingEnabled, sv.Bounces, sv.ScrollEnabled)
	}
	if sv.DecelerationRate != swipe.DefaultDecelerationRate {
		t.Errorf("deceleration rate = %v", sv.DecelerationRate)
	}
}

func TestInitialLayout(t *testing.T) {
	h := newHarness(t, 5, 100, nil)

	if got := h.c.ItemCount(); got != 5 {
		t.Errorf("ItemCount() = %d, want 5", got)
	}
	if got := h.c.ItemSize(); !got.Equal(itemSize) {
		t.Errorf("ItemSize() = %v, want %v", got, itemSize)
	}
	if got := h.sv.ContentSize(); got.Width != 500 {
		t.Errorf("content width = %v, want 500", got.Width)
	}
	if got := h.c.VisibleIndices(); !slices.Equal(got, []int{0}) {
		t.Errorf("VisibleIndices() = %v, want [0]", got)
	}
	v := h.c.CurrentItemView().(*swipetest.FakeView)
	if want := (geometry.Offset{X: 50, Y: 25}); !v.Center().Equal(want) {
		t.Errorf("item center = %v, want %v", v.Center(), want)
	}
	if !v.Interactive {
		t.Error("loaded view should be interactive")
	}
	// The view measured for the item size is recycled, not leaked.
	if h.ds.Created != 1 {
		t.Errorf("created %d views, want 1", h.ds.Created)
	}
	h.checkPool(t)
}

func TestPreferredItemSize(t *testing.T) {
	h := newHarness(t, 3, 300, func(c *swipe.Container) {
		c.SetDelegate(swipe.Delegate{PreferredItemSize: func() geometry.Size { return geometry.Size{Width: 150} }})
	})
	// SetDelegate in the harness replaced the sizing delegate.
	if got := h.c.ItemSize(); !got.Equal(itemSize) {
		t.Fatalf("ItemSize() = %v, want measured %v", got, itemSize)
	}

	h.c.SetDelegate(swipe.Delegate{PreferredItemSize: func() geometry.Size { return geometry.Size{Width: 150} }})
	h.c.LayoutIfNeeded()
	if got, want := h.c.ItemSize(), (geometry.Size{Width: 150, Height: 1}); !got.Equal(want) {
		t.Errorf("ItemSize() = %v, want %v", got, want)
	}
}

func TestScrollToItemClampsWithoutWrap(t *testing.T) {
	h := newHarness(t, 3, 100, nil)
	h.reset()

	h.c.ScrollToItem(5, 0)

	if got := h.c.CurrentItemIndex(); got != 2 {
		t.Errorf("CurrentItemIndex() = %d, want 2", got)
	}
	if got := h.c.ScrollOffset(); got != 2 {
		t.Errorf("ScrollOffset() = %v, want 2", got)
	}
	if !slices.Equal(h.rec.indexChanges, []int{2}) {
		t.Errorf("index changes = %v, want [2]", h.rec.indexChanges)
	}
	if got := h.sv.ContentOffset().X; got != 200 {
		t.Errorf("native offset = %v, want 200", got)
	}
	h.checkPool(t)
}

func TestProgrammaticWritesAreNotUserInput(t *testing.T) {
	h := newHarness(t, 6, 100, func(c *swipe.Container) { c.SetWrapEnabled(true) })
	h.reset()

	h.c.SetScrollOffset(2)

	if len(h.rec.offsets) != 1 {
		t.Errorf("got %d scroll notifications, want 1: %v", len(h.rec.offsets), h.rec.offsets)
	}
	if got := h.c.ScrollOffset(); got != 2 {
		t.Errorf("ScrollOffset() = %v, want 2", got)
	}
	// Wrapped content keeps the native position in the middle third.
	span := h.sv.ContentSize().Width / 3
	if x := h.sv.ContentOffset().X; x < span || x >= 2*span {
		t.Errorf("native offset %v outside [%v, %v)", x, span, 2*span)
	}
}

func TestIndexChangeDeduplicated(t *testing.T) {
	h := newHarness(t, 5, 100, nil)
	h.reset()

	h.sv.BeginDrag()
	for range 30 {
		h.sv.DragBy(geometry.Offset{X: 10})
	}
	for range 5 {
		h.sv.DragBy(geometry.Offset{X: 1})
		h.sv.DragBy(geometry.Offset{X: -1})
	}

	if !slices.Equal(h.rec.indexChanges, []int{1, 2, 3}) {
		t.Errorf("index changes = %v, want [1 2 3]", h.rec.indexChanges)
	}
	if got := h.c.ScrollOffset(); math.Abs(got-3) > 1e-9 {
		t.Errorf("ScrollOffset() = %v, want 3", got)
	}
}

func TestWrapTakesShortestPath(t *testing.T) {
	h := newHarness(t, 4, 100, func(c *swipe.Container) {
		c.SetWrapEnabled(true)
		c.SetPagingEnabled(false)
	})
	h.reset()

	h.c.ScrollToOffset(3.5, 300*time.Millisecond)
	swipetest.StepFrames(h.clock, 40, 10*time.Millisecond)

	if got := h.c.ScrollOffset(); math.Abs(got-3.5) > 1e-9 {
		t.Fatalf("ScrollOffset() = %v, want 3.5", got)
	}
	for _, off := range h.rec.offsets {
		if off != 0 && off < 3.5-1e-9 {
			t.Fatalf("offset %v left the short path between 0 and 3.5", off)
		}
	}
	if h.rec.animationEnds != 1 {
		t.Errorf("animation ends = %d, want 1", h.rec.animationEnds)
	}
}

func TestWrapContentSize(t *testing.T) {
	tests := []struct {
		count int
		want  float64
	}{
		{4, 1200},
		{1, 100},
	}
	for _, tt := range tests {
		h := newHarness(t, tt.count, 100, func(c *swipe.Container) { c.SetWrapEnabled(true) })
		if got := h.sv.ContentSize().Width; got != tt.want {
			t.Errorf("count %d: content width = %v, want %v", tt.count, got, tt.want)
		}
	}

	h := newHarness(t, 4, 100, func(c *swipe.Container) { c.SetWrapEnabled(true) })
	if x := h.sv.ContentOffset().X; x < 400 || x >= 800 {
		t.Errorf("native offset %v outside the middle copy [400, 800)", x)
	}
}

func TestEasedScroll(t *testing.T) {
	h := newHarness(t, 5, 100, func(c *swipe.Container) { c.SetPagingEnabled(false) })
	h.reset()

	h.c.ScrollToOffset(2, 300*time.Millisecond)
	if h.c.State() != swipe.StateProgrammaticAnimating {
		t.Fatalf("State() = %v, want animating", h.c.State())
	}

	var samples []float64
	for range 30 {
		swipetest.StepFrames(h.clock, 1, 10*time.Millisecond)
		samples = append(samples, h.c.ScrollOffset())
	}

	if samples[len(samples)-1] != 2 {
		t.Errorf("final offset = %v, want exactly 2", samples[len(samples)-1])
	}
	for i := 1; i < len(samples); i++ {
		if samples[i] < samples[i-1] {
			t.Fatalf("offset decreased at frame %d: %v -> %v", i, samples[i-1], samples[i])
		}
	}
	if samples[0] <= 0 || samples[0] >= 0.01 {
		t.Errorf("first frame offset = %v, want a slow eased start", samples[0])
	}
	if h.c.State() != swipe.StateIdle {
		t.Errorf("State() = %v after completion, want idle", h.c.State())
	}
	if h.rec.animationEnds != 1 {
		t.Errorf("animation ends = %d, want 1", h.rec.animationEnds)
	}

	n := len(h.rec.offsets)
	swipetest.StepFrames(h.clock, 5, 10*time.Millisecond)
	if len(h.rec.offsets) != n {
		t.Error("scroll notifications after the animation finished")
	}
}

func TestAutoscrollStartStop(t *testing.T) {
	h := newHarness(t, 5, 100, func(c *swipe.Container) { c.SetPagingEnabled(false) })

	h.c.SetAutoscrollRate(1)
	if h.c.State() != swipe.StateAutoscrolling {
		t.Fatalf("State() = %v, want autoscrolling", h.c.State())
	}
	swipetest.StepFrames(h.clock, 10, 10*time.Millisecond)
	moved := h.c.ScrollOffset()
	if math.Abs(moved-0.1) > 1e-6 {
		t.Errorf("ScrollOffset() = %v after 100ms at 1 item/s, want 0.1", moved)
	}

	h.c.SetAutoscrollRate(0)
	if h.c.State() != swipe.StateIdle {
		t.Errorf("State() = %v, want idle", h.c.State())
	}
	swipetest.StepFrames(h.clock, 10, 10*time.Millisecond)
	if got := h.c.ScrollOffset(); got != moved {
		t.Errorf("offset moved after autoscroll stopped: %v -> %v", moved, got)
	}
}

func TestAutoscrollPausesWhileDragging(t *testing.T) {
	h := newHarness(t, 5, 100, func(c *swipe.Container) { c.SetPagingEnabled(false) })
	h.c.SetAutoscrollRate(2)

	h.sv.BeginDrag()
	if h.c.State() != swipe.StateUserDragging {
		t.Fatalf("State() = %v, want dragging", h.c.State())
	}
	before := h.c.ScrollOffset()
	swipetest.StepFrames(h.clock, 10, 10*time.Millisecond)
	if got := h.c.ScrollOffset(); got != before {
		t.Errorf("offset moved during drag: %v -> %v", before, got)
	}

	h.sv.EndDrag(false)
	if h.c.State() != swipe.StateAutoscrolling {
		t.Fatalf("State() = %v after drag, want autoscrolling", h.c.State())
	}
	swipetest.StepFrames(h.clock, 5, 10*time.Millisecond)
	if got := h.c.ScrollOffset(); got <= before {
		t.Errorf("autoscroll did not resume: offset %v", got)
	}
}

func TestDragAndDecelerate(t *testing.T) {
	h := newHarness(t, 5, 100, nil)
	h.reset()

	h.sv.BeginDrag()
	h.sv.DragBy(geometry.Offset{X: 100.5})
	h.sv.EndDrag(true)
	if h.c.State() != swipe.StateDecelerating {
		t.Fatalf("State() = %v, want decelerating", h.c.State())
	}
	h.sv.EndDeceleration()

	if h.c.State() != swipe.StateIdle {
		t.Errorf("State() = %v, want idle", h.c.State())
	}
	if got := h.c.ScrollOffset(); got != 1 {
		t.Errorf("ScrollOffset() = %v, want snapped to 1", got)
	}
	want := []string{"dragBegin", "dragEnd(decelerate)", "decelerateBegin", "decelerateEnd"}
	if !slices.Equal(h.rec.events, want) {
		t.Errorf("events = %v, want %v", h.rec.events, want)
	}
}

func TestUserScrollCancelsAnimation(t *testing.T) {
	h := newHarness(t, 5, 100, func(c *swipe.Container) { c.SetPagingEnabled(false) })

	h.c.ScrollToItem(3, time.Second)
	swipetest.StepFrames(h.clock, 5, 10*time.Millisecond)
	h.sv.BeginDrag()
	if h.c.IsAnimating() {
		t.Fatal("drag should cancel the programmatic scroll")
	}
	offset := h.c.ScrollOffset()
	swipetest.StepFrames(h.clock, 20, 10*time.Millisecond)
	if got := h.c.ScrollOffset(); got != offset {
		t.Errorf("offset moved after cancel: %v -> %v", offset, got)
	}
	if h.rec.animationEnds != 0 {
		t.Errorf("animation ends = %d, want 0", h.rec.animationEnds)
	}
}

func TestPagingSnapOnLayout(t *testing.T) {
	h := newHarness(t, 5, 100, nil)
	h.sv.BeginDrag()
	h.sv.DragBy(geometry.Offset{X: 130})
	h.sv.EndDrag(false)
	h.reset()

	h.c.Layout()
	if !h.c.IsAnimating() {
		t.Fatal("layout should snap to the current item")
	}
	swipetest.StepFrames(h.clock, 30, 10*time.Millisecond)
	if got := h.c.ScrollOffset(); got != 1 {
		t.Errorf("ScrollOffset() = %v, want 1", got)
	}
	if h.rec.animationEnds != 1 {
		t.Errorf("animation ends = %d, want 1", h.rec.animationEnds)
	}
}

func TestRecyclingKeepsPoolConsistent(t *testing.T) {
	h := newHarness(t, 20, 250, func(c *swipe.Container) { c.SetWrapEnabled(true) })

	h.sv.BeginDrag()
	for range 60 {
		h.sv.DragBy(geometry.Offset{X: 37})
		h.checkPool(t)
		if n := len(h.c.VisibleIndices()); n > 4 {
			t.Fatalf("%d views loaded for a 2.5 item viewport", n)
		}
	}
	h.sv.EndDrag(false)

	// Scrolling through 22 items must reuse views rather than allocate.
	if h.ds.Created > 6 {
		t.Errorf("created %d views, want recycling to cap allocations", h.ds.Created)
	}
	if h.ds.Reused == 0 {
		t.Error("no recycled views were offered to the data source")
	}
}

func TestVisibleRangeCoversViewport(t *testing.T) {
	h := newHarness(t, 10, 250, nil)
	h.c.SetScrollOffset(4.5)

	// A 250 wide viewport centered on a 100 wide frame shows 0.75 items
	// either side of the current offset.
	want := []int{3, 4, 5, 6}
	if got := h.c.VisibleIndices(); !slices.Equal(got, want) {
		t.Errorf("VisibleIndices() = %v, want %v", got, want)
	}
	h.checkPool(t)
}

func TestDeferredLoading(t *testing.T) {
	h := newHarness(t, 10, 100, func(c *swipe.Container) {
		c.SetDefersItemViewLoading(true)
		c.SetPagingEnabled(false)
	})

	h.sv.BeginDrag()
	h.sv.DragBy(geometry.Offset{X: 60})
	if got := h.c.CurrentItemIndex(); got != 0 {
		t.Errorf("index updated before moving a whole item: %d", got)
	}
	h.sv.DragBy(geometry.Offset{X: 50})
	if got := h.c.CurrentItemIndex(); got != 1 {
		t.Errorf("CurrentItemIndex() = %d, want 1", got)
	}
	h.sv.DragBy(geometry.Offset{X: 40})
	h.sv.EndDrag(false)
	if got := h.c.CurrentItemIndex(); got != 2 {
		t.Errorf("CurrentItemIndex() = %d after drag end refresh, want 2", got)
	}
	// The widened range keeps neighbours loaded.
	if n := len(h.c.VisibleIndices()); n < 3 {
		t.Errorf("only %d views loaded with deferred loading", n)
	}
	h.checkPool(t)
}

func TestReloadDataClampsOffset(t *testing.T) {
	h := newHarness(t, 10, 100, nil)
	h.c.SetScrollOffset(8)

	h.ds.Count = 3
	h.c.ReloadData()
	h.c.LayoutIfNeeded()

	if got := h.c.ScrollOffset(); got != 2 {
		t.Errorf("ScrollOffset() = %v, want 2", got)
	}
	if got := h.c.VisibleIndices(); !slices.Equal(got, []int{2}) {
		t.Errorf("VisibleIndices() = %v, want [2]", got)
	}
	h.checkPool(t)
}

func TestReloadItem(t *testing.T) {
	h := newHarness(t, 5, 100, nil)
	requests := len(h.ds.Requests)

	h.c.ReloadItem(3)
	if len(h.ds.Requests) != requests {
		t.Error("ReloadItem reloaded an item that is not visible")
	}
	h.c.ReloadItem(0)
	if len(h.ds.Requests) != requests+1 {
		t.Error("ReloadItem did not reload the visible item")
	}
	h.checkPool(t)
}

func TestNilViewReported(t *testing.T) {
	var reported []*swipeerrors.SwipeError
	old := swipeerrors.DefaultHandler
	swipeerrors.SetHandler(&captureHandler{onError: func(err *swipeerrors.SwipeError) { reported = append(reported, err) }})
	defer swipeerrors.SetHandler(old)

	h := newHarness(t, 3, 300, func(c *swipe.Container) { c.SetAlignment(swipe.AlignEdge) })
	h.c.SetDataSource(nilAt{FakeDataSource: h.ds, index: 1})
	h.c.LayoutIfNeeded()

	if h.c.ViewAt(1) != nil {
		t.Error("expected index 1 to stay unloaded")
	}
	if h.c.ViewAt(0) == nil || h.c.ViewAt(2) == nil {
		t.Error("expected the other items to load")
	}
	if len(reported) == 0 || reported[0].Kind != swipeerrors.KindDataSource || reported[0].Index != 1 {
		t.Errorf("reported = %v, want a datasource error for index 1", reported)
	}
}

func TestDelegatePanicRecovered(t *testing.T) {
	var panics int
	old := swipeerrors.DefaultHandler
	swipeerrors.SetHandler(&captureHandler{onPanic: func(*swipeerrors.PanicError) { panics++ }})
	defer swipeerrors.SetHandler(old)

	h := newHarness(t, 5, 100, nil)
	h.c.SetDelegate(swipe.Delegate{OnScroll: func(float64) { panic("boom") }})

	h.c.SetScrollOffset(2)

	if panics != 1 {
		t.Errorf("recovered %d panics, want 1", panics)
	}
	if got := h.c.CurrentItemIndex(); got != 2 {
		t.Errorf("CurrentItemIndex() = %d, want 2", got)
	}
}

func TestScrollByItems(t *testing.T) {
	h := newHarness(t, 10, 100, func(c *swipe.Container) { c.SetPagingEnabled(false) })

	h.c.ScrollByItems(2, 0)
	if got := h.c.ScrollOffset(); got != 2 {
		t.Fatalf("ScrollOffset() = %v, want 2", got)
	}

	h.sv.BeginDrag()
	h.sv.DragBy(geometry.Offset{X: 40})
	h.sv.EndDrag(false)
	h.c.ScrollByItems(1, 100*time.Millisecond)
	swipetest.StepFrames(h.clock, 20, 10*time.Millisecond)
	if got := h.c.ScrollOffset(); got != 3 {
		t.Errorf("ScrollOffset() = %v, want 3", got)
	}

	h.c.ScrollByItems(-1, 100*time.Millisecond)
	swipetest.StepFrames(h.clock, 20, 10*time.Millisecond)
	if got := h.c.ScrollOffset(); got != 2 {
		t.Errorf("ScrollOffset() = %v, want 2", got)
	}
}

func TestPages(t *testing.T) {
	h := newHarness(t, 7, 300, func(c *swipe.Container) {
		c.SetItemsPerPage(3)
		c.SetTruncateFinalPage(true)
		c.SetAlignment(swipe.AlignEdge)
	})

	if got := h.c.PageCount(); got != 3 {
		t.Errorf("PageCount() = %d, want 3", got)
	}
	h.c.ScrollToPage(2, 0)
	if got := h.c.CurrentItemIndex(); got != 4 {
		t.Errorf("CurrentItemIndex() = %d, want 4 (truncated)", got)
	}
	if got := h.c.CurrentPage(); got != 2 {
		t.Errorf("CurrentPage() = %d, want 2", got)
	}
	h.c.SetCurrentPage(1)
	if got := h.c.CurrentItemIndex(); got != 3 {
		t.Errorf("CurrentItemIndex() = %d, want 3", got)
	}
}

func TestTapSelection(t *testing.T) {
	h := newHarness(t, 4, 300, func(c *swipe.Container) {
		c.SetAlignment(swipe.AlignEdge)
		c.SetHitTester(swipetest.FakeHitTester{})
	})
	h.c.SetDelegate(swipe.Delegate{
		ShouldSelectItem: func(index int) bool { return index != 2 },
		OnItemSelected:   func(index int) { h.rec.selected = append(h.rec.selected, index) },
	})

	item := h.c.ViewAt(1).(*swipetest.FakeView)
	label := &swipetest.FakeView{Parent: item}
	button := &swipetest.FakeView{Parent: item, HandlesTouches: true}

	if !h.c.ShouldReceiveTouch(label) {
		t.Error("tap inside item 1 should be received")
	}
	if h.c.ShouldReceiveTouch(button) {
		t.Error("tap on a view that handles touches should not be received")
	}
	if h.c.ShouldReceiveTouch(h.c.ViewAt(2)) {
		t.Error("delegate declined item 2")
	}
	if h.c.ShouldReceiveTouch(&swipetest.FakeView{}) {
		t.Error("tap outside any item should not be received")
	}
	if got, ok := h.c.IndexOfViewOrDescendant(label); !ok || got != 1 {
		t.Errorf("IndexOfViewOrDescendant() = %d, %v; want 1, true", got, ok)
	}

	if index, ok := h.c.DidTap(geometry.Offset{X: 150, Y: 10}); !ok || index != 1 {
		t.Errorf("DidTap() = %d, %v; want 1, true", index, ok)
	}
	if _, ok := h.c.DidTap(geometry.Offset{X: 450}); ok {
		t.Error("tap past the last item should select nothing")
	}
	if !slices.Equal(h.rec.selected, []int{1}) {
		t.Errorf("selected = %v, want [1]", h.rec.selected)
	}
}

func TestDetachStopsDriver(t *testing.T) {
	h := newHarness(t, 5, 100, func(c *swipe.Container) { c.SetPagingEnabled(false) })

	h.c.ScrollToItem(3, 200*time.Millisecond)
	swipetest.StepFrames(h.clock, 5, 10*time.Millisecond)
	h.c.Detach()
	offset := h.c.ScrollOffset()
	swipetest.StepFrames(h.clock, 30, 10*time.Millisecond)
	if got := h.c.ScrollOffset(); got != offset {
		t.Fatalf("offset moved while detached: %v -> %v", offset, got)
	}

	h.c.Attach()
	h.c.LayoutIfNeeded()
	swipetest.StepFrames(h.clock, 5, 10*time.Millisecond)
	if got := h.c.ScrollOffset(); got != 3 {
		t.Errorf("ScrollOffset() = %v after reattach, want 3", got)
	}
}

func TestSettersReportNeedsLayout(t *testing.T) {
	c := swipe.New(swipetest.NewFakeScrollView())
	c.LayoutIfNeeded()

	if !c.SetItemsPerPage(3) {
		t.Error("SetItemsPerPage should need layout")
	}
	if c.SetItemsPerPage(3) {
		t.Error("unchanged value should not need layout")
	}
	if c.SetScrollEnabled(false) {
		t.Error("SetScrollEnabled should not need layout")
	}
	if !c.SetOrientation(geometry.AxisVertical) || !c.NeedsLayout() {
		t.Error("SetOrientation should need layout")
	}
	c.SetItemsPerPage(0)
	if got := c.Options().ItemsPerPage; got != 1 {
		t.Errorf("ItemsPerPage = %d, want floor of 1", got)
	}
}

func TestVerticalOrientation(t *testing.T) {
	sv := swipetest.NewFakeScrollView()
	c := swipe.New(sv)
	sv.Observer = c
	swipetest.UseFakeClock(t)
	c.SetOrientation(geometry.AxisVertical)
	c.SetDataSource(swipetest.NewFakeDataSource(4, itemSize))
	c.SetBounds(geometry.Size{Width: 100, Height: 50})
	c.Attach()
	t.Cleanup(c.Detach)
	c.LayoutIfNeeded()

	c.SetScrollOffset(2)
	if got := sv.ContentOffset(); got.Y != 100 || got.X != 0 {
		t.Errorf("ContentOffset() = %v, want (0, 100)", got)
	}
	v := c.CurrentItemView()
	if got, want := v.Center(), (geometry.Offset{X: 50, Y: 125}); !got.Equal(want) {
		t.Errorf("item center = %v, want %v", got, want)
	}
}

// nilAt wraps a data source and returns no view for one index.
type nilAt struct {
	*swipetest.FakeDataSource
	index int
}

func (d nilAt) ViewForItem(index int, reusable swipe.View) swipe.View {
	if index == d.index {
		return nil
	}
	return d.FakeDataSource.ViewForItem(index, reusable)
}

type captureHandler struct {
	onError func(*swipeerrors.SwipeError)
	onPanic func(*swipeerrors.PanicError)
}

func (h *captureHandler) HandleError(err *swipeerrors.SwipeError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *captureHandler) HandlePanic(err *swipeerrors.PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

func TestApplyOptions(t *testing.T) {
	sv := swipetest.NewFakeScrollView()
	c := swipe.New(sv)
	c.LayoutIfNeeded()

	opts := swipe.DefaultOptions()
	opts.WrapEnabled = true
	opts.ItemsPerPage = 2
	opts.DecelerationRate = 0.5
	if !c.Apply(opts) {
		t.Error("Apply should report a needed layout")
	}
	if got := c.Options(); got != opts {
		t.Errorf("Options() = %+v, want %+v", got, opts)
	}
	if sv.Bounces {
		t.Error("bouncing should be off while wrapping")
	}
	if sv.DecelerationRate != 0.5 {
		t.Errorf("deceleration rate = %v, want 0.5", sv.DecelerationRate)
	}
	if c.Apply(opts) {
		t.Error("reapplying the same options should not need layout")
	}
}
