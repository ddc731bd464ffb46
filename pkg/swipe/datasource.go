package swipe

import (
	"fmt"

	"github.com/go-drift/swipe/pkg/errors"
	"github.com/go-drift/swipe/pkg/geometry"
)

// DataSource supplies item views to a [Container].
type DataSource interface {
	// ItemCount returns the number of items.
	ItemCount() int
	// ViewForItem returns the view for index. reusable is a previously
	// recycled view the data source may reconfigure and return, or nil.
	ViewForItem(index int, reusable View) View
}

// Delegate receives container events. Every field is optional; a nil field
// is skipped and the documented default applies.
type Delegate struct {
	// PreferredItemSize overrides the measured item size. A zero size
	// falls back to measuring the first item.
	PreferredItemSize func() geometry.Size

	OnScroll              func(offset float64)
	OnCurrentIndexChanged func(index int)
	OnDragBegin           func()
	OnDragEnd             func(willDecelerate bool)
	OnDecelerateBegin     func()
	OnDecelerateEnd       func()
	// OnAnimationEnd fires once when a programmatic scroll reaches its
	// target.
	OnAnimationEnd func()

	// ShouldSelectItem defaults to true.
	ShouldSelectItem func(index int) bool
	OnItemSelected   func(index int)
}

func (d *Delegate) preferredItemSize() (size geometry.Size) {
	if d.PreferredItemSize == nil {
		return geometry.Size{}
	}
	defer errors.Recover("swipe.delegate.PreferredItemSize")
	return d.PreferredItemSize()
}

func (d *Delegate) scrolled(offset float64) {
	if d.OnScroll == nil {
		return
	}
	defer errors.Recover("swipe.delegate.OnScroll")
	d.OnScroll(offset)
}

func (d *Delegate) indexChanged(index int) {
	if d.OnCurrentIndexChanged == nil {
		return
	}
	defer errors.Recover("swipe.delegate.OnCurrentIndexChanged")
	d.OnCurrentIndexChanged(index)
}

func (d *Delegate) dragBegan() {
	if d.OnDragBegin == nil {
		return
	}
	defer errors.Recover("swipe.delegate.OnDragBegin")
	d.OnDragBegin()
}

func (d *Delegate) dragEnded(willDecelerate bool) {
	if d.OnDragEnd == nil {
		return
	}
	defer errors.Recover("swipe.delegate.OnDragEnd")
	d.OnDragEnd(willDecelerate)
}

func (d *Delegate) decelerateBegan() {
	if d.OnDecelerateBegin == nil {
		return
	}
	defer errors.Recover("swipe.delegate.OnDecelerateBegin")
	d.OnDecelerateBegin()
}

func (d *Delegate) decelerateEnded() {
	if d.OnDecelerateEnd == nil {
		return
	}
	defer errors.Recover("swipe.delegate.OnDecelerateEnd")
	d.OnDecelerateEnd()
}

func (d *Delegate) animationEnded() {
	if d.OnAnimationEnd == nil {
		return
	}
	defer errors.Recover("swipe.delegate.OnAnimationEnd")
	d.OnAnimationEnd()
}

func (d *Delegate) shouldSelect(index int) (ok bool) {
	if d.ShouldSelectItem == nil {
		return true
	}
	// A panicking callback declines the selection.
	defer errors.RecoverWithCallback("swipe.delegate.ShouldSelectItem", func(any) { ok = false })
	return d.ShouldSelectItem(index)
}

func (d *Delegate) itemSelected(index int) {
	if d.OnItemSelected == nil {
		return
	}
	defer errors.Recover("swipe.delegate.OnItemSelected")
	d.OnItemSelected(index)
}

// viewForItem asks the data source for a view, reporting a nil view or a
// panic and returning nil in both cases.
func viewForItem(ds DataSource, index int, reusable View) (view View) {
	defer errors.RecoverWithCallback("swipe.DataSource.ViewForItem", func(any) { view = nil })
	view = ds.ViewForItem(index, reusable)
	if view == nil {
		errors.Report(&errors.SwipeError{
			Op:    "swipe.DataSource.ViewForItem",
			Kind:  errors.KindDataSource,
			Index: index,
			Err:   fmt.Errorf("data source returned no view"),
		})
	}
	return view
}

func itemCount(ds DataSource) (n int) {
	if ds == nil {
		return 0
	}
	defer errors.RecoverWithCallback("swipe.DataSource.ItemCount", func(any) { n = 0 })
	n = ds.ItemCount()
	if n < 0 {
		errors.Report(&errors.SwipeError{
			Op:    "swipe.DataSource.ItemCount",
			Kind:  errors.KindDataSource,
			Index: -1,
			Err:   fmt.Errorf("negative item count %d", n),
		})
		n = 0
	}
	return n
}
