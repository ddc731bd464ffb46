package testing

import (
	"github.com/go-drift/swipe/pkg/geometry"
	"github.com/go-drift/swipe/pkg/swipe"
)

// FakeDataSource serves FakeViews of a fixed size and records how views
// were requested.
type FakeDataSource struct {
	Count int
	Size  geometry.Size

	// Created counts views allocated because no reusable view was offered.
	Created int
	// Reused counts requests that were offered a recycled view.
	Reused int
	// Requests lists every requested index in order.
	Requests []int
}

// NewFakeDataSource returns a data source of count items of the given size.
func NewFakeDataSource(count int, size geometry.Size) *FakeDataSource {
	return &FakeDataSource{Count: count, Size: size}
}

// ItemCount implements swipe.DataSource.
func (d *FakeDataSource) ItemCount() int { return d.Count }

// ViewForItem implements swipe.DataSource.
func (d *FakeDataSource) ViewForItem(index int, reusable swipe.View) swipe.View {
	d.Requests = append(d.Requests, index)
	if v, ok := reusable.(*FakeView); ok {
		d.Reused++
		v.Item = index
		return v
	}
	d.Created++
	return NewFakeView(index, d.Size)
}

// FakePageSource serves one FakeView per page.
type FakePageSource struct {
	Count    int
	Requests []int
}

// ItemCount implements pager.DataSource.
func (d *FakePageSource) ItemCount() int { return d.Count }

// ViewForItem implements pager.DataSource.
func (d *FakePageSource) ViewForItem(index int) swipe.View {
	d.Requests = append(d.Requests, index)
	return NewFakeView(index, geometry.Size{})
}
