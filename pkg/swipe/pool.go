package swipe

import (
	"slices"
)

// itemPool owns the live index -> view map and the LIFO recycle pool.
type itemPool struct {
	live     map[int]View
	recycled []View
}

func newItemPool() itemPool {
	return itemPool{live: make(map[int]View, 4)}
}

func (p *itemPool) enqueue(v View) {
	p.recycled = append(p.recycled, v)
}

// dequeue pops the most recently recycled view, or returns nil.
func (p *itemPool) dequeue() View {
	n := len(p.recycled)
	if n == 0 {
		return nil
	}
	v := p.recycled[n-1]
	p.recycled[n-1] = nil
	p.recycled = p.recycled[:n-1]
	return v
}

// indices returns the live indices in ascending order.
func (p *itemPool) indices() []int {
	out := make([]int, 0, len(p.live))
	for i := range p.live {
		out = append(out, i)
	}
	slices.Sort(out)
	return out
}

func (p *itemPool) indexOf(v View) (int, bool) {
	for i, live := range p.live {
		if live == v {
			return i, true
		}
	}
	return 0, false
}

// loadView fetches the view for index from the data source, replacing any
// view already shown at that index, and inserts it into the scroll view.
func (c *Container) loadView(index int) View {
	if c.dataSource == nil {
		return nil
	}
	view := viewForItem(c.dataSource, index, c.pool.dequeue())
	if view == nil {
		return nil
	}
	if old, ok := c.pool.live[index]; ok && old != view {
		c.pool.enqueue(old)
		c.scrollView.RemoveSubview(old)
	}
	c.pool.live[index] = view
	c.positionItem(view, index)
	view.SetInteractive(true)
	c.scrollView.AddSubview(view)
	return view
}

func (c *Container) unloadView(index int) {
	view, ok := c.pool.live[index]
	if !ok {
		return
	}
	c.scrollView.RemoveSubview(view)
	c.pool.enqueue(view)
	delete(c.pool.live, index)
}

// reconcile unloads every live index missing from desired, then loads
// every desired index that has no view. desired must be sorted and free of
// duplicates.
func (c *Container) reconcile(desired []int) {
	for _, index := range c.pool.indices() {
		if _, found := slices.BinarySearch(desired, index); !found {
			c.unloadView(index)
		}
	}
	for _, index := range desired {
		if _, ok := c.pool.live[index]; !ok {
			c.loadView(index)
		}
	}
}

// reloadAll drops every view, live and recycled, and refreshes the item
// count and size.
func (c *Container) reloadAll() {
	for _, index := range c.pool.indices() {
		c.scrollView.RemoveSubview(c.pool.live[index])
	}
	c.pool = newItemPool()
	c.refreshItemSizeAndCount()
	c.needsLayout = true
	logger.Debug("swipe reload", "items", c.itemCount, "itemSize", c.itemSize)
}
