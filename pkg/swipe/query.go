package swipe

// VisibleIndices returns the indices of the loaded item views in ascending
// order.
func (c *Container) VisibleIndices() []int {
	return c.pool.indices()
}

// VisibleViews returns the loaded item views ordered by index.
func (c *Container) VisibleViews() []View {
	indices := c.pool.indices()
	views := make([]View, len(indices))
	for i, index := range indices {
		views[i] = c.pool.live[index]
	}
	return views
}

// ViewAt returns the loaded view for index, or nil.
func (c *Container) ViewAt(index int) View {
	return c.pool.live[index]
}

// CurrentItemView returns the loaded view for the current item, or nil.
func (c *Container) CurrentItemView() View {
	return c.ViewAt(c.currentItemIndex)
}

// IndexOfView returns the index v is loaded at.
func (c *Container) IndexOfView(v View) (int, bool) {
	if v == nil {
		return 0, false
	}
	return c.pool.indexOf(v)
}

// IndexOfViewOrDescendant returns the index of the loaded item that is v
// or contains it.
func (c *Container) IndexOfViewOrDescendant(v View) (int, bool) {
	if v == nil {
		return 0, false
	}
	if index, ok := c.pool.indexOf(v); ok {
		return index, true
	}
	for _, index := range c.pool.indices() {
		if c.hitTester.Contains(c.pool.live[index], v) {
			return index, true
		}
	}
	return 0, false
}
