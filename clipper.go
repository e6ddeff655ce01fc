package scrollview

// ListClipper finds the fixed-extent items of a list that intersect the
// viewport along one axis, so a host only draws what can be seen:
//
//	c := NewListClipper(rows, rowHeight, engine.State(Vertical))
//	for i := c.Start; i < c.End; i++ {
//	    y := c.ItemOffset(i)
//	    // draw row i at y
//	}
type ListClipper struct {
	Start      int     // First visible item (inclusive)
	End        int     // Last visible item (exclusive)
	ItemExtent float32 // Size of each item along the axis
	Total      int     // Number of items in the list

	position float32
}

// NewListClipper computes the visible range of total items of itemExtent
// for the given axis state. Partially visible items at either edge are
// included.
func NewListClipper(total int, itemExtent float32, s AxisState) ListClipper {
	c := ListClipper{ItemExtent: itemExtent, Total: total, position: s.Position}
	if total <= 0 || itemExtent <= 0 {
		return c
	}

	start := int(s.Position / itemExtent)
	if start < 0 {
		start = 0
	}
	end := start + int(s.ContainerExtent/itemExtent) + 2

	c.Start = min(start, total)
	c.End = min(end, total)
	return c
}

// Contains reports whether item idx is in the visible range.
func (c ListClipper) Contains(idx int) bool {
	return idx >= c.Start && idx < c.End
}

// Len returns the number of visible items.
func (c ListClipper) Len() int {
	return c.End - c.Start
}

// ItemOffset returns where item idx starts relative to the viewport edge.
func (c ListClipper) ItemOffset(idx int) float32 {
	return float32(idx)*c.ItemExtent - c.position
}

// ContentExtent returns the size of the whole list, suitable for
// ScrollNode.SetContentSize.
func (c ListClipper) ContentExtent() float32 {
	return float32(c.Total) * c.ItemExtent
}

// Reveal returns the scroll position that brings item idx fully into a
// container of the given extent, moving as little as possible. Indices out
// of range leave the position unchanged.
func (c ListClipper) Reveal(idx int, containerExtent float32) float32 {
	if idx < 0 || idx >= c.Total {
		return c.position
	}
	top := float32(idx) * c.ItemExtent
	bottom := top + c.ItemExtent
	switch {
	case top < c.position:
		return top
	case bottom > c.position+containerExtent:
		return bottom - containerExtent
	}
	return c.position
}
