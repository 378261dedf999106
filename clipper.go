package pixgui

// ListClipper virtualizes a long list inside a scroll area by computing the
// range of rows that intersect the viewport. Rows outside it are replaced by
// empty space so the measured content size stays the same.
//
// Usage:
//
//	c := ctx.ListClipper(len(rows), rowHeight)
//	c.Begin(ctx)
//	for i := c.StartIdx; i < c.EndIdx; i++ {
//	    // Draw row i
//	}
//	c.End(ctx, rowWidth)
type ListClipper struct {
	StartIdx   int // First visible row (inclusive)
	EndIdx     int // Last visible row (exclusive)
	ItemHeight int // Row height including item spacing
	TotalItems int
}

// NewListClipper calculates the visible row range for a list whose top is
// scrollY pixels above the visible area.
func NewListClipper(totalItems, itemHeight, visibleHeight, scrollY int) *ListClipper {
	c := &ListClipper{ItemHeight: itemHeight, TotalItems: totalItems}
	if totalItems <= 0 || itemHeight <= 0 {
		return c
	}

	start := max(0, scrollY/itemHeight)
	// +2 for the partially visible rows at the top and bottom
	end := start + visibleHeight/itemHeight + 2

	c.StartIdx = min(start, totalItems)
	c.EndIdx = min(end, totalItems)
	return c
}

// ListClipper returns a clipper for totalItems rows of rowHeight pixels
// (item spacing included) starting at the cursor of the current scroll area.
func (ctx *Context) ListClipper(totalItems, rowHeight int) *ListClipper {
	view := ctx.ContentScroll()
	top := ctx.layout.cursor.Y
	return NewListClipper(totalItems, rowHeight, view.Viewport.Y, max(0, -top))
}

// Begin skips the space of the rows above the visible range.
func (c *ListClipper) Begin(ctx *Context) {
	ctx.Spacing(c.StartIdx * c.ItemHeight)
}

// End reserves the space of the rows below the visible range.
func (c *ListClipper) End(ctx *Context, width int) {
	rest := c.TotalItems - c.EndIdx
	if rest <= 0 {
		return
	}
	ctx.Dummy(width, max(0, rest*c.ItemHeight-ctx.theme.ItemSpacing.Y))
}

// ShouldRender returns true if the row at idx is in the visible range.
func (c *ListClipper) ShouldRender(idx int) bool {
	return idx >= c.StartIdx && idx < c.EndIdx
}

// VisibleCount returns the number of rows in the visible range.
func (c *ListClipper) VisibleCount() int {
	return c.EndIdx - c.StartIdx
}

// ContentHeight returns the height of all rows.
func (c *ListClipper) ContentHeight() int {
	return c.TotalItems * c.ItemHeight
}

// ScrollToItem returns the scroll offset that brings row idx into view, or
// currentScroll if it is already visible.
func (c *ListClipper) ScrollToItem(idx, currentScroll, visibleHeight int) int {
	if idx < 0 || idx >= c.TotalItems {
		return currentScroll
	}
	top := idx * c.ItemHeight
	bottom := top + c.ItemHeight
	switch {
	case top < currentScroll:
		return top
	case bottom > currentScroll+visibleHeight:
		return bottom - visibleHeight
	}
	return currentScroll
}
