package pixgui

import "math"

// layoutState is the cursor of one draw target.
type layoutState struct {
	cursor     Point
	lineX      int  // X where new lines start
	lineBottom int  // Lowest edge of the current line
	lastItem   Rect // Last item placed
	sameLine   bool // Next item continues the last item's line
}

func newLayoutState(origin Point) layoutState {
	return layoutState{cursor: origin, lineX: origin.X, lineBottom: math.MinInt}
}

// SetCursorPos sets the position of the next widget and starts a new line there.
func (ctx *Context) SetCursorPos(x, y int) {
	ctx.layout.cursor = Point{X: x, Y: y}
	ctx.layout.lineX = x
	ctx.layout.lineBottom = math.MinInt
	ctx.layout.sameLine = false
}

// CursorPos returns the position of the next widget.
func (ctx *Context) CursorPos() Point {
	return ctx.layout.cursor
}

// SameLine places the next widget to the right of the previous one.
func (ctx *Context) SameLine() {
	last := ctx.layout.lastItem
	ctx.layout.cursor = Point{X: last.Right() + ctx.theme.ItemSpacing.X, Y: last.Y}
	ctx.layout.sameLine = true
}

// Spacing adds vertical space before the next widget.
func (ctx *Context) Spacing(pixels int) {
	ctx.layout.cursor.Y += pixels
}

// NextWidth overrides the width of the next button.
func (ctx *Context) NextWidth(width int) {
	ctx.nextWidth = width
}

// Dummy reserves space without drawing. Use it to stand in for rows a
// scroll area skips so the content size stays correct.
func (ctx *Context) Dummy(width, height int) {
	pos := ctx.itemPos()
	ctx.advanceCursor(Rect{X: pos.X, Y: pos.Y, W: width, H: height})
}

// LastItemSize returns the size of the last placed item.
func (ctx *Context) LastItemSize() Point {
	return ctx.lastSize
}

// itemPos returns the position for the next widget.
func (ctx *Context) itemPos() Point {
	return ctx.layout.cursor
}

// advanceCursor moves the cursor below r and records it as the last item.
func (ctx *Context) advanceCursor(r Rect) {
	l := &ctx.layout
	l.lastItem = r
	l.lineBottom = max(l.lineBottom, r.Bottom())
	l.cursor = Point{X: l.lineX, Y: l.lineBottom + ctx.theme.ItemSpacing.Y}
	l.sameLine = false
	ctx.lastSize = r.Size()

	f := &ctx.frames[len(ctx.frames)-1]
	f.maxX = max(f.maxX, r.Right())
	f.maxY = max(f.maxY, r.Bottom())
}
