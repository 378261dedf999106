package pixgui

// ClipMode selects how scroll areas hide content outside their viewport.
type ClipMode int

const (
	// ClipBorderFill paints the frame margins over the content after it is
	// drawn. It needs nothing beyond rectangle fills.
	ClipBorderFill ClipMode = iota
	// ClipScissor clips draw calls on the offscreen target. It falls back to
	// ClipBorderFill when the renderer does not implement Scissorer.
	ClipScissor
)

// String returns the mode name.
func (m ClipMode) String() string {
	switch m {
	case ClipBorderFill:
		return "border"
	case ClipScissor:
		return "scissor"
	}
	return "unknown"
}

// edgeMask hides scroll area content that falls in the frame margins.
// size is the target size and pad the margin thickness.
type edgeMask interface {
	begin(size, pad Point) error
	end(size, pad Point, bg uint32) error
}

// borderMask emulates clipping by filling the four margins with the
// background color once the content is drawn.
type borderMask struct {
	r Renderer
}

func (m borderMask) begin(size, pad Point) error { return nil }

func (m borderMask) end(size, pad Point, bg uint32) error {
	margins := [4]Rect{
		{X: 0, Y: 0, W: size.X, H: pad.Y},              // Top
		{X: 0, Y: 0, W: pad.X, H: size.Y},              // Left
		{X: size.X - pad.X, Y: 0, W: pad.X, H: size.Y}, // Right
		{X: 0, Y: size.Y - pad.Y, W: size.X, H: pad.Y}, // Bottom
	}
	for _, r := range margins {
		if r.Empty() {
			continue
		}
		if err := m.r.FillRect(r, bg); err != nil {
			return err
		}
	}
	return nil
}

// scissorMask clips content to the inner rectangle with the renderer's
// scissor support. The margins keep the cleared background color.
type scissorMask struct {
	s Scissorer
}

func (m scissorMask) begin(size, pad Point) error {
	return m.s.SetClip(Rect{X: pad.X, Y: pad.Y, W: size.X - 2*pad.X, H: size.Y - 2*pad.Y})
}

func (m scissorMask) end(size, pad Point, bg uint32) error {
	return m.s.ClearClip()
}

// edgeMask returns the mask for the configured clip mode.
func (ctx *Context) edgeMask() edgeMask {
	if ctx.clipMode == ClipScissor {
		if s, ok := ctx.renderer.(Scissorer); ok {
			return scissorMask{s: s}
		}
	}
	return borderMask{r: ctx.renderer}
}
