package pixgui

// TargetID identifies a render target owned by a Renderer.
type TargetID uint32

// ScreenTarget is the default target: the window surface.
const ScreenTarget TargetID = 0

// Renderer is the drawing capability the GUI consumes. Calls are immediate
// and apply to the target selected with SetTarget. Coordinates are pixels
// relative to the current target's top-left corner.
type Renderer interface {
	// CreateTarget allocates an offscreen target of the given size.
	CreateTarget(width, height int) (TargetID, error)
	// DeleteTarget releases an offscreen target.
	DeleteTarget(t TargetID) error
	// SetTarget redirects subsequent draw calls. ScreenTarget restores the window.
	SetTarget(t TargetID) error

	Clear(color uint32) error
	FillRect(r Rect, color uint32) error
	StrokeRect(r Rect, color uint32) error
	FillEllipse(bounds Rect, color uint32) error
	StrokeEllipse(bounds Rect, color uint32) error
	Line(a, b Point, color uint32, weight int) error

	// DrawText draws text with its top-left corner at pos and returns its size.
	DrawText(pos Point, text string, fill, stroke uint32) (w, h int, err error)
	// MeasureText returns the size DrawText would produce.
	MeasureText(text string) (w, h int, err error)

	// DrawTarget copies an offscreen target onto the current target at dst.
	DrawTarget(t TargetID, dst Rect) error
}

// Scissorer is implemented by renderers that can clip draw calls on
// offscreen targets. The clip belongs to the current target: switching
// targets neither clears nor applies it elsewhere. It is only used with
// ClipScissor.
type Scissorer interface {
	SetClip(r Rect) error
	ClearClip() error
}

// Flusher is implemented by renderers that batch draw calls.
// GUI.End calls Flush once per frame.
type Flusher interface {
	Flush() error
}
