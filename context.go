package pixgui

import "math"

// Context holds all GUI state and is passed to every widget call.
// It is created by a GUI and valid between GUI.Begin and GUI.End.
// This is NOT context.Context.
type Context struct {
	// Input (read-only during frame)
	Input *InputState

	renderer Renderer
	theme    Theme
	clipMode ClipMode

	// Interaction state (persisted between frames)
	ui interaction

	// Per-widget sticky state, dropped when a widget is not drawn for a frame
	scrolls *FrameStore[scrollRecord]
	targets *targetCache

	// Disabled widgets keep their layout but ignore input
	disabled bool

	// Coordinate space of the current draw target: the screen position of
	// its top-left corner and the screen-space region where hover is allowed.
	target TargetID
	origin Point
	clip   Rect

	// Layout
	layout    layoutState
	frames    []contentFrame
	lastSize  Point
	nextWidth int

	// Screen
	DisplaySize Point

	// Frame info
	FrameCount uint64
}

// contentFrame tracks one level of scroll area content: how far the layout
// reached, in the coordinates of that area's target.
type contentFrame struct {
	id       ID
	offset   Point
	viewport Point
	maxX     int
	maxY     int
}

// noClip is the hover region when nothing restricts it.
var noClip = Rect{X: math.MinInt32 / 2, Y: math.MinInt32 / 2, W: math.MaxInt32, H: math.MaxInt32}

func newContext(r Renderer, theme Theme, mode ClipMode) *Context {
	ctx := &Context{
		renderer: r,
		theme:    theme,
		clipMode: mode,
		ui:       newInteraction(),
		scrolls:  NewFrameStore[scrollRecord](nil),
		targets:  newTargetCache(r),
		clip:     noClip,
		frames:   make([]contentFrame, 0, 4),
	}
	return ctx
}

// beginFrame resets per-frame state.
func (ctx *Context) beginFrame(input *InputState, displaySize Point) {
	ctx.FrameCount++
	ctx.Input = input
	ctx.DisplaySize = displaySize

	ctx.ui.begin()
	ctx.disabled = false
	ctx.target = ScreenTarget
	ctx.origin = Point{}
	ctx.clip = noClip
	if displaySize.X > 0 && displaySize.Y > 0 {
		ctx.clip = Rect{W: displaySize.X, H: displaySize.Y}
	}

	ctx.layout = newLayoutState(Point{})
	ctx.frames = ctx.frames[:0]
	ctx.frames = append(ctx.frames, contentFrame{viewport: displaySize, maxX: math.MinInt, maxY: math.MinInt})
	ctx.nextWidth = 0
}

// endFrame commits end-of-frame interaction rules and drops stale state.
func (ctx *Context) endFrame() {
	if ctx.Input != nil {
		ctx.ui.end(ctx.Input)
	}
	ctx.scrolls.NextFrame()
	ctx.targets.nextFrame()
}

// Theme returns the current theme.
func (ctx *Context) Theme() Theme {
	return ctx.theme
}

// Renderer returns the renderer widgets draw with.
func (ctx *Context) Renderer() Renderer {
	return ctx.renderer
}

// SetDisabled sets the global disabled flag for the widgets that follow.
// Disabled widgets are drawn dimmed and ignore input but take the same space.
// The flag resets at the start of every frame.
func (ctx *Context) SetDisabled(disabled bool) {
	ctx.disabled = disabled
}

// Disabled returns the global disabled flag.
func (ctx *Context) Disabled() bool {
	return ctx.disabled
}

// MousePos returns the mouse position relative to the current draw target.
func (ctx *Context) MousePos() Point {
	if ctx.Input == nil {
		return Point{}
	}
	return ctx.Input.MousePos().Sub(ctx.origin)
}

// ScrollView describes the scroll area whose content is being drawn.
type ScrollView struct {
	ID       ID
	Offset   Point // Current scroll offset
	Viewport Point // Viewport size
}

// ContentScroll returns the innermost scroll area being drawn. Outside a
// scroll area it returns a zero offset and the display size.
func (ctx *Context) ContentScroll() ScrollView {
	f := ctx.frames[len(ctx.frames)-1]
	return ScrollView{ID: f.id, Offset: f.offset, Viewport: f.viewport}
}
