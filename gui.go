package pixgui

import "fmt"

// GUI drives frames for one Context. Independent GUIs share no state.
type GUI struct {
	renderer Renderer
	theme    Theme
	clipMode ClipMode
	ctx      *Context
}

// New creates a new GUI instance.
func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer: renderer,
		theme:    DefaultTheme(),
		clipMode: ClipBorderFill,
	}

	for _, opt := range opts {
		opt(g)
	}

	g.ctx = newContext(renderer, g.theme, g.clipMode)
	return g
}

// Begin starts a new frame and returns the GUI context.
// input must hold this frame's fully collected events.
func (g *GUI) Begin(input *InputState, displaySize Point) *Context {
	g.ctx.theme = g.theme
	g.ctx.clipMode = g.clipMode
	g.ctx.beginFrame(input, displaySize)
	return g.ctx
}

// End finishes the frame: it settles interaction state, releases targets of
// scroll areas that were not drawn, and flushes a batching renderer.
func (g *GUI) End() error {
	g.ctx.endFrame()

	if f, ok := g.renderer.(Flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flush: %w", err)
		}
	}
	return nil
}

// Context returns the GUI context.
func (g *GUI) Context() *Context {
	return g.ctx
}

// Theme returns the current theme.
func (g *GUI) Theme() Theme {
	return g.theme
}

// SetTheme sets the theme used from the next frame on.
func (g *GUI) SetTheme(theme Theme) {
	g.theme = theme
}

// Close releases every offscreen target the GUI created.
func (g *GUI) Close() {
	g.ctx.targets.releaseAll()
}
