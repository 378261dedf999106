package pixgui

// hoverItem records one hover query: the widget and the screen-space
// rectangle it was tested against, after clipping.
type hoverItem struct {
	id      ID
	rect    Rect
	enabled bool
}

// interaction is the single owner of hover, focus, active and click state.
// Hover and click are per frame; focus and active persist across frames.
type interaction struct {
	hovered ID // Last widget to claim hover this frame
	focused ID // Widget with keyboard focus
	active  ID // Widget holding the primary mouse button
	clicked ID // Widget whose click completed this frame

	activeSeen   bool // Active widget called HandleEvents this frame
	activatedNow bool // Active was taken by this frame's press

	// Hover queries in declaration order. The previous frame's list decides
	// occlusion: a widget declared later draws on top.
	items     []hoverItem
	prevItems []hoverItem
	prevIndex map[ID]int

	// Tab navigation
	focusNext     bool // Next widget to call TryFocus takes focus
	lastFocusable ID   // Previous widget that called HandleEvents
	tabHandled    bool
}

func newInteraction() interaction {
	return interaction{
		items:     make([]hoverItem, 0, 64),
		prevItems: make([]hoverItem, 0, 64),
		prevIndex: make(map[ID]int, 64),
	}
}

// begin swaps the hover query buffers and clears per-frame state.
func (ui *interaction) begin() {
	ui.prevItems, ui.items = ui.items, ui.prevItems[:0]
	clear(ui.prevIndex)
	for i, item := range ui.prevItems {
		ui.prevIndex[item.id] = i
	}

	ui.hovered = 0
	ui.clicked = 0
	ui.activeSeen = false
	ui.activatedNow = false
	ui.lastFocusable = 0
	ui.tabHandled = false
}

// end runs the frame-end bookkeeping. A press that hit nothing blurs.
func (ui *interaction) end(input *InputState) {
	ui.settlePress(input)
	if ui.active != 0 && (!ui.activeSeen || !input.MouseDown(MouseButtonLeft)) {
		guiLogger.Debug("active released at frame end", "id", ui.active, "seen", ui.activeSeen)
		ui.active = 0
	}
	if input.MouseClicked(MouseButtonLeft) && ui.hovered == 0 && ui.focused != 0 {
		guiLogger.Debug("focus cleared by click on empty space", "id", ui.focused)
		ui.focused = 0
	}
}

// settlePress gives a press made this frame to the last declared widget
// under the mouse. Occlusion during the frame is judged against the previous
// frame's layout, so when an overlap has just appeared or gone away the
// press may have gone to the wrong widget, or to none.
func (ui *interaction) settlePress(input *InputState) {
	if !input.MouseClicked(MouseButtonLeft) || ui.clicked != 0 {
		return
	}
	if ui.active != 0 && !ui.activatedNow {
		return
	}
	top := ui.topmost(input.MousePos())
	if top.id == ui.hovered && (ui.active == 0 || ui.active == top.id) {
		return
	}
	if top.id == 0 || !top.enabled {
		guiLogger.Debug("press dropped, covered by a disabled widget", "id", top.id)
		ui.hovered = 0
		ui.active = 0
		return
	}
	guiLogger.Debug("press settled on topmost widget", "id", top.id, "was", ui.active)
	ui.hovered = top.id
	ui.active = top.id
	ui.activeSeen = true
	ui.focused = top.id
}

// topmost returns the last hover query this frame whose rectangle holds p.
func (ui *interaction) topmost(p Point) hoverItem {
	for i := len(ui.items) - 1; i >= 0; i-- {
		if ui.items[i].rect.Contains(p) {
			return ui.items[i]
		}
	}
	return hoverItem{}
}

// occluded reports whether a widget declared after id in the previous frame
// covered p.
func (ui *interaction) occluded(id ID, p Point) bool {
	idx, ok := ui.prevIndex[id]
	if !ok {
		return false
	}
	for _, item := range ui.prevItems[idx+1:] {
		if item.id != id && item.rect.Contains(p) {
			return true
		}
	}
	return false
}

// record appends a hover query, collapsing repeated queries for one widget.
func (ui *interaction) record(id ID, rect Rect, enabled bool) {
	item := hoverItem{id: id, rect: rect, enabled: enabled}
	if n := len(ui.items); n > 0 && ui.items[n-1].id == id {
		ui.items[n-1] = item
		return
	}
	ui.items = append(ui.items, item)
}

// TryHover claims hover for id when the mouse is inside rect. rect is in
// the coordinates of the current draw target. Hover is refused while the
// GUI is disabled, while another widget is active (a drag in progress), and
// when a widget declared later covers the mouse. When several widgets claim
// hover in one frame the last one wins, and it also takes over a press that
// an earlier widget picked up this frame.
func (ctx *Context) TryHover(id ID, rect Rect) bool {
	ui := &ctx.ui
	screen := rect.Offset(ctx.origin).Intersect(ctx.clip)
	ui.record(id, screen, !ctx.disabled)

	if ctx.disabled || ctx.Input == nil {
		return false
	}
	if ui.active != 0 && ui.active != id && !ui.activatedNow {
		return false
	}
	mouse := ctx.Input.MousePos()
	if !screen.Contains(mouse) || ui.occluded(id, mouse) {
		if ui.hovered == id {
			ui.hovered = 0
		}
		return false
	}
	ui.hovered = id
	if ui.active != 0 && ui.active != id {
		guiLogger.Debug("press taken over", "from", ui.active, "to", id)
		ui.active = id
		ui.activeSeen = false
		ctx.setFocus(id)
	}
	return true
}

// TryFocus gives id keyboard focus when it is hovered on the frame the
// primary button goes down, or when Tab navigation arrives at it. Focus is
// kept until another widget takes it.
func (ctx *Context) TryFocus(id ID) bool {
	ui := &ctx.ui
	if ctx.disabled || ctx.Input == nil {
		return ui.focused == id
	}
	if ui.hovered == id && ctx.Input.MouseClicked(MouseButtonLeft) {
		ctx.setFocus(id)
	} else if ui.focusNext && ui.focused != id {
		ui.focusNext = false
		ctx.setFocus(id)
	}
	return ui.focused == id
}

// HandleEvents commits this frame's mouse and keyboard events for id. Call
// it once per widget, after TryHover and TryFocus.
//
// A press while hovered makes id active. A release while active clears the
// active widget and latches a click if the mouse is still over id.
func (ctx *Context) HandleEvents(id ID) {
	ui := &ctx.ui
	if ctx.disabled || ctx.Input == nil {
		return
	}
	in := ctx.Input

	if ui.hovered == id && in.MouseClicked(MouseButtonLeft) && ui.active == 0 {
		ui.active = id
		ui.activatedNow = true
		ctx.setFocus(id)
		guiLogger.Debug("widget activated", "id", id)
	}
	if ui.active == id {
		ui.activeSeen = true
		if in.MouseReleased(MouseButtonLeft) || !in.MouseDown(MouseButtonLeft) {
			if ui.hovered == id {
				ui.clicked = id
				guiLogger.Debug("widget clicked", "id", id)
			} else {
				guiLogger.Debug("press cancelled by release outside", "id", id)
			}
			ui.active = 0
		}
	}

	if ui.focused == id && !ui.tabHandled && in.KeyPressed(KeyTab) {
		ui.tabHandled = true
		if in.ModShift {
			if ui.lastFocusable != 0 {
				ctx.setFocus(ui.lastFocusable)
			}
		} else {
			ui.focused = 0
			ui.focusNext = true
		}
	}
	ui.lastFocusable = id
}

// IsHovered returns true if id holds hover this frame.
func (ctx *Context) IsHovered(id ID) bool {
	return ctx.ui.hovered == id
}

// IsFocused returns true if id has keyboard focus.
func (ctx *Context) IsFocused(id ID) bool {
	return ctx.ui.focused == id
}

// IsActive returns true if id is the widget holding the mouse button.
func (ctx *Context) IsActive(id ID) bool {
	return ctx.ui.active == id
}

// WasClicked returns true on the frame a press that started on id was
// released while still over it.
func (ctx *Context) WasClicked(id ID) bool {
	return !ctx.disabled && ctx.ui.clicked == id
}

// ActiveID returns the active widget, or 0.
func (ctx *Context) ActiveID() ID {
	return ctx.ui.active
}

// FocusedID returns the focused widget, or 0.
func (ctx *Context) FocusedID() ID {
	return ctx.ui.focused
}

// SetFocus moves keyboard focus to id. Zero clears focus.
func (ctx *Context) SetFocus(id ID) {
	ctx.ui.focusNext = false
	ctx.setFocus(id)
}

func (ctx *Context) setFocus(id ID) {
	if ctx.ui.focused != id && guiVerbose() {
		guiLogger.Debug("focus moved", "from", ctx.ui.focused, "to", id)
	}
	ctx.ui.focused = id
}

// WidgetState is a read-only view of a widget's interaction record.
type WidgetState struct {
	Hovered bool
	Focused bool
	Active  bool
	Scroll  Point // Scroll offset, for scroll areas
}

// State returns the interaction record for id.
func (ctx *Context) State(id ID) WidgetState {
	st := WidgetState{
		Hovered: ctx.ui.hovered == id,
		Focused: ctx.ui.focused == id,
		Active:  ctx.ui.active == id,
	}
	if rec, ok := ctx.scrolls.Lookup(id); ok {
		st.Scroll = rec.Offset
	}
	return st
}
