package pixgui

import "fmt"

// widgetKind is the closed set of built-in interactive widgets.
type widgetKind uint8

const (
	kindButton widgetKind = iota
	kindCheckbox
	kindRadio
)

// String returns the widget kind name.
func (k widgetKind) String() string {
	switch k {
	case kindButton:
		return "button"
	case kindCheckbox:
		return "checkbox"
	case kindRadio:
		return "radio"
	}
	return fmt.Sprintf("widgetKind(%d)", uint8(k))
}

// widget is one built-in widget for the duration of a call.
type widget struct {
	kind     widgetKind
	id       ID
	label    string // Display label
	rect     Rect   // Hit area, in target coordinates
	selected bool   // Checkbox checked or radio selected
	text     Point  // Measured label size, buttons only
}

// widgetStatus is the arbitration result for a widget this frame.
type widgetStatus struct {
	hovered  bool
	focused  bool
	active   bool
	disabled bool
}

// interact runs the hover and focus tests for w.
func (ctx *Context) interact(w *widget) widgetStatus {
	return widgetStatus{
		hovered:  ctx.TryHover(w.id, w.rect),
		focused:  ctx.TryFocus(w.id),
		active:   ctx.IsActive(w.id),
		disabled: ctx.disabled,
	}
}

// commit handles this frame's events for w and reports a click.
func (ctx *Context) commit(w *widget) bool {
	ctx.HandleEvents(w.id)
	return ctx.WasClicked(w.id)
}

// drawWidget renders w in its current state.
func (ctx *Context) drawWidget(w *widget, st widgetStatus) error {
	var err error
	switch w.kind {
	case kindButton:
		err = ctx.drawButton(w, st)
	case kindCheckbox:
		err = ctx.drawCheckbox(w, st)
	case kindRadio:
		err = ctx.drawRadio(w, st)
	default:
		err = fmt.Errorf("unknown widget kind %v", w.kind)
	}
	if err != nil {
		return fmt.Errorf("%s %q: %w", w.kind, w.label, err)
	}
	return nil
}

// outline returns the stroke color for a widget frame.
func (ctx *Context) outline(st widgetStatus, activeHighlights bool) uint32 {
	if st.focused || (activeHighlights && st.active) {
		return ctx.theme.Highlight
	}
	return ctx.theme.Muted
}

// textColor returns the label color for the current disabled state.
func (ctx *Context) textColor() uint32 {
	if ctx.disabled {
		return dim(ctx.theme.Text)
	}
	return ctx.theme.Text
}

func (ctx *Context) drawButton(w *widget, st widgetStatus) error {
	r := ctx.renderer
	theme := ctx.theme
	body := w.rect

	fill := theme.Primary
	switch {
	case st.hovered:
		fill = theme.Highlight
		if st.active {
			body = body.Offset(Point{X: 1, Y: 1})
		}
	case st.disabled:
		fill = dim(theme.Primary)
	}
	if err := r.FillRect(body, fill); err != nil {
		return err
	}
	if err := r.StrokeRect(body, ctx.outline(st, false)); err != nil {
		return err
	}

	c := body.Center()
	pos := Point{X: c.X - w.text.X/2, Y: c.Y - w.text.Y/2}
	color := ctx.textColor()
	_, _, err := r.DrawText(pos, w.label, color, color)
	return err
}

func (ctx *Context) drawCheckbox(w *widget, st widgetStatus) error {
	r := ctx.renderer
	theme := ctx.theme
	box := w.rect

	if err := r.FillRect(box, ctx.indicatorFill(st)); err != nil {
		return err
	}
	if err := r.StrokeRect(box, ctx.outline(st, true)); err != nil {
		return err
	}
	if !w.selected {
		return nil
	}

	mark := theme.Highlight
	if st.disabled {
		mark = dim(mark)
	}
	size := box.W
	half, third := size/2, size/3
	x := box.X + half - 1
	y := box.Bottom() - third
	start := Point{X: x - third + 2, Y: y - third + 2}
	mid := Point{X: x, Y: y}
	end := Point{X: x + third + 1, Y: y - half + 2}
	if err := r.Line(start, mid, mark, 2); err != nil {
		return err
	}
	return r.Line(mid, end, mark, 2)
}

func (ctx *Context) drawRadio(w *widget, st widgetStatus) error {
	r := ctx.renderer
	theme := ctx.theme
	circle := w.rect

	if err := r.FillEllipse(circle, ctx.indicatorFill(st)); err != nil {
		return err
	}
	if err := r.StrokeEllipse(circle, ctx.outline(st, true)); err != nil {
		return err
	}
	if !w.selected {
		return nil
	}

	dot := theme.Highlight
	if st.disabled {
		dot = dim(dot)
	}
	inner := Rect{X: circle.X + 2, Y: circle.Y + 2, W: circle.W - 4, H: circle.H - 4}
	if inner.Empty() {
		return nil
	}
	return r.FillEllipse(inner, dot)
}

// indicatorFill returns the fill of a checkbox or radio indicator.
func (ctx *Context) indicatorFill(st widgetStatus) uint32 {
	switch {
	case st.hovered:
		return ctx.theme.Secondary
	case st.disabled:
		return dim(ctx.theme.Primary)
	}
	return ctx.theme.Primary
}
