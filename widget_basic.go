package pixgui

import "fmt"

// Text draws text at the current cursor position.
func (ctx *Context) Text(text string) error {
	pos := ctx.itemPos()
	color := ctx.textColor()
	w, h, err := ctx.renderer.DrawText(pos, text, color, color)
	if err != nil {
		return fmt.Errorf("text %q: %w", text, err)
	}
	ctx.advanceCursor(Rect{X: pos.X, Y: pos.Y, W: w, H: h})
	return nil
}

// withOptions applies per-widget options that change context state for the
// duration of one widget call. The returned func restores it.
func (ctx *Context) withOptions(o options) func() {
	if !GetOpt(o, OptDisabled) || ctx.disabled {
		return func() {}
	}
	ctx.disabled = true
	return func() { ctx.disabled = false }
}

// Button draws a button sized to its label and returns true when clicked.
// The width comes from NextWidth or WithWidth when set. WithWidth wins over
// a pending NextWidth, and WithWidth(0) sizes the button to its label.
func (ctx *Context) Button(label string, opts ...Option) (bool, error) {
	o := applyOptions(opts)
	defer ctx.withOptions(o)()

	w := widget{kind: kindButton, id: GetID(label), label: DisplayLabel(label)}
	pos := ctx.itemPos()
	pad := ctx.theme.ItemPad

	tw, th, err := ctx.renderer.MeasureText(w.label)
	if err != nil {
		return false, fmt.Errorf("button %q: measure: %w", w.label, err)
	}
	w.text = Point{X: tw, Y: th}
	if ctx.nextWidth > 0 {
		if !HasOpt(o, OptWidth) {
			tw = ctx.nextWidth
		}
		ctx.nextWidth = 0
	}
	w.rect = Rect{X: pos.X, Y: pos.Y, W: tw + 2*pad.X, H: th + 2*pad.Y}
	if v := GetOpt(o, OptWidth); v > 0 {
		w.rect.W = v
	}
	if v := GetOpt(o, OptHeight); v > 0 {
		w.rect.H = v
	}

	st := ctx.interact(&w)
	if err := ctx.drawWidget(&w, st); err != nil {
		return false, err
	}
	clicked := ctx.commit(&w)
	ctx.advanceCursor(w.rect)
	return clicked, nil
}

// Checkbox draws a checkbox followed by its label. Clicking the box toggles
// *checked and returns true.
func (ctx *Context) Checkbox(label string, checked *bool, opts ...Option) (bool, error) {
	o := applyOptions(opts)
	defer ctx.withOptions(o)()

	size := ctx.theme.CheckboxSize
	pos := ctx.itemPos()
	w := widget{
		kind:     kindCheckbox,
		id:       GetID(label),
		label:    DisplayLabel(label),
		rect:     Rect{X: pos.X, Y: pos.Y, W: size, H: size},
		selected: *checked,
	}

	st := ctx.interact(&w)
	if err := ctx.drawWidget(&w, st); err != nil {
		return false, err
	}
	ctx.advanceCursor(w.rect)
	if err := ctx.sameLineLabel(w.label); err != nil {
		return false, err
	}

	clicked := ctx.commit(&w)
	if clicked {
		*checked = !*checked
	}
	return clicked, nil
}

// Radio draws one radio button of a group sharing *selected. Clicking it
// sets *selected to index and returns true.
func (ctx *Context) Radio(label string, selected *int, index int, opts ...Option) (bool, error) {
	o := applyOptions(opts)
	defer ctx.withOptions(o)()

	d := 2 * ctx.theme.RadioRadius
	pos := ctx.itemPos()
	w := widget{
		kind:     kindRadio,
		id:       GetID(label),
		label:    DisplayLabel(label),
		rect:     Rect{X: pos.X, Y: pos.Y, W: d, H: d},
		selected: *selected == index,
	}

	st := ctx.interact(&w)
	if err := ctx.drawWidget(&w, st); err != nil {
		return false, err
	}
	ctx.advanceCursor(w.rect)
	if err := ctx.sameLineLabel(w.label); err != nil {
		return false, err
	}

	clicked := ctx.commit(&w)
	if clicked {
		*selected = index
	}
	return clicked, nil
}

func (ctx *Context) sameLineLabel(label string) error {
	if label == "" {
		return nil
	}
	ctx.SameLine()
	return ctx.Text(label)
}
