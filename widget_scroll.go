package pixgui

import "fmt"

// Direction is a scroll axis.
type Direction uint8

const (
	Vertical Direction = iota
	Horizontal
)

// scrollRecord is the sticky state of one scroll area.
type scrollRecord struct {
	Offset  Point // Scroll offset, within [0, content - viewport]
	Content Point // Virtual content size measured last frame
}

// ThumbLength returns the scrollbar thumb length for a track of the given
// length and a scrollable range of max pixels. The thumb shrinks as max
// grows, never below minThumb (or the track, if shorter), and never beyond
// the track.
func ThumbLength(track, max, minThumb int) int {
	if track <= 0 {
		return 0
	}
	if max <= 0 {
		return track
	}
	thumb := track * track / (max + track)
	return clampi(thumb, min(minThumb, track), track)
}

// ThumbOffset returns the thumb position within the track for value in [0, max].
func ThumbOffset(track, thumb, value, max int) int {
	if max <= 0 {
		return 0
	}
	return (track - thumb) * clampi(value, 0, max) / max
}

// ScrollArea draws a width x height viewport onto which content is rendered
// through an offscreen target, with scrollbars for each axis whose content
// overflows. content runs synchronously with the layout cursor at the
// scrolled origin of the viewport.
//
// The content size is measured while drawing, so the scroll range lags the
// content by one frame.
func (ctx *Context) ScrollArea(label string, width, height int, content func(*Context) error) error {
	id := GetID(label)
	text := DisplayLabel(label)
	pos := ctx.itemPos()
	theme := ctx.theme

	area := Rect{X: pos.X, Y: pos.Y, W: width, H: height}
	var lw, lh int
	if text != "" {
		var err error
		lw, lh, err = ctx.renderer.MeasureText(text)
		if err != nil {
			return fmt.Errorf("scroll area %q: measure label: %w", text, err)
		}
		area.Y += lh + theme.ItemPad.Y
	}

	ctx.TryHover(id, area)
	ctx.TryFocus(id)

	if text != "" {
		if _, _, err := ctx.renderer.DrawText(pos, text, ctx.textColor(), ctx.textColor()); err != nil {
			return fmt.Errorf("scroll area %q: draw label: %w", text, err)
		}
	}

	if area.Empty() {
		ctx.HandleEvents(id)
		ctx.advanceCursor(Rect{X: pos.X, Y: pos.Y, W: lw, H: area.Y - pos.Y})
		return nil
	}

	rec := ctx.scrolls.Get(id, scrollRecord{})
	target, err := ctx.targets.acquire(id, area.W, area.H)
	if err != nil {
		return fmt.Errorf("scroll area %q: %w", text, err)
	}

	extent, err := ctx.renderContent(id, target, area, rec.Offset, content)
	if err != nil {
		return fmt.Errorf("scroll area %q: %w", text, err)
	}
	if err := ctx.renderer.DrawTarget(target, area); err != nil {
		return fmt.Errorf("scroll area %q: present: %w", text, err)
	}

	ctx.HandleEvents(id)

	rec.Content = Point{
		X: extent.X + rec.Offset.X + theme.FramePad.X,
		Y: extent.Y + rec.Offset.Y + theme.FramePad.Y,
	}
	bounds, err := ctx.scroll(id, area, rec)
	if err != nil {
		return fmt.Errorf("scroll area %q: %w", text, err)
	}

	ctx.advanceCursor(Rect{X: pos.X, Y: pos.Y, W: max(bounds.W, lw), H: bounds.Bottom() - pos.Y})
	return nil
}

// savedTarget is the drawing state a scroll area restores when it is done.
type savedTarget struct {
	target    TargetID
	origin    Point
	clip      Rect
	layout    layoutState
	nextWidth int
}

// renderContent draws content into target and returns the furthest
// right/bottom edge the layout reached, in target coordinates.
func (ctx *Context) renderContent(id ID, target TargetID, area Rect, offset Point, content func(*Context) error) (Point, error) {
	theme := ctx.theme
	size := area.Size()
	pad := theme.FramePad

	saved := savedTarget{
		target:    ctx.target,
		origin:    ctx.origin,
		clip:      ctx.clip,
		layout:    ctx.layout,
		nextWidth: ctx.nextWidth,
	}
	if err := ctx.renderer.SetTarget(target); err != nil {
		return Point{}, fmt.Errorf("set target: %w", err)
	}

	screen := area.Offset(ctx.origin)
	inner := Rect{X: screen.X + pad.X, Y: screen.Y + pad.Y, W: screen.W - 2*pad.X, H: screen.H - 2*pad.Y}
	start := pad.Sub(offset)

	ctx.target = target
	ctx.origin = screen.TopLeft()
	ctx.clip = inner.Intersect(ctx.clip)
	ctx.layout = newLayoutState(start)
	ctx.nextWidth = 0
	ctx.frames = append(ctx.frames, contentFrame{id: id, offset: offset, viewport: size, maxX: start.X, maxY: start.Y})

	err := ctx.drawContent(size, content)

	frame := ctx.frames[len(ctx.frames)-1]
	ctx.frames = ctx.frames[:len(ctx.frames)-1]
	ctx.target = saved.target
	ctx.origin = saved.origin
	ctx.clip = saved.clip
	ctx.layout = saved.layout
	ctx.nextWidth = saved.nextWidth

	if serr := ctx.renderer.SetTarget(saved.target); serr != nil && err == nil {
		err = fmt.Errorf("restore target: %w", serr)
	}
	if err != nil {
		return Point{}, err
	}
	return Point{X: frame.maxX, Y: frame.maxY}, nil
}

// drawContent runs content on the current target between the clear and the
// edge mask, then outlines the viewport.
func (ctx *Context) drawContent(size Point, content func(*Context) error) error {
	theme := ctx.theme
	pad := theme.FramePad
	r := ctx.renderer

	if err := r.Clear(theme.Background); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	mask := ctx.edgeMask()
	if err := mask.begin(size, pad); err != nil {
		return fmt.Errorf("begin clip: %w", err)
	}
	if content != nil {
		if err := content(ctx); err != nil {
			_ = mask.end(size, pad, theme.Background)
			return err
		}
	}
	if err := mask.end(size, pad, theme.Background); err != nil {
		return fmt.Errorf("end clip: %w", err)
	}
	if err := r.StrokeRect(Rect{W: size.X, H: size.Y}, theme.Border); err != nil {
		return fmt.Errorf("stroke frame: %w", err)
	}
	return nil
}

// regionHovered reports whether the mouse is over a scroll area's viewport
// for wheel scrolling. Unlike hover, children drawn inside the area do not
// take this away; a drag on another widget does.
func (ctx *Context) regionHovered(id ID, area Rect) bool {
	if ctx.disabled || ctx.Input == nil {
		return false
	}
	if a := ctx.ui.active; a != 0 && a != id {
		return false
	}
	return area.Offset(ctx.origin).Intersect(ctx.clip).Contains(ctx.Input.MousePos())
}

// scroll applies wheel and keyboard input to the area's offset, runs the
// scrollbars and returns the area bounds grown by the visible scrollbars.
func (ctx *Context) scroll(id ID, area Rect, rec *scrollRecord) (Rect, error) {
	theme := ctx.theme
	speed := theme.ScrollSpeed
	size := theme.ScrollbarSize

	xmax := max(0, rec.Content.X-area.W)
	ymax := max(0, rec.Content.Y-area.H)
	off := rec.Offset
	bounds := area

	hovered := ctx.regionHovered(id, area)
	focused := ctx.IsFocused(id) && !ctx.disabled
	var key Key
	if ctx.Input != nil {
		key, _ = ctx.Input.KeyEntered()
	}

	if ymax > 0 {
		v := off.Y
		if hovered && ctx.Input.WheelY != 0 {
			v -= speed * ctx.Input.WheelY
		}
		if focused {
			switch key {
			case KeyUp:
				v -= speed
			case KeyDown:
				v += speed
			case KeyPageUp:
				v -= area.H
			case KeyPageDown:
				v += area.H
			case KeyHome:
				v = 0
			case KeyEnd:
				v = ymax
			}
		}
		track := Rect{X: area.Right(), Y: area.Y, W: size, H: area.H}
		var err error
		off.Y, err = ctx.scrollbar(scrollbarID(id, Vertical), track, ymax, clampi(v, 0, ymax), Vertical)
		if err != nil {
			return bounds, err
		}
		bounds.W += size
	} else {
		off.Y = 0
	}

	if xmax > 0 {
		v := off.X
		if hovered && ctx.Input.WheelX != 0 {
			v += speed * ctx.Input.WheelX
		}
		if focused {
			switch key {
			case KeyLeft:
				v -= speed
			case KeyRight:
				v += speed
			}
		}
		track := Rect{X: area.X, Y: area.Bottom(), W: area.W, H: size}
		var err error
		off.X, err = ctx.scrollbar(scrollbarID(id, Horizontal), track, xmax, clampi(v, 0, xmax), Horizontal)
		if err != nil {
			return bounds, err
		}
		bounds.H += size
	} else {
		off.X = 0
	}

	if off != rec.Offset && guiVerbose() {
		guiLogger.Debug("scrolled", "id", id, "from", rec.Offset, "to", off, "max", Point{X: xmax, Y: ymax})
	}
	rec.Offset = off
	return bounds, nil
}

// scrollbar draws one scrollbar and returns the new value, clamped to
// [0, max]. Keyboard steps apply while the bar is focused and dragging maps
// the mouse position along the track to the value while it is active.
func (ctx *Context) scrollbar(id ID, track Rect, max, value int, dir Direction) (int, error) {
	theme := ctx.theme
	r := ctx.renderer

	hovered := ctx.TryHover(id, track)
	focused := ctx.TryFocus(id)
	ctx.HandleEvents(id)
	active := ctx.IsActive(id)

	length := track.H
	if dir == Horizontal {
		length = track.W
	}

	value = clampi(value, 0, max)
	if focused && !ctx.disabled && ctx.Input != nil {
		if key, ok := ctx.Input.KeyEntered(); ok {
			switch {
			case key == KeyUp && dir == Vertical, key == KeyLeft && dir == Horizontal:
				value -= theme.ScrollSpeed
			case key == KeyDown && dir == Vertical, key == KeyRight && dir == Horizontal:
				value += theme.ScrollSpeed
			}
		}
	}
	if active && length > 0 {
		m := ctx.MousePos()
		if dir == Vertical {
			value = clampi(m.Y-track.Y, 0, length) * max / length
		} else {
			value = clampi(m.X-track.X, 0, length) * max / length
		}
	}
	value = clampi(value, 0, max)

	if err := r.FillRect(track, theme.Surface); err != nil {
		return value, fmt.Errorf("draw scrollbar track: %w", err)
	}

	thumbLen := ThumbLength(length, max, theme.ThumbMin)
	thumbPos := ThumbOffset(length, thumbLen, value, max)
	thumb := Rect{X: track.X, Y: track.Y + thumbPos, W: track.W, H: thumbLen}
	if dir == Horizontal {
		thumb = Rect{X: track.X + thumbPos, Y: track.Y, W: thumbLen, H: track.H}
	}

	color := theme.Secondary
	switch {
	case ctx.disabled:
		color = dim(theme.Secondary)
	case active, hovered:
		color = theme.Highlight
	}
	if err := r.FillRect(thumb, color); err != nil {
		return value, fmt.Errorf("draw scrollbar thumb: %w", err)
	}
	if focused {
		if err := r.StrokeRect(track, theme.Highlight); err != nil {
			return value, fmt.Errorf("draw scrollbar focus: %w", err)
		}
	}
	return value, nil
}
