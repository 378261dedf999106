package main

import (
	"fmt"

	"github.com/go-theft-auto/pixgui"
)

// demoState is the application state the demo UI edits.
type demoState struct {
	clicks   int
	showList bool
	disabled bool
	size     int
	selected int
	rows     int
}

func newDemoState(rows int) *demoState {
	return &demoState{showList: true, selected: -1, rows: rows}
}

var sizeLabels = []string{"Small##size", "Medium##size", "Large##size"}

// drawDemo builds one frame of the demo UI.
func drawDemo(ctx *pixgui.Context, s *demoState) error {
	ctx.SetCursorPos(16, 16)
	if err := ctx.Text("pixgui demo"); err != nil {
		return err
	}
	ctx.Spacing(4)

	clicked, err := ctx.Button("Click me##counter")
	if err != nil {
		return err
	}
	if clicked {
		s.clicks++
	}
	ctx.SameLine()
	if err := ctx.Text(fmt.Sprintf("%d clicks", s.clicks)); err != nil {
		return err
	}
	ctx.SameLine()
	ctx.NextWidth(60)
	reset, err := ctx.Button("Reset", pixgui.WithDisabled(s.clicks == 0))
	if err != nil {
		return err
	}
	if reset {
		s.clicks = 0
	}

	if _, err := ctx.Checkbox("Show list", &s.showList); err != nil {
		return err
	}
	if _, err := ctx.Checkbox("Disable size", &s.disabled); err != nil {
		return err
	}

	ctx.SetDisabled(s.disabled)
	for i, label := range sizeLabels {
		if i > 0 {
			ctx.SameLine()
		}
		if _, err := ctx.Radio(label, &s.size, i); err != nil {
			return err
		}
	}
	ctx.SetDisabled(false)
	ctx.Spacing(4)

	if s.showList {
		if err := ctx.ScrollArea("Rows", 320, 240, s.drawRows); err != nil {
			return err
		}
	}

	ctx.SetCursorPos(400, 16)
	return ctx.ScrollArea("Wide##wide", 360, 120, drawWide)
}

// drawRows lists the rows, drawing only those in view.
func (s *demoState) drawRows(ctx *pixgui.Context) error {
	theme := ctx.Theme()
	_, h, err := ctx.Renderer().MeasureText("Row")
	if err != nil {
		return err
	}
	rowHeight := h + 2*theme.ItemPad.Y + theme.ItemSpacing.Y

	c := ctx.ListClipper(s.rows, rowHeight)
	c.Begin(ctx)
	for i := c.StartIdx; i < c.EndIdx; i++ {
		label := fmt.Sprintf("Row %d##row%d", i, i)
		if i == s.selected {
			label = fmt.Sprintf("> Row %d##row%d", i, i)
		}
		clicked, err := ctx.Button(label, pixgui.WithWidth(260))
		if err != nil {
			return err
		}
		if clicked {
			s.selected = i
		}
	}
	c.End(ctx, 260)
	return nil
}

// drawWide draws content wider and taller than its area.
func drawWide(ctx *pixgui.Context) error {
	for line := 0; line < 8; line++ {
		text := fmt.Sprintf("%d: The quick brown fox jumps over the lazy dog, again and again and again.", line)
		if err := ctx.Text(text); err != nil {
			return err
		}
	}
	return nil
}
