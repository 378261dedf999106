package pixgui_test

import (
	"testing"

	"github.com/go-theft-auto/pixgui"
)

func TestNewListClipper(t *testing.T) {
	tests := []struct {
		name                       string
		total, itemH, visH, scroll int
		wantStart, wantEnd         int
	}{
		{"top", 100, 20, 100, 0, 0, 7},
		{"scrolled", 100, 20, 100, 200, 10, 17},
		{"partial row", 100, 20, 100, 210, 10, 17},
		{"end", 100, 20, 100, 1990, 99, 100},
		{"short list", 3, 20, 100, 0, 0, 3},
		{"empty", 0, 20, 100, 0, 0, 0},
		{"zero height", 10, 0, 100, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := pixgui.NewListClipper(tt.total, tt.itemH, tt.visH, tt.scroll)
			if c.StartIdx != tt.wantStart || c.EndIdx != tt.wantEnd {
				t.Errorf("range = [%d, %d), want [%d, %d)", c.StartIdx, c.EndIdx, tt.wantStart, tt.wantEnd)
			}
			if c.VisibleCount() != tt.wantEnd-tt.wantStart {
				t.Errorf("VisibleCount() = %d", c.VisibleCount())
			}
		})
	}
}

func TestListClipperHelpers(t *testing.T) {
	c := pixgui.NewListClipper(100, 20, 100, 200)
	if !c.ShouldRender(10) || c.ShouldRender(9) || c.ShouldRender(17) {
		t.Error("ShouldRender disagrees with the visible range")
	}
	if got := c.ContentHeight(); got != 2000 {
		t.Errorf("ContentHeight() = %d, want 2000", got)
	}

	tests := []struct {
		idx, scroll, want int
	}{
		{12, 200, 200}, // Visible
		{5, 200, 100},  // Above
		{20, 200, 320}, // Below: bottom edge at 420
		{-1, 200, 200},
		{100, 200, 200},
	}
	for _, tt := range tests {
		if got := c.ScrollToItem(tt.idx, tt.scroll, 100); got != tt.want {
			t.Errorf("ScrollToItem(%d, %d) = %d, want %d", tt.idx, tt.scroll, got, tt.want)
		}
	}
}

// A clipped list must measure the same content height as drawing every row.
func TestListClipperKeepsContentSize(t *testing.T) {
	const rows = 200
	rowHeight := glyphH + pixgui.DefaultTheme().ItemSpacing.Y

	measure := func(clipped bool) (drawn int, size pixgui.Point) {
		h := newHarness(t)
		draw := func(ctx *pixgui.Context) {
			ctx.SetCursorPos(0, 0)
			err := ctx.ScrollArea("##list", 200, 100, func(ctx *pixgui.Context) error {
				drawn = 0
				start, end := 0, rows
				var c *pixgui.ListClipper
				if clipped {
					c = ctx.ListClipper(rows, rowHeight)
					c.Begin(ctx)
					start, end = c.StartIdx, c.EndIdx
				}
				for i := start; i < end; i++ {
					if err := ctx.Text("row"); err != nil {
						return err
					}
					drawn++
				}
				if clipped {
					c.End(ctx, 3*glyphW)
				}
				return nil
			})
			mustNoErr(t, err)
		}

		// Scroll into the middle of the list, then measure.
		h.move(50, 50)
		h.in.AddMouseWheel(0, -300)
		h.frame(draw)
		h.frame(draw)
		return drawn, scrollOf(h, pixgui.GetID("##list"))
	}

	allDrawn, allScroll := measure(false)
	clippedDrawn, clippedScroll := measure(true)

	if allDrawn != rows {
		t.Fatalf("unclipped list drew %d rows", allDrawn)
	}
	if clippedDrawn >= 20 {
		t.Errorf("clipped list drew %d rows, want only the visible ones", clippedDrawn)
	}
	if allScroll != clippedScroll {
		t.Errorf("scroll offset %v with clipping, %v without", clippedScroll, allScroll)
	}
}
