package pixgui_test

import (
	"math/rand/v2"
	"testing"

	"github.com/go-theft-auto/pixgui"
)

func TestButtonReleaseOutsideDoesNotClick(t *testing.T) {
	h := newHarness(t)
	id := pixgui.GetID("OK")

	var clicked bool
	button := func(ctx *pixgui.Context) {
		ctx.SetCursorPos(10, 10)
		var err error
		clicked, err = ctx.Button("OK", pixgui.WithWidth(80), pixgui.WithHeight(30))
		mustNoErr(t, err)
	}

	h.move(50, 20)
	h.frame(button)
	if !h.ui.Context().IsHovered(id) {
		t.Fatal("button not hovered with mouse at (50,20)")
	}

	h.press()
	h.frame(button)
	if got := h.ui.Context().ActiveID(); got != id {
		t.Fatalf("ActiveID() = %d, want %d", got, id)
	}

	h.move(200, 200)
	h.frame(button)
	if h.ui.Context().IsHovered(id) {
		t.Error("button hovered with mouse outside")
	}
	if !h.ui.Context().IsActive(id) {
		t.Error("button lost active while the button is held")
	}

	h.release()
	h.frame(button)
	if clicked {
		t.Error("release outside reported a click")
	}
	if got := h.ui.Context().ActiveID(); got != 0 {
		t.Errorf("ActiveID() after release = %d, want 0", got)
	}
}

func TestButtonClick(t *testing.T) {
	h := newHarness(t)

	clicks := 0
	button := func(ctx *pixgui.Context) {
		ctx.SetCursorPos(10, 10)
		ok, err := ctx.Button("OK", pixgui.WithWidth(80), pixgui.WithHeight(30))
		mustNoErr(t, err)
		if ok {
			clicks++
		}
	}

	h.move(50, 20)
	h.press()
	h.frame(button)
	h.release()
	h.frame(button)
	h.frame(button)

	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestPressAndReleaseInOneFrameClicks(t *testing.T) {
	h := newHarness(t)
	id := pixgui.GetID("a")
	r := pixgui.Rect{W: 50, H: 50}

	h.move(10, 10)
	h.press()
	h.release()

	var clicked bool
	h.frame(func(ctx *pixgui.Context) {
		widget(ctx, id, r)
		clicked = ctx.WasClicked(id)
	})
	if !clicked {
		t.Error("press and release within one frame did not click")
	}
}

func TestDragDoesNotHoverOtherWidgets(t *testing.T) {
	h := newHarness(t)
	a, b := pixgui.GetID("a"), pixgui.GetID("b")
	ra := pixgui.Rect{X: 0, Y: 0, W: 50, H: 50}
	rb := pixgui.Rect{X: 100, Y: 0, W: 50, H: 50}

	var hoverB, clickB bool
	draw := func(ctx *pixgui.Context) {
		widget(ctx, a, ra)
		hoverB = widget(ctx, b, rb)
		clickB = ctx.WasClicked(b)
	}

	h.move(10, 10)
	h.press()
	h.frame(draw)

	h.move(120, 10)
	h.frame(draw)
	if hoverB {
		t.Error("b hovered during a drag that started on a")
	}
	if got := h.ui.Context().ActiveID(); got != a {
		t.Errorf("ActiveID() = %d, want a", got)
	}

	h.release()
	h.frame(draw)
	if clickB {
		t.Error("release over b clicked it")
	}
}

func TestActiveReleasedWhenWidgetDisappears(t *testing.T) {
	h := newHarness(t)
	id := pixgui.GetID("a")
	r := pixgui.Rect{W: 50, H: 50}

	h.move(10, 10)
	h.press()
	h.frame(func(ctx *pixgui.Context) { widget(ctx, id, r) })
	if h.ui.Context().ActiveID() != id {
		t.Fatal("widget not active after press")
	}

	h.frame(func(ctx *pixgui.Context) {})
	if got := h.ui.Context().ActiveID(); got != 0 {
		t.Errorf("ActiveID() = %d after the widget was skipped, want 0", got)
	}
}

func TestLastDeclaredWidgetWinsHover(t *testing.T) {
	h := newHarness(t)
	a, b := pixgui.GetID("under"), pixgui.GetID("over")
	ra := pixgui.Rect{X: 0, Y: 0, W: 100, H: 100}
	rb := pixgui.Rect{X: 50, Y: 50, W: 100, H: 100}

	var hoverA, hoverB bool
	draw := func(ctx *pixgui.Context) {
		hoverA = widget(ctx, a, ra)
		hoverB = widget(ctx, b, rb)
	}

	h.move(75, 75)
	h.frame(func(ctx *pixgui.Context) {
		draw(ctx)
		if ctx.IsHovered(a) {
			t.Error("a still hovered after b claimed the overlap")
		}
	})
	if !hoverB {
		t.Error("b not hovered on the first frame")
	}

	h.frame(draw)
	if hoverA {
		t.Error("a hovered although b covered the mouse last frame")
	}
	if !hoverB {
		t.Error("b not hovered")
	}

	h.press()
	h.frame(draw)
	if got := h.ui.Context().ActiveID(); got != b {
		t.Errorf("ActiveID() = %d, want b", got)
	}
}

func TestNewOverlapTakesPress(t *testing.T) {
	h := newHarness(t)
	a, b := pixgui.GetID("under"), pixgui.GetID("over")
	ra := pixgui.Rect{X: 0, Y: 0, W: 100, H: 100}
	rb := pixgui.Rect{X: 50, Y: 50, W: 100, H: 100}

	var clickA, clickB bool
	draw := func(ctx *pixgui.Context) {
		widget(ctx, a, ra)
		widget(ctx, b, rb)
		clickA, clickB = ctx.WasClicked(a), ctx.WasClicked(b)
	}

	h.move(75, 75)
	h.frame(func(ctx *pixgui.Context) { widget(ctx, a, ra) })

	// b covers the mouse for the first time on the press frame.
	h.press()
	h.frame(draw)
	ctx := h.ui.Context()
	if ctx.IsHovered(a) || !ctx.IsHovered(b) {
		t.Errorf("hovered a=%v b=%v, want only b", ctx.IsHovered(a), ctx.IsHovered(b))
	}
	if got := ctx.ActiveID(); got != b {
		t.Errorf("ActiveID() = %d, want b", got)
	}
	if got := ctx.FocusedID(); got != b {
		t.Errorf("FocusedID() = %d, want b", got)
	}

	h.release()
	h.frame(draw)
	if clickA || !clickB {
		t.Errorf("clickA=%v clickB=%v, want only b clicked", clickA, clickB)
	}
}

func TestRemovedOverlapFreesPress(t *testing.T) {
	h := newHarness(t)
	a, b := pixgui.GetID("under"), pixgui.GetID("over")
	ra := pixgui.Rect{X: 0, Y: 0, W: 100, H: 100}
	rb := pixgui.Rect{X: 50, Y: 50, W: 100, H: 100}

	h.move(75, 75)
	both := func(ctx *pixgui.Context) {
		widget(ctx, a, ra)
		widget(ctx, b, rb)
	}
	h.frame(both)
	h.frame(both)

	var clickA bool
	alone := func(ctx *pixgui.Context) {
		widget(ctx, a, ra)
		clickA = ctx.WasClicked(a)
	}

	// b is gone on the press frame.
	h.press()
	h.frame(alone)
	ctx := h.ui.Context()
	if got := ctx.ActiveID(); got != a {
		t.Errorf("ActiveID() = %d, want a", got)
	}
	if got := ctx.FocusedID(); got != a {
		t.Errorf("FocusedID() = %d, want a", got)
	}

	h.release()
	h.frame(alone)
	if !clickA {
		t.Error("a not clicked after the widget covering it went away")
	}
}

func TestDisabledOverlapBlocksPress(t *testing.T) {
	h := newHarness(t)
	a, b := pixgui.GetID("under"), pixgui.GetID("over")
	ra := pixgui.Rect{X: 0, Y: 0, W: 100, H: 100}
	rb := pixgui.Rect{X: 50, Y: 50, W: 100, H: 100}

	h.move(75, 75)
	h.frame(func(ctx *pixgui.Context) { widget(ctx, a, ra) })

	h.press()
	h.frame(func(ctx *pixgui.Context) {
		widget(ctx, a, ra)
		ctx.SetDisabled(true)
		widget(ctx, b, rb)
		ctx.SetDisabled(false)
	})
	ctx := h.ui.Context()
	if got := ctx.ActiveID(); got != 0 {
		t.Errorf("ActiveID() = %d, want 0 under a disabled widget", got)
	}
	if got := ctx.FocusedID(); got != 0 {
		t.Errorf("FocusedID() = %d, want 0", got)
	}
}

func TestWidgetState(t *testing.T) {
	h := newHarness(t)
	id := pixgui.GetID("a")
	r := pixgui.Rect{W: 50, H: 50}
	draw := func(ctx *pixgui.Context) { widget(ctx, id, r) }

	h.move(10, 10)
	h.press()
	h.frame(draw)
	want := pixgui.WidgetState{Hovered: true, Focused: true, Active: true}
	if got := h.ui.Context().State(id); got != want {
		t.Errorf("pressed: State() = %+v, want %+v", got, want)
	}

	h.release()
	h.move(300, 300)
	h.frame(draw)
	want = pixgui.WidgetState{Focused: true}
	if got := h.ui.Context().State(id); got != want {
		t.Errorf("released outside: State() = %+v, want %+v", got, want)
	}
}

func TestHoverOutsideOverlapUnaffected(t *testing.T) {
	h := newHarness(t)
	a, b := pixgui.GetID("under"), pixgui.GetID("over")
	ra := pixgui.Rect{X: 0, Y: 0, W: 100, H: 100}
	rb := pixgui.Rect{X: 50, Y: 50, W: 100, H: 100}

	var hoverA bool
	draw := func(ctx *pixgui.Context) {
		hoverA = widget(ctx, a, ra)
		widget(ctx, b, rb)
	}

	h.move(20, 20)
	h.frame(draw)
	h.frame(draw)
	if !hoverA {
		t.Error("a not hovered outside the overlap")
	}
}

func TestTryHoverAndTryFocusAreIdempotent(t *testing.T) {
	h := newHarness(t)
	id := pixgui.GetID("a")
	r := pixgui.Rect{W: 50, H: 50}

	h.move(10, 10)
	h.press()
	h.frame(func(ctx *pixgui.Context) {
		first, second := ctx.TryHover(id, r), ctx.TryHover(id, r)
		if !first || !second {
			t.Errorf("TryHover() = %v then %v, want true twice", first, second)
		}
		f1, f2 := ctx.TryFocus(id), ctx.TryFocus(id)
		if !f1 || !f2 {
			t.Errorf("TryFocus() = %v then %v, want true twice", f1, f2)
		}
		ctx.HandleEvents(id)
	})

	ctx := h.ui.Context()
	if ctx.FocusedID() != id || ctx.ActiveID() != id {
		t.Errorf("focused=%d active=%d, want %d for both", ctx.FocusedID(), ctx.ActiveID(), id)
	}
}

func TestSingleActiveWidget(t *testing.T) {
	rects := []pixgui.Rect{
		{X: 0, Y: 0, W: 50, H: 50},
		{X: 60, Y: 0, W: 50, H: 50},
		{X: 0, Y: 60, W: 50, H: 50},
		{X: 60, Y: 60, W: 50, H: 50},
	}
	ids := make([]pixgui.ID, len(rects))
	for i := range rects {
		ids[i] = pixgui.GetID(string(rune('a' + i)))
	}
	under := func(p pixgui.Point) int {
		for i, r := range rects {
			if r.Contains(p) {
				return i
			}
		}
		return -1
	}

	rng := rand.New(rand.NewPCG(7, 11))
	h := newHarness(t)
	down := false
	wantActive := -1

	for frame := 0; frame < 2000; frame++ {
		p := pixgui.Point{X: rng.IntN(120), Y: rng.IntN(120)}
		h.move(p.X, p.Y)

		wantClick := -1
		switch rng.IntN(4) {
		case 0:
			if !down {
				h.press()
				down = true
				if wantActive < 0 {
					wantActive = under(p)
				}
			}
		case 1:
			if down {
				h.release()
				down = false
				if wantActive >= 0 && under(p) == wantActive {
					wantClick = wantActive
				}
				wantActive = -1
			}
		}

		clicked := -1
		hovered := make([]bool, len(rects))
		h.frame(func(ctx *pixgui.Context) {
			for i := range rects {
				hovered[i] = widget(ctx, ids[i], rects[i])
				if ctx.WasClicked(ids[i]) {
					if clicked >= 0 {
						t.Fatalf("frame %d: two clicks", frame)
					}
					clicked = i
				}
			}
		})

		if clicked != wantClick {
			t.Fatalf("frame %d: clicked %d, want %d", frame, clicked, wantClick)
		}
		var want pixgui.ID
		if wantActive >= 0 {
			want = ids[wantActive]
		}
		if got := h.ui.Context().ActiveID(); got != want {
			t.Fatalf("frame %d: ActiveID() = %d, want %d", frame, got, want)
		}
		for i, hv := range hovered {
			if hv && wantActive >= 0 && i != wantActive {
				t.Fatalf("frame %d: widget %d hovered during a drag of %d", frame, i, wantActive)
			}
		}
	}
}

func TestFocusFollowsPressAndClearsOnEmptySpace(t *testing.T) {
	h := newHarness(t)
	id := pixgui.GetID("a")
	r := pixgui.Rect{W: 50, H: 50}
	draw := func(ctx *pixgui.Context) { widget(ctx, id, r) }

	h.move(10, 10)
	h.press()
	h.frame(draw)
	h.release()
	h.frame(draw)
	if got := h.ui.Context().FocusedID(); got != id {
		t.Fatalf("FocusedID() = %d, want %d", got, id)
	}

	h.move(300, 300)
	h.frame(draw)
	if got := h.ui.Context().FocusedID(); got != id {
		t.Fatalf("focus lost by a mouse move: %d", got)
	}

	h.press()
	h.frame(draw)
	if got := h.ui.Context().FocusedID(); got != 0 {
		t.Errorf("FocusedID() after a press on empty space = %d, want 0", got)
	}
}

func TestTabNavigation(t *testing.T) {
	h := newHarness(t)
	ids := []pixgui.ID{pixgui.GetID("a"), pixgui.GetID("b"), pixgui.GetID("c")}
	draw := func(ctx *pixgui.Context) {
		for i, id := range ids {
			widget(ctx, id, pixgui.Rect{X: i * 60, W: 50, H: 50})
		}
	}
	h.move(500, 500)
	h.frame(draw)
	h.ui.Context().SetFocus(ids[0])

	h.tap(pixgui.KeyTab)
	h.frame(draw)
	if got := h.ui.Context().FocusedID(); got != ids[1] {
		t.Fatalf("Tab: FocusedID() = %d, want b", got)
	}

	h.in.ModShift = true
	h.tap(pixgui.KeyTab)
	h.frame(draw)
	h.in.ModShift = false
	if got := h.ui.Context().FocusedID(); got != ids[0] {
		t.Fatalf("Shift+Tab: FocusedID() = %d, want a", got)
	}

	h.ui.Context().SetFocus(ids[2])
	h.tap(pixgui.KeyTab)
	h.frame(draw)
	if got := h.ui.Context().FocusedID(); got != 0 {
		t.Fatalf("Tab from the last widget: FocusedID() = %d, want 0 until the next frame", got)
	}
	h.frame(draw)
	if got := h.ui.Context().FocusedID(); got != ids[0] {
		t.Errorf("Tab wrap: FocusedID() = %d, want a", got)
	}
}

func TestDisabledWidgetsIgnoreInput(t *testing.T) {
	h := newHarness(t)
	id := pixgui.GetID("OK")

	var clicked, hovered bool
	var after pixgui.Point
	draw := func(ctx *pixgui.Context) {
		ctx.SetDisabled(true)
		var err error
		clicked, err = ctx.Button("OK")
		mustNoErr(t, err)
		hovered = ctx.IsHovered(id)
		after = ctx.CursorPos()
	}

	h.move(5, 5)
	h.press()
	h.frame(draw)
	h.release()
	h.frame(draw)

	if clicked || hovered {
		t.Errorf("disabled button: clicked=%v hovered=%v, want false", clicked, hovered)
	}
	if got := h.ui.Context().ActiveID(); got != 0 {
		t.Errorf("ActiveID() = %d, want 0", got)
	}

	var enabled pixgui.Point
	h.frame(func(ctx *pixgui.Context) {
		_, err := ctx.Button("OK")
		mustNoErr(t, err)
		enabled = ctx.CursorPos()
	})
	if after != enabled {
		t.Errorf("disabled button moved the cursor to %v, enabled to %v", after, enabled)
	}
}

func TestDisabledFlagResetsEachFrame(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *pixgui.Context) { ctx.SetDisabled(true) })
	h.frame(func(ctx *pixgui.Context) {
		if ctx.Disabled() {
			t.Error("disabled flag carried over into a new frame")
		}
	})
}

func TestGUIsShareNoState(t *testing.T) {
	h1, h2 := newHarness(t), newHarness(t)
	id := pixgui.GetID("a")
	r := pixgui.Rect{W: 50, H: 50}

	h1.move(10, 10)
	h1.press()
	h1.frame(func(ctx *pixgui.Context) { widget(ctx, id, r) })
	h2.frame(func(ctx *pixgui.Context) { widget(ctx, id, r) })

	if h1.ui.Context().ActiveID() != id {
		t.Error("first GUI lost its active widget")
	}
	if got := h2.ui.Context().ActiveID(); got != 0 {
		t.Errorf("second GUI ActiveID() = %d, want 0", got)
	}
}
