package pixgui_test

import (
	"testing"

	"github.com/go-theft-auto/pixgui"
)

func TestInputEdges(t *testing.T) {
	in := pixgui.NewInputState()

	in.SetMouseButton(pixgui.MouseButtonLeft, true)
	if !in.MouseClicked(pixgui.MouseButtonLeft) || !in.MouseDown(pixgui.MouseButtonLeft) {
		t.Fatal("press not recorded")
	}

	in.Reset()
	if in.MouseClicked(pixgui.MouseButtonLeft) {
		t.Error("press edge survived Reset")
	}
	if !in.MouseDown(pixgui.MouseButtonLeft) {
		t.Error("held button cleared by Reset")
	}

	in.SetMouseButton(pixgui.MouseButtonLeft, false)
	if !in.MouseReleased(pixgui.MouseButtonLeft) {
		t.Error("release not recorded")
	}

	// Out-of-range buttons are ignored
	in.SetMouseButton(pixgui.MouseButtonCount, true)
	if in.MouseDown(pixgui.MouseButtonCount) {
		t.Error("out-of-range button recorded")
	}
}

func TestInputMotionAndWheel(t *testing.T) {
	in := pixgui.NewInputState()
	in.SetMousePos(10, 20)
	in.Reset()
	in.SetMousePos(15, 18)
	if in.MouseRelX != 5 || in.MouseRelY != -2 {
		t.Errorf("relative motion = (%d, %d), want (5, -2)", in.MouseRelX, in.MouseRelY)
	}

	in.AddMouseWheel(0, 1)
	in.AddMouseWheel(1, 2)
	if in.WheelX != 1 || in.WheelY != 3 {
		t.Errorf("wheel = (%d, %d), want (1, 3)", in.WheelX, in.WheelY)
	}
	in.Reset()
	if in.WheelX != 0 || in.WheelY != 0 {
		t.Error("wheel survived Reset")
	}
}

func TestInputKeys(t *testing.T) {
	in := pixgui.NewInputState()
	if _, ok := in.KeyEntered(); ok {
		t.Error("KeyEntered on empty input")
	}

	in.SetKey(pixgui.KeyDown, true)
	if k, ok := in.KeyEntered(); !ok || k != pixgui.KeyDown {
		t.Errorf("KeyEntered() = %v, %v", k, ok)
	}

	// Holding a key does not enter it again
	in.Reset()
	in.SetKey(pixgui.KeyDown, true)
	if _, ok := in.KeyEntered(); ok {
		t.Error("held key entered twice")
	}

	in.RepeatKey(pixgui.KeyDown)
	if !in.KeyPressed(pixgui.KeyDown) {
		t.Error("repeat not recorded as a press")
	}

	in.Reset()
	in.SetKey(pixgui.KeyDown, false)
	if in.KeyDown(pixgui.KeyDown) {
		t.Error("released key still down")
	}
	if got := pixgui.KeyName(pixgui.KeyPageDown); got != "PgDn" {
		t.Errorf("KeyName(KeyPageDown) = %q", got)
	}
}
