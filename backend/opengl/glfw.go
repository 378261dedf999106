package opengl

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/pixgui"
)

// GLFWInputAdapter feeds GLFW window events into a pixgui.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *pixgui.InputState

	// Fractional wheel offsets from trackpads, carried to the next event.
	wheelX, wheelY float64
}

// NewGLFWInputAdapter installs input callbacks on window.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  pixgui.NewInputState(),
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Poll collects one frame of input: it clears the previous frame's edges,
// processes pending window events and samples the cursor and modifiers.
// Call it once at the start of each frame, instead of glfw.PollEvents.
func (a *GLFWInputAdapter) Poll() *pixgui.InputState {
	a.input.Reset()
	glfw.PollEvents()

	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(int(x), int(y))

	a.input.ModCtrl = a.window.GetKey(glfw.KeyLeftControl) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightControl) == glfw.Press
	a.input.ModShift = a.window.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightShift) == glfw.Press
	a.input.ModAlt = a.window.GetKey(glfw.KeyLeftAlt) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightAlt) == glfw.Press

	return a.input
}

// Input returns the input state the adapter fills.
func (a *GLFWInputAdapter) Input() *pixgui.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToGUIKey(key)
	if k == pixgui.KeyNone {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetKey(k, true)
	case glfw.Repeat:
		a.input.RepeatKey(k)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButtonToGUI(button)
	if b < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.wheelX += xoff
	a.wheelY += yoff
	x, y := math.Trunc(a.wheelX), math.Trunc(a.wheelY)
	a.wheelX -= x
	a.wheelY -= y
	a.input.AddMouseWheel(int(x), int(y))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(int(xpos), int(ypos))
}

// glfwKeyToGUIKey maps GLFW keys to GUI keys.
func glfwKeyToGUIKey(key glfw.Key) pixgui.Key {
	switch key {
	case glfw.KeyTab:
		return pixgui.KeyTab
	case glfw.KeyLeft:
		return pixgui.KeyLeft
	case glfw.KeyRight:
		return pixgui.KeyRight
	case glfw.KeyUp:
		return pixgui.KeyUp
	case glfw.KeyDown:
		return pixgui.KeyDown
	case glfw.KeyPageUp:
		return pixgui.KeyPageUp
	case glfw.KeyPageDown:
		return pixgui.KeyPageDown
	case glfw.KeyHome:
		return pixgui.KeyHome
	case glfw.KeyEnd:
		return pixgui.KeyEnd
	case glfw.KeySpace:
		return pixgui.KeySpace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return pixgui.KeyEnter
	case glfw.KeyEscape:
		return pixgui.KeyEscape
	default:
		return pixgui.KeyNone
	}
}

// glfwMouseButtonToGUI maps GLFW mouse buttons to GUI mouse buttons.
func glfwMouseButtonToGUI(button glfw.MouseButton) pixgui.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return pixgui.MouseButtonLeft
	case glfw.MouseButtonRight:
		return pixgui.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return pixgui.MouseButtonMiddle
	default:
		return -1
	}
}
