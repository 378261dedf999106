package pixgui

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeySpace
	KeyEnter
	KeyEscape
	KeyCount
)

// InputState is one frame's mouse and keyboard snapshot.
// It is populated by a backend input adapter and read-only to widgets.
//
// The frame protocol is: Reset, feed events (SetMousePos, SetMouseButton,
// SetKey, AddMouseWheel), then run the GUI frame.
type InputState struct {
	// Mouse position
	MouseX, MouseY int

	// Mouse motion since the previous frame
	MouseRelX, MouseRelY int
	prevMouseX           int
	prevMouseY           int

	// Mouse buttons - current frame state
	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool // True on the frame button was pressed
	mouseUp      [MouseButtonCount]bool // True on the frame button was released

	// Mouse wheel, in notches. Positive Y scrolls up, positive X scrolls right.
	WheelX, WheelY int

	// Keyboard - current frame state
	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool // True on the frame key was pressed
	keyUp      [KeyCount]bool // True on the frame key was released
	lastKey    Key            // Most recently pressed key this frame

	// Modifiers
	ModCtrl  bool
	ModShift bool
	ModAlt   bool
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{}
}

// Reset clears per-frame input state.
// Call this at the start of each frame before collecting input.
func (s *InputState) Reset() {
	// Clear single-frame events
	for i := range s.mouseClicked {
		s.mouseClicked[i] = false
	}
	for i := range s.mouseUp {
		s.mouseUp[i] = false
	}
	for i := range s.keyPressed {
		s.keyPressed[i] = false
	}
	for i := range s.keyUp {
		s.keyUp[i] = false
	}
	s.lastKey = KeyNone
	s.WheelX = 0
	s.WheelY = 0
	s.prevMouseX = s.MouseX
	s.prevMouseY = s.MouseY
	s.MouseRelX = 0
	s.MouseRelY = 0
}

// SetMousePos sets the mouse position and updates the relative motion.
func (s *InputState) SetMousePos(x, y int) {
	s.MouseX = x
	s.MouseY = y
	s.MouseRelX = x - s.prevMouseX
	s.MouseRelY = y - s.prevMouseY
}

// MousePos returns the mouse position.
func (s *InputState) MousePos() Point {
	return Point{X: s.MouseX, Y: s.MouseY}
}

// SetMouseButton sets mouse button state.
// A press and a release in the same frame leave both edges set.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}

	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down

	if down && !wasDown {
		s.mouseClicked[button] = true
	}
	if !down && wasDown {
		s.mouseUp[button] = true
	}
}

// AddMouseWheel accumulates wheel notches for this frame.
func (s *InputState) AddMouseWheel(x, y int) {
	s.WheelX += x
	s.WheelY += y
}

// SetKey sets key state.
func (s *InputState) SetKey(key Key, down bool) {
	if key < 0 || key >= KeyCount {
		return
	}

	wasDown := s.keyDown[key]
	s.keyDown[key] = down

	if down && !wasDown {
		s.keyPressed[key] = true
		s.lastKey = key
	}
	if !down && wasDown {
		s.keyUp[key] = true
	}
}

// RepeatKey registers an auto-repeat of a held key as a fresh entry.
func (s *InputState) RepeatKey(key Key) {
	if key <= KeyNone || key >= KeyCount {
		return
	}
	s.keyDown[key] = true
	s.keyPressed[key] = true
	s.lastKey = key
}

// MouseDown returns true if a mouse button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked returns true if a mouse button was pressed this frame.
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// MouseReleased returns true if a mouse button was released this frame.
func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseUp[button]
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed returns true if a key was pressed this frame.
func (s *InputState) KeyPressed(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// KeyEntered returns the most recently pressed key this frame.
func (s *InputState) KeyEntered() (Key, bool) {
	return s.lastKey, s.lastKey != KeyNone
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	switch k {
	case KeyNone:
		return "--"
	case KeyTab:
		return "Tab"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyPageUp:
		return "PgUp"
	case KeyPageDown:
		return "PgDn"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeySpace:
		return "Space"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Esc"
	}
	return "?"
}
