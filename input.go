package knob

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key the widget set cares about.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyCount
)

// Key repeat timing constants
const (
	KeyRepeatDelay    float32 = 0.4  // Initial delay before repeat starts (seconds)
	KeyRepeatInterval float32 = 0.03 // Repeat interval once repeating (seconds)
)

// Double-click detection constants
const (
	// DoubleClickTime is the maximum interval between two presses that
	// counts as a double-click (seconds).
	DoubleClickTime float32 = 0.30

	// DoubleClickMaxDist is the maximum distance between two presses that
	// counts as a double-click (pixels).
	DoubleClickMaxDist float32 = 6.0
)

// InputState holds input state for the current frame.
// This is typically populated by the application from GLFW or similar.
type InputState struct {
	// Mouse position
	MouseX, MouseY float32

	// Mouse buttons - current frame state
	mouseDown          [MouseButtonCount]bool
	mouseClicked       [MouseButtonCount]bool // True on the frame button was pressed
	mouseUp            [MouseButtonCount]bool // True on the frame button was released
	mouseDoubleClicked [MouseButtonCount]bool // True on the frame a double-click completed

	// Double-click tracking
	clock         float32 // Accumulated time, advanced once per frame
	lastClickTime [MouseButtonCount]float32
	lastClickPos  [MouseButtonCount]Vec2

	// Mouse wheel
	MouseWheelX float32
	MouseWheelY float32

	// Keyboard - current frame state
	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool // True on the frame key was pressed
	keyUp      [KeyCount]bool // True on the frame key was released

	// Key repeat tracking
	keyHoldTime [KeyCount]float32 // How long each key has been held

	// Window focus tracking
	windowFocused bool
	focusLost     bool // True on the frame the window lost input focus

	// Modifiers
	ModCtrl  bool
	ModShift bool
	ModAlt   bool
	ModSuper bool
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	s := &InputState{windowFocused: true}
	for i := range s.lastClickTime {
		s.lastClickTime[i] = -1e9
	}
	return s
}

// Reset clears per-frame input state.
// Call this at the start of each frame before collecting input.
func (s *InputState) Reset() {
	for i := range s.mouseClicked {
		s.mouseClicked[i] = false
	}
	for i := range s.mouseUp {
		s.mouseUp[i] = false
	}
	for i := range s.mouseDoubleClicked {
		s.mouseDoubleClicked[i] = false
	}
	for i := range s.keyPressed {
		s.keyPressed[i] = false
	}
	for i := range s.keyUp {
		s.keyUp[i] = false
	}
	s.MouseWheelX = 0
	s.MouseWheelY = 0
	s.focusLost = false
}

// Advance moves the input clock forward by one frame and updates key hold
// times. Called once per frame by GUI.Begin with the frame's delta time.
func (s *InputState) Advance(dt float32) {
	s.clock += dt
	for key := Key(0); key < KeyCount; key++ {
		if s.keyDown[key] {
			s.keyHoldTime[key] += dt
		}
	}
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// SetMouseButton sets mouse button state. Fresh presses are matched against
// the previous press to detect double-clicks.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}

	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down

	if down && !wasDown {
		s.mouseClicked[button] = true

		pos := Vec2{X: s.MouseX, Y: s.MouseY}
		dist := pos.Sub(s.lastClickPos[button])
		if s.clock-s.lastClickTime[button] <= DoubleClickTime &&
			absf(dist.X) <= DoubleClickMaxDist && absf(dist.Y) <= DoubleClickMaxDist {
			s.mouseDoubleClicked[button] = true
			// A third rapid click starts a fresh sequence rather than
			// chaining double-clicks.
			s.lastClickTime[button] = -1e9
		} else {
			s.lastClickTime[button] = s.clock
			s.lastClickPos[button] = pos
		}
	}
	if !down && wasDown {
		s.mouseUp[button] = true
	}
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
		s.keyHoldTime[key] = 0
	}
	if !down && wasDown {
		s.keyUp[key] = true
		s.keyHoldTime[key] = 0
	}
}

// SetMouseWheel sets the mouse wheel delta.
func (s *InputState) SetMouseWheel(x, y float32) {
	s.MouseWheelX = x
	s.MouseWheelY = y
}

// SetWindowFocused records whether the host window has input focus.
// Losing focus raises a one-frame FocusLost event; widgets use it to end
// in-flight drags.
func (s *InputState) SetWindowFocused(focused bool) {
	if s.windowFocused && !focused {
		s.focusLost = true
	}
	s.windowFocused = focused
}

// WindowFocused returns true if the host window has input focus.
func (s *InputState) WindowFocused() bool {
	return s.windowFocused
}

// FocusLost returns true if the window lost input focus this frame.
func (s *InputState) FocusLost() bool {
	return s.focusLost
}

// MouseDown returns true if a mouse button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked returns true if a mouse button was just clicked (pressed this frame).
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// MouseReleased returns true if a mouse button was just released.
func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseUp[button]
}

// MouseDoubleClicked returns true if a double-click completed this frame.
func (s *InputState) MouseDoubleClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDoubleClicked[button]
}

// FineModifierHeld returns true if any fine-adjust modifier is held.
// Ctrl, Shift and Alt all count; drags are scaled down while one is held.
func (s *InputState) FineModifierHeld() bool {
	return s.ModCtrl || s.ModShift || s.ModAlt
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed returns true if a key was just pressed (pressed this frame).
func (s *InputState) KeyPressed(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// KeyReleased returns true if a key was just released.
func (s *InputState) KeyReleased(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyUp[key]
}

// KeyRepeated returns true if a key should trigger this frame.
// Returns true on initial press, then after KeyRepeatDelay, then every
// KeyRepeatInterval. Use this for actions that repeat while a key is held.
func (s *InputState) KeyRepeated(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}

	if s.keyPressed[key] {
		return true
	}
	if !s.keyDown[key] {
		return false
	}

	holdTime := s.keyHoldTime[key]
	if holdTime < KeyRepeatDelay {
		return false
	}

	// Trigger if we just crossed an interval boundary this frame.
	// Approximate but works well for typical frame rates.
	timeSinceDelay := holdTime - KeyRepeatDelay
	repeatCount := int(timeSinceDelay / KeyRepeatInterval)
	prevRepeatCount := int((timeSinceDelay - 0.016) / KeyRepeatInterval)
	return repeatCount > prevRepeatCount
}
