package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/elisedemarie/knob"
)

// GLFWInputAdapter adapts GLFW input to knob.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *knob.InputState
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  knob.NewInputState(),
	}

	// Setup callbacks
	window.SetKeyCallback(adapter.keyCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)
	window.SetFocusCallback(adapter.focusCallback)

	return adapter
}

// Update updates the input state for a new frame.
// Call this at the start of each frame.
func (a *GLFWInputAdapter) Update() *knob.InputState {
	a.input.Reset()

	// Update mouse position
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	// Update modifiers
	a.input.ModCtrl = a.window.GetKey(glfw.KeyLeftControl) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightControl) == glfw.Press
	a.input.ModShift = a.window.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightShift) == glfw.Press
	a.input.ModAlt = a.window.GetKey(glfw.KeyLeftAlt) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightAlt) == glfw.Press
	a.input.ModSuper = a.window.GetKey(glfw.KeyLeftSuper) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightSuper) == glfw.Press

	return a.input
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *knob.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	guiKey := glfwKeyToKnobKey(key)
	if guiKey == knob.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(guiKey, true)
	case glfw.Release:
		a.input.SetKey(guiKey, false)
	}
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	guiButton := glfwMouseButtonToKnob(button)
	if guiButton < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(guiButton, true)
	case glfw.Release:
		a.input.SetMouseButton(guiButton, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(float32(xoff), float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

func (a *GLFWInputAdapter) focusCallback(w *glfw.Window, focused bool) {
	a.input.SetWindowFocused(focused)
}

// glfwKeyToKnobKey maps GLFW keys to knob keys.
func glfwKeyToKnobKey(key glfw.Key) knob.Key {
	switch key {
	case glfw.KeyLeft:
		return knob.KeyLeft
	case glfw.KeyRight:
		return knob.KeyRight
	case glfw.KeyUp:
		return knob.KeyUp
	case glfw.KeyDown:
		return knob.KeyDown
	default:
		return knob.KeyNone
	}
}

// glfwMouseButtonToKnob maps GLFW mouse buttons to knob mouse buttons.
func glfwMouseButtonToKnob(button glfw.MouseButton) knob.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return knob.MouseButtonLeft
	case glfw.MouseButtonRight:
		return knob.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return knob.MouseButtonMiddle
	default:
		return -1
	}
}
