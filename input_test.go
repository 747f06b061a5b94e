package knob

import "testing"

func TestInputState_ClickAndRelease(t *testing.T) {
	in := NewInputState()

	in.SetMouseButton(MouseButtonLeft, true)
	if !in.MouseClicked(MouseButtonLeft) {
		t.Error("expected MouseClicked on press")
	}
	if !in.MouseDown(MouseButtonLeft) {
		t.Error("expected MouseDown on press")
	}

	in.Reset()
	if in.MouseClicked(MouseButtonLeft) {
		t.Error("MouseClicked should clear on Reset")
	}
	if !in.MouseDown(MouseButtonLeft) {
		t.Error("MouseDown should persist across Reset")
	}

	in.SetMouseButton(MouseButtonLeft, false)
	if !in.MouseReleased(MouseButtonLeft) {
		t.Error("expected MouseReleased on release")
	}
}

func TestInputState_DoubleClick(t *testing.T) {
	in := NewInputState()
	in.SetMousePos(100, 100)

	in.SetMouseButton(MouseButtonLeft, true)
	if in.MouseDoubleClicked(MouseButtonLeft) {
		t.Error("first click must not be a double-click")
	}

	in.Reset()
	in.SetMouseButton(MouseButtonLeft, false)
	in.Advance(0.05)

	in.Reset()
	in.SetMouseButton(MouseButtonLeft, true)
	if !in.MouseDoubleClicked(MouseButtonLeft) {
		t.Error("expected double-click within the time window")
	}
}

func TestInputState_DoubleClickTimeout(t *testing.T) {
	in := NewInputState()
	in.SetMousePos(100, 100)

	in.SetMouseButton(MouseButtonLeft, true)
	in.Reset()
	in.SetMouseButton(MouseButtonLeft, false)

	// Wait past the double-click window
	in.Advance(DoubleClickTime + 0.1)

	in.Reset()
	in.SetMouseButton(MouseButtonLeft, true)
	if in.MouseDoubleClicked(MouseButtonLeft) {
		t.Error("clicks separated by more than the window must not double-click")
	}
}

func TestInputState_DoubleClickDistance(t *testing.T) {
	in := NewInputState()

	in.SetMousePos(100, 100)
	in.SetMouseButton(MouseButtonLeft, true)
	in.Reset()
	in.SetMouseButton(MouseButtonLeft, false)
	in.Advance(0.05)

	// Second click too far from the first
	in.Reset()
	in.SetMousePos(150, 100)
	in.SetMouseButton(MouseButtonLeft, true)
	if in.MouseDoubleClicked(MouseButtonLeft) {
		t.Error("clicks far apart must not double-click")
	}
}

func TestInputState_TripleClickStartsFreshSequence(t *testing.T) {
	in := NewInputState()
	in.SetMousePos(100, 100)

	// Click 1 + click 2 = double-click
	in.SetMouseButton(MouseButtonLeft, true)
	in.Reset()
	in.SetMouseButton(MouseButtonLeft, false)
	in.Advance(0.05)
	in.Reset()
	in.SetMouseButton(MouseButtonLeft, true)
	if !in.MouseDoubleClicked(MouseButtonLeft) {
		t.Fatal("expected double-click")
	}

	// Click 3 immediately after must not chain another double-click
	in.Reset()
	in.SetMouseButton(MouseButtonLeft, false)
	in.Advance(0.05)
	in.Reset()
	in.SetMouseButton(MouseButtonLeft, true)
	if in.MouseDoubleClicked(MouseButtonLeft) {
		t.Error("third rapid click must start a fresh sequence")
	}
}

func TestInputState_FocusLoss(t *testing.T) {
	in := NewInputState()

	if !in.WindowFocused() {
		t.Error("window should start focused")
	}
	if in.FocusLost() {
		t.Error("no focus-loss event expected initially")
	}

	in.SetWindowFocused(false)
	if !in.FocusLost() {
		t.Error("expected focus-loss event")
	}
	if in.WindowFocused() {
		t.Error("window should be unfocused")
	}

	in.Reset()
	if in.FocusLost() {
		t.Error("focus-loss event should clear on Reset")
	}

	// Regaining focus is not a loss event
	in.SetWindowFocused(true)
	if in.FocusLost() {
		t.Error("regaining focus must not raise a loss event")
	}
}

func TestInputState_KeyRepeat(t *testing.T) {
	in := NewInputState()

	in.SetKey(KeyUp, true)
	if !in.KeyRepeated(KeyUp) {
		t.Error("expected repeat on initial press")
	}

	// Held but within the repeat delay: no repeat
	in.Reset()
	in.Advance(0.1)
	if in.KeyRepeated(KeyUp) {
		t.Error("no repeat expected before the delay elapses")
	}

	// Held past the delay: repeats
	in.Advance(KeyRepeatDelay)
	if !in.KeyRepeated(KeyUp) {
		t.Error("expected repeat after the delay")
	}
}

func TestInputState_FineModifier(t *testing.T) {
	in := NewInputState()

	if in.FineModifierHeld() {
		t.Error("no modifier held initially")
	}

	for _, set := range []func(*InputState, bool){
		func(s *InputState, v bool) { s.ModCtrl = v },
		func(s *InputState, v bool) { s.ModShift = v },
		func(s *InputState, v bool) { s.ModAlt = v },
	} {
		set(in, true)
		if !in.FineModifierHeld() {
			t.Error("expected fine modifier to register")
		}
		set(in, false)
	}

	// Super is not a fine-adjust modifier
	in.ModSuper = true
	if in.FineModifierHeld() {
		t.Error("Super must not count as a fine modifier")
	}
}
