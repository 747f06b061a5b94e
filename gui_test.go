package knob_test

import (
	"testing"

	"github.com/elisedemarie/knob"
)

// mockRenderer is a test renderer that doesn't render anything.
type mockRenderer struct {
	renderCalls int
}

func (m *mockRenderer) Render(dl *knob.DrawList) error {
	m.renderCalls++
	return nil
}

func (m *mockRenderer) FontTextureID() uint32 {
	return 1
}

func (m *mockRenderer) Resize(width, height int) {}

func TestGUIBasicUsage(t *testing.T) {
	renderer := &mockRenderer{}
	ui := knob.New(renderer, knob.WithStyle(knob.StudioStyle()))

	input := knob.NewInputState()
	displaySize := knob.Vec2{X: 1920, Y: 1080}

	// Begin frame
	ctx := ui.Begin(input, displaySize, 0.016)
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}

	// Draw some widgets
	ctx.Text("Hello World")
	value := float32(0.5)
	ctx.Knob("Volume", &value, 0, 1)

	// End frame
	err := ui.End()
	if err != nil {
		t.Fatalf("End() returned error: %v", err)
	}

	if renderer.renderCalls != 1 {
		t.Errorf("expected 1 render call, got %d", renderer.renderCalls)
	}
}

func TestKnobWithoutInput(t *testing.T) {
	renderer := &mockRenderer{}
	ui := knob.New(renderer)
	input := knob.NewInputState()

	ctx := ui.Begin(input, knob.Vec2{X: 800, Y: 600}, 0.016)

	value := float32(50)
	resp := ctx.Knob("Gain", &value, 0, 100)
	if resp.Changed {
		t.Error("knob should not change without mouse input")
	}
	if value != 50 {
		t.Errorf("value should be untouched, got %v", value)
	}

	_ = ui.End()
}

func TestDrawListPool(t *testing.T) {
	// Test that DrawList pooling works correctly
	dl1 := knob.AcquireDrawList()
	if dl1 == nil {
		t.Fatal("expected non-nil DrawList")
	}

	// Add some content
	dl1.AddRect(0, 0, 100, 100, knob.ColorWhite)

	// Release it
	knob.ReleaseDrawList(dl1)

	// Acquire again - might get same or different list
	dl2 := knob.AcquireDrawList()
	if dl2 == nil {
		t.Fatal("expected non-nil DrawList after release")
	}

	// Should be cleared
	if len(dl2.VtxBuffer) != 0 {
		t.Error("reused DrawList should be cleared")
	}

	knob.ReleaseDrawList(dl2)
}

func TestIDGeneration(t *testing.T) {
	renderer := &mockRenderer{}
	ui := knob.New(renderer)
	input := knob.NewInputState()

	ctx := ui.Begin(input, knob.Vec2{X: 800, Y: 600}, 0.016)

	// Same label should generate different IDs due to counter
	id1 := ctx.GetID("dial")
	id2 := ctx.GetID("dial")

	if id1 == id2 {
		t.Error("same label should generate different IDs due to auto-increment")
	}

	_ = ui.End()
}

func TestPushPopID(t *testing.T) {
	renderer := &mockRenderer{}
	ui := knob.New(renderer)
	input := knob.NewInputState()

	ctx := ui.Begin(input, knob.Vec2{X: 800, Y: 600}, 0.016)

	// Get ID before push
	ctx.PushID("channel1")
	id1 := ctx.GetID("gain")
	ctx.PopID()

	ctx.PushID("channel2")
	id2 := ctx.GetID("gain")
	ctx.PopID()

	// Same label in different sections should have different IDs
	if id1 == id2 {
		t.Error("same label in different sections should have different IDs")
	}

	_ = ui.End()
}

func TestStyles(t *testing.T) {
	// Test that all style constructors work
	styles := []knob.Style{
		knob.DefaultStyle(),
		knob.StudioStyle(),
		knob.LightStyle(),
	}

	for i, style := range styles {
		if style.TextColor == 0 {
			t.Errorf("style %d has zero TextColor", i)
		}
		if style.CharWidth == 0 {
			t.Errorf("style %d has zero CharWidth", i)
		}
		if style.KnobSize == 0 {
			t.Errorf("style %d has zero KnobSize", i)
		}
	}
}

func TestColorFunctions(t *testing.T) {
	// Test RGBA
	c := knob.RGBA(255, 128, 64, 200)
	r, g, b, a := knob.UnpackRGBA(c)
	if r != 255 || g != 128 || b != 64 || a != 200 {
		t.Errorf("RGBA roundtrip failed: got %d,%d,%d,%d", r, g, b, a)
	}

	// Test RGBAf
	c2 := knob.RGBAf(1.0, 0.5, 0.25, 0.8)
	r2, g2, b2, a2 := knob.UnpackRGBA(c2)
	// Allow for rounding
	if r2 != 255 || g2 < 127 || g2 > 128 || b2 < 63 || b2 > 64 || a2 < 203 || a2 > 204 {
		t.Errorf("RGBAf conversion unexpected: got %d,%d,%d,%d", r2, g2, b2, a2)
	}
}

func BenchmarkDrawListAddCircleFilled(b *testing.B) {
	dl := knob.AcquireDrawList()
	defer knob.ReleaseDrawList(dl)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dl.AddCircleFilled(float32(i%100), float32(i%100), 20, knob.ColorWhite)
	}
}

func BenchmarkDrawListAddText(b *testing.B) {
	dl := knob.AcquireDrawList()
	defer knob.ReleaseDrawList(dl)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dl.AddText(0, float32(i%100*10), "Hello World", knob.ColorWhite, 1.0, 7, 13)
	}
}

func BenchmarkFullFrame(b *testing.B) {
	renderer := &mockRenderer{}
	ui := knob.New(renderer)
	input := knob.NewInputState()
	displaySize := knob.Vec2{X: 1920, Y: 1080}

	values := make([]float32, 10)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ctx := ui.Begin(input, displaySize, 0.016)

		ctx.Text("Mixer")
		for j := range values {
			ctx.Knob("Gain", &values[j], -24, 24, knob.WithID(idForChannel(j)))
			ctx.SameLine()
		}

		_ = ui.End()
	}
}

func idForChannel(n int) string {
	return "ch" + string(rune('0'+n))
}
