// Example demonstrates a window full of knobs covering the widget's
// features: plain knobs, double-click-to-neutral, steps, logarithmic
// sweeps, custom colors, and the dot indicator.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
package main

import (
	"fmt"
	"math"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/elisedemarie/knob"
	"github.com/elisedemarie/knob/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "knob example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	// Create the renderer (takes initial viewport size) and input adapter.
	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("knob renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)

	ui := knob.New(renderer, knob.WithStyle(knob.StudioStyle()))

	// Application state.
	gain := float32(0.0)
	pan := float32(0.0)
	volume := float32(80)
	steps := float32(3)
	freq := float32(440)
	attack := float32(1e-5)
	release := float32(100)
	inverted := float32(25)
	floor := float32(-20)
	dot := float32(0.5)
	tiny := float32(0.3)
	disabled := float32(0.7)

	// Main loop.
	for !window.ShouldClose() {
		// Clear per-frame input state before PollEvents delivers this
		// frame's callbacks, or click events would be wiped.
		inputAdapter.Update()
		glfw.PollEvents()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.08, 0.08, 0.09, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		displaySize := knob.Vec2{X: float32(w), Y: float32(h)}
		ctx := ui.Begin(inputAdapter.Input(), displaySize, 1.0/60.0)

		ctx.PanelBackground(knob.Rect{X: 20, Y: 20, W: 560, H: 480})

		// Row 1: basic knobs with neutral values and a release callback.
		ctx.SetCursorPos(40, 40)
		ctx.Text("Mixer")
		ctx.Spacing(12)

		ctx.Knob("Gain (dB)", &gain, -24, 24,
			knob.WithNeutral(0),
			knob.OnRelease(func(v float32) { fmt.Printf("gain set to %.1f dB\n", v) }),
		)
		ctx.SameLine()
		ctx.Knob("Pan", &pan, -1, 1, knob.WithNeutral(0))
		ctx.SameLine()
		ctx.Knob("Volume", &volume, 0, 100,
			knob.WithValueFormat(func(v float32) string { return fmt.Sprintf("%.0f%%", v) }),
		)
		ctx.SameLine()
		ctx.Knob("Steps", &steps, 0, 10, knob.WithStep(1))
		ctx.SameLine()
		ctx.Knob("Bypass", &disabled, 0, 1, knob.WithDisabled(true))

		// Row 2: logarithmic sweeps, including ranges that touch zero
		// or extend to infinity.
		ctx.Spacing(24)
		ctx.Text("Synth")
		ctx.Spacing(12)

		ctx.Knob("Freq (Hz)", &freq, 20, 20000,
			knob.Logarithmic(),
			knob.WithNeutral(440),
		)
		ctx.SameLine()
		ctx.Knob("Attack (s)", &attack, 0, 1e-4,
			knob.Logarithmic(),
			knob.WithSmallestFinite(1e-7),
			knob.WithValueFormat(func(v float32) string { return fmt.Sprintf("%.1e", v) }),
		)
		ctx.SameLine()
		ctx.Knob("Release (ms)", &release, 1, float32(math.Inf(1)),
			knob.Logarithmic(),
			knob.WithLargestFinite(1e4),
		)
		ctx.SameLine()
		ctx.Knob("Floor (dB)", &floor, float32(math.Inf(-1)), 10,
			knob.Logarithmic(),
		)
		ctx.SameLine()
		ctx.Knob("Inverted", &inverted, 100, 0)

		// Row 3: appearance options.
		ctx.Spacing(24)
		ctx.Text("Appearance")
		ctx.Spacing(12)

		ctx.Knob("Dot", &dot, 0, 1,
			knob.WithIndicator(knob.StyleDot),
			knob.WithKnobSize(56),
		)
		ctx.SameLine()
		ctx.Knob("Tiny", &tiny, 0, 1, knob.WithKnobSize(24), knob.NoLabel())
		ctx.SameLine()
		ctx.Knob("Custom", &dot, 0, 1,
			knob.WithKnobColors(knob.KnobColors{
				Body:      knob.RGBA(30, 60, 90, 255),
				Indicator: knob.RGBA(120, 200, 255, 255),
			}),
			knob.WithStrokeWidth(3),
		)
		ctx.SameLine()
		ctx.Knob("Top", &dot, 0, 1, knob.WithLabel(knob.LabelTop))
		ctx.SameLine()
		ctx.Knob("Left", &dot, 0, 1, knob.WithLabel(knob.LabelLeft))
		ctx.SameLine()
		ctx.Knob("Right", &dot, 0, 1, knob.WithLabel(knob.LabelRight))

		if err := ui.End(); err != nil {
			return fmt.Errorf("knob render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}
