// Command gen renders every knob variant with sample data, captures
// framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"math"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/elisedemarie/knob"
	"github.com/elisedemarie/knob/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single widget screenshot to capture.
type screenshot struct {
	name   string                  // filename without extension
	width  int                     // viewport width
	height int                     // viewport height
	style  knob.Style              // style for this capture
	draw   func(ctx *knob.Context) // widget drawing function
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("knob renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()

	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// Only update the renderer projection — do NOT call window.SetSize because
	// GLFW processes resizes asynchronously, causing framebuffer/scissor mismatches.
	// The hidden window stays at 800×600 (larger than every screenshot).
	renderer.Resize(s.width, s.height)

	// Fresh GUI per screenshot to avoid state leaking between captures.
	ui := knob.New(renderer, knob.WithStyle(s.style))
	input := knob.NewInputState()

	for i := 0; i < 2; i++ {
		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.08, 0.08, 0.09, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		input.Reset()
		displaySize := knob.Vec2{X: float32(s.width), Y: float32(s.height)}
		ctx := ui.Begin(input, displaySize, 1.0/60.0)
		s.draw(ctx)
		if err := ui.End(); err != nil {
			return err
		}
	}

	// Read pixels
	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// buildScreenshots returns the list of all knob screenshots to generate.
func buildScreenshots() []screenshot {
	// Shared state for widgets that need pointers.
	var (
		gain   = float32(6)
		pan    = float32(-0.3)
		volume = float32(80)
		steps  = float32(7)
		freq   = float32(440)
		dot    = float32(0.65)
		off    = float32(0.5)
	)

	dark := knob.DefaultStyle()
	studio := knob.StudioStyle()
	light := knob.LightStyle()

	return []screenshot{
		{
			name: "knob_basic", width: 300, height: 120, style: dark,
			draw: func(ctx *knob.Context) {
				ctx.SetCursorPos(20, 20)
				ctx.Knob("Gain (dB)", &gain, -24, 24)
				ctx.SameLine()
				ctx.Knob("Pan", &pan, -1, 1)
				ctx.SameLine()
				ctx.Knob("Volume", &volume, 0, 100)
			},
		},
		{
			name: "knob_stepped", width: 200, height: 120, style: dark,
			draw: func(ctx *knob.Context) {
				ctx.SetCursorPos(20, 20)
				ctx.Knob("Steps", &steps, 0, 10, knob.WithStep(1))
				ctx.SameLine()
				ctx.Knob("Coarse", &volume, 0, 100, knob.WithStep(25))
			},
		},
		{
			name: "knob_logarithmic", width: 200, height: 120, style: dark,
			draw: func(ctx *knob.Context) {
				ctx.SetCursorPos(20, 20)
				ctx.Knob("Freq (Hz)", &freq, 20, 20000, knob.Logarithmic())
				ctx.SameLine()
				ctx.Knob("Infinite", &freq, 1, float32(math.Inf(1)),
					knob.Logarithmic(), knob.WithLargestFinite(1e4))
			},
		},
		{
			name: "knob_indicators", width: 200, height: 140, style: dark,
			draw: func(ctx *knob.Context) {
				ctx.SetCursorPos(20, 20)
				ctx.Knob("Wiper", &dot, 0, 1, knob.WithIndicator(knob.StyleWiper))
				ctx.SameLine()
				ctx.Knob("Dot", &dot, 0, 1, knob.WithIndicator(knob.StyleDot))
			},
		},
		{
			name: "knob_labels", width: 420, height: 160, style: dark,
			draw: func(ctx *knob.Context) {
				ctx.SetCursorPos(20, 40)
				ctx.Knob("Bottom", &dot, 0, 1)
				ctx.SameLine()
				ctx.Knob("Top", &dot, 0, 1, knob.WithLabel(knob.LabelTop))
				ctx.SameLine()
				ctx.Knob("Left", &dot, 0, 1, knob.WithLabel(knob.LabelLeft))
				ctx.SameLine()
				ctx.Knob("Right", &dot, 0, 1, knob.WithLabel(knob.LabelRight))
				ctx.SameLine()
				ctx.Knob("None", &dot, 0, 1, knob.NoLabel())
			},
		},
		{
			name: "knob_sizes", width: 300, height: 160, style: dark,
			draw: func(ctx *knob.Context) {
				ctx.SetCursorPos(20, 20)
				ctx.Knob("Small", &dot, 0, 1, knob.WithKnobSize(24))
				ctx.SameLine()
				ctx.Knob("Default", &dot, 0, 1)
				ctx.SameLine()
				ctx.Knob("Large", &dot, 0, 1, knob.WithKnobSize(72))
			},
		},
		{
			name: "knob_disabled", width: 160, height: 120, style: dark,
			draw: func(ctx *knob.Context) {
				ctx.SetCursorPos(20, 20)
				ctx.Knob("Active", &off, 0, 1)
				ctx.SameLine()
				ctx.Knob("Disabled", &off, 0, 1, knob.WithDisabled(true))
			},
		},
		{
			name: "knob_custom_colors", width: 160, height: 120, style: dark,
			draw: func(ctx *knob.Context) {
				ctx.SetCursorPos(20, 20)
				ctx.Knob("Ice", &dot, 0, 1,
					knob.WithKnobColors(knob.KnobColors{
						Body:      knob.RGBA(30, 60, 90, 255),
						Indicator: knob.RGBA(120, 200, 255, 255),
					}))
				ctx.SameLine()
				ctx.Knob("Ember", &dot, 0, 1,
					knob.WithKnobColors(knob.KnobColors{
						Body:      knob.RGBA(80, 30, 20, 255),
						Indicator: knob.RGBA(255, 120, 60, 255),
					}))
			},
		},
		{
			name: "style_studio", width: 300, height: 120, style: studio,
			draw: func(ctx *knob.Context) {
				ctx.PanelBackground(knob.Rect{X: 8, Y: 8, W: 284, H: 104})
				ctx.SetCursorPos(20, 20)
				ctx.Knob("Gain", &gain, -24, 24)
				ctx.SameLine()
				ctx.Knob("Pan", &pan, -1, 1)
				ctx.SameLine()
				ctx.Knob("Freq", &freq, 20, 20000, knob.Logarithmic())
			},
		},
		{
			name: "style_light", width: 300, height: 120, style: light,
			draw: func(ctx *knob.Context) {
				ctx.PanelBackground(knob.Rect{X: 8, Y: 8, W: 284, H: 104})
				ctx.SetCursorPos(20, 20)
				ctx.Knob("Gain", &gain, -24, 24)
				ctx.SameLine()
				ctx.Knob("Pan", &pan, -1, 1)
				ctx.SameLine()
				ctx.Knob("Volume", &volume, 0, 100)
			},
		},
	}
}
