/*
Package knob provides an immediate-mode rotary knob widget with
linear and logarithmic range mapping, designed as idiomatic Go with a
dedicated Context type.

# Overview

This package implements an immediate-mode widget where the UI is rebuilt
every frame. There is no retained widget tree and no callbacks to manage:
the knob is drawn each frame and returns interaction results directly.

# Quick Start

	// Setup
	renderer, _ := opengl.NewRenderer(800, 600)
	ui := knob.New(renderer, knob.WithStyle(knob.StudioStyle()))

	// Frame loop
	for !window.ShouldClose() {
	    input := pollInput(window)

	    ctx := ui.Begin(input, knob.Vec2{X: 800, Y: 600}, deltaTime)

	    if ctx.Knob("Volume", &volume, 0, 1).Changed {
	        updateVolume(volume)
	    }

	    ui.End()
	    window.SwapBuffers()
	}

# Interaction Reference

	Click+Drag Up    Increase value
	Click+Drag Down  Decrease value
	Ctrl/Shift/Alt   Fine adjustment while dragging (1/5 speed)
	Double-Click     Reset to neutral value (when WithNeutral is set)
	Mouse Wheel      Nudge value by one step (when hovered)
	Arrow Keys       Nudge value by one step (when hovered)

# Widgets

	ctx.Knob(label string, value *float32, min, max float32, opts ...Option) KnobResponse
	    Rotary knob bound to a float32 pointer.

	ctx.KnobFunc(label string, value float32, setValue func(float32), min, max float32, opts ...Option) KnobResponse
	    Setter-based form for values behind accessors.
	    setValue is called at most once per frame.

KnobResponse reports Changed, Dragging, DoubleClicked, Hovered and
Released for the current frame.

# Widget Options Reference

	WithID(id string)               Explicit ID (use in loops)
	WithDisabled(disabled bool)     Disable interaction
	WithKnobSize(size float32)      Knob diameter in pixels
	WithFontSize(size float32)      Label font size
	WithStrokeWidth(width float32)  Wiper line width
	WithKnobColors(colors)          Per-widget color overrides
	WithLabel(pos LabelPosition)    Label placement (Top/Bottom/Left/Right)
	WithLabelOffset(offset float32) Gap between knob and label
	NoLabel()                       Hide label and value text
	WithValueFormat(f)              Custom value formatter
	WithStep(step float32)          Quantize to multiples of step
	WithNeutral(value float32)      Double-click reset target
	WithIndicator(style KnobStyle)  StyleWiper or StyleDot
	OnRelease(f ReleaseFunc)        Callback when a drag ends
	Logarithmic()                   Logarithmic sweep
	WithSmallestFinite(v float32)   Log cutoff near zero (default 1e-6)
	WithLargestFinite(v float32)    Log anchor for infinite bounds (default 1e6)

# Range Mapping

Values map to a normalised [0, 1] position via NormalisedFromValue and
back via ValueFromNormalised. Linear ranges interpolate directly.
Logarithmic ranges interpolate in log10 space; ranges that span zero are
split at a cutoff proportional to the magnitudes on each side, and
infinite bounds are anchored ten decades from the finite end. Inverted
ranges (min > max) work by reflecting the normalised position.

These functions are exported and usable without any GUI at all:

	pos := knob.NormalisedFromValue(250, 10, 1000, knob.MapSpec{Logarithmic: true})
	val := knob.ValueFromNormalised(pos, 10, 1000, knob.MapSpec{Logarithmic: true})

# Performance Optimizations

Built-in optimizations:

  - sync.Pool for DrawList buffer reuse
  - Batched rendering by texture
  - Pre-allocated glyph buffer for text
  - Per-frame text measurement cache
*/
package knob
