package knob

import (
	"fmt"
	"math"
)

// KnobFineDragRatio is the drag speed multiplier applied while a
// fine-adjustment modifier (Ctrl, Shift or Alt) is held.
const KnobFineDragRatio float32 = 0.2

// knobDragSpeed is the default change in normalised position per pixel
// of vertical drag.
const knobDragSpeed float32 = 0.005

// knobRangeOfMotion is the fraction of a full turn the knob sweeps,
// leaving a gap centered at the bottom.
const knobRangeOfMotion float32 = 0.85

// knobNudge is the default normalised increment for mouse wheel and
// arrow keys on knobs without a configured step.
const knobNudge float32 = 0.01

// knobStore is the type-safe store for knob state.
var knobStore = NewFrameStore[KnobState]()

// KnobState holds per-widget drag state persisted between frames.
type KnobState struct {
	Dragging bool

	// Unquantized normalised position accumulated during the drag.
	// Kept separate from the value so stepped knobs don't lose
	// sub-step movement between frames.
	DragPos float32

	// Mouse Y at the previous frame, for per-frame deltas.
	LastMouseY float32
}

// KnobResponse reports what happened to a knob this frame.
type KnobResponse struct {
	Changed       bool // Value was modified this frame
	Dragging      bool // Drag in progress
	DoubleClicked bool // A double-click landed on the widget this frame
	Hovered       bool // Mouse is over the widget rect (body and label)
	Released      bool // A drag ended this frame
}

// Knob draws a rotary knob controlling a float32 value.
// Dragging up increases the value, dragging down decreases it.
// Returns a KnobResponse describing the interaction.
//
// Usage:
//
//	if ctx.Knob("Volume", &volume, 0, 1).Changed {
//	    updateVolume(volume)
//	}
func (ctx *Context) Knob(label string, value *float32, minVal, maxVal float32, opts ...Option) KnobResponse {
	return ctx.KnobFunc(label, *value, func(v float32) { *value = v }, minVal, maxVal, opts...)
}

// KnobFunc is the setter-based form of Knob. The current value is passed
// in and setValue is called at most once per frame with the new value.
// Use this when the value lives behind an accessor rather than a pointer.
func (ctx *Context) KnobFunc(label string, value float32, setValue func(float32), minVal, maxVal float32, opts ...Option) KnobResponse {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	// The working copy is always in range; the caller's value is only
	// written through the setter. NaN passes through untouched.
	if minVal <= maxVal {
		value = clampf(value, minVal, maxVal)
	} else {
		value = clampf(value, maxVal, minVal)
	}

	id := ctx.GetID(label)
	if optID := GetOpt(o, OptID); optID != "" {
		id = ctx.GetID(optID)
	}

	state := knobStore.Get(id, KnobState{})

	// Resolve configuration against the style
	size := GetOpt(o, OptKnobSize)
	if size <= 0 {
		size = ctx.style.KnobSize
	}
	stroke := GetOpt(o, OptStrokeWidth)
	if stroke <= 0 {
		stroke = ctx.style.StrokeWidth
	}
	disabled := GetOpt(o, OptDisabled)
	neutral := GetOpt(o, OptNeutral)
	knobStyle := GetOpt(o, OptKnobStyle)
	onRelease := GetOpt(o, OptOnRelease)

	spec := DefaultMapSpec()
	spec.Logarithmic = GetOpt(o, OptLogarithmic)
	if v := GetOpt(o, OptSmallestFinite); v > 0 {
		spec.SmallestFinite = v
	}
	if v := GetOpt(o, OptLargestFinite); v > 0 {
		spec.LargestFinite = v
	}

	// Normalised quantization step derived from the value-domain step.
	stepNorm := float32(0)
	if step := GetOpt(o, OptStep); step > 0 {
		span := absf(maxVal - minVal)
		if span > 0 && isFinite32(span) {
			stepNorm = step / span
		}
	}

	// Font size override scales the built-in font relative to the style.
	pushedStyle := false
	if fontSize := GetOpt(o, OptFontSize); fontSize > 0 && ctx.style.CharHeight > 0 {
		s := ctx.style
		s.FontScale = fontSize / s.CharHeight
		ctx.PushStyle(s)
		pushedStyle = true
	}

	// Label layout. The knob body is a size x size square; the label
	// (if any) sits beside it per the configured position.
	showLabel := GetOpt(o, OptLabel) && label != ""
	labelPos := GetOpt(o, OptLabelPosition)
	labelOffset := GetOpt(o, OptLabelOffset)
	if labelOffset < 0 {
		labelOffset = ctx.style.LabelOffset
	}
	gap := labelOffset * ctx.lineHeight()

	text := ctx.formatKnobText(label, value, o, showLabel)
	textSize := Vec2{}
	if text != "" {
		textSize = ctx.MeasureText(text)
	}

	knobX, knobY := pos.X, pos.Y
	totalW, totalH := size, size
	if text != "" {
		switch labelPos {
		case LabelTop:
			knobX = pos.X + maxf(0, (textSize.X-size)/2)
			knobY = pos.Y + textSize.Y + gap
			totalW = maxf(size, textSize.X)
			totalH = size + gap + textSize.Y
		case LabelLeft:
			knobX = pos.X + textSize.X + gap
			totalW = textSize.X + gap + size
			totalH = maxf(size, textSize.Y)
		case LabelRight:
			totalW = size + gap + textSize.X
			totalH = maxf(size, textSize.Y)
		default: // LabelBottom
			knobX = pos.X + maxf(0, (textSize.X-size)/2)
			totalW = maxf(size, textSize.X)
			totalH = size + gap + textSize.Y
		}
	}

	rect := Rect{X: knobX, Y: knobY, W: size, H: size}
	// Hover and clicks are sensed over the whole allocated widget rect,
	// label included, not just the knob body.
	hovered := ctx.isHovered(Rect{X: pos.X, Y: pos.Y, W: totalW, H: totalH})

	resp := KnobResponse{Hovered: hovered}

	if !disabled && ctx.Input != nil {
		in := ctx.Input

		if hovered && in.MouseDoubleClicked(MouseButtonLeft) {
			// Double-click takes priority over drag handling; the two
			// never run in the same frame. The neutral reset only
			// applies when a neutral value is configured.
			resp.DoubleClicked = true
			if state.Dragging {
				state.Dragging = false
				ctx.ClearActive()
			}
			if neutral.Set && neutral.Value != value {
				value = neutral.Value
				resp.Changed = true
			}
		} else {
			if hovered && in.MouseClicked(MouseButtonLeft) && !ctx.HasActive() {
				state.Dragging = true
				state.DragPos = NormalisedFromValue(value, minVal, maxVal, spec)
				state.LastMouseY = in.MouseY
				ctx.SetActive(id)
			}

			if state.Dragging && ctx.IsActive(id) {
				if in.FocusLost() || !in.MouseDown(MouseButtonLeft) {
					state.Dragging = false
					ctx.ClearActive()
					resp.Released = true
					if onRelease != nil {
						onRelease(value)
					}
				} else {
					// Upward movement increases the value.
					deltaY := state.LastMouseY - in.MouseY
					state.LastMouseY = in.MouseY

					// One pixel moves one step on stepped knobs;
					// unstepped knobs use the default fine speed.
					speed := knobDragSpeed
					if stepNorm > 0 {
						speed = stepNorm
					}
					if in.FineModifierHeld() {
						speed *= KnobFineDragRatio
					}

					state.DragPos = clampf(state.DragPos+deltaY*speed, 0, 1)
					p := quantizeNorm(state.DragPos, stepNorm)
					newValue := ValueFromNormalised(p, minVal, maxVal, spec)
					if newValue != value {
						value = newValue
						resp.Changed = true
					}
				}
			}

			// Wheel and arrow keys nudge by one step when not dragging.
			if hovered && !state.Dragging {
				nudge := stepNorm
				if nudge <= 0 {
					nudge = knobNudge
				}

				deltaNorm := in.MouseWheelY * nudge
				if in.KeyRepeated(KeyUp) || in.KeyRepeated(KeyRight) {
					deltaNorm += nudge
				}
				if in.KeyRepeated(KeyDown) || in.KeyRepeated(KeyLeft) {
					deltaNorm -= nudge
				}

				if deltaNorm != 0 {
					p := NormalisedFromValue(value, minVal, maxVal, spec)
					p = quantizeNorm(clampf(p+deltaNorm, 0, 1), stepNorm)
					newValue := ValueFromNormalised(p, minVal, maxVal, spec)
					if newValue != value {
						value = newValue
						resp.Changed = true
					}
				}
			}
		}
	}

	resp.Dragging = state.Dragging
	if hovered || state.Dragging {
		ctx.WantCaptureMouse = true
	}

	if resp.Changed && setValue != nil {
		setValue(value)
	}

	ctx.drawKnob(rect, value, minVal, maxVal, spec, state.Dragging, disabled, knobStyle, stroke, o)

	// Draw the label with the updated value
	if text != "" {
		text = ctx.formatKnobText(label, value, o, showLabel)
		textSize = ctx.MeasureText(text)

		var tx, ty float32
		switch labelPos {
		case LabelTop:
			tx = pos.X + maxf(0, (totalW-textSize.X)/2)
			ty = pos.Y
		case LabelLeft:
			tx = pos.X
			ty = knobY + (size-textSize.Y)/2
		case LabelRight:
			tx = knobX + size + gap
			ty = knobY + (size-textSize.Y)/2
		default: // LabelBottom
			tx = pos.X + maxf(0, (totalW-textSize.X)/2)
			ty = knobY + size + gap
		}

		labelColor := ctx.style.KnobLabelColor
		if labelColor == 0 {
			labelColor = ctx.style.TextColor
		}
		if c := GetOpt(o, OptKnobColors); c.Label != 0 {
			labelColor = c.Label
		}
		if disabled {
			labelColor = ctx.style.TextDisabledColor
		}
		ctx.addText(tx, ty, text, labelColor)
	}

	if pushedStyle {
		ctx.PopStyle()
	}

	ctx.advanceCursor(pos, Vec2{X: totalW, Y: totalH})

	return resp
}

// formatKnobText builds the "label: value" display string.
func (ctx *Context) formatKnobText(label string, value float32, o options, showLabel bool) string {
	formatter := GetOpt(o, OptValueFormat)
	if formatter == nil {
		formatter = DefaultValueFormat
	}
	valueText := formatter(value)
	if showLabel {
		return label + ": " + valueText
	}
	if GetOpt(o, OptLabel) {
		return valueText
	}
	return ""
}

// DefaultValueFormat formats values with two decimals, switching to
// scientific notation for small magnitudes.
func DefaultValueFormat(value float32) string {
	if value == 0 || absf(value) > 1e-2 {
		return fmt.Sprintf("%.2f", value)
	}
	return fmt.Sprintf("%+.1e", value)
}

// drawKnob renders the knob body and position indicator.
func (ctx *Context) drawKnob(rect Rect, value, minVal, maxVal float32, spec MapSpec, dragging, disabled bool, style KnobStyle, stroke float32, o options) {
	center := rect.Center()

	// The body grows slightly while dragged.
	radiusFactor := float32(0.5)
	if dragging {
		radiusFactor = 0.55
	}
	radius := rect.W * radiusFactor

	colors := GetOpt(o, OptKnobColors)

	bodyColor := ctx.style.KnobColor
	if dragging {
		bodyColor = ctx.style.KnobDraggingColor
		if colors.Dragging != 0 {
			bodyColor = colors.Dragging
		}
	} else if colors.Body != 0 {
		bodyColor = colors.Body
	}
	if disabled {
		bodyColor = ctx.style.KnobDisabledColor
	}

	indicatorColor := ctx.style.KnobIndicatorColor
	if colors.Indicator != 0 {
		indicatorColor = colors.Indicator
	}
	if disabled {
		indicatorColor = ctx.style.TextDisabledColor
	}

	ctx.DrawList.AddCircleFilled(center.X, center.Y, radius, bodyColor)
	ctx.DrawList.AddCircle(center.X, center.Y, radius, ctx.style.KnobOutlineColor, 1)

	// Indicator angle: the sweep leaves a gap centered at the bottom.
	// In screen coordinates a quarter turn points straight down.
	t := NormalisedFromValue(value, minVal, maxVal, spec)
	if isNaN32(t) {
		t = 0.5
	}
	turns := float64(0.25 + (1-knobRangeOfMotion)/2 + clampf(t, 0, 1)*knobRangeOfMotion)
	angle := turns * 2 * math.Pi
	sin, cos := math.Sincos(angle)
	dirX, dirY := float32(cos), float32(sin)

	switch style {
	case StyleDot:
		dotRadius := radius * 0.15
		dx := center.X + dirX*radius*0.75
		dy := center.Y + dirY*radius*0.75
		ctx.DrawList.AddCircleFilled(dx, dy, dotRadius, indicatorColor)
	default: // StyleWiper
		ctx.DrawList.AddLine(center.X, center.Y, center.X+dirX*radius, center.Y+dirY*radius, indicatorColor, stroke)
	}
}

// quantizeNorm snaps a normalised position to multiples of step.
// A step of 0 leaves the position unchanged. Snapping is done in
// float32, so positions land within rounding error of exact multiples.
func quantizeNorm(p, step float32) float32 {
	if step <= 0 {
		return p
	}
	q := float32(math.Round(float64(p/step))) * step
	return clampf(q, 0, 1)
}

// GetKnobState returns a pointer to the knob's state for advanced
// manipulation. Returns nil if the knob hasn't been rendered yet.
// IDs depend on the call order within a frame, so this must be called
// at the same position in the frame as the knob itself (and consumes
// that position's ID).
func GetKnobState(ctx *Context, label string) *KnobState {
	id := ctx.GetID(label)
	return knobStore.GetIfExists(id)
}
