package knob

// Option configures a UI widget.
type Option func(*options)

// options holds all widget configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for widget options.
// All options (built-in and custom) use this system for consistency.
//
// Example:
//
//	// Define option keys (built-in ones are already defined below)
//	var OptCustomThing = knob.NewOptKey("customThing", defaultValue)
//
//	// Set options
//	ctx.Knob("gain", &gain, 0, 1, knob.WithOpt(OptCustomThing, value))
//
//	// Read in widget implementation
//	value := knob.GetOpt(opts, OptCustomThing)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
// Use this in external packages to create custom widgets.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// ApplyAndCheck returns the option value and whether it was explicitly set.
func ApplyAndCheck[T any](opts []Option, key OptKey[T]) (T, bool) {
	o := applyOptions(opts)
	return GetOpt(o, key), HasOpt(o, key)
}

// =============================================================================
// Built-in Option Keys
// =============================================================================

// LabelPosition controls where the knob's label is drawn relative to the body.
type LabelPosition int

const (
	LabelBottom LabelPosition = iota // Below the knob (default)
	LabelTop                         // Above the knob
	LabelLeft                        // Left of the knob, vertically centered
	LabelRight                       // Right of the knob, vertically centered
)

// KnobStyle selects how the current position is indicated on the knob body.
type KnobStyle int

const (
	StyleWiper KnobStyle = iota // Line from center to the rim (default)
	StyleDot                    // Dot near the rim
)

// KnobColors overrides the style's knob colors for a single widget.
// Zero fields fall back to the active Style.
type KnobColors struct {
	Body      uint32 // Body fill
	Dragging  uint32 // Body fill while dragging
	Indicator uint32 // Wiper line / dot
	Label     uint32 // Label and value text
}

// NeutralValue holds an optional neutral (double-click reset) value.
type NeutralValue struct {
	Value float32
	Set   bool
}

// ValueFormatter converts a value to its display string.
type ValueFormatter func(value float32) string

// ReleaseFunc is called with the final value when a drag ends.
type ReleaseFunc func(value float32)

// --- Core Options ---
var (
	OptID       = NewOptKey("id", "")
	OptDisabled = NewOptKey("disabled", false)
)

// --- Knob Options ---
var (
	OptKnobSize       = NewOptKey[float32]("knobSize", 0)    // Diameter (0 = style default)
	OptFontSize       = NewOptKey[float32]("fontSize", 0)    // Label font size (0 = style default)
	OptStrokeWidth    = NewOptKey[float32]("strokeWidth", 0) // Indicator stroke (0 = style default)
	OptKnobColors     = NewOptKey("knobColors", KnobColors{})
	OptLabel          = NewOptKey("label", true) // Show the label at all
	OptLabelPosition  = NewOptKey("labelPosition", LabelBottom)
	OptLabelOffset    = NewOptKey[float32]("labelOffset", -1) // Gap multiplier (-1 = style default)
	OptValueFormat    = NewOptKey[ValueFormatter]("valueFormat", nil)
	OptStep           = NewOptKey[float32]("step", 0) // Value-domain step (0 = default fraction)
	OptNeutral        = NewOptKey("neutral", NeutralValue{})
	OptKnobStyle      = NewOptKey("knobStyle", StyleWiper)
	OptOnRelease      = NewOptKey[ReleaseFunc]("onRelease", nil)
	OptLogarithmic    = NewOptKey("logarithmic", false)
	OptSmallestFinite = NewOptKey[float32]("smallestFinite", 0) // 0 = default 1e-6
	OptLargestFinite  = NewOptKey[float32]("largestFinite", 0)  // 0 = default 1e6
)

// =============================================================================
// Convenience Option Functions (wrap WithOpt for common cases)
// =============================================================================

// WithID sets an explicit ID for the widget.
func WithID(id string) Option { return WithOpt(OptID, id) }

// WithDisabled disables the widget (grayed out, no interaction).
func WithDisabled(disabled bool) Option { return WithOpt(OptDisabled, disabled) }

// WithKnobSize sets the knob diameter in pixels.
func WithKnobSize(size float32) Option { return WithOpt(OptKnobSize, size) }

// WithFontSize sets the label font size in pixels.
func WithFontSize(size float32) Option { return WithOpt(OptFontSize, size) }

// WithStrokeWidth sets the width of the wiper line.
func WithStrokeWidth(width float32) Option { return WithOpt(OptStrokeWidth, width) }

// WithKnobColors overrides the style's knob colors for this widget.
// Zero fields keep the style's color.
func WithKnobColors(colors KnobColors) Option { return WithOpt(OptKnobColors, colors) }

// NoLabel hides the label and value text entirely.
func NoLabel() Option { return WithOpt(OptLabel, false) }

// WithLabel sets where the label is drawn relative to the knob body.
func WithLabel(pos LabelPosition) Option { return WithOpt(OptLabelPosition, pos) }

// WithLabelOffset sets the gap between the knob and its label, as a
// multiple of the font size.
func WithLabelOffset(offset float32) Option { return WithOpt(OptLabelOffset, offset) }

// WithValueFormat sets a custom formatter for the displayed value.
func WithValueFormat(f ValueFormatter) Option { return WithOpt(OptValueFormat, f) }

// WithStep quantizes the value to multiples of step within the range.
// A step of 0 leaves the knob continuous.
func WithStep(step float32) Option { return WithOpt(OptStep, step) }

// WithNeutral sets the value the knob resets to on double-click.
func WithNeutral(value float32) Option {
	return WithOpt(OptNeutral, NeutralValue{Value: value, Set: true})
}

// WithIndicator selects the position indicator style (wiper line or dot).
func WithIndicator(style KnobStyle) Option { return WithOpt(OptKnobStyle, style) }

// OnRelease registers a callback invoked once with the final value when
// a drag ends, either by releasing the mouse or by the window losing focus.
func OnRelease(f ReleaseFunc) Option { return WithOpt(OptOnRelease, f) }

// Logarithmic makes the knob sweep the range logarithmically.
// Ranges that span zero are split at a cutoff proportional to the
// magnitudes on each side.
func Logarithmic() Option { return WithOpt(OptLogarithmic, true) }

// WithSmallestFinite sets the smallest positive value treated as distinct
// from zero on logarithmic knobs whose range touches zero. The magnitude
// of v is used; zero falls back to the default.
func WithSmallestFinite(v float32) Option { return WithOpt(OptSmallestFinite, absf(v)) }

// WithLargestFinite sets the largest finite value used to anchor
// logarithmic knobs with an infinite bound. The magnitude of v is used;
// zero falls back to the default.
func WithLargestFinite(v float32) Option { return WithOpt(OptLargestFinite, absf(v)) }
