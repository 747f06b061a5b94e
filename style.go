package knob

// Spacing constants for consistent layout.
// Use these instead of raw numbers for maintainability.
const (
	SpaceNone float32 = 0
	SpaceXS   float32 = 2  // Extra small
	SpaceSM   float32 = 4  // Small (default item spacing)
	SpaceMD   float32 = 8  // Medium (default padding)
	SpaceLG   float32 = 12 // Large
	SpaceXL   float32 = 16 // Extra large
)

// Style defines the visual appearance of UI elements.
type Style struct {
	// Text colors
	TextColor         uint32
	TextDisabledColor uint32

	// Knob colors
	KnobColor          uint32 // Body fill
	KnobDraggingColor  uint32 // Body fill while dragging
	KnobDisabledColor  uint32 // Body fill when disabled
	KnobIndicatorColor uint32 // Wiper line / dot
	KnobOutlineColor   uint32 // Body outline stroke
	KnobLabelColor     uint32 // Label text (0 = use TextColor)

	// Panel background for demo windows
	PanelColor       uint32
	PanelBorderColor uint32

	// Font
	FontName string // Font name for use with a FontProvider

	// Sizing
	FontScale   float32
	CharWidth   float32
	CharHeight  float32
	ItemSpacing float32 // Default gap between items

	// Knob sizing defaults (per-widget options override these)
	KnobSize    float32 // Diameter in pixels
	StrokeWidth float32 // Indicator stroke width
	LabelOffset float32 // Gap between knob and label
}

// DefaultStyle returns the default style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		// Text colors
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,

		// Knob
		KnobColor:          RGBA(60, 60, 65, 255),
		KnobDraggingColor:  RGBA(80, 80, 90, 255),
		KnobDisabledColor:  RGBA(40, 40, 42, 255),
		KnobIndicatorColor: RGBA(220, 220, 220, 255),
		KnobOutlineColor:   RGBA(110, 110, 120, 255),
		KnobLabelColor:     0, // Use TextColor

		// Panel
		PanelColor:       RGBA(20, 20, 20, 200),
		PanelBorderColor: RGBA(80, 80, 80, 255),

		// Sizing
		FontScale:   1.0,
		CharWidth:   FontGlyphWidth,
		CharHeight:  FontGlyphHeight,
		ItemSpacing: 4,

		KnobSize:    40,
		StrokeWidth: 2,
		LabelOffset: 1,
	}
}

// StudioStyle returns a dark theme with amber indicators,
// reminiscent of hardware mixing consoles.
func StudioStyle() Style {
	s := DefaultStyle()
	s.KnobColor = RGBA(35, 35, 38, 255)
	s.KnobDraggingColor = RGBA(50, 50, 55, 255)
	s.KnobIndicatorColor = RGBA(255, 180, 40, 255) // Amber wiper
	s.KnobOutlineColor = RGBA(90, 90, 95, 255)
	s.PanelColor = RGBA(15, 15, 17, 240)
	s.ItemSpacing = 6
	return s
}

// LightStyle returns a light theme.
func LightStyle() Style {
	s := DefaultStyle()
	s.TextColor = RGBA(20, 20, 20, 255)
	s.TextDisabledColor = RGBA(150, 150, 150, 255)
	s.KnobColor = RGBA(210, 210, 215, 255)
	s.KnobDraggingColor = RGBA(190, 190, 200, 255)
	s.KnobDisabledColor = RGBA(230, 230, 230, 255)
	s.KnobIndicatorColor = RGBA(40, 40, 40, 255)
	s.KnobOutlineColor = RGBA(150, 150, 155, 255)
	s.PanelColor = RGBA(245, 245, 245, 250)
	s.PanelBorderColor = RGBA(200, 200, 200, 255)
	return s
}
