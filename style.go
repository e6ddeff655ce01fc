package scrollview

// Color constants (RGBA packed as 0xAABBGGRR for OpenGL compatibility)
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorTransparent uint32 = 0x00000000
)

// Style defines how overlay scrollbars look.
type Style struct {
	// Track behind the thumb (0 = no track drawn)
	TrackColor uint32

	// Thumb colors
	ThumbColor   uint32
	ThumbHovered uint32 // Pointer over the thumb
	ThumbActive  uint32 // Thumb being dragged

	// Sizing
	ScrollbarSize float32 // Thickness across the axis
	Inset         float32 // Gap between the thumb and the viewport edge
}

// DefaultStyle returns a dark translucent style.
func DefaultStyle() Style {
	return Style{
		TrackColor:    RGBA(30, 30, 30, 120),
		ThumbColor:    RGBA(80, 80, 80, 200),
		ThumbHovered:  RGBA(100, 100, 100, 230),
		ThumbActive:   RGBA(140, 140, 140, 255),
		ScrollbarSize: 12,
		Inset:         2,
	}
}

// GTAStyle returns a style with the cyan accents of GTA San Andreas menus.
func GTAStyle() Style {
	return Style{
		TrackColor:    RGBA(20, 20, 20, 160),
		ThumbColor:    RGBA(0, 100, 150, 255),
		ThumbHovered:  RGBA(0, 150, 200, 255),
		ThumbActive:   RGBA(255, 200, 0, 255), // GTA yellow
		ScrollbarSize: 14,
		Inset:         2,
	}
}

// LightStyle returns a style for light content.
func LightStyle() Style {
	return Style{
		TrackColor:    RGBA(240, 240, 240, 160),
		ThumbColor:    RGBA(180, 180, 180, 220),
		ThumbHovered:  RGBA(160, 160, 160, 255),
		ThumbActive:   RGBA(140, 140, 140, 255),
		ScrollbarSize: 12,
		Inset:         2,
	}
}

// thumbColor picks the thumb color for its interaction state.
func (s Style) thumbColor(hovered, active bool) uint32 {
	switch {
	case active:
		return s.ThumbActive
	case hovered:
		return s.ThumbHovered
	default:
		return s.ThumbColor
	}
}
