package scrollview

// DefaultMinThumbSize is the smallest thumb, in pixels, the geometry
// produces while the container is at least that large.
const DefaultMinThumbSize float32 = 50

// ScrollbarVisibility is the three-state visibility override.
type ScrollbarVisibility int

const (
	ScrollbarAuto   ScrollbarVisibility = iota // Follow hover
	ScrollbarAlways                            // Shown whenever there is something to scroll
	ScrollbarNever                             // Hover never reveals the thumb; activity and drags still do
)

func (v ScrollbarVisibility) String() string {
	switch v {
	case ScrollbarAlways:
		return "always"
	case ScrollbarNever:
		return "never"
	default:
		return "auto"
	}
}

// AxisState holds the raw inputs for one axis. Derived values (percentage,
// thumb size and offset, visibility) are never stored; they are computed
// from this record by Geometry.
type AxisState struct {
	ContainerExtent float32 // Visible viewport size along the axis
	ContentExtent   float32 // Full scrollable content size along the axis
	Position        float32 // Current scroll offset
}

// MaxPosition returns the largest valid scroll offset (never negative).
func (s AxisState) MaxPosition() float32 {
	return maxf(0, s.ContentExtent-s.ContainerExtent)
}

// Interaction is the state shared by both axes that decides visibility.
type Interaction struct {
	Hovered            bool
	Visibility         ScrollbarVisibility
	Dragging           bool
	TemporarilyVisible bool
}

// shown reports whether hover or the override asks for the thumb.
func (in Interaction) shown() bool {
	switch in.Visibility {
	case ScrollbarAlways:
		return true
	case ScrollbarNever:
		return false
	default:
		return in.Hovered
	}
}

// ThumbStyle is the per-axis render output: where the thumb sits along its
// track, how long it is, and whether it is drawn at all.
type ThumbStyle struct {
	Offset float32
	Size   float32
	Hidden bool
}

// Geometry derives thumb geometry from axis state.
// All methods are pure.
type Geometry struct {
	MinThumbSize float32
}

// DefaultGeometry returns the geometry with a 50px minimum thumb.
func DefaultGeometry() Geometry {
	return Geometry{MinThumbSize: DefaultMinThumbSize}
}

// Percentage returns position/(content-container) clamped to [0,1] and
// rounded to four decimal places. When there is nothing to scroll the
// ratio is undefined and the result is 0.
func (Geometry) Percentage(s AxisState) float32 {
	p := s.Position / (s.ContentExtent - s.ContainerExtent)
	if !finite(p) || s.ContentExtent <= s.ContainerExtent {
		return 0
	}
	return roundTo(clampf(p, 0, 1), 4)
}

// ThumbSize returns container²/content clamped to [MinThumbSize, container],
// rounded to the nearest pixel. The minimum wins when the container is
// smaller than it, so the thumb may then exceed the container.
func (g Geometry) ThumbSize(s AxisState) float32 {
	size := s.ContainerExtent * s.ContainerExtent / s.ContentExtent
	if size != size { // NaN: empty container and content
		size = s.ContainerExtent
	}
	size = maxf(minf(size, s.ContainerExtent), g.MinThumbSize)
	return roundTo(size, 0)
}

// ThumbOffset returns the thumb's pixel offset from the start of its track.
func (g Geometry) ThumbOffset(s AxisState) float32 {
	return g.Percentage(s) * (s.ContainerExtent - g.ThumbSize(s))
}

// Scrollable reports whether the content overflows the container by more
// than a pixel of rounding slack.
func (Geometry) Scrollable(s AxisState) bool {
	return s.ContentExtent > s.ContainerExtent+1
}

// ThumbHidden reports whether the thumb should be hidden.
func (g Geometry) ThumbHidden(s AxisState, in Interaction) bool {
	if !g.Scrollable(s) {
		return true
	}
	return !in.shown() && !in.TemporarilyVisible && !in.Dragging
}

// Thumb returns the full render style for one axis.
func (g Geometry) Thumb(s AxisState, in Interaction) ThumbStyle {
	return ThumbStyle{
		Offset: g.ThumbOffset(s),
		Size:   g.ThumbSize(s),
		Hidden: g.ThumbHidden(s, in),
	}
}

// DragMultiplier returns how many content pixels one track pixel moves:
// (content-container)/(container-thumb). A thumb that fills its track has
// no room to move, and the multiplier is 0.
func (g Geometry) DragMultiplier(s AxisState) float32 {
	track := s.ContainerExtent - g.ThumbSize(s)
	if track <= 0 {
		return 0
	}
	m := (s.ContentExtent - s.ContainerExtent) / track
	if !finite(m) {
		return 0
	}
	return m
}

// TrackClickPosition maps a pointer coordinate on the track to the scroll
// offset that centres the thumb under it.
func TrackClickPosition(coord, thumbSize, containerExtent, contentExtent float32) float32 {
	if containerExtent <= 0 {
		return 0
	}
	clickOffset := coord - thumbSize/2
	return clickOffset / containerExtent * contentExtent
}
