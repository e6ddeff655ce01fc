package scrollview

import "math"

// Vec2 represents a 2D vector for positions, deltas, and distances.
type Vec2 struct {
	X, Y float32
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Component returns the vector component along an axis.
func (v Vec2) Component(axis Axis) float32 {
	if axis == Horizontal {
		return v.X
	}
	return v.Y
}

// Size is the payload of a resize observation: the border-box of an
// observed element.
type Size struct {
	Width, Height float32
}

// Extent returns the size along an axis (height for vertical, width for
// horizontal).
func (s Size) Extent(axis Axis) float32 {
	if axis == Horizontal {
		return s.Width
	}
	return s.Height
}

// Offset is a scroll position: the payload of a native-scroll observation
// and the result of Engine.Position.
type Offset struct {
	Top, Left float32
}

// Along returns the offset along an axis.
func (o Offset) Along(axis Axis) float32 {
	if axis == Horizontal {
		return o.Left
	}
	return o.Top
}

// with returns a copy of o with the axis component replaced.
func (o Offset) with(axis Axis, v float32) Offset {
	if axis == Horizontal {
		o.Left = v
	} else {
		o.Top = v
	}
	return o
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Size returns the rectangle's size.
func (r Rect) Size() Size {
	return Size{Width: r.W, Height: r.H}
}

// RGBA creates a packed color from individual components (0-255).
// Packed as 0xAABBGGRR for OpenGL compatibility.
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// UnpackRGBA extracts RGBA components from a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// maxf returns the maximum of two float32 values.
func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// minf returns the minimum of two float32 values.
func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// finite reports whether v is neither NaN nor an infinity.
func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float32, places int) float32 {
	p := math.Pow(10, float64(places))
	return float32(math.Round(float64(v)*p) / p)
}
