package scrollview

// Axis is one of the two independent scroll dimensions.
// It is a string so that axis names coming from configuration or a host
// binding can be passed straight through; anything other than Vertical or
// Horizontal is rejected with ErrInvalidAxis.
type Axis string

const (
	Vertical   Axis = "vertical"
	Horizontal Axis = "horizontal"
)

// Axes lists both axes in a fixed order (vertical first).
var Axes = [2]Axis{Vertical, Horizontal}

// Valid reports whether a is Vertical or Horizontal.
func (a Axis) Valid() bool {
	return a == Vertical || a == Horizontal
}

// Positive returns the physical direction that increases the scroll offset
// along this axis: down for vertical, right for horizontal.
func (a Axis) Positive() Direction {
	if a == Horizontal {
		return DirectionRight
	}
	return DirectionDown
}

// Negative returns the direction that decreases the scroll offset.
func (a Axis) Negative() Direction {
	if a == Horizontal {
		return DirectionLeft
	}
	return DirectionUp
}

func (a Axis) String() string { return string(a) }

// index maps a valid axis to its slot in per-axis arrays.
func (a Axis) index() int {
	if a == Horizontal {
		return 1
	}
	return 0
}

// ParseAxis converts a name to an Axis.
func ParseAxis(name string) (Axis, error) {
	a := Axis(name)
	if !a.Valid() {
		return "", &AxisError{Op: "parse", Axis: a}
	}
	return a, nil
}

// Direction is the physical direction a pan gesture reports.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "none"
	}
}
