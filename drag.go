package scrollview

// PanEvent is one step of a pointer pan gesture, as delivered by a gesture
// recognizer. Distance is measured from where the gesture started, not from
// the previous event.
type PanEvent struct {
	IsFirst   bool
	IsFinal   bool
	Distance  Vec2
	Direction Direction
}

// dragHost is the slice of the engine a drag session needs.
type dragHost interface {
	axisState(axis Axis) AxisState
	thumbHidden(axis Axis) bool
	geometry() Geometry
	writePosition(axis Axis, offset float32)
	setDragging(dragging bool)
}

// DragState tracks a thumb drag session.
type DragState struct {
	Active    bool    // A session is in progress
	Axis      Axis    // Axis being dragged
	Reference float32 // Scroll position when the session started
}

// Reset clears the drag state.
func (d *DragState) Reset() {
	d.Active = false
	d.Axis = ""
	d.Reference = 0
}

// DragController turns a stream of pan events on a thumb into absolute
// scroll offsets. It is Idle until a first event arrives on a visible
// thumb, Active until the final event.
type DragController struct {
	host  dragHost
	state DragState
}

func newDragController(host dragHost) *DragController {
	return &DragController{host: host}
}

// State returns a copy of the current session state.
func (d *DragController) State() DragState {
	return d.state
}

// Active reports whether a session is in progress.
func (d *DragController) Active() bool {
	return d.state.Active
}

// Handle processes one pan event for the thumb of axis.
func (d *DragController) Handle(axis Axis, ev PanEvent) {
	if ev.IsFirst {
		// A first event always starts over from the current position, even
		// if the previous gesture never delivered its final event.
		if d.host.thumbHidden(axis) {
			return
		}
		wasActive := d.state.Active
		d.state = DragState{
			Active:    true,
			Axis:      axis,
			Reference: d.host.axisState(axis).Position,
		}
		if !wasActive {
			d.host.setDragging(true)
		}
	}
	if !d.state.Active || d.state.Axis != axis {
		return
	}

	s := d.host.axisState(axis)
	multiplier := d.host.geometry().DragMultiplier(s)
	d.host.writePosition(axis, d.state.Reference+signedDistance(axis, ev)*multiplier)

	if ev.IsFinal {
		d.host.setDragging(false)
		d.state.Reset()
	}
}

// Cancel ends any session without writing a position.
func (d *DragController) Cancel() {
	if !d.state.Active {
		return
	}
	d.host.setDragging(false)
	d.state.Reset()
}

// signedDistance returns the event's travel along axis, positive when the
// gesture moves in the axis' positive direction. A zero distance carries no
// sign.
func signedDistance(axis Axis, ev PanEvent) float32 {
	dist := absf(ev.Distance.Component(axis))
	if dist == 0 {
		return 0
	}
	if ev.Direction == axis.Positive() {
		return dist
	}
	return -dist
}
