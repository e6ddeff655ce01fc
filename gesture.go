package scrollview

// PanSink receives pan events for the thumb of an axis. Engine implements
// it.
type PanSink interface {
	OnPan(axis Axis, ev PanEvent)
}

// PanRecognizer turns raw pointer down/move/up events on a thumb into
// PanEvents. A gesture is captured on one axis at pointer down; it starts
// (IsFirst) once the pointer has travelled more than Threshold along that
// axis and ends (IsFinal) on release.
//
// It also implements ThumbDispatcher, so a track press handed to it starts
// a gesture just as a press on the thumb would.
type PanRecognizer struct {
	Threshold float32

	sink     PanSink
	axis     Axis
	origin   Vec2
	tracking bool
	started  bool
}

// NewPanRecognizer creates a recognizer with a zero threshold. Attach a
// sink before feeding it events.
func NewPanRecognizer() *PanRecognizer {
	return &PanRecognizer{}
}

// Attach sets where recognized pan events go.
func (p *PanRecognizer) Attach(sink PanSink) {
	p.sink = sink
}

// Tracking reports whether a pointer is down on a thumb.
func (p *PanRecognizer) Tracking() bool {
	return p.tracking
}

// Started reports whether the current gesture has emitted its first event.
func (p *PanRecognizer) Started() bool {
	return p.started
}

// Axis returns the captured axis, or "" when idle.
func (p *PanRecognizer) Axis() Axis {
	return p.axis
}

// Down captures a gesture on the thumb of axis. A press while another
// gesture is tracked is ignored.
func (p *PanRecognizer) Down(axis Axis, ev PointerEvent) {
	if p.tracking || !axis.Valid() {
		return
	}
	p.axis = axis
	p.origin = Vec2{X: ev.X, Y: ev.Y}
	p.tracking = true
	p.started = false
}

// DispatchToThumb implements ThumbDispatcher.
func (p *PanRecognizer) DispatchToThumb(axis Axis, ev PointerEvent) {
	p.Down(axis, ev)
}

// Move reports pointer motion while a gesture is tracked.
func (p *PanRecognizer) Move(ev PointerEvent) {
	if !p.tracking {
		return
	}
	pe := p.event(ev)
	if !p.started {
		if absf(pe.Distance.Component(p.axis)) <= p.Threshold {
			return
		}
		p.started = true
		pe.IsFirst = true
	}
	p.emit(pe)
}

// Up ends the tracked gesture. A gesture that never started emits nothing.
func (p *PanRecognizer) Up(ev PointerEvent) {
	if !p.tracking {
		return
	}
	if p.started {
		pe := p.event(ev)
		pe.IsFinal = true
		p.emit(pe)
	}
	p.reset()
}

// Cancel drops the tracked gesture. A started gesture is finished at zero
// distance so the receiver leaves its drag state.
func (p *PanRecognizer) Cancel() {
	if p.tracking && p.started {
		p.emit(PanEvent{IsFinal: true})
	}
	p.reset()
}

func (p *PanRecognizer) reset() {
	p.axis = ""
	p.tracking = false
	p.started = false
}

// event measures ev against the gesture origin. Distance is unsigned; the
// sign along the captured axis is carried by Direction.
func (p *PanRecognizer) event(ev PointerEvent) PanEvent {
	d := Vec2{X: ev.X, Y: ev.Y}.Sub(p.origin)
	along := d.Component(p.axis)

	dir := DirectionNone
	switch {
	case along > 0:
		dir = p.axis.Positive()
	case along < 0:
		dir = p.axis.Negative()
	}
	return PanEvent{
		Distance:  Vec2{X: absf(d.X), Y: absf(d.Y)},
		Direction: dir,
	}
}

func (p *PanRecognizer) emit(ev PanEvent) {
	if p.sink != nil {
		p.sink.OnPan(p.axis, ev)
	}
}
