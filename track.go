package scrollview

// PointerEvent is a pointer press in viewport coordinates.
type PointerEvent struct {
	X, Y float32
}

// Coord returns the pointer coordinate along axis.
func (p PointerEvent) Coord(axis Axis) float32 {
	if axis == Horizontal {
		return p.X
	}
	return p.Y
}

// ThumbDispatcher re-targets a pointer press onto a thumb so that a pan
// gesture starts there. PanRecognizer implements it.
type ThumbDispatcher interface {
	DispatchToThumb(axis Axis, ev PointerEvent)
}

// ThumbDispatcherFunc adapts a function to ThumbDispatcher.
type ThumbDispatcherFunc func(axis Axis, ev PointerEvent)

// DispatchToThumb calls f.
func (f ThumbDispatcherFunc) DispatchToThumb(axis Axis, ev PointerEvent) {
	f(axis, ev)
}

// TrackClickController jumps the thumb to a pointer press on the track and
// hands the press on to the thumb so the gesture continues as a drag.
type TrackClickController struct {
	host       dragHost
	dispatcher ThumbDispatcher
}

func newTrackClickController(host dragHost, dispatcher ThumbDispatcher) *TrackClickController {
	return &TrackClickController{host: host, dispatcher: dispatcher}
}

// Handle processes a press at coord (track-relative, along axis). It does
// nothing while the thumb is hidden.
func (t *TrackClickController) Handle(axis Axis, coord float32, ev PointerEvent) {
	if t.host.thumbHidden(axis) {
		return
	}
	s := t.host.axisState(axis)
	thumb := t.host.geometry().ThumbSize(s)
	t.host.writePosition(axis, TrackClickPosition(coord, thumb, s.ContainerExtent, s.ContentExtent))

	if t.dispatcher != nil {
		t.dispatcher.DispatchToThumb(axis, ev)
	}
}
