package scrollview

import (
	"time"

	"github.com/rs/zerolog"
)

// ScrollTarget is the real scrollable element the engine drives. It clamps
// offsets to its own valid range, optionally animating over duration, and
// reports the resulting position back through Engine.OnNativeScroll.
// ScrollNode is an in-memory implementation.
type ScrollTarget interface {
	ScrollTo(axis Axis, offset float32, duration time.Duration)
}

// Engine owns the scroll state of one viewport: container and content
// extents plus the current position per axis, and the interaction state
// that decides when thumbs are shown.
//
// Event sources feed the engine through the On* methods; hosts read derived
// thumb geometry with Thumb and observe coalesced changes with Subscribe.
// An Engine is not safe for concurrent use: every method must be called on
// the goroutine that drains its Loop.
type Engine struct {
	target ScrollTarget
	loop   *Loop
	log    zerolog.Logger
	geom   Geometry

	axes       [2]AxisState
	hovered    bool
	visibility ScrollbarVisibility
	animation  time.Duration

	timer    *VisibilityTimer
	notifier *ChangeNotifier
	drag     *DragController
	track    *TrackClickController
	closed   bool
}

// New creates an engine writing to target and scheduling on loop. All
// extents and positions start at 0.
func New(target ScrollTarget, loop *Loop, opts ...Option) *Engine {
	o := applyOptions(opts)
	if loop == nil {
		loop = NewLoop()
	}

	e := &Engine{
		target:     target,
		loop:       loop,
		geom:       Geometry{MinThumbSize: GetOpt(o, OptMinThumbSize)},
		visibility: GetOpt(o, OptVisibility),
		animation:  GetOpt(o, OptAnimation),
	}
	if l := GetOpt(o, OptLogger); l != nil {
		e.log = *l
	} else {
		e.log = defaultLogger()
	}

	e.timer = NewVisibilityTimer(loop, GetOpt(o, OptDelay), func(visible bool) {
		e.log.Debug().Bool("visible", visible).Msg("temporary visibility")
	})
	e.notifier = NewChangeNotifier(loop, e.snapshot)
	e.drag = newDragController(e)
	e.track = newTrackClickController(e, GetOpt(o, OptThumbDispatcher))
	if !HasOpt(o, OptThumbDispatcher) {
		e.log.Debug().Msg("no thumb dispatcher: track clicks jump without starting a drag")
	}
	return e
}

// Loop returns the loop the engine schedules on.
func (e *Engine) Loop() *Loop {
	return e.loop
}

// ScrollTarget returns the element the engine writes positions to. The
// engine does not own it.
func (e *Engine) ScrollTarget() ScrollTarget {
	return e.target
}

// Position returns the current scroll offsets.
func (e *Engine) Position() Offset {
	return Offset{
		Top:  e.axes[Vertical.index()].Position,
		Left: e.axes[Horizontal.index()].Position,
	}
}

// SetPosition scrolls axis to offset, animated over duration when one is
// given (otherwise over the OptAnimation default). An invalid axis is
// reported and leaves everything untouched.
func (e *Engine) SetPosition(axis Axis, offset float32, duration ...time.Duration) error {
	if !axis.Valid() {
		return e.reportAxis("set position", axis)
	}
	if e.closed || e.target == nil {
		return nil
	}
	d := e.animation
	if len(duration) > 0 {
		d = duration[0]
	}
	e.target.ScrollTo(axis, offset, d)
	return nil
}

// SetPercentage scrolls axis to pct of its scrollable range.
func (e *Engine) SetPercentage(axis Axis, pct float32, duration ...time.Duration) error {
	if !axis.Valid() {
		return e.reportAxis("set percentage", axis)
	}
	s := e.axes[axis.index()]
	return e.SetPosition(axis, pct*(s.ContentExtent-s.ContainerExtent), duration...)
}

// State returns the raw state of one axis.
func (e *Engine) State(axis Axis) AxisState {
	if !axis.Valid() {
		return AxisState{}
	}
	return e.axes[axis.index()]
}

// Percentage returns how far along its range axis is scrolled.
func (e *Engine) Percentage(axis Axis) float32 {
	return e.geom.Percentage(e.State(axis))
}

// Thumb returns the render style of the thumb on axis.
func (e *Engine) Thumb(axis Axis) ThumbStyle {
	if !axis.Valid() {
		return ThumbStyle{Hidden: true}
	}
	return e.geom.Thumb(e.axes[axis.index()], e.Interaction())
}

// Geometry returns the geometry the engine derives thumbs with.
func (e *Engine) Geometry() Geometry {
	return e.geom
}

// Interaction returns the shared visibility inputs.
func (e *Engine) Interaction() Interaction {
	return Interaction{
		Hovered:            e.hovered,
		Visibility:         e.visibility,
		Dragging:           e.drag.Active(),
		TemporarilyVisible: e.timer.Visible(),
	}
}

// Dragging reports whether a thumb drag is in progress.
func (e *Engine) Dragging() bool {
	return e.drag.Active()
}

// TemporarilyVisible reports whether the activity window is open.
func (e *Engine) TemporarilyVisible() bool {
	return e.timer.Visible()
}

// Subscribe registers fn for coalesced change notifications and returns a
// function that removes it.
func (e *Engine) Subscribe(fn func(ChangeEvent)) (unsubscribe func()) {
	return e.notifier.Subscribe(fn)
}

// OnContainerResize records a new viewport size.
func (e *Engine) OnContainerResize(size Size) {
	e.update(func(s *AxisState, axis Axis) bool {
		return setIfChanged(&s.ContainerExtent, size.Extent(axis))
	})
}

// OnContentResize records a new content size.
func (e *Engine) OnContentResize(size Size) {
	e.update(func(s *AxisState, axis Axis) bool {
		return setIfChanged(&s.ContentExtent, size.Extent(axis))
	})
}

// OnNativeScroll records the scroll position the target reports.
func (e *Engine) OnNativeScroll(pos Offset) {
	e.update(func(s *AxisState, axis Axis) bool {
		return setIfChanged(&s.Position, pos.Along(axis))
	})
}

// update applies fn to both axes and, when anything changed, opens the
// visibility window and schedules a change notification.
func (e *Engine) update(fn func(s *AxisState, axis Axis) bool) {
	if e.closed {
		return
	}
	changed := false
	for _, axis := range Axes {
		if fn(&e.axes[axis.index()], axis) {
			changed = true
		}
	}
	if changed {
		e.activity()
	}
}

func setIfChanged(field *float32, v float32) bool {
	if *field == v {
		return false
	}
	*field = v
	return true
}

func (e *Engine) activity() {
	e.timer.Notify()
	e.notifier.Schedule()
}

// OnHoverEnter marks the pointer as over the viewport.
func (e *Engine) OnHoverEnter() {
	e.hovered = true
}

// OnHoverLeave marks the pointer as outside the viewport.
func (e *Engine) OnHoverLeave() {
	e.hovered = false
}

// Hovered reports whether the pointer is over the viewport.
func (e *Engine) Hovered() bool {
	return e.hovered
}

// SetVisibility changes the visibility override.
func (e *Engine) SetVisibility(v ScrollbarVisibility) {
	e.visibility = v
}

// OnPan feeds one pan event from the thumb of axis into the drag
// controller.
func (e *Engine) OnPan(axis Axis, ev PanEvent) {
	if e.closed {
		return
	}
	if !axis.Valid() {
		_ = e.reportAxis("pan", axis)
		return
	}
	e.drag.Handle(axis, ev)
}

// OnTrackPointerDown handles a press on the track of axis at coord
// (relative to the track start). The press is re-dispatched to the thumb
// so a drag continues from the new position.
func (e *Engine) OnTrackPointerDown(axis Axis, coord float32, ev PointerEvent) {
	if e.closed {
		return
	}
	if !axis.Valid() {
		_ = e.reportAxis("track click", axis)
		return
	}
	e.track.Handle(axis, coord, ev)
}

// Close cancels the visibility timer and any pending notification. Events
// delivered after Close are ignored.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.drag.Cancel()
	e.closed = true
	e.timer.Close()
	e.notifier.Close()
}

func (e *Engine) reportAxis(op string, axis Axis) error {
	err := &AxisError{Op: op, Axis: axis}
	e.log.Warn().Str("op", op).Str("axis", string(axis)).Msg(ErrInvalidAxis.Error())
	return err
}

func (e *Engine) snapshot() ChangeEvent {
	v, h := e.axes[Vertical.index()], e.axes[Horizontal.index()]
	return ChangeEvent{
		Ref:                     e.target,
		VerticalPosition:        v.Position,
		VerticalPercentage:      e.geom.Percentage(v),
		VerticalSize:            v.ContentExtent,
		VerticalContainerSize:   v.ContainerExtent,
		HorizontalPosition:      h.Position,
		HorizontalPercentage:    e.geom.Percentage(h),
		HorizontalSize:          h.ContentExtent,
		HorizontalContainerSize: h.ContainerExtent,
	}
}

// dragHost implementation.

func (e *Engine) axisState(axis Axis) AxisState { return e.axes[axis.index()] }

func (e *Engine) thumbHidden(axis Axis) bool {
	return e.geom.ThumbHidden(e.axes[axis.index()], e.Interaction())
}

func (e *Engine) geometry() Geometry { return e.geom }

// writePosition is the setter drags and track clicks write through. A write
// that moves the position counts as activity.
func (e *Engine) writePosition(axis Axis, offset float32) {
	if e.target != nil {
		e.target.ScrollTo(axis, offset, 0)
	}
	if offset != e.axes[axis.index()].Position {
		e.activity()
	}
}

func (e *Engine) setDragging(dragging bool) {
	st := e.drag.State()
	e.log.Debug().Bool("dragging", dragging).Str("axis", string(st.Axis)).
		Float32("reference", st.Reference).Msg("thumb drag")
}
