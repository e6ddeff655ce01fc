package scrollview

// Renderer draws a finished frame of overlay quads.
type Renderer interface {
	Render(dl *DrawList) error
	Resize(width, height int)
}

// Scroller receives wheel input. ScrollNode implements it.
type Scroller interface {
	ScrollBy(dx, dy float32)
}

// ScrollbarSide selects which edge the vertical scrollbar is placed on.
type ScrollbarSide uint8

const (
	SideRight ScrollbarSide = iota // Default
	SideLeft
)

// Part identifies what a pointer is over.
type Part uint8

const (
	PartNone Part = iota
	PartTrack
	PartThumb
)

// Hit is the result of a hit test against the scrollbars.
type Hit struct {
	Axis Axis
	Part Part
}

// Overlay places an engine's thumbs over a viewport rectangle, draws them,
// and routes raw pointer and wheel input back into the engine.
//
// A host forwards its window events to PointerMove, PointerDown, PointerUp,
// PointerLeave and Wheel, and calls Draw or Render once per frame.
type Overlay struct {
	engine *Engine
	pan    *PanRecognizer
	wheel  Scroller

	style     Style
	side      ScrollbarSide
	wheelStep float32
	viewport  Rect

	inside bool
	hover  Hit
}

// NewOverlay creates an overlay for engine. Thumb presses go to pan, which
// is attached to the engine here; wheel input goes to wheel when it is not
// nil.
func NewOverlay(engine *Engine, pan *PanRecognizer, wheel Scroller) *Overlay {
	if pan == nil {
		pan = NewPanRecognizer()
	}
	pan.Attach(engine)
	return &Overlay{
		engine:    engine,
		pan:       pan,
		wheel:     wheel,
		style:     DefaultStyle(),
		wheelStep: DefaultWheelStep,
	}
}

// SetStyle sets the colors and sizes used by Draw.
func (o *Overlay) SetStyle(s Style) { o.style = s }

// Style returns the current style.
func (o *Overlay) Style() Style { return o.style }

// SetSide places the vertical scrollbar on the left or right edge.
func (o *Overlay) SetSide(side ScrollbarSide) { o.side = side }

// SetWheelStep sets how many pixels one wheel notch scrolls.
func (o *Overlay) SetWheelStep(px float32) {
	if px > 0 {
		o.wheelStep = px
	}
}

// SetViewport sets the screen rectangle the thumbs are drawn over.
func (o *Overlay) SetViewport(r Rect) { o.viewport = r }

// Viewport returns the screen rectangle of the scroll container.
func (o *Overlay) Viewport() Rect { return o.viewport }

// Hover returns what the pointer was over at the last PointerMove.
func (o *Overlay) Hover() Hit { return o.hover }

// TrackRect returns the screen rectangle of the track of axis.
func (o *Overlay) TrackRect(axis Axis) Rect {
	vp, size, inset := o.viewport, o.style.ScrollbarSize, o.style.Inset
	if axis == Horizontal {
		return Rect{X: vp.X, Y: vp.Y + vp.H - size - inset, W: vp.W, H: size}
	}
	x := vp.X + vp.W - size - inset
	if o.side == SideLeft {
		x = vp.X + inset
	}
	return Rect{X: x, Y: vp.Y, W: size, H: vp.H}
}

// ThumbRect returns the screen rectangle of the thumb of axis.
func (o *Overlay) ThumbRect(axis Axis) Rect {
	track := o.TrackRect(axis)
	th := o.engine.Thumb(axis)
	if axis == Horizontal {
		return Rect{X: track.X + th.Offset, Y: track.Y, W: th.Size, H: track.H}
	}
	return Rect{X: track.X, Y: track.Y + th.Offset, W: track.W, H: th.Size}
}

// HitTest reports which visible thumb or track contains p.
func (o *Overlay) HitTest(p Vec2) Hit {
	for _, axis := range Axes {
		if o.engine.Thumb(axis).Hidden {
			continue
		}
		if o.ThumbRect(axis).Contains(p) {
			return Hit{Axis: axis, Part: PartThumb}
		}
		if o.TrackRect(axis).Contains(p) {
			return Hit{Axis: axis, Part: PartTrack}
		}
	}
	return Hit{}
}

// PointerMove updates hover state and feeds any tracked thumb gesture.
func (o *Overlay) PointerMove(p Vec2) {
	inside := o.viewport.Contains(p)
	switch {
	case inside && !o.inside:
		o.engine.OnHoverEnter()
	case !inside && o.inside:
		o.engine.OnHoverLeave()
	}
	o.inside = inside
	o.hover = o.HitTest(p)

	if o.pan.Tracking() {
		o.pan.Move(PointerEvent{X: p.X, Y: p.Y})
	}
}

// PointerLeave is called when the pointer leaves the host window.
func (o *Overlay) PointerLeave() {
	if o.inside {
		o.engine.OnHoverLeave()
	}
	o.inside = false
	o.hover = Hit{}
}

// PointerDown starts a thumb gesture or a track click at p. It reports
// whether the press landed on a scrollbar.
func (o *Overlay) PointerDown(p Vec2) bool {
	hit := o.HitTest(p)
	ev := PointerEvent{X: p.X, Y: p.Y}
	switch hit.Part {
	case PartThumb:
		o.pan.Down(hit.Axis, ev)
	case PartTrack:
		track := o.TrackRect(hit.Axis)
		start := track.Y
		if hit.Axis == Horizontal {
			start = track.X
		}
		o.engine.OnTrackPointerDown(hit.Axis, ev.Coord(hit.Axis)-start, ev)
	default:
		return false
	}
	return true
}

// PointerUp ends a tracked thumb gesture.
func (o *Overlay) PointerUp(p Vec2) {
	o.pan.Up(PointerEvent{X: p.X, Y: p.Y})
}

// Wheel scrolls by whole notches. Positive values move toward the end of
// the content (down, right).
func (o *Overlay) Wheel(notchesX, notchesY float32) {
	if o.wheel == nil {
		return
	}
	o.wheel.ScrollBy(notchesX*o.wheelStep, notchesY*o.wheelStep)
}

// Draw appends the visible tracks and thumbs to dl, clipped to the
// viewport.
func (o *Overlay) Draw(dl *DrawList) {
	dl.PushClipRect(o.viewport)
	defer dl.PopClipRect()

	for _, axis := range Axes {
		th := o.engine.Thumb(axis)
		if th.Hidden {
			continue
		}
		if o.style.TrackColor != 0 {
			dl.AddRect(o.TrackRect(axis), o.style.TrackColor)
		}
		hovered := o.hover == Hit{Axis: axis, Part: PartThumb}
		active := o.engine.Dragging() && o.engine.drag.State().Axis == axis
		dl.AddRect(o.ThumbRect(axis), o.style.thumbColor(hovered, active))
	}
}

// Render draws one frame through r using a pooled draw list.
func (o *Overlay) Render(r Renderer) error {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	o.Draw(dl)
	dl.Finalize()
	return r.Render(dl)
}
