package scrollview_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/scrollview"
)

type overlayFixture struct {
	loop    *scrollview.Loop
	node    *scrollview.ScrollNode
	engine  *scrollview.Engine
	pan     *scrollview.PanRecognizer
	overlay *scrollview.Overlay
}

// newOverlayFixture wires a 400x400 viewport over 400x1600 content with
// the default style: the vertical track is x=386..398 and the thumb is
// 100px tall.
func newOverlayFixture(t *testing.T, vis scrollview.ScrollbarVisibility) *overlayFixture {
	t.Helper()
	loop, clock := newTestLoop()
	node := scrollview.NewScrollNode(loop)
	pan := scrollview.NewPanRecognizer()
	e := scrollview.New(node, loop, scrollview.Dispatcher(pan), scrollview.Visibility(vis), quietLogger())
	node.Bind(e)
	node.SetViewportSize(scrollview.Size{Width: 400, Height: 400})
	node.SetContentSize(scrollview.Size{Width: 400, Height: 1600})

	o := scrollview.NewOverlay(e, pan, node)
	o.SetViewport(scrollview.Rect{W: 400, H: 400})
	loop.RunPending()
	// Let the activity window opened by the initial sizes close.
	clock.Advance(time.Hour)
	loop.RunPending()
	return &overlayFixture{loop: loop, node: node, engine: e, pan: pan, overlay: o}
}

func TestOverlayLayout(t *testing.T) {
	f := newOverlayFixture(t, scrollview.ScrollbarAlways)

	assert.Equal(t, scrollview.Rect{X: 386, Y: 0, W: 12, H: 400}, f.overlay.TrackRect(scrollview.Vertical))
	assert.Equal(t, scrollview.Rect{X: 386, Y: 0, W: 12, H: 100}, f.overlay.ThumbRect(scrollview.Vertical))
	assert.Equal(t, scrollview.Rect{X: 0, Y: 386, W: 400, H: 12}, f.overlay.TrackRect(scrollview.Horizontal))

	require.NoError(t, f.engine.SetPercentage(scrollview.Vertical, 1))
	f.loop.RunPending()
	assert.Equal(t, scrollview.Rect{X: 386, Y: 300, W: 12, H: 100}, f.overlay.ThumbRect(scrollview.Vertical))

	f.overlay.SetSide(scrollview.SideLeft)
	assert.Equal(t, float32(2), f.overlay.TrackRect(scrollview.Vertical).X)
}

func TestOverlayHitTest(t *testing.T) {
	f := newOverlayFixture(t, scrollview.ScrollbarAlways)

	tests := []struct {
		name string
		p    scrollview.Vec2
		want scrollview.Hit
	}{
		{"thumb", scrollview.Vec2{X: 390, Y: 50}, scrollview.Hit{Axis: scrollview.Vertical, Part: scrollview.PartThumb}},
		{"track", scrollview.Vec2{X: 390, Y: 300}, scrollview.Hit{Axis: scrollview.Vertical, Part: scrollview.PartTrack}},
		{"content", scrollview.Vec2{X: 100, Y: 100}, scrollview.Hit{}},
		{"hidden horizontal", scrollview.Vec2{X: 100, Y: 390}, scrollview.Hit{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.overlay.HitTest(tt.p))
		})
	}
}

func TestOverlayHiddenThumbIgnoresPress(t *testing.T) {
	f := newOverlayFixture(t, scrollview.ScrollbarAuto)

	assert.Equal(t, scrollview.Hit{}, f.overlay.HitTest(scrollview.Vec2{X: 390, Y: 50}))
	assert.False(t, f.overlay.PointerDown(scrollview.Vec2{X: 390, Y: 50}))
	assert.False(t, f.pan.Tracking())
}

func TestOverlayHover(t *testing.T) {
	f := newOverlayFixture(t, scrollview.ScrollbarAuto)

	f.overlay.PointerMove(scrollview.Vec2{X: 100, Y: 100})
	assert.True(t, f.engine.Hovered())
	assert.False(t, f.engine.Thumb(scrollview.Vertical).Hidden)

	f.overlay.PointerMove(scrollview.Vec2{X: 390, Y: 50})
	assert.Equal(t, scrollview.PartThumb, f.overlay.Hover().Part)

	f.overlay.PointerMove(scrollview.Vec2{X: 500, Y: 50})
	assert.False(t, f.engine.Hovered())
	assert.Equal(t, scrollview.Hit{}, f.overlay.Hover())

	f.overlay.PointerMove(scrollview.Vec2{X: 100, Y: 100})
	f.overlay.PointerLeave()
	assert.False(t, f.engine.Hovered())
}

func TestOverlayThumbDrag(t *testing.T) {
	f := newOverlayFixture(t, scrollview.ScrollbarAlways)

	require.True(t, f.overlay.PointerDown(scrollview.Vec2{X: 390, Y: 50}))
	assert.True(t, f.pan.Tracking())

	f.overlay.PointerMove(scrollview.Vec2{X: 390, Y: 100})
	f.loop.RunPending()
	assert.True(t, f.engine.Dragging())
	assert.Equal(t, float32(200), f.engine.Position().Top)
	assert.Equal(t, float32(200), f.node.Offset().Top)

	// The drag keeps going when the pointer leaves the track.
	f.overlay.PointerMove(scrollview.Vec2{X: 200, Y: 125})
	f.loop.RunPending()
	assert.Equal(t, float32(300), f.engine.Position().Top)

	f.overlay.PointerUp(scrollview.Vec2{X: 200, Y: 125})
	f.loop.RunPending()
	assert.False(t, f.engine.Dragging())
	assert.False(t, f.pan.Tracking())
}

func TestOverlayTrackClick(t *testing.T) {
	f := newOverlayFixture(t, scrollview.ScrollbarAlways)

	require.True(t, f.overlay.PointerDown(scrollview.Vec2{X: 390, Y: 300}))
	f.loop.RunPending()
	assert.Equal(t, float32(1000), f.engine.Position().Top)
	assert.True(t, f.pan.Tracking(), "track press continues as a thumb gesture")

	f.overlay.PointerUp(scrollview.Vec2{X: 390, Y: 300})
	assert.False(t, f.pan.Tracking())
}

func TestOverlayWheel(t *testing.T) {
	f := newOverlayFixture(t, scrollview.ScrollbarAlways)

	f.overlay.Wheel(0, 2)
	f.loop.RunPending()
	assert.Equal(t, float32(60), f.engine.Position().Top)

	f.overlay.SetWheelStep(100)
	f.overlay.Wheel(0, -1)
	f.loop.RunPending()
	assert.Equal(t, float32(0), f.engine.Position().Top)

	f.overlay.SetWheelStep(-5) // ignored
	f.overlay.Wheel(0, 1)
	f.loop.RunPending()
	assert.Equal(t, float32(100), f.engine.Position().Top)
}

func TestOverlayWheelWithoutScroller(t *testing.T) {
	f := newOverlayFixture(t, scrollview.ScrollbarAlways)
	o := scrollview.NewOverlay(f.engine, nil, nil)
	o.Wheel(0, 3)
	f.loop.RunPending()
	assert.Zero(t, f.engine.Position().Top)
}

func TestOverlayDraw(t *testing.T) {
	f := newOverlayFixture(t, scrollview.ScrollbarAlways)
	style := f.overlay.Style()

	dl := scrollview.AcquireDrawList()
	defer scrollview.ReleaseDrawList(dl)
	f.overlay.Draw(dl)
	dl.Finalize()

	require.Len(t, dl.CmdBuffer, 1)
	assert.Equal(t, [4]float32{0, 0, 400, 400}, dl.CmdBuffer[0].ClipRect)
	assert.Equal(t, uint32(12), dl.CmdBuffer[0].ElemCount)
	require.Len(t, dl.VtxBuffer, 8)
	assert.Equal(t, style.TrackColor, dl.VtxBuffer[0].Color)
	assert.Equal(t, style.ThumbColor, dl.VtxBuffer[4].Color)
	assert.Equal(t, [2]float32{386, 0}, dl.VtxBuffer[4].Pos)
	assert.Equal(t, [2]float32{398, 100}, dl.VtxBuffer[6].Pos)
}

func TestOverlayDrawThumbStates(t *testing.T) {
	f := newOverlayFixture(t, scrollview.ScrollbarAlways)
	style := f.overlay.Style()

	thumbColor := func() uint32 {
		dl := scrollview.AcquireDrawList()
		defer scrollview.ReleaseDrawList(dl)
		f.overlay.Draw(dl)
		dl.Finalize()
		require.Len(t, dl.VtxBuffer, 8)
		return dl.VtxBuffer[4].Color
	}

	f.overlay.PointerMove(scrollview.Vec2{X: 390, Y: 50})
	assert.Equal(t, style.ThumbHovered, thumbColor())

	f.overlay.PointerDown(scrollview.Vec2{X: 390, Y: 50})
	f.overlay.PointerMove(scrollview.Vec2{X: 390, Y: 60})
	f.loop.RunPending()
	assert.Equal(t, style.ThumbActive, thumbColor())
}

func TestOverlayDrawHidden(t *testing.T) {
	f := newOverlayFixture(t, scrollview.ScrollbarNever)

	dl := scrollview.AcquireDrawList()
	defer scrollview.ReleaseDrawList(dl)
	f.overlay.Draw(dl)
	dl.Finalize()
	assert.Empty(t, dl.CmdBuffer)
	assert.Empty(t, dl.VtxBuffer)
}

type recordingRenderer struct {
	frames   int
	vertices int
}

func (r *recordingRenderer) Render(dl *scrollview.DrawList) error {
	r.frames++
	r.vertices = len(dl.VtxBuffer)
	return nil
}

func (r *recordingRenderer) Resize(int, int) {}

func TestOverlayRender(t *testing.T) {
	f := newOverlayFixture(t, scrollview.ScrollbarAlways)
	f.overlay.SetStyle(scrollview.Style{ThumbColor: scrollview.ColorWhite, ScrollbarSize: 8})

	r := &recordingRenderer{}
	require.NoError(t, f.overlay.Render(r))
	assert.Equal(t, 1, r.frames)
	assert.Equal(t, 4, r.vertices, "no track color, thumb only")
}
