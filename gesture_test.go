package scrollview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/scrollview"
)

type panCall struct {
	axis scrollview.Axis
	ev   scrollview.PanEvent
}

type panRecorder struct {
	calls []panCall
}

func (r *panRecorder) OnPan(axis scrollview.Axis, ev scrollview.PanEvent) {
	r.calls = append(r.calls, panCall{axis, ev})
}

func TestPanRecognizerGesture(t *testing.T) {
	rec := &panRecorder{}
	p := scrollview.NewPanRecognizer()
	p.Attach(rec)

	p.Down(scrollview.Vertical, scrollview.PointerEvent{X: 395, Y: 100})
	assert.True(t, p.Tracking())
	assert.Equal(t, scrollview.Vertical, p.Axis())

	p.Move(scrollview.PointerEvent{X: 390, Y: 130})
	p.Move(scrollview.PointerEvent{X: 398, Y: 80})
	p.Up(scrollview.PointerEvent{X: 398, Y: 100})

	require.Len(t, rec.calls, 3)
	assert.Equal(t, panCall{scrollview.Vertical, scrollview.PanEvent{
		IsFirst: true, Distance: scrollview.Vec2{X: 5, Y: 30}, Direction: scrollview.DirectionDown,
	}}, rec.calls[0])
	assert.Equal(t, panCall{scrollview.Vertical, scrollview.PanEvent{
		Distance: scrollview.Vec2{X: 3, Y: 20}, Direction: scrollview.DirectionUp,
	}}, rec.calls[1])
	assert.Equal(t, panCall{scrollview.Vertical, scrollview.PanEvent{
		IsFinal: true, Distance: scrollview.Vec2{X: 3}, Direction: scrollview.DirectionNone,
	}}, rec.calls[2])
	assert.False(t, p.Tracking())
	assert.Equal(t, scrollview.Axis(""), p.Axis())
}

func TestPanRecognizerHorizontal(t *testing.T) {
	rec := &panRecorder{}
	p := scrollview.NewPanRecognizer()
	p.Attach(rec)

	p.Down(scrollview.Horizontal, scrollview.PointerEvent{X: 50, Y: 395})
	p.Move(scrollview.PointerEvent{X: 20, Y: 390})
	require.Len(t, rec.calls, 1)
	assert.Equal(t, scrollview.DirectionLeft, rec.calls[0].ev.Direction)
	assert.Equal(t, float32(30), rec.calls[0].ev.Distance.X)
}

func TestPanRecognizerThreshold(t *testing.T) {
	rec := &panRecorder{}
	p := scrollview.NewPanRecognizer()
	p.Threshold = 4
	p.Attach(rec)

	p.Down(scrollview.Vertical, scrollview.PointerEvent{Y: 100})
	p.Move(scrollview.PointerEvent{Y: 103})
	p.Move(scrollview.PointerEvent{X: 50, Y: 97}) // cross-axis travel does not count
	assert.Empty(t, rec.calls)
	assert.False(t, p.Started())

	p.Move(scrollview.PointerEvent{Y: 105})
	require.Len(t, rec.calls, 1)
	assert.True(t, rec.calls[0].ev.IsFirst)
	assert.True(t, p.Started())
}

func TestPanRecognizerTapEmitsNothing(t *testing.T) {
	rec := &panRecorder{}
	p := scrollview.NewPanRecognizer()
	p.Attach(rec)

	p.Down(scrollview.Vertical, scrollview.PointerEvent{Y: 100})
	p.Up(scrollview.PointerEvent{Y: 100})
	assert.Empty(t, rec.calls)

	// Events without a press are ignored.
	p.Move(scrollview.PointerEvent{Y: 200})
	p.Up(scrollview.PointerEvent{Y: 200})
	assert.Empty(t, rec.calls)
}

func TestPanRecognizerSecondPressIgnored(t *testing.T) {
	rec := &panRecorder{}
	p := scrollview.NewPanRecognizer()
	p.Attach(rec)

	p.Down(scrollview.Vertical, scrollview.PointerEvent{Y: 100})
	p.Down(scrollview.Horizontal, scrollview.PointerEvent{X: 10})
	assert.Equal(t, scrollview.Vertical, p.Axis())

	p.Down("", scrollview.PointerEvent{})
	assert.Equal(t, scrollview.Vertical, p.Axis())
}

func TestPanRecognizerCancel(t *testing.T) {
	rec := &panRecorder{}
	p := scrollview.NewPanRecognizer()
	p.Attach(rec)

	p.Down(scrollview.Vertical, scrollview.PointerEvent{Y: 100})
	p.Move(scrollview.PointerEvent{Y: 120})
	p.Cancel()
	require.Len(t, rec.calls, 2)
	assert.True(t, rec.calls[1].ev.IsFinal)
	assert.False(t, p.Tracking())
}

func TestPanRecognizerDrivesEngineFromTrackClick(t *testing.T) {
	loop, _ := newTestLoop()
	node := scrollview.NewScrollNode(loop)
	pan := scrollview.NewPanRecognizer()
	e := scrollview.New(node, loop, scrollview.Dispatcher(pan), scrollview.Visibility(scrollview.ScrollbarAlways), quietLogger())
	pan.Attach(e)
	node.Bind(e)
	node.SetViewportSize(scrollview.Size{Width: 400, Height: 400})
	node.SetContentSize(scrollview.Size{Width: 400, Height: 1600})
	loop.RunPending()

	// Track press at 200: thumb centred there, position 600.
	press := scrollview.PointerEvent{X: 395, Y: 200}
	e.OnTrackPointerDown(scrollview.Vertical, 200, press)
	loop.RunPending()
	require.True(t, pan.Tracking())
	assert.Equal(t, float32(600), e.Position().Top)

	// The same gesture continues as a drag from the new position.
	pan.Move(scrollview.PointerEvent{X: 395, Y: 250})
	loop.RunPending()
	assert.True(t, e.Dragging())
	assert.Equal(t, float32(800), e.Position().Top)

	pan.Up(scrollview.PointerEvent{X: 395, Y: 250})
	loop.RunPending()
	assert.False(t, e.Dragging())
	assert.Equal(t, float32(800), e.Position().Top)
}
