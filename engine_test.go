package scrollview_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/scrollview"
)

type scrollCall struct {
	axis     scrollview.Axis
	offset   float32
	duration time.Duration
}

// recordingTarget records writes without echoing them back.
type recordingTarget struct {
	calls []scrollCall
}

func (r *recordingTarget) ScrollTo(axis scrollview.Axis, offset float32, duration time.Duration) {
	r.calls = append(r.calls, scrollCall{axis, offset, duration})
}

func (r *recordingTarget) last() scrollCall {
	if len(r.calls) == 0 {
		return scrollCall{}
	}
	return r.calls[len(r.calls)-1]
}

type dispatchCall struct {
	axis scrollview.Axis
	ev   scrollview.PointerEvent
}

type testEngine struct {
	*scrollview.Engine
	target   *recordingTarget
	loop     *scrollview.Loop
	clock    *scrollview.ManualClock
	dispatch []dispatchCall
}

// newTestEngine returns an engine over a 400x400 viewport of 400x1600
// content: thumb 100, drag multiplier 4, vertical only.
func newTestEngine(t *testing.T, opts ...scrollview.Option) *testEngine {
	t.Helper()
	loop, clock := newTestLoop()
	te := &testEngine{target: &recordingTarget{}, loop: loop, clock: clock}
	base := []scrollview.Option{
		scrollview.Logger(zerolog.Nop()),
		scrollview.Dispatcher(scrollview.ThumbDispatcherFunc(func(axis scrollview.Axis, ev scrollview.PointerEvent) {
			te.dispatch = append(te.dispatch, dispatchCall{axis, ev})
		})),
	}
	te.Engine = scrollview.New(te.target, loop, append(base, opts...)...)
	te.OnContainerResize(scrollview.Size{Width: 400, Height: 400})
	te.OnContentResize(scrollview.Size{Width: 400, Height: 1600})
	return te
}

func (te *testEngine) settle() {
	te.clock.Advance(time.Hour)
	te.loop.RunPending()
}

func TestEngineStartsEmpty(t *testing.T) {
	e := scrollview.New(&recordingTarget{}, nil, scrollview.Logger(zerolog.Nop()))
	defer e.Close()
	assert.Equal(t, scrollview.Offset{}, e.Position())
	for _, axis := range scrollview.Axes {
		assert.Equal(t, scrollview.AxisState{}, e.State(axis))
		assert.Equal(t, float32(0), e.Percentage(axis))
		assert.True(t, e.Thumb(axis).Hidden)
	}
	assert.NotNil(t, e.Loop())
}

func TestEnginePercentageExample(t *testing.T) {
	loop, _ := newTestLoop()
	e := scrollview.New(&recordingTarget{}, loop, scrollview.Logger(zerolog.Nop()))
	e.OnContainerResize(scrollview.Size{Width: 100, Height: 200})
	e.OnContentResize(scrollview.Size{Width: 100, Height: 1000})
	e.OnNativeScroll(scrollview.Offset{Top: 400})

	assert.Equal(t, float32(0.5), e.Percentage(scrollview.Vertical))
	assert.Equal(t, scrollview.Offset{Top: 400}, e.Position())
	th := e.Thumb(scrollview.Vertical)
	assert.Equal(t, float32(50), th.Size)
	assert.Equal(t, float32(75), th.Offset)
}

func TestEngineSetPositionWritesThrough(t *testing.T) {
	te := newTestEngine(t, scrollview.WithOpt(scrollview.OptAnimation, 200*time.Millisecond))

	require.NoError(t, te.SetPosition(scrollview.Vertical, 300))
	assert.Equal(t, scrollCall{scrollview.Vertical, 300, 200 * time.Millisecond}, te.target.last())

	require.NoError(t, te.SetPosition(scrollview.Vertical, 100, 0))
	assert.Equal(t, scrollCall{scrollview.Vertical, 100, 0}, te.target.last())

	// The engine only learns the position from the echo.
	assert.Equal(t, float32(0), te.Position().Top)
	te.OnNativeScroll(scrollview.Offset{Top: 100})
	assert.Equal(t, float32(100), te.Position().Top)
	assert.Same(t, te.target, te.ScrollTarget())
}

func TestEngineSetPercentage(t *testing.T) {
	te := newTestEngine(t)
	require.NoError(t, te.SetPercentage(scrollview.Vertical, 0.25))
	assert.Equal(t, float32(300), te.target.last().offset)
}

func TestEngineInvalidAxis(t *testing.T) {
	var buf bytes.Buffer
	te := newTestEngine(t, scrollview.Logger(zerolog.New(&buf).Level(zerolog.WarnLevel)))
	te.OnNativeScroll(scrollview.Offset{Top: 120})
	before := te.State(scrollview.Vertical)
	calls := len(te.target.calls)

	err := te.SetPosition("diagonal", 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, scrollview.ErrInvalidAxis))
	var axisErr *scrollview.AxisError
	require.True(t, errors.As(err, &axisErr))
	assert.Equal(t, scrollview.Axis("diagonal"), axisErr.Axis)

	assert.Equal(t, before, te.State(scrollview.Vertical))
	assert.Equal(t, scrollview.Offset{Top: 120}, te.Position())
	assert.Len(t, te.target.calls, calls)
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"), "reported exactly once")
	assert.Contains(t, buf.String(), `"axis":"diagonal"`)
}

func TestEngineInvalidAxisEvents(t *testing.T) {
	var buf bytes.Buffer
	te := newTestEngine(t, scrollview.Logger(zerolog.New(&buf).Level(zerolog.WarnLevel)))
	te.OnHoverEnter()

	te.OnPan("z", scrollview.PanEvent{IsFirst: true})
	te.OnTrackPointerDown("z", 10, scrollview.PointerEvent{})
	assert.False(t, te.Dragging())
	assert.Empty(t, te.target.calls)
	assert.Empty(t, te.dispatch)
	assert.Equal(t, 2, strings.Count(buf.String(), "\n"))

	_, err := scrollview.ParseAxis("z")
	assert.ErrorIs(t, err, scrollview.ErrInvalidAxis)
	a, err := scrollview.ParseAxis("horizontal")
	require.NoError(t, err)
	assert.Equal(t, scrollview.Horizontal, a)
}

func TestEngineNotifiesOncePerTick(t *testing.T) {
	te := newTestEngine(t)
	te.settle()

	var events []scrollview.ChangeEvent
	te.Subscribe(func(ev scrollview.ChangeEvent) { events = append(events, ev) })

	te.OnContentResize(scrollview.Size{Width: 400, Height: 2000})
	te.OnNativeScroll(scrollview.Offset{Top: 100})
	te.OnNativeScroll(scrollview.Offset{Top: 800})
	te.loop.RunPending()

	require.Len(t, events, 1)
	ev := events[0]
	assert.Equal(t, float32(800), ev.VerticalPosition)
	assert.Equal(t, float32(0.5), ev.VerticalPercentage)
	assert.Equal(t, float32(2000), ev.VerticalSize)
	assert.Equal(t, float32(400), ev.VerticalContainerSize)
	assert.Equal(t, float32(400), ev.HorizontalContainerSize)
	assert.Equal(t, scrollview.ScrollTarget(te.target), ev.Ref)
}

func TestEngineNoChangeNoNotification(t *testing.T) {
	te := newTestEngine(t)
	te.OnNativeScroll(scrollview.Offset{Top: 200})
	te.settle()

	count := 0
	te.Subscribe(func(scrollview.ChangeEvent) { count++ })

	te.OnContainerResize(scrollview.Size{Width: 400, Height: 400})
	te.OnContentResize(scrollview.Size{Width: 400, Height: 1600})
	te.OnNativeScroll(scrollview.Offset{Top: 200})
	te.loop.RunPending()

	assert.Equal(t, 0, count)
	assert.False(t, te.TemporarilyVisible())
}

func TestEngineActivityShowsThumb(t *testing.T) {
	te := newTestEngine(t, scrollview.Delay(500*time.Millisecond))
	assert.True(t, te.TemporarilyVisible(), "resizes count as activity")
	te.settle()
	assert.True(t, te.Thumb(scrollview.Vertical).Hidden)

	te.OnNativeScroll(scrollview.Offset{Top: 10})
	assert.False(t, te.Thumb(scrollview.Vertical).Hidden)

	te.clock.Advance(499 * time.Millisecond)
	te.loop.RunPending()
	assert.False(t, te.Thumb(scrollview.Vertical).Hidden)

	te.clock.Advance(time.Millisecond)
	te.loop.RunPending()
	assert.True(t, te.Thumb(scrollview.Vertical).Hidden)
	assert.True(t, te.Thumb(scrollview.Horizontal).Hidden, "nothing to scroll horizontally")
}

func TestEngineHoverAndOverride(t *testing.T) {
	te := newTestEngine(t)
	te.settle()

	te.OnHoverEnter()
	assert.True(t, te.Hovered())
	assert.False(t, te.Thumb(scrollview.Vertical).Hidden)
	te.OnHoverLeave()
	assert.True(t, te.Thumb(scrollview.Vertical).Hidden)

	te.SetVisibility(scrollview.ScrollbarAlways)
	assert.False(t, te.Thumb(scrollview.Vertical).Hidden)

	te.SetVisibility(scrollview.ScrollbarNever)
	te.OnHoverEnter()
	assert.True(t, te.Thumb(scrollview.Vertical).Hidden)
}

func TestEngineDrag(t *testing.T) {
	te := newTestEngine(t)
	te.OnNativeScroll(scrollview.Offset{Top: 200})
	te.settle()
	te.OnHoverEnter()

	te.OnPan(scrollview.Vertical, scrollview.PanEvent{IsFirst: true})
	require.True(t, te.Dragging())
	assert.Equal(t, float32(200), te.target.last().offset)

	te.OnPan(scrollview.Vertical, scrollview.PanEvent{Distance: scrollview.Vec2{Y: 25}, Direction: scrollview.DirectionDown})
	assert.Equal(t, scrollCall{scrollview.Vertical, 300, 0}, te.target.last())
	te.OnNativeScroll(scrollview.Offset{Top: 300})

	// Distances are cumulative from the start of the gesture.
	te.OnPan(scrollview.Vertical, scrollview.PanEvent{Distance: scrollview.Vec2{Y: 25}, Direction: scrollview.DirectionUp})
	assert.Equal(t, float32(100), te.target.last().offset)

	// The thumb stays visible while dragging even without hover.
	te.OnHoverLeave()
	assert.False(t, te.Thumb(scrollview.Vertical).Hidden)

	te.OnPan(scrollview.Vertical, scrollview.PanEvent{IsFinal: true})
	assert.Equal(t, float32(200), te.target.last().offset, "net-zero drag returns to start")
	assert.False(t, te.Dragging())
}

func TestEngineDragLogsSessionEnd(t *testing.T) {
	var buf bytes.Buffer
	te := newTestEngine(t, scrollview.Logger(zerolog.New(&buf).Level(zerolog.DebugLevel)))
	te.OnNativeScroll(scrollview.Offset{Top: 200})
	te.settle()
	te.OnHoverEnter()
	buf.Reset()

	te.OnPan(scrollview.Vertical, scrollview.PanEvent{IsFirst: true})
	te.OnPan(scrollview.Vertical, scrollview.PanEvent{IsFinal: true})

	var ends []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if strings.Contains(line, `"message":"thumb drag"`) && strings.Contains(line, `"dragging":false`) {
			ends = append(ends, line)
		}
	}
	require.Len(t, ends, 1)
	assert.Contains(t, ends[0], `"axis":"vertical"`)
	assert.Contains(t, ends[0], `"reference":200`)
}

func TestEngineDragIgnoresOtherAxis(t *testing.T) {
	te := newTestEngine(t)
	te.OnHoverEnter()
	te.OnPan(scrollview.Vertical, scrollview.PanEvent{IsFirst: true})
	calls := len(te.target.calls)

	te.OnPan(scrollview.Horizontal, scrollview.PanEvent{Distance: scrollview.Vec2{X: 10}, Direction: scrollview.DirectionRight})
	assert.Len(t, te.target.calls, calls)
	assert.True(t, te.Dragging())
}

func TestEngineDragHiddenThumb(t *testing.T) {
	te := newTestEngine(t)
	te.settle()

	te.OnPan(scrollview.Vertical, scrollview.PanEvent{IsFirst: true})
	te.OnPan(scrollview.Vertical, scrollview.PanEvent{Distance: scrollview.Vec2{Y: 50}, Direction: scrollview.DirectionDown})
	assert.False(t, te.Dragging())
	assert.Empty(t, te.target.calls)
}

func TestEngineTrackClick(t *testing.T) {
	te := newTestEngine(t)
	te.OnHoverEnter()

	ev := scrollview.PointerEvent{X: 395, Y: 200}
	te.OnTrackPointerDown(scrollview.Vertical, 200, ev)

	// (200 - 100/2) / 400 * 1600
	assert.Equal(t, scrollCall{scrollview.Vertical, 600, 0}, te.target.last())
	require.Len(t, te.dispatch, 1)
	assert.Equal(t, dispatchCall{scrollview.Vertical, ev}, te.dispatch[0])
}

func TestEngineTrackClickHidden(t *testing.T) {
	te := newTestEngine(t)
	te.settle()

	te.OnTrackPointerDown(scrollview.Vertical, 200, scrollview.PointerEvent{})
	assert.Empty(t, te.target.calls)
	assert.Empty(t, te.dispatch)
}

func TestEngineClose(t *testing.T) {
	te := newTestEngine(t)
	count := 0
	te.Subscribe(func(scrollview.ChangeEvent) { count++ })
	te.OnNativeScroll(scrollview.Offset{Top: 50})
	te.OnHoverEnter()
	te.OnPan(scrollview.Vertical, scrollview.PanEvent{IsFirst: true})
	calls := len(te.target.calls)

	te.Close()
	assert.False(t, te.Dragging())
	te.loop.RunPending()
	assert.Equal(t, 0, count)

	te.OnNativeScroll(scrollview.Offset{Top: 500})
	assert.Equal(t, float32(50), te.Position().Top)
	require.NoError(t, te.SetPosition(scrollview.Vertical, 10))
	assert.Len(t, te.target.calls, calls)

	te.settle()
	assert.True(t, te.loop.Idle())
	te.Close()
}

func quietLogger() scrollview.Option {
	return scrollview.Logger(zerolog.Nop())
}
