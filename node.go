package scrollview

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// animationFrame is the step of ScrollTo animations.
const animationFrame = 16 * time.Millisecond

// ScrollNode is an in-memory scrollable element: a viewport of some size
// over content of some size, scrolled to an offset the node keeps inside
// [0, content-viewport] on each axis.
//
// It plays the part of the real scroll target: ScrollTo clamps and
// optionally animates, and observers hear about scroll and resize changes
// asynchronously on the loop, one coalesced callback per tick, the way a
// browser delivers scroll and resize-observer events.
type ScrollNode struct {
	loop     *Loop
	viewport Size
	content  Size
	offset   Offset

	anims [2]*scrollAnimation

	scrollObservers   []func(Offset)
	viewportObservers []func(Size)
	contentObservers  []func(Size)

	scrollPending   bool
	viewportPending bool
	contentPending  bool
}

// scrollAnimation drives one axis toward a target with a critically damped
// spring.
type scrollAnimation struct {
	spring   harmonica.Spring
	pos, vel float64
	target   float64
	deadline time.Time
	timer    *Timer
}

// NewScrollNode creates an empty node on loop.
func NewScrollNode(loop *Loop) *ScrollNode {
	return &ScrollNode{loop: loop}
}

// Offset returns the current scroll offset.
func (n *ScrollNode) Offset() Offset {
	return n.offset
}

// ViewportSize returns the size of the visible area.
func (n *ScrollNode) ViewportSize() Size {
	return n.viewport
}

// ContentSize returns the size of the scrollable content.
func (n *ScrollNode) ContentSize() Size {
	return n.content
}

// MaxOffset returns the largest valid offset on axis.
func (n *ScrollNode) MaxOffset(axis Axis) float32 {
	return maxf(0, n.content.Extent(axis)-n.viewport.Extent(axis))
}

// Animating reports whether a ScrollTo animation is running on axis.
func (n *ScrollNode) Animating(axis Axis) bool {
	return axis.Valid() && n.anims[axis.index()] != nil
}

// ScrollTo moves axis to offset, clamped to the valid range. With a
// positive duration the move is animated; a new call replaces any running
// animation on the same axis.
func (n *ScrollNode) ScrollTo(axis Axis, offset float32, duration time.Duration) {
	if !axis.Valid() {
		return
	}
	n.stopAnimation(axis)
	target := clampf(offset, 0, n.MaxOffset(axis))
	if duration <= 0 || target == n.offset.Along(axis) {
		n.setOffset(axis, target)
		return
	}

	// A critically damped spring is within a pixel of its target after
	// roughly 6/ω seconds.
	omega := 6 / duration.Seconds()
	a := &scrollAnimation{
		spring:   harmonica.NewSpring(animationFrame.Seconds(), omega, 1.0),
		pos:      float64(n.offset.Along(axis)),
		target:   float64(target),
		deadline: n.loop.Now().Add(2 * duration),
	}
	n.anims[axis.index()] = a
	a.timer = n.loop.AfterFunc(animationFrame, func() { n.step(axis, a) })
}

func (n *ScrollNode) step(axis Axis, a *scrollAnimation) {
	if n.anims[axis.index()] != a {
		return
	}
	a.pos, a.vel = a.spring.Update(a.pos, a.vel, a.target)
	settled := math.Abs(a.pos-a.target) < 0.5 && math.Abs(a.vel) < 0.5
	if settled || !n.loop.Now().Before(a.deadline) {
		n.anims[axis.index()] = nil
		n.setOffset(axis, float32(a.target))
		return
	}
	n.setOffset(axis, float32(a.pos))
	a.timer = n.loop.AfterFunc(animationFrame, func() { n.step(axis, a) })
}

func (n *ScrollNode) stopAnimation(axis Axis) {
	if a := n.anims[axis.index()]; a != nil {
		a.timer.Stop()
		n.anims[axis.index()] = nil
	}
}

// ScrollBy moves the offset by a delta, as a wheel does.
func (n *ScrollNode) ScrollBy(dx, dy float32) {
	if dy != 0 {
		n.ScrollTo(Vertical, n.offset.Top+dy, 0)
	}
	if dx != 0 {
		n.ScrollTo(Horizontal, n.offset.Left+dx, 0)
	}
}

// SetViewportSize resizes the visible area and re-clamps the offset.
func (n *ScrollNode) SetViewportSize(size Size) {
	if n.viewport == size {
		return
	}
	n.viewport = size
	n.viewportPending = n.post(n.viewportPending, func() {
		n.viewportPending = false
		for _, fn := range n.viewportObservers {
			fn(n.viewport)
		}
	})
	n.reclamp()
}

// SetContentSize resizes the content and re-clamps the offset.
func (n *ScrollNode) SetContentSize(size Size) {
	if n.content == size {
		return
	}
	n.content = size
	n.contentPending = n.post(n.contentPending, func() {
		n.contentPending = false
		for _, fn := range n.contentObservers {
			fn(n.content)
		}
	})
	n.reclamp()
}

func (n *ScrollNode) reclamp() {
	for _, axis := range Axes {
		if v := n.offset.Along(axis); v > n.MaxOffset(axis) {
			n.stopAnimation(axis)
			n.setOffset(axis, n.MaxOffset(axis))
		}
	}
}

func (n *ScrollNode) setOffset(axis Axis, v float32) {
	if n.offset.Along(axis) == v {
		return
	}
	n.offset = n.offset.with(axis, v)
	n.scrollPending = n.post(n.scrollPending, func() {
		n.scrollPending = false
		for _, fn := range n.scrollObservers {
			fn(n.offset)
		}
	})
}

// post queues fn unless a dispatch of the same kind is already queued, and
// returns the new pending flag.
func (n *ScrollNode) post(pending bool, fn func()) bool {
	if pending {
		return true
	}
	n.loop.Post(fn)
	return true
}

// OnScroll registers a scroll observer.
func (n *ScrollNode) OnScroll(fn func(Offset)) {
	n.scrollObservers = append(n.scrollObservers, fn)
}

// OnViewportResize registers a resize observer for the visible area.
func (n *ScrollNode) OnViewportResize(fn func(Size)) {
	n.viewportObservers = append(n.viewportObservers, fn)
}

// OnContentResize registers a resize observer for the content.
func (n *ScrollNode) OnContentResize(fn func(Size)) {
	n.contentObservers = append(n.contentObservers, fn)
}

// Bind connects the node's observers to an engine and queues the node's
// current sizes and offset so the engine starts in sync.
func (n *ScrollNode) Bind(e *Engine) {
	n.OnScroll(e.OnNativeScroll)
	n.OnViewportResize(e.OnContainerResize)
	n.OnContentResize(e.OnContentResize)
	n.loop.Post(func() {
		e.OnContainerResize(n.viewport)
		e.OnContentResize(n.content)
		e.OnNativeScroll(n.offset)
	})
}
