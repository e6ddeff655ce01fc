package scrollview

import "time"

// DefaultDelay is how long the thumb stays visible after activity.
const DefaultDelay = 1000 * time.Millisecond

// VisibilityTimer keeps a "temporarily visible" window open for a fixed
// delay after the last activity. Repeated notifications extend the window
// instead of stacking timeouts: at most one expiry is pending at a time.
type VisibilityTimer struct {
	loop     *Loop
	delay    time.Duration
	visible  bool
	pending  *Timer
	onChange func(visible bool)
	closed   bool
}

// NewVisibilityTimer creates a closed window. onChange, if not nil, is
// called on the loop whenever the window opens or closes.
func NewVisibilityTimer(loop *Loop, delay time.Duration, onChange func(visible bool)) *VisibilityTimer {
	if delay < 0 {
		delay = 0
	}
	return &VisibilityTimer{loop: loop, delay: delay, onChange: onChange}
}

// Notify opens the window, or pushes its expiry delay into the future if it
// is already open.
func (v *VisibilityTimer) Notify() {
	if v.closed {
		return
	}
	if v.visible {
		v.pending.Stop()
	} else {
		v.set(true)
	}
	v.pending = v.loop.AfterFunc(v.delay, v.expire)
}

func (v *VisibilityTimer) expire() {
	v.pending = nil
	v.set(false)
}

func (v *VisibilityTimer) set(visible bool) {
	if v.visible == visible {
		return
	}
	v.visible = visible
	if v.onChange != nil {
		v.onChange(visible)
	}
}

// Visible reports whether the window is open.
func (v *VisibilityTimer) Visible() bool {
	return v.visible
}

// Delay returns the configured window length.
func (v *VisibilityTimer) Delay() time.Duration {
	return v.delay
}

// Close cancels any pending expiry. The window is left as-is and never
// reopens.
func (v *VisibilityTimer) Close() {
	v.closed = true
	if v.pending != nil {
		v.pending.Stop()
		v.pending = nil
	}
}
