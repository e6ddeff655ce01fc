package scrollview

import (
	"context"
	"sync"
	"time"

	"github.com/emirpasic/gods/trees/binaryheap"
)

// Loop is the single-threaded event loop every engine callback runs on.
//
// Work enters the loop in two ways: Post queues a task for the next tick,
// and AfterFunc schedules a cancellable timer. Nothing runs until the owner
// of the loop drains it, either once per frame with RunPending (the way a
// GLFW main loop does) or continuously with Run. Tasks and timer callbacks
// always run on the draining goroutine, one at a time, so code running on
// the loop needs no locking.
//
// Post and AfterFunc are safe to call from any goroutine.
type Loop struct {
	mu     sync.Mutex
	now    func() time.Time
	queue  []func()
	timers *binaryheap.Heap
	seq    uint64
	wake   chan struct{}
	closed bool
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithNow sets the loop's time source. Tests pass ManualClock.Now.
func WithNow(now func() time.Time) LoopOption {
	return func(l *Loop) { l.now = now }
}

// Timer is a pending callback scheduled with Loop.AfterFunc.
type Timer struct {
	loop    *Loop
	when    time.Time
	seq     uint64
	fn      func()
	stopped bool
	fired   bool
}

// timerLess orders timers by deadline, then by scheduling order so timers
// with the same deadline fire in the order they were created.
func timerLess(a, b interface{}) int {
	ta, tb := a.(*Timer), b.(*Timer)
	switch {
	case ta.when.Before(tb.when):
		return -1
	case tb.when.Before(ta.when):
		return 1
	case ta.seq < tb.seq:
		return -1
	case ta.seq > tb.seq:
		return 1
	default:
		return 0
	}
}

// NewLoop creates an idle loop.
func NewLoop(opts ...LoopOption) *Loop {
	l := &Loop{
		now:    time.Now,
		timers: binaryheap.NewWith(timerLess),
		wake:   make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Now returns the loop's current time.
func (l *Loop) Now() time.Time {
	return l.now()
}

// Post queues fn to run on the next tick.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()
	l.signal()
}

// AfterFunc schedules fn to run on the loop once d has elapsed.
func (l *Loop) AfterFunc(d time.Duration, fn func()) *Timer {
	l.mu.Lock()
	l.seq++
	t := &Timer{loop: l, when: l.now().Add(d), seq: l.seq, fn: fn}
	if l.closed {
		t.stopped = true
	} else {
		l.timers.Push(t)
	}
	l.mu.Unlock()
	l.signal()
	return t
}

// Stop cancels the timer. It returns true if the call prevented the
// callback from running.
func (t *Timer) Stop() bool {
	if t == nil {
		return false
	}
	t.loop.mu.Lock()
	defer t.loop.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	// Stopped timers stay in the heap and are skipped when they surface.
	t.stopped = true
	return true
}

// Pending reports whether the timer is still waiting to fire.
func (t *Timer) Pending() bool {
	if t == nil {
		return false
	}
	t.loop.mu.Lock()
	defer t.loop.mu.Unlock()
	return !t.stopped && !t.fired
}

func (l *Loop) signal() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// popDue removes and returns the earliest live timer whose deadline has
// passed, discarding stopped timers on the way.
func (l *Loop) popDue(now time.Time) *Timer {
	l.mu.Lock()
	defer l.mu.Unlock()
	for {
		v, ok := l.timers.Peek()
		if !ok {
			return nil
		}
		t := v.(*Timer)
		if t.stopped {
			l.timers.Pop()
			continue
		}
		if t.when.After(now) {
			return nil
		}
		l.timers.Pop()
		t.fired = true
		return t
	}
}

// takeQueue swaps out the task queue so tasks posted while it runs wait for
// the following pass.
func (l *Loop) takeQueue() []func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	q := l.queue
	l.queue = nil
	return q
}

// RunPending runs every due timer and queued task on the calling goroutine,
// including work that those callbacks schedule for now. It returns the
// number of callbacks run.
func (l *Loop) RunPending() int {
	ran := 0
	for {
		progressed := false
		now := l.now()
		for t := l.popDue(now); t != nil; t = l.popDue(now) {
			t.fn()
			ran++
			progressed = true
		}
		for _, fn := range l.takeQueue() {
			fn()
			ran++
			progressed = true
		}
		if !progressed {
			return ran
		}
	}
}

// NextDeadline returns the deadline of the earliest live timer.
func (l *Loop) NextDeadline() (time.Time, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for {
		v, ok := l.timers.Peek()
		if !ok {
			return time.Time{}, false
		}
		t := v.(*Timer)
		if t.stopped {
			l.timers.Pop()
			continue
		}
		return t.when, true
	}
}

// Idle reports whether there is no queued task and no live timer.
func (l *Loop) Idle() bool {
	l.mu.Lock()
	queued := len(l.queue)
	l.mu.Unlock()
	_, hasTimer := l.NextDeadline()
	return queued == 0 && !hasTimer
}

// Run drains the loop until ctx is done, sleeping between deadlines.
func (l *Loop) Run(ctx context.Context) error {
	wait := time.NewTimer(time.Hour)
	defer wait.Stop()
	for {
		l.RunPending()

		d := time.Hour
		if when, ok := l.NextDeadline(); ok {
			d = max(when.Sub(l.now()), 0)
		}
		if !wait.Stop() {
			select {
			case <-wait.C:
			default:
			}
		}
		wait.Reset(d)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		case <-wait.C:
		}
	}
}

// Close drops queued tasks and pending timers. Later Post calls are ignored
// and later timers never fire.
func (l *Loop) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	l.queue = nil
	for !l.timers.Empty() {
		v, _ := l.timers.Pop()
		v.(*Timer).stopped = true
	}
}
