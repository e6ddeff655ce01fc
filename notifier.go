package scrollview

// ChangeEvent is the snapshot delivered to change observers.
type ChangeEvent struct {
	Ref ScrollTarget

	VerticalPosition      float32
	VerticalPercentage    float32
	VerticalSize          float32
	VerticalContainerSize float32

	HorizontalPosition      float32
	HorizontalPercentage    float32
	HorizontalSize          float32
	HorizontalContainerSize float32
}

type observer struct {
	id uint64
	fn func(ChangeEvent)
}

// ChangeNotifier coalesces bursts of Schedule calls into at most one
// emission per loop tick. The snapshot is taken when the emission runs, so
// observers always see the state after the last mutation of the burst.
type ChangeNotifier struct {
	loop      *Loop
	snapshot  func() ChangeEvent
	observers []observer
	nextID    uint64
	scheduled bool
	gen       uint64
	closed    bool
}

// NewChangeNotifier creates a notifier that builds its payload with
// snapshot.
func NewChangeNotifier(loop *Loop, snapshot func() ChangeEvent) *ChangeNotifier {
	return &ChangeNotifier{
		loop:     loop,
		snapshot: snapshot,
	}
}

// Subscribe registers fn and returns a function that removes it.
func (n *ChangeNotifier) Subscribe(fn func(ChangeEvent)) (unsubscribe func()) {
	n.nextID++
	id := n.nextID
	n.observers = append(n.observers, observer{id: id, fn: fn})
	return func() {
		for i, o := range n.observers {
			if o.id == id {
				n.observers = append(n.observers[:i:i], n.observers[i+1:]...)
				return
			}
		}
	}
}

// Observed reports whether anyone is listening.
func (n *ChangeNotifier) Observed() bool {
	return len(n.observers) > 0
}

// Schedule requests an emission on the next tick. Calls made while one is
// already pending are absorbed into it; with no observers nothing is
// scheduled at all.
func (n *ChangeNotifier) Schedule() {
	if n.closed || n.scheduled || !n.Observed() {
		return
	}
	n.scheduled = true
	gen := n.gen
	n.loop.Post(func() {
		if gen != n.gen {
			return
		}
		n.flush()
	})
}

// Pending reports whether an emission is queued.
func (n *ChangeNotifier) Pending() bool {
	return n.scheduled
}

func (n *ChangeNotifier) flush() {
	n.scheduled = false
	if n.closed || !n.Observed() {
		return
	}
	ev := n.snapshot()
	for _, o := range n.observers {
		o.fn(ev)
	}
}

// Cancel drops a queued emission without closing the notifier.
func (n *ChangeNotifier) Cancel() {
	n.gen++
	n.scheduled = false
}

// Close drops any queued emission and ignores later Schedule calls.
func (n *ChangeNotifier) Close() {
	n.Cancel()
	n.closed = true
}
