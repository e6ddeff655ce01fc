package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/scrollview"
)

// MouseAdapter turns tcell mouse events into overlay pointer and wheel
// calls. tcell reports button state rather than transitions, so the
// adapter remembers whether the primary button was down and whether that
// press landed on a scrollbar.
type MouseAdapter struct {
	overlay  *scrollview.Overlay
	down     bool
	captured bool
}

// NewMouseAdapter creates an adapter for overlay.
func NewMouseAdapter(overlay *scrollview.Overlay) *MouseAdapter {
	return &MouseAdapter{overlay: overlay}
}

// HandleMouse forwards ev. It reports whether the event pressed a
// scrollbar or continued a press that did.
func (a *MouseAdapter) HandleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	p := scrollview.Vec2{X: float32(x), Y: float32(y)}
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		a.overlay.Wheel(0, -1)
	case buttons&tcell.WheelDown != 0:
		a.overlay.Wheel(0, 1)
	case buttons&tcell.WheelLeft != 0:
		a.overlay.Wheel(-1, 0)
	case buttons&tcell.WheelRight != 0:
		a.overlay.Wheel(1, 0)
	}

	a.overlay.PointerMove(p)

	nowDown := buttons&tcell.Button1 != 0
	handled := a.captured
	switch {
	case nowDown && !a.down:
		a.captured = a.overlay.PointerDown(p)
		handled = a.captured
	case !nowDown && a.down:
		a.overlay.PointerUp(p)
		a.captured = false
	}
	a.down = nowDown
	return handled
}
