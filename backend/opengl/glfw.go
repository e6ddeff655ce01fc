package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/scrollview"
)

// GLFWInputAdapter forwards GLFW window events to an overlay. Callbacks run
// inside glfw.PollEvents, so they share the goroutine that drains the
// engine's loop.
type GLFWInputAdapter struct {
	window   *glfw.Window
	overlay  *scrollview.Overlay
	onResize func(width, height int)

	// Positive is toward the end of the content; GLFW reports wheel-up as
	// positive yoff.
	invertWheel bool
}

// NewGLFWInputAdapter installs callbacks on window. onResize, when not
// nil, is called with the new window size.
func NewGLFWInputAdapter(window *glfw.Window, overlay *scrollview.Overlay, onResize func(width, height int)) *GLFWInputAdapter {
	a := &GLFWInputAdapter{
		window:      window,
		overlay:     overlay,
		onResize:    onResize,
		invertWheel: true,
	}

	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)
	window.SetCursorEnterCallback(a.cursorEnterCallback)
	window.SetSizeCallback(a.sizeCallback)
	return a
}

// SetNaturalScrolling makes positive wheel offsets scroll toward the end
// of the content instead of the start.
func (a *GLFWInputAdapter) SetNaturalScrolling(natural bool) {
	a.invertWheel = !natural
}

func (a *GLFWInputAdapter) cursor() scrollview.Vec2 {
	x, y := a.window.GetCursorPos()
	return scrollview.Vec2{X: float32(x), Y: float32(y)}
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}
	switch action {
	case glfw.Press:
		a.overlay.PointerDown(a.cursor())
	case glfw.Release:
		a.overlay.PointerUp(a.cursor())
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	dx, dy := float32(xoff), float32(yoff)
	if a.invertWheel {
		dx, dy = -dx, -dy
	}
	a.overlay.Wheel(dx, dy)
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.overlay.PointerMove(scrollview.Vec2{X: float32(xpos), Y: float32(ypos)})
}

func (a *GLFWInputAdapter) cursorEnterCallback(w *glfw.Window, entered bool) {
	if !entered {
		a.overlay.PointerLeave()
	}
}

func (a *GLFWInputAdapter) sizeCallback(w *glfw.Window, width, height int) {
	if a.onResize != nil {
		a.onResize(width, height)
	}
}
