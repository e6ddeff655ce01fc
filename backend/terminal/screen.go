// Package terminal draws overlay scrollbars on a tcell screen and feeds
// tcell mouse events into a scrollview.Overlay. One cell is one unit of
// scrollview geometry.
package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/scrollview"
)

// Style returns an overlay style sized for character cells.
func Style() scrollview.Style {
	return scrollview.Style{
		TrackColor:    scrollview.RGBA(40, 40, 40, 255),
		ThumbColor:    scrollview.RGBA(110, 110, 110, 255),
		ThumbHovered:  scrollview.RGBA(150, 150, 150, 255),
		ThumbActive:   scrollview.RGBA(0, 150, 200, 255),
		ScrollbarSize: 1,
	}
}

// Renderer paints draw lists onto a tcell screen. It implements
// scrollview.Renderer; the host calls Show.
type Renderer struct {
	screen        tcell.Screen
	width, height int
}

// NewRenderer creates a renderer for screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{screen: screen, width: w, height: h}
}

// Resize updates the screen bounds used for clipping.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Render fills the cells covered by each quad with its color.
func (r *Renderer) Render(dl *scrollview.DrawList) error {
	if dl == nil {
		return nil
	}
	for _, cmd := range dl.CmdBuffer {
		clip := cellRect{
			x0: max(0, int(math.Floor(float64(cmd.ClipRect[0])))),
			y0: max(0, int(math.Floor(float64(cmd.ClipRect[1])))),
			x1: min(r.width, int(math.Ceil(float64(cmd.ClipRect[2])))),
			y1: min(r.height, int(math.Ceil(float64(cmd.ClipRect[3])))),
		}
		for i := uint32(0); i+6 <= cmd.ElemCount; i += 6 {
			idx := dl.IdxBuffer[cmd.IndexOffset+i : cmd.IndexOffset+i+6]
			tl := dl.VtxBuffer[cmd.VertexOffset+uint32(idx[0])]
			br := dl.VtxBuffer[cmd.VertexOffset+uint32(idx[2])]
			r.fill(quadCells(tl.Pos, br.Pos).intersect(clip), tl.Color)
		}
	}
	return nil
}

func (r *Renderer) fill(c cellRect, color uint32) {
	style := tcell.StyleDefault.Background(Color(color))
	for y := c.y0; y < c.y1; y++ {
		for x := c.x0; x < c.x1; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// Color converts a packed scrollview color to a tcell true color. Alpha is
// dropped.
func Color(c uint32) tcell.Color {
	red, green, blue, _ := scrollview.UnpackRGBA(c)
	return tcell.NewRGBColor(int32(red), int32(green), int32(blue))
}

// cellRect is a half-open cell range [x0,x1) x [y0,y1).
type cellRect struct {
	x0, y0, x1, y1 int
}

// quadCells returns the cells a quad covers. Thumb offsets are fractional,
// so edges round to the nearest cell.
func quadCells(tl, br [2]float32) cellRect {
	return cellRect{
		x0: int(math.Round(float64(tl[0]))),
		y0: int(math.Round(float64(tl[1]))),
		x1: int(math.Round(float64(br[0]))),
		y1: int(math.Round(float64(br[1]))),
	}
}

func (c cellRect) intersect(o cellRect) cellRect {
	return cellRect{
		x0: max(c.x0, o.x0),
		y0: max(c.y0, o.y0),
		x1: min(c.x1, o.x1),
		y1: min(c.y1, o.y1),
	}
}
