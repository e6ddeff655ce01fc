// Package raster draws overlay scrollbars into an in-memory image with
// fogleman/gg, for screenshots and for hosts without a GPU.
package raster

import (
	"image"
	"io"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/go-theft-auto/scrollview"
)

// LabelSize is the point size of text drawn with Label.
const LabelSize = 12.0

var (
	monoOnce sync.Once
	monoFont *truetype.Font
	monoErr  error
)

func monoFace(size float64) (font.Face, error) {
	monoOnce.Do(func() {
		monoFont, monoErr = truetype.Parse(gomono.TTF)
	})
	if monoErr != nil {
		return nil, errors.Wrap(monoErr, "parse font")
	}
	return truetype.NewFace(monoFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// Renderer paints draw lists onto a gg context. It implements
// scrollview.Renderer.
type Renderer struct {
	dc *gg.Context
}

// NewRenderer creates a renderer with a transparent width x height image.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{dc: gg.NewContext(width, height)}
}

// Resize replaces the image with a blank one of the new size.
func (r *Renderer) Resize(width, height int) {
	r.dc = gg.NewContext(width, height)
}

// Context exposes the underlying gg context for custom drawing.
func (r *Renderer) Context() *gg.Context {
	return r.dc
}

// Clear fills the whole image with a packed color.
func (r *Renderer) Clear(c uint32) {
	r.setColor(c)
	r.dc.Clear()
}

// Render fills each quad of dl, honoring command clip rectangles.
func (r *Renderer) Render(dl *scrollview.DrawList) error {
	if dl == nil {
		return nil
	}
	for _, cmd := range dl.CmdBuffer {
		clip := cmd.ClipRect
		r.dc.Push()
		r.dc.DrawRectangle(float64(clip[0]), float64(clip[1]),
			float64(clip[2]-clip[0]), float64(clip[3]-clip[1]))
		r.dc.Clip()
		for i := uint32(0); i+6 <= cmd.ElemCount; i += 6 {
			idx := dl.IdxBuffer[cmd.IndexOffset+i : cmd.IndexOffset+i+6]
			tl := dl.VtxBuffer[cmd.VertexOffset+uint32(idx[0])]
			br := dl.VtxBuffer[cmd.VertexOffset+uint32(idx[2])]
			r.setColor(tl.Color)
			r.dc.DrawRectangle(float64(tl.Pos[0]), float64(tl.Pos[1]),
				float64(br.Pos[0]-tl.Pos[0]), float64(br.Pos[1]-tl.Pos[1]))
			r.dc.Fill()
		}
		r.dc.ResetClip()
		r.dc.Pop()
	}
	return nil
}

// Label draws text with its baseline-left corner at (x, y).
func (r *Renderer) Label(text string, x, y float64, c uint32) error {
	face, err := monoFace(LabelSize)
	if err != nil {
		return err
	}
	r.dc.SetFontFace(face)
	r.setColor(c)
	r.dc.DrawString(text, x, y)
	return nil
}

// Image returns the rendered image.
func (r *Renderer) Image() image.Image {
	return r.dc.Image()
}

// EncodePNG writes the image as PNG.
func (r *Renderer) EncodePNG(w io.Writer) error {
	return errors.Wrap(r.dc.EncodePNG(w), "encode png")
}

// SavePNG writes the image to path.
func (r *Renderer) SavePNG(path string) error {
	return errors.Wrapf(r.dc.SavePNG(path), "save %s", path)
}

func (r *Renderer) setColor(c uint32) {
	red, green, blue, alpha := scrollview.UnpackRGBA(c)
	r.dc.SetRGBA255(int(red), int(green), int(blue), int(alpha))
}
