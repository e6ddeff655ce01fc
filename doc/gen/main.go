// Command gen renders overlay scrollbars in a set of scroll states,
// captures framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/go-theft-auto/scrollview"
	"github.com/go-theft-auto/scrollview/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single scroll state to capture.
type screenshot struct {
	name    string           // filename without extension
	width   int              // viewport width
	height  int              // viewport height
	content scrollview.Size  // content size
	top     float32          // vertical percentage
	left    float32          // horizontal percentage
	style   scrollview.Style // overlay style
	hover   scrollview.Axis  // axis whose thumb is drawn hovered, if any
}

func run() error {
	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "glfw init")
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return errors.Wrap(err, "create window")
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return errors.Wrap(err, "gl init")
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return errors.Wrap(err, "renderer")
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return errors.Wrap(err, "mkdir")
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return errors.Wrapf(err, "capture %s", s.name)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func buildScreenshots() []screenshot {
	tall := scrollview.Size{Width: 300, Height: 2000}
	both := scrollview.Size{Width: 1200, Height: 1600}
	huge := scrollview.Size{Width: 300, Height: 60000}
	return []screenshot{
		{name: "vertical_top", width: 300, height: 240, content: tall, style: scrollview.DefaultStyle()},
		{name: "vertical_middle", width: 300, height: 240, content: tall, top: 0.5, style: scrollview.DefaultStyle()},
		{name: "vertical_end", width: 300, height: 240, content: tall, top: 1, style: scrollview.DefaultStyle()},
		{name: "vertical_hovered", width: 300, height: 240, content: tall, top: 0.25, style: scrollview.DefaultStyle(), hover: scrollview.Vertical},
		{name: "min_thumb", width: 300, height: 240, content: huge, top: 0.5, style: scrollview.DefaultStyle()},
		{name: "both_axes", width: 400, height: 300, content: both, top: 0.3, left: 0.6, style: scrollview.DefaultStyle()},
		{name: "gta_style", width: 400, height: 300, content: both, top: 0.7, left: 0.2, style: scrollview.GTAStyle()},
		{name: "light_style", width: 400, height: 300, content: both, top: 0.4, left: 0.4, style: scrollview.LightStyle()},
	}
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// Only update the renderer projection; the hidden window stays at
	// 800×600, larger than every screenshot.
	renderer.Resize(s.width, s.height)

	// Fresh engine per screenshot so no state leaks between captures.
	loop := scrollview.NewLoop()
	defer loop.Close()
	node := scrollview.NewScrollNode(loop)
	engine := scrollview.New(node, loop, scrollview.Visibility(scrollview.ScrollbarAlways))
	defer engine.Close()
	node.Bind(engine)

	viewport := scrollview.Size{Width: float32(s.width), Height: float32(s.height)}
	node.SetViewportSize(viewport)
	node.SetContentSize(s.content)
	loop.RunPending()

	if err := engine.SetPercentage(scrollview.Vertical, s.top, 0); err != nil {
		return err
	}
	if err := engine.SetPercentage(scrollview.Horizontal, s.left, 0); err != nil {
		return err
	}
	loop.RunPending()

	overlay := scrollview.NewOverlay(engine, nil, node)
	overlay.SetStyle(s.style)
	overlay.SetViewport(scrollview.Rect{W: viewport.Width, H: viewport.Height})
	if s.hover != "" {
		th := overlay.ThumbRect(s.hover)
		overlay.PointerMove(scrollview.Vec2{X: th.X + th.W/2, Y: th.Y + th.H/2})
	}

	gl.Viewport(0, 0, int32(s.width), int32(s.height))
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if err := overlay.Render(renderer); err != nil {
		return err
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	flipRows(img.Pix, pixels, s.width*4, s.height)

	f, err := os.Create(filepath.Join(outDir, s.name+".jpg"))
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// flipRows copies src into dst bottom row first (OpenGL origin is
// bottom-left).
func flipRows(dst, src []byte, rowLen, rows int) {
	for y := 0; y < rows; y++ {
		copy(dst[y*rowLen:(y+1)*rowLen], src[(rows-1-y)*rowLen:(rows-y)*rowLen])
	}
}
