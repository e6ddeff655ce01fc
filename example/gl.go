package main

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/go-theft-auto/scrollview"
	"github.com/go-theft-auto/scrollview/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "scrollview example"
)

func newGLCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "gl",
		Short: "Open a GLFW window with overlay scrollbars",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGL(flags)
		},
	}
}

func runGL(flags *rootFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	content, err := parseSize(flags.content, scrollview.Size{Width: 2400, Height: 4000})
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "glfw init")
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return errors.Wrap(err, "create window")
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return errors.Wrap(err, "gl init")
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return errors.Wrap(err, "renderer")
	}
	defer renderer.Delete()

	s, err := newSession(cfg, scrollview.GTAStyle())
	if err != nil {
		return err
	}
	defer s.close()

	s.node.SetContentSize(content)
	s.resize(windowWidth, windowHeight)
	opengl.NewGLFWInputAdapter(window, s.overlay, func(w, h int) {
		renderer.Resize(w, h)
		s.resize(float32(w), float32(h))
	})

	stripesDL := scrollview.AcquireDrawList()
	defer scrollview.ReleaseDrawList(stripesDL)
	stripes := [2]uint32{scrollview.RGBA(40, 44, 52, 255), scrollview.RGBA(52, 58, 68, 255)}

	for !window.ShouldClose() {
		glfw.PollEvents()
		s.loop.RunPending()

		fw, fh := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fw), int32(fh))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		stripesDL.Clear()
		s.drawContent(stripesDL, 80, stripes)
		stripesDL.Finalize()
		if err := renderer.Render(stripesDL); err != nil {
			return errors.Wrap(err, "render content")
		}
		if err := s.overlay.Render(renderer); err != nil {
			return errors.Wrap(err, "render scrollbars")
		}

		window.SwapBuffers()
	}
	return nil
}
