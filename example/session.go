package main

import (
	"fmt"
	"math"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/go-theft-auto/scrollview"
)

// session is one engine wired to an in-memory scroll node and an overlay.
type session struct {
	cfg     scrollview.Config
	log     zerolog.Logger
	loop    *scrollview.Loop
	node    *scrollview.ScrollNode
	engine  *scrollview.Engine
	overlay *scrollview.Overlay
}

// loadConfig reads the config file, if any, and applies flag overrides.
func loadConfig(flags *rootFlags) (scrollview.Config, error) {
	cfg := scrollview.DefaultConfig()
	if flags.config != "" {
		loaded, err := scrollview.LoadConfig(flags.config)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if flags.delay >= 0 {
		cfg.DelayMS = flags.delay
	}
	if flags.scrollbar != "" {
		cfg.Scrollbar = flags.scrollbar
	}
	if flags.verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, errors.Wrap(cfg.Validate(), "flags")
}

// parseSize parses WIDTHxHEIGHT. An empty string yields def.
func parseSize(s string, def scrollview.Size) (scrollview.Size, error) {
	if s == "" {
		return def, nil
	}
	var size scrollview.Size
	if _, err := fmt.Sscanf(s, "%gx%g", &size.Width, &size.Height); err != nil {
		return def, errors.Wrapf(err, "content size %q", s)
	}
	return size, nil
}

func newSession(cfg scrollview.Config, style scrollview.Style, extra ...scrollview.Option) (*session, error) {
	log, err := scrollview.NewLogger(scrollview.LogOptions{
		Level:         cfg.LogLevel,
		HumanReadable: true,
		Writer:        os.Stderr,
	})
	if err != nil {
		return nil, err
	}
	scrollview.SetVerbose(cfg.LogLevel == "debug" || cfg.LogLevel == "trace")

	s := &session{cfg: cfg, log: log, loop: scrollview.NewLoop()}
	s.node = scrollview.NewScrollNode(s.loop)

	pan := scrollview.NewPanRecognizer()
	opts := append(cfg.Options(), scrollview.Logger(log), scrollview.Dispatcher(pan))
	opts = append(opts, extra...)
	s.engine = scrollview.New(s.node, s.loop, opts...)
	s.node.Bind(s.engine)

	s.overlay = scrollview.NewOverlay(s.engine, pan, s.node)
	s.overlay.SetStyle(style)
	s.overlay.SetWheelStep(cfg.WheelStep)

	s.engine.Subscribe(func(ev scrollview.ChangeEvent) {
		s.log.Debug().
			Float32("top", ev.VerticalPosition).
			Float32("left", ev.HorizontalPosition).
			Float32("vpct", ev.VerticalPercentage).
			Float32("hpct", ev.HorizontalPercentage).
			Msg("scroll change")
	})
	return s, nil
}

// resize sets the viewport to the full host surface.
func (s *session) resize(width, height float32) {
	s.node.SetViewportSize(scrollview.Size{Width: width, Height: height})
	s.overlay.SetViewport(scrollview.Rect{W: width, H: height})
}

// drawContent adds alternating stripes for the visible rows of the
// content so scrolling is visible behind the thumbs.
func (s *session) drawContent(dl *scrollview.DrawList, stripe float32, colors [2]uint32) {
	rows := int(math.Ceil(float64(s.node.ContentSize().Height / stripe)))
	clip := scrollview.NewListClipper(rows, stripe, s.engine.State(scrollview.Vertical))
	left := s.engine.Position().Left
	width := s.node.ViewportSize().Width

	for i := clip.Start; i < clip.End; i++ {
		shift := float32(0)
		if i%2 == 1 {
			shift = stripe / 2
		}
		start := -float32(math.Mod(float64(left), float64(stripe))) + shift - stripe
		for x := start; x < width; x += stripe {
			dl.AddRect(scrollview.Rect{X: x, Y: clip.ItemOffset(i), W: stripe / 2, H: stripe}, colors[i%2])
		}
	}
}

func (s *session) close() {
	s.engine.Close()
	s.loop.Close()
}
