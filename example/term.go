package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/go-theft-auto/scrollview"
	"github.com/go-theft-auto/scrollview/backend/terminal"
)

const termFrame = 33 * time.Millisecond

func newTermCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "term",
		Short: "Show overlay scrollbars in the terminal (q or Esc to quit)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTerm(cmd.Context(), flags)
		},
	}
}

func runTerm(ctx context.Context, flags *rootFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	// Cells are large; a 50-cell minimum thumb would fill most terminals.
	if cfg.MinThumbSize == scrollview.DefaultMinThumbSize {
		cfg.MinThumbSize = 1
	}
	if cfg.WheelStep == scrollview.DefaultWheelStep {
		cfg.WheelStep = 3
	}
	content, err := parseSize(flags.content, scrollview.Size{Width: 300, Height: 500})
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("term: stdout is not a terminal")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "new screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	defer screen.Fini()
	screen.EnableMouse()

	s, err := newSession(cfg, terminal.Style())
	if err != nil {
		return err
	}
	defer s.close()

	renderer := terminal.NewRenderer(screen)
	mouse := terminal.NewMouseAdapter(s.overlay)
	w, h := screen.Size()
	s.node.SetContentSize(content)
	s.resize(float32(w), float32(h))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			s.loop.Post(func() { handleTermEvent(ev, s, renderer, mouse, cancel) })
		}
	}()

	stripes := [2]uint32{scrollview.RGBA(30, 30, 36, 255), scrollview.RGBA(44, 44, 52, 255)}
	dl := scrollview.AcquireDrawList()
	defer scrollview.ReleaseDrawList(dl)

	var frame func()
	frame = func() {
		screen.Clear()
		dl.Clear()
		s.drawContent(dl, 4, stripes)
		dl.Finalize()
		_ = renderer.Render(dl)
		_ = s.overlay.Render(renderer)
		drawStatus(screen, s)
		screen.Show()
		s.loop.AfterFunc(termFrame, frame)
	}
	s.loop.Post(frame)

	if err := s.loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func handleTermEvent(ev tcell.Event, s *session, r *terminal.Renderer, mouse *terminal.MouseAdapter, quit func()) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		page := s.node.ViewportSize().Height
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
			quit()
		case ev.Key() == tcell.KeyHome:
			_ = s.engine.SetPercentage(scrollview.Vertical, 0)
		case ev.Key() == tcell.KeyEnd:
			_ = s.engine.SetPercentage(scrollview.Vertical, 1)
		case ev.Key() == tcell.KeyPgDn:
			_ = s.engine.SetPosition(scrollview.Vertical, s.engine.Position().Top+page)
		case ev.Key() == tcell.KeyPgUp:
			_ = s.engine.SetPosition(scrollview.Vertical, s.engine.Position().Top-page)
		}
	case *tcell.EventResize:
		w, h := ev.Size()
		r.Resize(w, h)
		s.resize(float32(w), float32(h))
	case *tcell.EventMouse:
		mouse.HandleMouse(ev)
	}
}

// drawStatus writes the scroll percentages on the top row.
func drawStatus(screen tcell.Screen, s *session) {
	text := fmt.Sprintf(" ↕ %3.0f%%  ↔ %3.0f%%  %s ",
		s.engine.Percentage(scrollview.Vertical)*100,
		s.engine.Percentage(scrollview.Horizontal)*100,
		s.cfg.Visibility())
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(terminal.Color(scrollview.RGBA(0, 100, 150, 255)))
	x := 0
	for _, r := range text {
		screen.SetContent(x, 0, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
