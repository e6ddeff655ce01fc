package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-theft-auto/scrollview"
	"github.com/go-theft-auto/scrollview/backend/raster"
)

type snapFlags struct {
	out    string
	width  int
	height int
	top    float32
	left   float32
}

func newSnapCmd(flags *rootFlags) *cobra.Command {
	sf := &snapFlags{}
	cmd := &cobra.Command{
		Use:   "snap",
		Short: "Render one frame to a PNG without a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnap(flags, sf)
		},
	}
	cmd.Flags().StringVarP(&sf.out, "out", "o", "scrollview.png", "Output PNG path")
	cmd.Flags().IntVar(&sf.width, "width", 400, "Viewport width in pixels")
	cmd.Flags().IntVar(&sf.height, "height", 300, "Viewport height in pixels")
	cmd.Flags().Float32Var(&sf.top, "top", 0, "Vertical scroll percentage (0-1)")
	cmd.Flags().Float32Var(&sf.left, "left", 0, "Horizontal scroll percentage (0-1)")
	return cmd
}

func runSnap(flags *rootFlags, sf *snapFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	content, err := parseSize(flags.content, scrollview.Size{Width: 1200, Height: 2000})
	if err != nil {
		return err
	}

	s, err := newSession(cfg, scrollview.GTAStyle(), scrollview.Visibility(scrollview.ScrollbarAlways))
	if err != nil {
		return err
	}
	defer s.close()

	s.node.SetContentSize(content)
	s.resize(float32(sf.width), float32(sf.height))
	s.loop.RunPending()
	if err := s.engine.SetPercentage(scrollview.Vertical, sf.top, 0); err != nil {
		return err
	}
	if err := s.engine.SetPercentage(scrollview.Horizontal, sf.left, 0); err != nil {
		return err
	}
	s.loop.RunPending()

	r := raster.NewRenderer(sf.width, sf.height)
	r.Clear(scrollview.RGBA(30, 30, 36, 255))

	dl := scrollview.AcquireDrawList()
	defer scrollview.ReleaseDrawList(dl)
	s.drawContent(dl, 40, [2]uint32{scrollview.RGBA(40, 44, 52, 255), scrollview.RGBA(52, 58, 68, 255)})
	dl.Finalize()
	if err := r.Render(dl); err != nil {
		return err
	}
	if err := s.overlay.Render(r); err != nil {
		return err
	}

	label := fmt.Sprintf("v %.0f%%  h %.0f%%",
		s.engine.Percentage(scrollview.Vertical)*100, s.engine.Percentage(scrollview.Horizontal)*100)
	if err := r.Label(label, 8, 20, scrollview.ColorWhite); err != nil {
		return err
	}
	if err := r.SavePNG(sf.out); err != nil {
		return err
	}
	s.log.Info().Str("path", sf.out).Str("label", label).Msg("snapshot written")
	return nil
}
