package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	config    string
	delay     int
	scrollbar string
	content   string
	verbose   bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "scrollview-example",
		Short:         "Overlay scrollbars driven by the scrollview engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "YAML settings file")
	cmd.PersistentFlags().IntVar(&flags.delay, "delay", -1, "Visibility window in milliseconds (overrides config)")
	cmd.PersistentFlags().StringVar(&flags.scrollbar, "scrollbar", "", "Scrollbar visibility: auto, always or never (overrides config)")
	cmd.PersistentFlags().StringVar(&flags.content, "content", "", "Content size as WIDTHxHEIGHT")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newGLCmd(flags))
	cmd.AddCommand(newTermCmd(flags))
	cmd.AddCommand(newSnapCmd(flags))

	return cmd
}
