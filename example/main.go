// Example shows overlay scrollbars over a striped content area, in a GLFW
// window (gl), in a terminal (term), or as a PNG written without a window
// (snap).
//
// Prerequisites for the gl subcommand:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/ gl      # run this example
//
// Hover the content to reveal the thumbs, drag them, click a track to jump,
// or use the wheel. Pass --config to load a YAML file of engine settings.
package main

import (
	"fmt"
	"os"
	"runtime"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
