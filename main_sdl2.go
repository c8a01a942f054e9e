//go:build sdl2

package main

import (
	"log"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/ushitora-anqou/handmade/game"
	"github.com/ushitora-anqou/handmade/window"
)

func init() {
	// SDL must be driven from the main thread.
	runtime.LockOSThread()
}

func run() error {
	// Initialize SDL
	if err := window.SDLInitialize(); err != nil {
		return err
	}
	defer sdl.Quit()

	// Create a window
	wind, err := window.NewSDLWindow()
	if err != nil {
		return err
	}
	defer wind.Close()

	h := game.NewHandmade(wind.SoundOutput())
	if err := game.Run(wind, h); err != nil {
		return err
	}
	return saveScreenshot(h)
}

func fatal(err error) {
	log.Fatal(err)
}
