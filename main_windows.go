//go:build windows && !sdl2 && !ebiten

package main

import (
	"os"
	"runtime"

	"github.com/ushitora-anqou/handmade/constant"
	"github.com/ushitora-anqou/handmade/game"
	"github.com/ushitora-anqou/handmade/window"
)

func init() {
	// Window messages are delivered to the thread that created the window.
	runtime.LockOSThread()
}

func run() error {
	wind, err := window.NewWin32Window()
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
	window.MessageBox(constant.WINDOW_TITLE, err.Error())
	os.Exit(1)
}
