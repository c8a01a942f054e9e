//go:build !windows && !sdl2 && !ebiten

package main

import (
	"context"
	"flag"
	"log"

	"github.com/ushitora-anqou/handmade/game"
	"github.com/ushitora-anqou/handmade/window"
)

var (
	displayName = flag.String("display", "", "X server to connect to")
	audioDevice = flag.String("device", "default", "ALSA playback device")
)

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out, stopAudio, err := startAudio(ctx, *audioDevice)
	if err != nil {
		log.Printf("running without sound: %v", err)
		out, stopAudio = nil, func() {}
	}
	defer stopAudio()

	wind, err := window.NewX11Window(*displayName, out)
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
