//go:build !linux && !windows && !sdl2 && !ebiten

package main

import (
	"context"
	"errors"

	"github.com/ushitora-anqou/handmade/sound"
)

func startAudio(ctx context.Context, device string) (sound.Output, func(), error) {
	return nil, nil, errors.New("no audio backend on this platform")
}
