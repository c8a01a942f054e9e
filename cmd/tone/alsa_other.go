//go:build !linux

package main

import (
	"context"
	"errors"

	"github.com/ushitora-anqou/handmade/sound"
)

func playALSA(ctx context.Context, opts *options, wave *sound.SineWave) error {
	return errors.New("ALSA is only available on Linux; use -o or -portaudio")
}
