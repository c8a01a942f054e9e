//go:build !portaudio

package main

import (
	"context"
	"errors"

	"github.com/ushitora-anqou/handmade/sound"
)

func playPortAudio(ctx context.Context, wave *sound.SineWave) error {
	return errors.New("built without portaudio support")
}
