//go:build portaudio

package main

import (
	"context"

	"github.com/gordonklaus/portaudio"

	"github.com/ushitora-anqou/handmade/sound"
)

const portaudioFrames = 512

func playPortAudio(ctx context.Context, wave *sound.SineWave) error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}
	defer portaudio.Terminate()

	out := make([]int16, portaudioFrames*wave.Channels)
	stream, err := portaudio.OpenDefaultStream(0, wave.Channels, float64(wave.Rate), portaudioFrames, &out)
	if err != nil {
		return err
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return err
	}
	defer stream.Stop()

	for ctx.Err() == nil {
		wave.FillFrames(out)
		if err := stream.Write(); err != nil {
			// Output underflow is reported but the stream keeps going.
			if err != portaudio.OutputUnderflowed {
				return err
			}
		}
	}
	return nil
}
