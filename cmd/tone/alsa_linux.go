//go:build linux

package main

import (
	"context"
	"io"
	"log"

	"github.com/ushitora-anqou/handmade/alsa"
	"github.com/ushitora-anqou/handmade/sound"
)

func playALSA(ctx context.Context, opts *options, wave *sound.SineWave) error {
	cfg := opts.cfg
	pcm, err := alsa.Open(cfg)
	if err != nil {
		return err
	}
	defer pcm.Close()

	log.Printf("playback device is %s, buffer %d frames, period %d frames",
		cfg.Device, pcm.BufferSize(), pcm.PeriodSize())
	var src io.Reader = wave
	if opts.duration > 0 {
		frames := int64(opts.duration.Seconds() * float64(cfg.Rate))
		src = io.LimitReader(wave, frames*int64(wave.FrameSize()))
	}
	if err := alsa.Stream(ctx, pcm, src); err != nil {
		return err
	}
	return pcm.Drain()
}
