//go:build linux && !sdl2 && !ebiten

package main

import (
	"context"
	"errors"
	"log"

	"github.com/ushitora-anqou/handmade/alsa"
	"github.com/ushitora-anqou/handmade/constant"
	"github.com/ushitora-anqou/handmade/sound"
)

// startAudio plays a ring buffer on an ALSA device from a separate
// goroutine. The returned function stops playback and closes the device.
func startAudio(ctx context.Context, device string) (sound.Output, func(), error) {
	cfg := alsa.DefaultConfig()
	cfg.Device = device
	cfg.Rate = constant.SAMPLES_PER_SECOND
	cfg.Channels = constant.CHANNELS
	pcm, err := alsa.Open(cfg)
	if err != nil {
		return nil, nil, err
	}

	ring := sound.NewRingBuffer(constant.SOUND_BUFFER_SIZE)
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := alsa.Stream(ctx, pcm, ring); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("audio stopped: %v", err)
		}
	}()

	return ring, func() {
		cancel()
		<-done
		pcm.Close()
	}, nil
}
