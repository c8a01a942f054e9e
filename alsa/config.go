package alsa

import (
	"fmt"
	"time"
)

type Config struct {
	Device   string
	Rate     int
	Channels int
	// BufferTime is the length of the ring buffer, PeriodTime the length of
	// one transfer. The device picks the nearest values it supports.
	BufferTime time.Duration
	PeriodTime time.Duration
	// Resample enables alsa-lib software resampling.
	Resample bool
	// PeriodEvent makes the device wake the writer once per period instead of
	// whenever a period worth of space is free.
	PeriodEvent bool
}

func DefaultConfig() Config {
	return Config{
		Device:     "plughw:0,0",
		Rate:       44100,
		Channels:   2,
		BufferTime: 500 * time.Millisecond,
		PeriodTime: 100 * time.Millisecond,
		Resample:   true,
	}
}

func (c Config) Validate() error {
	switch {
	case c.Device == "":
		return fmt.Errorf("alsa: no device given")
	case c.Rate <= 0:
		return fmt.Errorf("alsa: invalid rate %d", c.Rate)
	case c.Channels <= 0:
		return fmt.Errorf("alsa: invalid channel count %d", c.Channels)
	case c.PeriodTime <= 0 || c.BufferTime < c.PeriodTime:
		return fmt.Errorf("alsa: period time %v must be positive and not exceed buffer time %v", c.PeriodTime, c.BufferTime)
	}
	return nil
}

// FrameSize is the number of bytes of one interleaved S16 frame.
func (c Config) FrameSize() int {
	return 2 * c.Channels
}
