//go:build linux

package alsa

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/sys/unix"
)

// writeRetryInterval is the pause before retrying a write the device was not
// ready for.
var writeRetryInterval = 5 * time.Millisecond

// Device is a playback stream Stream can write to. *PCM implements it.
type Device interface {
	Recoverable
	Write(buf []byte) (frames int, err error)
	FrameSize() int
	PeriodSize() int
}

// Stream copies src to dev one period at a time until ctx is done or src
// runs dry. A write that fails with an xrun is recovered and the rest of
// that period is dropped.
func Stream(ctx context.Context, dev Device, src io.Reader) error {
	frameSize := dev.FrameSize()
	period := make([]byte, dev.PeriodSize()*frameSize)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := io.ReadFull(src, period)
		switch {
		case err == io.EOF:
			return nil
		case err == io.ErrUnexpectedEOF:
			return writePeriod(ctx, dev, period[:n-n%frameSize])
		case err != nil:
			return fmt.Errorf("alsa: read source: %w", err)
		}

		if err := writePeriod(ctx, dev, period); err != nil {
			return err
		}
	}
}

func writePeriod(ctx context.Context, dev Device, buf []byte) error {
	frameSize := dev.FrameSize()
	for len(buf) > 0 {
		frames, err := dev.Write(buf)
		if errors.Is(err, unix.EAGAIN) {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(writeRetryInterval):
			}
			continue
		}
		if err != nil {
			if rerr := Recover(ctx, dev, err); rerr != nil {
				return fmt.Errorf("alsa: write error: %w", rerr)
			}
			// Skip the rest of this period.
			return nil
		}
		buf = buf[frames*frameSize:]
	}
	return nil
}
