//go:build linux

package alsa

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sys/unix"

	"github.com/ushitora-anqou/handmade/util"
)

// Recoverable is the part of a PCM needed to get it running again after an
// xrun or a system suspend.
type Recoverable interface {
	Prepare() error
	Resume() error
}

// resumeRetryInterval is how long to wait for the suspend flag to clear.
var resumeRetryInterval = time.Second

// Recover handles an underrun (EPIPE) by re-preparing the stream, and a
// suspend (ESTRPIPE) by resuming it, re-preparing if the resume fails. Any
// other error is returned unchanged.
func Recover(ctx context.Context, s Recoverable, err error) error {
	util.Trace("alsa: stream recovery: %v", err)

	switch {
	case errors.Is(err, unix.EPIPE):
		if perr := s.Prepare(); perr != nil {
			return fmt.Errorf("can't recover from underrun, prepare failed: %w", perr)
		}
		return nil

	case errors.Is(err, unix.ESTRPIPE):
		for {
			rerr := s.Resume()
			if !errors.Is(rerr, unix.EAGAIN) {
				if rerr != nil {
					if perr := s.Prepare(); perr != nil {
						return fmt.Errorf("can't recover from suspend, prepare failed: %w", perr)
					}
				}
				return nil
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(resumeRetryInterval):
			}
		}
	}
	return err
}
