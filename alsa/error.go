//go:build linux

package alsa

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Error is a failed libasound call. It unwraps to the errno the library
// returned, so errors.Is(err, unix.EPIPE) detects an underrun.
type Error struct {
	Op   string
	Code unix.Errno
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("alsa: %s: %s", e.Op, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Code
}

// check turns a negative libasound return code into an *Error.
func (l *lib) check(op string, res int) error {
	if res >= 0 {
		return nil
	}
	return &Error{
		Op:   op,
		Code: unix.Errno(-res),
		Msg:  l.strerror(int32(res)),
	}
}
