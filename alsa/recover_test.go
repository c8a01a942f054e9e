//go:build linux

package alsa

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

type fakeStream struct {
	prepares, resumes int
	resumeErrs        []error
	prepareErr        error
}

func (f *fakeStream) Prepare() error {
	f.prepares++
	return f.prepareErr
}

func (f *fakeStream) Resume() error {
	f.resumes++
	if len(f.resumeErrs) == 0 {
		return nil
	}
	err := f.resumeErrs[0]
	f.resumeErrs = f.resumeErrs[1:]
	return err
}

func withFastRetry(t *testing.T) {
	saved := resumeRetryInterval
	resumeRetryInterval = time.Millisecond
	t.Cleanup(func() { resumeRetryInterval = saved })
}

func TestRecoverUnderrun(t *testing.T) {
	s := &fakeStream{}
	err := Recover(context.Background(), s, &Error{Op: "write", Code: unix.EPIPE, Msg: "Broken pipe"})
	if err != nil {
		t.Fatalf("Recover: %v", err)
	}
	if s.prepares != 1 || s.resumes != 0 {
		t.Fatalf("underrun: %d prepares, %d resumes; expected 1 and 0", s.prepares, s.resumes)
	}
}

func TestRecoverUnderrunPrepareFails(t *testing.T) {
	s := &fakeStream{prepareErr: unix.EBADFD}
	err := Recover(context.Background(), s, unix.EPIPE)
	if !errors.Is(err, unix.EBADFD) {
		t.Fatalf("Recover: got %v, expected the prepare error", err)
	}
}

func TestRecoverSuspend(t *testing.T) {
	withFastRetry(t)
	table := []struct {
		resumeErrs []error
		resumes    int
		prepares   int
	}{
		{nil, 1, 0},
		{[]error{unix.EAGAIN, unix.EAGAIN}, 3, 0},
		{[]error{unix.EAGAIN, unix.ENOSYS}, 2, 1},
		{[]error{&Error{Op: "resume", Code: unix.EAGAIN}, unix.EIO}, 2, 1},
	}

	for i, entry := range table {
		s := &fakeStream{resumeErrs: entry.resumeErrs}
		if err := Recover(context.Background(), s, &Error{Op: "write", Code: unix.ESTRPIPE}); err != nil {
			t.Fatalf("case %d: Recover: %v", i, err)
		}
		if s.resumes != entry.resumes || s.prepares != entry.prepares {
			t.Fatalf("case %d: %d resumes, %d prepares; expected %d and %d",
				i, s.resumes, s.prepares, entry.resumes, entry.prepares)
		}
	}
}

func TestRecoverSuspendCancelled(t *testing.T) {
	withFastRetry(t)
	errs := make([]error, 1000)
	for i := range errs {
		errs[i] = unix.EAGAIN
	}
	s := &fakeStream{resumeErrs: errs}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Recover(ctx, s, unix.ESTRPIPE); !errors.Is(err, context.Canceled) {
		t.Fatalf("Recover: got %v, expected context.Canceled", err)
	}
}

func TestRecoverOtherErrorIsFatal(t *testing.T) {
	s := &fakeStream{}
	orig := &Error{Op: "write", Code: unix.EIO, Msg: "Input/output error"}
	if err := Recover(context.Background(), s, orig); err != orig {
		t.Fatalf("Recover: got %v, expected the input error unchanged", err)
	}
	if s.prepares != 0 || s.resumes != 0 {
		t.Fatalf("fatal error should not touch the stream")
	}
}

func TestErrorUnwrap(t *testing.T) {
	var err error = &Error{Op: "write", Code: unix.EPIPE, Msg: "Broken pipe"}
	if !errors.Is(err, unix.EPIPE) {
		t.Fatalf("errors.Is should see the errno")
	}
	if err.Error() != "alsa: write: Broken pipe" {
		t.Fatalf("Error: got %q", err.Error())
	}
}
