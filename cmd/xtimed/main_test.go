package main

import (
	"testing"
	"time"

	"github.com/ushitora-anqou/handmade/framebuffer"
	"github.com/ushitora-anqou/handmade/window"
	"github.com/ushitora-anqou/handmade/x11"
)

type countingSurface struct {
	puts int
}

func (s *countingSurface) PutImage(buf *framebuffer.Buffer) error {
	s.puts++
	return nil
}

func TestLoopDrawsUntilClick(t *testing.T) {
	s := &countingSurface{}
	a := &animation{win: s, buf: framebuffer.New(16, 16)}
	events := make(chan x11.Event)

	done := make(chan error, 1)
	go func() {
		done <- a.loop(events, window.NewFramePacer(200))
	}()

	time.Sleep(100 * time.Millisecond)
	events <- x11.Event{Kind: x11.EventResize, Width: 8, Height: 4}
	events <- x11.Event{Kind: x11.EventButtonPress}

	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop")
	}
	if s.puts == 0 || a.frames != s.puts {
		t.Fatalf("puts = %d, frames = %d", s.puts, a.frames)
	}
	if a.buf.Width != 8 || a.buf.Height != 4 {
		t.Fatalf("buffer is %dx%d after resize", a.buf.Width, a.buf.Height)
	}
}

func TestLoopConnectionLost(t *testing.T) {
	a := &animation{win: &countingSurface{}, buf: framebuffer.New(1, 1)}
	events := make(chan x11.Event)
	close(events)
	if err := a.loop(events, window.NewFramePacer(1)); err == nil {
		t.Fatal("closed event channel did not stop the loop with an error")
	}
}

func TestHandleQuitKeys(t *testing.T) {
	a := &animation{buf: framebuffer.New(1, 1)}
	tests := []struct {
		ev   x11.Event
		quit bool
	}{
		{x11.Event{Kind: x11.EventKeyPress, Keysym: x11.XK_Escape}, true},
		{x11.Event{Kind: x11.EventKeyPress, Keysym: x11.XK_a}, false},
		{x11.Event{Kind: x11.EventClose}, true},
		{x11.Event{Kind: x11.EventExpose}, false},
	}
	for _, tc := range tests {
		if got := a.handle(tc.ev); got != tc.quit {
			t.Fatalf("handle(%+v) = %v, want %v", tc.ev, got, tc.quit)
		}
	}
}
