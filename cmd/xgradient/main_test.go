package main

import (
	"testing"

	"github.com/ushitora-anqou/handmade/framebuffer"
	"github.com/ushitora-anqou/handmade/x11"
)

type fakeSurface struct {
	puts   []*framebuffer.Buffer
	sizes  [][2]int
	clears int
}

func (s *fakeSurface) PutImage(buf *framebuffer.Buffer) error {
	s.puts = append(s.puts, buf)
	s.sizes = append(s.sizes, [2]int{buf.Width, buf.Height})
	return nil
}

func (s *fakeSurface) Clear() {
	s.clears++
}

func TestHandle(t *testing.T) {
	s := &fakeSurface{}
	a := &app{win: s, buf: framebuffer.New(initialWidth, initialHeight)}

	steps := []struct {
		ev   x11.Event
		quit bool
	}{
		{x11.Event{Kind: x11.EventExpose, Count: 1}, false},
		{x11.Event{Kind: x11.EventExpose}, false},
		{x11.Event{Kind: x11.EventResize, Width: 300, Height: 200}, false},
		{x11.Event{Kind: x11.EventExpose}, false},
		{x11.Event{Kind: x11.EventKeyPress}, false},
		{x11.Event{Kind: x11.EventButtonPress}, true},
	}
	for i, step := range steps {
		quit, err := a.handle(step.ev)
		if err != nil {
			t.Fatal(err)
		}
		if quit != step.quit {
			t.Fatalf("step %d: quit = %v, want %v", i, quit, step.quit)
		}
	}

	want := [][2]int{{400, 400}, {300, 200}}
	if len(s.sizes) != len(want) {
		t.Fatalf("%d images drawn, want %d", len(s.sizes), len(want))
	}
	for i := range want {
		if s.sizes[i] != want[i] {
			t.Fatalf("image %d is %v, want %v", i, s.sizes[i], want[i])
		}
	}
	if s.clears != 1 {
		t.Fatalf("clears = %d, want 1", s.clears)
	}
	if got := a.buf.PixelAt(299, 199); got != 199<<8|299&0xFF {
		t.Fatalf("pixel = %#x", got)
	}
}

func TestHandleClose(t *testing.T) {
	a := &app{win: &fakeSurface{}, buf: framebuffer.New(1, 1)}
	if quit, _ := a.handle(x11.Event{Kind: x11.EventClose}); !quit {
		t.Fatal("close did not quit")
	}
}
