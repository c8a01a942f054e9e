package game

import (
	"errors"
	"testing"

	"github.com/ushitora-anqou/handmade/constant"
	"github.com/ushitora-anqou/handmade/framebuffer"
	"github.com/ushitora-anqou/handmade/joypad"
	"github.com/ushitora-anqou/handmade/sound"
	"github.com/ushitora-anqou/handmade/window"
)

func gradientAt(x, y, ox, oy int) uint32 {
	return uint32((y+oy)&0xFF)<<8 | uint32((x+ox)&0xFF)
}

func TestUpdateScrollsGradient(t *testing.T) {
	h := NewHandmade(nil)
	for frame := 0; frame < 3; frame++ {
		if err := h.Update(&window.WindowEvent{}); err != nil {
			t.Fatal(err)
		}
		buf := h.Buffer()
		for _, p := range [][2]int{{0, 0}, {300, 10}, {buf.Width - 1, buf.Height - 1}} {
			if got, want := buf.PixelAt(p[0], p[1]), gradientAt(p[0], p[1], frame, 0); got != want {
				t.Fatalf("frame %d: pixel %v = %#x, want %#x", frame, p, got, want)
			}
		}
	}
	if x, y := h.Offsets(); x != 3 || y != 0 {
		t.Fatalf("offsets = %d, %d", x, y)
	}
}

func TestUpdatePad(t *testing.T) {
	tests := []struct {
		buttons joypad.Button
		x, y    int
	}{
		{0, 1, 0},
		{joypad.BUTTON_RIGHT, constant.OFFSET_STEP + 1, 0},
		{joypad.BUTTON_LEFT, -constant.OFFSET_STEP + 1, 0},
		{joypad.BUTTON_DOWN, 1, constant.OFFSET_STEP},
		{joypad.BUTTON_UP | joypad.BUTTON_LEFT, -constant.OFFSET_STEP + 1, -constant.OFFSET_STEP},
	}
	for _, tc := range tests {
		h := NewHandmade(nil)
		if err := h.Update(&window.WindowEvent{Pad: joypad.State{Buttons: tc.buttons}}); err != nil {
			t.Fatal(err)
		}
		if x, y := h.Offsets(); x != tc.x || y != tc.y {
			t.Fatalf("buttons %#x: offsets = %d, %d; want %d, %d", tc.buttons, x, y, tc.x, tc.y)
		}
	}
}

func TestUpdateBackResetsOnce(t *testing.T) {
	h := NewHandmade(nil)
	for i := 0; i < 5; i++ {
		h.Update(&window.WindowEvent{})
	}
	back := &window.WindowEvent{Pad: joypad.State{Buttons: joypad.BUTTON_BACK}}
	h.Update(back)
	if x, _ := h.Offsets(); x != 1 {
		t.Fatalf("x after reset = %d, want 1", x)
	}
	// Holding the button does not reset again.
	h.Update(back)
	if x, _ := h.Offsets(); x != 2 {
		t.Fatalf("x while held = %d, want 2", x)
	}
}

func TestUpdateFillsSound(t *testing.T) {
	ring := sound.NewRingBuffer(constant.SOUND_BUFFER_SIZE)
	h := NewHandmade(ring)

	// Nothing has been played yet, so there is nothing to refill.
	h.Update(&window.WindowEvent{})

	played := make([]byte, 4000)
	ring.Read(played)
	h.Update(&window.WindowEvent{})

	again := make([]byte, constant.SOUND_BUFFER_SIZE)
	ring.Read(again)
	// The refilled region starts with the first half period at +volume.
	for i := 0; i < 4000; i += 2 {
		v := int16(uint16(again[len(again)-4000+i]) | uint16(again[len(again)-4000+i+1])<<8)
		if v == 0 {
			t.Fatalf("sample at byte %d is silent", i)
		}
	}
	first := int16(uint16(again[len(again)-4000]) | uint16(again[len(again)-4000+1])<<8)
	if first != constant.TONE_VOLUME {
		t.Fatalf("first sample = %d, want %d", first, constant.TONE_VOLUME)
	}
}

type fakeWindow struct {
	frames  int
	quitAt  int
	screens int
	failAt  int
}

func (w *fakeWindow) HandleEvents() (bool, *window.WindowEvent) {
	w.frames++
	return w.frames > w.quitAt, &window.WindowEvent{}
}

func (w *fakeWindow) UpdateScreen(buf *framebuffer.Buffer) error {
	w.screens++
	if w.screens == w.failAt {
		return errors.New("screen lost")
	}
	return nil
}

func (w *fakeWindow) SoundOutput() sound.Output { return nil }
func (w *fakeWindow) Close() error              { return nil }

func TestRunStopsOnQuit(t *testing.T) {
	w := &fakeWindow{quitAt: 3}
	h := NewHandmade(nil)
	if err := run(w, h, window.NewFramePacer(1000)); err != nil {
		t.Fatal(err)
	}
	if w.screens != 3 {
		t.Fatalf("screens = %d, want 3", w.screens)
	}
	if x, _ := h.Offsets(); x != 3 {
		t.Fatalf("x = %d, want 3", x)
	}
}

func TestRunReportsScreenError(t *testing.T) {
	w := &fakeWindow{quitAt: 10, failAt: 2}
	if err := run(w, NewHandmade(nil), window.NewFramePacer(1000)); err == nil || err.Error() != "screen lost" {
		t.Fatalf("err = %v", err)
	}
}
