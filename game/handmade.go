// Package game is the per-frame logic of the Handmade demo, independent of
// the window backend.
package game

import (
	"github.com/ushitora-anqou/handmade/constant"
	"github.com/ushitora-anqou/handmade/framebuffer"
	"github.com/ushitora-anqou/handmade/joypad"
	"github.com/ushitora-anqou/handmade/sound"
	"github.com/ushitora-anqou/handmade/util"
	"github.com/ushitora-anqou/handmade/window"
)

type Handmade struct {
	buf              *framebuffer.Buffer
	stream           *sound.Stream
	joypad           *joypad.Joypad
	xOffset, yOffset int
}

// NewHandmade builds the demo state. out may be nil, in which case the demo
// is silent.
func NewHandmade(out sound.Output) *Handmade {
	h := &Handmade{
		buf:    framebuffer.New(constant.BACKBUFFER_WIDTH, constant.BACKBUFFER_HEIGHT),
		joypad: joypad.NewJoypad(),
	}
	if out != nil {
		h.stream = sound.NewStream(out, constant.TONE_HZ, constant.SAMPLES_PER_SECOND, constant.TONE_VOLUME)
	}
	return h
}

func (h *Handmade) Buffer() *framebuffer.Buffer {
	return h.buf
}

func (h *Handmade) Offsets() (int, int) {
	return h.xOffset, h.yOffset
}

// Update runs one frame: input, then the picture, then the sound.
func (h *Handmade) Update(event *window.WindowEvent) error {
	pad := h.joypad
	pad.Update(event.Pad)

	if event.Resized {
		util.Trace("game: window resized to %dx%d", event.Width, event.Height)
	}
	if pad.JustPressed(joypad.BUTTON_BACK) {
		h.xOffset, h.yOffset = 0, 0
	}
	if pad.Pressed(joypad.BUTTON_LEFT) {
		h.xOffset -= constant.OFFSET_STEP
	}
	if pad.Pressed(joypad.BUTTON_RIGHT) {
		h.xOffset += constant.OFFSET_STEP
	}
	if pad.Pressed(joypad.BUTTON_UP) {
		h.yOffset -= constant.OFFSET_STEP
	}
	if pad.Pressed(joypad.BUTTON_DOWN) {
		h.yOffset += constant.OFFSET_STEP
	}

	h.buf.RenderGradient(h.xOffset, h.yOffset)

	if h.stream != nil {
		if err := h.stream.Update(); err != nil {
			return err
		}
	}

	h.xOffset++
	return nil
}
