package window

import (
	"github.com/ushitora-anqou/handmade/framebuffer"
	"github.com/ushitora-anqou/handmade/joypad"
	"github.com/ushitora-anqou/handmade/sound"
)

type WindowEvent struct {
	Pad           joypad.State
	Resized       bool
	Width, Height int // client area, valid when Resized
}

type Window interface {
	HandleEvents() (bool, *WindowEvent)
	UpdateScreen(buf *framebuffer.Buffer) error
	// SoundOutput returns nil when the backend has no audio.
	SoundOutput() sound.Output
	Close() error
}
