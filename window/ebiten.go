//go:build ebiten

package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/ushitora-anqou/handmade/constant"
	"github.com/ushitora-anqou/handmade/framebuffer"
	"github.com/ushitora-anqou/handmade/joypad"
	"github.com/ushitora-anqou/handmade/sound"
)

var ebitenKeys = keymap[ebiten.Key]{
	ebiten.KeyW:          joypad.BUTTON_UP,
	ebiten.KeyArrowUp:    joypad.BUTTON_UP,
	ebiten.KeyS:          joypad.BUTTON_DOWN,
	ebiten.KeyArrowDown:  joypad.BUTTON_DOWN,
	ebiten.KeyA:          joypad.BUTTON_LEFT,
	ebiten.KeyArrowLeft:  joypad.BUTTON_LEFT,
	ebiten.KeyD:          joypad.BUTTON_RIGHT,
	ebiten.KeyArrowRight: joypad.BUTTON_RIGHT,
	ebiten.KeyEnter:      joypad.BUTTON_START,
	ebiten.KeyBackspace:  joypad.BUTTON_BACK,
	ebiten.KeySpace:      joypad.BUTTON_A,
}

func EbitenInitialize() error {
	ebiten.SetMaxTPS(constant.TARGET_FPS)
	ebiten.SetWindowSize(constant.WINDOW_WIDTH, constant.WINDOW_HEIGHT)
	ebiten.SetWindowTitle(constant.WINDOW_TITLE)
	ebiten.SetWindowResizable(true)

	audio.NewContext(constant.SAMPLES_PER_SECOND)

	return nil
}

// EbitenWindow is driven by ebiten's own loop: HandleEvents and UpdateScreen
// are called from Game.Update, and Pixels from Game.Draw.
type EbitenWindow struct {
	pixels      []uint8
	audioPlayer *audio.Player
	audioRing   *sound.RingBuffer
}

func NewEbitenWindow() (*EbitenWindow, error) {
	wind := &EbitenWindow{
		pixels:    make([]uint8, 4*constant.BACKBUFFER_WIDTH*constant.BACKBUFFER_HEIGHT),
		audioRing: sound.NewRingBuffer(constant.SOUND_BUFFER_SIZE),
	}
	player, err := audio.CurrentContext().NewPlayer(wind.audioRing)
	if err != nil {
		return nil, err
	}
	player.Play()
	wind.audioPlayer = player
	return wind, nil
}

func (wind *EbitenWindow) HandleEvents() (bool, *WindowEvent) {
	we := &WindowEvent{}
	// Keys are polled, and two keys can share a button, so the pad is built
	// from scratch every frame.
	for key, b := range ebitenKeys {
		if ebiten.IsKeyPressed(key) {
			we.Pad.Buttons |= b
		}
	}
	return ebiten.IsKeyPressed(ebiten.KeyEscape), we
}

func (wind *EbitenWindow) UpdateScreen(buf *framebuffer.Buffer) error {
	if len(wind.pixels) != 4*buf.Width*buf.Height {
		wind.pixels = make([]uint8, 4*buf.Width*buf.Height)
	}
	return buf.RGBA(wind.pixels)
}

func (wind *EbitenWindow) Pixels() []uint8 {
	return wind.pixels
}

func (wind *EbitenWindow) SoundOutput() sound.Output {
	return wind.audioRing
}

func (wind *EbitenWindow) Close() error {
	return wind.audioPlayer.Close()
}
