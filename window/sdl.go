//go:build sdl2

package window

// typedef unsigned char Uint8;
// void OnAudioPlayback(void *userdata, Uint8 *stream, int len);
import "C"
import (
	"unsafe"

	"github.com/mattn/go-pointer"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/ushitora-anqou/handmade/constant"
	"github.com/ushitora-anqou/handmade/framebuffer"
	"github.com/ushitora-anqou/handmade/joypad"
	"github.com/ushitora-anqou/handmade/sound"
	"github.com/ushitora-anqou/handmade/util"
)

var sdlKeys = keymap[sdl.Keycode]{
	sdl.K_w:         joypad.BUTTON_UP,
	sdl.K_UP:        joypad.BUTTON_UP,
	sdl.K_s:         joypad.BUTTON_DOWN,
	sdl.K_DOWN:      joypad.BUTTON_DOWN,
	sdl.K_a:         joypad.BUTTON_LEFT,
	sdl.K_LEFT:      joypad.BUTTON_LEFT,
	sdl.K_d:         joypad.BUTTON_RIGHT,
	sdl.K_RIGHT:     joypad.BUTTON_RIGHT,
	sdl.K_RETURN:    joypad.BUTTON_START,
	sdl.K_BACKSPACE: joypad.BUTTON_BACK,
	sdl.K_SPACE:     joypad.BUTTON_A,
}

var sdlControllerButtons = []struct {
	button sdl.GameControllerButton
	pad    joypad.Button
}{
	{sdl.CONTROLLER_BUTTON_DPAD_UP, joypad.BUTTON_UP},
	{sdl.CONTROLLER_BUTTON_DPAD_DOWN, joypad.BUTTON_DOWN},
	{sdl.CONTROLLER_BUTTON_DPAD_LEFT, joypad.BUTTON_LEFT},
	{sdl.CONTROLLER_BUTTON_DPAD_RIGHT, joypad.BUTTON_RIGHT},
	{sdl.CONTROLLER_BUTTON_START, joypad.BUTTON_START},
	{sdl.CONTROLLER_BUTTON_BACK, joypad.BUTTON_BACK},
	{sdl.CONTROLLER_BUTTON_A, joypad.BUTTON_A},
	{sdl.CONTROLLER_BUTTON_B, joypad.BUTTON_B},
	{sdl.CONTROLLER_BUTTON_X, joypad.BUTTON_X},
	{sdl.CONTROLLER_BUTTON_Y, joypad.BUTTON_Y},
}

func SDLInitialize() error {
	return sdl.Init(sdl.INIT_EVERYTHING)
}

type SDLWindow struct {
	window      *sdl.Window
	renderer    *sdl.Renderer
	texture     *sdl.Texture
	controllers []*sdl.GameController
	keyboard    joypad.State
	audioDevice sdl.AudioDeviceID
	audioRing   *sound.RingBuffer
	userdata    unsafe.Pointer
}

func NewSDLWindow() (*SDLWindow, error) {
	window, err := sdl.CreateWindow(
		constant.WINDOW_TITLE,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		constant.WINDOW_WIDTH,
		constant.WINDOW_HEIGHT,
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE,
	)
	if err != nil {
		return nil, err
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return nil, err
	}

	// RGB888 is XRGB in a little-endian uint32, the same layout as the back
	// buffer, and has no alpha to blend.
	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_RGB888,
		sdl.TEXTUREACCESS_STREAMING,
		constant.BACKBUFFER_WIDTH,
		constant.BACKBUFFER_HEIGHT,
	)
	if err != nil {
		return nil, err
	}

	wind := &SDLWindow{
		window:    window,
		renderer:  renderer,
		texture:   texture,
		audioRing: sound.NewRingBuffer(constant.SOUND_BUFFER_SIZE),
	}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		if c := sdl.GameControllerOpen(i); c != nil {
			wind.controllers = append(wind.controllers, c)
		}
	}

	wind.userdata = pointer.Save(wind)
	audioDevice, err := sdl.OpenAudioDevice(
		"",
		false,
		&sdl.AudioSpec{
			Freq:     constant.SAMPLES_PER_SECOND,
			Format:   sdl.AUDIO_S16LSB,
			Channels: constant.CHANNELS,
			Samples:  constant.AUDIO_SAMPLES,
			Callback: sdl.AudioCallback(C.OnAudioPlayback),
			UserData: wind.userdata,
		},
		nil,
		0,
	)
	if err != nil {
		// Run silently rather than not at all.
		util.Trace("sdl: no audio device: %v", err)
		pointer.Unref(wind.userdata)
		wind.userdata = nil
		wind.audioRing = nil
		return wind, nil
	}
	sdl.PauseAudioDevice(audioDevice, false)
	wind.audioDevice = audioDevice

	return wind, nil
}

func (wind *SDLWindow) HandleEvents() (bool, *WindowEvent) {
	we := &WindowEvent{}
	escape := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch event := event.(type) {
		case *sdl.QuitEvent:
			escape = true

		case *sdl.WindowEvent:
			if event.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				we.Resized = true
				we.Width, we.Height = int(event.Data1), int(event.Data2)
			}

		case *sdl.KeyboardEvent:
			if event.Repeat != 0 {
				break
			}
			down := event.Type == sdl.KEYDOWN
			if down && event.Keysym.Sym == sdl.K_ESCAPE {
				escape = true
			}
			sdlKeys.apply(&wind.keyboard, event.Keysym.Sym, down)
		}
	}

	we.Pad = wind.keyboard
	for _, c := range wind.controllers {
		for _, m := range sdlControllerButtons {
			if c.Button(m.button) != 0 {
				we.Pad.Buttons |= m.pad
			}
		}
	}

	return escape, we
}

func (wind *SDLWindow) UpdateScreen(buf *framebuffer.Buffer) error {
	// Update the texture
	pixels, pitch, err := wind.texture.Lock(nil)
	if err != nil {
		return err
	}
	rowBytes := buf.Width * buf.BytesPerPixel
	for row := 0; row < buf.Height && row < constant.BACKBUFFER_HEIGHT; row++ {
		copy(pixels[row*pitch:row*pitch+pitch], buf.Pix[row*buf.Pitch:row*buf.Pitch+rowBytes])
	}
	wind.texture.Unlock()

	// Present the scene, stretched to the window
	wind.renderer.Clear()
	wind.renderer.Copy(wind.texture, nil, nil)
	wind.renderer.Present()

	return nil
}

func (wind *SDLWindow) SoundOutput() sound.Output {
	if wind.audioRing == nil {
		return nil
	}
	return wind.audioRing
}

func (wind *SDLWindow) Close() error {
	if wind.userdata != nil {
		sdl.CloseAudioDevice(wind.audioDevice)
		pointer.Unref(wind.userdata)
	}
	for _, c := range wind.controllers {
		c.Close()
	}
	wind.texture.Destroy()
	wind.renderer.Destroy()
	return wind.window.Destroy()
}

//export OnAudioPlayback
func OnAudioPlayback(userdata unsafe.Pointer, stream *C.Uint8, length C.int) {
	buf := unsafe.Slice((*byte)(unsafe.Pointer(stream)), int(length))
	wind := pointer.Restore(userdata).(*SDLWindow)
	wind.audioRing.Read(buf)
}
