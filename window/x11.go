package window

import (
	"github.com/ushitora-anqou/handmade/constant"
	"github.com/ushitora-anqou/handmade/framebuffer"
	"github.com/ushitora-anqou/handmade/joypad"
	"github.com/ushitora-anqou/handmade/sound"
	"github.com/ushitora-anqou/handmade/x11"
)

var x11Keys = keymap[uint32]{
	x11.XK_w:      joypad.BUTTON_UP,
	x11.XK_Up:     joypad.BUTTON_UP,
	x11.XK_s:      joypad.BUTTON_DOWN,
	x11.XK_Down:   joypad.BUTTON_DOWN,
	x11.XK_a:      joypad.BUTTON_LEFT,
	x11.XK_Left:   joypad.BUTTON_LEFT,
	x11.XK_d:      joypad.BUTTON_RIGHT,
	x11.XK_Right:  joypad.BUTTON_RIGHT,
	x11.XK_Return: joypad.BUTTON_START,
	x11.XK_space:  joypad.BUTTON_A,
}

type X11Window struct {
	conn     *x11.Conn
	win      *x11.Window
	events   <-chan x11.Event
	done     chan struct{}
	keyboard joypad.State
	out      sound.Output
}

// NewX11Window opens a window on display ("" for $DISPLAY). out may be nil
// when there is no audio device.
func NewX11Window(display string, out sound.Output) (*X11Window, error) {
	conn, err := x11.Connect(display)
	if err != nil {
		return nil, err
	}
	win, err := conn.CreateSimpleWindow(x11.WindowOptions{
		Title:  constant.WINDOW_TITLE,
		Width:  constant.WINDOW_WIDTH,
		Height: constant.WINDOW_HEIGHT,
	})
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err := win.Map(); err != nil {
		conn.Close()
		return nil, err
	}
	done := make(chan struct{})
	return &X11Window{
		conn:   conn,
		win:    win,
		events: win.Events(done),
		done:   done,
		out:    out,
	}, nil
}

func (wind *X11Window) HandleEvents() (bool, *WindowEvent) {
	we := &WindowEvent{}
	quit := false
	for {
		var ev x11.Event
		var ok bool
		select {
		case ev, ok = <-wind.events:
		default:
			we.Pad = wind.keyboard
			return quit, we
		}
		if !ok {
			// Connection lost.
			wind.events = nil
			return true, we
		}

		switch ev.Kind {
		case x11.EventClose:
			quit = true
		case x11.EventResize:
			we.Resized = true
			we.Width, we.Height = ev.Width, ev.Height
		case x11.EventKeyPress:
			if ev.Keysym == x11.XK_Escape {
				quit = true
			}
			x11Keys.apply(&wind.keyboard, ev.Keysym, true)
		case x11.EventKeyRelease:
			x11Keys.apply(&wind.keyboard, ev.Keysym, false)
		}
	}
}

func (wind *X11Window) UpdateScreen(buf *framebuffer.Buffer) error {
	if err := wind.win.PutImage(buf); err != nil {
		return err
	}
	wind.conn.Sync()
	return nil
}

func (wind *X11Window) SoundOutput() sound.Output {
	return wind.out
}

func (wind *X11Window) Close() error {
	close(wind.done)
	wind.win.Destroy()
	wind.conn.Close()
	return nil
}
