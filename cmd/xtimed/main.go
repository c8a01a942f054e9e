// Command xtimed animates the gradient at a fixed frame rate, waiting for
// either the next X event or the frame deadline, whichever comes first.
package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"github.com/ushitora-anqou/handmade/constant"
	"github.com/ushitora-anqou/handmade/framebuffer"
	"github.com/ushitora-anqou/handmade/util"
	"github.com/ushitora-anqou/handmade/window"
	"github.com/ushitora-anqou/handmade/x11"
)

var (
	displayName = flag.String("display", "", "X server to connect to")
	fps         = flag.Int("fps", constant.TARGET_FPS, "frames per second")
)

type surface interface {
	PutImage(buf *framebuffer.Buffer) error
}

type animation struct {
	win    surface
	buf    *framebuffer.Buffer
	offset int
	frames int
	late   int
}

func (a *animation) handle(ev x11.Event) bool {
	switch ev.Kind {
	case x11.EventResize:
		a.buf.Resize(ev.Width, ev.Height)
	case x11.EventButtonPress, x11.EventClose:
		return true
	case x11.EventKeyPress:
		return ev.Keysym == x11.XK_Escape
	}
	return false
}

func (a *animation) frame() error {
	a.buf.RenderGradient(a.offset, a.offset)
	a.offset++
	a.frames++
	return a.win.PutImage(a.buf)
}

// loop draws a frame every time the pacer's deadline passes and handles
// events in between. It returns when an event asks to quit or the event
// channel closes.
func (a *animation) loop(events <-chan x11.Event, pacer *window.FramePacer) error {
	timer := time.NewTimer(pacer.Until())
	defer timer.Stop()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return errors.New("lost the X connection")
			}
			if a.handle(ev) {
				return nil
			}

		case <-timer.C:
			if err := a.frame(); err != nil {
				return err
			}
			if overshoot := pacer.Advance(); overshoot > 0 {
				a.late++
				log.Printf("frame %d missed its deadline by %v", a.frames, overshoot)
			}
			timer.Reset(pacer.Until())
		}
	}
}

func run() error {
	if *fps <= 0 {
		return errors.New("fps must be positive")
	}
	conn, err := x11.Connect(*displayName)
	if err != nil {
		return err
	}
	defer conn.Close()

	win, err := conn.CreateSimpleWindow(x11.WindowOptions{
		Title:  "Timed",
		Width:  constant.BACKBUFFER_WIDTH / 2,
		Height: constant.BACKBUFFER_HEIGHT / 2,
	})
	if err != nil {
		return err
	}
	defer win.Destroy()
	if err := win.Map(); err != nil {
		return err
	}

	a := &animation{win: win, buf: framebuffer.New(win.Width, win.Height)}
	start := time.Now()
	done := make(chan struct{})
	defer close(done)
	err = a.loop(win.Events(done), window.NewFramePacer(*fps))
	util.Trace("xtimed: %d frames in %v, %d late", a.frames, time.Since(start), a.late)
	return err
}

func main() {
	util.SetupLogger("xtimed")
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
