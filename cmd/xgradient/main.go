// Command xgradient draws the blue/green gradient into a window whenever it
// is exposed, following the window size. A mouse click closes it.
package main

import (
	"errors"
	"flag"
	"log"

	"github.com/ushitora-anqou/handmade/framebuffer"
	"github.com/ushitora-anqou/handmade/util"
	"github.com/ushitora-anqou/handmade/x11"
)

const (
	initialWidth  = 400
	initialHeight = 400
)

var displayName = flag.String("display", "", "X server to connect to")

// surface is the window's view of its back buffer.
type surface interface {
	PutImage(buf *framebuffer.Buffer) error
	Clear()
}

type app struct {
	win surface
	buf *framebuffer.Buffer
}

// handle reacts to one event and reports whether the program should exit.
func (a *app) handle(ev x11.Event) (bool, error) {
	switch ev.Kind {
	case x11.EventExpose:
		if ev.Count > 0 {
			// Only repaint once for a burst of exposures.
			return false, nil
		}
		a.buf.RenderGradient(0, 0)
		return false, a.win.PutImage(a.buf)

	case x11.EventResize:
		util.Trace("xgradient: resized to %dx%d", ev.Width, ev.Height)
		a.buf.Resize(ev.Width, ev.Height)
		a.win.Clear()

	case x11.EventButtonPress, x11.EventClose:
		return true, nil
	}
	return false, nil
}

func run() error {
	conn, err := x11.Connect(*displayName)
	if err != nil {
		return err
	}
	defer conn.Close()

	if !conn.TrueColor() {
		return errors.New("the default visual is not TrueColor")
	}

	win, err := conn.CreateSimpleWindow(x11.WindowOptions{
		Title:  "Gradient",
		Width:  initialWidth,
		Height: initialHeight,
	})
	if err != nil {
		return err
	}
	defer win.Destroy()
	if err := win.Map(); err != nil {
		return err
	}

	a := &app{win: win, buf: framebuffer.New(initialWidth, initialHeight)}
	for {
		ev, err := win.NextEvent()
		if err != nil {
			return err
		}
		quit, err := a.handle(ev)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

func main() {
	util.SetupLogger("xgradient")
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
