package x11

import (
	"errors"
	"fmt"
	"log"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

type EventKind int

const (
	EventExpose EventKind = iota
	EventResize
	EventButtonPress
	EventKeyPress
	EventKeyRelease
	EventClose
)

type Event struct {
	Kind          EventKind
	Width, Height int    // EventResize
	Keysym        uint32 // EventKeyPress, EventKeyRelease
	Count         int    // EventExpose: number of Expose events still to come
}

// ErrClosed is returned by NextEvent once the connection has been closed.
var ErrClosed = errors.New("x11: connection closed")

// NextEvent blocks until an event for this window arrives.
func (w *Window) NextEvent() (Event, error) {
	for {
		ev, xerr := w.conn.X.WaitForEvent()
		if ev == nil && xerr == nil {
			return Event{}, ErrClosed
		}
		if xerr != nil {
			return Event{}, fmt.Errorf("x11: %v", xerr)
		}
		if e, ok := w.translate(ev); ok {
			return e, nil
		}
	}
}

// Events pumps NextEvent into a channel from a separate goroutine. The
// channel is closed when the connection goes away or done is closed.
func (w *Window) Events(done <-chan struct{}) <-chan Event {
	return pump(w.NextEvent, done)
}

func pump(next func() (Event, error), done <-chan struct{}) <-chan Event {
	ch := make(chan Event, 16)
	go func() {
		defer close(ch)
		for {
			ev, err := next()
			if err != nil {
				if !errors.Is(err, ErrClosed) {
					log.Println(err)
				}
				return
			}
			select {
			case ch <- ev:
			case <-done:
				return
			}
		}
	}()
	return ch
}

func (w *Window) translate(ev xgb.Event) (Event, bool) {
	switch e := ev.(type) {
	case xproto.ExposeEvent:
		return Event{Kind: EventExpose, Count: int(e.Count)}, true

	case xproto.ConfigureNotifyEvent:
		width, height := int(e.Width), int(e.Height)
		if width == w.Width && height == w.Height {
			return Event{}, false
		}
		w.Width, w.Height = width, height
		return Event{Kind: EventResize, Width: width, Height: height}, true

	case xproto.ButtonPressEvent:
		return Event{Kind: EventButtonPress}, true

	case xproto.KeyPressEvent:
		return Event{Kind: EventKeyPress, Keysym: w.conn.Keysym(e.Detail)}, true

	case xproto.KeyReleaseEvent:
		return Event{Kind: EventKeyRelease, Keysym: w.conn.Keysym(e.Detail)}, true

	case xproto.ClientMessageEvent:
		if e.Type == w.wmProtocols && e.Format == 32 &&
			xproto.Atom(e.Data.Data32[0]) == w.wmDeleteWindow {
			return Event{Kind: EventClose}, true
		}

	case xproto.DestroyNotifyEvent:
		return Event{Kind: EventClose}, true
	}
	return Event{}, false
}
