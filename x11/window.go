package x11

import (
	"encoding/binary"
	"fmt"

	"github.com/jezek/xgb/xproto"
)

const defaultEventMask = xproto.EventMaskExposure |
	xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskKeyPress |
	xproto.EventMaskKeyRelease |
	xproto.EventMaskStructureNotify

type WindowOptions struct {
	Title         string
	X, Y          int
	Width, Height int
	BorderWidth   int
}

type Window struct {
	conn          *Conn
	ID            xproto.Window
	GC            xproto.Gcontext
	Width, Height int

	wmProtocols, wmDeleteWindow xproto.Atom
}

// CreateSimpleWindow creates a child of the root window with a white
// background and a black border, plus a graphics context for drawing into
// it. The window is not mapped yet.
func (c *Conn) CreateSimpleWindow(opts WindowOptions) (*Window, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("x11: invalid window size %dx%d", opts.Width, opts.Height)
	}
	wid, err := xproto.NewWindowId(c.X)
	if err != nil {
		return nil, fmt.Errorf("x11: allocate window id: %w", err)
	}
	s := c.Screen
	err = xproto.CreateWindowChecked(c.X, s.RootDepth, wid, s.Root,
		int16(opts.X), int16(opts.Y), uint16(opts.Width), uint16(opts.Height),
		uint16(opts.BorderWidth), xproto.WindowClassInputOutput, s.RootVisual,
		xproto.CwBackPixel|xproto.CwBorderPixel|xproto.CwEventMask,
		[]uint32{s.WhitePixel, s.BlackPixel, defaultEventMask}).Check()
	if err != nil {
		return nil, fmt.Errorf("x11: create window: %w", err)
	}

	gc, err := xproto.NewGcontextId(c.X)
	if err != nil {
		return nil, fmt.Errorf("x11: allocate gc id: %w", err)
	}
	err = xproto.CreateGCChecked(c.X, gc, xproto.Drawable(wid),
		xproto.GcForeground|xproto.GcBackground,
		[]uint32{s.BlackPixel, s.WhitePixel}).Check()
	if err != nil {
		return nil, fmt.Errorf("x11: create gc: %w", err)
	}

	w := &Window{
		conn:   c,
		ID:     wid,
		GC:     gc,
		Width:  opts.Width,
		Height: opts.Height,
	}
	if opts.Title != "" {
		if err := w.SetTitle(opts.Title); err != nil {
			return nil, err
		}
	}
	if err := w.watchDelete(); err != nil {
		return nil, err
	}
	return w, nil
}

// watchDelete asks the window manager to send WM_DELETE_WINDOW instead of
// killing the connection when the user closes the window.
func (w *Window) watchDelete() error {
	var err error
	if w.wmProtocols, err = w.conn.internAtom("WM_PROTOCOLS"); err != nil {
		return err
	}
	if w.wmDeleteWindow, err = w.conn.internAtom("WM_DELETE_WINDOW"); err != nil {
		return err
	}
	data := make([]byte, 4)
	binary.LittleEndian.PutUint32(data, uint32(w.wmDeleteWindow))
	return xproto.ChangePropertyChecked(w.conn.X, xproto.PropModeReplace, w.ID,
		w.wmProtocols, xproto.AtomAtom, 32, 1, data).Check()
}

func (w *Window) SetTitle(title string) error {
	err := xproto.ChangePropertyChecked(w.conn.X, xproto.PropModeReplace, w.ID,
		xproto.AtomWmName, xproto.AtomString, 8, uint32(len(title)), []byte(title)).Check()
	if err != nil {
		return fmt.Errorf("x11: set title: %w", err)
	}
	return nil
}

// Map makes the window appear on the screen.
func (w *Window) Map() error {
	if err := xproto.MapWindowChecked(w.conn.X, w.ID).Check(); err != nil {
		return fmt.Errorf("x11: map window: %w", err)
	}
	return nil
}

// Clear repaints the whole window with its background.
func (w *Window) Clear() {
	xproto.ClearArea(w.conn.X, false, w.ID, 0, 0, 0, 0)
}

func (w *Window) Destroy() {
	xproto.FreeGC(w.conn.X, w.GC)
	xproto.DestroyWindow(w.conn.X, w.ID)
}
