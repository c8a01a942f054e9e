// Package x11 is the small slice of the X protocol the demos need: a
// connection, simple windows, ZPixmap image upload, events and the resource
// database.
package x11

import (
	"fmt"
	"os"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

type Conn struct {
	X      *xgb.Conn
	Setup  *xproto.SetupInfo
	Screen *xproto.ScreenInfo

	minKeycode        xproto.Keycode
	keysyms           []xproto.Keysym
	keysymsPerKeycode int
}

// Connect opens a connection to display, or to $DISPLAY when display is
// empty.
func Connect(display string) (*Conn, error) {
	if display == "" {
		display = os.Getenv("DISPLAY")
	}
	X, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to X server '%s': %w", display, err)
	}
	setup := xproto.Setup(X)
	c := &Conn{
		X:      X,
		Setup:  setup,
		Screen: setup.DefaultScreen(X),
	}
	if err := c.loadKeyboardMapping(); err != nil {
		X.Close()
		return nil, err
	}
	return c, nil
}

func (c *Conn) Close() {
	c.X.Close()
}

// DisplaySize returns the size of the default screen in pixels.
func (c *Conn) DisplaySize() (int, int) {
	return int(c.Screen.WidthInPixels), int(c.Screen.HeightInPixels)
}

// TrueColor reports whether the root visual is TrueColor, the only kind the
// image upload handles.
func (c *Conn) TrueColor() bool {
	for _, depth := range c.Screen.AllowedDepths {
		for _, visual := range depth.Visuals {
			if visual.VisualId == c.Screen.RootVisual {
				return visual.Class == xproto.VisualClassTrueColor
			}
		}
	}
	return false
}

// Sync flushes pending requests and waits for the server to process them.
func (c *Conn) Sync() {
	c.X.Sync()
}

func (c *Conn) loadKeyboardMapping() error {
	min, max := c.Setup.MinKeycode, c.Setup.MaxKeycode
	reply, err := xproto.GetKeyboardMapping(c.X, min, byte(max-min+1)).Reply()
	if err != nil {
		return fmt.Errorf("x11: get keyboard mapping: %w", err)
	}
	c.minKeycode = min
	c.keysyms = reply.Keysyms
	c.keysymsPerKeycode = int(reply.KeysymsPerKeycode)
	return nil
}

// Keysym returns the unshifted keysym of a keycode, or 0.
func (c *Conn) Keysym(code xproto.Keycode) uint32 {
	return keysymAt(c.keysyms, c.keysymsPerKeycode, int(code)-int(c.minKeycode))
}

func keysymAt(keysyms []xproto.Keysym, perKeycode, index int) uint32 {
	if index < 0 || perKeycode <= 0 {
		return 0
	}
	i := index * perKeycode
	if i >= len(keysyms) {
		return 0
	}
	return uint32(keysyms[i])
}

func (c *Conn) internAtom(name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(c.X, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("x11: intern atom %s: %w", name, err)
	}
	return reply.Atom, nil
}
