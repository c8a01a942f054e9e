package x11

import (
	"fmt"

	"github.com/jezek/xgb/xproto"

	"github.com/ushitora-anqou/handmade/framebuffer"
)

// putImageHeader is the size of a PutImage request without its data.
const putImageHeader = 24

// PutImage copies buf to the top-left corner of the window as a ZPixmap.
// The image is split into bands of rows so no request exceeds the server's
// maximum request length.
func (w *Window) PutImage(buf *framebuffer.Buffer) error {
	if buf.Width == 0 || buf.Height == 0 {
		return nil
	}
	maxBytes := int(w.conn.Setup.MaximumRequestLength) * 4
	rows := rowsPerRequest(maxBytes, buf.Pitch)
	if rows == 0 {
		return fmt.Errorf("x11: a %d byte row does not fit in a %d byte request", buf.Pitch, maxBytes)
	}
	for y := 0; y < buf.Height; y += rows {
		n := rows
		if y+n > buf.Height {
			n = buf.Height - y
		}
		data := buf.Pix[y*buf.Pitch : (y+n)*buf.Pitch]
		xproto.PutImage(w.conn.X, xproto.ImageFormatZPixmap, xproto.Drawable(w.ID), w.GC,
			uint16(buf.Width), uint16(n), 0, int16(y), 0, w.conn.Screen.RootDepth, data)
	}
	return nil
}

func rowsPerRequest(maxBytes, pitch int) int {
	if pitch <= 0 {
		return 0
	}
	return (maxBytes - putImageHeader) / pitch
}
