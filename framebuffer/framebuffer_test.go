package framebuffer

import (
	"bytes"
	"image/color"
	"testing"

	"golang.org/x/image/bmp"
)

func TestRenderGradientKnownPixels(t *testing.T) {
	buf := New(400, 20)
	buf.RenderGradient(0, 0)

	table := []struct {
		x, y int
		want uint32
	}{
		{0, 0, 0},
		{300, 10, 2604},
		{255, 0, 255},
		{256, 1, 1 << 8},
		{399, 19, 19<<8 | 143},
	}
	for _, entry := range table {
		got := buf.PixelAt(entry.x, entry.y)
		if got != entry.want {
			t.Fatalf("pixel (%d, %d): got %d, expected %d", entry.x, entry.y, got, entry.want)
		}
	}
}

func TestRenderGradientFormula(t *testing.T) {
	offsets := [][2]int{{0, 0}, {1, 2}, {255, 256}, {1000, 77}, {-3, -300}}
	buf := New(64, 48)
	for _, off := range offsets {
		buf.RenderGradient(off[0], off[1])
		for y := 0; y < buf.Height; y++ {
			for x := 0; x < buf.Width; x++ {
				want := uint32(((y+off[1])&0xff)<<8 | ((x + off[0]) & 0xff))
				if got := buf.PixelAt(x, y); got != want {
					t.Fatalf("offset %v pixel (%d, %d): got %d, expected %d", off, x, y, got, want)
				}
			}
		}
	}
}

func TestRenderGradientRespectsPitch(t *testing.T) {
	const width, height, pitch = 3, 2, 16
	pix := make([]uint8, pitch*height)
	for i := range pix {
		pix[i] = 0xaa
	}
	RenderGradient(pix, pitch, width, height, 0, 0)

	// Padding bytes after each row must be untouched.
	for y := 0; y < height; y++ {
		for i := width * BytesPerPixel; i < pitch; i++ {
			if pix[y*pitch+i] != 0xaa {
				t.Fatalf("row %d padding byte %d was overwritten", y, i)
			}
		}
	}
	if pix[pitch+1] != 1 {
		t.Fatalf("second row green: got %d, expected 1", pix[pitch+1])
	}
}

func TestResize(t *testing.T) {
	buf := New(10, 10)
	buf.Resize(7, 3)
	if buf.Pitch != 28 || len(buf.Pix) != 84 {
		t.Fatalf("resize: pitch %d, len %d", buf.Pitch, len(buf.Pix))
	}
	buf.Resize(-1, 5)
	if buf.Width != 0 || len(buf.Pix) != 0 {
		t.Fatalf("resize to negative width: width %d, len %d", buf.Width, len(buf.Pix))
	}
}

func TestImageAndRGBA(t *testing.T) {
	buf := New(2, 1)
	buf.SetPixel(1, 0, 0x00112233)

	if c := buf.At(1, 0); c != (color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xff}) {
		t.Fatalf("At: got %v", c)
	}

	dst := make([]uint8, 8)
	if err := buf.RGBA(dst); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dst[4:], []uint8{0x11, 0x22, 0x33, 0xff}) {
		t.Fatalf("RGBA: got %v", dst)
	}
	if err := buf.RGBA(dst[:4]); err == nil {
		t.Fatalf("RGBA should reject a short destination")
	}
}

func TestWriteBMP(t *testing.T) {
	buf := New(16, 8)
	buf.RenderGradient(5, 9)

	var out bytes.Buffer
	if err := buf.WriteBMP(&out); err != nil {
		t.Fatal(err)
	}
	img, err := bmp.Decode(&out)
	if err != nil {
		t.Fatal(err)
	}
	r, g, b, _ := img.At(3, 2).RGBA()
	if r>>8 != 0 || g>>8 != 11 || b>>8 != 8 {
		t.Fatalf("decoded pixel: r=%d g=%d b=%d", r>>8, g>>8, b>>8)
	}

	if err := New(0, 0).WriteBMP(&out); err == nil {
		t.Fatalf("empty buffer should not encode")
	}
}
