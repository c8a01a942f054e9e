package x11

import (
	"fmt"
	"strconv"
)

type GeometryMask int

const (
	XValue GeometryMask = 1 << iota
	YValue
	WidthValue
	HeightValue
	XNegative
	YNegative
)

// Geometry is a parsed "[=][<width>x<height>][{+-}<x>{+-}<y>]" string.
// Only the fields named in Mask were present.
type Geometry struct {
	X, Y          int
	Width, Height int
	Mask          GeometryMask
}

func ParseGeometry(s string) (Geometry, error) {
	var g Geometry
	p := geometryParser{s: s}
	if p.peek() == '=' {
		p.pos++
	}
	if c := p.peek(); c != '+' && c != '-' && c != 'x' && c != 'X' && c != 0 {
		w, err := p.unsigned()
		if err != nil {
			return Geometry{}, fmt.Errorf("geometry %q: %w", s, err)
		}
		g.Width, g.Mask = w, g.Mask|WidthValue
	}
	if c := p.peek(); c == 'x' || c == 'X' {
		p.pos++
		h, err := p.unsigned()
		if err != nil {
			return Geometry{}, fmt.Errorf("geometry %q: %w", s, err)
		}
		g.Height, g.Mask = h, g.Mask|HeightValue
	}
	if c := p.peek(); c == '+' || c == '-' {
		x, neg, err := p.signed()
		if err != nil {
			return Geometry{}, fmt.Errorf("geometry %q: %w", s, err)
		}
		g.X, g.Mask = x, g.Mask|XValue
		if neg {
			g.Mask |= XNegative
		}
		y, neg, err := p.signed()
		if err != nil {
			return Geometry{}, fmt.Errorf("geometry %q: %w", s, err)
		}
		g.Y, g.Mask = y, g.Mask|YValue
		if neg {
			g.Mask |= YNegative
		}
	}
	if p.pos != len(s) {
		return Geometry{}, fmt.Errorf("geometry %q: unexpected %q", s, s[p.pos:])
	}
	return g, nil
}

// Place resolves g against a default window and the display size. Negative
// offsets are measured from the right and bottom edges, accounting for the
// border on both sides.
func (g Geometry) Place(def WindowOptions, displayWidth, displayHeight int) WindowOptions {
	w := def
	if g.Mask&WidthValue != 0 {
		w.Width = g.Width
	}
	if g.Mask&HeightValue != 0 {
		w.Height = g.Height
	}
	if g.Mask&XValue != 0 {
		w.X = g.X
		if g.Mask&XNegative != 0 {
			w.X = displayWidth + g.X - w.Width - 2*w.BorderWidth
		}
	}
	if g.Mask&YValue != 0 {
		w.Y = g.Y
		if g.Mask&YNegative != 0 {
			w.Y = displayHeight + g.Y - w.Height - 2*w.BorderWidth
		}
	}
	return w
}

type geometryParser struct {
	s   string
	pos int
}

func (p *geometryParser) peek() byte {
	if p.pos >= len(p.s) {
		return 0
	}
	return p.s[p.pos]
}

func (p *geometryParser) unsigned() (int, error) {
	start := p.pos
	for p.pos < len(p.s) && p.s[p.pos] >= '0' && p.s[p.pos] <= '9' {
		p.pos++
	}
	if start == p.pos {
		return 0, fmt.Errorf("expected a number at offset %d", start)
	}
	return strconv.Atoi(p.s[start:p.pos])
}

// signed parses "+N" or "-N". The returned value is negative for '-', and
// neg is set even for "-0".
func (p *geometryParser) signed() (int, bool, error) {
	sign := p.peek()
	if sign != '+' && sign != '-' {
		return 0, false, fmt.Errorf("expected '+' or '-' at offset %d", p.pos)
	}
	p.pos++
	v, err := p.unsigned()
	if err != nil {
		return 0, false, err
	}
	if sign == '-' {
		return -v, true, nil
	}
	return v, false, nil
}
