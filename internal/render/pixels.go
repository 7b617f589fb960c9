package render

import "image/color"

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// Palette holds the live and dead cell colors.
type Palette struct {
	Live color.Color
	Dead color.Color
}

// DefaultPalette matches the terminal look: green cells on black.
func DefaultPalette() Palette {
	return Palette{
		Live: color.RGBA{R: 0, G: 200, B: 0, A: 255},
		Dead: color.Black,
	}
}

// Frame is an RGBA pixel buffer sized for a w*h grid.
type Frame struct {
	W, H int
	Pix  []byte
}

// NewFrame allocates a frame for a grid of size w*h.
func NewFrame(w, h int) *Frame {
	return &Frame{W: w, H: h, Pix: make([]byte, 4*w*h)}
}

// Fill converts cells into pixels. Mismatched cell counts are ignored and
// false is returned.
func (f *Frame) Fill(cells []uint8, p Palette) bool {
	if len(cells) != f.W*f.H {
		return false
	}
	fillBinaryRGBA(f.Pix, cells, p.Live, p.Dead)
	return true
}
