package sinks

import (
	"image/color"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestFrameBufferCollectsRows(t *testing.T) {
	c := qt.New(t)

	fb := NewFrameBuffer(4, 2)
	fb.Collect(0, 4, []uint16{1, 2, 3, 4}, nil)
	fb.Collect(1, 4, []uint16{5, 6, 7, 8}, nil)

	c.Assert(fb.At(0, 0), qt.Equals, uint16(1))
	c.Assert(fb.At(3, 0), qt.Equals, uint16(4))
	c.Assert(fb.At(0, 1), qt.Equals, uint16(5))
	c.Assert(fb.At(3, 1), qt.Equals, uint16(8))
}

func TestFrameBufferSetPixelRoundTrip(t *testing.T) {
	c := qt.New(t)

	fb := NewFrameBuffer(2, 2)
	fb.SetPixel(0, 0, color.RGBA{R: 0xF8, G: 0xFC, B: 0xF8, A: 0xFF})

	w, h := fb.Size()
	c.Assert(w, qt.Equals, int16(2))
	c.Assert(h, qt.Equals, int16(2))
	c.Assert(fb.At(0, 0), qt.Equals, uint16(0xFFFF))
}

func TestFrameBufferOutOfBoundsIgnored(t *testing.T) {
	c := qt.New(t)

	fb := NewFrameBuffer(2, 2)
	fb.SetPixel(5, 5, color.RGBA{R: 0xFF, A: 0xFF})
	c.Assert(fb.At(5, 5), qt.Equals, uint16(0))
}
