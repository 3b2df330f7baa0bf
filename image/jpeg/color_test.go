package jpeg

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func unpackRGB565(px uint16) (r, g, b byte) {
	r = byte(px >> 8 & 0xF8)
	g = byte(px >> 3 & 0xFC)
	b = byte(px << 3 & 0xF8)
	return
}

func TestYCbCrToRGB565Black(t *testing.T) {
	c := qt.New(t)

	r, g, b := unpackRGB565(ycbcrToRGB565(0, 128, 128))
	c.Assert(r, qt.Equals, byte(0))
	c.Assert(g, qt.Equals, byte(0))
	c.Assert(b, qt.Equals, byte(0))
}

func TestYCbCrToRGB565White(t *testing.T) {
	c := qt.New(t)

	r, g, b := unpackRGB565(ycbcrToRGB565(255, 128, 128))
	c.Assert(r, qt.Equals, byte(0xF8))
	c.Assert(g, qt.Equals, byte(0xFC))
	c.Assert(b, qt.Equals, byte(0xF8))
}

func TestYCbCrToRGB565RedDominant(t *testing.T) {
	c := qt.New(t)

	r, g, b := unpackRGB565(ycbcrToRGB565(76, 85, 255))
	c.Assert(r >= 248, qt.IsTrue, qt.Commentf("r=%d", r))
	c.Assert(g <= 20, qt.IsTrue, qt.Commentf("g=%d", g))
	c.Assert(b <= 20, qt.IsTrue, qt.Commentf("b=%d", b))
}
