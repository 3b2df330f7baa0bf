package jpeg

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestBitReaderDestuffing(t *testing.T) {
	c := qt.New(t)

	// 0xFF 0x00 destuffs to a literal 0xFF byte.
	r := newBitReader([]byte{0xFF, 0x00, 0xAA}, 0)
	c.Assert(r.nextByte(), qt.Equals, byte(0xFF))
	c.Assert(r.nextByte(), qt.Equals, byte(0xAA))
}

func TestBitReaderMarkerPushback(t *testing.T) {
	c := qt.New(t)

	r := newBitReader([]byte{0xFF, 0xD0}, 0)
	c.Assert(r.nextByte(), qt.Equals, byte(0))
	c.Assert(r.pos, qt.Equals, 0)
	c.Assert(r.err, qt.IsNil)
}

func TestBitReaderMarkerPushbackRepeatable(t *testing.T) {
	c := qt.New(t)

	// Pushing back leaves the marker visible for a second scan, e.g. by
	// handleRestart looking for the next FF Dn pair.
	r := newBitReader([]byte{0xFF, 0xD0}, 0)
	c.Assert(r.nextByte(), qt.Equals, byte(0))
	c.Assert(r.nextByte(), qt.Equals, byte(0))
	c.Assert(r.pos, qt.Equals, 0)
}

func TestBitReaderGetBitsZero(t *testing.T) {
	c := qt.New(t)

	r := newBitReader([]byte{0xAA}, 0)
	c.Assert(r.getBits(0), qt.Equals, uint16(0))
	c.Assert(r.nbits, qt.Equals, 0)
}

func TestBitReaderGetBitsMSBFirst(t *testing.T) {
	c := qt.New(t)

	// 0b10110100 ...
	r := newBitReader([]byte{0xB4, 0x00, 0x00, 0x00}, 0)
	c.Assert(r.getBits(4), qt.Equals, uint16(0b1011))
	c.Assert(r.getBits(4), qt.Equals, uint16(0b0100))
}

func TestBitReaderPastEndYieldsZero(t *testing.T) {
	c := qt.New(t)

	r := newBitReader([]byte{}, 0)
	c.Assert(r.getBits(8), qt.Equals, uint16(0))
	c.Assert(r.err, qt.IsNil)
}
