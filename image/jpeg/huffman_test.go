package jpeg

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

// buildBitStream packs a sequence of (bitcount, value) pairs MSB-first
// into a byte slice, the way an encoder would emit a Huffman code.
func buildBitStream(pairs ...[2]uint32) []byte {
	var accum uint64
	var nbits uint
	var out []byte
	for _, p := range pairs {
		n, v := uint(p[0]), uint64(p[1])
		accum = (accum << n) | (v & ((1 << n) - 1))
		nbits += n
		for nbits >= 8 {
			shift := nbits - 8
			out = append(out, byte(accum>>shift))
			nbits -= 8
		}
	}
	if nbits > 0 {
		out = append(out, byte(accum<<(8-nbits)))
	}
	return out
}

func TestHuffmanCanonicalRoundTrip(t *testing.T) {
	c := qt.New(t)

	// Three symbols of length 2: codes 00, 01, 10 (canonical assignment).
	var counts [16]byte
	counts[1] = 3 // length 2 (index is length-1)
	vals := []byte{0x05, 0x07, 0x09}

	var tbl huffTable
	tbl.build(counts, vals)

	for i, want := range vals {
		stream := buildBitStream([2]uint32{2, uint32(i)})
		r := newBitReader(stream, 0)
		got, err := tbl.decode(r)
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.Equals, want)
	}
}

func TestHuffmanMixedLengths(t *testing.T) {
	c := qt.New(t)

	// length 1: one symbol (code 0); length 3: two symbols (codes 100, 101).
	var counts [16]byte
	counts[0] = 1
	counts[2] = 2
	vals := []byte{0xAA, 0xBB, 0xCC}

	var tbl huffTable
	tbl.build(counts, vals)

	r := newBitReader(buildBitStream([2]uint32{1, 0b0}), 0)
	got, err := tbl.decode(r)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, byte(0xAA))

	r = newBitReader(buildBitStream([2]uint32{3, 0b100}), 0)
	got, err = tbl.decode(r)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, byte(0xBB))

	r = newBitReader(buildBitStream([2]uint32{3, 0b101}), 0)
	got, err = tbl.decode(r)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, byte(0xCC))
}

func TestHuffmanExhaustionFails(t *testing.T) {
	c := qt.New(t)

	var counts [16]byte
	counts[0] = 1 // one 1-bit code: "0"
	vals := []byte{0x01}

	var tbl huffTable
	tbl.build(counts, vals)

	// All-ones stream never matches the single "0" code. Each 0xFF is
	// stuffed (0xFF 0x00) so the bit reader sees literal 0xFF bytes rather
	// than a marker, which it would push back and replace with zero bits.
	r := newBitReader([]byte{0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00}, 0)
	_, err := tbl.decode(r)
	c.Assert(err, qt.Equals, ErrHuffmanExhausted)
}

func TestSignExtend(t *testing.T) {
	c := qt.New(t)

	c.Assert(signExtend(0, 0), qt.Equals, int32(0))

	// s=4: values 0..7 are negative (-15..-8), 8..15 are positive.
	c.Assert(signExtend(0, 4), qt.Equals, int32(-15))
	c.Assert(signExtend(7, 4), qt.Equals, int32(-8))
	c.Assert(signExtend(8, 4), qt.Equals, int32(8))
	c.Assert(signExtend(15, 4), qt.Equals, int32(15))
}

func TestSignExtendRoundTrip(t *testing.T) {
	c := qt.New(t)

	for s := uint8(1); s <= 15; s++ {
		lo := -(int32(1)<<s - 1)
		hi := int32(1)<<s - 1
		for v := lo; v <= hi; v++ {
			// Only values whose magnitude needs exactly s bits belong to
			// size category s; smaller magnitudes use a smaller s.
			if v > -(int32(1)<<(s-1)) && v < int32(1)<<(s-1) {
				continue
			}
			var encoded uint16
			if v < 0 {
				encoded = uint16(v + (int32(1)<<s - 1))
			} else {
				encoded = uint16(v)
			}
			c.Assert(signExtend(encoded, s), qt.Equals, v)
		}
	}
}
