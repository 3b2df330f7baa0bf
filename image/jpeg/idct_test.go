package jpeg

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestIDCTDCOnlyBlockIsFlat(t *testing.T) {
	c := qt.New(t)

	var blk [blockSize]int32
	blk[0] = 1024 // dequantized DC coefficient

	idctRows(&blk)
	var out [blockSize]byte
	idctCols(&blk, &out)

	// descale(1024) = (1024+64)>>7 = 8, level-shifted by 128 -> 136.
	for i, v := range out {
		c.Assert(v, qt.Equals, byte(136), qt.Commentf("pixel %d", i))
	}
}

func TestIDCTDCOnlyBlockZeroIsFlatMidGray(t *testing.T) {
	c := qt.New(t)

	var blk [blockSize]int32 // DC coefficient 0 -> every pixel is exactly the level-shift

	idctRows(&blk)
	var out [blockSize]byte
	idctCols(&blk, &out)

	for i, v := range out {
		c.Assert(v, qt.Equals, byte(128), qt.Commentf("pixel %d", i))
	}
}

func TestIDCTNegativeDCClampsToZero(t *testing.T) {
	c := qt.New(t)

	var blk [blockSize]int32
	blk[0] = -1024 * 200 // deeply negative DC, should clamp rather than wrap

	idctRows(&blk)
	var out [blockSize]byte
	idctCols(&blk, &out)

	for _, v := range out {
		c.Assert(v, qt.Equals, byte(0))
	}
}
