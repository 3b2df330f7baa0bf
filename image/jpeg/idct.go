package jpeg

// Winograd 8-point fixed-point IDCT. The four multiplier constants and
// their /256 scaling keep every intermediate product within 32-bit
// arithmetic.
const (
	idctScale = 7
	idctRound = 1 << (idctScale - 1)
)

func imul362(w int32) int32 { return (w*362 + 128) >> 8 }
func imul669(w int32) int32 { return (w*669 + 128) >> 8 }
func imul277(w int32) int32 { return (w*277 + 128) >> 8 }
func imul196(w int32) int32 { return (w*196 + 128) >> 8 }

func descale(x int32) int32 { return (x + idctRound) >> idctScale }

func clamp8(x int32) byte {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return byte(x)
}

// idctRows runs the row pass of the IDCT in place. Rows whose seven
// trailing coefficients are all zero are replicated from the DC term
// instead of run through the full butterfly.
func idctRows(b *[blockSize]int32) {
	for i := 0; i < 8; i++ {
		o := i * 8
		if b[o+1]|b[o+2]|b[o+3]|b[o+4]|b[o+5]|b[o+6]|b[o+7] == 0 {
			v := b[o]
			b[o+1], b[o+2], b[o+3], b[o+4], b[o+5], b[o+6], b[o+7] = v, v, v, v, v, v, v
			continue
		}

		s4, s7 := b[o+5], b[o+3]
		x4, x7 := s4-s7, s4+s7
		s5, s6 := b[o+1], b[o+7]
		x5, x6 := s5+s6, s5-s6
		t1 := imul196(x4 - x6)
		st26 := imul277(x6) - t1
		x24 := t1 - imul669(x4)
		x15, x17 := x5-x7, x5+x7
		t2 := st26 - x17
		t3 := imul362(x15) - t2
		x44 := t3 + x24
		s0, s1 := b[o], b[o+4]
		x30, x31 := s0+s1, s0-s1
		s2, s3 := b[o+2], b[o+6]
		x12, x13 := s2-s3, s2+s3
		x32 := imul362(x12) - x13
		x40, x43 := x30+x13, x30-x13
		x41, x42 := x31+x32, x31-x32

		b[o] = x40 + x17
		b[o+1] = x41 + t2
		b[o+2] = x42 + t3
		b[o+3] = x43 - x44
		b[o+4] = x43 + x44
		b[o+5] = x42 - t3
		b[o+6] = x41 - t2
		b[o+7] = x40 - x17
	}
}

// idctCols runs the column pass, descaling, level-shifting by +128, and
// clamping to [0,255] into out (row-major). Columns whose seven trailing
// coefficients are all zero produce a flat DC-only replicate.
func idctCols(b *[blockSize]int32, out *[blockSize]byte) {
	for i := 0; i < 8; i++ {
		if b[i+8]|b[i+16]|b[i+24]|b[i+32]|b[i+40]|b[i+48]|b[i+56] == 0 {
			v := clamp8(descale(b[i]) + 128)
			for j := 0; j < 8; j++ {
				out[j*8+i] = v
			}
			continue
		}

		s4, s7 := b[i+40], b[i+24]
		x4, x7 := s4-s7, s4+s7
		s5, s6 := b[i+8], b[i+56]
		x5, x6 := s5+s6, s5-s6
		t1 := imul196(x4 - x6)
		st26 := imul277(x6) - t1
		x24 := t1 - imul669(x4)
		x15, x17 := x5-x7, x5+x7
		t2 := st26 - x17
		t3 := imul362(x15) - t2
		x44 := t3 + x24
		s0, s1 := b[i], b[i+32]
		x30, x31 := s0+s1, s0-s1
		s2, s3 := b[i+16], b[i+48]
		x12, x13 := s2-s3, s2+s3
		x32 := imul362(x12) - x13
		x40, x43 := x30+x13, x30-x13
		x41, x42 := x31+x32, x31-x32

		out[0*8+i] = clamp8(descale(x40+x17) + 128)
		out[1*8+i] = clamp8(descale(x41+t2) + 128)
		out[2*8+i] = clamp8(descale(x42+t3) + 128)
		out[3*8+i] = clamp8(descale(x43-x44) + 128)
		out[4*8+i] = clamp8(descale(x43+x44) + 128)
		out[5*8+i] = clamp8(descale(x42-t3) + 128)
		out[6*8+i] = clamp8(descale(x41-t2) + 128)
		out[7*8+i] = clamp8(descale(x40-x17) + 128)
	}
}
