package jpeg

// decodeBlock decodes one 8x8 coefficient block for component ci,
// dequantizes it, and runs it through the IDCT into out (row-major,
// level-shifted, clamped to [0,255]).
func (d *decoder) decodeBlock(ci int, out *[blockSize]byte) error {
	comp := &d.comp[ci]
	q := &d.qtab[comp.qSel]

	var blk [blockSize]int32

	s, err := d.huff[comp.dcSel].decode(d.br)
	if err != nil {
		return err
	}
	n := s & 0x0F
	diff := signExtend(d.br.getBits(int(n)), n)
	comp.lastDC += diff
	blk[0] = comp.lastDC * q[0]

	acTable := int(comp.acSel) + 2
	for k := 1; k < blockSize; k++ {
		s, err := d.huff[acTable].decode(d.br)
		if err != nil {
			return err
		}
		run := s >> 4
		size := s & 0x0F

		if size == 0 {
			if run == 15 {
				k += 15 // ZRL: skip 16 zero coefficients
				continue
			}
			break // EOB
		}

		k += int(run)
		if k >= blockSize {
			return ErrACOverflow
		}
		ac := signExtend(d.br.getBits(int(size)), size)
		blk[unzig[k]] = ac * q[k]
	}

	idctRows(&blk)
	idctCols(&blk, out)
	return nil
}
