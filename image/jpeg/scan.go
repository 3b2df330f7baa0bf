package jpeg

// decodeScan drives the MCU engine over the entropy-coded segment,
// converting and delivering complete rows as each MCU row finishes.
func (d *decoder) decodeScan(sink RowSink, ctx any) error {
	rowBuf := make([]uint16, d.mcuH*d.width)

	nyH, nyV := 1, 1
	if d.nComp == 3 {
		nyH, nyV = d.comp[0].h, d.comp[0].v
	}

	var yBlocks mcuYBlocks
	var cbBlock, crBlock [blockSize]byte

	for mcuY := 0; mcuY < d.mcusY; mcuY++ {
		for i := range rowBuf {
			rowBuf[i] = 0
		}

		for mcuX := 0; mcuX < d.mcusX; mcuX++ {
			if d.restartInterval > 0 {
				if d.restartsLeft == 0 {
					d.handleRestart()
				}
				d.restartsLeft--
			}

			for vy := 0; vy < nyV; vy++ {
				for hx := 0; hx < nyH; hx++ {
					if err := d.decodeBlock(0, &yBlocks[vy*nyH+hx]); err != nil {
						return err
					}
				}
			}
			if d.nComp == 3 {
				if err := d.decodeBlock(1, &cbBlock); err != nil {
					return err
				}
				if err := d.decodeBlock(2, &crBlock); err != nil {
					return err
				}
			}

			d.convertMCU(&yBlocks, &cbBlock, &crBlock, mcuX, mcuY, rowBuf)
		}

		for py := 0; py < d.mcuH; py++ {
			imgY := mcuY*d.mcuH + py
			if imgY >= d.height {
				break
			}
			sink(imgY, d.width, rowBuf[py*d.width:(py+1)*d.width], ctx)
		}

		if d.br.err != nil {
			return d.br.err
		}
	}

	return nil
}

// handleRestart discards buffered bits, scans forward to the next
// restart marker, and resets per-component DC predictors. A missing
// marker (truncated input) moves the cursor to the end of input and
// records ErrTruncated, which decodeScan returns once the current MCU
// row has been delivered.
func (d *decoder) handleRestart() {
	d.br.reset()
	found := false
	for d.br.pos < len(d.br.data)-1 {
		if d.br.data[d.br.pos] == 0xFF {
			m := d.br.data[d.br.pos+1]
			if m >= 0xD0 && m <= 0xD7 {
				d.br.pos += 2
				found = true
				break
			}
		}
		d.br.pos++
	}
	if !found {
		d.br.pos = len(d.br.data)
		d.br.err = ErrTruncated
	}
	for i := range d.comp[:d.nComp] {
		d.comp[i].lastDC = 0
	}
	d.restartsLeft = d.restartInterval
	d.nextRestart = (d.nextRestart + 1) & 7
}
