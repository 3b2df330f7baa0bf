package jpeg

// Marker codes used by parseMarkers.
const (
	markerSOF0 = 0xC0
	markerSOF2 = 0xC2
	markerDHT  = 0xC4
	markerDQT  = 0xDB
	markerDRI  = 0xDD
	markerSOS  = 0xDA
	markerEOI  = 0xD9
)

// parseMarkers walks segments from SOI up to and including SOS,
// populating frame, scan, quantization and Huffman state as it goes. It
// returns once SOS has been parsed, leaving d.pos at the start of the
// entropy-coded segment.
func (d *decoder) parseMarkers() error {
	if d.readU8() != 0xFF || d.readU8() != 0xD8 {
		return ErrMissingSOI
	}

	for !d.atEnd() {
		b := d.readU8()
		if b != 0xFF {
			continue
		}
		for b == 0xFF {
			b = d.readU8()
		}
		if b == 0x00 {
			continue
		}

		switch b {
		case markerSOF0:
			if err := d.parseSOF0(); err != nil {
				return err
			}
		case markerSOF2:
			return UnsupportedError("progressive (SOF2) JPEG")
		case markerDHT:
			if err := d.parseDHT(); err != nil {
				return err
			}
		case markerDQT:
			if err := d.parseDQT(); err != nil {
				return err
			}
		case markerDRI:
			if err := d.parseDRI(); err != nil {
				return err
			}
		case markerSOS:
			if d.nComp == 0 {
				return FormatError("SOS before SOF0")
			}
			return d.parseSOS()
		case markerEOI:
			return ErrEOIBeforeSOS
		default:
			if err := d.skipMarker(); err != nil {
				return err
			}
		}
	}
	return ErrTruncated
}

func (d *decoder) parseSOF0() error {
	length := d.readU16()
	precision := d.readU8()
	if precision != 8 {
		return UnsupportedError("precision must be 8")
	}
	d.height = int(d.readU16())
	d.width = int(d.readU16())
	nComp := int(d.readU8())
	if nComp != 1 && nComp != 3 {
		return UnsupportedError("component count must be 1 or 3")
	}
	if want := uint16(8 + 3*nComp); length != want {
		return FormatError("SOF0 length inconsistent with component count")
	}
	d.nComp = nComp

	for i := 0; i < nComp; i++ {
		d.readU8() // component id — order within the scan is assumed Y,Cb,Cr
		samp := d.readU8()
		d.comp[i].h = int(samp >> 4)
		d.comp[i].v = int(samp & 0x0F)
		if d.comp[i].h < 1 || d.comp[i].h > 2 || d.comp[i].v < 1 || d.comp[i].v > 2 {
			return UnsupportedError("sampling factor outside 1..2")
		}
		d.comp[i].qSel = int(d.readU8())
		if d.comp[i].qSel > 1 {
			return UnsupportedError("quantization table id > 1")
		}
	}

	if nComp == 1 {
		d.mcuW, d.mcuH = 8, 8
	} else {
		d.mcuW = d.comp[0].h * 8
		d.mcuH = d.comp[0].v * 8
	}
	d.mcusX = (d.width + d.mcuW - 1) / d.mcuW
	d.mcusY = (d.height + d.mcuH - 1) / d.mcuH
	return nil
}

func (d *decoder) parseDHT() error {
	length := d.readU16()
	end := d.pos + int(length) - 2
	if end > len(d.data) {
		return FormatError("DHT segment truncated")
	}
	for d.pos < end {
		info := d.readU8()
		cls := (info >> 4) & 1
		id := info & 0x0F
		if id > 1 {
			return UnsupportedError("Huffman table id > 1")
		}
		table := int(cls)*2 + int(id)

		var counts [16]byte
		total := 0
		for i := 0; i < 16; i++ {
			counts[i] = d.readU8()
			total += int(counts[i])
		}
		if total > 256 {
			return FormatError("Huffman table value count exceeds 256")
		}
		vals := make([]byte, total)
		for i := 0; i < total; i++ {
			vals[i] = d.readU8()
		}
		d.huff[table].build(counts, vals)
	}
	if d.pos != end {
		return FormatError("DHT segment length mismatch")
	}
	return nil
}

func (d *decoder) parseDQT() error {
	length := d.readU16()
	end := d.pos + int(length) - 2
	if end > len(d.data) {
		return FormatError("DQT segment truncated")
	}
	for d.pos < end {
		info := d.readU8()
		prec := info >> 4
		id := info & 0x0F
		if id > 1 {
			return UnsupportedError("quantization table id > 1")
		}
		var raw [blockSize]int32
		for i := 0; i < blockSize; i++ {
			v := int32(d.readU8())
			if prec != 0 {
				v = v<<8 | int32(d.readU8())
			}
			raw[i] = v
		}
		d.qtab[id] = prescaleQuantTable(raw)
	}
	if d.pos != end {
		return FormatError("DQT segment length mismatch")
	}
	return nil
}

func (d *decoder) parseDRI() error {
	d.readU16() // length, always 4
	d.restartInterval = int(d.readU16())
	return nil
}

// parseSOS reads the scan header: component selectors and DC/AC table
// ids. Spectral-selection and successive-approximation bytes are read
// and ignored, since this decoder only supports baseline (single-scan,
// full spectral range) sequential JPEG.
func (d *decoder) parseSOS() error {
	segStart := d.pos
	length := d.readU16()
	end := segStart + int(length)
	if end > len(d.data) {
		return FormatError("SOS segment truncated")
	}

	ns := int(d.readU8())
	if ns != d.nComp {
		return FormatError("SOS component count does not match SOF0")
	}
	for i := 0; i < ns; i++ {
		d.readU8() // component selector — assumed to match SOF order
		tab := d.readU8()
		dcSel := int(tab >> 4)
		acSel := int(tab & 0x0F)
		if dcSel > 1 || acSel > 1 {
			return UnsupportedError("Huffman table selector > 1")
		}
		d.comp[i].dcSel = dcSel
		d.comp[i].acSel = acSel
	}
	for d.pos < end {
		d.readU8()
	}
	if d.pos != end {
		return FormatError("SOS segment length mismatch")
	}
	return nil
}

func (d *decoder) skipMarker() error {
	length := d.readU16()
	if length < 2 {
		return FormatError("marker segment length below minimum")
	}
	d.pos += int(length) - 2
	return nil
}
