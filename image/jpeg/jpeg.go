package jpeg

// component holds the per-component state: sampling factors, table
// selectors, and the running DC predictor.
type component struct {
	h, v        int
	qSel        int
	dcSel, acSel int
	lastDC      int32
}

// decoder is the single owning container for one decode call. It is
// never reused across calls and carries no state that outlives
// Decode/Info.
type decoder struct {
	data []byte
	pos  int

	width, height int
	nComp         int
	comp          [3]component

	qtab [2][blockSize]int32
	huff [4]huffTable

	restartInterval int
	restartsLeft    int
	nextRestart     uint8

	mcuW, mcuH   int
	mcusX, mcusY int

	br *bitReader
}

// readU8 reads one byte from the marker stream, or 0 past end of input,
// matching the bit reader's "reads past end yield zero" contract so
// truncation is detected uniformly at the point a check actually fails.
func (d *decoder) readU8() byte {
	if d.pos < len(d.data) {
		b := d.data[d.pos]
		d.pos++
		return b
	}
	return 0
}

func (d *decoder) readU16() uint16 {
	hi := d.readU8()
	lo := d.readU8()
	return uint16(hi)<<8 | uint16(lo)
}

func (d *decoder) atEnd() bool { return d.pos >= len(d.data) }

// RowSink receives one fully decoded pixel row. y is strictly increasing
// from 0 to height-1; pix holds exactly width RGB565 samples and is only
// valid for the duration of the call — implementations that need to
// retain it must copy. ctx is passed through from Decode unchanged.
type RowSink func(y, width int, pix []uint16, ctx any)

// Decode parses data as a baseline sequential JPEG and invokes sink once
// per output row, in order, with the decoded RGB565 pixels. It returns a
// non-nil error on any decode failure; rows already delivered to sink
// before the failure are not revoked, so callers must discard partial
// output themselves on error.
func Decode(data []byte, sink RowSink, ctx any) error {
	d := &decoder{data: data}

	if err := d.parseMarkers(); err != nil {
		return err
	}
	if d.width == 0 || d.height == 0 {
		return FormatError("zero image dimension")
	}

	d.br = newBitReader(d.data, d.pos)
	if d.restartInterval > 0 {
		d.restartsLeft = d.restartInterval
		d.nextRestart = 0
	}

	return d.decodeScan(sink, ctx)
}
