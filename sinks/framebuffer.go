// Package sinks provides a concrete jpeg.RowSink implementation, an
// in-memory canvas, plus two post-decode helpers that are not RowSinks:
// a dimension/frame-count annotator and a scrollback debug console.
package sinks

import (
	"image/color"

	"github.com/tinyimage/fjpeg/image/jpeg"
)

// FrameBuffer is a RGB565 canvas sized to the most recently decoded
// image. Collect implements jpeg.RowSink directly; FrameBuffer also
// implements the SetPixel/Size/Display method set tinygo.org/x/tinyfont
// and tinygo.org/x/tinyterm expect of a drawing target, so it can double
// as a target for tinyfont drawing, as Annotate (annotate.go) uses it.
type FrameBuffer struct {
	width, height int
	pix           []uint16
}

// NewFrameBuffer allocates a canvas for an image of the given
// dimensions. Re-decoding a differently sized image requires a new
// FrameBuffer, matching the decoder's own "one row buffer per decode"
// lifetime.
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		width:  width,
		height: height,
		pix:    make([]uint16, width*height),
	}
}

// Collect is a jpeg.RowSink that copies each decoded row into the
// canvas.
func (f *FrameBuffer) Collect(y, width int, pix []uint16, ctx any) {
	if y < 0 || y >= f.height {
		return
	}
	copy(f.pix[y*f.width:y*f.width+width], pix)
}

// Size reports the canvas dimensions.
func (f *FrameBuffer) Size() (x, y int16) {
	return int16(f.width), int16(f.height)
}

// SetPixel sets one pixel from an 8-bit RGBA color, quantizing down to
// RGB565 the same way the decoder's own color conversion does.
func (f *FrameBuffer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || int(x) >= f.width || y < 0 || int(y) >= f.height {
		return
	}
	px := (uint16(c.R)&0xF8)<<8 | (uint16(c.G)&0xFC)<<3 | uint16(c.B)>>3
	f.pix[int(y)*f.width+int(x)] = px
}

// Display is a no-op for an in-memory canvas; it exists only so
// FrameBuffer satisfies the Displayer-shaped interface tinyfont expects.
func (f *FrameBuffer) Display() error { return nil }

// At returns the RGB565 sample at (x, y), or 0 if out of bounds.
func (f *FrameBuffer) At(x, y int) uint16 {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0
	}
	return f.pix[y*f.width+x]
}

// Pix exposes the backing buffer for bulk copy or encoding.
func (f *FrameBuffer) Pix() []uint16 { return f.pix }

var _ jpeg.RowSink = (*FrameBuffer)(nil).Collect
