package ws2812

import (
	"image/color"

	"github.com/tinyimage/fjpeg/image/jpeg"
)

// NewAmbientSink returns a jpeg.RowSink that buckets each decoded row's
// pixels into numLEDs horizontal averages and, once the final row
// (height-1) arrives, writes the averaged colors to dev — an "ambient
// backlight" effect driven straight off the row stream, with no
// full-image buffer.
func NewAmbientSink(dev Device, height, numLEDs int) jpeg.RowSink {
	type bucket struct{ r, g, b, n uint32 }
	sums := make([]bucket, numLEDs)

	return func(y, width int, pix []uint16, ctx any) {
		for x, px := range pix {
			i := x * numLEDs / width
			if i >= numLEDs {
				i = numLEDs - 1
			}
			r, g, b := unpack565(px)
			sums[i].r += uint32(r)
			sums[i].g += uint32(g)
			sums[i].b += uint32(b)
			sums[i].n++
		}

		if y != height-1 {
			return
		}

		colors := make([]color.RGBA, numLEDs)
		for i, s := range sums {
			if s.n == 0 {
				continue
			}
			colors[i] = color.RGBA{
				R: byte(s.r / s.n),
				G: byte(s.g / s.n),
				B: byte(s.b / s.n),
				A: 0xFF,
			}
		}
		dev.WriteColors(colors)
	}
}

// unpack565 expands a packed 5-6-5 sample back to 8 bits per channel.
func unpack565(px uint16) (r, g, b byte) {
	r = byte(px>>8) & 0xF8
	g = byte(px>>3) & 0xFC
	b = byte(px<<3) & 0xF8
	r |= r >> 5
	g |= g >> 6
	b |= b >> 5
	return
}
