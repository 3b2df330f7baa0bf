package epd2in66b

import (
	"image/color"

	"github.com/tinyimage/fjpeg/image/jpeg"
)

// NewJPEGSink returns a jpeg.RowSink that renders decoded RGB565 rows
// directly into dev's black/red buffers, nearest-neighbor scaling the
// source image (srcWidth x srcHeight, from a prior jpeg.Info call) down
// to the panel's fixed resolution. Because the decoder only ever holds
// one row at a time, source rows that don't map to a new destination row
// are simply dropped rather than averaged — fine for a thumbnail-class
// display, and it keeps the sink itself allocation-free after setup.
func NewJPEGSink(dev *Device, srcWidth, srcHeight int) jpeg.RowSink {
	dstW, dstH := dev.Size()
	colMap := make([]int, dstW)
	for dx := int16(0); dx < dstW; dx++ {
		sx := int(dx) * srcWidth / int(dstW)
		if sx >= srcWidth {
			sx = srcWidth - 1
		}
		colMap[dx] = sx
	}
	lastDstRow := int16(-1)

	return func(y, width int, pix []uint16, ctx any) {
		dy := int16(y * int(dstH) / srcHeight)
		if dy < 0 || dy >= dstH || dy == lastDstRow {
			return
		}
		lastDstRow = dy
		for dx := int16(0); dx < dstW; dx++ {
			sx := colMap[dx]
			if sx >= width {
				sx = width - 1
			}
			dev.SetPixel(dx, dy, rgb565ToRGBA(pix[sx]))
		}
	}
}

// rgb565ToRGBA expands a packed 5-6-5 sample back to 8 bits per channel
// by replicating the high bits into the low bits.
func rgb565ToRGBA(px uint16) color.RGBA {
	r := byte(px>>8) & 0xF8
	g := byte(px>>3) & 0xFC
	b := byte(px<<3) & 0xF8
	r |= r >> 5
	g |= g >> 6
	b |= b >> 5
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}
