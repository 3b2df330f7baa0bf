package sinks

import (
	"image/color"
	"strconv"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

// Annotate draws a decoded frame's dimensions and a running frame
// counter onto a FrameBuffer using tinygo.org/x/tinyfont, after decode
// completes. It is a post-decode step rather than a jpeg.RowSink itself:
// overlaying text on a row mid-decode would have to special-case the
// handful of rows the glyphs occupy, so callers draw on a finished
// canvas instead.
type Annotate struct {
	Font   *tinyfont.Font
	Color  color.RGBA
	frames int
}

// NewAnnotate returns an Annotate using the bundled FreeMono font in
// white, the same default tinyfont ships in its own examples.
func NewAnnotate() *Annotate {
	return &Annotate{
		Font:  &freemono.Bold9pt7b,
		Color: color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	}
}

// Draw overlays "WxH #N" in the top-left corner of fb, incrementing the
// internal frame counter.
func (a *Annotate) Draw(fb *FrameBuffer) {
	a.frames++
	w, h := fb.Size()
	label := strconv.Itoa(int(w)) + "x" + strconv.Itoa(int(h)) + " #" + strconv.Itoa(a.frames)
	tinyfont.WriteLine(fb, a.Font, 2, 12, label, a.Color)
}
