package sinks

import (
	"image/color"
	"strconv"
	"time"

	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyterm"
)

// Console wraps tinygo.org/x/tinyterm as a scrollback debug readout,
// logging one line per decoded frame: dimensions, decode duration, and
// MCU count. It drives the same kind of small on-device status panel
// the waveshare-epd package exists to drive, repurposed here to watch
// the decoder rather than an application UI.
type Console struct {
	term *tinyterm.Terminal
}

// Displayer is the subset of FrameBuffer/epd2in66b.Device tinyterm
// needs: SetPixel, Size, and Display.
type Displayer interface {
	SetPixel(x, y int16, c color.RGBA)
	Size() (x, y int16)
	Display() error
}

// NewConsole builds a Console backed by display, using a small scratch
// buffer sized to the panel, the usual fixed-size character-buffer
// pattern for embedded output.
func NewConsole(display Displayer) *Console {
	w, h := display.Size()
	buf := make([]byte, int(w)*int(h)/64) // rough glyph-cell budget
	term := tinyterm.NewTerminal(display, w, h, 0, buf, &freemono.Regular9pt7b, color.RGBA{G: 0xFF, A: 0xFF})
	return &Console{term: term}
}

// LogFrame writes one status line for a completed decode.
func (c *Console) LogFrame(width, height int, decodeTime time.Duration, mcuCount int) {
	line := strconv.Itoa(width) + "x" + strconv.Itoa(height) +
		" " + decodeTime.String() +
		" mcus=" + strconv.Itoa(mcuCount) + "\n"
	c.term.Write([]byte(line))
}
