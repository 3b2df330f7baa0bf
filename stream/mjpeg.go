// Package stream splits a multipart MJPEG byte stream, as served by most
// LAN IP cameras over HTTP, into individual JPEG frames.
package stream

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

// ErrBoundaryNotFound is returned when the stream ends before a second
// boundary delimiter is found to close the current frame.
var ErrBoundaryNotFound = errors.New("stream: multipart boundary not found before EOF")

// Splitter pulls successive JPEG frames out of a multipart/x-mixed-replace
// byte stream. It keeps a growing internal buffer and uses Rabin-Karp
// search to locate the boundary token, since the token can appear
// anywhere inside an arbitrarily large read chunk.
type Splitter struct {
	r        *bufio.Reader
	boundary []byte
	buf      []byte
	maxFrame int
}

// NewSplitter constructs a Splitter reading from r, using boundary
// (without the leading "--") as the multipart delimiter. maxFrame bounds
// the internal buffer so a malformed stream without a boundary cannot
// grow memory without limit; a value of 0 selects a 1 MiB default.
func NewSplitter(r io.Reader, boundary string, maxFrame int) *Splitter {
	if maxFrame <= 0 {
		maxFrame = 1 << 20
	}
	return &Splitter{
		r:        bufio.NewReaderSize(r, 4096),
		boundary: append([]byte("--"), boundary...),
		maxFrame: maxFrame,
	}
}

// NextFrame returns the raw bytes of the next JPEG frame in the stream,
// stripping the part's MIME headers. It blocks until a full frame has
// been buffered or the underlying reader returns an error.
func (s *Splitter) NextFrame() ([]byte, error) {
	// Discard up to and including the first boundary of this part.
	start, err := s.findAfter(s.boundary)
	if err != nil {
		return nil, err
	}
	s.buf = s.buf[start:]

	headerEnd, err := s.findAfter([]byte("\r\n\r\n"))
	if err != nil {
		return nil, err
	}
	s.buf = s.buf[headerEnd:]

	end, err := s.indexOf(s.boundary)
	if err != nil {
		return nil, err
	}

	frame := make([]byte, end)
	copy(frame, s.buf[:end])
	s.buf = s.buf[end:]
	return frame, nil
}

// findAfter grows the buffer until tok is found, then returns the index
// just past it.
func (s *Splitter) findAfter(tok []byte) (int, error) {
	idx, err := s.indexOf(tok)
	if err != nil {
		return 0, err
	}
	return idx + len(tok), nil
}

// indexOf grows the buffer by reading from the underlying reader until
// tok is present, returning its start index.
func (s *Splitter) indexOf(tok []byte) (int, error) {
	for {
		if idx := idxRabinKarpBytes(s.buf, tok); idx >= 0 {
			return idx, nil
		}
		if len(s.buf) > s.maxFrame {
			return 0, ErrBoundaryNotFound
		}
		chunk := make([]byte, 4096)
		n, err := s.r.Read(chunk)
		if n > 0 {
			s.buf = append(s.buf, chunk[:n]...)
		}
		if err != nil {
			if idx := idxRabinKarpBytes(s.buf, tok); idx >= 0 {
				return idx, nil
			}
			if err == io.EOF {
				return 0, ErrBoundaryNotFound
			}
			return 0, err
		}
	}
}

// TrimTrailingCRLF removes the "\r\n" that most encoders place between a
// frame's JPEG bytes and the next boundary delimiter, which would
// otherwise appear as a zero-length trailing segment after EOI.
func TrimTrailingCRLF(frame []byte) []byte {
	return bytes.TrimRight(frame, "\r\n")
}
