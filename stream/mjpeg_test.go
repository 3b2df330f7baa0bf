package stream

import (
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestSplitterExtractsFrames(t *testing.T) {
	c := qt.New(t)

	const boundary = "frame"
	body := "--" + boundary + "\r\n" +
		"Content-Type: image/jpeg\r\n\r\n" +
		"FRAME-ONE-BYTES" + "\r\n" +
		"--" + boundary + "\r\n" +
		"Content-Type: image/jpeg\r\n\r\n" +
		"FRAME-TWO-BYTES" + "\r\n" +
		"--" + boundary + "--"

	s := NewSplitter(strings.NewReader(body), boundary, 0)

	f1, err := s.NextFrame()
	c.Assert(err, qt.IsNil)
	c.Assert(string(TrimTrailingCRLF(f1)), qt.Equals, "FRAME-ONE-BYTES")

	f2, err := s.NextFrame()
	c.Assert(err, qt.IsNil)
	c.Assert(string(TrimTrailingCRLF(f2)), qt.Equals, "FRAME-TWO-BYTES")
}

func TestSplitterMissingBoundaryErrors(t *testing.T) {
	c := qt.New(t)

	s := NewSplitter(strings.NewReader("no boundary here"), "frame", 0)
	_, err := s.NextFrame()
	c.Assert(err, qt.Equals, ErrBoundaryNotFound)
}

func TestIdxRabinKarpBytes(t *testing.T) {
	c := qt.New(t)

	c.Assert(idxRabinKarpBytes([]byte("hello world"), []byte("world")), qt.Equals, 6)
	c.Assert(idxRabinKarpBytes([]byte("hello world"), []byte("xyz")), qt.Equals, -1)
	c.Assert(idxRabinKarpBytes([]byte("aaaa"), []byte("aa")), qt.Equals, 0)
}
