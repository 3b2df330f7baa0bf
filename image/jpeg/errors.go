package jpeg

import "errors"

// FormatError reports a malformed or internally inconsistent JPEG
// stream: bad segment lengths or truncated DHT, DQT and SOS payloads.
// Coefficient runs that overflow a block are reported as ErrACOverflow
// instead. Named and shaped after the standard library's
// own image/jpeg error type.
type FormatError string

func (e FormatError) Error() string { return "jpeg: invalid format: " + string(e) }

// UnsupportedError reports a structurally valid JPEG feature this decoder
// does not implement: progressive scans, non-8-bit precision, component
// counts other than 1 or 3, or table ids above 1.
type UnsupportedError string

func (e UnsupportedError) Error() string { return "jpeg: unsupported feature: " + string(e) }

// Sentinel errors for the remaining spec error kinds that don't carry a
// useful per-occurrence message.
var (
	// ErrMissingSOI is returned when the input does not begin with the
	// SOI marker (0xFFD8).
	ErrMissingSOI = errors.New("jpeg: missing SOI marker")

	// ErrNoSOF is returned by Info when EOI is reached without having
	// seen a SOF0 segment. Running off the end of the input instead
	// yields ErrTruncated.
	ErrNoSOF = errors.New("jpeg: no SOF0 segment found")

	// ErrEOIBeforeSOS is returned when EOI is encountered before the
	// scan header has been parsed.
	ErrEOIBeforeSOS = errors.New("jpeg: EOI before SOS")

	// ErrTruncated is returned when the input ends before the marker
	// stream reaches SOS (Decode) or SOF0 (Info), and when a search for
	// the next restart marker runs off the end of the input. An
	// entropy-coded segment that is cut short without a pending restart
	// marker is not reported as ErrTruncated: the bit reader supplies
	// zero bits past end-of-input, and decoding continues on them.
	ErrTruncated = errors.New("jpeg: truncated entropy-coded data")

	// ErrHuffmanExhausted is returned when decoding a Huffman code
	// consumes 16 bits without finding a matching bucket.
	ErrHuffmanExhausted = errors.New("jpeg: Huffman code exhausted without match")

	// ErrACOverflow is returned when an AC coefficient run would write
	// past index 63 of a block.
	ErrACOverflow = errors.New("jpeg: AC coefficient run overflows block")
)
