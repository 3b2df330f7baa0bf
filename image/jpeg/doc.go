// Package jpeg decodes baseline sequential JPEG images (SOF0, 8-bit
// precision, Huffman coded, grayscale or YCbCr) directly to RGB565 pixel
// rows.
//
// Unlike the standard library's image/jpeg, this package never builds a
// whole-image buffer: it allocates a single row buffer sized to one MCU
// row of output and hands completed rows to a caller-supplied RowSink as
// soon as they are ready. That makes it suitable for microcontrollers
// and other memory-constrained targets, at the cost of supporting only
// the baseline subset of the format: no progressive scans, no
// arithmetic coding, no extended or lossless modes.
package jpeg
