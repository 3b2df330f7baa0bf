package jpeg

// unzig maps a zig-zag scan index to its natural (row-major) position
// within an 8x8 block. It is process-wide, read-only, and safe to share
// across concurrent decodes.
var unzig = [blockSize]int{
	0, 1, 8, 16, 9, 2, 3, 10,
	17, 24, 32, 25, 18, 11, 4, 5,
	12, 19, 26, 33, 40, 48, 41, 34,
	27, 20, 13, 6, 7, 14, 21, 28,
	35, 42, 49, 56, 57, 50, 43, 36,
	29, 22, 15, 23, 30, 37, 44, 51,
	58, 59, 52, 45, 38, 31, 39, 46,
	53, 60, 61, 54, 47, 55, 62, 63,
}

// winogradScale is the fixed 64-entry scale vector absorbed into the
// quantization tables so the Winograd IDCT in idct.go never needs its
// own per-coefficient scaling pass.
var winogradScale = [blockSize]int32{
	128, 178, 178, 167, 246, 167, 151, 232,
	232, 151, 128, 209, 219, 209, 128, 101,
	178, 197, 197, 178, 101, 69, 139, 167,
	177, 167, 139, 69, 35, 96, 131, 151,
	151, 131, 96, 35, 49, 91, 118, 128,
	118, 91, 49, 46, 81, 101, 101, 81,
	46, 42, 69, 79, 69, 42, 35, 54,
	54, 35, 28, 37, 28, 19, 19, 10,
}

const blockSize = 64
