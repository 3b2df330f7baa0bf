package jpeg

// prescaleQuantTable multiplies a raw 64-entry quantization table (in
// zig-zag storage order) by the Winograd scale vector. The result
// dequantizes coefficients already scaled for idctRows/idctCols, so the
// IDCT itself never has to touch the quant tables.
func prescaleQuantTable(raw [blockSize]int32) [blockSize]int32 {
	var out [blockSize]int32
	for i := 0; i < blockSize; i++ {
		x := raw[i] * winogradScale[i]
		out[i] = (x + (1 << 2)) >> 3
	}
	return out
}
