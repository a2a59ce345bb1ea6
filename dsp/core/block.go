package core

// BlockSize is the number of samples per channel in one processing block.
// Every real-time Process call in this module operates on exactly this many
// samples.
const BlockSize = 32

// BlockSizeInv is 1/BlockSize.
const BlockSizeInv = 1.0 / BlockSize

// IsBlock reports whether both channel slices hold exactly BlockSize samples.
func IsBlock(left, right []float64) bool {
	return len(left) == BlockSize && len(right) == BlockSize
}

// AllFinite reports whether every sample in buf is neither NaN nor infinite.
func AllFinite(buf []float64) bool {
	for _, v := range buf {
		if !IsFinite(v) {
			return false
		}
	}
	return true
}
