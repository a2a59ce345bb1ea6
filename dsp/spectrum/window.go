package spectrum

import (
	"errors"
	"math"
)

// ErrInvalidLength is returned for window lengths below 1.
var ErrInvalidLength = errors.New("spectrum: window length must be >= 1")

// Hann returns the symmetric Hann window of length size, zero at both ends.
// A length of 1 yields [1].
func Hann(size int) ([]float64, error) {
	if size < 1 {
		return nil, ErrInvalidLength
	}

	w := make([]float64, size)
	if size == 1 {
		w[0] = 1
		return w, nil
	}

	step := 2 * math.Pi / float64(size-1)
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(step*float64(i))
	}

	return w, nil
}
