// Package delay provides a circular delay line with fractional reads.
package delay

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-synthfx/dsp/interp"
)

// Line is a circular delay line. Reads are made before the current input is
// written, so delay 1 returns the most recently written sample and delay
// Len() the oldest.
type Line struct {
	buffer   []float64
	writePos int
}

// New returns a delay line of fixed size.
func New(size int) (*Line, error) {
	if size <= 0 {
		return nil, fmt.Errorf("delay size must be > 0: %d", size)
	}

	return &Line{buffer: make([]float64, size)}, nil
}

// ForDuration returns a line long enough for fractional reads of up to
// seconds at sampleRate.
func ForDuration(seconds, sampleRate float64) (*Line, error) {
	if seconds <= 0 || sampleRate <= 0 || math.IsNaN(seconds*sampleRate) || math.IsInf(seconds*sampleRate, 0) {
		return nil, fmt.Errorf("delay duration must be > 0 and finite: %fs at %f Hz", seconds, sampleRate)
	}

	return New(int(math.Ceil(seconds*sampleRate)) + 3)
}

// Len returns internal buffer size.
func (d *Line) Len() int {
	return len(d.buffer)
}

// Write writes one sample.
func (d *Line) Write(sample float64) {
	d.buffer[d.writePos] = sample

	d.writePos++
	if d.writePos >= len(d.buffer) {
		d.writePos = 0
	}
}

// Read reads an integer delay in samples, clamped to [1, Len()].
func (d *Line) Read(delay int) float64 {
	size := len(d.buffer)
	delay = min(max(delay, 1), size)

	readPos := d.writePos - delay
	if readPos < 0 {
		readPos += size
	}

	return d.buffer[readPos]
}

// ReadFractional reads with cubic Hermite interpolation. delay is clamped to
// [1, Len()-2].
func (d *Line) ReadFractional(delay float64) float64 {
	maxDelay := float64(len(d.buffer) - 2)
	if !(delay >= 1) {
		delay = 1
	}

	if delay > maxDelay {
		delay = maxDelay
	}

	p := int(delay)
	t := delay - float64(p)

	xm1 := d.Read(p - 1)
	x0 := d.Read(p)
	x1 := d.Read(p + 1)
	x2 := d.Read(p + 2)

	return interp.Hermite4(t, xm1, x0, x1, x2)
}

// Reset clears line state.
func (d *Line) Reset() {
	for i := range d.buffer {
		d.buffer[i] = 0
	}

	d.writePos = 0
}
