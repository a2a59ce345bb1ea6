package main

import (
	"encoding/binary"
	"math"
	"sync/atomic"

	"github.com/cwbudde/algo-synthfx/dsp/core"
	"github.com/cwbudde/algo-synthfx/dsp/fx"
)

const bytesPerFrame = 8

// source is the io.Reader handed to the audio player. It loops a generated
// signal, runs it through the rack one block at a time and encodes the
// result as interleaved little-endian float32.
type source struct {
	rack *fx.Rack

	inL, inR []float64
	pos      int

	left, right [core.BlockSize]float64
	pending     []byte
	encoded     [core.BlockSize * bytesPerFrame]byte

	bypass atomic.Bool
	blocks atomic.Int64
}

// newSource loops left/right, which are trimmed to whole blocks. At least
// one block is required.
func newSource(rack *fx.Rack, left, right []float64) *source {
	n := min(len(left), len(right)) / core.BlockSize * core.BlockSize

	return &source{rack: rack, inL: left[:n], inR: right[:n]}
}

// Read implements io.Reader. It never fails; a rack error leaves the block
// unprocessed.
func (s *source) Read(p []byte) (int, error) {
	if len(s.inL) == 0 {
		clear(p)
		return len(p), nil
	}

	n := 0
	for n < len(p) {
		if len(s.pending) == 0 {
			s.nextBlock()
		}

		c := copy(p[n:], s.pending)
		s.pending = s.pending[c:]
		n += c
	}

	return n, nil
}

func (s *source) nextBlock() {
	copy(s.left[:], s.inL[s.pos:s.pos+core.BlockSize])
	copy(s.right[:], s.inR[s.pos:s.pos+core.BlockSize])

	s.pos += core.BlockSize
	if s.pos >= len(s.inL) {
		s.pos = 0
	}

	if !s.bypass.Load() {
		_ = s.rack.Process(s.left[:], s.right[:])
	}

	for k := range core.BlockSize {
		o := k * bytesPerFrame
		binary.LittleEndian.PutUint32(s.encoded[o:], math.Float32bits(float32(s.left[k])))
		binary.LittleEndian.PutUint32(s.encoded[o+4:], math.Float32bits(float32(s.right[k])))
	}

	s.pending = s.encoded[:]
	s.blocks.Add(1)
}
