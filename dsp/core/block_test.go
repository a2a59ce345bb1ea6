package core

import (
	"math"
	"testing"
)

func TestIsBlock(t *testing.T) {
	l := make([]float64, BlockSize)
	r := make([]float64, BlockSize)
	if !IsBlock(l, r) {
		t.Fatal("expected full block to be accepted")
	}

	if IsBlock(l[:BlockSize-1], r) {
		t.Fatal("short left channel accepted")
	}

	if IsBlock(l, append(r, 0)) {
		t.Fatal("long right channel accepted")
	}
}

func TestAllFinite(t *testing.T) {
	if !AllFinite([]float64{0, -1, 1e300}) {
		t.Fatal("finite samples rejected")
	}
	if AllFinite([]float64{0, math.NaN()}) {
		t.Fatal("NaN accepted")
	}
	if AllFinite([]float64{math.Inf(-1)}) {
		t.Fatal("-Inf accepted")
	}
}
