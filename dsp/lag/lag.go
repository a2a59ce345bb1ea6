package lag

// Lag is a linearly interpolated control value. The zero value is a Lag at 0
// with target 0.
//
// Lag is not thread-safe; it belongs to the audio thread.
type Lag struct {
	current float64
	target  float64
}

// New returns a Lag whose current value and target are both v.
func New(v float64) Lag {
	return Lag{current: v, target: v}
}

// SetTarget sets the target immediately. The current value is untouched until
// Instantize is called or a block consumer advances the ramp. Use it together
// with Instantize for one-shot initialization.
func (l *Lag) SetTarget(v float64) {
	l.target = v
}

// SetTargetSmoothed schedules convergence to v over the next block.
func (l *Lag) SetTargetSmoothed(v float64) {
	l.target = v
}

// Instantize forces the current value to the target without a ramp.
func (l *Lag) Instantize() {
	l.current = l.target
}

// Current returns the value reached at the end of the last block.
func (l *Lag) Current() float64 { return l.current }

// Target returns the scheduled target value.
func (l *Lag) Target() float64 { return l.target }

// Ramping reports whether the next block will interpolate.
func (l *Lag) Ramping() bool { return l.current != l.target }

// At returns the ramp value for sample k of an n-sample block without
// advancing the Lag. Sample n-1 is exactly the target.
func (l *Lag) At(k, n int) float64 {
	if k >= n-1 {
		return l.target
	}

	return l.current + (l.target-l.current)*float64(k+1)/float64(n)
}

// Ramp fills dst with the per-sample ramp from the current value to the target
// and completes the block: afterwards Current equals Target. The last element
// of dst is exactly the target and no element passes it.
func (l *Lag) Ramp(dst []float64) {
	n := len(dst)
	if n == 0 {
		return
	}

	if l.current == l.target {
		for i := range dst {
			dst[i] = l.target
		}

		return
	}

	start := l.current
	delta := l.target - start
	inv := 1 / float64(n)

	for i := 0; i < n-1; i++ {
		dst[i] = start + delta*float64(i+1)*inv
	}

	dst[n-1] = l.target
	l.current = l.target
}

// Advance completes a block without producing samples. Consumers that compute
// the ramp through At call it once per block.
func (l *Lag) Advance() {
	l.current = l.target
}
