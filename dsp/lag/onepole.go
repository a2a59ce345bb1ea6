package lag

// OnePole is an exponential smoother y = c*y + (1-c)*x. Coefficients close
// to 1 glide slowly; 0 jumps to the input in one step.
type OnePole struct {
	value float64
	coeff float64
}

// NewOnePole returns a smoother starting at value with coefficient coeff,
// clamped to [0, 1].
func NewOnePole(value, coeff float64) OnePole {
	p := OnePole{value: value}
	p.SetCoefficient(coeff)

	return p
}

// SetCoefficient sets the smoothing coefficient, clamped to [0, 1].
func (p *OnePole) SetCoefficient(coeff float64) {
	switch {
	case coeff < 0 || coeff != coeff:
		coeff = 0
	case coeff > 1:
		coeff = 1
	}

	p.coeff = coeff
}

// Coefficient returns the smoothing coefficient.
func (p *OnePole) Coefficient() float64 { return p.coeff }

// Value returns the smoothed value.
func (p *OnePole) Value() float64 { return p.value }

// Set overwrites the smoothed value.
func (p *OnePole) Set(v float64) { p.value = v }

// Step performs one smoothing step toward target and returns the new value.
func (p *OnePole) Step(target float64) float64 {
	p.value = p.coeff*p.value + (1-p.coeff)*target

	return p.value
}

// StepN performs n smoothing steps toward target and returns the new value.
// The loop bound is the caller's, so real-time callers pass a fixed count.
func (p *OnePole) StepN(target float64, n int) float64 {
	for range n {
		p.value = p.coeff*p.value + (1-p.coeff)*target
	}

	return p.value
}
