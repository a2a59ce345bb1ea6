package fx

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/cwbudde/algo-synthfx/dsp/core"
)

// Param is one parameter value shared between a control goroutine and the
// audio goroutine.
type Param struct {
	spec        ParamSpec
	bits        atomic.Uint64
	deactivated atomic.Bool
}

func (p *Param) load() float64 { return math.Float64frombits(p.bits.Load()) }

func (p *Param) store(v float64) { p.bits.Store(math.Float64bits(v)) }

// ParamSet is an ordered set of parameters indexed by id.
//
// Writers may store any finite value; readers on the audio path use Clamped
// so out-of-range writes are limited to the declared range. Reads of unknown
// ids return zero rather than failing.
type ParamSet struct {
	params []Param
}

// NewParamSet returns a set laid out by specs with every value at its
// default.
func NewParamSet(specs []ParamSpec) *ParamSet {
	s := &ParamSet{params: make([]Param, len(specs))}
	for i := range specs {
		s.params[i].spec = specs[i]
	}

	s.ResetDefaults()

	return s
}

// Len returns the number of parameters.
func (s *ParamSet) Len() int { return len(s.params) }

// Spec returns the descriptor for id, or the zero spec when id is unknown.
func (s *ParamSet) Spec(id int) ParamSpec {
	if id < 0 || id >= len(s.params) {
		return ParamSpec{}
	}

	return s.params[id].spec
}

// Lookup returns the id of the parameter called name.
func (s *ParamSet) Lookup(name string) (int, bool) {
	for i := range s.params {
		if s.params[i].spec.Name == name {
			return i, true
		}
	}

	return -1, false
}

// Set stores v for id. The value is kept as written and clamped on read.
func (s *ParamSet) Set(id int, v float64) error {
	if id < 0 || id >= len(s.params) {
		return fmt.Errorf("%w: id %d", ErrUnknownParam, id)
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s=%v", ErrParamValue, s.params[id].spec.Name, v)
	}

	s.params[id].store(v)

	return nil
}

// SetByName stores v for the parameter called name.
func (s *ParamSet) SetByName(name string, v float64) error {
	id, ok := s.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownParam, name)
	}

	return s.Set(id, v)
}

// SetDeactivated switches a deactivatable parameter off or back on.
func (s *ParamSet) SetDeactivated(id int, off bool) error {
	if id < 0 || id >= len(s.params) {
		return fmt.Errorf("%w: id %d", ErrUnknownParam, id)
	}

	if !s.params[id].spec.Deactivatable {
		return fmt.Errorf("%w: %s", ErrNotDeactivatable, s.params[id].spec.Name)
	}

	s.params[id].deactivated.Store(off)

	return nil
}

// Float returns the stored value for id without clamping.
func (s *ParamSet) Float(id int) float64 {
	if id < 0 || id >= len(s.params) {
		return 0
	}

	return s.params[id].load()
}

// Clamped returns the value for id limited to its declared range.
func (s *ParamSet) Clamped(id int) float64 {
	if id < 0 || id >= len(s.params) {
		return 0
	}

	p := &s.params[id]

	return core.Clamp(p.load(), p.spec.Min, p.spec.Max)
}

// Deactivated reports whether id is switched off.
func (s *ParamSet) Deactivated(id int) bool {
	if id < 0 || id >= len(s.params) {
		return false
	}

	return s.params[id].deactivated.Load()
}

// ResetDefaults restores every value to its default and reactivates every
// parameter.
func (s *ParamSet) ResetDefaults() {
	for i := range s.params {
		s.params[i].store(s.params[i].spec.Default)
		s.params[i].deactivated.Store(false)
	}
}

// CopyFrom copies values and deactivation flags from src, which must have
// the same layout.
func (s *ParamSet) CopyFrom(src *ParamSet) error {
	if src.Len() != s.Len() {
		return fmt.Errorf("parameter layout mismatch: %d != %d", src.Len(), s.Len())
	}

	for i := range s.params {
		if src.params[i].spec.Name != s.params[i].spec.Name {
			return fmt.Errorf("parameter layout mismatch at %d: %q != %q",
				i, src.params[i].spec.Name, s.params[i].spec.Name)
		}
	}

	for i := range s.params {
		s.params[i].store(src.params[i].load())
		s.params[i].deactivated.Store(src.params[i].deactivated.Load())
	}

	return nil
}

// Values returns a copy of the stored values in id order.
func (s *ParamSet) Values() []float64 {
	out := make([]float64, len(s.params))
	for i := range s.params {
		out[i] = s.params[i].load()
	}

	return out
}
