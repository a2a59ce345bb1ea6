package fx

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnknownEffect is returned when an effect type is not registered.
	ErrUnknownEffect = errors.New("unknown effect type")

	// ErrDuplicateEffect is returned when an effect type is registered twice.
	ErrDuplicateEffect = errors.New("duplicate effect type")

	// ErrSlotRange is returned for slot indices outside the rack.
	ErrSlotRange = errors.New("slot out of range")

	// ErrBlockSize is returned when a block is not core.BlockSize samples
	// per channel.
	ErrBlockSize = errors.New("block size mismatch")

	// ErrUnknownParam is returned for parameter ids or names that do not
	// exist.
	ErrUnknownParam = errors.New("unknown parameter")

	// ErrParamValue is returned when a parameter write is not a finite
	// number.
	ErrParamValue = errors.New("invalid parameter value")

	// ErrNotDeactivatable is returned when deactivating a parameter that
	// cannot be switched off.
	ErrNotDeactivatable = errors.New("parameter cannot be deactivated")
)

// Effect is implemented by every effect type.
//
// Process transforms left and right in place. Both slices must hold exactly
// core.BlockSize samples; implementations leave other lengths untouched.
// Init and Suspend reset all processing state and never allocate.
type Effect interface {
	Init()
	Process(left, right []float64)
	Suspend()
	Params() []ParamSpec
	Groups() []Group
}

// Group is a labeled run of parameters for display. Position is the row the
// label is drawn at.
type Group struct {
	Label    string
	Position int
}

// ParamSpec describes one parameter.
type ParamSpec struct {
	Name          string
	Unit          string
	Min, Max      float64
	Default       float64
	Deactivatable bool
	// Group indexes the effect's Groups.
	Group int
}

// Validate reports whether the range and default are usable.
func (s ParamSpec) Validate() error {
	if s.Name == "" {
		return errors.New("parameter name is empty")
	}

	for _, v := range []float64{s.Min, s.Max, s.Default} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("parameter %q: range must be finite", s.Name)
		}
	}

	if s.Min >= s.Max {
		return fmt.Errorf("parameter %q: min %g must be below max %g", s.Name, s.Min, s.Max)
	}

	if s.Default < s.Min || s.Default > s.Max {
		return fmt.Errorf("parameter %q: default %g outside [%g, %g]", s.Name, s.Default, s.Min, s.Max)
	}

	return nil
}

// Context carries what an effect needs from its host.
type Context struct {
	SampleRate float64
	// Params holds the effect's parameter values. When nil the effect
	// creates a set at defaults.
	Params *ParamSet
}

// Bind returns the parameter set for an effect with the given layout. A nil
// Params yields a fresh set at defaults; a non-nil one must match specs by
// count and name.
func (c Context) Bind(specs []ParamSpec) (*ParamSet, error) {
	if c.SampleRate <= 0 || math.IsNaN(c.SampleRate) || math.IsInf(c.SampleRate, 0) {
		return nil, fmt.Errorf("sample rate must be > 0 and finite: %f", c.SampleRate)
	}

	if c.Params == nil {
		return NewParamSet(specs), nil
	}

	if c.Params.Len() != len(specs) {
		return nil, fmt.Errorf("parameter set has %d entries, effect needs %d", c.Params.Len(), len(specs))
	}

	for i, s := range specs {
		if got := c.Params.Spec(i).Name; got != s.Name {
			return nil, fmt.Errorf("parameter %d is %q, effect needs %q", i, got, s.Name)
		}
	}

	return c.Params, nil
}
