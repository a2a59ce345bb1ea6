package fx

import (
	"errors"
	"fmt"
	"slices"
)

// Factory builds one effect instance.
type Factory func(ctx Context) (Effect, error)

type registration struct {
	specs   []ParamSpec
	factory Factory
}

// Registry maps effect type names to their parameter layouts and factories.
type Registry struct {
	entries map[string]registration
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]registration)}
}

// Register adds an effect type. specs is the layout of the parameter set the
// factory will be handed.
func (r *Registry) Register(effectType string, specs []ParamSpec, factory Factory) error {
	if effectType == "" {
		return errors.New("empty effect type")
	}

	if factory == nil {
		return errors.New("nil factory")
	}

	if _, exists := r.entries[effectType]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateEffect, effectType)
	}

	for _, s := range specs {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("effect %s: %w", effectType, err)
		}
	}

	r.entries[effectType] = registration{
		specs:   slices.Clone(specs),
		factory: factory,
	}

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(effectType string, specs []ParamSpec, factory Factory) {
	if err := r.Register(effectType, specs, factory); err != nil {
		panic("fx registry: " + err.Error())
	}
}

// Lookup returns the factory for the given effect type, or nil.
func (r *Registry) Lookup(effectType string) Factory {
	return r.entries[effectType].factory
}

// Specs returns the parameter layout of effectType.
func (r *Registry) Specs(effectType string) ([]ParamSpec, error) {
	e, ok := r.entries[effectType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEffect, effectType)
	}

	return slices.Clone(e.specs), nil
}

// New builds an effect of effectType at sampleRate with a fresh parameter
// set at defaults.
func (r *Registry) New(effectType string, sampleRate float64) (Effect, *ParamSet, error) {
	e, ok := r.entries[effectType]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownEffect, effectType)
	}

	params := NewParamSet(e.specs)

	effect, err := e.factory(Context{SampleRate: sampleRate, Params: params})
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", effectType, err)
	}

	return effect, params, nil
}

// Types returns the registered effect types in sorted order.
func (r *Registry) Types() []string {
	out := make([]string, 0, len(r.entries))
	for name := range r.entries {
		out = append(out, name)
	}

	slices.Sort(out)

	return out
}
