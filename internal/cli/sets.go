package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-synthfx/dsp/fx"
)

// ErrSetSyntax is returned for a -set value that is not Name=value.
var ErrSetSyntax = errors.New("expected Name=value")

// Assignment is one parsed Name=value flag. Value "off" or "on" toggles a
// deactivatable parameter instead of setting it.
type Assignment struct {
	Name   string
	Value  float64
	Toggle bool
	Off    bool
}

// SetFlags collects repeated -set flags. It implements flag.Value.
type SetFlags []Assignment

// String implements flag.Value.
func (s *SetFlags) String() string {
	parts := make([]string, 0, len(*s))
	for _, a := range *s {
		switch {
		case a.Toggle && a.Off:
			parts = append(parts, a.Name+"=off")
		case a.Toggle:
			parts = append(parts, a.Name+"=on")
		default:
			parts = append(parts, a.Name+"="+strconv.FormatFloat(a.Value, 'g', -1, 64))
		}
	}

	return strings.Join(parts, ",")
}

// Set implements flag.Value.
func (s *SetFlags) Set(v string) error {
	a, err := ParseAssignment(v)
	if err != nil {
		return err
	}

	*s = append(*s, a)

	return nil
}

// ParseAssignment parses "Name=value". Names may contain spaces; both sides
// are trimmed.
func ParseAssignment(v string) (Assignment, error) {
	name, raw, ok := strings.Cut(v, "=")
	name = strings.TrimSpace(name)
	raw = strings.TrimSpace(raw)

	if !ok || name == "" || raw == "" {
		return Assignment{}, fmt.Errorf("%w: %q", ErrSetSyntax, v)
	}

	switch strings.ToLower(raw) {
	case "off":
		return Assignment{Name: name, Toggle: true, Off: true}, nil
	case "on":
		return Assignment{Name: name, Toggle: true}, nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Assignment{}, fmt.Errorf("%w: %q: %w", ErrSetSyntax, v, err)
	}

	return Assignment{Name: name, Value: f}, nil
}

// Apply writes every assignment into params. Names match case-insensitively.
func (s SetFlags) Apply(params *fx.ParamSet) error {
	for _, a := range s {
		id, ok := LookupParam(params, a.Name)
		if !ok {
			return fmt.Errorf("%w: %q", fx.ErrUnknownParam, a.Name)
		}

		var err error
		if a.Toggle {
			err = params.SetDeactivated(id, a.Off)
		} else {
			err = params.Set(id, a.Value)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

// LookupParam resolves name to a parameter id, preferring an exact match
// over a case-insensitive one.
func LookupParam(params *fx.ParamSet, name string) (int, bool) {
	if id, ok := params.Lookup(name); ok {
		return id, true
	}

	for id := range params.Len() {
		if strings.EqualFold(params.Spec(id).Name, name) {
			return id, true
		}
	}

	return -1, false
}
