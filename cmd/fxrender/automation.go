package main

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-synthfx/dsp/core"
	"github.com/cwbudde/algo-synthfx/dsp/fx"
	"github.com/cwbudde/algo-synthfx/internal/cli"
	lua "github.com/yuin/gopher-lua"
)

const automateFunc = "automate"

var errNoAutomate = errors.New("script does not define automate(block, t)")

// automation runs a Lua script's automate(block, t) before each block. The
// function returns a table of parameter names to numbers; a boolean value
// switches a deactivatable parameter on (true) or off (false).
//
//	function automate(block, t)
//	  return { Pitch = 12 * math.sin(t), ["Low Cut"] = t > 1 }
//	end
//
// The globals sampleRate and blockSize are set before the script runs.
type automation struct {
	state *lua.LState
	fn    lua.LValue
}

func loadAutomation(path string, sampleRate float64) (*automation, error) {
	return newAutomation(sampleRate, func(l *lua.LState) error { return l.DoFile(path) })
}

func loadAutomationString(source string, sampleRate float64) (*automation, error) {
	return newAutomation(sampleRate, func(l *lua.LState) error { return l.DoString(source) })
}

func newAutomation(sampleRate float64, load func(*lua.LState) error) (*automation, error) {
	l := lua.NewState()
	l.SetGlobal("sampleRate", lua.LNumber(sampleRate))
	l.SetGlobal("blockSize", lua.LNumber(core.BlockSize))

	if err := load(l); err != nil {
		l.Close()
		return nil, fmt.Errorf("load automation: %w", err)
	}

	fn := l.GetGlobal(automateFunc)
	if fn.Type() != lua.LTFunction {
		l.Close()
		return nil, errNoAutomate
	}

	return &automation{state: l, fn: fn}, nil
}

// apply calls automate for block at time t seconds and writes the result
// into params. A nil return leaves every parameter unchanged.
func (a *automation) apply(block int, t float64, params *fx.ParamSet) error {
	err := a.state.CallByParam(lua.P{Fn: a.fn, NRet: 1, Protect: true},
		lua.LNumber(block), lua.LNumber(t))
	if err != nil {
		return fmt.Errorf("automate(%d): %w", block, err)
	}

	ret := a.state.Get(-1)
	a.state.Pop(1)

	if ret == lua.LNil {
		return nil
	}

	table, ok := ret.(*lua.LTable)
	if !ok {
		return fmt.Errorf("automate(%d) returned %s, want table", block, ret.Type())
	}

	var sets cli.SetFlags

	var bad error

	table.ForEach(func(k, v lua.LValue) {
		if bad != nil {
			return
		}

		name, ok := k.(lua.LString)
		if !ok {
			bad = fmt.Errorf("automate(%d): key %s is not a parameter name", block, k.String())
			return
		}

		switch v := v.(type) {
		case lua.LNumber:
			sets = append(sets, cli.Assignment{Name: string(name), Value: float64(v)})
		case lua.LBool:
			sets = append(sets, cli.Assignment{Name: string(name), Toggle: true, Off: !bool(v)})
		default:
			bad = fmt.Errorf("automate(%d): %s = %s, want number or boolean", block, name, v.Type())
		}
	})

	if bad != nil {
		return bad
	}

	return sets.Apply(params)
}

func (a *automation) close() {
	a.state.Close()
}
