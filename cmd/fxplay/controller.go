package main

import (
	"fmt"
	"io"

	"github.com/cwbudde/algo-synthfx/dsp/fx"
)

// adjustSteps is the number of key presses that cover a parameter's range.
const adjustSteps = 50

// controller maps single key presses to parameter edits. It runs on the UI
// goroutine; the audio goroutine only reads the ParamSet.
type controller struct {
	params   *fx.ParamSet
	src      *source
	selected int
	out      io.Writer
}

func newController(params *fx.ParamSet, src *source, out io.Writer) *controller {
	return &controller{params: params, src: src, out: out}
}

// handleKey applies one key and reports whether playback should stop.
func (c *controller) handleKey(b byte) bool {
	n := c.params.Len()

	switch b {
	case 'q', 'Q', 3, 4: // Ctrl-C, Ctrl-D
		return true
	case ']':
		c.selected = (c.selected + 1) % n
	case '[':
		c.selected = (c.selected + n - 1) % n
	case '=', '+':
		c.adjust(1)
	case '-', '_':
		c.adjust(-1)
	case 'd':
		if c.params.Spec(c.selected).Deactivatable {
			_ = c.params.SetDeactivated(c.selected, !c.params.Deactivated(c.selected))
		}
	case 'b':
		if c.src != nil {
			c.src.bypass.Store(!c.src.bypass.Load())
		}
	case 'r':
		c.params.ResetDefaults()
	default:
		return false
	}

	c.printStatus()

	return false
}

func (c *controller) adjust(dir float64) {
	spec := c.params.Spec(c.selected)
	step := (spec.Max - spec.Min) / adjustSteps
	v := min(max(c.params.Float(c.selected)+dir*step, spec.Min), spec.Max)
	_ = c.params.Set(c.selected, v)
}

// status renders the selected parameter as one line.
func (c *controller) status() string {
	spec := c.params.Spec(c.selected)

	state := ""
	if c.params.Deactivated(c.selected) {
		state = " (off)"
	}

	if c.src != nil && c.src.bypass.Load() {
		state += " [bypass]"
	}

	return fmt.Sprintf("[%d/%d] %s = %.3f %s%s", c.selected+1, c.params.Len(), spec.Name,
		c.params.Float(c.selected), spec.Unit, state)
}

func (c *controller) printStatus() {
	if c.out == nil {
		return
	}

	// Raw mode: return to column 0 and clear the line.
	fmt.Fprintf(c.out, "\r\x1b[K%s", c.status())
}
