// Command fxplay plays a generated signal through an effect in real time
// and lets the keyboard change parameters while it plays.
//
// Usage:
//
//	fxplay [flags]
//
// Keys:
//
//	[ ]   select previous / next parameter
//	- =   decrease / increase the selected parameter
//	d     toggle a deactivatable parameter
//	b     toggle bypass
//	r     reset all parameters to defaults
//	q     quit
//
// Build with -tags headless to compile without an audio backend.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cwbudde/algo-synthfx/dsp/core"
	"github.com/cwbudde/algo-synthfx/dsp/effects"
	"github.com/cwbudde/algo-synthfx/dsp/fx"
	"github.com/cwbudde/algo-synthfx/internal/cli"
	"golang.org/x/term"
)

type audioOutput interface {
	Close() error
}

type playConfig struct {
	effect     string
	signal     cli.SignalConfig
	sets       cli.SetFlags
	sampleRate int
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}

		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (playConfig, bool, error) {
	fs := flag.NewFlagSet("fxplay", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var sets cli.SetFlags

	effectType := fs.String("effect", effects.PitchRing, "effect type")
	signal := fs.String("signal", cli.SignalSine, "test signal: "+strings.Join(cli.SignalKinds(), ", "))
	freq := fs.Float64("freq", 220, "sine frequency or sweep start in Hz")
	amplitude := fs.Float64("amplitude", 0.3, "signal amplitude")
	loop := fs.Float64("loop", 4, "length of the looped signal in seconds")
	rate := fs.Int("rate", int(core.DefaultSampleRate), "sample rate in Hz")
	verbose := fs.Bool("v", false, "debug logging")
	fs.Var(&sets, "set", "initial parameter Name=value, Name=off or Name=on (repeatable)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: fxplay [flags]\n\n")
		fmt.Fprintf(stderr, "Plays a test signal through an effect. Keys: [ ] select, - = adjust,\n")
		fmt.Fprintf(stderr, "d toggle, b bypass, r reset, q quit.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return playConfig{}, false, err
	}

	if *rate <= 0 {
		return playConfig{}, false, fmt.Errorf("sample rate must be > 0: %d", *rate)
	}

	return playConfig{
		effect: *effectType,
		signal: cli.SignalConfig{
			Kind:       *signal,
			Freq:       *freq,
			Amplitude:  *amplitude,
			Seconds:    *loop,
			SampleRate: float64(*rate),
			Seed:       1,
		},
		sets:       sets,
		sampleRate: *rate,
	}, *verbose, nil
}

// setup builds the rack, applies the initial parameters and prepares the
// looping source.
func setup(cfg playConfig, logger *slog.Logger) (*source, *fx.ParamSet, error) {
	proc, err := cfg.signal.Processor()
	if err != nil {
		return nil, nil, err
	}

	rack, err := fx.NewRack(effects.DefaultRegistry(),
		fx.WithSlots(1),
		fx.WithProcessor(proc),
		fx.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}

	if err := rack.Assign(0, cfg.effect); err != nil {
		return nil, nil, err
	}

	params, err := rack.Params(0)
	if err != nil {
		return nil, nil, err
	}

	if err := cfg.sets.Apply(params); err != nil {
		return nil, nil, fmt.Errorf("-set: %w", err)
	}

	left, right, err := cli.Generate(cfg.signal)
	if err != nil {
		return nil, nil, err
	}

	if len(left) < core.BlockSize {
		return nil, nil, fmt.Errorf("loop shorter than one block (%d samples)", core.BlockSize)
	}

	return newSource(rack, left, right), params, nil
}

func run(args []string, stdin *os.File, stdout, stderr io.Writer) error {
	cfg, verbose, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logger := cli.NewLogger(stderr, verbose)

	src, params, err := setup(cfg, logger)
	if err != nil {
		return err
	}

	out, err := openAudio(cfg.sampleRate, src)
	if err != nil {
		return fmt.Errorf("open audio: %w", err)
	}
	defer out.Close()

	logger.Info("playing", "effect", cfg.effect, "signal", cfg.signal.Kind, "rate", cfg.sampleRate)

	fd := int(stdin.Fd())
	if term.IsTerminal(fd) {
		old, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("raw terminal: %w", err)
		}

		defer func() { _ = term.Restore(fd, old) }()
	}

	ctl := newController(params, src, stdout)
	ctl.printStatus()

	err = readKeys(stdin, ctl)

	fmt.Fprint(stdout, "\r\n")
	logger.Info("stopped", "blocks", src.blocks.Load())

	return err
}

// readKeys feeds bytes from r to the controller until it asks to quit or r
// ends.
func readKeys(r io.Reader, ctl *controller) error {
	buf := make([]byte, 1)

	for {
		n, err := r.Read(buf)
		if n > 0 && ctl.handleKey(buf[0]) {
			return nil
		}

		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err
		}
	}
}
