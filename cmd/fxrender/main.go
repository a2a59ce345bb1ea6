// Command fxrender renders a generated test signal through one effect and
// prints what came out.
//
// Usage:
//
//	fxrender [flags]
//
// The signal is processed block by block through a single rack slot. An
// optional Lua script can change parameters before every block; see
// automate in automation.go for its contract.
//
// Examples:
//
//	fxrender -list
//	fxrender -effect pitchring -signal sine -freq 220 -seconds 2 -set Mix=0.5
//	fxrender -effect flanger -signal noise -set "Base Delay=2" -out out.f32
//	fxrender -effect pitchring -automation sweep.lua -out out.f32
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
	"github.com/cwbudde/algo-synthfx/internal/cli"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}

		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("fxrender", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var sets cli.SetFlags

	effectType := fs.String("effect", effects.PitchRing, "effect type (see -list)")
	signal := fs.String("signal", cli.SignalSine, "test signal: "+strings.Join(cli.SignalKinds(), ", "))
	freq := fs.Float64("freq", 220, "sine frequency or sweep start in Hz")
	amplitude := fs.Float64("amplitude", 0.5, "signal amplitude")
	seconds := fs.Float64("seconds", 2, "signal duration in seconds")
	sampleRate := fs.Float64("rate", core.DefaultSampleRate, "sample rate in Hz")
	seed := fs.Uint64("seed", 1, "noise seed")
	gainDB := fs.Float64("gain", 0, "output gain in dB applied after the effect")
	script := fs.String("automation", "", "Lua script defining automate(block, t)")
	out := fs.String("out", "", "write interleaved float32 LE stereo to this file")
	list := fs.Bool("list", false, "list effect types and their parameters")
	verbose := fs.Bool("v", false, "debug logging")
	fs.Var(&sets, "set", "parameter assignment Name=value, Name=off or Name=on (repeatable)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: fxrender [flags]\n\n")
		fmt.Fprintf(stderr, "Renders a test signal through an effect and reports the result.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  fxrender -list\n")
		fmt.Fprintf(stderr, "  fxrender -effect pitchring -signal sine -freq 220 -set Mix=0.5\n")
		fmt.Fprintf(stderr, "  fxrender -effect ringmod -set Carrier=30 -out out.f32\n")
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := cli.NewLogger(stderr, *verbose)

	if *list {
		return printList(stdout, effects.DefaultRegistry())
	}

	cfg := renderConfig{
		effect: *effectType,
		signal: cli.SignalConfig{
			Kind:       *signal,
			Freq:       *freq,
			Amplitude:  *amplitude,
			Seconds:    *seconds,
			SampleRate: *sampleRate,
			Seed:       *seed,
		},
		sets:   sets,
		gainDB: *gainDB,
	}

	if *script != "" {
		a, err := loadAutomation(*script, *sampleRate)
		if err != nil {
			return err
		}
		defer a.close()

		cfg.automation = a
	}

	left, right, rep, err := render(cfg, logger)
	if err != nil {
		return err
	}

	printReport(stdout, rep)

	if *out != "" {
		if err := writeFile(*out, left, right, logger); err != nil {
			return err
		}
	}

	return nil
}

func writeFile(path string, left, right []float64, logger *slog.Logger) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := writeFloat32(f, left, right); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	logger.Info("wrote output", "path", path, "frames", len(left))

	return nil
}
