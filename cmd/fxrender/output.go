package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/cwbudde/algo-synthfx/dsp/core"
	"github.com/cwbudde/algo-synthfx/dsp/fx"
)

// writeFloat32 writes left and right as interleaved little-endian float32
// frames.
func writeFloat32(w io.Writer, left, right []float64) error {
	if len(left) != len(right) {
		return fmt.Errorf("channel length mismatch: %d vs %d", len(left), len(right))
	}

	bw := bufio.NewWriter(w)

	var frame [8]byte

	for i := range left {
		binary.LittleEndian.PutUint32(frame[0:], math.Float32bits(float32(left[i])))
		binary.LittleEndian.PutUint32(frame[4:], math.Float32bits(float32(right[i])))

		if _, err := bw.Write(frame[:]); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func printReport(w io.Writer, rep report) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintf(tw, "effect\t%s\n", rep.Effect)
	fmt.Fprintf(tw, "blocks\t%d (%.3f s)\n", rep.Blocks, rep.Seconds)
	fmt.Fprintf(tw, "block budget\t%.3f ms\n", rep.Budget*1000)

	if rep.HasTracker {
		fmt.Fprintf(tw, "tracked period\t%.2f / %.2f samples\n", rep.TrackedLength[0], rep.TrackedLength[1])
	}

	if rep.Frequency > 0 {
		fmt.Fprintf(tw, "dominant frequency\t%.2f Hz\n", rep.Frequency)
	} else {
		fmt.Fprintf(tw, "dominant frequency\t-\n")
	}

	fmt.Fprintf(tw, "peak\t%.4f (%.2f dBFS)\n", rep.Peak, core.LinearToDB(rep.Peak))
	fmt.Fprintf(tw, "rms\t%.4f (%.2f dBFS)\n", rep.RMS, core.LinearToDB(rep.RMS))
}

func printList(w io.Writer, registry *fx.Registry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	for _, typ := range registry.Types() {
		specs, err := registry.Specs(typ)
		if err != nil {
			return err
		}

		fmt.Fprintf(tw, "%s\n", typ)

		for _, s := range specs {
			flags := ""
			if s.Deactivatable {
				flags = "deactivatable"
			}

			fmt.Fprintf(tw, "  %s\t[%g, %g]\t%g\t%s\t%s\n", s.Name, s.Min, s.Max, s.Default, s.Unit, flags)
		}
	}

	return nil
}
