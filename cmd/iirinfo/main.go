// Command iirinfo designs an IIR filter cascade and prints its
// coefficients and frequency response.
//
// Usage:
//
//	iirinfo [flags]
//
// Examples:
//
//	iirinfo -type lowpass -order 4 -cutoff 1000
//	iirinfo -type highpass -order 6 -cutoff 200 -rate 44100
//	iirinfo -type lowpass -order 2 -cutoff 1000 -points 32
package main

import (
	"flag"
	"fmt"
	"math"
	"math/cmplx"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cynical-media/eDSP/dsp/filter/biquad"
	"github.com/cynical-media/eDSP/dsp/filter/design"
)

func main() {
	typ := flag.String("type", "lowpass", "filter type: lowpass or highpass")
	order := flag.Int("order", 4, "filter order")
	cutoff := flag.Float64("cutoff", 1000, "cutoff frequency in Hz")
	rate := flag.Float64("rate", 48000, "sample rate in Hz")
	points := flag.Int("points", 16, "number of response table rows")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: iirinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Designs a Butterworth filter cascade and prints coefficients\n")
		fmt.Fprintf(os.Stderr, "and a magnitude/phase response table.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  iirinfo -type lowpass -order 4 -cutoff 1000\n")
		fmt.Fprintf(os.Stderr, "  iirinfo -type highpass -order 6 -cutoff 200 -rate 44100\n")
	}
	flag.Parse()

	cascade, err := designCascade(*typ, *order, *cutoff, *rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Butterworth %s, order %d, cutoff %g Hz, sample rate %g Hz\n\n",
		strings.ToLower(*typ), *order, *cutoff, *rate)

	printSections(cascade)
	fmt.Println()
	printResponse(cascade, *cutoff, *rate, *points)
}

func designCascade(typ string, order int, cutoff, rate float64) (*biquad.Cascade, error) {
	switch strings.ToLower(strings.TrimSpace(typ)) {
	case "lowpass", "lp":
		return design.NewButterworthLowpass(order, cutoff, rate).Design()
	case "highpass", "hp":
		return design.NewButterworthHighpass(order, cutoff, rate).Design()
	default:
		return nil, fmt.Errorf("unknown filter type %q (want lowpass or highpass)", typ)
	}
}

func printSections(c *biquad.Cascade) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Section\tB0\tB1\tB2\tA1\tA2\tStable\n")
	fmt.Fprintf(tw, "-------\t--\t--\t--\t--\t--\t------\n")

	for i := range c.NumSections() {
		s := c.Section(i)
		co := s.Coefficients
		fmt.Fprintf(tw, "%d\t%+.8f\t%+.8f\t%+.8f\t%+.8f\t%+.8f\t%t\n",
			i, co.B0, co.B1, co.B2, co.A1, co.A2, s.Stable())
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

// printResponse prints magnitude and phase at logarithmically spaced
// frequencies spanning two decades around the cutoff.
func printResponse(c *biquad.Cascade, cutoff, rate float64, points int) {
	if points < 2 {
		points = 2
	}

	nyquist := rate / 2
	lo := cutoff / 10
	hi := math.Min(cutoff*10, nyquist*0.99)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Frequency [Hz]\tMagnitude\tMagnitude [dB]\tPhase [deg]\n")
	fmt.Fprintf(tw, "--------------\t---------\t--------------\t-----------\n")

	ratio := math.Pow(hi/lo, 1/float64(points-1))
	freq := lo
	for range points {
		h := c.Response(freq, rate)
		phase := cmplx.Phase(h) * 180 / math.Pi
		fmt.Fprintf(tw, "%.2f\t%.6f\t%+.2f\t%+.2f\n",
			freq, cmplx.Abs(h), c.MagnitudeDB(freq, rate), phase)
		freq *= ratio
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
