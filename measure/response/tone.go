package response

import (
	"math"

	"github.com/cynical-media/eDSP/dsp/spectrum"
)

// ToneGain measures the steady-state magnitude gain of a processor at a
// single frequency using sine excitation and Goertzel analysis.
//
// The tone frequency should divide sampleRate/blockSize evenly, otherwise
// spectral leakage biases the estimate. One full block is discarded to let
// the processor transient settle.
func ToneGain(p Processor, freqHz, sampleRate float64, blockSize int) (float64, error) {
	if p == nil {
		return 0, ErrNilProcessor
	}
	if sampleRate <= 0 {
		return 0, ErrInvalidSampleRate
	}
	if blockSize <= 0 {
		return 0, ErrInvalidFFTSize
	}

	probe, err := spectrum.NewGoertzel(freqHz, sampleRate)
	if err != nil {
		return 0, err
	}
	ref, err := spectrum.NewGoertzel(freqHz, sampleRate)
	if err != nil {
		return 0, err
	}

	p.Reset()

	step := 2 * math.Pi * freqHz / sampleRate

	// Settle block: discard output while the transient dies out.
	for i := range blockSize {
		p.ProcessSample(math.Sin(step * float64(i)))
	}

	for i := blockSize; i < 2*blockSize; i++ {
		x := math.Sin(step * float64(i))
		ref.ProcessSample(x)
		probe.ProcessSample(p.ProcessSample(x))
	}

	p.Reset()

	in := ref.Magnitude()
	if in == 0 {
		return 0, nil
	}

	return probe.Magnitude() / in, nil
}
