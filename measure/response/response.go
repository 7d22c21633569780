package response

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cynical-media/eDSP/dsp/spectrum"
)

// Errors returned by response measurement.
var (
	ErrNilProcessor      = errors.New("response: processor must not be nil")
	ErrInvalidFFTSize    = errors.New("response: fft size must be a power of two >= 2")
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive")
)

// Processor is a causal sample processor whose frequency response is being
// measured. Filter sections and cascades satisfy this interface.
type Processor interface {
	ProcessSample(x float64) float64
	Reset()
}

// Result holds a measured frequency response over the non-negative
// frequency bins [0..Nyquist].
type Result struct {
	SampleRate float64
	FFTSize    int
	Bins       []complex128
	Magnitude  []float64
	Phase      []float64
}

// FreqAt returns the center frequency in Hz of bin i.
func (r *Result) FreqAt(i int) float64 {
	return float64(i) * r.SampleRate / float64(r.FFTSize)
}

// Analyzer measures frequency responses by impulse excitation and FFT.
type Analyzer struct {
	sampleRate float64
	fftSize    int
}

// NewAnalyzer creates a response analyzer.
//
// fftSize sets both the measured impulse response length and the transform
// size, and must be a power of two.
func NewAnalyzer(sampleRate float64, fftSize int) (*Analyzer, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if fftSize < 2 || fftSize&(fftSize-1) != 0 {
		return nil, ErrInvalidFFTSize
	}

	return &Analyzer{sampleRate: sampleRate, fftSize: fftSize}, nil
}

// Measure drives a unit impulse through the processor and transforms the
// response. The processor is Reset before and after measurement, so any
// streaming state a caller has built up is discarded.
func (a *Analyzer) Measure(p Processor) (Result, error) {
	if p == nil {
		return Result{}, ErrNilProcessor
	}

	p.Reset()

	in := make([]complex128, a.fftSize)
	for i := range a.fftSize {
		x := 0.0
		if i == 0 {
			x = 1
		}

		in[i] = complex(p.ProcessSample(x), 0)
	}

	p.Reset()

	plan, err := algofft.NewPlan64(a.fftSize)
	if err != nil {
		return Result{}, fmt.Errorf("response: fft plan: %w", err)
	}

	out := make([]complex128, a.fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Result{}, fmt.Errorf("response: forward fft: %w", err)
	}

	bins := out[:a.fftSize/2+1]

	return Result{
		SampleRate: a.sampleRate,
		FFTSize:    a.fftSize,
		Bins:       bins,
		Magnitude:  spectrum.Magnitude(bins),
		Phase:      spectrum.Phase(bins),
	}, nil
}
