package oscillator

import (
	"fmt"
	"math"
)

// Type selects the waveform an Oscillator generates.
type Type int

const (
	Sinusoidal Type = iota
	Square
	Sawtooth
	Triangular
)

// String returns the waveform name.
func (t Type) String() string {
	switch t {
	case Sinusoidal:
		return "sinusoidal"
	case Square:
		return "square"
	case Sawtooth:
		return "sawtooth"
	case Triangular:
		return "triangular"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Oscillator generates a periodic waveform sample by sample. It keeps a
// running timestamp in seconds, so frequency and phase changes take effect
// on the next tick without discontinuity in time.
type Oscillator struct {
	typ            Type
	amplitude      float64
	sampleRate     float64
	samplingPeriod float64
	frequency      float64
	phase          float64
	timestamp      float64
}

// New creates an oscillator for the given waveform.
//
// amplitude is the peak value, sampleRate the sampling frequency in Hz,
// frequency the fundamental in Hz and phase the shift in radians.
func New(typ Type, amplitude, sampleRate, frequency, phase float64) (*Oscillator, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("oscillator: sample rate must be > 0: %f", sampleRate)
	}

	return &Oscillator{
		typ:            typ,
		amplitude:      amplitude,
		sampleRate:     sampleRate,
		samplingPeriod: 1 / sampleRate,
		frequency:      frequency,
		phase:          phase,
	}, nil
}

// Waveform returns the configured waveform type.
func (o *Oscillator) Waveform() Type {
	return o.typ
}

// Amplitude returns the peak amplitude.
func (o *Oscillator) Amplitude() float64 {
	return o.amplitude
}

// SetAmplitude sets the peak amplitude.
func (o *Oscillator) SetAmplitude(amplitude float64) {
	o.amplitude = amplitude
}

// Frequency returns the fundamental frequency in Hz.
func (o *Oscillator) Frequency() float64 {
	return o.frequency
}

// SetFrequency sets the fundamental frequency in Hz.
func (o *Oscillator) SetFrequency(frequency float64) {
	o.frequency = frequency
}

// Phase returns the phase shift in radians.
func (o *Oscillator) Phase() float64 {
	return o.phase
}

// SetPhase sets the phase shift in radians.
func (o *Oscillator) SetPhase(phase float64) {
	o.phase = phase
}

// SampleRate returns the sampling frequency in Hz.
func (o *Oscillator) SampleRate() float64 {
	return o.sampleRate
}

// SetSampleRate sets the sampling frequency in Hz. Non-positive values are
// ignored.
func (o *Oscillator) SetSampleRate(sampleRate float64) {
	if sampleRate <= 0 {
		return
	}

	o.sampleRate = sampleRate
	o.samplingPeriod = 1 / sampleRate
}

// SamplingPeriod returns the sampling period in seconds.
func (o *Oscillator) SamplingPeriod() float64 {
	return o.samplingPeriod
}

// Timestamp returns the current signal time in seconds.
func (o *Oscillator) Timestamp() float64 {
	return o.timestamp
}

// SetTimestamp moves the signal time to the given value in seconds.
func (o *Oscillator) SetTimestamp(timestamp float64) {
	o.timestamp = timestamp
}

// Reset rewinds the signal time to zero.
func (o *Oscillator) Reset() {
	o.timestamp = 0
}

// Tick returns the sample at the current timestamp and advances time by one
// sampling period.
func (o *Oscillator) Tick() float64 {
	var sample float64
	switch o.typ {
	case Sinusoidal:
		sample = math.Sin(2*math.Pi*o.frequency*o.timestamp + o.phase)
	case Square:
		if o.cyclePosition() < 0.5 {
			sample = 1
		} else {
			sample = -1
		}
	case Sawtooth:
		sample = 2*o.cyclePosition() - 1
	case Triangular:
		pos := o.cyclePosition()
		if pos < 0.5 {
			sample = 4*pos - 1
		} else {
			sample = 3 - 4*pos
		}
	}

	o.timestamp += o.samplingPeriod

	return sample * o.amplitude
}

// Generate fills a new slice with n consecutive ticks.
func (o *Oscillator) Generate(n int) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	o.Fill(out)

	return out
}

// Fill overwrites buf with consecutive ticks.
func (o *Oscillator) Fill(buf []float64) {
	for i := range buf {
		buf[i] = o.Tick()
	}
}

// cyclePosition maps the current time and phase shift into [0, 1) within
// the fundamental period.
func (o *Oscillator) cyclePosition() float64 {
	pos := o.frequency*o.timestamp + o.phase/(2*math.Pi)

	return pos - math.Floor(pos)
}
