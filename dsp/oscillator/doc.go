// Package oscillator generates periodic test waveforms.
//
// An Oscillator tracks signal time in seconds and produces one sample per
// tick for a configurable waveform, amplitude, frequency and phase shift.
package oscillator
