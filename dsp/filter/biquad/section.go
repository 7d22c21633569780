package biquad

import "github.com/cynical-media/eDSP/dsp/core"

// Section is a single biquad filter with coefficients and internal delay
// state. Processing is the two-multiplier transposed recursion:
//
//	y  = B0*x + w0
//	w0 = B1*x - A1*y + w1
//	w1 = B2*x - A2*y
//
// A Section is not safe for concurrent use; distinct sections share no state.
type Section struct {
	Coefficients

	w0, w1 float64
}

// NewSection returns a Section initialized with the given coefficients and
// zero state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one input sample and returns the output.
//
// NaN or Inf inputs propagate through the output and poison the delay state;
// callers that need validity guarantees check Stable before relying on the
// output.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.w0
	s.w0 = s.B1*x - s.A1*y + s.w1
	s.w1 = s.B2*x - s.A2*y

	return y
}

// ProcessBlock filters a block of samples in-place. Zero-alloc. The delay
// state carries across calls, so consecutive blocks continue one recursion.
func (s *Section) ProcessBlock(buf []float64) {
	b0, b1, b2 := s.B0, s.B1, s.B2
	a1, a2 := s.A1, s.A2
	w0, w1 := s.w0, s.w1

	for i, x := range buf {
		y := b0*x + w0
		w0 = b1*x - a1*y + w1
		w1 = b2*x - a2*y
		buf[i] = y
	}

	// Flush once per block so a decayed signal cannot park the
	// recursion in denormal territory.
	s.w0 = core.FlushDenormals(w0)
	s.w1 = core.FlushDenormals(w1)
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
// Zero-alloc.
func (s *Section) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = s.ProcessSample(x)
	}
}

// Reset clears the delay state to zero. Coefficients are unaffected.
func (s *Section) Reset() {
	s.w0 = 0
	s.w1 = 0
}

// State returns the current delay state [w0, w1].
func (s *Section) State() [2]float64 {
	return [2]float64{s.w0, s.w1}
}

// SetState restores a previously saved delay state.
func (s *Section) SetState(state [2]float64) {
	s.w0 = state[0]
	s.w1 = state[1]
}

// The coefficient setters below replace a single coefficient and clear the
// delay state: the stored history was produced under the old coefficients
// and no longer describes this filter. The a0 coefficient has no setter
// since the representation pins it to 1.

// SetA1 replaces the A1 coefficient and clears the delay state.
func (s *Section) SetA1(v float64) {
	s.A1 = v
	s.Reset()
}

// SetA2 replaces the A2 coefficient and clears the delay state.
func (s *Section) SetA2(v float64) {
	s.A2 = v
	s.Reset()
}

// SetB0 replaces the B0 coefficient and clears the delay state.
func (s *Section) SetB0(v float64) {
	s.B0 = v
	s.Reset()
}

// SetB1 replaces the B1 coefficient and clears the delay state.
func (s *Section) SetB1(v float64) {
	s.B1 = v
	s.Reset()
}

// SetB2 replaces the B2 coefficient and clears the delay state.
func (s *Section) SetB2(v float64) {
	s.B2 = v
	s.Reset()
}
