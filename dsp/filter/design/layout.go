package design

import (
	"errors"
	"math/cmplx"
)

// Errors reported by layout population and synthesis. They all indicate a
// defective designer, not a recoverable runtime condition.
var (
	ErrLayoutFull       = errors.New("design: layout pole capacity exceeded")
	ErrRealRequired     = errors.New("design: single pole/zero must be real")
	ErrIncompleteLayout = errors.New("design: layout has fewer pairs than its pole count requires")
)

// PoleZeroPair is one entry of a pole-zero layout: either a first-order
// single real pole/zero (Single set, index 1 unused) or a full pair of two
// poles and two zeros, each pair complex-conjugate or twin-real.
type PoleZeroPair struct {
	Poles  [2]complex128
	Zeros  [2]complex128
	Single bool
}

// Layout is a digital pole-zero layout: the pairs describing a filter plus
// the frequency at which its gain is pinned. Layouts are populated
// append-only by a [Designer] and consumed by [Synthesize].
type Layout struct {
	pairs    []PoleZeroPair
	numPoles int
	maxPoles int

	normalW    float64 // normalization frequency, rad/sample
	normalGain float64 // target gain at normalW
}

// NewLayout creates an empty layout with room for maxPoles poles and a
// default normalization of unit gain at DC.
func NewLayout(maxPoles int) *Layout {
	if maxPoles < 0 {
		maxPoles = 0
	}

	return &Layout{
		pairs:      make([]PoleZeroPair, 0, (maxPoles+1)/2),
		maxPoles:   maxPoles,
		normalGain: 1,
	}
}

// AddSingle appends a first-order entry with one real pole and one real
// zero. Returns ErrRealRequired when either has a nonzero imaginary part.
func (l *Layout) AddSingle(pole, zero complex128) error {
	if imag(pole) != 0 || imag(zero) != 0 {
		return ErrRealRequired
	}

	if l.numPoles+1 > l.maxPoles {
		return ErrLayoutFull
	}

	l.pairs = append(l.pairs, PoleZeroPair{
		Poles:  [2]complex128{pole, 0},
		Zeros:  [2]complex128{zero, 0},
		Single: true,
	})
	l.numPoles++

	return nil
}

// AddConjugate appends a second-order entry from one pole and one zero,
// pairing each with its complex conjugate.
func (l *Layout) AddConjugate(pole, zero complex128) error {
	return l.AddPair(pole, zero, cmplx.Conj(pole), cmplx.Conj(zero))
}

// AddPair appends a second-order entry from two poles and two zeros.
// Conjugate and realness constraints are enforced later, when the pair is
// turned into a biquad section.
func (l *Layout) AddPair(pole1, zero1, pole2, zero2 complex128) error {
	if l.numPoles+2 > l.maxPoles {
		return ErrLayoutFull
	}

	l.pairs = append(l.pairs, PoleZeroPair{
		Poles: [2]complex128{pole1, pole2},
		Zeros: [2]complex128{zero1, zero2},
	})
	l.numPoles += 2

	return nil
}

// Reset empties the layout, keeping its capacity and normalization target.
func (l *Layout) Reset() {
	l.pairs = l.pairs[:0]
	l.numPoles = 0
}

// Len returns the number of pole-zero pairs.
func (l *Layout) Len() int {
	return len(l.pairs)
}

// NumPoles returns the total pole count across all pairs.
func (l *Layout) NumPoles() int {
	return l.numPoles
}

// Pair returns the i-th pole-zero pair in insertion order.
func (l *Layout) Pair(i int) PoleZeroPair {
	return l.pairs[i]
}

// SetNormal pins the layout gain: the synthesized cascade is rescaled so its
// magnitude response at w (rad/sample) equals gain.
func (l *Layout) SetNormal(w, gain float64) {
	l.normalW = w
	l.normalGain = gain
}

// NormalW returns the normalization frequency in radians per sample.
func (l *Layout) NormalW() float64 {
	return l.normalW
}

// NormalGain returns the target gain at the normalization frequency.
func (l *Layout) NormalGain() float64 {
	return l.normalGain
}
