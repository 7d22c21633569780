package biquad

import (
	"errors"
	"math"
)

// Errors returned by the coefficient constructors. All of them signal a
// broken caller contract: the supplied pole-zero data or raw coefficients
// cannot describe a biquad section, and there is nothing to recover.
var (
	ErrZeroA0            = errors.New("biquad: a0 must be nonzero")
	ErrComplexPole       = errors.New("biquad: expected real pole")
	ErrComplexZero       = errors.New("biquad: expected real zero")
	ErrConjugateMismatch = errors.New("biquad: expected complex conjugate pair")
)

// Coefficients holds the transfer function coefficients of a single
// second-order section. The denominator is normalized so that a0 = 1, and a0
// is not stored:
//
//	H(z) = (B0 + B1*z^-1 + B2*z^-2) / (1 + A1*z^-1 + A2*z^-2)
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// Normalize builds coefficients from a raw six-coefficient set by dividing
// every coefficient by a0. Returns ErrZeroA0 when a0 == 0.
func Normalize(a0, a1, a2, b0, b1, b2 float64) (Coefficients, error) {
	if a0 == 0 {
		return Coefficients{}, ErrZeroA0
	}

	return Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}, nil
}

// Stable reports whether both poles of the section lie inside the unit
// circle:
//
//	|A2| < 1 && |A1| < 1 + A2
func (c *Coefficients) Stable() bool {
	return math.Abs(c.A2) < 1 && math.Abs(c.A1) < 1+c.A2
}
