package biquad

import "math/cmplx"

// FromPoleZero builds a first-order section embedded in biquad form from one
// real pole and one real zero:
//
//	B0 = -Re(zero), B1 = 1, B2 = 0
//	A1 = -Re(pole), A2 = 0
//
// Both inputs must have an imaginary part of exactly zero; anything else is a
// contract violation reported as ErrComplexPole or ErrComplexZero.
func FromPoleZero(pole, zero complex128) (Coefficients, error) {
	if imag(pole) != 0 {
		return Coefficients{}, ErrComplexPole
	}

	if imag(zero) != 0 {
		return Coefficients{}, ErrComplexZero
	}

	return Coefficients{
		B0: -real(zero),
		B1: 1,
		A1: -real(pole),
	}, nil
}

// FromPoleZeroPairs builds a full second-order section from two poles and two
// zeros. Each pair is either a complex-conjugate pair or two real values:
//
//	conjugates:  A1 = -2*Re(p1),          A2 = |p1|^2
//	real pair:   A1 = -(Re(p1) + Re(p2)), A2 = Re(p1)*Re(p2)
//
// and identically for the zeros into B1, B2, with B0 = 1. A complex pole or
// zero whose partner is not its exact conjugate is a contract violation.
func FromPoleZeroPairs(pole1, zero1, pole2, zero2 complex128) (Coefficients, error) {
	c := Coefficients{B0: 1}

	switch {
	case imag(pole1) != 0:
		if pole2 != cmplx.Conj(pole1) {
			return Coefficients{}, ErrConjugateMismatch
		}

		c.A1 = -2 * real(pole1)
		c.A2 = real(pole1)*real(pole1) + imag(pole1)*imag(pole1)
	default:
		if imag(pole2) != 0 {
			return Coefficients{}, ErrComplexPole
		}

		c.A1 = -(real(pole1) + real(pole2))
		c.A2 = real(pole1) * real(pole2)
	}

	switch {
	case imag(zero1) != 0:
		if zero2 != cmplx.Conj(zero1) {
			return Coefficients{}, ErrConjugateMismatch
		}

		c.B1 = -2 * real(zero1)
		c.B2 = real(zero1)*real(zero1) + imag(zero1)*imag(zero1)
	default:
		if imag(zero2) != 0 {
			return Coefficients{}, ErrComplexZero
		}

		c.B1 = -(real(zero1) + real(zero2))
		c.B2 = real(zero1) * real(zero2)
	}

	return c, nil
}

// PoleZeroPair stores the two poles and two zeros of one biquad section.
// For first-order sections, the second pole/zero is 0.
type PoleZeroPair struct {
	Poles [2]complex128
	Zeros [2]complex128
}

// Poles returns the z-plane poles of the section denominator:
//
//	1 + A1*z^-1 + A2*z^-2 = 0
func (c *Coefficients) Poles() [2]complex128 {
	return quadraticRoots(1, c.A1, c.A2)
}

// Zeros returns the z-plane zeros of the section numerator:
//
//	B0 + B1*z^-1 + B2*z^-2 = 0
func (c *Coefficients) Zeros() [2]complex128 {
	return quadraticRoots(c.B0, c.B1, c.B2)
}

// PoleZeroPair returns both poles and zeros for a single section.
func (c *Coefficients) PoleZeroPair() PoleZeroPair {
	return PoleZeroPair{
		Poles: c.Poles(),
		Zeros: c.Zeros(),
	}
}

// PoleZeroPairs returns one pole/zero pair entry per cascade section.
func (c *Cascade) PoleZeroPairs() []PoleZeroPair {
	out := make([]PoleZeroPair, len(c.sections))
	for i := range c.sections {
		out[i] = c.sections[i].PoleZeroPair()
	}

	return out
}

func quadraticRoots(a, b, c float64) [2]complex128 {
	if a == 0 {
		if b == 0 {
			return [2]complex128{}
		}

		return [2]complex128{complex(-c/b, 0), 0}
	}

	discriminant := complex(b*b-4*a*c, 0)
	sqrtDiscriminant := cmplx.Sqrt(discriminant)
	den := complex(2*a, 0)

	return [2]complex128{
		(-complex(b, 0) + sqrtDiscriminant) / den,
		(-complex(b, 0) - sqrtDiscriminant) / den,
	}
}
