package biquad

import (
	"math/cmplx"
	"testing"
)

func TestFromPoleZero(t *testing.T) {
	c, err := FromPoleZero(complex(0.5, 0), complex(0.3, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Coefficients{B0: -0.3, B1: 1, B2: 0, A1: -0.5, A2: 0}
	if c != want {
		t.Fatalf("coefficients mismatch: got %+v, want %+v", c, want)
	}
}

func TestFromPoleZero_ComplexInput(t *testing.T) {
	if _, err := FromPoleZero(complex(0.5, 0.1), complex(0.3, 0)); err != ErrComplexPole {
		t.Errorf("complex pole: got %v, want ErrComplexPole", err)
	}

	if _, err := FromPoleZero(complex(0.5, 0), complex(0.3, -0.1)); err != ErrComplexZero {
		t.Errorf("complex zero: got %v, want ErrComplexZero", err)
	}
}

func TestFromPoleZeroPairs_Conjugates(t *testing.T) {
	pole := complex(0.5, 0.3)
	zero := complex(-1, 0)

	c, err := FromPoleZeroPairs(pole, zero, cmplx.Conj(pole), zero)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A1 = -2*0.5 = -1, A2 = 0.5^2 + 0.3^2 = 0.34
	if !almostEqual(c.A1, -1.0, eps) || !almostEqual(c.A2, 0.34, eps) {
		t.Errorf("denominator mismatch: A1=%v A2=%v", c.A1, c.A2)
	}

	// Real zeros -1, -1: B1 = 2, B2 = 1.
	if c.B0 != 1 || !almostEqual(c.B1, 2, eps) || !almostEqual(c.B2, 1, eps) {
		t.Errorf("numerator mismatch: B0=%v B1=%v B2=%v", c.B0, c.B1, c.B2)
	}
}

func TestFromPoleZeroPairs_RealPair(t *testing.T) {
	c, err := FromPoleZeroPairs(
		complex(0.5, 0), complex(0.2, 0),
		complex(-0.25, 0), complex(-0.4, 0),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A1 = -(0.5 - 0.25) = -0.25, A2 = 0.5*-0.25 = -0.125
	// B1 = -(0.2 - 0.4) = 0.2,    B2 = 0.2*-0.4 = -0.08
	if !almostEqual(c.A1, -0.25, eps) || !almostEqual(c.A2, -0.125, eps) {
		t.Errorf("denominator mismatch: A1=%v A2=%v", c.A1, c.A2)
	}

	if c.B0 != 1 || !almostEqual(c.B1, 0.2, eps) || !almostEqual(c.B2, -0.08, eps) {
		t.Errorf("numerator mismatch: B0=%v B1=%v B2=%v", c.B0, c.B1, c.B2)
	}
}

func TestFromPoleZeroPairs_ConjugateMismatch(t *testing.T) {
	pole := complex(0.5, 0.3)
	zero := complex(-1, 0)

	if _, err := FromPoleZeroPairs(pole, zero, complex(0.5, -0.2), zero); err != ErrConjugateMismatch {
		t.Errorf("pole mismatch: got %v, want ErrConjugateMismatch", err)
	}

	z := complex(0.1, 0.9)
	if _, err := FromPoleZeroPairs(pole, z, cmplx.Conj(pole), complex(0.1, 0.8)); err != ErrConjugateMismatch {
		t.Errorf("zero mismatch: got %v, want ErrConjugateMismatch", err)
	}
}

func TestFromPoleZeroPairs_MixedRealComplex(t *testing.T) {
	zero := complex(-1, 0)

	if _, err := FromPoleZeroPairs(complex(0.5, 0), zero, complex(0.2, 0.1), zero); err != ErrComplexPole {
		t.Errorf("got %v, want ErrComplexPole", err)
	}

	if _, err := FromPoleZeroPairs(complex(0.5, 0), complex(0.3, 0), complex(0.2, 0), complex(0.3, 0.1)); err != ErrComplexZero {
		t.Errorf("got %v, want ErrComplexZero", err)
	}
}

func TestPolesZeros_RoundTrip(t *testing.T) {
	// Build from a conjugate pole pair and real zeros, then recover the
	// roots from the resulting polynomial.
	pole := complex(0.4, 0.25)

	c, err := FromPoleZeroPairs(pole, complex(-1, 0), cmplx.Conj(pole), complex(-1, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	poles := c.Poles()
	for _, p := range poles {
		if !almostEqual(real(p), real(pole), 1e-9) {
			t.Errorf("pole real part: got %v, want %v", real(p), real(pole))
		}

		if !almostEqual(imag(p)*imag(p), imag(pole)*imag(pole), 1e-9) {
			t.Errorf("pole imaginary magnitude: got %v, want %v", imag(p), imag(pole))
		}
	}

	zeros := c.Zeros()
	for _, z := range zeros {
		if !almostEqual(real(z), -1, 1e-9) || !almostEqual(imag(z), 0, 1e-9) {
			t.Errorf("zero: got %v, want -1", z)
		}
	}
}

func TestQuadraticRoots_Degenerate(t *testing.T) {
	// Linear: 2z + 1 = 0 -> z = -0.5; second root slot is 0.
	roots := quadraticRoots(0, 2, 1)
	if !almostEqual(real(roots[0]), -0.5, eps) || roots[1] != 0 {
		t.Errorf("linear roots: got %v", roots)
	}

	// Constant polynomial has no roots.
	if roots := quadraticRoots(0, 0, 5); roots != ([2]complex128{}) {
		t.Errorf("constant roots: got %v", roots)
	}
}
