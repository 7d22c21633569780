package biquad

import (
	"math"
	"testing"
)

// tolerance for floating-point comparisons.
const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestNormalize(t *testing.T) {
	c, err := Normalize(2, 0.5, -0.25, 1, 0.5, 0.125)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Coefficients{B0: 0.5, B1: 0.25, B2: 0.0625, A1: 0.25, A2: -0.125}
	if c != want {
		t.Fatalf("coefficients mismatch: got %+v, want %+v", c, want)
	}
}

func TestNormalize_UnityA0(t *testing.T) {
	c, err := Normalize(1, 0.1, 0.2, 0.3, 0.4, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Coefficients{B0: 0.3, B1: 0.4, B2: 0.5, A1: 0.1, A2: 0.2}
	if c != want {
		t.Fatalf("coefficients mismatch: got %+v, want %+v", c, want)
	}
}

func TestNormalize_ZeroA0(t *testing.T) {
	if _, err := Normalize(0, 1, 2, 3, 4, 5); err != ErrZeroA0 {
		t.Fatalf("got %v, want ErrZeroA0", err)
	}
}

func TestStable(t *testing.T) {
	tests := []struct {
		name   string
		a1, a2 float64
		want   bool
	}{
		{"near boundary stable", 0, 0.999, true},
		{"a2 on unit circle", 0, 1.0, false},
		{"a1 outside triangle", 2.0, 0.5, false},
		{"inside triangle", 1.0, 0.5, true},
		{"negative a2 stable", 0.5, -0.25, true},
		{"a2 below -1", 0, -1.5, false},
		{"identity", 0, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := Coefficients{B0: 1, A1: tc.a1, A2: tc.a2}
			if got := c.Stable(); got != tc.want {
				t.Errorf("Stable(a1=%v, a2=%v) = %v, want %v", tc.a1, tc.a2, got, tc.want)
			}
		})
	}
}
