package spectrum

import (
	"math"
	"testing"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestMagnitude(t *testing.T) {
	in := []complex128{1, 2i, complex(3, 4)}
	got := Magnitude(in)

	want := []float64{1, 2, 5}
	for i := range want {
		if !almostEqual(got[i], want[i], 1e-12) {
			t.Fatalf("got[%d]=%v, want %v", i, got[i], want[i])
		}
	}

	if Magnitude(nil) != nil {
		t.Fatal("Magnitude(nil) should be nil")
	}
}

func TestMagnitudeFromParts(t *testing.T) {
	dst := make([]float64, 3)
	MagnitudeFromParts(dst, []float64{1, 0, 3}, []float64{0, 2, 4})

	want := []float64{1, 2, 5}
	for i := range want {
		if !almostEqual(dst[i], want[i], 1e-12) {
			t.Fatalf("dst[%d]=%v, want %v", i, dst[i], want[i])
		}
	}
}

func TestPower(t *testing.T) {
	in := []complex128{1, 2i, complex(3, 4)}
	got := Power(in)

	want := []float64{1, 4, 25}
	for i := range want {
		if !almostEqual(got[i], want[i], 1e-12) {
			t.Fatalf("got[%d]=%v, want %v", i, got[i], want[i])
		}
	}
}

func TestPowerFromParts(t *testing.T) {
	dst := make([]float64, 2)
	PowerFromParts(dst, []float64{3, 0}, []float64{4, 2})

	if dst[0] != 25 || dst[1] != 4 {
		t.Fatalf("dst=%v, want [25 4]", dst)
	}
}

func TestPhase(t *testing.T) {
	in := []complex128{1, 1i, -1}
	got := Phase(in)

	want := []float64{0, math.Pi / 2, math.Pi}
	for i := range want {
		if !almostEqual(got[i], want[i], 1e-12) {
			t.Fatalf("got[%d]=%v, want %v", i, got[i], want[i])
		}
	}
}

func TestUnwrapPhase(t *testing.T) {
	got := UnwrapPhase([]float64{0, -3, 2.9})

	want := []float64{0, -3, 2.9 - 2*math.Pi}
	for i := range want {
		if !almostEqual(got[i], want[i], 1e-12) {
			t.Fatalf("got[%d]=%v, want %v", i, got[i], want[i])
		}
	}

	if UnwrapPhase(nil) != nil {
		t.Fatal("UnwrapPhase(nil) should be nil")
	}
}

func TestGroupDelayPureDelay(t *testing.T) {
	const fftSize = 16
	const delay = 3.0

	phase := make([]float64, fftSize/2+1)
	for k := range phase {
		phase[k] = -2 * math.Pi * float64(k) * delay / fftSize
	}

	gd, err := GroupDelayFromPhase(phase, fftSize)
	if err != nil {
		t.Fatalf("GroupDelayFromPhase() error = %v", err)
	}
	for i, v := range gd {
		if !almostEqual(v, delay, 1e-9) {
			t.Fatalf("gd[%d]=%v, want %v", i, v, delay)
		}
	}

	sec, err := GroupDelaySeconds(phase, fftSize, 48000)
	if err != nil {
		t.Fatalf("GroupDelaySeconds() error = %v", err)
	}
	if !almostEqual(sec[0], delay/48000, 1e-12) {
		t.Fatalf("sec[0]=%v, want %v", sec[0], delay/48000)
	}
}

func TestGroupDelayErrors(t *testing.T) {
	if _, err := GroupDelayFromPhase([]float64{0}, 16); err == nil {
		t.Fatal("expected error for single phase point")
	}
	if _, err := GroupDelayFromPhase([]float64{0, 1}, 0); err == nil {
		t.Fatal("expected error for zero fftSize")
	}
	if _, err := GroupDelaySeconds([]float64{0, 1}, 16, 0); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
}
