package time

import (
	"math"
	"testing"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestCalculateSquareWave(t *testing.T) {
	s := Calculate([]float64{1, -1, 1, -1})

	if s.Length != 4 {
		t.Fatalf("Length=%d, want 4", s.Length)
	}
	if s.DC != 0 {
		t.Fatalf("DC=%v, want 0", s.DC)
	}
	if s.RMS != 1 {
		t.Fatalf("RMS=%v, want 1", s.RMS)
	}
	if s.Max != 1 || s.MaxPos != 0 {
		t.Fatalf("Max=%v at %d, want 1 at 0", s.Max, s.MaxPos)
	}
	if s.Min != -1 || s.MinPos != 1 {
		t.Fatalf("Min=%v at %d, want -1 at 1", s.Min, s.MinPos)
	}
	if s.Peak != 1 || s.Range != 2 {
		t.Fatalf("Peak=%v Range=%v, want 1 2", s.Peak, s.Range)
	}
	if s.Energy != 4 || s.Power != 1 {
		t.Fatalf("Energy=%v Power=%v, want 4 1", s.Energy, s.Power)
	}
	if s.ZeroCrossings != 3 {
		t.Fatalf("ZeroCrossings=%d, want 3", s.ZeroCrossings)
	}
	if s.CrestFactor != 1 || s.CrestFactor_dB != 0 {
		t.Fatalf("CrestFactor=%v (%v dB), want 1 (0 dB)", s.CrestFactor, s.CrestFactor_dB)
	}
	if s.RMS_dB != 0 {
		t.Fatalf("RMS_dB=%v, want 0", s.RMS_dB)
	}
}

func TestCalculateSine(t *testing.T) {
	const n = 1000
	signal := make([]float64, n)
	for i := range signal {
		signal[i] = 0.5 * math.Sin(2*math.Pi*10*float64(i)/n)
	}

	s := Calculate(signal)

	if !almostEqual(s.RMS, 0.5/math.Sqrt2, 1e-9) {
		t.Fatalf("RMS=%v, want %v", s.RMS, 0.5/math.Sqrt2)
	}
	if !almostEqual(s.DC, 0, 1e-12) {
		t.Fatalf("DC=%v, want ~0", s.DC)
	}
	if !almostEqual(s.CrestFactor, math.Sqrt2, 1e-6) {
		t.Fatalf("CrestFactor=%v, want sqrt(2)", s.CrestFactor)
	}
}

func TestCalculateEmpty(t *testing.T) {
	s := Calculate(nil)

	if s.Length != 0 {
		t.Fatalf("Length=%d, want 0", s.Length)
	}
	if !math.IsInf(s.RMS_dB, -1) || !math.IsInf(s.Peak_dB, -1) || !math.IsInf(s.CrestFactor_dB, -1) {
		t.Fatal("dB fields should be -Inf for empty input")
	}
}

func TestCalculateSilence(t *testing.T) {
	s := Calculate([]float64{0, 0, 0})

	if s.RMS != 0 || s.CrestFactor != 0 || s.CrestFactor_dB != 0 {
		t.Fatalf("silence: RMS=%v CrestFactor=%v (%v dB)", s.RMS, s.CrestFactor, s.CrestFactor_dB)
	}
	if !math.IsInf(s.RMS_dB, -1) {
		t.Fatalf("RMS_dB=%v, want -Inf", s.RMS_dB)
	}
}

func TestRMS(t *testing.T) {
	if got := RMS([]float64{3, 4}); !almostEqual(got, math.Sqrt(12.5), 1e-12) {
		t.Fatalf("RMS=%v, want %v", got, math.Sqrt(12.5))
	}
	if got := RMS(nil); got != 0 {
		t.Fatalf("RMS(nil)=%v, want 0", got)
	}
}

func TestDC(t *testing.T) {
	signal := make([]float64, 10)
	for i := range signal {
		signal[i] = 0.1
	}

	if got := DC(signal); !almostEqual(got, 0.1, 1e-15) {
		t.Fatalf("DC=%v, want 0.1", got)
	}
	if got := DC(nil); got != 0 {
		t.Fatalf("DC(nil)=%v, want 0", got)
	}
}

func TestCalculateDCMatchesDC(t *testing.T) {
	// Mixed-magnitude signal: an uncompensated sum absorbs the unit
	// samples into the 1e17 terms and lands on a mean of exactly 0.
	signal := make([]float64, 0, 102)
	signal = append(signal, 1e17)
	for range 100 {
		signal = append(signal, 1)
	}
	signal = append(signal, -1e17)

	got := Calculate(signal).DC
	want := DC(signal)

	if got != want {
		t.Fatalf("Calculate DC=%v, DC=%v", got, want)
	}
	if got == 0 {
		t.Fatalf("DC=0, compensation lost the unit samples")
	}
}

func TestPeak(t *testing.T) {
	if got := Peak([]float64{0.5, -0.9, 0.3}); got != 0.9 {
		t.Fatalf("Peak=%v, want 0.9", got)
	}
	if got := Peak(nil); got != 0 {
		t.Fatalf("Peak(nil)=%v, want 0", got)
	}
}

func TestCrestFactor(t *testing.T) {
	if got := CrestFactor([]float64{3, 4}); !almostEqual(got, 4/math.Sqrt(12.5), 1e-12) {
		t.Fatalf("CrestFactor=%v, want %v", got, 4/math.Sqrt(12.5))
	}
	if got := CrestFactor([]float64{0, 0}); got != 0 {
		t.Fatalf("CrestFactor of silence=%v, want 0", got)
	}
}

func TestZeroCrossings(t *testing.T) {
	cases := []struct {
		name   string
		signal []float64
		want   int
	}{
		{"alternating", []float64{1, -1, 1, -1}, 3},
		{"monotone", []float64{1, 2, 3}, 0},
		{"touches zero", []float64{1, 0, -1}, 0},
		{"short", []float64{1}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ZeroCrossings(tc.signal); got != tc.want {
				t.Fatalf("ZeroCrossings=%d, want %d", got, tc.want)
			}
		})
	}
}

func TestCalculateMatchesConveniences(t *testing.T) {
	signal := []float64{0.3, -0.7, 0.1, 0.9, -0.2}
	s := Calculate(signal)

	if !almostEqual(s.RMS, RMS(signal), 1e-15) {
		t.Fatalf("RMS mismatch: %v != %v", s.RMS, RMS(signal))
	}
	if !almostEqual(s.DC, DC(signal), 1e-12) {
		t.Fatalf("DC mismatch: %v != %v", s.DC, DC(signal))
	}
	if s.Peak != Peak(signal) {
		t.Fatalf("Peak mismatch: %v != %v", s.Peak, Peak(signal))
	}
	if s.ZeroCrossings != ZeroCrossings(signal) {
		t.Fatalf("ZeroCrossings mismatch: %d != %d", s.ZeroCrossings, ZeroCrossings(signal))
	}
}
