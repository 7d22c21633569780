package biquad

import (
	"testing"
)

func twoStageCoeffs() []Coefficients {
	return []Coefficients{
		{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04},
		{B0: 0.5, B1: 0.5, A1: -0.1},
	}
}

func TestNewCascade_AppendOnly(t *testing.T) {
	c := NewCascade(2)
	if c.NumSections() != 0 {
		t.Fatalf("new cascade not empty: %d sections", c.NumSections())
	}

	for _, coeffs := range twoStageCoeffs() {
		c.Append(coeffs)
	}

	if c.NumSections() != 2 {
		t.Fatalf("got %d sections, want 2", c.NumSections())
	}

	if c.Order() != 4 {
		t.Fatalf("got order %d, want 4", c.Order())
	}

	if got := c.Section(1).Coefficients; got != twoStageCoeffs()[1] {
		t.Fatalf("section 1 coefficients: got %+v", got)
	}
}

func TestCascade_SeriesComposition(t *testing.T) {
	// A 2-stage cascade must equal stage 1 feeding stage 2 manually.
	coeffs := twoStageCoeffs()
	cascade := NewCascadeFrom(coeffs)

	s1 := NewSection(coeffs[0])
	s2 := NewSection(coeffs[1])

	input := []float64{1, -0.5, 0.25, 0.75, 0, -1, 0.3}
	for i, x := range input {
		want := s2.ProcessSample(s1.ProcessSample(x))
		if got := cascade.ProcessSample(x); !almostEqual(got, want, eps) {
			t.Errorf("sample %d: cascade=%v, manual series=%v", i, got, want)
		}
	}
}

func TestCascade_EmptyIsIdentity(t *testing.T) {
	c := NewCascade(0)
	for _, x := range []float64{1, -2, 0.5} {
		if y := c.ProcessSample(x); y != x {
			t.Errorf("empty cascade: got %v, want %v", y, x)
		}
	}
}

func TestCascade_ProcessBlockMatchesSample(t *testing.T) {
	coeffs := twoStageCoeffs()
	input := []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8}

	ref := NewCascadeFrom(coeffs)
	want := make([]float64, len(input))
	for i, x := range input {
		want[i] = ref.ProcessSample(x)
	}

	c := NewCascadeFrom(coeffs)
	block := make([]float64, len(input))
	copy(block, input)
	c.ProcessBlock(block)

	for i := range block {
		if !almostEqual(block[i], want[i], eps) {
			t.Errorf("sample %d: ProcessBlock=%v, ProcessSample=%v", i, block[i], want[i])
		}
	}
}

func TestCascade_ProcessBlockToEmpty(t *testing.T) {
	c := NewCascadeFrom(twoStageCoeffs())

	c.ProcessBlockTo([]float64{}, []float64{})
	c.ProcessBlockTo(nil, nil)

	got := c.ProcessSample(1)

	ref := NewCascadeFrom(twoStageCoeffs())
	if want := ref.ProcessSample(1); got != want {
		t.Errorf("state disturbed by empty block: got %v, want %v", got, want)
	}
}

func TestCascade_Reset(t *testing.T) {
	c := NewCascadeFrom(twoStageCoeffs())
	c.ProcessSample(1)
	c.ProcessSample(-1)

	c.Reset()

	for _, st := range c.State() {
		if st != [2]float64{0, 0} {
			t.Fatalf("state not zero after reset: %v", st)
		}
	}
}

func TestCascade_StateSaveRestore(t *testing.T) {
	c := NewCascadeFrom(twoStageCoeffs())

	c.ProcessSample(1)
	c.ProcessSample(0.5)
	saved := c.State()

	y3 := c.ProcessSample(-0.3)

	c.SetState(saved)

	if y := c.ProcessSample(-0.3); !almostEqual(y, y3, eps) {
		t.Errorf("got %v after restore, want %v", y, y3)
	}
}

func TestCascade_Stable(t *testing.T) {
	c := NewCascadeFrom(twoStageCoeffs())
	if !c.Stable() {
		t.Fatal("expected stable cascade")
	}

	c.Append(Coefficients{B0: 1, A1: 0, A2: 1.0})
	if c.Stable() {
		t.Fatal("expected unstable cascade after adding boundary section")
	}
}
