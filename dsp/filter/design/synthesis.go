package design

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cynical-media/eDSP/dsp/filter/biquad"
)

// Designer populates a digital pole-zero layout for one filter design.
// Implementations carry their own parameters (order, cutoff, sample rate)
// and report any contract violation as an error.
type Designer interface {
	PopulateLayout(digital *Layout) error
}

// Design runs the two-pass design protocol: a fresh layout with room for
// maxPoles poles is handed to the designer, then synthesized into a
// gain-normalized cascade.
func Design(d Designer, maxPoles int) (*biquad.Cascade, error) {
	digital := NewLayout(maxPoles)
	if err := d.PopulateLayout(digital); err != nil {
		return nil, fmt.Errorf("design: populate layout: %w", err)
	}

	return Synthesize(digital)
}

// Synthesize converts a populated digital layout into a biquad cascade.
//
// Every pole-zero pair becomes one section, appended in layout order, for
// ceil(poles/2) sections total. The cascade's complex response is then
// evaluated once at the layout's normalization frequency and all sections
// are rescaled so the realized gain there equals the layout's target gain.
// Normalizing once at the end keeps the overall gain exact even though the
// individual stage gains are designer-determined approximations.
//
// A zero response magnitude at the normalization frequency is not guarded:
// the resulting Inf scale propagates through the coefficients per IEEE-754.
func Synthesize(digital *Layout) (*biquad.Cascade, error) {
	numSections := (digital.NumPoles() + 1) / 2
	if digital.Len() < numSections {
		return nil, ErrIncompleteLayout
	}

	cascade := biquad.NewCascade(numSections)

	for i := range numSections {
		coeffs, err := sectionFromPair(digital.Pair(i))
		if err != nil {
			return nil, fmt.Errorf("design: pair %d: %w", i, err)
		}

		cascade.Append(coeffs)
	}

	response := responseAt(cascade, digital.NormalW())
	scale := digital.NormalGain() / cmplx.Abs(response)
	applyScale(cascade, scale)

	return cascade, nil
}

// sectionFromPair converts one layout entry into section coefficients using
// the single-pole or pair constructor according to its tag.
func sectionFromPair(pair PoleZeroPair) (biquad.Coefficients, error) {
	if pair.Single {
		return biquad.FromPoleZero(pair.Poles[0], pair.Zeros[0])
	}

	return biquad.FromPoleZeroPairs(pair.Poles[0], pair.Zeros[0], pair.Poles[1], pair.Zeros[1])
}

// responseAt evaluates the cascade's complex response at the normalized
// angular frequency w. Stages are accumulated in reverse order, steepest
// last stages first, which keeps the running numerator and denominator
// products better conditioned.
func responseAt(c *biquad.Cascade, w float64) complex128 {
	czn1 := cmplx.Exp(complex(0, -w))
	czn2 := cmplx.Exp(complex(0, -2*w))
	ch := complex(1, 0)
	cbot := complex(1, 0)

	for i := c.NumSections() - 1; i >= 0; i-- {
		st := c.Section(i)

		ct := complex(st.B0, 0)
		ct += complex(st.B1, 0) * czn1
		ct += complex(st.B2, 0) * czn2

		cb := complex(1, 0)
		cb += complex(st.A1, 0) * czn1
		cb += complex(st.A2, 0) * czn2

		ch *= ct
		cbot *= cb
	}

	return ch / cbot
}

// applyScale multiplies the cascade's overall gain by scale, distributed
// uniformly over all sections so no single stage absorbs the full factor.
func applyScale(c *biquad.Cascade, scale float64) {
	n := c.NumSections()
	if n == 0 {
		return
	}

	perStage := math.Pow(scale, 1/float64(n))
	for i := range n {
		s := c.Section(i)
		s.SetB0(s.B0 * perStage)
		s.SetB1(s.B1 * perStage)
		s.SetB2(s.B2 * perStage)
	}
}
