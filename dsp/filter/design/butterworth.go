package design

import (
	"fmt"
	"math"

	"github.com/cynical-media/eDSP/dsp/filter/biquad"
)

// Butterworth is a layout designer for maximally flat lowpass and highpass
// filters of arbitrary order. The analog prototype poles sit on the
// Butterworth circle; poles and zeros are mapped to the z-plane with the
// bilinear transform after cutoff prewarping.
type Butterworth struct {
	order      int
	cutoffHz   float64
	sampleRate float64
	highpass   bool
}

// NewButterworthLowpass creates a lowpass Butterworth layout designer.
func NewButterworthLowpass(order int, cutoffHz, sampleRate float64) *Butterworth {
	return &Butterworth{order: order, cutoffHz: cutoffHz, sampleRate: sampleRate}
}

// NewButterworthHighpass creates a highpass Butterworth layout designer.
func NewButterworthHighpass(order int, cutoffHz, sampleRate float64) *Butterworth {
	return &Butterworth{order: order, cutoffHz: cutoffHz, sampleRate: sampleRate, highpass: true}
}

// Order returns the filter order.
func (d *Butterworth) Order() int {
	return d.order
}

// Design populates a layout sized for the filter order and synthesizes the
// gain-normalized cascade.
func (d *Butterworth) Design() (*biquad.Cascade, error) {
	return Design(d, d.order)
}

// PopulateLayout fills the digital layout with the bilinear-transformed
// Butterworth poles. Lowpass zeros land on z = -1 and the gain is pinned to
// 1 at DC; highpass zeros land on z = +1 with the gain pinned at Nyquist.
func (d *Butterworth) PopulateLayout(digital *Layout) error {
	if d.order <= 0 {
		return fmt.Errorf("butterworth: order must be > 0: %d", d.order)
	}

	nyquist := d.sampleRate / 2
	if d.sampleRate <= 0 || d.cutoffHz <= 0 || d.cutoffHz >= nyquist {
		return fmt.Errorf("butterworth: cutoff %g Hz outside (0, %g) at %g Hz sample rate",
			d.cutoffHz, nyquist, d.sampleRate)
	}

	warped := math.Tan(math.Pi * d.cutoffHz / d.sampleRate)

	zero := complex(-1, 0)
	if d.highpass {
		zero = complex(1, 0)
	}

	for i := range d.order / 2 {
		theta := math.Pi * float64(2*i+1) / (2 * float64(d.order))

		// Prototype pole on the unit circle, left half plane.
		s := complex(-math.Sin(theta), math.Cos(theta))
		if d.highpass {
			// LP-to-HP transform s -> warped/s; |s| = 1 so this is
			// the conjugate scaled by the warped cutoff.
			s = complex(warped, 0) / s
		} else {
			s *= complex(warped, 0)
		}

		if err := digital.AddConjugate(bilinear(s), zero); err != nil {
			return err
		}
	}

	if d.order%2 != 0 {
		s := complex(-warped, 0)
		if err := digital.AddSingle(bilinear(s), zero); err != nil {
			return err
		}
	}

	if d.highpass {
		digital.SetNormal(math.Pi, 1)
	} else {
		digital.SetNormal(0, 1)
	}

	return nil
}

// bilinear maps a prewarped analog pole or zero into the z-plane.
func bilinear(s complex128) complex128 {
	return (1 + s) / (1 - s)
}
