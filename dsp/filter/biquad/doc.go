// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] filters one sample at a time through the recursion described by
// [Coefficients], with the denominator normalized so that a0 = 1. Sections can
// be built from raw coefficients via [Normalize] or directly from z-plane
// poles and zeros via [FromPoleZero] and [FromPoleZeroPairs]. Multiple
// sections connect in series through a [Cascade] to realize higher-order
// filters.
//
// This package provides the processing runtime only. Pole-zero layouts and
// cascade synthesis (Butterworth, RBJ, ...) live in dsp/filter/design.
package biquad
