// Package design provides digital IIR filter coefficient designers and the
// pole-zero cascade synthesis pipeline.
//
// Designers come in two flavors. Section designers (Lowpass, Highpass, Peak,
// RBJ-style shelves) produce a single [biquad.Coefficients] value directly.
// Layout designers implement [Designer] by populating a pole-zero [Layout],
// which [Synthesize] turns into a [biquad.Cascade]: one section per pole-zero
// pair, followed by a response evaluation at the layout's normalization
// frequency and a gain rescale so the cascade hits the requested gain there
// exactly.
package design
