// Package response measures the frequency response of sample processors.
//
// A processor is excited with a unit impulse and the response is transformed
// with an FFT, or probed with a steady sine tone for a single-frequency gain
// estimate. Measured responses can be compared against analytically computed
// ones to validate filter designs.
package response
