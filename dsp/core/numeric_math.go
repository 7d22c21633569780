//go:build !fastmath

package core

import "math"

// log10 computes log10(x) using standard library math.
func log10(x float64) float64 {
	return math.Log10(x)
}

// pow10 computes 10^x using standard library math.
func pow10(x float64) float64 {
	return math.Pow(10, x)
}
