package time

import (
	"math"
	"strconv"
	"testing"
)

func BenchmarkCalculate(b *testing.B) {
	for _, n := range []int{1024, 16384, 262144} {
		signal := make([]float64, n)
		for i := range signal {
			signal[i] = math.Sin(2 * math.Pi * float64(i) / 128)
		}

		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = Calculate(signal)
			}
		})
	}
}

func BenchmarkRMS(b *testing.B) {
	signal := make([]float64, 16384)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * float64(i) / 128)
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = RMS(signal)
	}
}
