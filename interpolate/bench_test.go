package interpolate_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlstoch/interpolate"
)

// benchmarkValue streams n observations into in, then measures queries.
func benchmarkValue(b *testing.B, in interpolate.Interpolator, n int) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < n; i++ {
		in.Insert(rng.Float64()*float64(n), rng.NormFloat64())
	}
	probes := make([]float64, 1024)
	for i := range probes {
		probes[i] = rng.Float64() * float64(n)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := in.Value(probes[i%len(probes)]); err != nil {
			b.Fatalf("Value failed: %v", err)
		}
	}
}

// BenchmarkLinear_Value10k measures linear queries over 10k streamed points.
func BenchmarkLinear_Value10k(b *testing.B) {
	benchmarkValue(b, interpolate.NewLinear(), 10_000)
}

// BenchmarkNearestNeighbor_Value10k measures nearest queries over 10k points.
func BenchmarkNearestNeighbor_Value10k(b *testing.B) {
	benchmarkValue(b, interpolate.NewNearestNeighbor(), 10_000)
}

// BenchmarkLinear_Insert measures streaming insertion.
func BenchmarkLinear_Insert(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	keys := make([]float64, b.N)
	for i := range keys {
		keys[i] = rng.Float64() * 1e6
	}
	li := interpolate.NewLinear()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		li.Insert(keys[i], 0)
	}
}
