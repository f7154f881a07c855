package brownian_test

import (
	"testing"

	"github.com/katalvlaran/lvlstoch/brownian"
)

// benchmarkProcess builds a seeded process and pre-samples warm observations.
func benchmarkProcess(b *testing.B, warm int) *brownian.Process {
	p, err := brownian.New(1.0, brownian.WithDrift(0.05), brownian.WithSeed(1))
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	for i := 1; i <= warm; i++ {
		if _, err = p.Value(float64(i), true); err != nil {
			b.Fatalf("warm-up Value failed: %v", err)
		}
	}

	return p
}

// BenchmarkProcess_DistributionAt measures pure conditional-distribution
// queries against a 10k-point history.
func BenchmarkProcess_DistributionAt(b *testing.B) {
	p := benchmarkProcess(b, 10_000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.DistributionAt(float64(i%10_000) + 0.5); err != nil {
			b.Fatalf("DistributionAt failed: %v", err)
		}
	}
}

// BenchmarkProcess_ValueStored measures sampling with history write-back,
// the streaming-growth hot path.
func BenchmarkProcess_ValueStored(b *testing.B) {
	p := benchmarkProcess(b, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Value(float64(i)+0.5, true); err != nil {
			b.Fatalf("Value failed: %v", err)
		}
	}
}

// BenchmarkProcess_ValuesBatch measures batch sampling of 100 shuffled times.
func BenchmarkProcess_ValuesBatch(b *testing.B) {
	times := make([]float64, 100)
	for i := range times {
		times[i] = float64((i*37)%100) + 0.25 // fixed shuffled order
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		p := benchmarkProcess(b, 0)
		b.StartTimer()
		if _, err := p.Values(times); err != nil {
			b.Fatalf("Values failed: %v", err)
		}
	}
}
