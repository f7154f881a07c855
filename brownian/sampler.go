package brownian

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler is the external Gaussian sampling capability a Process draws from.
//
// Draw returns one sample of N(mean, stddev²). Implementations must return
// mean exactly when stddev == 0 (the point-mass case) and must never fail:
// sampling a well-formed normal is total.
type Sampler interface {
	Draw(mean, stddev float64) float64
}

// GaussSampler is the default Sampler: gonum's normal distribution over a
// deterministic seeded source. Same seed ⇒ identical sample sequence.
//
// Not goroutine-safe; give each concurrent process its own sampler.
type GaussSampler struct {
	src rand.Source
}

// NewGaussSampler returns a deterministic Gaussian sampler. Seed 0 selects
// the fixed default stream (seed==0 policy shared across the lvl* family).
func NewGaussSampler(seed int64) *GaussSampler {
	return &GaussSampler{src: sourceFromSeed(seed)}
}

// Draw samples N(mean, stddev²) once. stddev == 0 returns mean exactly.
//
// Complexity: O(1).
func (g *GaussSampler) Draw(mean, stddev float64) float64 {
	if stddev == 0 {
		return mean
	}

	return distuv.Normal{Mu: mean, Sigma: stddev, Src: g.src}.Rand()
}
