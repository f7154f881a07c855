// Package brownian models one-dimensional Brownian motion with drift whose
// path is observed only at discrete, irregularly spaced times, and infers
// the process value at any other time from the observations seen so far.
//
// 🚀 What is brownian?
//
//	A Process carries two scalar parameters — diffusion σ and drift μ —
//	and a History of (time, value) observations. For any query time t it
//	derives the exact conditional distribution of the process value:
//	  • at an observed time        → point mass at the observed value
//	  • after the last observation → forward projection,
//	    N(v + μ·Δ, σ·√Δ) from the nearest earlier point
//	  • before the first           → the symmetric backward projection
//	  • between two observations   → the Brownian bridge, obtained by
//	    precision-weighted fusion of the two one-sided projections
//
//	Sampling a value writes it back into the history (optionally), so the
//	process grows more certain about its own path as it is queried — later
//	distributions condition on earlier samples.
//
// ✨ Key features:
//   - exact closed-form conditionals; no Monte-Carlo inside the library
//   - O(log n) neighbor lookups via lvlstoch/series under streaming growth
//   - pluggable Sampler capability; deterministic seeded default (gonum)
//   - batch sampling with ascending-time evaluation order
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlstoch/brownian"
//
//	p, err := brownian.New(0.5,
//	    brownian.WithDrift(0.1),
//	    brownian.WithStart(0, 0),
//	    brownian.WithSeed(7),
//	)
//	if err != nil { ... }
//
//	d, _ := p.DistributionAt(2.0) // N(0.2, 0.5·√2)
//	v, _ := p.Value(2.0, true)    // sample and record it
//
// Concurrency: no internal locking; a Process and its History assume a
// single writer. Callers sharing instances across goroutines serialize
// externally.
package brownian
