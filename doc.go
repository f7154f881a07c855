// Package lvlstoch is your in-memory toolkit for continuous stochastic
// variables observed at irregular times — from the ordered observation
// store up to Brownian-bridge inference and streaming interpolation.
//
// 🚀 What is lvlstoch?
//
//	A small, focused library that brings together:
//		• Ordered series: float-keyed observations with O(log n) floor/ceiling
//		• Brownian variables: drift + diffusion, exact conditional
//		  distributions (projection & bridge), seeded sampling with
//		  history write-back
//		• Streaming interpolators: linear & nearest-neighbor over the
//		  same ordered store
//
// ✨ Why choose lvlstoch?
//
//   - Exact math – closed-form conditionals, no Monte-Carlo inside
//   - Streaming-first – every structure stays O(log n) as data arrives
//   - Deterministic – seeded sampling replays identical paths
//   - Minimal API – clear, intuitive naming, sentinel errors only
//
// Under the hood, everything is organized under three subpackages:
//
//	series/      — ordered observation store (AVL): Insert, Floor, Ceiling…
//	brownian/    — History, Process, Normal distributions, Sampler
//	interpolate/ — Linear & NearestNeighbor streaming interpolators
//
// Quick sketch:
//
//	observed:   (0, 0)          (10, 10)
//	query t=5:      └── bridge ──┘   ⇒  N(5, σ²·2.5)
//
// Dive into each package's doc.go for walkthroughs, and examples/ for
// runnable end-to-end scenarios.
//
//	go get github.com/katalvlaran/lvlstoch
package lvlstoch
