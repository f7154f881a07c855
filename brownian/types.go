// Package brownian defines core types, configuration options and sentinel
// errors for the Brownian-variable subpackage of
// github.com/katalvlaran/lvlstoch.
//
// Errors (sentinel):
//
//	– ErrNegativeSigma  if the diffusion coefficient is negative.
//	– ErrBadParameter   if a construction parameter is NaN or infinite.
//	– ErrCorruptHistory if a query finds no bracketing observation at all;
//	  fatal — the mandatory seed point is missing, which cannot happen
//	  through this package's constructors.
package brownian

import (
	"errors"
	"math"
)

// Sentinel errors returned by the brownian package.
var (
	// ErrNegativeSigma indicates a negative diffusion coefficient at construction.
	ErrNegativeSigma = errors.New("brownian: sigma must be non-negative")

	// ErrBadParameter indicates a NaN or infinite construction parameter.
	ErrBadParameter = errors.New("brownian: parameters must be finite numbers")

	// ErrCorruptHistory indicates a history with no observations at all,
	// which violates the seeded-history invariant. Never expected in correct
	// usage; not retryable.
	ErrCorruptHistory = errors.New("brownian: history has no bracketing observation (missing seed point)")
)

// Options configures a Process.
//
// Sigma      – diffusion coefficient σ ≥ 0 (per unit √time). Immutable.
// Drift      – drift rate μ (per unit time). Immutable. Default 0.
// StartTime  – time of the seed observation. Default 0.
// StartVal   – value of the seed observation. Default 0.
// History    – optional shared history. When nil a fresh one is created.
//
//	The seed observation is inserted either way.
//
// Sampler    – optional Gaussian sampling capability. When nil a
//
//	deterministic gonum-backed sampler is created from Seed.
//
// Seed       – seed for the default sampler; 0 selects a fixed default
//
//	stream (same policy as everywhere in the lvl* family).
type Options struct {
	Sigma     float64
	Drift     float64
	StartTime float64
	StartVal  float64
	History   *History
	Sampler   Sampler
	Seed      int64
}

// Option is a functional option for configuring a Process.
type Option func(*Options)

// WithDrift sets the drift rate μ.
func WithDrift(mu float64) Option {
	return func(o *Options) {
		o.Drift = mu
	}
}

// WithStart sets the seed observation (startTime, startVal) inserted into
// the history at construction.
func WithStart(t, val float64) Option {
	return func(o *Options) {
		o.StartTime = t
		o.StartVal = val
	}
}

// WithHistory injects a shared History. Multiple processes may observe the
// same path this way; the design still assumes a single writer at a time.
// A nil h leaves the default (fresh history) in place.
func WithHistory(h *History) Option {
	return func(o *Options) {
		o.History = h
	}
}

// WithSampler injects a custom Gaussian sampling capability, replacing the
// deterministic default. A nil s leaves the default in place.
func WithSampler(s Sampler) Option {
	return func(o *Options) {
		o.Sampler = s
	}
}

// WithSeed sets the seed of the default sampler. Ignored when WithSampler
// is also given. Seed 0 selects the fixed default stream.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// DefaultOptions returns an Options struct with sensible defaults for the
// given diffusion coefficient. Use as a starting point for field overrides
// when functional options are inconvenient.
//
// Defaults: Drift=0, StartTime=0, StartVal=0, History=nil (fresh),
// Sampler=nil (deterministic default), Seed=0 (fixed stream).
func DefaultOptions(sigma float64) Options {
	return Options{Sigma: sigma}
}

// validate checks construction parameters, mapping violations to sentinels.
func (o *Options) validate() error {
	if math.IsNaN(o.Sigma) || math.IsInf(o.Sigma, 0) ||
		math.IsNaN(o.Drift) || math.IsInf(o.Drift, 0) ||
		math.IsNaN(o.StartTime) || math.IsInf(o.StartTime, 0) ||
		math.IsNaN(o.StartVal) || math.IsInf(o.StartVal, 0) {
		return ErrBadParameter
	}
	if o.Sigma < 0 {
		return ErrNegativeSigma
	}

	return nil
}
