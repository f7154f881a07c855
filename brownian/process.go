package brownian

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvlstoch/series"
)

// Process — Brownian motion with drift, conditioned on observed history
//
// Description:
//
//	A Process models a continuous path X(t) with increments over Δ
//	distributed N(μ·Δ, σ²·Δ). Its History holds every observed (t, X(t))
//	pair, seeded at construction. Any query time is classified against the
//	nearest recorded neighbors and answered with an exact conditional
//	distribution.
//
// Query classification (DistributionAt):
//  1. no neighbors at all      → ErrCorruptHistory (seed invariant violated)
//  2. exact hit on a recorded t → point mass at the recorded value
//  3. only a left neighbor     → forward projection
//     N(v_l + μ·(t−t_l), σ·√(t−t_l))
//  4. only a right neighbor    → backward projection
//     N(v_r + μ·(t−t_r), σ·√(t_r−t))
//  5. both neighbors           → precision-weighted fusion of the two
//     one-sided projections — the Brownian-bridge conditional.
//
// Complexity: O(log n) per query against an n-point history.
type Process struct {
	sigma   float64 // diffusion coefficient, per unit √time
	drift   float64 // drift rate, per unit time
	hist    *History
	sampler Sampler
}

// New constructs a Process with diffusion coefficient sigma and the given
// options. The seed observation (StartTime, StartVal) is inserted into the
// history — injected or fresh — so the history is never empty.
//
// Errors: ErrNegativeSigma for sigma < 0; ErrBadParameter for NaN or
// infinite parameters.
func New(sigma float64, opts ...Option) (*Process, error) {
	o := DefaultOptions(sigma)
	for _, opt := range opts {
		opt(&o)
	}

	return NewWithOptions(o)
}

// NewWithOptions is the Options-struct flavor of New, for callers that
// prefer field assignment over functional options.
func NewWithOptions(o Options) (*Process, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}

	hist := o.History
	if hist == nil {
		hist = NewHistory()
	}
	hist.Insert(o.StartTime, o.StartVal)

	sampler := o.Sampler
	if sampler == nil {
		sampler = NewGaussSampler(o.Seed)
	}

	return &Process{
		sigma:   o.Sigma,
		drift:   o.Drift,
		hist:    hist,
		sampler: sampler,
	}, nil
}

// Sigma returns the diffusion coefficient σ.
func (p *Process) Sigma() float64 { return p.sigma }

// Drift returns the drift rate μ.
func (p *Process) Drift() float64 { return p.drift }

// History returns the underlying observation history, e.g. to share it with
// another process or to iterate everything observed so far.
func (p *Process) History() *History { return p.hist }

// DistributionAt returns the conditional distribution of the process value
// at time t given every observation currently in the history. Pure: the
// history is not modified.
//
// Returns ErrCorruptHistory when the history holds no observation at all,
// which signals a violated construction invariant and is fatal.
//
// Complexity: O(log n).
func (p *Process) DistributionAt(t float64) (Normal, error) {
	left, right, okL, okR := p.hist.MartingaleRelevantPoints(t)

	switch {
	case !okL && !okR:
		return Normal{}, ErrCorruptHistory
	case okL && left.Key == t:
		return Normal{Mean: left.Val}, nil // observed exactly: point mass
	case okR && right.Key == t:
		return Normal{Mean: right.Val}, nil
	case okL && !okR:
		return p.project(left, t), nil
	case okR && !okL:
		return p.project(right, t), nil
	default:
		// Bridge: fuse the two one-sided projections. This is exactly the
		// Brownian-bridge conditional (the renormalized product of the two
		// Gaussians), kept in fused form so cases 3-5 share one code path.
		return fuse(p.project(left, t), p.project(right, t)), nil
	}
}

// project is the one-sided conditional N(v + μ·(t−t₀), σ·√|t−t₀|) seen from
// a single reference observation. The drift term is signed — projecting
// backward in time subtracts drift — while uncertainty grows with the
// absolute time gap in either direction.
func (p *Process) project(from series.Observation, t float64) Normal {
	dt := t - from.Key

	return Normal{
		Mean:   from.Val + p.drift*dt,
		StdDev: p.sigma * math.Sqrt(math.Abs(dt)),
	}
}

// Value draws one sample of the process at time t from its current
// conditional distribution. When storeInHistory is true the sample is
// recorded before returning, so subsequent queries condition on it — the
// process becomes more certain about its own path as it is sampled, and
// query order therefore changes results.
//
// Complexity: O(log n).
func (p *Process) Value(t float64, storeInHistory bool) (float64, error) {
	d, err := p.DistributionAt(t)
	if err != nil {
		return 0, err
	}

	v := p.sampler.Draw(d.Mean, d.StdDev)
	if storeInHistory {
		p.hist.Insert(t, v)
	}

	return v, nil
}

// Values draws one sample per query time, recording every sample in the
// history. Evaluation happens in ascending time order regardless of the
// input order, so lower-time samples in the batch are visible as bracketing
// neighbors to higher-time samples of the same batch (ascending-order
// visibility). Results are returned aligned with the caller's input order.
//
// Complexity: O(m log m + m log n) for m query times.
func (p *Process) Values(times []float64) ([]float64, error) {
	order := make([]int, len(times))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return times[order[a]] < times[order[b]] })

	out := make([]float64, len(times))
	for _, i := range order {
		v, err := p.Value(times[i], true)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}
