package brownian

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Normal describes a (possibly degenerate) normal belief about the process
// value at one query time: N(Mean, StdDev²). StdDev == 0 is the point-mass
// case, produced when the query time hits a recorded observation exactly.
type Normal struct {
	Mean   float64
	StdDev float64
}

// Variance returns StdDev².
func (n Normal) Variance() float64 {
	return n.StdDev * n.StdDev
}

// CDF returns P(X ≤ x). For the degenerate StdDev == 0 case it is the unit
// step at Mean.
func (n Normal) CDF(x float64) float64 {
	if n.StdDev == 0 {
		if x < n.Mean {
			return 0
		}

		return 1
	}

	return distuv.Normal{Mu: n.Mean, Sigma: n.StdDev}.CDF(x)
}

// Quantile returns the x with P(X ≤ x) = p, for p in [0, 1]. Out-of-range p
// yields NaN. For the degenerate case every valid p maps to Mean.
func (n Normal) Quantile(p float64) float64 {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return math.NaN()
	}
	if n.StdDev == 0 {
		return n.Mean
	}

	return distuv.Normal{Mu: n.Mean, Sigma: n.StdDev}.Quantile(p)
}

// Prob returns the probability density at x. The degenerate case has no
// density; Prob reports +Inf at Mean and 0 elsewhere.
func (n Normal) Prob(x float64) float64 {
	if n.StdDev == 0 {
		if x == n.Mean {
			return math.Inf(1)
		}

		return 0
	}

	return distuv.Normal{Mu: n.Mean, Sigma: n.StdDev}.Prob(x)
}

// fuse combines two independent normal beliefs about the same unknown by
// precision-weighted averaging:
//
//	w_l = sd_l⁻², w_r = sd_r⁻²
//	mean     = (w_l·mean_l + w_r·mean_r) / (w_l + w_r)
//	variance = 1 / (w_l + w_r)
//
// The Brownian bridge between two observations is exactly this fusion of
// the forward and backward one-sided projections. The fused variance is
// strictly below either input variance, so fusion always tightens belief.
//
// A degenerate input (StdDev == 0) carries infinite precision and wins
// outright; the left one takes precedence when both are degenerate.
func fuse(l, r Normal) Normal {
	if l.StdDev == 0 {
		return l
	}
	if r.StdDev == 0 {
		return r
	}

	wl := 1 / l.Variance()
	wr := 1 / r.Variance()

	return Normal{
		Mean:   (wl*l.Mean + wr*r.Mean) / (wl + wr),
		StdDev: math.Sqrt(1 / (wl + wr)),
	}
}
