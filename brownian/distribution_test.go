package brownian_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlstoch/brownian"
)

// TestNormal_CDFAndQuantile checks the round trip through gonum's normal
// at a few probe points.
func TestNormal_CDFAndQuantile(t *testing.T) {
	n := brownian.Normal{Mean: 2, StdDev: 3}

	assert.InDelta(t, 0.5, n.CDF(2), 1e-12, "CDF at the mean is one half")
	assert.InDelta(t, 2.0, n.Quantile(0.5), 1e-9, "median equals the mean")
	assert.InDelta(t, 0.25, n.CDF(n.Quantile(0.25)), 1e-9, "Quantile inverts CDF")
	assert.True(t, math.IsNaN(n.Quantile(1.5)), "out-of-range p yields NaN")
	assert.Equal(t, 9.0, n.Variance())
}

// TestNormal_DegenerateStep verifies point-mass behavior at StdDev == 0.
func TestNormal_DegenerateStep(t *testing.T) {
	n := brownian.Normal{Mean: 4}

	assert.Equal(t, 0.0, n.CDF(3.999), "CDF below the mass is 0")
	assert.Equal(t, 1.0, n.CDF(4), "CDF at the mass is 1")
	assert.Equal(t, 4.0, n.Quantile(0.01), "every quantile is the mass point")
	assert.Equal(t, 0.0, n.Prob(5), "no density away from the mass")
	assert.True(t, math.IsInf(n.Prob(4), 1), "infinite density at the mass")
}

// TestFuse_PrecisionWeighting checks the closed-form fusion of two
// independent normal beliefs.
func TestFuse_PrecisionWeighting(t *testing.T) {
	l := brownian.Normal{Mean: 0, StdDev: 1}
	r := brownian.Normal{Mean: 10, StdDev: 3}

	got := brownian.Fuse(l, r)
	// weights 1 and 1/9: mean = (0 + 10/9) / (10/9) ⇒ 1, var = 1/(10/9) = 0.9
	assert.InDelta(t, 1.0, got.Mean, 1e-12, "tighter belief dominates the fused mean")
	assert.InDelta(t, 0.9, got.Variance(), 1e-12, "fused variance is the inverse precision sum")
	assert.Less(t, got.Variance(), l.Variance(), "fusion tightens the left belief")
	assert.Less(t, got.Variance(), r.Variance(), "fusion tightens the right belief")
}

// TestFuse_EqualBeliefsHalveVariance verifies the symmetric case: equal
// stddevs average the means and halve the variance.
func TestFuse_EqualBeliefsHalveVariance(t *testing.T) {
	l := brownian.Normal{Mean: 2, StdDev: 2}
	r := brownian.Normal{Mean: 6, StdDev: 2}

	got := brownian.Fuse(l, r)
	assert.InDelta(t, 4.0, got.Mean, 1e-12, "equal precisions average the means")
	assert.InDelta(t, 2.0, got.Variance(), 1e-12, "equal precisions halve the variance")
}

// TestFuse_DegenerateWins ensures a zero-variance belief overrides the other side.
func TestFuse_DegenerateWins(t *testing.T) {
	point := brownian.Normal{Mean: 7}
	wide := brownian.Normal{Mean: 0, StdDev: 5}

	assert.Equal(t, point, brownian.Fuse(point, wide), "degenerate left wins")
	assert.Equal(t, point, brownian.Fuse(wide, point), "degenerate right wins")
}
