// Package interpolate defines the Interpolator contract and sentinel errors
// for the streaming-interpolation subpackage of
// github.com/katalvlaran/lvlstoch.
package interpolate

import (
	"errors"

	"github.com/katalvlaran/lvlstoch/series"
)

// Sentinel errors for interpolation queries.
var (
	// ErrNoData indicates a value query on an interpolator with no
	// observations yet.
	ErrNoData = errors.New("interpolate: no observations inserted")
)

// Interpolator is the common contract of all streaming interpolators:
// register observations in any order, then query a derived value at any
// coordinate.
//
// Value returns ErrNoData while the interpolator is empty; with at least
// one observation it is total.
type Interpolator interface {
	// Insert registers the observation (x, val). Re-inserting an existing x
	// overwrites the stored value.
	Insert(x, val float64)

	// Value returns the interpolated value at x.
	Value(x float64) (float64, error)
}

// neighbors resolves the bracketing observations of x in data. An exact hit
// short-circuits: both variants return a stored value verbatim, so the
// caller gets (left == right) with both flags set.
func neighbors(data *series.Series, x float64) (left, right series.Observation, okLeft, okRight bool) {
	left, okLeft = data.Floor(x)
	right, okRight = data.Ceiling(x)

	return left, right, okLeft, okRight
}
