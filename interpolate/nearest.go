package interpolate

import (
	"math"

	"github.com/katalvlaran/lvlstoch/series"
)

// NearestNeighbor interpolates by returning the value of whichever
// bracketing observation lies strictly closer to the query coordinate.
// An equidistant tie resolves to the right neighbor — fixed and
// deterministic, never data-dependent.
type NearestNeighbor struct {
	data *series.Series
}

// compile-time contract check.
var _ Interpolator = (*NearestNeighbor)(nil)

// NewNearestNeighbor returns an empty nearest-neighbor streaming interpolator.
func NewNearestNeighbor() *NearestNeighbor {
	return &NearestNeighbor{data: series.New()}
}

// Insert registers the observation (x, val), overwriting any stored value
// at the same x.
//
// Complexity: O(log n).
func (nn *NearestNeighbor) Insert(x, val float64) {
	nn.data.Insert(x, val)
}

// Value returns the nearest stored value to x, or ErrNoData while no
// observation has been inserted. Ties between the two bracketing neighbors
// go to the right one.
//
// Complexity: O(log n).
func (nn *NearestNeighbor) Value(x float64) (float64, error) {
	left, right, okL, okR := neighbors(nn.data, x)

	switch {
	case !okL && !okR:
		return 0, ErrNoData
	case okL && left.Key == x:
		return left.Val, nil // exact hit
	case okL && !okR:
		return left.Val, nil
	case okR && !okL:
		return right.Val, nil
	case math.Abs(x-left.Key) < math.Abs(x-right.Key):
		return left.Val, nil
	default:
		return right.Val, nil // strictly closer right, or a tie
	}
}

// Len returns the number of registered observations.
//
// Complexity: O(1).
func (nn *NearestNeighbor) Len() int {
	return nn.data.Len()
}
