package interpolate

import (
	"math"

	"github.com/katalvlaran/lvlstoch/series"
)

// Linear interpolates by inverse-distance weighting between the two stored
// observations bracketing the query coordinate:
//
//	value = (|x−x_r|·v_l + |x−x_l|·v_r) / (|x−x_r| + |x−x_l|)
//
// The closer neighbor weighs more; as either distance shrinks to zero the
// formula degenerates to the exact-match case. Beyond either edge the
// nearest observation is returned unchanged (no extrapolation).
type Linear struct {
	data *series.Series
}

// compile-time contract check.
var _ Interpolator = (*Linear)(nil)

// NewLinear returns an empty linear streaming interpolator.
func NewLinear() *Linear {
	return &Linear{data: series.New()}
}

// Insert registers the observation (x, val), overwriting any stored value
// at the same x.
//
// Complexity: O(log n).
func (li *Linear) Insert(x, val float64) {
	li.data.Insert(x, val)
}

// Value returns the linearly interpolated value at x, or ErrNoData while no
// observation has been inserted.
//
// Complexity: O(log n).
func (li *Linear) Value(x float64) (float64, error) {
	left, right, okL, okR := neighbors(li.data, x)

	switch {
	case !okL && !okR:
		return 0, ErrNoData
	case okL && left.Key == x:
		return left.Val, nil // exact hit
	case okL && !okR:
		return left.Val, nil // past the right edge
	case okR && !okL:
		return right.Val, nil // before the left edge
	default:
		dl := math.Abs(x - left.Key)
		dr := math.Abs(x - right.Key)

		return (dr*left.Val + dl*right.Val) / (dr + dl), nil
	}
}

// Len returns the number of registered observations.
//
// Complexity: O(1).
func (li *Linear) Len() int {
	return li.data.Len()
}
