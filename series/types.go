// Package series defines the core types and sentinel errors for the ordered
// observation store of github.com/katalvlaran/lvlstoch.
package series

import "errors"

// Sentinel errors for series operations.
var (
	// ErrEmptySeries indicates a range query (MinKey/MaxKey) on an empty series.
	ErrEmptySeries = errors.New("series: series is empty")
)

// Observation is a single stored data point: a real-valued coordinate
// (time stamp or x position) and the value observed there.
//
// Observations returned by Floor/Ceiling are copies; mutating them does not
// affect the series.
type Observation struct {
	Key float64 // coordinate, unique within one Series
	Val float64 // observed value at Key
}

// Series is an ordered map from float64 keys to observed values, backed by
// an AVL tree. The zero value is not usable; construct with New.
//
// A Series never shrinks: there is no delete operation by design.
type Series struct {
	root *node
	size int
}

// New returns an empty Series.
//
// Complexity: O(1).
func New() *Series {
	return &Series{}
}
