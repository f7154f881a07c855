package brownian

import "github.com/katalvlaran/lvlstoch/series"

// History is the set of known (time, value) observations of one Brownian
// variable. It wraps an ordered series and exposes the neighbor query the
// conditional-distribution machinery needs.
//
// A History used by a Process always contains at least the process's seed
// observation; Process constructors guarantee this.
type History struct {
	data *series.Series
}

// NewHistory returns an empty History.
//
// Complexity: O(1).
func NewHistory() *History {
	return &History{data: series.New()}
}

// Insert records the observation (t, val). Re-inserting an existing time
// overwrites the stored value.
//
// Complexity: O(log n).
func (h *History) Insert(t, val float64) {
	h.data.Insert(t, val)
}

// MartingaleRelevantPoints returns the nearest observation at-or-before t
// (left) and at-or-after t (right), each with its own presence flag. When t
// hits a stored time exactly, that observation is returned as both left and
// right — callers treat the coincidence as a zero-variance case.
//
// Example:
//
//	left, right, okL, okR := h.MartingaleRelevantPoints(3.1)
//	// okL, okR: (3.0, 0.07), (3.5, 0.21)
//	left, right, okL, okR  = h.MartingaleRelevantPoints(3.6)
//	// okL only: (3.5, 0.21), right absent
//
// Complexity: O(log n).
func (h *History) MartingaleRelevantPoints(t float64) (left, right series.Observation, okLeft, okRight bool) {
	left, okLeft = h.data.Floor(t)
	right, okRight = h.data.Ceiling(t)

	return left, right, okLeft, okRight
}

// Series exposes the underlying ordered series, e.g. to iterate every
// observation recorded so far. Mutating it directly bypasses no invariants —
// a History is exactly its series — but the usual entry point is Insert.
func (h *History) Series() *series.Series {
	return h.data
}

// Len returns the number of recorded observations.
//
// Complexity: O(1).
func (h *History) Len() int {
	return h.data.Len()
}
