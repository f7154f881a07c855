// Package interpolate provides deterministic streaming interpolation of
// (x, value) pairs: data arrives in any order, and every query answers from
// the two stored observations bracketing the query coordinate.
//
// 🚀 What is interpolate?
//
//	Two Interpolator variants over a shared geometric contract:
//	  • Linear          — inverse-distance-weighted average of the two
//	    bracketing values; the closer neighbor weighs more
//	  • NearestNeighbor — the strictly closer neighbor's value; ties go to
//	    the right neighbor (deterministic)
//
//	Shared rules:
//	  • an exact hit on a stored x returns the stored value
//	  • a single neighbor (query beyond either edge) returns that
//	    neighbor's value unchanged — no extrapolation
//	  • an empty interpolator answers ErrNoData
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlstoch/interpolate"
//
//	li := interpolate.NewLinear()
//	li.Insert(0, 0)
//	li.Insert(10, 100)
//
//	v, err := li.Value(4) // 40, nil
//
// Each interpolator owns its private lvlstoch/series store, so insertion and
// queries stay O(log n) over long streaming sessions. No internal locking;
// single-writer access per instance.
package interpolate
