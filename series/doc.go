// Package series provides an ordered, float64-keyed observation store with
// logarithmic neighbor queries under streaming insertion.
//
// 🚀 What is series?
//
//	A Series is a self-balancing (AVL) map from a real-valued coordinate —
//	a time stamp, an x position — to an observed value. It is the storage
//	primitive behind lvlstoch's Brownian histories and streaming
//	interpolators, and is useful on its own whenever you need:
//	  • Floor / Ceiling — nearest stored observation at-or-below /
//	    at-or-above an arbitrary query coordinate
//	  • MinKey / MaxKey — range endpoints of everything seen so far
//	  • Insert — streaming, out-of-order ingestion with overwrite-on-rekey
//
// ✨ Key properties:
//   - O(log n) Insert, Floor and Ceiling — safe for long-running sessions
//   - strictly increasing keys in iteration order (Ascend)
//   - an empty Series is a valid state; neighbor queries degrade to "none"
//   - no deletion: a Series only ever grows
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlstoch/series"
//
//	s := series.New()
//	s.Insert(3.0, 0.07)
//	s.Insert(3.5, 0.21)
//
//	left, ok := s.Floor(3.1)    // (3.0, 0.07), true
//	right, ok := s.Ceiling(3.1) // (3.5, 0.21), true
//
// Concurrency: a Series performs no internal locking. Single-writer access
// is assumed; callers that share one instance across goroutines must
// serialize externally.
//
// Complexity: Insert/Floor/Ceiling O(log n), MinKey/MaxKey O(log n),
// Ascend O(n), memory O(n).
package series
