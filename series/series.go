package series

// Insert adds (key, val) to the series, or overwrites the stored value when
// key is already present. Sorted order is preserved, keeping all subsequent
// neighbor queries logarithmic.
//
// Complexity: O(log n).
func (s *Series) Insert(key, val float64) {
	var added bool
	s.root, added = insert(s.root, key, val)
	if added {
		s.size++
	}
}

// Floor returns the observation with the largest stored key ≤ key.
// The second return value is false when no such observation exists
// (in particular, on an empty series).
//
// Complexity: O(log n).
func (s *Series) Floor(key float64) (Observation, bool) {
	n := floor(s.root, key)
	if n == nil {
		return Observation{}, false
	}

	return Observation{Key: n.key, Val: n.val}, true
}

// Ceiling returns the observation with the smallest stored key ≥ key.
// The second return value is false when no such observation exists.
//
// Complexity: O(log n).
func (s *Series) Ceiling(key float64) (Observation, bool) {
	n := ceiling(s.root, key)
	if n == nil {
		return Observation{}, false
	}

	return Observation{Key: n.key, Val: n.val}, true
}

// IsEmpty reports whether the series holds no observations.
//
// Complexity: O(1).
func (s *Series) IsEmpty() bool {
	return s.size == 0
}

// Len returns the number of stored observations.
//
// Complexity: O(1).
func (s *Series) Len() int {
	return s.size
}

// MinKey returns the smallest stored key, or ErrEmptySeries when the series
// is empty.
//
// Complexity: O(log n).
func (s *Series) MinKey() (float64, error) {
	n := minNode(s.root)
	if n == nil {
		return 0, ErrEmptySeries
	}

	return n.key, nil
}

// MaxKey returns the largest stored key, or ErrEmptySeries when the series
// is empty.
//
// Complexity: O(log n).
func (s *Series) MaxKey() (float64, error) {
	n := maxNode(s.root)
	if n == nil {
		return 0, ErrEmptySeries
	}

	return n.key, nil
}

// Ascend visits every observation in strictly increasing key order, calling
// fn for each. The visit stops early when fn returns false.
//
// fn must not mutate the series.
//
// Complexity: O(n).
func (s *Series) Ascend(fn func(Observation) bool) {
	ascend(s.root, fn)
}
