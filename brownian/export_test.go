package brownian

// NewUnseededForTest builds a Process around an empty history, bypassing the
// constructors' seed-point guarantee, so tests can reach the corruption path.
func NewUnseededForTest(sigma float64) *Process {
	return &Process{
		sigma:   sigma,
		hist:    NewHistory(),
		sampler: NewGaussSampler(0),
	}
}

// Fuse exposes precision-weighted fusion for property tests.
func Fuse(l, r Normal) Normal {
	return fuse(l, r)
}
