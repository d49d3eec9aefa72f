package rt

import "math/rand"

// Sampler produces the stream of pseudo-random numbers an integrator
// consumes to pick light/BSDF samples, one independent stream per pixel so
// renders reproduce bit-for-bit given the same seed regardless of how many
// worker goroutines run concurrently. Grounded in
// vislab/graphics/include/vislab/graphics/sampler.hpp.
type Sampler interface {
	// Seed re-initializes the sampler for a given pixel/sample index,
	// combining it with the sampler's base seed.
	Seed(seedOffset uint64)
	// Clone returns an independent copy with the same base seed,
	// so each render worker can own a private sampler instance.
	Clone() Sampler
	// Next1D draws one uniform value in [0, 1).
	Next1D() float64
	// Next2D draws a pair of independent uniform values in [0, 1)^2.
	Next2D() Point2
	// SampleCount is the number of samples to take per pixel.
	SampleCount() int
}

// IndependentSampler draws i.i.d. uniform variates from a per-instance
// PRNG stream; no stratification or low-discrepancy structure, matching
// independent_sampler.cpp's "next_1d/next_2d sample independently, no
// correlation across dimensions" contract.
type IndependentSampler struct {
	baseSeed    uint64
	sampleCount int
	rng         *rand.Rand
}

func NewIndependentSampler(baseSeed uint64, sampleCount int) *IndependentSampler {
	s := &IndependentSampler{baseSeed: baseSeed, sampleCount: sampleCount}
	s.Seed(0)
	return s
}

func (s *IndependentSampler) Seed(seedOffset uint64) {
	s.rng = rand.New(rand.NewSource(int64(s.baseSeed + seedOffset)))
}

func (s *IndependentSampler) Clone() Sampler {
	return &IndependentSampler{baseSeed: s.baseSeed, sampleCount: s.sampleCount, rng: rand.New(rand.NewSource(int64(s.baseSeed)))}
}

func (s *IndependentSampler) Next1D() float64 {
	return s.rng.Float64()
}

func (s *IndependentSampler) Next2D() Point2 {
	return Point2{X: s.rng.Float64(), Y: s.rng.Float64()}
}

func (s *IndependentSampler) SampleCount() int {
	return s.sampleCount
}
