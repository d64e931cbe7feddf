package pagerank

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Source drives the random walk. Tests substitute a scripted Source to
// assert exact visitation sequences.
type Source interface {
	// Intn returns a uniformly chosen index in [0, n).
	Intn(n int) int
	// Weighted returns an index drawn with probability proportional to its
	// weight, or -1 when no weight is positive.
	Weighted(weights []float64) int
}

type randSource struct {
	src rand.Source
	rnd *rand.Rand
}

// NewSource returns a Source whose draws are reproducible for a given seed.
func NewSource(seed int64) Source {
	src := rand.NewPCG(uint64(seed), uint64(seed))
	return &randSource{src: src, rnd: rand.New(src)}
}

func (s *randSource) Intn(n int) int {
	return s.rnd.IntN(n)
}

func (s *randSource) Weighted(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return -1
	}
	return int(distuv.NewCategorical(weights, s.src).Rand())
}
