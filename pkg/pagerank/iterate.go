package pagerank

import (
	"math"

	"github.com/lioia/corpus-pagerank/pkg/graph"
	"github.com/pkg/errors"
)

// Iterate computes ranks with the default threshold and iteration cap.
func Iterate(c *graph.Corpus, damping float64) (Ranks, error) {
	ranks, _, err := IterateUntil(c, damping, DefaultThreshold, DefaultMaxIterations)
	return ranks, err
}

// IterateUntil applies
//
//	R(p) = (1 - d)/N + d * sum_(q links to p) (R(q) / L(q))
//
// to every page until a whole sweep changes no rank by threshold or more, and
// returns the ranks normalised to sum 1 along with the number of sweeps.
// If maxIterations sweeps do not converge the last ranks are returned with
// ErrNotConverged.
func IterateUntil(c *graph.Corpus, damping, threshold float64, maxIterations int) (Ranks, int, error) {
	if c.Len() == 0 {
		return nil, 0, ErrEmptyCorpus
	}
	if err := validateDamping(damping); err != nil {
		return nil, 0, err
	}
	if threshold <= 0 || maxIterations < 1 {
		return nil, 0, errors.Wrapf(ErrInvalidConfig,
			"threshold %v and max iterations %d must be positive", threshold, maxIterations)
	}

	inLinks := inboundLinks(c)
	initial := 1 / float64(c.Len())
	ranks := make(Ranks, c.Len())
	for _, page := range c.Pages() {
		ranks[page] = initial
	}

	for i := 1; i <= maxIterations; i++ {
		var maxDelta float64
		ranks, maxDelta = step(c, inLinks, ranks, damping)
		if maxDelta < threshold {
			return normalize(ranks), i, nil
		}
	}
	return normalize(ranks), maxIterations,
		errors.Wrapf(ErrNotConverged, "after %d iterations", maxIterations)
}

// inboundLinks maps every page to the pages linking to it.
func inboundLinks(c *graph.Corpus) map[string][]string {
	inLinks := make(map[string][]string, c.Len())
	for _, q := range c.Pages() {
		links, _ := c.Links(q)
		for _, p := range links {
			inLinks[p] = append(inLinks[p], q)
		}
	}
	return inLinks
}

// step computes a full sweep from the previous ranks only and returns the new
// ranks with the largest absolute change over all pages.
func step(c *graph.Corpus, inLinks map[string][]string, ranks Ranks, damping float64) (Ranks, float64) {
	n := float64(c.Len())
	next := make(Ranks, len(ranks))
	maxDelta := 0.0
	for _, p := range c.Pages() {
		sum := 0.0
		for _, q := range inLinks[p] {
			sum += ranks[q] / float64(c.OutDegree(q))
		}
		next[p] = (1-damping)/n + damping*sum
		maxDelta = math.Max(maxDelta, math.Abs(next[p]-ranks[p]))
	}
	return next, maxDelta
}

func normalize(ranks Ranks) Ranks {
	sum := ranks.Sum()
	for page := range ranks {
		ranks[page] /= sum
	}
	return ranks
}
