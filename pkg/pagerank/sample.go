package pagerank

import (
	"github.com/lioia/corpus-pagerank/pkg/graph"
	"github.com/pkg/errors"
)

// Sample estimates ranks as the visit frequency of an n-step random walk that
// starts on a uniformly chosen page.
func Sample(c *graph.Corpus, damping float64, n int, src Source) (Ranks, error) {
	if c.Len() == 0 {
		return nil, ErrEmptyCorpus
	}
	if err := validateDamping(damping); err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, errors.Wrapf(ErrInvalidConfig, "samples must be at least 1, got %d", n)
	}

	pages := c.Pages()
	visits := make([]int, len(pages))
	weights := make([]float64, len(pages))

	current := src.Intn(len(pages))
	if current < 0 || current >= len(pages) {
		return nil, errors.Errorf("random source returned start index %d for %d pages", current, len(pages))
	}
	visits[current]++
	for i := 1; i < n; i++ {
		distribution, err := Transition(c, pages[current], damping)
		if err != nil {
			return nil, err
		}
		for j, page := range pages {
			weights[j] = distribution[page]
		}
		next := src.Weighted(weights)
		if next < 0 || next >= len(pages) {
			return nil, errors.Errorf("random source returned index %d for %d pages", next, len(pages))
		}
		visits[next]++
		current = next
	}

	ranks := make(Ranks, len(pages))
	for i, page := range pages {
		ranks[page] = float64(visits[i]) / float64(n)
	}
	return ranks, nil
}
