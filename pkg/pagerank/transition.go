package pagerank

import (
	"github.com/lioia/corpus-pagerank/pkg/graph"
	"github.com/pkg/errors"
)

// Distribution gives the probability of visiting each page next.
type Distribution map[string]float64

// Transition returns the next-visit distribution of a random surfer on page.
// With probability damping the surfer follows one of the page links, otherwise
// it jumps to any page of the corpus. A page without links behaves as if it
// linked to every page.
func Transition(c *graph.Corpus, page string, damping float64) (Distribution, error) {
	if c.Len() == 0 {
		return nil, ErrEmptyCorpus
	}
	if !c.Has(page) {
		return nil, errors.Wrapf(ErrInvalidPage, "page %q", page)
	}
	linked, _ := c.Links(page)
	if err := validateDamping(damping); err != nil {
		return nil, err
	}

	n := float64(c.Len())
	distribution := make(Distribution, c.Len())
	if len(linked) == 0 {
		for _, p := range c.Pages() {
			distribution[p] = 1 / n
		}
		return distribution, nil
	}

	base := (1 - damping) / n
	for _, p := range c.Pages() {
		distribution[p] = base
	}
	follow := damping / float64(len(linked))
	for _, p := range linked {
		distribution[p] += follow
	}
	return distribution, nil
}
