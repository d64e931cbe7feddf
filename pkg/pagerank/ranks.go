package pagerank

import "sort"

// Ranks maps every page of a corpus to its estimated PageRank.
type Ranks map[string]float64

// PageRank is a single page with its rank.
type PageRank struct {
	Page string
	Rank float64
}

func (r Ranks) Sum() float64 {
	sum := 0.0
	for _, v := range r {
		sum += v
	}
	return sum
}

// Sorted returns the ranks ordered by page identifier.
func (r Ranks) Sorted() []PageRank {
	sorted := make([]PageRank, 0, len(r))
	for page, rank := range r {
		sorted = append(sorted, PageRank{Page: page, Rank: rank})
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Page < sorted[j].Page
	})
	return sorted
}
