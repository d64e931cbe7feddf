package pagerank

import (
	"github.com/lioia/corpus-pagerank/pkg/graph"
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"
)

// Reference computes ranks with gonum's PageRank. Its pages without links
// spread their rank over the whole corpus, as the transition model does, so
// it is the value a long random walk approaches.
func Reference(c *graph.Corpus, damping, tolerance float64) (Ranks, error) {
	if c.Len() == 0 {
		return nil, ErrEmptyCorpus
	}
	if err := validateDamping(damping); err != nil {
		return nil, err
	}

	pages := c.Pages()
	ids := make(map[string]int64, len(pages))
	g := simple.NewDirectedGraph()
	for i, page := range pages {
		ids[page] = int64(i)
		g.AddNode(simple.Node(i))
	}
	for _, page := range pages {
		links, _ := c.Links(page)
		for _, target := range links {
			g.SetEdge(simple.Edge{F: simple.Node(ids[page]), T: simple.Node(ids[target])})
		}
	}

	computed := network.PageRank(g, damping, tolerance)
	ranks := make(Ranks, len(pages))
	for page, id := range ids {
		ranks[page] = computed[id]
	}
	return ranks, nil
}
