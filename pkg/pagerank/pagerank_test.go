package pagerank

import (
	"github.com/lioia/corpus-pagerank/pkg/graph"
)

const damping = 0.85

// scriptedSource replays fixed draws and records the weights it was offered.
type scriptedSource struct {
	start   int
	draws   []int
	offered [][]float64
}

func (s *scriptedSource) Intn(int) int {
	return s.start
}

func (s *scriptedSource) Weighted(weights []float64) int {
	s.offered = append(s.offered, append([]float64(nil), weights...))
	next := s.draws[0]
	s.draws = s.draws[1:]
	return next
}

func threePages() *graph.Corpus {
	return graph.NewCorpus(map[string][]string{
		"1.html": {"2.html"},
		"2.html": {"1.html", "3.html"},
		"3.html": {"2.html"},
	})
}

func corpora() map[string]*graph.Corpus {
	return map[string]*graph.Corpus{
		"three pages": threePages(),
		"dead end": graph.NewCorpus(map[string][]string{
			"1.html": {"2.html", "3.html"},
			"2.html": {"3.html"},
			"3.html": nil,
		}),
		"single page": graph.NewCorpus(map[string][]string{"a.html": nil}),
		"star": graph.NewCorpus(map[string][]string{
			"hub": {"a", "b", "c", "d"},
			"a":   {"hub"},
			"b":   {"hub"},
			"c":   {"hub", "a"},
			"d":   {"hub"},
		}),
		"two components": graph.NewCorpus(map[string][]string{
			"a": {"b"},
			"b": {"a"},
			"x": {"y"},
			"y": {"z"},
			"z": {"x"},
		}),
	}
}
