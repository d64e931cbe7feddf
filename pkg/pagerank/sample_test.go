package pagerank

import (
	"math"
	"testing"

	"github.com/lioia/corpus-pagerank/pkg/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample_ScriptedWalk(t *testing.T) {
	src := &scriptedSource{start: 0, draws: []int{1, 2, 1, 0}}

	ranks, err := Sample(threePages(), damping, 5, src)
	require.NoError(t, err)

	assert.Equal(t, Ranks{"1.html": 0.4, "2.html": 0.4, "3.html": 0.2}, ranks)
	require.Len(t, src.offered, 4)
	// The walk is on 1.html, then 2.html, 3.html and 2.html again.
	assert.InDeltaSlice(t, []float64{0.05, 0.9, 0.05}, src.offered[0], 1e-9)
	assert.InDeltaSlice(t, []float64{0.475, 0.05, 0.475}, src.offered[1], 1e-9)
	assert.InDeltaSlice(t, []float64{0.05, 0.9, 0.05}, src.offered[2], 1e-9)
	assert.InDeltaSlice(t, []float64{0.475, 0.05, 0.475}, src.offered[3], 1e-9)
}

func TestSample_SingleDraw(t *testing.T) {
	ranks, err := Sample(threePages(), damping, 1, &scriptedSource{start: 2})
	require.NoError(t, err)

	assert.Equal(t, Ranks{"1.html": 0, "2.html": 0, "3.html": 1}, ranks)
}

func TestSample_SinglePage(t *testing.T) {
	c := graph.NewCorpus(map[string][]string{"a.html": nil})

	ranks, err := Sample(c, damping, 1000, NewSource(1))
	require.NoError(t, err)

	assert.Equal(t, Ranks{"a.html": 1}, ranks)
}

func TestSample_CountsPartitionSamples(t *testing.T) {
	const n = 10000
	for name, c := range corpora() {
		t.Run(name, func(t *testing.T) {
			ranks, err := Sample(c, damping, n, NewSource(42))
			require.NoError(t, err)

			assert.Len(t, ranks, c.Len())
			assert.InDelta(t, 1.0, ranks.Sum(), 1e-9)
			for page, rank := range ranks {
				assert.GreaterOrEqual(t, rank, 0.0, page)
				assert.LessOrEqual(t, rank, 1.0, page)
				visits := rank * n
				assert.InDelta(t, math.Round(visits), visits, 1e-6, page)
			}
		})
	}
}

func TestSample_Reproducible(t *testing.T) {
	first, err := Sample(threePages(), damping, 500, NewSource(7))
	require.NoError(t, err)
	second, err := Sample(threePages(), damping, 500, NewSource(7))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSample_ApproachesReference(t *testing.T) {
	for name, c := range corpora() {
		if c.Len() < 2 {
			continue
		}
		t.Run(name, func(t *testing.T) {
			sampled, err := Sample(c, damping, 200000, NewSource(3))
			require.NoError(t, err)
			reference, err := Reference(c, damping, 1e-9)
			require.NoError(t, err)

			for page, rank := range reference {
				assert.InDelta(t, rank, sampled[page], 0.01, page)
			}
		})
	}
}

func TestSample_Errors(t *testing.T) {
	_, err := Sample(graph.NewCorpus(nil), damping, 10, NewSource(1))
	assert.ErrorIs(t, err, ErrEmptyCorpus)

	_, err = Sample(threePages(), damping, 0, NewSource(1))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Sample(threePages(), 0, 10, NewSource(1))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Sample(threePages(), damping, 3, &scriptedSource{start: 0, draws: []int{7}})
	assert.Error(t, err)
}
