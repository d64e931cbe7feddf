package node

import (
	"time"

	"github.com/lioia/corpus-pagerank/pkg/graph"
	"github.com/lioia/corpus-pagerank/pkg/pagerank"
	"github.com/lioia/corpus-pagerank/pkg/utils"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"
)

// Compute runs the sampling and the iterative estimators on the job corpus.
// A result that hit the iteration cap is still returned, with a warning logged.
func (n *Node) Compute(job Job) (Result, error) {
	if job.Id == "" {
		id, err := gonanoid.New()
		if err != nil {
			return Result{}, errors.Wrap(err, "could not generate job id")
		}
		job.Id = id
	}
	result := Result{Id: job.Id}
	config := job.Config.WithDefaults(n.Defaults)
	if err := config.Validate(); err != nil {
		return result, err
	}
	if config.Samples > MaxJobSamples || config.MaxIterations > MaxJobIterations {
		return result, errors.Wrapf(ErrInvalidJob, "at most %d samples and %d iterations, got %d and %d",
			MaxJobSamples, MaxJobIterations, config.Samples, config.MaxIterations)
	}
	corpus := graph.NewCorpus(job.Corpus)

	seed := job.Seed
	if seed == 0 {
		seed = n.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sampling, err := pagerank.Sample(corpus, config.Damping, config.Samples, pagerank.NewSource(seed))
	if err != nil {
		return result, err
	}
	iteration, iterations, err := pagerank.IterateUntil(corpus, config.Damping, config.Threshold, config.MaxIterations)
	if errors.Is(err, pagerank.ErrNotConverged) {
		utils.WarnLog("compute", "Job %s: %v", job.Id, err)
	} else if err != nil {
		return result, err
	}
	utils.NodeLog("compute", "Job %s: %d pages, %d samples, %d iteration(s)",
		job.Id, corpus.Len(), config.Samples, iterations)

	result.Sampling = sampling
	result.Iteration = iteration
	result.Iterations = iterations
	return result, nil
}

// isInvalidJob reports whether err was caused by the job contents rather than
// by the node.
func isInvalidJob(err error) bool {
	return errors.Is(err, ErrInvalidJob) ||
		errors.Is(err, pagerank.ErrEmptyCorpus) ||
		errors.Is(err, pagerank.ErrInvalidConfig) ||
		errors.Is(err, pagerank.ErrInvalidPage)
}
