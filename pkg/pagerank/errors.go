package pagerank

import "github.com/pkg/errors"

var (
	// ErrEmptyCorpus is returned when ranks are requested for a corpus with no pages.
	ErrEmptyCorpus = errors.New("corpus has no pages")
	// ErrInvalidPage is returned when the transition model is asked about a page
	// that is not part of the corpus.
	ErrInvalidPage = errors.New("page is not part of the corpus")
	// ErrInvalidConfig wraps every configuration validation failure.
	ErrInvalidConfig = errors.New("invalid pagerank configuration")
	// ErrNotConverged is returned together with the last ranks when the
	// iterative estimator hits its iteration cap.
	ErrNotConverged = errors.New("pagerank did not converge")
)
