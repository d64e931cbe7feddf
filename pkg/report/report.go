// Package report prints and draws PageRank results.
package report

import (
	"fmt"
	"io"

	"github.com/lioia/corpus-pagerank/pkg/pagerank"
)

func SamplingTitle(samples int) string {
	return fmt.Sprintf("PageRank Results from Sampling (n = %d)", samples)
}

const (
	IterationTitle = "PageRank Results from Iteration"
	ReferenceTitle = "PageRank Results from Reference"
)

// Write prints title followed by one `page: rank` line per page, ordered by
// page identifier.
func Write(w io.Writer, title string, ranks pagerank.Ranks) error {
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	for _, r := range ranks.Sorted() {
		if _, err := fmt.Fprintf(w, "  %s: %.4f\n", r.Page, r.Rank); err != nil {
			return err
		}
	}
	return nil
}
