package main

import (
	"io"
	"os"
	"time"

	"github.com/lioia/corpus-pagerank/pkg/graph"
	"github.com/lioia/corpus-pagerank/pkg/pagerank"
	"github.com/lioia/corpus-pagerank/pkg/report"
	"github.com/lioia/corpus-pagerank/pkg/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newRankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank <corpus>",
		Short: "Rank the pages of a corpus",
		Long:  "Ranks the pages of a corpus (a directory of HTML pages, an edge-list file or an edge-list URL) by sampling and by iteration, printing both results sorted by page.",
		Args:  cobra.ExactArgs(1),
		RunE:  runRank,
	}
	addPagerankFlags(cmd)
	cmd.Flags().StringP("output", "o", "", "Write the reports to this file instead of stdout")
	cmd.Flags().Bool("reference", false, "Also print the ranks computed by gonum")
	cmd.Flags().String("render", "", "Draw the ranked corpus graph to this file")
	cmd.Flags().String("format", "svg", "Format of the drawn graph (dot, svg, png)")
	return cmd
}

func runRank(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	corpus, err := graph.LoadResource(args[0])
	if err != nil {
		return err
	}
	if output, _ := cmd.Flags().GetString("output"); output != "" {
		s.output = output
	}
	var out io.Writer = cmd.OutOrStdout()
	if s.output != "" {
		file, err := os.Create(s.output)
		if err != nil {
			return errors.Wrapf(err, "could not create %s", s.output)
		}
		defer file.Close()
		out = file
	}

	seed := s.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sampling, err := pagerank.Sample(corpus, s.config.Damping, s.config.Samples, pagerank.NewSource(seed))
	if err != nil {
		return err
	}
	if err := report.Write(out, report.SamplingTitle(s.config.Samples), sampling); err != nil {
		return err
	}

	iteration, iterations, err := pagerank.IterateUntil(corpus, s.config.Damping, s.config.Threshold, s.config.MaxIterations)
	if errors.Is(err, pagerank.ErrNotConverged) {
		utils.WarnLog("rank", "%v", err)
	} else if err != nil {
		return err
	}
	utils.NodeLog("rank", "Iteration converged after %d sweep(s)", iterations)
	if err := report.Write(out, report.IterationTitle, iteration); err != nil {
		return err
	}

	if reference, _ := cmd.Flags().GetBool("reference"); reference {
		ranks, err := pagerank.Reference(corpus, s.config.Damping, s.config.Threshold/10)
		if err != nil {
			return err
		}
		if err := report.Write(out, report.ReferenceTitle, ranks); err != nil {
			return err
		}
	}

	if path, _ := cmd.Flags().GetString("render"); path != "" {
		format, _ := cmd.Flags().GetString("format")
		return renderFile(path, format, corpus, iteration)
	}
	return nil
}

func renderFile(path, format string, corpus *graph.Corpus, ranks pagerank.Ranks) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create %s", path)
	}
	defer file.Close()
	return report.Render(corpus, ranks, format, file)
}
