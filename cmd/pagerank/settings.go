package main

import (
	"io"

	"github.com/lioia/corpus-pagerank/pkg/node"
	"github.com/lioia/corpus-pagerank/pkg/pagerank"
	"github.com/lioia/corpus-pagerank/pkg/report"
	"github.com/lioia/corpus-pagerank/pkg/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type settings struct {
	config pagerank.Config
	seed   int64
	output string
}

func addPagerankFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("config", "c", "", "Path to JSON configuration file")
	f.Float64P("damping", "d", pagerank.DefaultDamping, "Damping factor, in (0, 1)")
	f.IntP("samples", "n", pagerank.DefaultSamples, "Number of random walk samples")
	f.Float64("threshold", pagerank.DefaultThreshold, "Largest rank change of a converged sweep")
	f.Int("max-iterations", pagerank.DefaultMaxIterations, "Maximum number of iterative sweeps")
	f.Int64("seed", 0, "Random walk seed (0: time based)")
}

// resolveSettings merges, by increasing priority, the defaults, the
// environment, the configuration file and the command line flags.
func resolveSettings(cmd *cobra.Command) (settings, error) {
	s := settings{config: env.Pagerank, seed: env.Seed}
	f := cmd.Flags()
	if path, _ := f.GetString("config"); path != "" {
		file, err := utils.LoadConfiguration(path)
		if err != nil {
			return s, errors.Wrapf(err, "could not load configuration %s", path)
		}
		s.config = file.Config.WithDefaults(s.config)
		if file.Seed != 0 {
			s.seed = file.Seed
		}
		s.output = file.Output
	}
	if f.Changed("damping") {
		s.config.Damping, _ = f.GetFloat64("damping")
	}
	if f.Changed("samples") {
		s.config.Samples, _ = f.GetInt("samples")
	}
	if f.Changed("threshold") {
		s.config.Threshold, _ = f.GetFloat64("threshold")
	}
	if f.Changed("max-iterations") {
		s.config.MaxIterations, _ = f.GetInt("max-iterations")
	}
	if f.Changed("seed") {
		s.seed, _ = f.GetInt64("seed")
	}
	return s, s.config.Validate()
}

func writeResult(w io.Writer, samples int, result node.Result) error {
	if err := report.Write(w, report.SamplingTitle(samples), result.Sampling); err != nil {
		return err
	}
	return report.Write(w, report.IterationTitle, result.Iteration)
}
