// Package main provides the pagerank CLI: rank a corpus locally, serve ranking
// over gRPC and HTTP, or distribute it through a RabbitMQ work queue.
package main

import (
	"github.com/lioia/corpus-pagerank/pkg/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// env is read once before any command runs
var env utils.EnvVars

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pagerank",
		Short:         "Estimate the PageRank of the pages of a corpus",
		Long:          "Estimates the relative importance of the pages of a closed hyperlink corpus by random-walk sampling and by iterating the PageRank recurrence until convergence.",
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			var err error
			if env, err = utils.ReadEnvVars(); err != nil {
				return errors.Wrap(err, "failed to read environment variables")
			}
			utils.InitLog(env.NodeLog, env.ServerLog)
			return nil
		},
	}
	rootCmd.AddCommand(newRankCmd(), newServeCmd(), newWorkerCmd(), newSubmitCmd(), newRemoteCmd())
	return rootCmd
}

func main() {
	utils.FailOnError("pagerank failed", newRootCmd().Execute())
}
