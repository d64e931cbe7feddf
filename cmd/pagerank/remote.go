package main

import (
	"context"
	"time"

	"github.com/lioia/corpus-pagerank/pkg/graph"
	"github.com/lioia/corpus-pagerank/pkg/node"
	"github.com/spf13/cobra"
)

func newRemoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remote <corpus>",
		Short: "Rank a corpus on a running gRPC server",
		Args:  cobra.ExactArgs(1),
		RunE:  runRemote,
	}
	addPagerankFlags(cmd)
	cmd.Flags().String("addr", "127.0.0.1:50051", "gRPC server address")
	cmd.Flags().Duration("timeout", time.Minute, "How long to wait for the result")
	return cmd
}

func runRemote(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	corpus, err := graph.LoadResource(args[0])
	if err != nil {
		return err
	}
	addr, _ := cmd.Flags().GetString("addr")
	client, err := node.RankerCall(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	timeout, _ := cmd.Flags().GetDuration("timeout")
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()
	result, err := client.Rank(ctx, node.Job{Corpus: corpus.Map(), Config: s.config, Seed: s.seed})
	if err != nil {
		return err
	}
	return writeResult(cmd.OutOrStdout(), s.config.Samples, result)
}
