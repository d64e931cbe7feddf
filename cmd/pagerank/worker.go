package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lioia/corpus-pagerank/pkg/graph"
	"github.com/lioia/corpus-pagerank/pkg/node"
	"github.com/lioia/corpus-pagerank/pkg/utils"
	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/spf13/cobra"
)

func newWorkerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Rank the corpora submitted to the work queue",
		Args:  cobra.NoArgs,
		RunE:  runWorker,
	}
	addPagerankFlags(cmd)
	return cmd
}

func newSubmitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit <corpus>",
		Short: "Rank a corpus on a queue worker",
		Args:  cobra.ExactArgs(1),
		RunE:  runSubmit,
	}
	addPagerankFlags(cmd)
	cmd.Flags().Duration("timeout", time.Minute, "How long to wait for the result")
	return cmd
}

// connectQueue dials RabbitMQ and declares the work and result queues.
// The returned function closes the connection.
func connectQueue(n *node.Node) (func(), error) {
	conn, err := amqp.Dial(utils.RabbitURL(env))
	if err != nil {
		return nil, errors.Wrap(err, "could not connect to RabbitMQ")
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "failed to open a channel to RabbitMQ")
	}
	closeFn := func() {
		ch.Close()
		conn.Close()
	}
	work, err := utils.DeclareQueue(env.WorkQueue, ch)
	if err != nil {
		closeFn()
		return nil, errors.Wrapf(err, "failed to declare %q queue", env.WorkQueue)
	}
	result, err := utils.DeclareQueue(env.ResultQueue, ch)
	if err != nil {
		closeFn()
		return nil, errors.Wrapf(err, "failed to declare %q queue", env.ResultQueue)
	}
	n.Queue = node.Queue{Conn: conn, Channel: ch, Work: &work, Result: &result}
	return closeFn, nil
}

func runWorker(cmd *cobra.Command, _ []string) error {
	n, err := newNode(cmd)
	if err != nil {
		return err
	}
	closeFn, err := connectQueue(n)
	if err != nil {
		return err
	}
	defer closeFn()
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	utils.NodeLog("worker", "Worker %s waiting for jobs on %s", n.Id, env.WorkQueue)
	if err := n.Work(ctx); !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func runSubmit(cmd *cobra.Command, args []string) error {
	n, err := newNode(cmd)
	if err != nil {
		return err
	}
	corpus, err := graph.LoadResource(args[0])
	if err != nil {
		return err
	}
	closeFn, err := connectQueue(n)
	if err != nil {
		return err
	}
	defer closeFn()

	timeout, _ := cmd.Flags().GetDuration("timeout")
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()
	job := node.Job{Corpus: corpus.Map(), Config: n.Defaults, Seed: n.Seed}
	result, err := n.Submit(ctx, job)
	if err != nil {
		return err
	}
	return writeResult(cmd.OutOrStdout(), n.Defaults.Samples, result)
}
