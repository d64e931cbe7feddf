package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lioia/corpus-pagerank/pkg/node"
	"github.com/lioia/corpus-pagerank/pkg/utils"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve ranking over gRPC and HTTP",
		Long:  "Serves the ranking service over gRPC on GRPC_PORT and over HTTP on API_PORT until interrupted.",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	addPagerankFlags(cmd)
	return cmd
}

func newNode(cmd *cobra.Command) (*node.Node, error) {
	s, err := resolveSettings(cmd)
	if err != nil {
		return nil, err
	}
	id, err := gonanoid.New()
	if err != nil {
		return nil, errors.Wrap(err, "could not generate node id")
	}
	return &node.Node{Id: id, Defaults: s.config, Seed: s.seed}, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	n, err := newNode(cmd)
	if err != nil {
		return err
	}
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", env.GrpcPort))
	if err != nil {
		return errors.Wrap(err, "failed to listen for node server")
	}
	server := grpc.NewServer()
	node.RegisterRankerServer(server, &node.NodeServerImpl{Node: n})
	api := node.NewApiServer(n)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		utils.ServerLog("Starting gRPC server at %v", lis.Addr())
		return server.Serve(lis)
	})
	g.Go(func() error {
		addr := fmt.Sprintf(":%d", env.ApiPort)
		utils.ServerLog("Starting API server at %s", addr)
		if err := api.Start(addr); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		server.GracefulStop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return api.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
