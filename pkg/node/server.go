package node

import (
	"context"

	"github.com/lioia/corpus-pagerank/pkg/utils"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	rankMethod        = "/pagerank.Ranker/Rank"
	healthCheckMethod = "/pagerank.Ranker/HealthCheck"
)

// RankerServer is the gRPC ranking service. Jobs and results travel as
// protobuf Structs.
type RankerServer interface {
	Rank(context.Context, *structpb.Struct) (*structpb.Struct, error)
	HealthCheck(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
}

type NodeServerImpl struct {
	Node *Node
}

var _ RankerServer = &NodeServerImpl{}

func RegisterRankerServer(s grpc.ServiceRegistrar, srv RankerServer) {
	s.RegisterService(&rankerServiceDesc, srv)
}

// From client to node: compute the ranks of a corpus
func (s *NodeServerImpl) Rank(_ context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	job, err := jobFromStruct(in)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	utils.ServerLog("Rank request for job %q (%d pages)", job.Id, len(job.Corpus))
	result, err := s.Node.Compute(job)
	if err != nil {
		if isInvalidJob(err) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	out, err := result.toStruct()
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

// From client to node to check if the node is still alive
func (s *NodeServerImpl) HealthCheck(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return &emptypb.Empty{}, nil
}

var rankerServiceDesc = grpc.ServiceDesc{
	ServiceName: "pagerank.Ranker",
	HandlerType: (*RankerServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Rank", Handler: rankHandler},
		{MethodName: "HealthCheck", Handler: healthCheckHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pagerank.proto",
}

func rankHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RankerServer).Rank(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: rankMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RankerServer).Rank(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func healthCheckHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RankerServer).HealthCheck(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: healthCheckMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RankerServer).HealthCheck(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}
