package node

import (
	"context"

	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

type Client struct {
	conn *grpc.ClientConn
}

// RankerCall creates a gRPC client to `url`.
// Has to be closed (`c.Close()`)
func RankerCall(url string, opts ...grpc.DialOption) (Client, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.Dial(url, opts...)
	if err != nil {
		return Client{}, errors.Wrapf(err, "could not connect to %s", url)
	}
	return Client{conn: conn}, nil
}

func (c Client) Rank(ctx context.Context, job Job) (Result, error) {
	in, err := job.toStruct()
	if err != nil {
		return Result{}, errors.Wrap(err, "could not encode job")
	}
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, rankMethod, in, out); err != nil {
		return Result{}, err
	}
	return resultFromStruct(out), nil
}

func (c Client) HealthCheck(ctx context.Context) error {
	return c.conn.Invoke(ctx, healthCheckMethod, &emptypb.Empty{}, &emptypb.Empty{})
}

func (c Client) Close() error {
	return c.conn.Close()
}
