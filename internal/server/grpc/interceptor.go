package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// RequestIDHeader is the response header carrying the server-assigned
// request id.
const RequestIDHeader = "x-request-id"

func (s *GRPCServer) requestLogInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	requestID := uuid.NewString()
	start := time.Now()

	// fails only outside a real transport stream
	_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, requestID))

	resp, err := handler(ctx, req)

	code := status.Code(err)
	args := []any{
		"request_id", requestID,
		"method", info.FullMethod,
		"duration", time.Since(start),
		"code", code.String(),
	}

	if code == codes.Internal || code == codes.Unknown {
		s.logger.Error(ctx, "request completed", args...)
	} else {
		s.logger.Info(ctx, "request completed", args...)
	}

	return resp, err
}
