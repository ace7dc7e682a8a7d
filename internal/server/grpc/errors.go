package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/safekey/internal/common"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// statusCode classifies a domain error. Unknown errors are Internal.
func statusCode(err error) codes.Code {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return codes.NotFound
	case errors.Is(err, common.ErrorAlreadyExists):
		return codes.AlreadyExists
	case errors.Is(err, common.ErrorValidation):
		return codes.InvalidArgument
	case errors.Is(err, common.ErrNoChallenge),
		errors.Is(err, common.ErrChallengeExpired),
		errors.Is(err, common.ErrHasDependents):
		return codes.FailedPrecondition
	case errors.Is(err, common.ErrInvalidCode):
		return codes.PermissionDenied
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	default:
		return codes.Internal
	}
}

// reason names the precondition that failed, or "" for other errors.
func reason(err error) string {
	switch {
	case errors.Is(err, common.ErrNoChallenge):
		return common.ReasonNoChallenge
	case errors.Is(err, common.ErrChallengeExpired):
		return common.ReasonChallengeExpired
	case errors.Is(err, common.ErrHasDependents):
		return common.ReasonHasDependents
	default:
		return ""
	}
}

// toStatus converts err into a gRPC status error. Internal failures are
// logged and reported without their cause.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	code := statusCode(err)
	if code == codes.Internal {
		s.logger.Error(ctx, "request failed", "error", err.Error())
		return status.Error(codes.Internal, common.ErrorInternal.Error())
	}

	st := status.New(code, err.Error())
	if r := reason(err); r != "" {
		withInfo, derr := st.WithDetails(&errdetails.ErrorInfo{Reason: r, Domain: common.ErrorDomain})
		if derr == nil {
			st = withInfo
		}
	}
	return st.Err()
}
