package client

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/safekey/internal/common"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrUnavailable      = errors.New("server unavailable")
	ErrTimeout          = errors.New("request timed out")
	ErrNotFound         = errors.New("not found")
	ErrAlreadyExists    = errors.New("already exists")
	ErrInvalidInput     = errors.New("invalid input")
	ErrPrecondition     = errors.New("precondition failed")
	ErrChallengeExpired = errors.New("otp challenge expired")
	ErrInvalidCode      = errors.New("invalid otp code")
)

// fromStatus maps a gRPC status error to a sentinel, keeping the server's
// message. Errors that are not statuses pass through.
func fromStatus(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	var sentinel error
	switch st.Code() {
	case codes.Unavailable:
		sentinel = ErrUnavailable
	case codes.DeadlineExceeded:
		sentinel = ErrTimeout
	case codes.NotFound:
		sentinel = ErrNotFound
	case codes.AlreadyExists:
		sentinel = ErrAlreadyExists
	case codes.InvalidArgument:
		sentinel = ErrInvalidInput
	case codes.FailedPrecondition:
		sentinel = ErrPrecondition
		if reasonOf(st) == common.ReasonChallengeExpired {
			sentinel = ErrChallengeExpired
		}
	case codes.PermissionDenied:
		sentinel = ErrInvalidCode
	default:
		return err
	}

	return fmt.Errorf("%w: %s", sentinel, st.Message())
}

// reasonOf returns the ErrorInfo reason attached by the server, if any.
func reasonOf(st *status.Status) string {
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.Domain == common.ErrorDomain {
			return info.Reason
		}
	}
	return ""
}
