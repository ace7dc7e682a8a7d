package grpc

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/dmitrijs2005/safekey/internal/common"
	"github.com/dmitrijs2005/safekey/internal/logging"
	pb "github.com/dmitrijs2005/safekey/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newLoggedServer(buf *bytes.Buffer) *GRPCServer {
	return &GRPCServer{logger: logging.NewJSONLogger(buf, slog.LevelDebug)}
}

func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &rec))
	return rec
}

func TestRequestLogInterceptor_Success(t *testing.T) {
	var buf bytes.Buffer
	s := newLoggedServer(&buf)

	info := &grpc.UnaryServerInfo{FullMethod: pb.Vault_Ping_FullMethodName}
	called := false
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		called = true
		return "ok", nil
	}

	resp, err := s.requestLogInterceptor(context.Background(), &pb.Empty{}, info, h)
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "ok", resp)

	rec := lastRecord(t, &buf)
	assert.Equal(t, "INFO", rec["level"])
	assert.Equal(t, "/safekey.v1.Vault/Ping", rec["method"])
	assert.Equal(t, "OK", rec["code"])
	assert.NotEmpty(t, rec["request_id"])
	assert.Contains(t, rec, "duration")
}

func TestRequestLogInterceptor_PassesErrorsThrough(t *testing.T) {
	var buf bytes.Buffer
	s := newLoggedServer(&buf)

	info := &grpc.UnaryServerInfo{FullMethod: pb.Vault_VerifyOtp_FullMethodName}
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, status.Error(codes.PermissionDenied, common.ErrInvalidCode.Error())
	}

	_, err := s.requestLogInterceptor(context.Background(), &pb.VerifyOtpRequest{}, info, h)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	rec := lastRecord(t, &buf)
	assert.Equal(t, "INFO", rec["level"])
	assert.Equal(t, "PermissionDenied", rec["code"])
}

func TestRequestLogInterceptor_InternalIsError(t *testing.T) {
	var buf bytes.Buffer
	s := newLoggedServer(&buf)

	info := &grpc.UnaryServerInfo{FullMethod: pb.Vault_ListUsers_FullMethodName}
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, status.Error(codes.Internal, "internal error")
	}

	_, err := s.requestLogInterceptor(context.Background(), &pb.Empty{}, info, h)
	require.Error(t, err)

	rec := lastRecord(t, &buf)
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, "Internal", rec["code"])
}

func TestRequestLogInterceptor_UniqueIDs(t *testing.T) {
	var buf bytes.Buffer
	s := newLoggedServer(&buf)

	info := &grpc.UnaryServerInfo{FullMethod: pb.Vault_Ping_FullMethodName}
	h := func(ctx context.Context, req interface{}) (interface{}, error) { return nil, nil }

	_, _ = s.requestLogInterceptor(context.Background(), nil, info, h)
	first := lastRecord(t, &buf)["request_id"]
	_, _ = s.requestLogInterceptor(context.Background(), nil, info, h)
	second := lastRecord(t, &buf)["request_id"]

	assert.NotEqual(t, first, second)
}
