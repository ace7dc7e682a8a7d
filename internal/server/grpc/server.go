// Package grpc exposes the vault services as the safekey.v1.Vault gRPC
// service generated from internal/proto/vault.proto.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/safekey/internal/logging"
	pb "github.com/dmitrijs2005/safekey/internal/proto"
	"github.com/dmitrijs2005/safekey/internal/server/models"
	"github.com/dmitrijs2005/safekey/internal/server/services"
	"google.golang.org/grpc"
)

type userService interface {
	Create(ctx context.Context, in services.UserInput) (*models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id string, in services.UserInput) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

type vaultService interface {
	CreateCategory(ctx context.Context, userID, name string) (*models.Category, error)
	GetCategory(ctx context.Context, id string) (*models.Category, error)
	ListCategories(ctx context.Context, userID string) ([]models.Category, error)
	ListAllCategories(ctx context.Context) ([]models.Category, error)
	UpdateCategory(ctx context.Context, id, name string) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	CreateCredential(ctx context.Context, userID string, f services.CredentialFields) (*models.Credential, error)
	GetCredential(ctx context.Context, id string) (*models.Credential, error)
	ListCredentials(ctx context.Context, userID string) ([]models.Credential, error)
	ListAllCredentials(ctx context.Context) ([]models.Credential, error)
	UpdateCredential(ctx context.Context, id string, f services.CredentialFields) (*models.Credential, error)
	DeleteCredential(ctx context.Context, id string) error
}

type settingsService interface {
	Get(ctx context.Context, userID string) (*models.SecuritySettings, error)
	Create(ctx context.Context, userID string, f services.SettingsFields) (*models.SecuritySettings, error)
	Update(ctx context.Context, id string, f services.SettingsFields) (*models.SecuritySettings, error)
}

type otpService interface {
	Generate(ctx context.Context, userID string) (string, error)
	Verify(ctx context.Context, userID, code string) (*models.OtpChallenge, error)
	ListAll(ctx context.Context) ([]models.OtpChallenge, error)
	ListForUser(ctx context.Context, userID string) ([]models.OtpChallenge, error)
	Delete(ctx context.Context, id string) error
}

type activityService interface {
	Append(ctx context.Context, userID, action, target string, details *string) (*models.ActivityLogEntry, error)
	ListAll(ctx context.Context) ([]models.ActivityLogEntry, error)
	ListForUser(ctx context.Context, userID string) ([]models.ActivityLogEntry, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

// Services bundles the domain services the server dispatches to.
type Services struct {
	Users    userService
	Vault    vaultService
	Settings settingsService
	Otp      otpService
	Activity activityService
}

type GRPCServer struct {
	pb.UnimplementedVaultServer
	address  string
	users    userService
	vault    vaultService
	settings settingsService
	otp      otpService
	activity activityService
	logger   logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, s Services) *GRPCServer {
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		users:    s.Users,
		vault:    s.Vault,
		settings: s.Settings,
		otp:      s.Otp,
		activity: s.Activity,
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.requestLogInterceptor))

	// registers service
	pb.RegisterVaultServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully and returns nil.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "Stopping gRPC server...")
			srv.GracefulStop()
		case <-done:
		}
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
