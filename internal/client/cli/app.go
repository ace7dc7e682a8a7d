package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/safekey/internal/client/client"
	"github.com/dmitrijs2005/safekey/internal/client/config"
	pb "github.com/dmitrijs2005/safekey/internal/proto"
)

// vaultAPI is the part of client.GRPCClient the CLI uses.
type vaultAPI interface {
	Ping(ctx context.Context) error
	CreateUser(ctx context.Context, req *pb.CreateUserRequest) (*pb.User, error)
	GetUser(ctx context.Context, id string) (*pb.User, error)
	ListUsers(ctx context.Context) ([]*pb.User, error)
	DeleteUser(ctx context.Context, id string) error
	CreateCategory(ctx context.Context, userID, name string) (*pb.Category, error)
	ListCategories(ctx context.Context, userID string) ([]*pb.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	CreateCredential(ctx context.Context, req *pb.CreateCredentialRequest) (*pb.Credential, error)
	GetCredential(ctx context.Context, id string) (*pb.Credential, error)
	ListCredentials(ctx context.Context, userID string) ([]*pb.Credential, error)
	DeleteCredential(ctx context.Context, id string) error
	GetSettings(ctx context.Context, userID string) (*pb.SecuritySettings, error)
	CreateSettings(ctx context.Context, req *pb.CreateSettingsRequest) (*pb.SecuritySettings, error)
	GenerateOtp(ctx context.Context, userID string) (string, error)
	VerifyOtp(ctx context.Context, userID, code string) (*pb.OtpChallenge, error)
	AppendActivity(ctx context.Context, req *pb.AppendActivityRequest) (*pb.ActivityLogEntry, error)
	ListUserActivity(ctx context.Context, userID string) ([]*pb.ActivityLogEntry, error)
	Close() error
}

type App struct {
	config *config.Config
	api    vaultAPI
	in     *bufio.Reader
	out    io.Writer
	user   *pb.User
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	return &App{config: c, api: apiClient, in: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.api.Close()

	fmt.Fprintln(a.out, "Welcome to safekey admin CLI (type 'help' for commands)")

	rctx, cancel := a.requestContext(ctx)
	if err := a.api.Ping(rctx); err != nil {
		fmt.Fprintf(a.out, "Server %s is not reachable yet: %v\n", a.config.ServerEndpointAddr, err)
	}
	cancel()

	runREPL(ctx, a, a.getStatus, a.in)
}

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", a.user.FirstName, a.user.LastName)
}

func (a *App) hasUser() bool {
	return a.user != nil
}

// requestContext bounds a single server call by the configured timeout.
func (a *App) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

func (a *App) requireUser() error {
	if a.user == nil {
		return errNoUser
	}
	return nil
}

// record appends an activity entry for the selected user. Failures are
// reported but do not fail the command that triggered them.
func (a *App) record(ctx context.Context, action, target string) {
	rctx, cancel := a.requestContext(ctx)
	defer cancel()

	_, err := a.api.AppendActivity(rctx, &pb.AppendActivityRequest{UserId: a.user.Id, Action: action, Target: target})
	if err != nil {
		fmt.Fprintln(a.out, "warning: activity not recorded:", err)
	}
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func yes(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "true", "1":
		return true
	}
	return false
}
