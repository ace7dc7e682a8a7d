package client

import (
	"context"

	pb "github.com/dmitrijs2005/safekey/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.VaultClient
}

// NewGRPCClient prepares a connection to endpointURL. Dialing is lazy, so an
// unreachable server shows up on the first call. Extra options are appended
// to the defaults.
func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}

	return &GRPCClient{endpointURL: endpointURL, conn: conn, client: pb.NewVaultClient(conn)}, nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func (c *GRPCClient) Ping(ctx context.Context) error {
	_, err := c.client.Ping(ctx, &pb.Empty{})
	return fromStatus(err)
}

func (c *GRPCClient) CreateUser(ctx context.Context, req *pb.CreateUserRequest) (*pb.User, error) {
	resp, err := c.client.CreateUser(ctx, req)
	if err != nil {
		return nil, fromStatus(err)
	}
	return resp, nil
}

func (c *GRPCClient) GetUser(ctx context.Context, id string) (*pb.User, error) {
	resp, err := c.client.GetUser(ctx, &pb.IDRequest{Id: id})
	if err != nil {
		return nil, fromStatus(err)
	}
	return resp, nil
}

func (c *GRPCClient) ListUsers(ctx context.Context) ([]*pb.User, error) {
	resp, err := c.client.ListUsers(ctx, &pb.Empty{})
	if err != nil {
		return nil, fromStatus(err)
	}
	return resp.Users, nil
}

func (c *GRPCClient) DeleteUser(ctx context.Context, id string) error {
	_, err := c.client.DeleteUser(ctx, &pb.IDRequest{Id: id})
	return fromStatus(err)
}

func (c *GRPCClient) CreateCategory(ctx context.Context, userID, name string) (*pb.Category, error) {
	resp, err := c.client.CreateCategory(ctx, &pb.CreateCategoryRequest{UserId: userID, Name: name})
	if err != nil {
		return nil, fromStatus(err)
	}
	return resp, nil
}

func (c *GRPCClient) ListCategories(ctx context.Context, userID string) ([]*pb.Category, error) {
	resp, err := c.client.ListCategories(ctx, &pb.UserIDRequest{UserId: userID})
	if err != nil {
		return nil, fromStatus(err)
	}
	return resp.Categories, nil
}

func (c *GRPCClient) RenameCategory(ctx context.Context, id, name string) (*pb.Category, error) {
	resp, err := c.client.UpdateCategory(ctx, &pb.UpdateCategoryRequest{Id: id, Name: name})
	if err != nil {
		return nil, fromStatus(err)
	}
	return resp, nil
}

func (c *GRPCClient) DeleteCategory(ctx context.Context, id string) error {
	_, err := c.client.DeleteCategory(ctx, &pb.IDRequest{Id: id})
	return fromStatus(err)
}

func (c *GRPCClient) CreateCredential(ctx context.Context, req *pb.CreateCredentialRequest) (*pb.Credential, error) {
	resp, err := c.client.CreateCredential(ctx, req)
	if err != nil {
		return nil, fromStatus(err)
	}
	return resp, nil
}

func (c *GRPCClient) GetCredential(ctx context.Context, id string) (*pb.Credential, error) {
	resp, err := c.client.GetCredential(ctx, &pb.IDRequest{Id: id})
	if err != nil {
		return nil, fromStatus(err)
	}
	return resp, nil
}

func (c *GRPCClient) ListCredentials(ctx context.Context, userID string) ([]*pb.Credential, error) {
	resp, err := c.client.ListCredentials(ctx, &pb.UserIDRequest{UserId: userID})
	if err != nil {
		return nil, fromStatus(err)
	}
	return resp.Credentials, nil
}

func (c *GRPCClient) DeleteCredential(ctx context.Context, id string) error {
	_, err := c.client.DeleteCredential(ctx, &pb.IDRequest{Id: id})
	return fromStatus(err)
}

func (c *GRPCClient) GetSettings(ctx context.Context, userID string) (*pb.SecuritySettings, error) {
	resp, err := c.client.GetSettings(ctx, &pb.UserIDRequest{UserId: userID})
	if err != nil {
		return nil, fromStatus(err)
	}
	return resp, nil
}

func (c *GRPCClient) CreateSettings(ctx context.Context, req *pb.CreateSettingsRequest) (*pb.SecuritySettings, error) {
	resp, err := c.client.CreateSettings(ctx, req)
	if err != nil {
		return nil, fromStatus(err)
	}
	return resp, nil
}

func (c *GRPCClient) UpdateSettings(ctx context.Context, req *pb.UpdateSettingsRequest) (*pb.SecuritySettings, error) {
	resp, err := c.client.UpdateSettings(ctx, req)
	if err != nil {
		return nil, fromStatus(err)
	}
	return resp, nil
}

func (c *GRPCClient) GenerateOtp(ctx context.Context, userID string) (string, error) {
	resp, err := c.client.GenerateOtp(ctx, &pb.UserIDRequest{UserId: userID})
	if err != nil {
		return "", fromStatus(err)
	}
	return resp.Code, nil
}

func (c *GRPCClient) VerifyOtp(ctx context.Context, userID, code string) (*pb.OtpChallenge, error) {
	resp, err := c.client.VerifyOtp(ctx, &pb.VerifyOtpRequest{UserId: userID, Code: code})
	if err != nil {
		return nil, fromStatus(err)
	}
	return resp, nil
}

func (c *GRPCClient) AppendActivity(ctx context.Context, req *pb.AppendActivityRequest) (*pb.ActivityLogEntry, error) {
	resp, err := c.client.AppendActivity(ctx, req)
	if err != nil {
		return nil, fromStatus(err)
	}
	return resp, nil
}

func (c *GRPCClient) ListUserActivity(ctx context.Context, userID string) ([]*pb.ActivityLogEntry, error) {
	resp, err := c.client.ListUserActivity(ctx, &pb.UserIDRequest{UserId: userID})
	if err != nil {
		return nil, fromStatus(err)
	}
	return resp.Entries, nil
}
