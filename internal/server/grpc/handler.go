package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/safekey/internal/proto"
	"github.com/dmitrijs2005/safekey/internal/server/models"
	"github.com/dmitrijs2005/safekey/internal/server/services"
)

func (s *GRPCServer) Ping(ctx context.Context, req *pb.Empty) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

// Users

func (s *GRPCServer) CreateUser(ctx context.Context, req *pb.CreateUserRequest) (*pb.User, error) {
	u, err := s.users.Create(ctx, services.UserInput{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		PinCode:             req.PinCode,
		FingerprintTemplate: req.FingerprintTemplate,
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return userMessage(u), nil
}

func (s *GRPCServer) GetUser(ctx context.Context, req *pb.IDRequest) (*pb.User, error) {
	u, err := s.users.Get(ctx, req.Id)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return userMessage(u), nil
}

func (s *GRPCServer) ListUsers(ctx context.Context, req *pb.Empty) (*pb.ListUsersResponse, error) {
	list, err := s.users.List(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ListUsersResponse{Users: mapSlice(list, userMessage)}, nil
}

func (s *GRPCServer) UpdateUser(ctx context.Context, req *pb.UpdateUserRequest) (*pb.User, error) {
	u, err := s.users.Update(ctx, req.Id, services.UserInput{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		PinCode:             req.PinCode,
		FingerprintTemplate: req.FingerprintTemplate,
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return userMessage(u), nil
}

func (s *GRPCServer) DeleteUser(ctx context.Context, req *pb.IDRequest) (*pb.Empty, error) {
	if err := s.users.Delete(ctx, req.Id); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.Empty{}, nil
}

// Categories

func (s *GRPCServer) CreateCategory(ctx context.Context, req *pb.CreateCategoryRequest) (*pb.Category, error) {
	c, err := s.vault.CreateCategory(ctx, req.UserId, req.Name)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return categoryMessage(c), nil
}

func (s *GRPCServer) GetCategory(ctx context.Context, req *pb.IDRequest) (*pb.Category, error) {
	c, err := s.vault.GetCategory(ctx, req.Id)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return categoryMessage(c), nil
}

func (s *GRPCServer) ListCategories(ctx context.Context, req *pb.UserIDRequest) (*pb.ListCategoriesResponse, error) {
	list, err := s.vault.ListCategories(ctx, req.UserId)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ListCategoriesResponse{Categories: mapSlice(list, categoryMessage)}, nil
}

func (s *GRPCServer) ListAllCategories(ctx context.Context, req *pb.Empty) (*pb.ListCategoriesResponse, error) {
	list, err := s.vault.ListAllCategories(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ListCategoriesResponse{Categories: mapSlice(list, categoryMessage)}, nil
}

func (s *GRPCServer) UpdateCategory(ctx context.Context, req *pb.UpdateCategoryRequest) (*pb.Category, error) {
	c, err := s.vault.UpdateCategory(ctx, req.Id, req.Name)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return categoryMessage(c), nil
}

func (s *GRPCServer) DeleteCategory(ctx context.Context, req *pb.IDRequest) (*pb.Empty, error) {
	if err := s.vault.DeleteCategory(ctx, req.Id); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.Empty{}, nil
}

// Credentials

func (s *GRPCServer) CreateCredential(ctx context.Context, req *pb.CreateCredentialRequest) (*pb.Credential, error) {
	c, err := s.vault.CreateCredential(ctx, req.UserId, services.CredentialFields{
		CategoryID:        req.CategoryId,
		PlatformName:      req.PlatformName,
		AccountIdentifier: req.AccountIdentifier,
		SecretValue:       req.SecretValue,
		URL:               req.Url,
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return credentialMessage(c), nil
}

func (s *GRPCServer) GetCredential(ctx context.Context, req *pb.IDRequest) (*pb.Credential, error) {
	c, err := s.vault.GetCredential(ctx, req.Id)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return credentialMessage(c), nil
}

func (s *GRPCServer) ListCredentials(ctx context.Context, req *pb.UserIDRequest) (*pb.ListCredentialsResponse, error) {
	list, err := s.vault.ListCredentials(ctx, req.UserId)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ListCredentialsResponse{Credentials: mapSlice(list, credentialMessage)}, nil
}

func (s *GRPCServer) ListAllCredentials(ctx context.Context, req *pb.Empty) (*pb.ListCredentialsResponse, error) {
	list, err := s.vault.ListAllCredentials(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ListCredentialsResponse{Credentials: mapSlice(list, credentialMessage)}, nil
}

func (s *GRPCServer) UpdateCredential(ctx context.Context, req *pb.UpdateCredentialRequest) (*pb.Credential, error) {
	c, err := s.vault.UpdateCredential(ctx, req.Id, services.CredentialFields{
		CategoryID:        req.CategoryId,
		PlatformName:      req.PlatformName,
		AccountIdentifier: req.AccountIdentifier,
		SecretValue:       req.SecretValue,
		URL:               req.Url,
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return credentialMessage(c), nil
}

func (s *GRPCServer) DeleteCredential(ctx context.Context, req *pb.IDRequest) (*pb.Empty, error) {
	if err := s.vault.DeleteCredential(ctx, req.Id); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.Empty{}, nil
}

// Security settings

func (s *GRPCServer) GetSettings(ctx context.Context, req *pb.UserIDRequest) (*pb.SecuritySettings, error) {
	st, err := s.settings.Get(ctx, req.UserId)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return settingsMessage(st), nil
}

func (s *GRPCServer) CreateSettings(ctx context.Context, req *pb.CreateSettingsRequest) (*pb.SecuritySettings, error) {
	st, err := s.settings.Create(ctx, req.UserId, services.SettingsFields{
		BiometricEnabled:    req.BiometricEnabled,
		OtpEnabled:          req.OtpEnabled,
		PreferredOtpChannel: models.OtpChannel(req.PreferredOtpChannel),
		BackupEmail:         req.BackupEmail,
		BackupPhone:         req.BackupPhone,
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return settingsMessage(st), nil
}

func (s *GRPCServer) UpdateSettings(ctx context.Context, req *pb.UpdateSettingsRequest) (*pb.SecuritySettings, error) {
	st, err := s.settings.Update(ctx, req.Id, services.SettingsFields{
		BiometricEnabled:    req.BiometricEnabled,
		OtpEnabled:          req.OtpEnabled,
		PreferredOtpChannel: models.OtpChannel(req.PreferredOtpChannel),
		BackupEmail:         req.BackupEmail,
		BackupPhone:         req.BackupPhone,
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return settingsMessage(st), nil
}

// OTP

func (s *GRPCServer) GenerateOtp(ctx context.Context, req *pb.UserIDRequest) (*pb.GenerateOtpResponse, error) {
	code, err := s.otp.Generate(ctx, req.UserId)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.GenerateOtpResponse{Code: code}, nil
}

func (s *GRPCServer) VerifyOtp(ctx context.Context, req *pb.VerifyOtpRequest) (*pb.OtpChallenge, error) {
	c, err := s.otp.Verify(ctx, req.UserId, req.Code)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return challengeMessage(c), nil
}

func (s *GRPCServer) ListOtpChallenges(ctx context.Context, req *pb.Empty) (*pb.ListOtpChallengesResponse, error) {
	list, err := s.otp.ListAll(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ListOtpChallengesResponse{Challenges: mapSlice(list, challengeMessage)}, nil
}

func (s *GRPCServer) ListUserOtpChallenges(ctx context.Context, req *pb.UserIDRequest) (*pb.ListOtpChallengesResponse, error) {
	list, err := s.otp.ListForUser(ctx, req.UserId)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ListOtpChallengesResponse{Challenges: mapSlice(list, challengeMessage)}, nil
}

func (s *GRPCServer) DeleteOtpChallenge(ctx context.Context, req *pb.IDRequest) (*pb.Empty, error) {
	if err := s.otp.Delete(ctx, req.Id); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.Empty{}, nil
}

// Activity

func (s *GRPCServer) AppendActivity(ctx context.Context, req *pb.AppendActivityRequest) (*pb.ActivityLogEntry, error) {
	e, err := s.activity.Append(ctx, req.UserId, req.Action, req.Target, req.Details)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return activityMessage(e), nil
}

func (s *GRPCServer) ListActivity(ctx context.Context, req *pb.Empty) (*pb.ListActivityResponse, error) {
	list, err := s.activity.ListAll(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ListActivityResponse{Entries: mapSlice(list, activityMessage)}, nil
}

func (s *GRPCServer) ListUserActivity(ctx context.Context, req *pb.UserIDRequest) (*pb.ListActivityResponse, error) {
	list, err := s.activity.ListForUser(ctx, req.UserId)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ListActivityResponse{Entries: mapSlice(list, activityMessage)}, nil
}

func (s *GRPCServer) DeleteActivity(ctx context.Context, req *pb.IDRequest) (*pb.Empty, error) {
	if err := s.activity.Delete(ctx, req.Id); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) ClearActivity(ctx context.Context, req *pb.Empty) (*pb.Empty, error) {
	if err := s.activity.Clear(ctx); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.Empty{}, nil
}
