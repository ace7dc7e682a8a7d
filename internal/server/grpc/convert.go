package grpc

import (
	pb "github.com/dmitrijs2005/safekey/internal/proto"
	"github.com/dmitrijs2005/safekey/internal/server/models"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func userMessage(u *models.User) *pb.User {
	return &pb.User{
		Id:                  u.ID,
		FirstName:           u.FirstName,
		LastName:            u.LastName,
		PinCode:             u.PinCode,
		FingerprintTemplate: u.FingerprintTemplate,
		CreatedAt:           timestamppb.New(u.CreatedAt),
	}
}

func categoryMessage(c *models.Category) *pb.Category {
	return &pb.Category{Id: c.ID, Name: c.Name, UserId: c.UserID}
}

func credentialMessage(c *models.Credential) *pb.Credential {
	return &pb.Credential{
		Id:                c.ID,
		UserId:            c.UserID,
		CategoryId:        c.CategoryID,
		PlatformName:      c.PlatformName,
		AccountIdentifier: c.AccountIdentifier,
		SecretValue:       c.SecretValue,
		Url:               c.URL,
		CreatedAt:         timestamppb.New(c.CreatedAt),
	}
}

func settingsMessage(s *models.SecuritySettings) *pb.SecuritySettings {
	return &pb.SecuritySettings{
		Id:                  s.ID,
		UserId:              s.UserID,
		BiometricEnabled:    s.BiometricEnabled,
		OtpEnabled:          s.OtpEnabled,
		PreferredOtpChannel: string(s.PreferredOtpChannel),
		BackupEmail:         s.BackupEmail,
		BackupPhone:         s.BackupPhone,
	}
}

func challengeMessage(c *models.OtpChallenge) *pb.OtpChallenge {
	return &pb.OtpChallenge{
		Id:       c.ID,
		UserId:   c.UserID,
		Code:     c.Code,
		IssuedAt: timestamppb.New(c.IssuedAt),
		Verified: c.Verified,
	}
}

func activityMessage(e *models.ActivityLogEntry) *pb.ActivityLogEntry {
	return &pb.ActivityLogEntry{
		Id:        e.ID,
		UserId:    e.UserID,
		Action:    e.Action,
		Target:    e.Target,
		Details:   e.Details,
		Timestamp: timestamppb.New(e.Timestamp),
	}
}

func mapSlice[M, W any](in []M, conv func(*M) *W) []*W {
	out := make([]*W, 0, len(in))
	for i := range in {
		out = append(out, conv(&in[i]))
	}
	return out
}
