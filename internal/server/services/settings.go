package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/safekey/internal/common"
	"github.com/dmitrijs2005/safekey/internal/dbx"
	"github.com/dmitrijs2005/safekey/internal/server/models"
	"github.com/dmitrijs2005/safekey/internal/server/repositories/repomanager"
)

// SettingsFields are the mutable fields of a security profile.
type SettingsFields struct {
	BiometricEnabled    bool
	OtpEnabled          bool
	PreferredOtpChannel models.OtpChannel
	BackupEmail         *string
	BackupPhone         *string
}

func (f SettingsFields) validate() error {
	if !f.PreferredOtpChannel.Valid() {
		return invalid("unknown otp channel %q", f.PreferredOtpChannel)
	}
	return nil
}

type SettingsService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewSettingsService(db *sql.DB, m repomanager.RepositoryManager) *SettingsService {
	return &SettingsService{db: db, repomanager: m}
}

// Get returns the user's profile. A user without one gets a
// NotFoundError of kind security_settings.
func (s *SettingsService) Get(ctx context.Context, userID string) (*models.SecuritySettings, error) {
	st, err := s.repomanager.Settings(s.db).GetByUser(ctx, userID)
	if err != nil {
		return nil, common.AsNotFound(err, common.KindSecuritySettings, userID)
	}
	return st, nil
}

// Create stores the first profile of a user. A second one fails with
// common.ErrorAlreadyExists.
func (s *SettingsService) Create(ctx context.Context, userID string, f SettingsFields) (*models.SecuritySettings, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	var st *models.SecuritySettings
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := requireUser(ctx, s.repomanager, tx, userID); err != nil {
			return err
		}

		var err error
		st, err = s.repomanager.Settings(tx).Create(ctx, &models.SecuritySettings{
			UserID:              userID,
			BiometricEnabled:    f.BiometricEnabled,
			OtpEnabled:          f.OtpEnabled,
			PreferredOtpChannel: f.PreferredOtpChannel,
			BackupEmail:         f.BackupEmail,
			BackupPhone:         f.BackupPhone,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return st, nil
}

// Update overwrites every mutable field of the profile with the given id.
func (s *SettingsService) Update(ctx context.Context, id string, f SettingsFields) (*models.SecuritySettings, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	st, err := s.repomanager.Settings(s.db).Update(ctx, &models.SecuritySettings{
		ID:                  id,
		BiometricEnabled:    f.BiometricEnabled,
		OtpEnabled:          f.OtpEnabled,
		PreferredOtpChannel: f.PreferredOtpChannel,
		BackupEmail:         f.BackupEmail,
		BackupPhone:         f.BackupPhone,
	})
	if err != nil {
		return nil, common.AsNotFound(err, common.KindSecuritySettings, id)
	}
	return st, nil
}
