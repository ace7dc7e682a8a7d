// Package settings stores per-user security profiles. The user_id column is
// unique, so a second profile for the same user is rejected by the store.
package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/safekey/internal/common"
	"github.com/dmitrijs2005/safekey/internal/dbx"
	"github.com/dmitrijs2005/safekey/internal/server/models"
	"github.com/google/uuid"
)

const selectColumns = `SELECT id, user_id, biometric_enabled, otp_enabled, preferred_otp_channel, backup_email, backup_phone FROM security_settings`

type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Create(ctx context.Context, s *models.SecuritySettings) (*models.SecuritySettings, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO security_settings (id, user_id, biometric_enabled, otp_enabled, preferred_otp_channel, backup_email, backup_phone)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 `

	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.UserID, s.BiometricEnabled, s.OtpEnabled, string(s.PreferredOtpChannel),
		dbx.NullString(s.BackupEmail), dbx.NullString(s.BackupPhone))
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		if dbx.IsForeignKeyViolation(err) {
			return nil, common.NotFound(common.KindUser, s.UserID)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return s, nil
}

func (r *SQLRepository) GetByID(ctx context.Context, id string) (*models.SecuritySettings, error) {
	return r.get(ctx, selectColumns+` WHERE id = $1`, id)
}

func (r *SQLRepository) GetByUser(ctx context.Context, userID string) (*models.SecuritySettings, error) {
	return r.get(ctx, selectColumns+` WHERE user_id = $1`, userID)
}

func (r *SQLRepository) get(ctx context.Context, query string, arg string) (*models.SecuritySettings, error) {
	var (
		s       models.SecuritySettings
		channel string
		email   sql.NullString
		phone   sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&s.ID, &s.UserID, &s.BiometricEnabled, &s.OtpEnabled, &channel, &email, &phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	s.PreferredOtpChannel = models.OtpChannel(channel)
	s.BackupEmail = dbx.StringPtr(email)
	s.BackupPhone = dbx.StringPtr(phone)

	return &s, nil
}

// Update overwrites every mutable field; id and user_id are left alone.
func (r *SQLRepository) Update(ctx context.Context, s *models.SecuritySettings) (*models.SecuritySettings, error) {
	query :=
		`UPDATE security_settings
		 SET biometric_enabled = $2, otp_enabled = $3, preferred_otp_channel = $4, backup_email = $5, backup_phone = $6
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		s.ID, s.BiometricEnabled, s.OtpEnabled, string(s.PreferredOtpChannel),
		dbx.NullString(s.BackupEmail), dbx.NullString(s.BackupPhone))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if err := dbx.RequireAffected(res); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, s.ID)
}
