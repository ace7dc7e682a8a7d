package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"time"

	"github.com/dmitrijs2005/safekey/internal/common"
	"github.com/dmitrijs2005/safekey/internal/dbx"
	"github.com/dmitrijs2005/safekey/internal/logging"
	"github.com/dmitrijs2005/safekey/internal/server/models"
	"github.com/dmitrijs2005/safekey/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/safekey/internal/timex"
)

// CodeLength is the number of digits in an OTP code.
const CodeLength = 6

// generateCode is a seam for tests that need a known code.
var generateCode = func() (string, error) {
	return common.RandomDigits(CodeLength)
}

// OtpService issues and checks one-time codes.
//
// Only the most recently issued challenge of a user counts. It is expired
// once more than validity has passed since issuance; expiry is computed on
// every check and never stored. A correct code may be replayed until the
// challenge expires.
type OtpService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	clock       timex.Clock
	validity    time.Duration
	logger      logging.Logger
}

func NewOtpService(db *sql.DB, m repomanager.RepositoryManager, c timex.Clock, validity time.Duration, l logging.Logger) *OtpService {
	return &OtpService{
		db:          db,
		repomanager: m,
		clock:       c,
		validity:    validity,
		logger:      l.With("module", "otp_service"),
	}
}

// Generate issues a new challenge for the user and returns its code.
func (s *OtpService) Generate(ctx context.Context, userID string) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", err
	}

	var challenge *models.OtpChallenge
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := requireUser(ctx, s.repomanager, tx, userID); err != nil {
			return err
		}

		var err error
		challenge, err = s.repomanager.Challenges(tx).Create(ctx, &models.OtpChallenge{
			UserID:   userID,
			Code:     code,
			IssuedAt: now(s.clock),
		})
		return err
	})
	if err != nil {
		return "", err
	}

	s.logger.Info(ctx, "otp challenge issued", "user_id", userID, "challenge_id", challenge.ID)
	return code, nil
}

// Verify checks code against the user's latest challenge and marks it
// verified on success. Failures are common.ErrNoChallenge,
// common.ErrChallengeExpired and common.ErrInvalidCode.
func (s *OtpService) Verify(ctx context.Context, userID, code string) (*models.OtpChallenge, error) {
	var challenge *models.OtpChallenge

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Challenges(tx)

		c, err := repo.Latest(ctx, userID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrNoChallenge
			}
			return err
		}

		if c.Expired(now(s.clock), s.validity) {
			return common.ErrChallengeExpired
		}
		if subtle.ConstantTimeCompare([]byte(code), []byte(c.Code)) != 1 {
			return common.ErrInvalidCode
		}

		if err := repo.MarkVerified(ctx, c.ID); err != nil {
			return err
		}
		c.Verified = true
		challenge = c
		return nil
	})
	if err != nil {
		s.logger.Debug(ctx, "otp verification failed", "user_id", userID, "reason", err.Error())
		return nil, err
	}

	s.logger.Info(ctx, "otp challenge verified", "user_id", userID, "challenge_id", challenge.ID)
	return challenge, nil
}

func (s *OtpService) ListAll(ctx context.Context) ([]models.OtpChallenge, error) {
	return s.repomanager.Challenges(s.db).ListAll(ctx)
}

// ListForUser returns the user's challenges, newest first.
func (s *OtpService) ListForUser(ctx context.Context, userID string) ([]models.OtpChallenge, error) {
	return s.repomanager.Challenges(s.db).ListByUser(ctx, userID)
}

func (s *OtpService) Delete(ctx context.Context, id string) error {
	if err := s.repomanager.Challenges(s.db).Delete(ctx, id); err != nil {
		return common.AsNotFound(err, common.KindOtpChallenge, id)
	}
	return nil
}
