package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/safekey/internal/common"
	"github.com/dmitrijs2005/safekey/internal/dbx"
	"github.com/dmitrijs2005/safekey/internal/logging"
	"github.com/dmitrijs2005/safekey/internal/server/blobs"
	"github.com/dmitrijs2005/safekey/internal/server/models"
	"github.com/dmitrijs2005/safekey/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/safekey/internal/timex"
	"github.com/google/uuid"
)

// UserInput carries the mutable fields of a user. A nil or empty
// FingerprintTemplate means "no template".
type UserInput struct {
	FirstName           string
	LastName            string
	PinCode             int64
	FingerprintTemplate []byte
}

func (in UserInput) validate() error {
	if err := required("first name", in.FirstName); err != nil {
		return err
	}
	if err := required("last name", in.LastName); err != nil {
		return err
	}
	if in.PinCode < 0 {
		return invalid("pin code must be a non-negative number")
	}
	return nil
}

type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	blobs       blobs.Store
	clock       timex.Clock
	logger      logging.Logger
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, b blobs.Store, c timex.Clock, l logging.Logger) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		blobs:       b,
		clock:       c,
		logger:      l.With("module", "user_service"),
	}
}

func (s *UserService) Create(ctx context.Context, in UserInput) (*models.User, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	user := &models.User{
		ID:        uuid.NewString(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		PinCode:   in.PinCode,
		CreatedAt: now(s.clock),
	}

	if len(in.FingerprintTemplate) > 0 {
		user.FingerprintKey = blobs.FingerprintKey(user.ID, uuid.NewString())
		if err := s.blobs.Put(ctx, user.FingerprintKey, in.FingerprintTemplate); err != nil {
			return nil, err
		}
	}

	if _, err := s.repomanager.Users(s.db).Create(ctx, user); err != nil {
		if user.HasFingerprint() {
			s.dropBlob(ctx, user.FingerprintKey)
		}
		return nil, err
	}

	user.FingerprintTemplate = in.FingerprintTemplate
	s.logger.Info(ctx, "user created", "user_id", user.ID)

	return user, nil
}

// Get loads the user together with the fingerprint template, if any.
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, common.AsNotFound(err, common.KindUser, id)
	}

	if user.HasFingerprint() {
		tpl, err := s.blobs.Get(ctx, user.FingerprintKey)
		switch {
		case errors.Is(err, common.ErrorNotFound):
			s.logger.Warn(ctx, "fingerprint blob missing", "user_id", id, "key", user.FingerprintKey)
		case err != nil:
			return nil, err
		default:
			user.FingerprintTemplate = tpl
		}
	}

	return user, nil
}

// List returns every user without fingerprint templates.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.repomanager.Users(s.db).List(ctx)
}

// Update replaces every mutable field. An empty template removes the
// stored one.
func (s *UserService) Update(ctx context.Context, id string, in UserInput) (*models.User, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)

	current, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, common.AsNotFound(err, common.KindUser, id)
	}

	next := &models.User{
		ID:        id,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		PinCode:   in.PinCode,
	}
	// the current template stays in place until the row points elsewhere
	if len(in.FingerprintTemplate) > 0 {
		next.FingerprintKey = blobs.FingerprintKey(id, uuid.NewString())
		if err := s.blobs.Put(ctx, next.FingerprintKey, in.FingerprintTemplate); err != nil {
			return nil, err
		}
	}

	updated, err := repo.Update(ctx, next)
	if err != nil {
		if next.HasFingerprint() {
			s.dropBlob(ctx, next.FingerprintKey)
		}
		return nil, common.AsNotFound(err, common.KindUser, id)
	}

	if current.HasFingerprint() && current.FingerprintKey != updated.FingerprintKey {
		s.dropBlob(ctx, current.FingerprintKey)
	}
	updated.FingerprintTemplate = in.FingerprintTemplate

	return updated, nil
}

// Delete removes a user that owns nothing. Users with categories,
// credentials, settings, challenges or log entries are refused with
// common.ErrHasDependents.
func (s *UserService) Delete(ctx context.Context, id string) error {
	var key string

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		user, err := repo.GetByID(ctx, id)
		if err != nil {
			return common.AsNotFound(err, common.KindUser, id)
		}

		busy, err := repo.HasDependents(ctx, id)
		if err != nil {
			return err
		}
		if busy {
			return common.ErrHasDependents
		}

		if err := repo.Delete(ctx, id); err != nil {
			return common.AsNotFound(err, common.KindUser, id)
		}
		key = user.FingerprintKey
		return nil
	})
	if err != nil {
		return err
	}

	if key != "" {
		s.dropBlob(ctx, key)
	}
	s.logger.Info(ctx, "user deleted", "user_id", id)

	return nil
}

func (s *UserService) dropBlob(ctx context.Context, key string) {
	if err := s.blobs.Delete(context.WithoutCancel(ctx), key); err != nil {
		s.logger.Warn(ctx, "fingerprint blob not removed", "key", key, "error", err)
	}
}
