package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/safekey/internal/common"
	"github.com/dmitrijs2005/safekey/internal/dbx"
	"github.com/dmitrijs2005/safekey/internal/logging"
	"github.com/dmitrijs2005/safekey/internal/server/models"
	"github.com/dmitrijs2005/safekey/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/safekey/internal/timex"
)

// CredentialFields are the mutable fields of a credential. Updates replace
// all of them, so a nil URL clears a stored one.
type CredentialFields struct {
	CategoryID        string
	PlatformName      string
	AccountIdentifier string
	SecretValue       string
	URL               *string
}

func (f CredentialFields) validate() error {
	if err := required("category id", f.CategoryID); err != nil {
		return err
	}
	if err := required("platform name", f.PlatformName); err != nil {
		return err
	}
	if err := required("account identifier", f.AccountIdentifier); err != nil {
		return err
	}
	if f.SecretValue == "" {
		return invalid("secret value is required")
	}
	return nil
}

// VaultService manages categories and the credentials filed under them.
// It never writes activity entries or asks for OTP on its own.
type VaultService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	clock       timex.Clock
	logger      logging.Logger
}

func NewVaultService(db *sql.DB, m repomanager.RepositoryManager, c timex.Clock, l logging.Logger) *VaultService {
	return &VaultService{
		db:          db,
		repomanager: m,
		clock:       c,
		logger:      l.With("module", "vault_service"),
	}
}

func (s *VaultService) CreateCategory(ctx context.Context, userID, name string) (*models.Category, error) {
	if err := required("category name", name); err != nil {
		return nil, err
	}

	var category *models.Category
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.requireUser(ctx, tx, userID); err != nil {
			return err
		}

		var err error
		category, err = s.repomanager.Categories(tx).Create(ctx, &models.Category{Name: name, UserID: userID})
		return err
	})
	if err != nil {
		return nil, err
	}

	return category, nil
}

func (s *VaultService) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	c, err := s.repomanager.Categories(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, common.AsNotFound(err, common.KindCategory, id)
	}
	return c, nil
}

func (s *VaultService) ListCategories(ctx context.Context, userID string) ([]models.Category, error) {
	return s.repomanager.Categories(s.db).ListByUser(ctx, userID)
}

func (s *VaultService) ListAllCategories(ctx context.Context) ([]models.Category, error) {
	return s.repomanager.Categories(s.db).ListAll(ctx)
}

func (s *VaultService) UpdateCategory(ctx context.Context, id, name string) (*models.Category, error) {
	if err := required("category name", name); err != nil {
		return nil, err
	}

	c, err := s.repomanager.Categories(s.db).Rename(ctx, id, name)
	if err != nil {
		return nil, common.AsNotFound(err, common.KindCategory, id)
	}
	return c, nil
}

// DeleteCategory removes the category and every credential filed under it
// in one transaction.
func (s *VaultService) DeleteCategory(ctx context.Context, id string) error {
	var removed int64

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		cats := s.repomanager.Categories(tx)

		if _, err := cats.GetByID(ctx, id); err != nil {
			return common.AsNotFound(err, common.KindCategory, id)
		}

		var err error
		removed, err = s.repomanager.Credentials(tx).DeleteByCategory(ctx, id)
		if err != nil {
			return err
		}

		if err := cats.Delete(ctx, id); err != nil {
			return common.AsNotFound(err, common.KindCategory, id)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "category deleted", "category_id", id, "credentials_removed", removed)
	return nil
}

func (s *VaultService) CreateCredential(ctx context.Context, userID string, f CredentialFields) (*models.Credential, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	var cred *models.Credential
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.requireUser(ctx, tx, userID); err != nil {
			return err
		}
		if err := s.requireCategory(ctx, tx, f.CategoryID); err != nil {
			return err
		}

		var err error
		cred, err = s.repomanager.Credentials(tx).Create(ctx, &models.Credential{
			UserID:            userID,
			CategoryID:        f.CategoryID,
			PlatformName:      f.PlatformName,
			AccountIdentifier: f.AccountIdentifier,
			SecretValue:       f.SecretValue,
			URL:               f.URL,
			CreatedAt:         now(s.clock),
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return cred, nil
}

func (s *VaultService) GetCredential(ctx context.Context, id string) (*models.Credential, error) {
	c, err := s.repomanager.Credentials(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, common.AsNotFound(err, common.KindCredential, id)
	}
	return c, nil
}

func (s *VaultService) ListCredentials(ctx context.Context, userID string) ([]models.Credential, error) {
	return s.repomanager.Credentials(s.db).ListByUser(ctx, userID)
}

func (s *VaultService) ListAllCredentials(ctx context.Context) ([]models.Credential, error) {
	return s.repomanager.Credentials(s.db).ListAll(ctx)
}

// UpdateCredential overwrites every mutable field of the credential.
func (s *VaultService) UpdateCredential(ctx context.Context, id string, f CredentialFields) (*models.Credential, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	var cred *models.Credential
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Credentials(tx)

		if _, err := repo.GetByID(ctx, id); err != nil {
			return common.AsNotFound(err, common.KindCredential, id)
		}
		if err := s.requireCategory(ctx, tx, f.CategoryID); err != nil {
			return err
		}

		var err error
		cred, err = repo.Update(ctx, &models.Credential{
			ID:                id,
			CategoryID:        f.CategoryID,
			PlatformName:      f.PlatformName,
			AccountIdentifier: f.AccountIdentifier,
			SecretValue:       f.SecretValue,
			URL:               f.URL,
		})
		if err != nil {
			return common.AsNotFound(err, common.KindCredential, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return cred, nil
}

func (s *VaultService) DeleteCredential(ctx context.Context, id string) error {
	if err := s.repomanager.Credentials(s.db).Delete(ctx, id); err != nil {
		return common.AsNotFound(err, common.KindCredential, id)
	}
	return nil
}

func (s *VaultService) requireUser(ctx context.Context, db dbx.DBTX, id string) error {
	return requireUser(ctx, s.repomanager, db, id)
}

func (s *VaultService) requireCategory(ctx context.Context, db dbx.DBTX, id string) error {
	if _, err := s.repomanager.Categories(db).GetByID(ctx, id); err != nil {
		return common.AsNotFound(err, common.KindCategory, id)
	}
	return nil
}

func requireUser(ctx context.Context, m repomanager.RepositoryManager, db dbx.DBTX, id string) error {
	ok, err := m.Users(db).Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return common.NotFound(common.KindUser, id)
	}
	return nil
}
