// Package credentials stores secrets filed under categories. Secret values
// are written and read back verbatim.
package credentials

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

const selectColumns = `SELECT id, user_id, category_id, platform_name, account_identifier, secret_value, url, created_at FROM credentials`

type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Create(ctx context.Context, c *models.Credential) (*models.Credential, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO credentials (id, user_id, category_id, platform_name, account_identifier, secret_value, url, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 `

	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.UserID, c.CategoryID, c.PlatformName, c.AccountIdentifier, c.SecretValue, dbx.NullString(c.URL), c.CreatedAt)
	if err != nil {
		if dbx.IsForeignKeyViolation(err) {
			return nil, common.ErrorNotFound
		}
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return c, nil
}

func (r *SQLRepository) GetByID(ctx context.Context, id string) (*models.Credential, error) {
	c, err := scanCredential(r.db.QueryRowContext(ctx, selectColumns+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *SQLRepository) ListByUser(ctx context.Context, userID string) ([]models.Credential, error) {
	return r.list(ctx, selectColumns+` WHERE user_id = $1 ORDER BY created_at, id`, userID)
}

func (r *SQLRepository) ListByCategory(ctx context.Context, categoryID string) ([]models.Credential, error) {
	return r.list(ctx, selectColumns+` WHERE category_id = $1 ORDER BY created_at, id`, categoryID)
}

func (r *SQLRepository) ListAll(ctx context.Context) ([]models.Credential, error) {
	return r.list(ctx, selectColumns+` ORDER BY created_at, id`)
}

func (r *SQLRepository) list(ctx context.Context, query string, args ...any) ([]models.Credential, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Credential
	for rows.Next() {
		c, err := scanCredential(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// Update replaces every mutable field. Owner and CreatedAt stay as stored.
func (r *SQLRepository) Update(ctx context.Context, c *models.Credential) (*models.Credential, error) {
	query :=
		`UPDATE credentials
		 SET category_id = $2, platform_name = $3, account_identifier = $4, secret_value = $5, url = $6
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		c.ID, c.CategoryID, c.PlatformName, c.AccountIdentifier, c.SecretValue, dbx.NullString(c.URL))
	if err != nil {
		if dbx.IsForeignKeyViolation(err) {
			return nil, common.NotFound(common.KindCategory, c.CategoryID)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if err := dbx.RequireAffected(res); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, c.ID)
}

func (r *SQLRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM credentials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.RequireAffected(res)
}

// DeleteByCategory removes every credential filed under categoryID and
// reports how many went.
func (r *SQLRepository) DeleteByCategory(ctx context.Context, categoryID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM credentials WHERE category_id = $1`, categoryID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func scanCredential(s dbx.Scanner) (*models.Credential, error) {
	var (
		c   models.Credential
		url sql.NullString
	)
	err := s.Scan(&c.ID, &c.UserID, &c.CategoryID, &c.PlatformName, &c.AccountIdentifier, &c.SecretValue, &url, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	c.URL = dbx.StringPtr(url)
	c.CreatedAt = c.CreatedAt.UTC()
	return &c, nil
}
