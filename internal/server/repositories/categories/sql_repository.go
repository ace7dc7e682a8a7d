// Package categories stores credential categories. Names are unique across
// the whole store, not per user.
package categories

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

type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Create(ctx context.Context, c *models.Category) (*models.Category, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO categories (id, name, user_id)
		 VALUES ($1, $2, $3)
		 `

	if _, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.UserID); err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		if dbx.IsForeignKeyViolation(err) {
			return nil, common.NotFound(common.KindUser, c.UserID)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return c, nil
}

func (r *SQLRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	query := `SELECT id, name, user_id FROM categories WHERE id = $1`

	var c models.Category
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &c, nil
}

func (r *SQLRepository) ListByUser(ctx context.Context, userID string) ([]models.Category, error) {
	query :=
		`SELECT id, name, user_id FROM categories
		 WHERE user_id = $1
		 ORDER BY name
		 `
	return r.list(ctx, query, userID)
}

func (r *SQLRepository) ListAll(ctx context.Context) ([]models.Category, error) {
	query :=
		`SELECT id, name, user_id FROM categories
		 ORDER BY name
		 `
	return r.list(ctx, query)
}

func (r *SQLRepository) list(ctx context.Context, query string, args ...any) ([]models.Category, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.UserID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *SQLRepository) Rename(ctx context.Context, id, name string) (*models.Category, error) {
	query := `UPDATE categories SET name = $2 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, name)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if err := dbx.RequireAffected(res); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

func (r *SQLRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.RequireAffected(res)
}
