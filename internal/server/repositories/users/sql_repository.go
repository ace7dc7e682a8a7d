// Package users stores vault owners.
package users

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

// SQLRepository works against both the pgx and sqlite drivers; every query
// uses $N placeholders.
type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO users (id, first_name, last_name, pin_code, fingerprint_key, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 `

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.FirstName, user.LastName, user.PinCode, dbx.NullIfEmpty(user.FingerprintKey), user.CreatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *SQLRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query :=
		`SELECT id, first_name, last_name, pin_code, fingerprint_key, created_at FROM users
		 WHERE id = $1
		 `

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *SQLRepository) List(ctx context.Context) ([]models.User, error) {
	query :=
		`SELECT id, first_name, last_name, pin_code, fingerprint_key, created_at FROM users
		 ORDER BY created_at, id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// Update overwrites the mutable fields and returns the stored row, so
// CreatedAt always reflects the original insert.
func (r *SQLRepository) Update(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`UPDATE users SET first_name = $2, last_name = $3, pin_code = $4, fingerprint_key = $5
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		user.ID, user.FirstName, user.LastName, user.PinCode, dbx.NullIfEmpty(user.FingerprintKey))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if err := dbx.RequireAffected(res); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, user.ID)
}

func (r *SQLRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM users WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		if dbx.IsForeignKeyViolation(err) {
			return common.ErrHasDependents
		}
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.RequireAffected(res)
}

func (r *SQLRepository) Exists(ctx context.Context, id string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`

	var ok bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&ok); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return ok, nil
}

// HasDependents reports whether any record still references the user.
func (r *SQLRepository) HasDependents(ctx context.Context, id string) (bool, error) {
	query :=
		`SELECT EXISTS (SELECT 1 FROM categories WHERE user_id = $1)
		     OR EXISTS (SELECT 1 FROM credentials WHERE user_id = $1)
		     OR EXISTS (SELECT 1 FROM security_settings WHERE user_id = $1)
		     OR EXISTS (SELECT 1 FROM otp_challenges WHERE user_id = $1)
		     OR EXISTS (SELECT 1 FROM activity_logs WHERE user_id = $1)
		 `

	var ok bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&ok); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return ok, nil
}

func scanUser(s dbx.Scanner) (*models.User, error) {
	var (
		u   models.User
		key sql.NullString
	)
	if err := s.Scan(&u.ID, &u.FirstName, &u.LastName, &u.PinCode, &key, &u.CreatedAt); err != nil {
		return nil, err
	}
	u.FingerprintKey = key.String
	u.CreatedAt = u.CreatedAt.UTC()
	return &u, nil
}
