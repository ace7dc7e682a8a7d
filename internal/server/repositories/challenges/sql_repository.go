// Package challenges stores issued OTP challenges. Rows are never rewritten
// except for the verified flag, which only ever moves to true.
package challenges

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

const selectColumns = `SELECT id, user_id, code, issued_at, verified FROM otp_challenges`

type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

// Create stores c. A missing id is filled with a time-ordered UUIDv7 so
// that challenges issued within one instant still sort by issue order.
func (r *SQLRepository) Create(ctx context.Context, c *models.OtpChallenge) (*models.OtpChallenge, error) {
	if c.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, err
		}
		c.ID = id.String()
	}

	query :=
		`INSERT INTO otp_challenges (id, user_id, code, issued_at, verified)
		 VALUES ($1, $2, $3, $4, $5)
		 `

	if _, err := r.db.ExecContext(ctx, query, c.ID, c.UserID, c.Code, c.IssuedAt, c.Verified); err != nil {
		if dbx.IsForeignKeyViolation(err) {
			return nil, common.NotFound(common.KindUser, c.UserID)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return c, nil
}

// Latest returns the most recently issued challenge for the user, or
// common.ErrorNotFound when none was ever issued.
func (r *SQLRepository) Latest(ctx context.Context, userID string) (*models.OtpChallenge, error) {
	query := selectColumns + ` WHERE user_id = $1 ORDER BY issued_at DESC, id DESC LIMIT 1`

	c, err := scanChallenge(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return c, nil
}

// MarkVerified sets the verified flag. Running it twice is harmless.
func (r *SQLRepository) MarkVerified(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE otp_challenges SET verified = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.RequireAffected(res)
}

func (r *SQLRepository) ListAll(ctx context.Context) ([]models.OtpChallenge, error) {
	return r.list(ctx, selectColumns+` ORDER BY issued_at DESC, id DESC`)
}

func (r *SQLRepository) ListByUser(ctx context.Context, userID string) ([]models.OtpChallenge, error) {
	return r.list(ctx, selectColumns+` WHERE user_id = $1 ORDER BY issued_at DESC, id DESC`, userID)
}

func (r *SQLRepository) list(ctx context.Context, query string, args ...any) ([]models.OtpChallenge, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.OtpChallenge
	for rows.Next() {
		c, err := scanChallenge(rows)
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

func (r *SQLRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM otp_challenges WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.RequireAffected(res)
}

func scanChallenge(s dbx.Scanner) (*models.OtpChallenge, error) {
	var c models.OtpChallenge
	if err := s.Scan(&c.ID, &c.UserID, &c.Code, &c.IssuedAt, &c.Verified); err != nil {
		return nil, err
	}
	c.IssuedAt = c.IssuedAt.UTC()
	return &c, nil
}
