// Package activity stores the audit ledger. Entries are inserted and
// deleted, never updated.
package activity

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/safekey/internal/common"
	"github.com/dmitrijs2005/safekey/internal/dbx"
	"github.com/dmitrijs2005/safekey/internal/server/models"
	"github.com/google/uuid"
)

const selectColumns = `SELECT id, user_id, action, target, details, logged_at FROM activity_logs`

type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Append(ctx context.Context, e *models.ActivityLogEntry) (*models.ActivityLogEntry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO activity_logs (id, user_id, action, target, details, logged_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 `

	_, err := r.db.ExecContext(ctx, query, e.ID, e.UserID, e.Action, e.Target, dbx.NullString(e.Details), e.Timestamp)
	if err != nil {
		if dbx.IsForeignKeyViolation(err) {
			return nil, common.NotFound(common.KindUser, e.UserID)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return e, nil
}

func (r *SQLRepository) ListAll(ctx context.Context) ([]models.ActivityLogEntry, error) {
	return r.list(ctx, selectColumns+` ORDER BY logged_at, id`)
}

func (r *SQLRepository) ListByUser(ctx context.Context, userID string) ([]models.ActivityLogEntry, error) {
	return r.list(ctx, selectColumns+` WHERE user_id = $1 ORDER BY logged_at, id`, userID)
}

func (r *SQLRepository) list(ctx context.Context, query string, args ...any) ([]models.ActivityLogEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.ActivityLogEntry
	for rows.Next() {
		var (
			e       models.ActivityLogEntry
			details sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.UserID, &e.Action, &e.Target, &details, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		e.Details = dbx.StringPtr(details)
		e.Timestamp = e.Timestamp.UTC()
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *SQLRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM activity_logs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.RequireAffected(res)
}

// Clear removes every entry and reports how many there were.
func (r *SQLRepository) Clear(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM activity_logs`)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
