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

// ActivityService is the audit ledger. Callers decide what to record;
// nothing is appended automatically.
type ActivityService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	clock       timex.Clock
	logger      logging.Logger
}

func NewActivityService(db *sql.DB, m repomanager.RepositoryManager, c timex.Clock, l logging.Logger) *ActivityService {
	return &ActivityService{
		db:          db,
		repomanager: m,
		clock:       c,
		logger:      l.With("module", "activity_service"),
	}
}

// Append records an action taken by the user, stamped with the current time.
func (s *ActivityService) Append(ctx context.Context, userID, action, target string, details *string) (*models.ActivityLogEntry, error) {
	if err := required("action", action); err != nil {
		return nil, err
	}
	if err := required("target", target); err != nil {
		return nil, err
	}

	var entry *models.ActivityLogEntry
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := requireUser(ctx, s.repomanager, tx, userID); err != nil {
			return err
		}

		var err error
		entry, err = s.repomanager.Activity(tx).Append(ctx, &models.ActivityLogEntry{
			UserID:    userID,
			Action:    action,
			Target:    target,
			Details:   details,
			Timestamp: now(s.clock),
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// ListAll returns every entry, oldest first.
func (s *ActivityService) ListAll(ctx context.Context) ([]models.ActivityLogEntry, error) {
	return s.repomanager.Activity(s.db).ListAll(ctx)
}

// ListForUser returns the user's entries, oldest first.
func (s *ActivityService) ListForUser(ctx context.Context, userID string) ([]models.ActivityLogEntry, error) {
	return s.repomanager.Activity(s.db).ListByUser(ctx, userID)
}

func (s *ActivityService) Delete(ctx context.Context, id string) error {
	if err := s.repomanager.Activity(s.db).Delete(ctx, id); err != nil {
		return common.AsNotFound(err, common.KindActivityLog, id)
	}
	return nil
}

// Clear empties the ledger.
func (s *ActivityService) Clear(ctx context.Context) error {
	n, err := s.repomanager.Activity(s.db).Clear(ctx)
	if err != nil {
		return err
	}
	s.logger.Info(ctx, "activity ledger cleared", "entries_removed", n)
	return nil
}
