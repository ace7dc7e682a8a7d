package activity

import (
	"context"

	"github.com/dmitrijs2005/safekey/internal/server/models"
)

type Repository interface {
	Append(ctx context.Context, e *models.ActivityLogEntry) (*models.ActivityLogEntry, error)
	ListAll(ctx context.Context) ([]models.ActivityLogEntry, error)
	ListByUser(ctx context.Context, userID string) ([]models.ActivityLogEntry, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) (int64, error)
}
