package categories

import (
	"context"

	"github.com/dmitrijs2005/safekey/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, c *models.Category) (*models.Category, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	ListByUser(ctx context.Context, userID string) ([]models.Category, error)
	ListAll(ctx context.Context) ([]models.Category, error)
	Rename(ctx context.Context, id, name string) (*models.Category, error)
	Delete(ctx context.Context, id string) error
}
