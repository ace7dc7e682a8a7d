package settings

import (
	"context"

	"github.com/dmitrijs2005/safekey/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, s *models.SecuritySettings) (*models.SecuritySettings, error)
	GetByID(ctx context.Context, id string) (*models.SecuritySettings, error)
	GetByUser(ctx context.Context, userID string) (*models.SecuritySettings, error)
	Update(ctx context.Context, s *models.SecuritySettings) (*models.SecuritySettings, error)
}
