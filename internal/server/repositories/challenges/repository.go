package challenges

import (
	"context"

	"github.com/dmitrijs2005/safekey/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, c *models.OtpChallenge) (*models.OtpChallenge, error)
	Latest(ctx context.Context, userID string) (*models.OtpChallenge, error)
	MarkVerified(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]models.OtpChallenge, error)
	ListByUser(ctx context.Context, userID string) ([]models.OtpChallenge, error)
	Delete(ctx context.Context, id string) error
}
