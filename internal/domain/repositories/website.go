package repositories

import (
	"context"

	"omnidesk/internal/domain/models"
)

// WebsiteRepository defines data access for generated websites
type WebsiteRepository interface {
	Create(ctx context.Context, site *models.Website) error
	GetByID(ctx context.Context, id, userID string) (*models.Website, error)
	List(ctx context.Context, userID string) ([]models.Website, error)
	SetPublished(ctx context.Context, id, userID string, published bool) (*models.Website, error)
}
