package repositories

import (
	"context"

	"omnidesk/internal/domain/models"
)

// PresentationRepository defines data access for presentations
type PresentationRepository interface {
	Create(ctx context.Context, p *models.Presentation) error
	GetByID(ctx context.Context, id, userID string) (*models.Presentation, error)
	List(ctx context.Context, userID string) ([]models.Presentation, error)
	Delete(ctx context.Context, id, userID string) error
}
