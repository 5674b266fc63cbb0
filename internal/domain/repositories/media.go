package repositories

import (
	"context"

	"omnidesk/internal/domain/models"
)

// MediaRepository defines data access for generated image and audio rows
type MediaRepository interface {
	CreateImage(ctx context.Context, img *models.GeneratedImage) error
	ListImages(ctx context.Context, userID string) ([]models.GeneratedImage, error)

	CreateAudio(ctx context.Context, audio *models.GeneratedAudio) error
	ListAudio(ctx context.Context, userID string) ([]models.GeneratedAudio, error)
}
