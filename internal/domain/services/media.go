package services

import (
	"context"

	"omnidesk/internal/domain/models"
)

// GenerateImageRequest asks the image upstream for a picture
type GenerateImageRequest struct {
	UserID    string  `json:"-"`
	ProjectID *string `json:"project_id"`
	Prompt    string  `json:"prompt"`
	Model     string  `json:"model"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
}

// GenerateAudioRequest asks the audio upstream for speech
type GenerateAudioRequest struct {
	UserID    string  `json:"-"`
	ProjectID *string `json:"project_id"`
	Text      string  `json:"text"`
	Voice     string  `json:"voice"`
}

// MediaService defines business logic operations for generated media.
// Generation uploads the upstream bytes to storage; the metadata row is
// best-effort (a failed insert is logged, not surfaced).
type MediaService interface {
	GenerateImage(ctx context.Context, req *GenerateImageRequest) (*models.GeneratedImage, error)
	ListImages(ctx context.Context, userID string) ([]models.GeneratedImage, error)

	GenerateAudio(ctx context.Context, req *GenerateAudioRequest) (*models.GeneratedAudio, error)
	ListAudio(ctx context.Context, userID string) ([]models.GeneratedAudio, error)
}
