package services

import (
	"context"

	"omnidesk/internal/domain/models"
)

// GeneratePresentationRequest asks the content upstream for slides
type GeneratePresentationRequest struct {
	Topic      string `json:"topic"`
	SlideCount int    `json:"slide_count"`
	Model      string `json:"model"`
}

// GeneratedPresentation is the unsaved generation result
type GeneratedPresentation struct {
	Title      string `json:"title"`
	Topic      string `json:"topic"`
	Markdown   string `json:"markdown"`
	AIProvider string `json:"ai_provider"`
	AIModel    string `json:"ai_model"`
}

// SavePresentationRequest persists a deck
type SavePresentationRequest struct {
	UserID     string `json:"-"`
	Title      string `json:"title"`
	Topic      string `json:"topic"`
	Markdown   string `json:"markdown"`
	Theme      string `json:"theme"`
	AIProvider string `json:"ai_provider"`
	AIModel    string `json:"ai_model"`
}

// PresentationService defines business logic operations for presentations
type PresentationService interface {
	Generate(ctx context.Context, req *GeneratePresentationRequest) (*GeneratedPresentation, error)
	Save(ctx context.Context, req *SavePresentationRequest) (*models.Presentation, error)
	Get(ctx context.Context, id, userID string) (*models.Presentation, error)
	List(ctx context.Context, userID string) ([]models.Presentation, error)
	Delete(ctx context.Context, id, userID string) error
}
