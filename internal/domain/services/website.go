package services

import (
	"context"

	"omnidesk/internal/domain/models"
)

// GenerateWebsiteRequest asks the website upstream for a page
type GenerateWebsiteRequest struct {
	Prompt string `json:"prompt"`
}

// GeneratedWebsite is the unsaved generation result
type GeneratedWebsite struct {
	HTML       string `json:"html"`
	AIProvider string `json:"ai_provider"`
	AIModel    string `json:"ai_model"`
}

// SaveWebsiteRequest persists a generated site
type SaveWebsiteRequest struct {
	UserID string `json:"-"`
	Name   string `json:"name"`
	Prompt string `json:"prompt"`
	HTML   string `json:"html"`
}

// WebsiteService defines business logic operations for websites
type WebsiteService interface {
	Generate(ctx context.Context, req *GenerateWebsiteRequest) (*GeneratedWebsite, error)
	Save(ctx context.Context, req *SaveWebsiteRequest) (*models.Website, error)
	Get(ctx context.Context, id, userID string) (*models.Website, error)
	List(ctx context.Context, userID string) ([]models.Website, error)
	Publish(ctx context.Context, id, userID string) (*models.Website, error)
}
