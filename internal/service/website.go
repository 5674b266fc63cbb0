package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"omnidesk/internal/config"
	"omnidesk/internal/domain"
	"omnidesk/internal/domain/models"
	"omnidesk/internal/domain/repositories"
	"omnidesk/internal/domain/services"
)

const websiteSystemPrompt = "You are a web developer. Produce a complete, valid, " +
	"self-contained HTML5 document for the requested site: inline CSS in a <style> " +
	"tag, no external assets, no JavaScript frameworks. Output only the HTML " +
	"document, no commentary and no code fences."

// websiteService implements the WebsiteService interface
type websiteService struct {
	websiteRepo repositories.WebsiteRepository
	generator   PromptCompleter
	provider    string
	model       string
	logger      *slog.Logger
}

// NewWebsiteService creates a new website service
func NewWebsiteService(
	websiteRepo repositories.WebsiteRepository,
	generator PromptCompleter,
	provider string,
	model string,
	logger *slog.Logger,
) services.WebsiteService {
	return &websiteService{
		websiteRepo: websiteRepo,
		generator:   generator,
		provider:    provider,
		model:       model,
		logger:      logger,
	}
}

// Generate asks the content upstream for a single-page site. The result
// is not persisted; the client saves it separately.
func (s *websiteService) Generate(ctx context.Context, req *services.GenerateWebsiteRequest) (*services.GeneratedWebsite, error) {
	if err := s.validateGenerateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	raw, err := s.generator.CompletePrompt(ctx, s.model, websiteSystemPrompt, strings.TrimSpace(req.Prompt))
	if err != nil {
		return nil, err
	}

	html := stripCodeFence(raw)

	s.logger.Info("website generated",
		"model", s.model,
		"html_bytes", len(html),
	)

	return &services.GeneratedWebsite{
		HTML:       html,
		AIProvider: s.provider,
		AIModel:    s.model,
	}, nil
}

// Save persists a generated site as unpublished
func (s *websiteService) Save(ctx context.Context, req *services.SaveWebsiteRequest) (*models.Website, error) {
	if err := s.validateSaveRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	website := &models.Website{
		UserID:    req.UserID,
		Name:      strings.TrimSpace(req.Name),
		Prompt:    strings.TrimSpace(req.Prompt),
		HTML:      req.HTML,
		Published: false,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.websiteRepo.Create(ctx, website); err != nil {
		return nil, err
	}

	s.logger.Info("website saved", "id", website.ID, "name", website.Name)

	return website, nil
}

// Get retrieves a website by ID
func (s *websiteService) Get(ctx context.Context, id, userID string) (*models.Website, error) {
	return s.websiteRepo.GetByID(ctx, id, userID)
}

// List retrieves all websites for a user
func (s *websiteService) List(ctx context.Context, userID string) ([]models.Website, error) {
	return s.websiteRepo.List(ctx, userID)
}

// Publish marks a website as publicly served
func (s *websiteService) Publish(ctx context.Context, id, userID string) (*models.Website, error) {
	website, err := s.websiteRepo.SetPublished(ctx, id, userID, true)
	if err != nil {
		return nil, err
	}

	s.logger.Info("website published", "id", website.ID, "name", website.Name)

	return website, nil
}

// stripCodeFence unwraps ```html ... ``` when the model fences its
// output despite the instruction not to.
func stripCodeFence(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")

	return strings.TrimSpace(trimmed)
}

func (s *websiteService) validateGenerateRequest(req *services.GenerateWebsiteRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Prompt, validation.Required, validation.Length(1, config.MaxPromptLength)),
	)
}

func (s *websiteService) validateSaveRequest(req *services.SaveWebsiteRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.Name, validation.Required, validation.Length(1, config.MaxNameLength)),
		validation.Field(&req.Prompt, validation.Length(0, config.MaxPromptLength)),
		validation.Field(&req.HTML, validation.Required),
	)
}
