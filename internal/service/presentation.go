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

const (
	defaultSlideCount = 8
	maxSlideCount     = 20

	// slideDivider separates slides in the generated markdown
	slideDivider = "\n---\n"

	presentationSystemPrompt = "You are a presentation writer. Produce a slide deck in " +
		"Markdown. Separate slides with a line containing only '---'. The first slide " +
		"is a title slide with a single '#' heading. Each following slide starts with " +
		"a '##' heading and contains at most five bullet points. Output only the " +
		"Markdown, no commentary."
)

// presentationService implements the PresentationService interface
type presentationService struct {
	presentationRepo repositories.PresentationRepository
	generator        PromptCompleter
	provider         string
	defaultModel     string
	logger           *slog.Logger
}

// NewPresentationService creates a new presentation service. provider
// names the upstream behind generator for persistence ("openai").
func NewPresentationService(
	presentationRepo repositories.PresentationRepository,
	generator PromptCompleter,
	provider string,
	defaultModel string,
	logger *slog.Logger,
) services.PresentationService {
	return &presentationService{
		presentationRepo: presentationRepo,
		generator:        generator,
		provider:         provider,
		defaultModel:     defaultModel,
		logger:           logger,
	}
}

// Generate asks the content upstream for a slide deck on the topic.
// The result is not persisted; the client saves it separately.
func (s *presentationService) Generate(ctx context.Context, req *services.GeneratePresentationRequest) (*services.GeneratedPresentation, error) {
	if err := s.validateGenerateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	slides := req.SlideCount
	if slides <= 0 {
		slides = defaultSlideCount
	}

	model := req.Model
	if model == "" {
		model = s.defaultModel
	}

	prompt := fmt.Sprintf("Write a %d-slide presentation about: %s", slides, strings.TrimSpace(req.Topic))

	markdown, err := s.generator.CompletePrompt(ctx, model, presentationSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	s.logger.Info("presentation generated",
		"topic", req.Topic,
		"model", model,
		"slides_requested", slides,
	)

	return &services.GeneratedPresentation{
		Title:      strings.TrimSpace(req.Topic),
		Topic:      strings.TrimSpace(req.Topic),
		Markdown:   markdown,
		AIProvider: s.provider,
		AIModel:    model,
	}, nil
}

// Save persists a deck. SlideCount is derived from the markdown.
func (s *presentationService) Save(ctx context.Context, req *services.SavePresentationRequest) (*models.Presentation, error) {
	if err := s.validateSaveRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	presentation := &models.Presentation{
		UserID:     req.UserID,
		Title:      strings.TrimSpace(req.Title),
		Topic:      strings.TrimSpace(req.Topic),
		Markdown:   req.Markdown,
		Theme:      req.Theme,
		SlideCount: countSlides(req.Markdown),
		AIProvider: req.AIProvider,
		AIModel:    req.AIModel,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := s.presentationRepo.Create(ctx, presentation); err != nil {
		return nil, err
	}

	s.logger.Info("presentation saved",
		"id", presentation.ID,
		"title", presentation.Title,
		"slide_count", presentation.SlideCount,
	)

	return presentation, nil
}

// Get retrieves a presentation by ID
func (s *presentationService) Get(ctx context.Context, id, userID string) (*models.Presentation, error) {
	return s.presentationRepo.GetByID(ctx, id, userID)
}

// List retrieves all presentations for a user
func (s *presentationService) List(ctx context.Context, userID string) ([]models.Presentation, error) {
	return s.presentationRepo.List(ctx, userID)
}

// Delete removes a presentation
func (s *presentationService) Delete(ctx context.Context, id, userID string) error {
	return s.presentationRepo.Delete(ctx, id, userID)
}

// countSlides counts slides as divider-separated sections with content
func countSlides(markdown string) int {
	count := 0
	for _, part := range strings.Split("\n"+markdown+"\n", slideDivider) {
		if strings.TrimSpace(part) != "" {
			count++
		}
	}
	return count
}

func (s *presentationService) validateGenerateRequest(req *services.GeneratePresentationRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Topic, validation.Required, validation.Length(1, config.MaxPromptLength)),
		validation.Field(&req.SlideCount, validation.Min(0), validation.Max(maxSlideCount)),
	)
}

func (s *presentationService) validateSaveRequest(req *services.SavePresentationRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.Title, validation.Required, validation.Length(1, config.MaxNameLength)),
		validation.Field(&req.Topic, validation.Length(0, config.MaxPromptLength)),
		validation.Field(&req.Markdown, validation.Required),
		validation.Field(&req.Theme, validation.Required),
	)
}
