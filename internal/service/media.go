package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"omnidesk/internal/config"
	"omnidesk/internal/domain"
	"omnidesk/internal/domain/models"
	"omnidesk/internal/domain/repositories"
	"omnidesk/internal/domain/services"
	"omnidesk/internal/upstream/storage"
)

// MediaGenerator produces raw media bytes. Satisfied by the
// Pollinations client.
type MediaGenerator interface {
	GenerateImage(ctx context.Context, prompt, model string, width, height int) ([]byte, string, error)
	GenerateAudio(ctx context.Context, text, voice string) ([]byte, string, error)
}

const (
	defaultImageSize = 1024
	maxImageSize     = 2048
)

// mediaService implements the MediaService interface
type mediaService struct {
	mediaRepo repositories.MediaRepository
	generator MediaGenerator
	store     storage.ObjectStore
	logger    *slog.Logger
}

// NewMediaService creates a new media service
func NewMediaService(
	mediaRepo repositories.MediaRepository,
	generator MediaGenerator,
	store storage.ObjectStore,
	logger *slog.Logger,
) services.MediaService {
	return &mediaService{
		mediaRepo: mediaRepo,
		generator: generator,
		store:     store,
		logger:    logger,
	}
}

// GenerateImage renders the prompt upstream and uploads the result to
// storage. The metadata row is best-effort: if the insert fails the
// uploaded image is still returned, so the user never loses a
// generation to a bookkeeping error.
func (s *mediaService) GenerateImage(ctx context.Context, req *services.GenerateImageRequest) (*models.GeneratedImage, error) {
	if err := s.validateImageRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	width := req.Width
	if width <= 0 {
		width = defaultImageSize
	}
	height := req.Height
	if height <= 0 {
		height = defaultImageSize
	}

	data, contentType, err := s.generator.GenerateImage(ctx, req.Prompt, req.Model, width, height)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("images/%s/%s%s", req.UserID, uuid.NewString(), extensionFor(contentType))

	publicURL, err := s.store.Upload(ctx, path, data, contentType)
	if err != nil {
		return nil, err
	}

	img := &models.GeneratedImage{
		UserID:    req.UserID,
		ProjectID: req.ProjectID,
		Prompt:    req.Prompt,
		Model:     req.Model,
		Width:     width,
		Height:    height,
		URL:       publicURL,
		CreatedAt: time.Now(),
	}

	if err := s.mediaRepo.CreateImage(ctx, img); err != nil {
		s.logger.Error("failed to record generated image",
			"user_id", req.UserID,
			"url", publicURL,
			"error", err,
		)
	}

	s.logger.Info("image generated",
		"user_id", req.UserID,
		"model", req.Model,
		"bytes", len(data),
	)

	return img, nil
}

// ListImages retrieves a user's generated images
func (s *mediaService) ListImages(ctx context.Context, userID string) ([]models.GeneratedImage, error) {
	return s.mediaRepo.ListImages(ctx, userID)
}

// GenerateAudio speaks the text upstream and uploads the result to
// storage. Metadata is best-effort, same as images.
func (s *mediaService) GenerateAudio(ctx context.Context, req *services.GenerateAudioRequest) (*models.GeneratedAudio, error) {
	if err := s.validateAudioRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	data, contentType, err := s.generator.GenerateAudio(ctx, req.Text, req.Voice)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("audio/%s/%s%s", req.UserID, uuid.NewString(), extensionFor(contentType))

	publicURL, err := s.store.Upload(ctx, path, data, contentType)
	if err != nil {
		return nil, err
	}

	audio := &models.GeneratedAudio{
		UserID:    req.UserID,
		ProjectID: req.ProjectID,
		Text:      req.Text,
		Voice:     req.Voice,
		URL:       publicURL,
		CreatedAt: time.Now(),
	}

	if err := s.mediaRepo.CreateAudio(ctx, audio); err != nil {
		s.logger.Error("failed to record generated audio",
			"user_id", req.UserID,
			"url", publicURL,
			"error", err,
		)
	}

	return audio, nil
}

// ListAudio retrieves a user's generated audio clips
func (s *mediaService) ListAudio(ctx context.Context, userID string) ([]models.GeneratedAudio, error) {
	return s.mediaRepo.ListAudio(ctx, userID)
}

// extensionFor maps a content type to a file extension for object names
func extensionFor(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/jpeg"):
		return ".jpg"
	case strings.HasPrefix(contentType, "image/png"):
		return ".png"
	case strings.HasPrefix(contentType, "image/webp"):
		return ".webp"
	case strings.HasPrefix(contentType, "audio/mpeg"):
		return ".mp3"
	case strings.HasPrefix(contentType, "audio/wav"), strings.HasPrefix(contentType, "audio/x-wav"):
		return ".wav"
	default:
		return ""
	}
}

func (s *mediaService) validateImageRequest(req *services.GenerateImageRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.Prompt, validation.Required, validation.Length(1, config.MaxPromptLength)),
		validation.Field(&req.Width, validation.Min(0), validation.Max(maxImageSize)),
		validation.Field(&req.Height, validation.Min(0), validation.Max(maxImageSize)),
	)
}

func (s *mediaService) validateAudioRequest(req *services.GenerateAudioRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.Text, validation.Required, validation.Length(1, config.MaxPromptLength)),
	)
}
