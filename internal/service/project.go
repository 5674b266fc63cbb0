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

// projectService implements the ProjectService interface
type projectService struct {
	projectRepo repositories.ProjectRepository
	txManager   repositories.TransactionManager
	logger      *slog.Logger
}

// NewProjectService creates a new project service
func NewProjectService(
	projectRepo repositories.ProjectRepository,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) services.ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// CreateProject creates a project with its owner membership in one
// transaction so a half-created project can't exist.
func (s *projectService) CreateProject(ctx context.Context, req *services.CreateProjectRequest) (*models.Project, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	project := &models.Project{
		OwnerID:     req.UserID,
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if err := s.projectRepo.Create(txCtx, project); err != nil {
			return err
		}

		member := &models.ProjectMember{
			ProjectID:      project.ID,
			UserID:         req.UserID,
			Role:           models.RoleOwner,
			InviteAccepted: true,
			CreatedAt:      time.Now(),
		}
		return s.projectRepo.AddMember(txCtx, member)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("project created",
		"id", project.ID,
		"name", project.Name,
		"owner_id", req.UserID,
	)

	return project, nil
}

// GetProject retrieves a project the user can see. Non-members get
// ErrNotFound so project existence stays hidden.
func (s *projectService) GetProject(ctx context.Context, id, userID string) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.authorize(ctx, project, userID); err != nil {
		return nil, err
	}

	return project, nil
}

// ListProjects retrieves all projects for a user
func (s *projectService) ListProjects(ctx context.Context, userID string) ([]models.Project, error) {
	return s.projectRepo.ListForUser(ctx, userID)
}

// UpdateProject updates a project's name and description (owner only)
func (s *projectService) UpdateProject(ctx context.Context, id, userID string, req *services.UpdateProjectRequest) (*models.Project, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	project, err := s.GetProject(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if project.OwnerID != userID {
		return nil, fmt.Errorf("project %s: %w", id, domain.ErrForbidden)
	}

	project.Name = strings.TrimSpace(req.Name)
	project.Description = strings.TrimSpace(req.Description)
	project.UpdatedAt = time.Now()

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

// DeleteProject deletes a project (owner only)
func (s *projectService) DeleteProject(ctx context.Context, id, userID string) error {
	project, err := s.GetProject(ctx, id, userID)
	if err != nil {
		return err
	}

	if project.OwnerID != userID {
		return fmt.Errorf("project %s: %w", id, domain.ErrForbidden)
	}

	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("project deleted", "id", id, "owner_id", userID)

	return nil
}

// ListMembers retrieves a project's members (any member may view)
func (s *projectService) ListMembers(ctx context.Context, projectID, userID string) ([]models.ProjectMember, error) {
	if _, err := s.GetProject(ctx, projectID, userID); err != nil {
		return nil, err
	}

	return s.projectRepo.ListMembers(ctx, projectID)
}

// AddMember invites a user to a project (owner only)
func (s *projectService) AddMember(ctx context.Context, projectID, userID string, req *services.AddMemberRequest) (*models.ProjectMember, error) {
	if err := s.validateAddMemberRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	project, err := s.GetProject(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}

	if project.OwnerID != userID {
		return nil, fmt.Errorf("project %s: %w", projectID, domain.ErrForbidden)
	}

	member := &models.ProjectMember{
		ProjectID:      projectID,
		UserID:         req.UserID,
		Role:           req.Role,
		InviteAccepted: false,
		CreatedAt:      time.Now(),
	}

	if err := s.projectRepo.AddMember(ctx, member); err != nil {
		return nil, err
	}

	s.logger.Info("member invited",
		"project_id", projectID,
		"user_id", req.UserID,
		"role", req.Role,
	)

	return member, nil
}

// authorize allows the owner and accepted members; everyone else gets
// ErrNotFound.
func (s *projectService) authorize(ctx context.Context, project *models.Project, userID string) error {
	if project.OwnerID == userID {
		return nil
	}

	member, err := s.projectRepo.GetMember(ctx, project.ID, userID)
	if err != nil {
		return fmt.Errorf("project %s: %w", project.ID, domain.ErrNotFound)
	}
	if !member.InviteAccepted {
		return fmt.Errorf("project %s: %w", project.ID, domain.ErrNotFound)
	}

	return nil
}

func (s *projectService) validateCreateRequest(req *services.CreateProjectRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.Name, validation.Required, validation.Length(1, config.MaxNameLength)),
	)
}

func (s *projectService) validateUpdateRequest(req *services.UpdateProjectRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, config.MaxNameLength)),
	)
}

func (s *projectService) validateAddMemberRequest(req *services.AddMemberRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.Role,
			validation.Required,
			validation.In(models.RoleEditor, models.RoleViewer),
		),
	)
}
