// api/service/project_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	folio_errors "github.com/dev-mohitbeniwal/folio/api/errors"
	logger "github.com/dev-mohitbeniwal/folio/api/logging"
	"github.com/dev-mohitbeniwal/folio/api/model"
	"github.com/dev-mohitbeniwal/folio/api/util"
)

// IProjectDAO is the slice of the project DAO the service needs.
type IProjectDAO interface {
	CreateProject(ctx context.Context, project model.Project) (*model.Project, error)
	UpdateProject(ctx context.Context, project model.Project) (*model.Project, error)
	DeleteProject(ctx context.Context, projectID string) error
	GetProject(ctx context.Context, projectID string) (*model.Project, error)
	ListProjects(ctx context.Context, limit, offset int) ([]*model.Project, error)
}

// IProjectService defines the interface for project operations
type IProjectService interface {
	CreateProject(ctx context.Context, project model.Project) (*model.Project, error)
	UpdateProject(ctx context.Context, project model.Project) (*model.Project, error)
	DeleteProject(ctx context.Context, projectID string) error
	GetProject(ctx context.Context, projectID string) (*model.Project, error)
	ListProjects(ctx context.Context, limit, offset int) ([]*model.Project, error)
}

// ProjectService handles business logic for project operations
type ProjectService struct {
	projectDAO      IProjectDAO
	validationUtil  *util.ValidationUtil
	cacheService    *util.CacheService
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ IProjectService = &ProjectService{}

// NewProjectService creates a new instance of ProjectService
func NewProjectService(projectDAO IProjectDAO, validationUtil *util.ValidationUtil, cacheService *util.CacheService, notificationSvc *util.NotificationService, eventBus *util.EventBus) *ProjectService {
	service := &ProjectService{
		projectDAO:      projectDAO,
		validationUtil:  validationUtil,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	// Set up event subscriptions
	eventBus.Subscribe("project.created", service.handleProjectChanged)
	eventBus.Subscribe("project.updated", service.handleProjectChanged)
	eventBus.Subscribe("project.deleted", service.handleProjectDeleted)

	return service
}

func (s *ProjectService) handleProjectChanged(ctx context.Context, event util.Event) error {
	project := event.Payload.(model.Project)
	logger.Info("Project change event received",
		zap.String("eventType", event.Type),
		zap.String("projectID", project.ID))

	changeType := "created"
	if event.Type == "project.updated" {
		changeType = "updated"
	}
	if err := s.notificationSvc.NotifyProjectChange(ctx, changeType, project); err != nil {
		logger.Warn("Failed to send project notification", zap.Error(err), zap.String("projectID", project.ID))
	}
	return nil
}

func (s *ProjectService) handleProjectDeleted(ctx context.Context, event util.Event) error {
	projectID := event.Payload.(string)
	logger.Info("Project deleted event received", zap.String("projectID", projectID))

	if err := s.notificationSvc.NotifyProjectChange(ctx, "deleted", model.Project{ID: projectID}); err != nil {
		logger.Warn("Failed to send project notification", zap.Error(err), zap.String("projectID", projectID))
	}
	return nil
}

func (s *ProjectService) CreateProject(ctx context.Context, project model.Project) (*model.Project, error) {
	if err := s.validationUtil.ValidateProject(project); err != nil {
		return nil, folio_errors.ErrInvalidProjectData
	}

	created, err := s.projectDAO.CreateProject(ctx, project)
	if err != nil {
		return nil, err
	}

	if err := s.cacheService.SetProject(ctx, *created); err != nil {
		logger.Warn("Failed to cache project", zap.Error(err), zap.String("projectID", created.ID))
	}
	s.eventBus.Publish(ctx, "project.created", *created)

	return created, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, project model.Project) (*model.Project, error) {
	if _, err := uuid.Parse(project.ID); err != nil {
		return nil, folio_errors.ErrInvalidResourceID
	}
	if err := s.validationUtil.ValidateProject(project); err != nil {
		return nil, folio_errors.ErrInvalidProjectData
	}

	updated, err := s.projectDAO.UpdateProject(ctx, project)
	if err != nil {
		return nil, err
	}

	if err := s.cacheService.SetProject(ctx, *updated); err != nil {
		logger.Warn("Failed to cache project", zap.Error(err), zap.String("projectID", updated.ID))
	}
	s.eventBus.Publish(ctx, "project.updated", *updated)

	return updated, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, projectID string) error {
	if _, err := uuid.Parse(projectID); err != nil {
		return folio_errors.ErrInvalidResourceID
	}

	if err := s.projectDAO.DeleteProject(ctx, projectID); err != nil {
		return err
	}

	if err := s.cacheService.DeleteProject(ctx, projectID); err != nil {
		logger.Warn("Failed to evict project from cache", zap.Error(err), zap.String("projectID", projectID))
	}
	s.eventBus.Publish(ctx, "project.deleted", projectID)

	return nil
}

func (s *ProjectService) GetProject(ctx context.Context, projectID string) (*model.Project, error) {
	if _, err := uuid.Parse(projectID); err != nil {
		return nil, folio_errors.ErrInvalidResourceID
	}

	cached, err := s.cacheService.GetProject(ctx, projectID)
	if err != nil {
		logger.Warn("Project cache lookup failed", zap.Error(err), zap.String("projectID", projectID))
	} else if cached != nil {
		return cached, nil
	}

	project, err := s.projectDAO.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if err := s.cacheService.SetProject(ctx, *project); err != nil {
		logger.Warn("Failed to cache project", zap.Error(err), zap.String("projectID", projectID))
	}

	return project, nil
}

func (s *ProjectService) ListProjects(ctx context.Context, limit, offset int) ([]*model.Project, error) {
	return s.projectDAO.ListProjects(ctx, limit, offset)
}
