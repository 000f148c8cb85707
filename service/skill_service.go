// api/service/skill_service.go
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

// ISkillDAO is the slice of the skill DAO the service needs.
type ISkillDAO interface {
	CreateSkill(ctx context.Context, skill model.Skill) (*model.Skill, error)
	UpdateSkill(ctx context.Context, skill model.Skill) (*model.Skill, error)
	DeleteSkill(ctx context.Context, skillID string) error
	GetSkill(ctx context.Context, skillID string) (*model.Skill, error)
	ListSkills(ctx context.Context, limit, offset int) ([]*model.Skill, error)
}

// ISkillService defines the interface for skill operations
type ISkillService interface {
	CreateSkill(ctx context.Context, skill model.Skill) (*model.Skill, error)
	UpdateSkill(ctx context.Context, skill model.Skill) (*model.Skill, error)
	DeleteSkill(ctx context.Context, skillID string) error
	GetSkill(ctx context.Context, skillID string) (*model.Skill, error)
	ListSkills(ctx context.Context, limit, offset int) ([]*model.Skill, error)
}

// SkillService handles business logic for skill operations
type SkillService struct {
	skillDAO        ISkillDAO
	validationUtil  *util.ValidationUtil
	cacheService    *util.CacheService
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ ISkillService = &SkillService{}

// NewSkillService creates a new instance of SkillService
func NewSkillService(skillDAO ISkillDAO, validationUtil *util.ValidationUtil, cacheService *util.CacheService, notificationSvc *util.NotificationService, eventBus *util.EventBus) *SkillService {
	service := &SkillService{
		skillDAO:        skillDAO,
		validationUtil:  validationUtil,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	// Set up event subscriptions
	eventBus.Subscribe("skill.created", service.handleSkillChanged)
	eventBus.Subscribe("skill.updated", service.handleSkillChanged)
	eventBus.Subscribe("skill.deleted", service.handleSkillDeleted)

	return service
}

func (s *SkillService) handleSkillChanged(ctx context.Context, event util.Event) error {
	skill := event.Payload.(model.Skill)
	logger.Info("Skill change event received",
		zap.String("eventType", event.Type),
		zap.String("skillID", skill.ID))

	changeType := "created"
	if event.Type == "skill.updated" {
		changeType = "updated"
	}
	if err := s.notificationSvc.NotifySkillChange(ctx, changeType, skill); err != nil {
		logger.Warn("Failed to send skill notification", zap.Error(err), zap.String("skillID", skill.ID))
	}
	return nil
}

func (s *SkillService) handleSkillDeleted(ctx context.Context, event util.Event) error {
	skillID := event.Payload.(string)
	logger.Info("Skill deleted event received", zap.String("skillID", skillID))

	if err := s.notificationSvc.NotifySkillChange(ctx, "deleted", model.Skill{ID: skillID}); err != nil {
		logger.Warn("Failed to send skill notification", zap.Error(err), zap.String("skillID", skillID))
	}
	return nil
}

func (s *SkillService) CreateSkill(ctx context.Context, skill model.Skill) (*model.Skill, error) {
	if err := s.validationUtil.ValidateSkill(skill); err != nil {
		return nil, folio_errors.ErrInvalidSkillData
	}

	created, err := s.skillDAO.CreateSkill(ctx, skill)
	if err != nil {
		return nil, err
	}

	if err := s.cacheService.SetSkill(ctx, *created); err != nil {
		logger.Warn("Failed to cache skill", zap.Error(err), zap.String("skillID", created.ID))
	}
	s.eventBus.Publish(ctx, "skill.created", *created)

	return created, nil
}

func (s *SkillService) UpdateSkill(ctx context.Context, skill model.Skill) (*model.Skill, error) {
	if _, err := uuid.Parse(skill.ID); err != nil {
		return nil, folio_errors.ErrInvalidResourceID
	}
	if err := s.validationUtil.ValidateSkill(skill); err != nil {
		return nil, folio_errors.ErrInvalidSkillData
	}

	updated, err := s.skillDAO.UpdateSkill(ctx, skill)
	if err != nil {
		return nil, err
	}

	if err := s.cacheService.SetSkill(ctx, *updated); err != nil {
		logger.Warn("Failed to cache skill", zap.Error(err), zap.String("skillID", updated.ID))
	}
	s.eventBus.Publish(ctx, "skill.updated", *updated)

	return updated, nil
}

func (s *SkillService) DeleteSkill(ctx context.Context, skillID string) error {
	if _, err := uuid.Parse(skillID); err != nil {
		return folio_errors.ErrInvalidResourceID
	}

	if err := s.skillDAO.DeleteSkill(ctx, skillID); err != nil {
		return err
	}

	if err := s.cacheService.DeleteSkill(ctx, skillID); err != nil {
		logger.Warn("Failed to evict skill from cache", zap.Error(err), zap.String("skillID", skillID))
	}
	s.eventBus.Publish(ctx, "skill.deleted", skillID)

	return nil
}

func (s *SkillService) GetSkill(ctx context.Context, skillID string) (*model.Skill, error) {
	if _, err := uuid.Parse(skillID); err != nil {
		return nil, folio_errors.ErrInvalidResourceID
	}

	cached, err := s.cacheService.GetSkill(ctx, skillID)
	if err != nil {
		logger.Warn("Skill cache lookup failed", zap.Error(err), zap.String("skillID", skillID))
	} else if cached != nil {
		return cached, nil
	}

	skill, err := s.skillDAO.GetSkill(ctx, skillID)
	if err != nil {
		return nil, err
	}

	if err := s.cacheService.SetSkill(ctx, *skill); err != nil {
		logger.Warn("Failed to cache skill", zap.Error(err), zap.String("skillID", skillID))
	}

	return skill, nil
}

func (s *SkillService) ListSkills(ctx context.Context, limit, offset int) ([]*model.Skill, error) {
	return s.skillDAO.ListSkills(ctx, limit, offset)
}
