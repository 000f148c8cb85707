// api/util/notification_service.go

package util

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/folio/api/logging"
	"github.com/dev-mohitbeniwal/folio/api/model"
)

type NotificationService struct {
	// You might want to add dependencies here, such as a message queue client
}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

func (n *NotificationService) NotifyProjectChange(ctx context.Context, changeType string, project model.Project) error {
	switch changeType {
	case "created", "updated":
		logger.Info("NOTIFICATION: Project "+changeType,
			zap.String("projectID", project.ID),
			zap.String("projectName", project.Name))
	case "deleted":
		logger.Info("NOTIFICATION: Project deleted",
			zap.String("projectID", project.ID))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}
	return nil
}

func (n *NotificationService) NotifySkillChange(ctx context.Context, changeType string, skill model.Skill) error {
	switch changeType {
	case "created", "updated":
		logger.Info("NOTIFICATION: Skill "+changeType,
			zap.String("skillID", skill.ID),
			zap.String("skillName", skill.Name))
	case "deleted":
		logger.Info("NOTIFICATION: Skill deleted",
			zap.String("skillID", skill.ID))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}
	return nil
}

func (n *NotificationService) NotifyUserRegistered(ctx context.Context, user model.User) error {
	logger.Info("NOTIFICATION: User registered",
		zap.String("userID", user.ID),
		zap.String("email", user.Email))
	return nil
}
