// api/service/services.go
package service

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/dev-mohitbeniwal/folio/api/audit"
	"github.com/dev-mohitbeniwal/folio/api/dao"
	"github.com/dev-mohitbeniwal/folio/api/util"
)

type Services struct {
	Auth    IAuthService
	Project IProjectService
	Skill   ISkillService
}

func InitializeServices(
	driver neo4j.Driver,
	auditService audit.Service,
	tokens TokenIssuer,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) (*Services, error) {
	userDAO := dao.NewUserDAO(driver, auditService)
	projectDAO := dao.NewProjectDAO(driver, auditService)
	skillDAO := dao.NewSkillDAO(driver, auditService)

	services := &Services{
		Auth:    NewAuthService(userDAO, tokens, notificationSvc, eventBus),
		Project: NewProjectService(projectDAO, validationUtil, cacheService, notificationSvc, eventBus),
		Skill:   NewSkillService(skillDAO, validationUtil, cacheService, notificationSvc, eventBus),
	}

	return services, nil
}
