// api/controller/controllers.go
package controller

import "github.com/dev-mohitbeniwal/folio/api/service"

type Controllers struct {
	Auth    *AuthController
	Project *ProjectController
	Skill   *SkillController
}

func InitializeControllers(services *service.Services) *Controllers {
	return &Controllers{
		Auth:    NewAuthController(services.Auth),
		Project: NewProjectController(services.Project),
		Skill:   NewSkillController(services.Skill),
	}
}
