// api/util/validation_util.go

package util

import (
	"fmt"

	"github.com/dev-mohitbeniwal/folio/api/model"
)

type ValidationUtil struct{}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{}
}

func (v *ValidationUtil) ValidateProject(project model.Project) error {
	if project.Name == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	// Add more validation rules as needed
	return nil
}

func (v *ValidationUtil) ValidateSkill(skill model.Skill) error {
	if skill.Name == "" {
		return fmt.Errorf("skill name cannot be empty")
	}
	if skill.Level == "" {
		return fmt.Errorf("skill level cannot be empty")
	}
	// Add more validation rules as needed
	return nil
}

func (v *ValidationUtil) ValidateUser(user model.User) error {
	if user.Email == "" {
		return fmt.Errorf("user email cannot be empty")
	}
	if user.Role != model.RoleUser && user.Role != model.RoleAdmin {
		return fmt.Errorf("user role must be either 'user' or 'admin'")
	}
	return nil
}
