// api/errors/skill_errors.go
package errors

import "errors"

var (
	ErrSkillNotFound    = errors.New("skill not found")
	ErrInvalidSkillData = errors.New("invalid skill data")
)
