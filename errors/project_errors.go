// api/errors/project_errors.go
package errors

import "errors"

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrInvalidProjectData = errors.New("invalid project data")
)
