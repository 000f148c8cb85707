// api/errors/common_errors.go
package errors

import "errors"

var (
	ErrDatabaseOperation = errors.New("database operation failed")
	ErrInternalServer    = errors.New("internal server error")

	// ErrInvalidResourceID tags a malformed resource identifier so
	// controllers can branch on the error value instead of matching
	// driver error strings.
	ErrInvalidResourceID = errors.New("invalid resource id")
)
