// api/errors/auth_errors.go
package errors

import "errors"

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("jwt expired")

	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
)
