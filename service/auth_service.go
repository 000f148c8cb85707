// api/service/auth_service.go
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	folio_errors "github.com/dev-mohitbeniwal/folio/api/errors"
	logger "github.com/dev-mohitbeniwal/folio/api/logging"
	"github.com/dev-mohitbeniwal/folio/api/model"
	"github.com/dev-mohitbeniwal/folio/api/util"
)

// IUserDAO is the slice of the user DAO the auth service needs.
type IUserDAO interface {
	CreateUser(ctx context.Context, user model.User) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUser(ctx context.Context, userID string) (*model.User, error)
}

// TokenIssuer issues a signed identity token for a user.
// Satisfied by auth.TokenService.
type TokenIssuer interface {
	Issue(userID, role string) (string, error)
}

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthService handles registration and login
type AuthService struct {
	userDAO         IUserDAO
	tokens          TokenIssuer
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ IAuthService = &AuthService{}

// NewAuthService creates a new instance of AuthService
func NewAuthService(userDAO IUserDAO, tokens TokenIssuer, notificationSvc *util.NotificationService, eventBus *util.EventBus) *AuthService {
	service := &AuthService{
		userDAO:         userDAO,
		tokens:          tokens,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	eventBus.Subscribe("user.registered", service.handleUserRegistered)

	return service
}

func (s *AuthService) handleUserRegistered(ctx context.Context, event util.Event) error {
	user := event.Payload.(model.User)
	logger.Info("User registered event received", zap.String("userID", user.ID))

	if err := s.notificationSvc.NotifyUserRegistered(ctx, user); err != nil {
		logger.Warn("Failed to send registration notification", zap.Error(err), zap.String("userID", user.ID))
	}
	return nil
}

// Register creates an account with role "user" and returns a fresh
// token. A duplicate email is rejected before any write.
func (s *AuthService) Register(ctx context.Context, email, password string) (string, error) {
	_, err := s.userDAO.GetUserByEmail(ctx, email)
	if err == nil {
		return "", folio_errors.ErrEmailAlreadyRegistered
	}
	if !errors.Is(err, folio_errors.ErrUserNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", folio_errors.ErrInternalServer
	}

	user := model.User{
		Email:    email,
		Password: string(hash),
		Role:     model.RoleUser,
	}

	created, err := s.userDAO.CreateUser(ctx, user)
	if err != nil {
		return "", err
	}

	s.eventBus.Publish(ctx, "user.registered", *created)

	return s.tokens.Issue(created.ID, created.Role)
}

// Login verifies credentials and returns a fresh token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userDAO.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, folio_errors.ErrUserNotFound) {
			return "", folio_errors.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", folio_errors.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID, user.Role)
}
