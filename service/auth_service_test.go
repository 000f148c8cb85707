// api/service/auth_service_test.go
package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	testify_mock "github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/dev-mohitbeniwal/folio/api/auth"
	folio_errors "github.com/dev-mohitbeniwal/folio/api/errors"
	logger "github.com/dev-mohitbeniwal/folio/api/logging"
	"github.com/dev-mohitbeniwal/folio/api/model"
	"github.com/dev-mohitbeniwal/folio/api/service"
	"github.com/dev-mohitbeniwal/folio/api/test/mock"
	"github.com/dev-mohitbeniwal/folio/api/util"
)

func newAuthService(t *testing.T, userDAO *mock.MockUserDAO) (*service.AuthService, *auth.TokenService) {
	t.Helper()
	tokens := auth.NewTokenService("test-secret", 24*time.Hour)
	return service.NewAuthService(userDAO, tokens, util.NewNotificationService(), util.NewEventBus()), tokens
}

func TestAuthService_Register(t *testing.T) {
	logger.InitLogger(t.TempDir())
	defer logger.Sync()

	t.Run("NewEmail_IssuesToken", func(t *testing.T) {
		userDAO := new(mock.MockUserDAO)
		svc, tokens := newAuthService(t, userDAO)

		userDAO.On("GetUserByEmail", testify_mock.Anything, "a@b.com").
			Return(nil, folio_errors.ErrUserNotFound).Once()
		userDAO.On("CreateUser", testify_mock.Anything, testify_mock.MatchedBy(func(u model.User) bool {
			// The stored password must be a hash, never the plaintext.
			return u.Email == "a@b.com" && u.Role == model.RoleUser && u.Password != "secret123"
		})).Return(&model.User{ID: "user-1", Email: "a@b.com", Role: model.RoleUser}, nil).Once()

		token, err := svc.Register(context.Background(), "a@b.com", "secret123")
		assert.NoError(t, err)

		principal, err := tokens.Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, "user-1", principal.UserID)
		assert.Equal(t, model.RoleUser, principal.Role)

		userDAO.AssertExpectations(t)
	})

	t.Run("DuplicateEmail_Rejected", func(t *testing.T) {
		userDAO := new(mock.MockUserDAO)
		svc, _ := newAuthService(t, userDAO)

		userDAO.On("GetUserByEmail", testify_mock.Anything, "a@b.com").
			Return(&model.User{ID: "user-1", Email: "a@b.com"}, nil).Once()

		token, err := svc.Register(context.Background(), "a@b.com", "secret123")
		assert.Empty(t, token)
		assert.ErrorIs(t, err, folio_errors.ErrEmailAlreadyRegistered)

		userDAO.AssertNotCalled(t, "CreateUser", testify_mock.Anything, testify_mock.Anything)
	})
}

func TestAuthService_Login(t *testing.T) {
	logger.InitLogger(t.TempDir())
	defer logger.Sync()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	storedUser := &model.User{ID: "user-1", Email: "a@b.com", Password: string(hash), Role: model.RoleAdmin}

	t.Run("ValidCredentials_IssuesToken", func(t *testing.T) {
		userDAO := new(mock.MockUserDAO)
		svc, tokens := newAuthService(t, userDAO)

		userDAO.On("GetUserByEmail", testify_mock.Anything, "a@b.com").
			Return(storedUser, nil).Once()

		token, err := svc.Login(context.Background(), "a@b.com", "secret123")
		assert.NoError(t, err)

		principal, err := tokens.Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, principal.Role)
	})

	t.Run("WrongPassword_InvalidCredentials", func(t *testing.T) {
		userDAO := new(mock.MockUserDAO)
		svc, _ := newAuthService(t, userDAO)

		userDAO.On("GetUserByEmail", testify_mock.Anything, "a@b.com").
			Return(storedUser, nil).Once()

		token, err := svc.Login(context.Background(), "a@b.com", "wrong")
		assert.Empty(t, token)
		assert.ErrorIs(t, err, folio_errors.ErrInvalidCredentials)
	})

	t.Run("UnknownEmail_InvalidCredentials", func(t *testing.T) {
		userDAO := new(mock.MockUserDAO)
		svc, _ := newAuthService(t, userDAO)

		userDAO.On("GetUserByEmail", testify_mock.Anything, "nobody@b.com").
			Return(nil, folio_errors.ErrUserNotFound).Once()

		token, err := svc.Login(context.Background(), "nobody@b.com", "secret123")
		assert.Empty(t, token)
		assert.ErrorIs(t, err, folio_errors.ErrInvalidCredentials)
	})
}
