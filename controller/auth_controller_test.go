// api/controller/auth_controller_test.go
package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	testify_mock "github.com/stretchr/testify/mock"

	"github.com/dev-mohitbeniwal/folio/api/controller"
	folio_errors "github.com/dev-mohitbeniwal/folio/api/errors"
	logger "github.com/dev-mohitbeniwal/folio/api/logging"
	"github.com/dev-mohitbeniwal/folio/api/test/mock"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestAuthController(t *testing.T) {
	logger.InitLogger(t.TempDir())
	defer logger.Sync()

	mockAuthService := new(mock.MockAuthService)
	authController := controller.NewAuthController(mockAuthService)
	router := setupRouter()
	api := router.Group("/api")
	authController.RegisterRoutes(api)

	t.Run("Register_Success", func(t *testing.T) {
		mockAuthService.On("Register", testify_mock.Anything, "a@b.com", "secret123").
			Return("signed-token", nil).Once()

		body := strings.NewReader(`{"email":"a@b.com","password":"secret123"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/auth/register", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "signed-token", resp["token"])
	})

	t.Run("Register_DuplicateEmail", func(t *testing.T) {
		mockAuthService.On("Register", testify_mock.Anything, "a@b.com", "secret123").
			Return("", folio_errors.ErrEmailAlreadyRegistered).Once()

		body := strings.NewReader(`{"email":"a@b.com","password":"secret123"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/auth/register", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"Email already registered"}`, w.Body.String())
	})

	t.Run("Register_MalformedBody", func(t *testing.T) {
		body := strings.NewReader(`{"email":"not-an-email"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/auth/register", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Login_Success", func(t *testing.T) {
		mockAuthService.On("Login", testify_mock.Anything, "a@b.com", "secret123").
			Return("signed-token", nil).Once()

		body := strings.NewReader(`{"email":"a@b.com","password":"secret123"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/auth/login", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "signed-token", resp["token"])
	})

	t.Run("Login_InvalidCredentials", func(t *testing.T) {
		mockAuthService.On("Login", testify_mock.Anything, "a@b.com", "wrong").
			Return("", folio_errors.ErrInvalidCredentials).Once()

		body := strings.NewReader(`{"email":"a@b.com","password":"wrong"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/auth/login", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"message":"Invalid credentials"}`, w.Body.String())
	})

	mockAuthService.AssertExpectations(t)
}
