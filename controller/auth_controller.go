// api/controller/auth_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	folio_errors "github.com/dev-mohitbeniwal/folio/api/errors"
	"github.com/dev-mohitbeniwal/folio/api/model"
	"github.com/dev-mohitbeniwal/folio/api/service"
	"github.com/dev-mohitbeniwal/folio/api/util"
)

type AuthController struct {
	authService service.IAuthService
}

func NewAuthController(authService service.IAuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// RegisterRoutes registers the API routes
func (ac *AuthController) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", ac.Register)
		auth.POST("/login", ac.Login)
	}
}

// Register endpoint
func (ac *AuthController) Register(c *gin.Context) {
	var req model.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid credentials payload", err)
		return
	}

	token, err := ac.authService.Register(c, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, folio_errors.ErrEmailAlreadyRegistered) {
			util.RespondWithMessage(c, http.StatusBadRequest, "Email already registered")
			return
		}
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to register user", err)
		return
	}

	c.JSON(http.StatusCreated, model.TokenResponse{Token: token})
}

// Login endpoint
func (ac *AuthController) Login(c *gin.Context) {
	var req model.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithMessage(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := ac.authService.Login(c, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, folio_errors.ErrInvalidCredentials) {
			util.RespondWithMessage(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to log in", err)
		return
	}

	c.JSON(http.StatusOK, model.TokenResponse{Token: token})
}
