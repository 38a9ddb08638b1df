package v1

import (
	"net/http"

	"github.com/anishchandragiri369/studio-sub000/internal/api/dto"
	"github.com/anishchandragiri369/studio-sub000/internal/auth"
	ierr "github.com/anishchandragiri369/studio-sub000/internal/errors"
	"github.com/anishchandragiri369/studio-sub000/internal/logger"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles signup and login against the hosted auth backend
type AuthHandler struct {
	provider auth.Provider
	log      *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(provider auth.Provider, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		provider: provider,
		log:      log,
	}
}

// @Summary Sign up
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.SignUpRequest true "Sign up request"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request body").
			Mark(ierr.ErrValidation))
		return
	}
	if err := req.Validate(); err != nil {
		c.Error(err)
		return
	}

	resp, err := h.provider.SignUp(c.Request.Context(), auth.AuthRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.log.Errorw("failed to sign up", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token:  resp.AuthToken,
		UserID: resp.UserID,
	})
}

// @Summary Log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login request"
// @Success 200 {object} dto.AuthResponse
// @Failure 403 {object} ierr.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request body").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.provider.Login(c.Request.Context(), auth.AuthRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token:  resp.AuthToken,
		UserID: resp.UserID,
	})
}
