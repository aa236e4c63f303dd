package api

import (
	"errors"
	"net/http"

	reqdto "delacream-park/internal/handler/dto/request"
	resdto "delacream-park/internal/handler/dto/response"
	"delacream-park/internal/handler/httperr"
	"delacream-park/internal/handler/middleware"
	"delacream-park/internal/pkg/errs"
	"delacream-park/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
}

func NewAuthHandler(authUseCase usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

// @Summary Admin login
// @Description Login with the administrative username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindingError(c, err)
		return
	}

	token, admin, err := h.authUseCase.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidCredentials) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid credentials", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    admin,
	})
}

// @Summary Verify token
// @Description Confirm the bearer token is valid and return the admin identity
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.Envelope
// @Failure 401 {object} httperr.Response
// @Router /auth/verify [post]
func (h *AuthHandler) Verify(c *gin.Context) {
	admin, ok := middleware.GetAdmin(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized,
			errs.New("admin identity missing from context"), "Access token required", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.OK(gin.H{"user": admin}))
}

// @Summary Admin logout
// @Description Stateless logout; the client discards its token
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.Envelope
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Token invalidation happens client-side; nothing is revoked here.
	c.JSON(http.StatusOK, resdto.Msg("Logged out successfully", nil))
}
