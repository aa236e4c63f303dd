package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"delacream-park/internal/handler/httperr"
	"delacream-park/internal/pkg/errs"
	"delacream-park/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxAdminIDKey  = "admin_id"
	ctxUsernameKey = "admin_username"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized,
				errs.New("missing bearer token"), "Access token required", nil)
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized,
				err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxAdminIDKey, claims.AdminID)
		c.Set(ctxUsernameKey, claims.Username)
		c.Next()
	}
}

// GetAdmin returns the authenticated admin identity set by RequireAuth.
func GetAdmin(c *gin.Context) (usecase.AdminAccount, bool) {
	rawID, exists := c.Get(ctxAdminIDKey)
	if !exists {
		return usecase.AdminAccount{}, false
	}
	id, ok := rawID.(int)
	if !ok {
		return usecase.AdminAccount{}, false
	}

	username, _ := c.Get(ctxUsernameKey)
	name, _ := username.(string)

	return usecase.AdminAccount{ID: id, Username: name}, true
}
