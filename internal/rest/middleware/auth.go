package middleware

import (
	"strings"

	"github.com/anishchandragiri369/studio-sub000/internal/auth"
	ierr "github.com/anishchandragiri369/studio-sub000/internal/errors"
	"github.com/anishchandragiri369/studio-sub000/internal/logger"
	"github.com/anishchandragiri369/studio-sub000/internal/types"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token via the configured auth
// provider and stores the caller's identity in the request context.
func AuthMiddleware(provider auth.Provider, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header {
			c.Error(ierr.NewError("missing bearer token").
				WithHint("Authorization header with a bearer token is required").
				Mark(ierr.ErrPermissionDenied))
			c.Abort()
			return
		}

		claims, err := provider.ValidateToken(c.Request.Context(), token)
		if err != nil {
			log.Debugw("token validation failed", "error", err)
			c.Error(err)
			c.Abort()
			return
		}

		ctx := types.SetUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
