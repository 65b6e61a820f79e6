package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"plansvc/internal/shared/logger"
	"plansvc/internal/shared/utils"
)

// TokenChecker reports why a request must be denied, or "" to let it through.
type TokenChecker interface {
	Check(ctx context.Context, authHeader string) string
}

type AuthMiddleware struct {
	checker TokenChecker
	logger  logger.Interface
}

func NewAuthMiddleware(checker TokenChecker, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		checker: checker,
		logger:  logger,
	}
}

// RequireAuthority rejects any request the token authority does not vouch for.
// The denial reason becomes the error message of the 401 body.
func (m *AuthMiddleware) RequireAuthority() gin.HandlerFunc {
	return func(c *gin.Context) {
		reason := m.checker.Check(c.Request.Context(), c.GetHeader("Authorization"))
		if reason != "" {
			m.logger.Warnw("request rejected", "reason", reason, "path", c.Request.URL.Path)
			utils.ErrorResponse(c, http.StatusUnauthorized, reason)
			c.Abort()
			return
		}
		c.Next()
	}
}
