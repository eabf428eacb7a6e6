package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/i-am-Shekinah/eventify/internal/domain"
	"github.com/i-am-Shekinah/eventify/internal/repository"
	"github.com/i-am-Shekinah/eventify/pkg/auth"
)

const userKey = "currentUser"

// Authenticate resolves the bearer token to a stored user and attaches it
// to the request context. Identity is recomputed on every request; any
// verification failure, including a token whose email no longer resolves,
// aborts with 401.
func Authenticate(tokens *auth.Manager, users *repository.UserRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		claims, err := tokens.Verify(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		u, err := users.ByEmail(c.Request.Context(), claims.Email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Set(userKey, u)
		c.Next()
	}
}

// CurrentUser returns the user set by Authenticate, nil on public routes.
func CurrentUser(c *gin.Context) *domain.User {
	v, _ := c.Get(userKey)
	u, _ := v.(*domain.User)
	return u
}
