package auth

import (
	"gamecatalog/admin/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// OptionalAuthMiddleware inspects for a token and sets the adminID if present and valid,
// but does not fail if the token is missing or invalid.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := bearerToken(c); ok {
			if adminID, err := jwt.ParseToken(tokenString); err == nil {
				c.Set(ContextAdminID, adminID)
			}
		}
		c.Next()
	}
}
