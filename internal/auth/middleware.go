package auth

import (
	"net/http"
	"strings"

	"gamecatalog/admin/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// ContextAdminID is the gin context key holding the authenticated admin's ID.
const ContextAdminID = "adminID"

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"code": status, "message": message})
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(c *gin.Context) (string, bool) {
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) == 2 && parts[0] == "Bearer" && parts[1] != "" {
		return parts[1], true
	}
	return "", false
}

// AuthMiddleware rejects requests without a valid bearer token.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			abort(c, http.StatusUnauthorized, "Authorization header is missing or malformed")
			return
		}

		adminID, err := jwt.ParseToken(tokenString)
		if err != nil {
			abort(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set(ContextAdminID, adminID)
		c.Next()
	}
}
