package auth

import (
	"net/http"

	"gamecatalog/admin/internal/database"
	"gamecatalog/admin/internal/models"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware creates a gin middleware to check for admin role.
// It must be used AFTER the standard AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID, exists := c.Get(ContextAdminID)
		if !exists {
			// This should not happen if AuthMiddleware is used before it
			abort(c, http.StatusUnauthorized, "Admin not authenticated")
			return
		}

		var admin models.Admin
		if err := database.DB.First(&admin, adminID.(uint)).Error; err != nil {
			abort(c, http.StatusUnauthorized, "Authenticated admin not found")
			return
		}

		if admin.Role != models.RoleAdmin {
			abort(c, http.StatusForbidden, "Admin access required")
			return
		}

		c.Next()
	}
}
