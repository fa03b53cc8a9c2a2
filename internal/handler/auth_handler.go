package handler

import (
	"errors"
	"net/http"

	"gamecatalog/admin/internal/database"
	"gamecatalog/admin/internal/models"
	"gamecatalog/admin/pkg/jwt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// LoginInput defines the structure for admin login.
type LoginInput struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// TokenResponse carries a freshly issued bearer token.
type TokenResponse struct {
	Token string `json:"token" example:"eyJhbGciOi..."`
	Role  string `json:"role" example:"admin"`
}

// Login godoc
// @Summary      Log in an admin
// @Description  Authenticates an admin with username and password, and returns a bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200  {object}  Envelope{data=TokenResponse}
// @Failure      400  {object}  ErrorResponse "Invalid input"
// @Failure      401  {object}  ErrorResponse "Invalid credentials"
// @Failure      500  {object}  ErrorResponse "Internal server error"
// @Router       /auth/login [post]
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, badRequest(err.Error()))
		return
	}

	var admin models.Admin
	err := database.DB.Where("username = ?", input.Username).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		fail(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := jwt.GenerateToken(admin.ID)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, TokenResponse{Token: token, Role: admin.Role})
}
