package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"gamecatalog/admin/internal/auth"
	"gamecatalog/admin/internal/database"
	"gamecatalog/admin/internal/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// region --- DTOs ---

// AccountInput defines the structure for creating an operator account.
type AccountInput struct {
	Username string `json:"username" binding:"required" example:"editor"`
	Password string `json:"password" binding:"required,min=8" example:"password123"`
	Role     string `json:"role" binding:"omitempty,oneof=admin viewer" example:"viewer"`
}

// AccountResponse is an operator account without its credentials.
type AccountResponse struct {
	ID       uint   `json:"id" example:"1"`
	Username string `json:"username" example:"admin"`
	Role     string `json:"role" example:"admin"`
}

func newAccountResponse(a models.Admin) AccountResponse {
	return AccountResponse{ID: a.ID, Username: a.Username, Role: a.Role}
}

// endregion

// region --- Handlers ---

// GetMe godoc
// @Summary      Get the signed-in account
// @Description  Retrieves the account the bearer token was issued to.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope{data=AccountResponse}
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/me [get]
func GetMe(c *gin.Context) {
	adminID := c.GetUint(auth.ContextAdminID)

	var admin models.Admin
	err := database.DB.First(&admin, adminID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusUnauthorized, "Authenticated admin not found")
		return
	}
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, newAccountResponse(admin))
}

// GetAccounts godoc
// @Summary      List accounts
// @Description  Retrieves a zero-based page of operator accounts, optionally filtered by username.
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        q     query     string  false  "Username contains"
// @Param        page  query     int     false  "Page number" default(0)
// @Param        size  query     int     false  "Items per page" default(16)
// @Success      200   {object}  Envelope{data=PaginatedResponse[AccountResponse]}
// @Failure      401   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Router       /accounts [get]
func GetAccounts(c *gin.Context) {
	page, size := pageParams(c.DefaultQuery("page", "0"), c.DefaultQuery("size", strconv.Itoa(DefaultPageSize)))

	query := database.DB.Model(&models.Admin{}).Order("id")
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		query = query.Where(`LOWER(username) LIKE ? ESCAPE '\'`, containsPattern(q))
	}

	result, err := Paginate[models.Admin](query, page, size)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, MapPage(result, newAccountResponse))
}

// CreateAccount godoc
// @Summary      Create an account
// @Description  Creates an operator account. Role defaults to viewer, which may read but not write.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body AccountInput true "Account"
// @Success      201  {object}  Envelope{data=AccountResponse}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Username already exists"
// @Router       /accounts [post]
func CreateAccount(c *gin.Context) {
	var input AccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, badRequest(err.Error()))
		return
	}
	input.Username = strings.TrimSpace(input.Username)
	if input.Username == "" {
		fail(c, badRequest("Username is required"))
		return
	}
	if input.Role == "" {
		input.Role = models.RoleViewer
	}

	var count int64
	if err := database.DB.Model(&models.Admin{}).Where("username = ?", input.Username).Count(&count).Error; err != nil {
		fail(c, err)
		return
	}
	if count > 0 {
		fail(c, conflict("Username already exists"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		fail(c, err)
		return
	}

	account := models.Admin{Username: input.Username, PasswordHash: string(hash), Role: input.Role}
	if err := database.DB.Create(&account).Error; err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusCreated, newAccountResponse(account))
}

// endregion
