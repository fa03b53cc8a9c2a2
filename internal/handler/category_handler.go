package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gamecatalog/admin/internal/database"
	"gamecatalog/admin/internal/models"
	"gamecatalog/admin/internal/slug"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryInput struct {
	DisplayName string `json:"displayName" binding:"required" example:"Action RPG"`
}

type CategoryResponse struct {
	Code        string `json:"code" example:"ACTION_RPG"`
	DisplayName string `json:"displayName" example:"Action RPG"`
}

func newCategoryResponse(category models.Category) CategoryResponse {
	return CategoryResponse{
		Code:        category.Code,
		DisplayName: category.DisplayName,
	}
}

// uniqueCategoryCode derives a code from the display name and suffixes it until it is free.
func uniqueCategoryCode(tx *gorm.DB, displayName string) (string, error) {
	base := slug.Code(displayName)
	code := base
	for i := 2; ; i++ {
		var count int64
		if err := tx.Model(&models.Category{}).Where("code = ?", code).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
		code = fmt.Sprintf("%s_%d", base, i)
	}
}

// CreateCategory godoc
// @Summary      Create a category
// @Description  Creates a category. The code is derived from the display name by the server.
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body CategoryInput true "Category Info"
// @Success      201  {object}  Envelope{data=CategoryResponse}
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Router       /categories [post]
func CreateCategory(c *gin.Context) {
	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, badRequest(err.Error()))
		return
	}
	displayName := strings.TrimSpace(input.DisplayName)
	if displayName == "" {
		fail(c, badRequest("Please enter display name"))
		return
	}

	var category models.Category
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		code, err := uniqueCategoryCode(tx, displayName)
		if err != nil {
			return err
		}
		category = models.Category{Code: code, DisplayName: displayName}
		return tx.Create(&category).Error
	})
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusCreated, newCategoryResponse(category))
}

// GetCategories godoc
// @Summary      List categories
// @Description  Retrieves every category ordered by code.
// @Tags         categories
// @Produce      json
// @Success      200  {object}  Envelope{data=[]CategoryResponse}
// @Router       /categories [get]
func GetCategories(c *gin.Context) {
	var categories []models.Category
	if err := database.DB.Order("code").Find(&categories).Error; err != nil {
		fail(c, err)
		return
	}

	response := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		response = append(response, newCategoryResponse(category))
	}
	respond(c, http.StatusOK, response)
}

// UpdateCategory godoc
// @Summary      Rename a category
// @Description  Updates the display name of a category. Codes never change.
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        code   path      string         true  "Category code"
// @Param        input  body      CategoryInput  true  "New Category Info"
// @Success      200  {object}  Envelope{data=CategoryResponse}
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      404  {object}  ErrorResponse "Category not found"
// @Router       /categories/{code} [put]
func UpdateCategory(c *gin.Context) {
	code := c.Param("code")

	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, badRequest(err.Error()))
		return
	}
	displayName := strings.TrimSpace(input.DisplayName)
	if displayName == "" {
		fail(c, badRequest("Please enter display name"))
		return
	}

	var category models.Category
	err := database.DB.Where("code = ?", code).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fail(c, notFound("Category not found"))
		return
	}
	if err != nil {
		fail(c, err)
		return
	}

	if err := database.DB.Model(&category).Update("display_name", displayName).Error; err != nil {
		fail(c, err)
		return
	}
	category.DisplayName = displayName
	respond(c, http.StatusOK, newCategoryResponse(category))
}

// DeleteCategory godoc
// @Summary      Delete a category
// @Description  Deletes a category that no game refers to.
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        code   path      string  true  "Category code"
// @Success      200  {object}  Envelope
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      404  {object}  ErrorResponse "Category not found"
// @Failure      409  {object}  ErrorResponse "Category in use"
// @Router       /categories/{code} [delete]
func DeleteCategory(c *gin.Context) {
	code := c.Param("code")

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var inUse int64
		if err := tx.Model(&models.Game{}).Where("category_code = ?", code).Count(&inUse).Error; err != nil {
			return err
		}
		if inUse > 0 {
			return conflict(fmt.Sprintf("Category %q is used by %d game(s)", code, inUse))
		}

		result := tx.Where("code = ?", code).Delete(&models.Category{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return notFound("Category not found")
		}
		return nil
	})
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, nil)
}
