package handler

import (
	"net/http"

	"gamecatalog/admin/internal/database"
	"gamecatalog/admin/internal/models"

	"github.com/gin-gonic/gin"
)

type LanguageResponse struct {
	Code string `json:"code" example:"en"`
	Name string `json:"name" example:"English"`
}

// GetLanguages godoc
// @Summary      List languages
// @Description  Retrieves the languages game names can be written in.
// @Tags         languages
// @Produce      json
// @Success      200  {object}  Envelope{data=[]LanguageResponse}
// @Router       /languages [get]
func GetLanguages(c *gin.Context) {
	var languages []models.Language
	if err := database.DB.Order("code").Find(&languages).Error; err != nil {
		fail(c, err)
		return
	}

	response := make([]LanguageResponse, 0, len(languages))
	for _, l := range languages {
		response = append(response, LanguageResponse{Code: l.Code, Name: l.Name})
	}
	respond(c, http.StatusOK, response)
}
