package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gamecatalog/admin/internal/database"
	"gamecatalog/admin/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// region --- DTOs ---

// GameNameInput is the body of an add-name request and one entry of a create-game form.
type GameNameInput struct {
	Language    string `json:"language" binding:"required" example:"en"`
	Value       string `json:"value" binding:"required" example:"Hollow Knight"`
	DefaultName bool   `json:"defaultName" example:"true"`
}

// GameNameUpdateInput is the body of an update-name request. The language of an
// existing name cannot change; when given it must match.
type GameNameUpdateInput struct {
	Language    string `json:"language" example:"en"`
	Value       string `json:"value" binding:"required" example:"Hollow Knight"`
	DefaultName bool   `json:"defaultName" example:"false"`
}

// GameNameResponse is the wire shape of a game name.
type GameNameResponse struct {
	ID          uint   `json:"id" example:"3"`
	Language    string `json:"language" example:"en"`
	Value       string `json:"value" example:"Hollow Knight"`
	DefaultName bool   `json:"defaultName" example:"true"`
}

func newGameNameResponse(n models.GameName) GameNameResponse {
	return GameNameResponse{
		ID:          n.ID,
		Language:    n.Language,
		Value:       n.Value,
		DefaultName: n.DefaultName,
	}
}

// endregion

// region --- Validation ---

func requireLanguage(db *gorm.DB, code string) error {
	var count int64
	if err := db.Model(&models.Language{}).Where("code = ?", code).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return badRequest(fmt.Sprintf("Unknown language %q", code))
	}
	return nil
}

// validateNewNames checks the names submitted with a new game: known languages,
// non-blank text, one name per language and at most one default.
func validateNewNames(db *gorm.DB, names []GameNameInput) error {
	seen := make(map[string]bool, len(names))
	defaults := 0
	for _, n := range names {
		if n.Language == "" {
			return badRequest("Name language is required")
		}
		if strings.TrimSpace(n.Value) == "" {
			return badRequest(fmt.Sprintf("Name for language %q is blank", n.Language))
		}
		if seen[n.Language] {
			return badRequest(fmt.Sprintf("Duplicate name for language %q", n.Language))
		}
		seen[n.Language] = true
		if n.DefaultName {
			defaults++
		}
		if err := requireLanguage(db, n.Language); err != nil {
			return err
		}
	}
	if defaults > 1 {
		return badRequest("Only one name can be the default")
	}
	return nil
}

// clearOtherDefaults un-marks every default name of the game except keepID.
// Callers run it in the same transaction as the write that sets the new default.
func clearOtherDefaults(tx *gorm.DB, gameID, keepID uint) error {
	return tx.Model(&models.GameName{}).
		Where("game_id = ? AND id <> ? AND default_name = ?", gameID, keepID, true).
		Update("default_name", false).Error
}

// endregion

// region --- Handlers ---

// AddGameName godoc
// @Summary      Add a name to a game
// @Description  Adds the name for one language. Marking it default clears the previous default atomically.
// @Tags         game-names
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id     path  int            true  "Game ID"
// @Param        input  body  GameNameInput  true  "Name"
// @Success      201  {object}  Envelope{data=GameNameResponse}
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Failure      409  {object}  ErrorResponse "Language already named"
// @Router       /games/{id}/names [post]
func AddGameName(c *gin.Context) {
	gameID, err := parseID(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	var input GameNameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, badRequest(err.Error()))
		return
	}
	if strings.TrimSpace(input.Value) == "" {
		fail(c, badRequest("Name value is blank"))
		return
	}

	name := models.GameName{GameID: gameID, Language: input.Language, Value: input.Value, DefaultName: input.DefaultName}
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := loadGame(tx, gameID); err != nil {
			return err
		}
		if err := requireLanguage(tx, input.Language); err != nil {
			return err
		}

		var existing int64
		if err := tx.Model(&models.GameName{}).Where("game_id = ? AND language = ?", gameID, input.Language).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return conflict(fmt.Sprintf("Game already has a name for language %q", input.Language))
		}

		if err := tx.Create(&name).Error; err != nil {
			return err
		}
		if name.DefaultName {
			return clearOtherDefaults(tx, gameID, name.ID)
		}
		return nil
	})
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusCreated, newGameNameResponse(name))
}

// UpdateGameName godoc
// @Summary      Update a game name
// @Description  Changes the text and default flag of a name. Marking it default clears the previous default atomically.
// @Tags         game-names
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  int                  true  "Game ID"
// @Param        nameId  path  int                  true  "Name ID"
// @Param        input   body  GameNameUpdateInput  true  "Name"
// @Success      200  {object}  Envelope{data=GameNameResponse}
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      404  {object}  ErrorResponse "Name not found"
// @Router       /games/{id}/names/{nameId} [put]
func UpdateGameName(c *gin.Context) {
	gameID, err := parseID(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	nameID, err := parseID(c.Param("nameId"))
	if err != nil {
		fail(c, err)
		return
	}

	var input GameNameUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, badRequest(err.Error()))
		return
	}
	if strings.TrimSpace(input.Value) == "" {
		fail(c, badRequest("Name value is blank"))
		return
	}

	var name models.GameName
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("id = ? AND game_id = ?", nameID, gameID).First(&name).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Name not found")
		}
		if err != nil {
			return err
		}
		if input.Language != "" && input.Language != name.Language {
			return badRequest("The language of a name cannot be changed")
		}

		if err := tx.Model(&name).Updates(map[string]any{
			"value":        input.Value,
			"default_name": input.DefaultName,
		}).Error; err != nil {
			return err
		}
		if input.DefaultName {
			return clearOtherDefaults(tx, gameID, name.ID)
		}
		return nil
	})
	if err != nil {
		fail(c, err)
		return
	}

	name.Value = input.Value
	name.DefaultName = input.DefaultName
	respond(c, http.StatusOK, newGameNameResponse(name))
}

// DeleteGameName godoc
// @Summary      Delete a game name
// @Description  Removes the name for one language. Deleting the default leaves the game without one.
// @Tags         game-names
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  int  true  "Game ID"
// @Param        nameId  path  int  true  "Name ID"
// @Success      200  {object}  Envelope
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      404  {object}  ErrorResponse "Name not found"
// @Router       /games/{id}/names/{nameId} [delete]
func DeleteGameName(c *gin.Context) {
	gameID, err := parseID(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	nameID, err := parseID(c.Param("nameId"))
	if err != nil {
		fail(c, err)
		return
	}

	result := database.DB.Where("id = ? AND game_id = ?", nameID, gameID).Delete(&models.GameName{})
	if result.Error != nil {
		fail(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		fail(c, notFound("Name not found"))
		return
	}

	respond(c, http.StatusOK, nil)
}

// endregion
