package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"gamecatalog/admin/internal/database"
	"gamecatalog/admin/internal/media"
	"gamecatalog/admin/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// region --- DTOs ---

// GameResponse is the wire shape of a game.
type GameResponse struct {
	GameID    uint               `json:"gameId" example:"1"`
	Category  string             `json:"category" example:"ACTION"`
	Image     string             `json:"image,omitempty" example:"/uploads/5f1c.png"`
	GameNames []GameNameResponse `json:"gameNames"`
}

func newGameResponse(game models.Game) GameResponse {
	names := make([]GameNameResponse, 0, len(game.Names))
	for _, n := range game.Names {
		names = append(names, newGameNameResponse(n))
	}
	return GameResponse{
		GameID:    game.ID,
		Category:  game.CategoryCode,
		Image:     game.ImagePath,
		GameNames: names,
	}
}

// PaginatedGameResponse defines the structure for a page of games.
type PaginatedGameResponse = PaginatedResponse[GameResponse]

// DeleteGamesResponse reports how many games a bulk delete removed.
type DeleteGamesResponse struct {
	Deleted int64 `json:"deleted" example:"3"`
}

// endregion

// region --- Helpers ---

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, badRequest("Invalid ID")
	}
	return uint(id), nil
}

// parseNameFields reads gameNames[i].language/value/defaultName form fields until the first gap.
func parseNameFields(c *gin.Context) []GameNameInput {
	var names []GameNameInput
	for i := 0; ; i++ {
		prefix := fmt.Sprintf("gameNames[%d]", i)
		lang, ok := c.GetPostForm(prefix + ".language")
		if !ok {
			break
		}
		isDefault, _ := strconv.ParseBool(c.DefaultPostForm(prefix+".defaultName", "false"))
		names = append(names, GameNameInput{
			Language:    lang,
			Value:       c.PostForm(prefix + ".value"),
			DefaultName: isDefault,
		})
	}
	return names
}

// requireCategory checks that the form carries an existing category code.
func requireCategory(db *gorm.DB, code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return badRequest("Category is required")
	}
	var count int64
	if err := db.Model(&models.Category{}).Where("code = ?", code).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return badRequest(fmt.Sprintf("Unknown category %q", code))
	}
	return nil
}

// saveUploadedImage stores the optional "image" form file and returns its public path.
func saveUploadedImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil
	}
	if err != nil {
		return "", badRequest("Invalid image upload")
	}
	if file.Size > media.MaxUploadBytes {
		return "", badRequest("Image is too large")
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	path, err := media.DefaultStore.Save(f, file.Filename)
	if errors.Is(err, media.ErrUnsupportedImage) {
		return "", badRequest("Unsupported image format")
	}
	return path, err
}

func removeImage(path string) {
	if path == "" {
		return
	}
	if err := media.DefaultStore.Remove(path); err != nil {
		log.Printf("failed to remove image %s: %v", path, err)
	}
}

func loadGame(db *gorm.DB, id uint) (models.Game, error) {
	var game models.Game
	err := db.Preload("Names").First(&game, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return game, notFound("Game not found")
	}
	return game, err
}

// filterGames applies the optional keyword (matched against any name) and category filters.
func filterGames(db *gorm.DB, keyword, category string) *gorm.DB {
	query := db.Model(&models.Game{})
	if category = strings.TrimSpace(category); category != "" {
		query = query.Where("category_code = ?", category)
	}
	if keyword = strings.TrimSpace(keyword); keyword != "" {
		matching := db.Model(&models.GameName{}).
			Select("game_id").
			Where(`LOWER(value) LIKE ? ESCAPE '\'`, containsPattern(keyword))
		query = query.Where("id IN (?)", matching)
	}
	return query.Order("id")
}

// endregion

// region --- Handlers ---

// GetGames godoc
// @Summary      List games
// @Description  Retrieves a zero-based page of games, optionally filtered by keyword and category.
// @Tags         games
// @Produce      json
// @Param        page     query  int     false  "Page index" default(0)
// @Param        size     query  int     false  "Page size" default(16)
// @Param        keyword  query  string  false  "Matches any game name, case-insensitive"
// @Param        category query  string  false  "Category code"
// @Success      200  {object}  Envelope{data=PaginatedGameResponse}
// @Failure      500  {object}  ErrorResponse
// @Router       /games [get]
func GetGames(c *gin.Context) {
	page, size := pageParams(c.DefaultQuery("page", "0"), c.DefaultQuery("size", strconv.Itoa(DefaultPageSize)))

	query := filterGames(database.DB, c.Query("keyword"), c.Query("category"))
	result, err := Paginate[models.Game](query, page, size, "Names")
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, MapPage(result, newGameResponse))
}

// GetGameByID godoc
// @Summary      Get a game
// @Description  Retrieves a single game including all of its names.
// @Tags         games
// @Produce      json
// @Param        id   path      int  true  "Game ID"
// @Success      200  {object}  Envelope{data=GameResponse}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func GetGameByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	game, err := loadGame(database.DB, id)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, newGameResponse(game))
}

// CreateGame godoc
// @Summary      Create a game
// @Description  Creates a game with its category, optional image and initial names in one call.
// @Tags         games
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        category                  formData  string  true   "Category code"
// @Param        image                     formData  file    false  "Cover image"
// @Param        gameNames[0].language     formData  string  false  "Language code of the first name"
// @Param        gameNames[0].value        formData  string  false  "Text of the first name"
// @Param        gameNames[0].defaultName  formData  bool    false  "Whether the first name is the default"
// @Success      201  {object}  Envelope{data=GameResponse}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Router       /games [post]
func CreateGame(c *gin.Context) {
	category := strings.TrimSpace(c.PostForm("category"))
	if err := requireCategory(database.DB, category); err != nil {
		fail(c, err)
		return
	}

	names := parseNameFields(c)
	if err := validateNewNames(database.DB, names); err != nil {
		fail(c, err)
		return
	}

	imagePath, err := saveUploadedImage(c)
	if err != nil {
		fail(c, err)
		return
	}

	game := models.Game{CategoryCode: category, ImagePath: imagePath}
	for _, n := range names {
		game.Names = append(game.Names, models.GameName{
			Language:    n.Language,
			Value:       n.Value,
			DefaultName: n.DefaultName,
		})
	}

	if err := database.DB.Create(&game).Error; err != nil {
		removeImage(imagePath)
		fail(c, err)
		return
	}

	respond(c, http.StatusCreated, newGameResponse(game))
}

// UpdateGame godoc
// @Summary      Update a game
// @Description  Changes a game's category and, when an image is attached, replaces its image. Names are managed through the names endpoints.
// @Tags         games
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id        path      int     true   "Game ID"
// @Param        category  formData  string  true   "Category code"
// @Param        image     formData  file    false  "Replacement cover image"
// @Success      200  {object}  Envelope{data=GameResponse}
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /games/{id} [put]
func UpdateGame(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	game, err := loadGame(database.DB, id)
	if err != nil {
		fail(c, err)
		return
	}

	category := strings.TrimSpace(c.PostForm("category"))
	if err := requireCategory(database.DB, category); err != nil {
		fail(c, err)
		return
	}

	imagePath, err := saveUploadedImage(c)
	if err != nil {
		fail(c, err)
		return
	}

	updates := map[string]any{"category_code": category}
	if imagePath != "" {
		updates["image_path"] = imagePath
	}
	if err := database.DB.Model(&game).Updates(updates).Error; err != nil {
		removeImage(imagePath)
		fail(c, err)
		return
	}

	previousImage := game.ImagePath
	if imagePath != "" && previousImage != imagePath {
		removeImage(previousImage)
	}

	game, err = loadGame(database.DB, id)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, newGameResponse(game))
}

// DeleteGame godoc
// @Summary      Delete a game
// @Description  Deletes a game together with its names and stored image.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200 {object} Envelope{data=DeleteGamesResponse}
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [delete]
func DeleteGame(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	deleted, images, err := deleteGames(database.DB, []uint{id})
	if err != nil {
		fail(c, err)
		return
	}
	if deleted == 0 {
		fail(c, notFound("Game not found"))
		return
	}
	for _, img := range images {
		removeImage(img)
	}

	respond(c, http.StatusOK, DeleteGamesResponse{Deleted: deleted})
}

// DeleteGames godoc
// @Summary      Delete several games
// @Description  Deletes every game whose ID is listed in the JSON array body.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        ids body []int true "Game IDs"
// @Success      200 {object} Envelope{data=DeleteGamesResponse}
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Failure      404 {object} ErrorResponse "No matching games"
// @Router       /games [delete]
func DeleteGames(c *gin.Context) {
	var ids []uint
	if err := c.ShouldBindJSON(&ids); err != nil {
		fail(c, badRequest("Body must be a JSON array of game IDs"))
		return
	}
	if len(ids) == 0 {
		fail(c, badRequest("No game IDs given"))
		return
	}

	deleted, images, err := deleteGames(database.DB, ids)
	if err != nil {
		fail(c, err)
		return
	}
	if deleted == 0 {
		fail(c, notFound("No matching games"))
		return
	}
	for _, img := range images {
		removeImage(img)
	}

	respond(c, http.StatusOK, DeleteGamesResponse{Deleted: deleted})
}

// deleteGames removes the games and their names in one transaction and returns
// the image paths that are no longer referenced.
func deleteGames(db *gorm.DB, ids []uint) (int64, []string, error) {
	var deleted int64
	var images []string
	err := db.Transaction(func(tx *gorm.DB) error {
		var games []models.Game
		if err := tx.Where("id IN ?", ids).Find(&games).Error; err != nil {
			return err
		}
		if len(games) == 0 {
			return nil
		}

		found := make([]uint, 0, len(games))
		for _, g := range games {
			found = append(found, g.ID)
			if g.ImagePath != "" {
				images = append(images, g.ImagePath)
			}
		}

		if err := tx.Where("game_id IN ?", found).Delete(&models.GameName{}).Error; err != nil {
			return err
		}
		result := tx.Where("id IN ?", found).Delete(&models.Game{})
		deleted = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return 0, nil, err
	}
	return deleted, images, nil
}

// endregion
