// Package router wires the catalog API routes onto a gin engine.
package router

import (
	"net/http"
	"strings"
	"time"

	"gamecatalog/admin/internal/auth"
	"gamecatalog/admin/internal/config"
	"gamecatalog/admin/internal/handler"
	"gamecatalog/admin/internal/media"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// corsMiddleware allows the browser console to call the API. CORS_ORIGINS is a
// comma-separated allow list; empty allows every origin.
func corsMiddleware() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	cfg.AllowHeaders = []string{"Authorization", "Content-Type"}
	cfg.MaxAge = 12 * time.Hour

	var origins []string
	if config.AppConfig != nil {
		for _, o := range strings.Split(config.AppConfig.CORSOrigins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

// New builds the HTTP router. The database and media store must be initialized first.
func New() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), corsMiddleware())
	router.MaxMultipartMemory = media.MaxUploadBytes

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	if media.DefaultStore != nil {
		router.Static(media.PublicPrefix, media.DefaultStore.Dir())
	}

	api := router.Group("/api")
	{
		api.POST("/auth/login", handler.Login)
		api.GET("/auth/me", auth.AuthMiddleware(), handler.GetMe)

		// Reads are public; a token, when present, identifies the caller in logs.
		read := api.Group("")
		read.Use(auth.OptionalAuthMiddleware())
		{
			read.GET("/games", handler.GetGames)
			read.GET("/games/:id", handler.GetGameByID)
			read.GET("/categories", handler.GetCategories)
			read.GET("/languages", handler.GetLanguages)
		}

		write := api.Group("")
		write.Use(auth.AuthMiddleware(), auth.AdminMiddleware())
		{
			write.POST("/games", handler.CreateGame)
			write.PUT("/games/:id", handler.UpdateGame)
			write.DELETE("/games", handler.DeleteGames)
			write.DELETE("/games/:id", handler.DeleteGame)

			write.POST("/games/:id/names", handler.AddGameName)
			write.PUT("/games/:id/names/:nameId", handler.UpdateGameName)
			write.DELETE("/games/:id/names/:nameId", handler.DeleteGameName)

			write.POST("/categories", handler.CreateCategory)
			write.PUT("/categories/:code", handler.UpdateCategory)
			write.DELETE("/categories/:code", handler.DeleteCategory)

			write.GET("/accounts", handler.GetAccounts)
			write.POST("/accounts", handler.CreateAccount)
		}
	}

	router.NoRoute(handler.NoRoute)
	return router
}
