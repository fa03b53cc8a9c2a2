package main

import (
	"fmt"
	"log"

	"gamecatalog/admin/internal/config"
	"gamecatalog/admin/internal/database"
	"gamecatalog/admin/internal/media"
	"gamecatalog/admin/internal/router"

	// Swagger imports
	_ "gamecatalog/admin/docs" // This is important for swag to find the generated docs
)

func init() {
	config.LoadConfig()
}

// @title           Game Catalog API
// @version         1.0
// @description     Catalog of games, their multilingual names and categories.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.AppConfig

	// Connect to the database
	database.Connect(cfg.DBDriver, cfg.DatabaseURL)

	if err := database.SeedLanguages(database.DB, database.ParseLanguages(cfg.Languages)); err != nil {
		log.Fatalf("Failed to seed languages: %v", err)
	}
	if err := database.SeedAdmin(database.DB, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	if err := media.Init(cfg.UploadDir); err != nil {
		log.Fatalf("Failed to prepare upload directory: %v", err)
	}

	r := router.New()

	addr := ":" + cfg.Port
	fmt.Printf("Server is running on %s\n", addr)
	fmt.Printf("Swagger UI is available at http://localhost%s/swagger/index.html\n", addr)
	log.Fatal(r.Run(addr))
}
