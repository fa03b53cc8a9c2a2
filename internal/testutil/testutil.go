// Package testutil provides shared test helpers for the catalog server and its clients.
package testutil

import (
	"fmt"
	"log/slog"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"gamecatalog/admin/internal/config"
	"gamecatalog/admin/internal/database"
	"gamecatalog/admin/internal/media"
	"gamecatalog/admin/internal/models"
	"gamecatalog/admin/internal/router"
	"gamecatalog/admin/pkg/jwt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	AdminUsername = "admin"
	AdminPassword = "admin-password"
	JWTSecret     = "test-secret"

	// Languages seeded into every test database.
	Languages = "en,vi,fr,ja"
)

// TestLogger creates a test logger that only outputs warnings and errors.
func TestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}

// UseTestDB points database.DB at a fresh migrated sqlite file with the test
// languages seeded. The previous handle is restored when the test ends.
func UseTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open("sqlite", filepath.Join(t.TempDir(), "catalog-test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	if err := database.SeedLanguages(db, database.ParseLanguages(Languages)); err != nil {
		t.Fatalf("seed languages: %v", err)
	}

	prev := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = prev
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

var accountSeq atomic.Int64

// CatalogServer is a running catalog API backed by a throwaway database.
type CatalogServer struct {
	URL string // base URL of the API, ending in /api
	DB  *gorm.DB
}

// NewCatalogServer starts the full router on an httptest server with a seeded
// admin account (AdminUsername / AdminPassword).
func NewCatalogServer(t *testing.T) *CatalogServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	prevCfg := config.AppConfig
	config.AppConfig = &config.Config{JWTSecret: JWTSecret}
	prevStore := media.DefaultStore
	media.DefaultStore = media.NewStore(t.TempDir())
	t.Cleanup(func() {
		config.AppConfig = prevCfg
		media.DefaultStore = prevStore
	})

	db := UseTestDB(t)
	if err := database.SeedAdmin(db, AdminUsername, AdminPassword); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	srv := httptest.NewServer(router.New())
	t.Cleanup(srv.Close)

	return &CatalogServer{URL: srv.URL + "/api", DB: db}
}

// SeedCategory inserts a category directly.
func (s *CatalogServer) SeedCategory(t *testing.T, code, displayName string) {
	t.Helper()
	if err := s.DB.Create(&models.Category{Code: code, DisplayName: displayName}).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
}

// SeedGame inserts a game with names directly and returns it.
func (s *CatalogServer) SeedGame(t *testing.T, category string, names ...models.GameName) models.Game {
	t.Helper()
	game := models.Game{CategoryCode: category, Names: names}
	if err := s.DB.Create(&game).Error; err != nil {
		t.Fatalf("seed game: %v", err)
	}
	return game
}

// Token issues a bearer token for a new account with the given role.
func (s *CatalogServer) Token(t *testing.T, role string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("unused"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	admin := models.Admin{Username: fmt.Sprintf("%s-%d", role, accountSeq.Add(1)), PasswordHash: string(hash), Role: role}
	if err := s.DB.Create(&admin).Error; err != nil {
		t.Fatalf("create account: %v", err)
	}
	token, err := jwt.GenerateToken(admin.ID)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}
