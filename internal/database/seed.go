package database

import (
	"errors"
	"fmt"
	"strings"

	"gamecatalog/admin/internal/models"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ParseLanguages parses a comma-separated list of "code" or "code=Name" entries.
// Entries without a name get the English display name of the code when it is a
// known language tag, and the upper-cased code otherwise.
func ParseLanguages(list string) []models.Language {
	var out []models.Language
	seen := make(map[string]bool)
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		code, name, _ := strings.Cut(part, "=")
		code = strings.ToLower(strings.TrimSpace(code))
		name = strings.TrimSpace(name)
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		if name == "" {
			name = languageName(code)
		}
		out = append(out, models.Language{Code: code, Name: name})
	}
	return out
}

func languageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return strings.ToUpper(code)
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return strings.ToUpper(code)
}

// SeedLanguages upserts the reference languages.
func SeedLanguages(db *gorm.DB, langs []models.Language) error {
	if len(langs) == 0 {
		return nil
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"name"}),
	}).Create(&langs).Error
}

// SeedAdmin creates the bootstrap admin account when it does not exist yet.
func SeedAdmin(db *gorm.DB, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	var existing models.Admin
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("look up admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	admin := models.Admin{Username: username, PasswordHash: string(hash), Role: models.RoleAdmin}
	return db.Create(&admin).Error
}
