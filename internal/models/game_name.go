package models

// GameName is the display name of a game in one language.
// A game holds at most one name per language and at most one default name.
type GameName struct {
	ID          uint   `gorm:"primaryKey"`
	GameID      uint   `gorm:"not null;uniqueIndex:idx_game_language"`
	Language    string `gorm:"size:16;not null;uniqueIndex:idx_game_language"`
	Value       string `gorm:"size:255;not null"`
	DefaultName bool   `gorm:"not null"`
}
