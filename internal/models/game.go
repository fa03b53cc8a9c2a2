package models

import "time"

// Game represents a catalog entry. Display names live in GameName rows owned by the game.
type Game struct {
	ID           uint   `gorm:"primaryKey"`
	CategoryCode string `gorm:"size:64;not null;index"`
	ImagePath    string `gorm:"size:512"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Category Category   `gorm:"foreignKey:CategoryCode;references:Code"`
	Names    []GameName `gorm:"foreignKey:GameID"`
}

// DefaultName returns the name flagged as default, if any.
func (g Game) DefaultName() (GameName, bool) {
	for _, n := range g.Names {
		if n.DefaultName {
			return n, true
		}
	}
	return GameName{}, false
}
