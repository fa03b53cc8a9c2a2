package models

import "time"

// Category is flat reference data (e.g. "ACTION", "PUZZLE") looked up by code.
type Category struct {
	Code        string `gorm:"primaryKey;size:64"`
	DisplayName string `gorm:"size:255;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
