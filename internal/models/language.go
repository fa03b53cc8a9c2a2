package models

// Language is read-only reference data seeded at startup.
type Language struct {
	Code string `gorm:"primaryKey;size:16"`
	Name string `gorm:"size:100;not null"`
}
