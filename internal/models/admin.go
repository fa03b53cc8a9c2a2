package models

import "gorm.io/gorm"

const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// Admin is an operator account allowed to sign in to the catalog API.
type Admin struct {
	gorm.Model
	Username     string `gorm:"size:255;unique;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:50;not null;default:'admin';index"`
}
