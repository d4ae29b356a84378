package entity

import (
	"gorm.io/gorm"
)

// Admin is a dashboard login. Password holds a bcrypt hash, never plaintext.
type Admin struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null;default:admin" json:"role"`
}
