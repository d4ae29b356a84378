package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Description string  `gorm:"not null" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Category    string  `gorm:"not null;index" json:"category"`
	Image       string  `json:"image"`
	IsAvailable bool    `gorm:"not null;default:true" json:"isAvailable"`
}
