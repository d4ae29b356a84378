package entity

import (
	"gorm.io/gorm"
)

// OrderItem is a snapshot of the menu item at order time. Name and price are
// copied by value, so later menu edits or deletions never touch placed orders.
type OrderItem struct {
	gorm.Model
	OrderID  uint    `gorm:"not null;index" json:"-"`
	Name     string  `gorm:"not null" json:"name"`
	Price    float64 `gorm:"not null" json:"price"`
	Quantity int     `gorm:"not null" json:"quantity"`
}
