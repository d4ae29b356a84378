package entity

import (
	"gorm.io/gorm"
)

// Order statuses. Transition rules live in services/order_transitions.go.
const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	gorm.Model
	TableNumber  string  `gorm:"not null;index" json:"tableNumber"`
	CustomerName string  `gorm:"not null" json:"customerName"`
	Status       string  `gorm:"not null;default:pending;index" json:"status"`
	Total        float64 `gorm:"not null" json:"total"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

// ValidOrderStatus reports whether s belongs to the status enumeration.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}
