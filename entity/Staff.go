package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	StaffRoleWaiter  = "waiter"
	StaffRoleChef    = "chef"
	StaffRoleManager = "manager"
	StaffRoleCashier = "cashier"
)

const (
	StaffStatusActive   = "active"
	StaffStatusInactive = "inactive"
)

// Waiter availability during a shift. Only meaningful for role=waiter.
const (
	AvailabilityActive = "active"
	AvailabilityBusy   = "busy"
	AvailabilityBreak  = "break"
	AvailabilityOff    = "off"
)

// Staff is the single personnel aggregate. Waiter-specific fields (Shift,
// Availability, AssignedTables) stay zero-valued for kitchen and desk roles;
// the /waiters endpoints are views over role=waiter rows.
type Staff struct {
	gorm.Model
	Name     string    `gorm:"not null" json:"name"`
	Role     string    `gorm:"not null" json:"role"`
	Email    string    `gorm:"not null" json:"email"` // unique among live rows via partial index
	Phone    string    `gorm:"not null" json:"phone"`
	Status   string    `gorm:"not null;default:active" json:"status"`
	JoinDate time.Time `json:"joinDate"`

	Shift          string   `json:"shift,omitempty"`
	Availability   string   `gorm:"default:active" json:"availability,omitempty"`
	AssignedTables []string `gorm:"serializer:json" json:"assignedTables,omitempty"`
}

func (Staff) TableName() string { return "staff" }

func ValidStaffRole(r string) bool {
	switch r {
	case StaffRoleWaiter, StaffRoleChef, StaffRoleManager, StaffRoleCashier:
		return true
	}
	return false
}

func ValidAvailability(a string) bool {
	switch a {
	case AvailabilityActive, AvailabilityBusy, AvailabilityBreak, AvailabilityOff:
		return true
	}
	return false
}
