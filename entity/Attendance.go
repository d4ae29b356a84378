package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
)

// Attendance is one staff member's presence record for one calendar day.
// The composite unique index is the storage-level guarantee that a second
// check-in for the same (staff, day) can never slip through.
type Attendance struct {
	gorm.Model
	StaffID  uint       `gorm:"not null;uniqueIndex:idx_attendance_staff_date" json:"staffId"`
	Date     time.Time  `gorm:"not null;uniqueIndex:idx_attendance_staff_date" json:"date"`
	CheckIn  time.Time  `gorm:"not null" json:"checkIn"`
	CheckOut *time.Time `json:"checkOut,omitempty"`
	Status   string     `gorm:"not null;default:present" json:"status"`
	Notes    string     `json:"notes,omitempty"`

	Staff Staff `json:"-"`
}
