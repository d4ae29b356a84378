package entity

import (
	"time"

	"gorm.io/gorm"
)

type CustomerSession struct {
	gorm.Model
	TableNumber    string    `gorm:"index;not null" json:"tableNumber"`
	CustomerName   string    `gorm:"not null" json:"customerName"`
	NumberOfPeople int       `gorm:"not null" json:"numberOfPeople"`
	Active         bool      `gorm:"not null;default:true" json:"active"`
	StartTime      time.Time `json:"startTime"`
}

// SessionSummary is what the table-check endpoint exposes and what a
// table-occupied conflict carries back to the client.
type SessionSummary struct {
	CustomerName   string    `json:"customerName"`
	NumberOfPeople int       `json:"numberOfPeople"`
	StartTime      time.Time `json:"startTime"`
}

func (s *CustomerSession) Summary() SessionSummary {
	return SessionSummary{
		CustomerName:   s.CustomerName,
		NumberOfPeople: s.NumberOfPeople,
		StartTime:      s.StartTime,
	}
}
