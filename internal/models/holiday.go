package models

import (
	"time"

	"github.com/google/uuid"
)

// Holiday is an annually recurring closed date; any date matching
// (month, day) is a holiday regardless of year.
type Holiday struct {
	ID          string    `json:"id"`
	HolidayName string    `json:"holiday_name"`
	Month       int       `json:"month"` // 1-12
	Day         int       `json:"day"`   // 1-31
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewHoliday creates a new Holiday with a generated UUID
func NewHoliday(name string, month, day int) *Holiday {
	now := time.Now()
	return &Holiday{
		ID:          uuid.New().String(),
		HolidayName: name,
		Month:       month,
		Day:         day,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Matches checks if the given date falls on this holiday
func (h *Holiday) Matches(t time.Time) bool {
	return int(t.Month()) == h.Month && t.Day() == h.Day
}
