package models

import (
	"time"

	"github.com/google/uuid"
)

// Schedule represents one published or draft schedule period for a group
type Schedule struct {
	ID          string    `json:"id"`
	GroupID     string    `json:"group_id"`
	StartDate   string    `json:"start_date"` // ISO calendar date
	EndDate     string    `json:"end_date"`   // ISO calendar date
	Autorenewal bool      `json:"autorenewal"`
	IsConfirmed bool      `json:"is_confirmed"`
	Shifts      []*Shift  `json:"shifts"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewSchedule creates a new Schedule with a generated UUID
func NewSchedule(groupID, startDate, endDate string) *Schedule {
	now := time.Now()
	return &Schedule{
		ID:        uuid.New().String(),
		GroupID:   groupID,
		StartDate: startDate,
		EndDate:   endDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ContainsDate checks if the given ISO date falls within the schedule period.
// ISO dates compare correctly as strings.
func (s *Schedule) ContainsDate(date string) bool {
	return s.StartDate <= date && date <= s.EndDate
}
