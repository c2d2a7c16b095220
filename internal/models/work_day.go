package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkDay describes one operating day of the week for the organization.
// A weekday with no WorkDay entry is a non-working day.
type WorkDay struct {
	ID        string    `json:"id"`
	DayOfWeek string    `json:"day_of_week"` // Monday .. Sunday
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewWorkDay creates a new WorkDay with a generated UUID
func NewWorkDay(dayOfWeek, startTime, endTime string) *WorkDay {
	now := time.Now()
	return &WorkDay{
		ID:        uuid.New().String(),
		DayOfWeek: dayOfWeek,
		StartTime: startTime,
		EndTime:   endTime,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Matches checks if this entry covers the given weekday
func (w *WorkDay) Matches(weekday time.Weekday) bool {
	return w.DayOfWeek == weekday.String()
}
