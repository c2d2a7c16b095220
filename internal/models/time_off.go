package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// TimeOffType is the kind of approved absence
type TimeOffType string

const (
	TimeOffVacation    TimeOffType = "vacation"
	TimeOffSickLeave   TimeOffType = "sickLeave"
	TimeOffPersonalDay TimeOffType = "personalDay"
)

// TimeOff is a resolved approved absence for an employee over a date range.
// Consumed read-only by the scheduling views; an active time off suppresses
// shift assignment on the covered dates.
type TimeOff struct {
	ID         string      `json:"id"`
	EmployeeID string      `json:"employee_id"`
	StartDate  string      `json:"start_date"` // ISO calendar date
	EndDate    string      `json:"end_date"`   // ISO calendar date, inclusive
	Type       TimeOffType `json:"type"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// NewTimeOff creates a new TimeOff with a generated UUID
func NewTimeOff(employeeID, startDate, endDate string, timeOffType TimeOffType) (*TimeOff, error) {
	if !timeOffType.Valid() {
		return nil, errors.New("invalid time off type")
	}
	if endDate < startDate {
		return nil, errors.New("end date cannot be before start date")
	}

	now := time.Now()
	return &TimeOff{
		ID:         uuid.New().String(),
		EmployeeID: employeeID,
		StartDate:  startDate,
		EndDate:    endDate,
		Type:       timeOffType,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Valid checks the time off type is one of the known kinds
func (t TimeOffType) Valid() bool {
	switch t {
	case TimeOffVacation, TimeOffSickLeave, TimeOffPersonalDay:
		return true
	}
	return false
}

// Covers checks whether the given ISO date falls within the absence range.
// ISO dates compare correctly as strings.
func (t *TimeOff) Covers(date string) bool {
	return t.StartDate <= date && date <= t.EndDate
}
