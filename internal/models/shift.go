package models

import (
	"time"

	"github.com/google/uuid"
)

// ShiftEmployee is one employee slot on a shift, in display order
type ShiftEmployee struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Note       string `json:"note,omitempty"`
}

// Shift is a concrete staffing unit: one shift type on one anchor date.
// At most one Shift exists per (date, shift type) pair; the times and
// color are denormalized from the shift type for rendering.
type Shift struct {
	ID            string          `json:"id"`
	ScheduleID    string          `json:"schedule_id"`
	ShiftTypeID   string          `json:"shift_type_id"`
	ShiftTypeName string          `json:"shift_type_name"`
	Date          string          `json:"date"` // ISO anchor date
	StartTime     string          `json:"start_time"`
	EndTime       string          `json:"end_time"`
	Color         string          `json:"color"`
	Employees     []ShiftEmployee `json:"employees"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// NewShift creates an empty Shift for the given date from shift type defaults
func NewShift(scheduleID, date string, shiftType *ShiftType) *Shift {
	now := time.Now()
	return &Shift{
		ID:            uuid.New().String(),
		ScheduleID:    scheduleID,
		ShiftTypeID:   shiftType.ID,
		ShiftTypeName: shiftType.Name,
		Date:          date,
		StartTime:     shiftType.StartTime,
		EndTime:       shiftType.EndTime,
		Color:         shiftType.Color,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// HasEmployee checks whether the employee is already on this shift
func (s *Shift) HasEmployee(employeeID string) bool {
	for _, e := range s.Employees {
		if e.EmployeeID == employeeID {
			return true
		}
	}
	return false
}
