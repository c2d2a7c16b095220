package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ShiftType is the reference data for one kind of shift: its hours,
// its staffing band and its display color. Shifts reference it by ID.
type ShiftType struct {
	ID           string    `json:"id"`
	GroupID      *string   `json:"group_id"`
	Name         string    `json:"name"`
	StartTime    string    `json:"start_time"` // HH:MM
	EndTime      string    `json:"end_time"`   // HH:MM, <= StartTime means overnight
	MinEmployees int       `json:"min_employees"`
	MaxEmployees int       `json:"max_employees"`
	Color        string    `json:"color"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewShiftType creates a new ShiftType with a generated UUID.
// Returns an error if the staffing band is invalid.
func NewShiftType(name, startTime, endTime string, minEmployees, maxEmployees int, color string, groupID *string) (*ShiftType, error) {
	st := &ShiftType{
		ID:           uuid.New().String(),
		GroupID:      groupID,
		Name:         name,
		StartTime:    startTime,
		EndTime:      endTime,
		MinEmployees: minEmployees,
		MaxEmployees: maxEmployees,
		Color:        color,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := st.Validate(); err != nil {
		return nil, err
	}

	return st, nil
}

// Validate checks the staffing band invariant
func (st *ShiftType) Validate() error {
	if st.Name == "" {
		return errors.New("shift type name is required")
	}
	if st.MinEmployees < 0 {
		return errors.New("minimum employees must be non-negative")
	}
	if st.MinEmployees > st.MaxEmployees {
		return errors.New("minimum employees cannot exceed maximum employees")
	}
	return nil
}
