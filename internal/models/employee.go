package models

import (
	"time"

	"github.com/google/uuid"
)

// Employee represents a schedulable staff member
type Employee struct {
	ID        string    `json:"id"`
	GroupID   *string   `json:"group_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewEmployee creates a new Employee with a generated UUID
func NewEmployee(name, email string, groupID *string) *Employee {
	now := time.Now()
	return &Employee{
		ID:        uuid.New().String(),
		GroupID:   groupID,
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
