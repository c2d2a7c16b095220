package models

import (
	"time"

	"github.com/google/uuid"
)

// Group represents a scheduling group within an organization
type Group struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewGroup creates a new Group with a generated UUID
func NewGroup(name string) *Group {
	now := time.Now()
	return &Group{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
