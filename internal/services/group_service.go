package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shiftline/shiftline/internal/models"
	"github.com/shiftline/shiftline/internal/repositories"
)

type GroupService struct {
	groupRepo *repositories.GroupRepository
}

func NewGroupService(groupRepo *repositories.GroupRepository) *GroupService {
	return &GroupService{
		groupRepo: groupRepo,
	}
}

// CreateGroup creates a new group
func (s *GroupService) CreateGroup(name string) (*models.Group, error) {
	if name == "" {
		return nil, errors.New("group name is required")
	}

	group := models.NewGroup(name)
	if err := s.groupRepo.Create(group); err != nil {
		return nil, err
	}

	return group, nil
}

// GetGroup retrieves a group by ID
func (s *GroupService) GetGroup(id string) (*models.Group, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.New("invalid group ID format")
	}
	return s.groupRepo.GetByID(id)
}

// ListGroups retrieves all groups
func (s *GroupService) ListGroups() ([]*models.Group, error) {
	return s.groupRepo.List()
}

// UpdateGroup renames a group
func (s *GroupService) UpdateGroup(group *models.Group) error {
	if _, err := uuid.Parse(group.ID); err != nil {
		return errors.New("invalid group ID format")
	}
	if group.Name == "" {
		return errors.New("group name is required")
	}
	return s.groupRepo.Update(group)
}

// DeleteGroup deletes a group
func (s *GroupService) DeleteGroup(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.New("invalid group ID format")
	}
	return s.groupRepo.Delete(id)
}
