package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shiftline/shiftline/internal/models"
	"github.com/shiftline/shiftline/internal/repositories"
	"github.com/shiftline/shiftline/internal/schedule"
)

type ShiftTypeService struct {
	shiftTypeRepo *repositories.ShiftTypeRepository
}

func NewShiftTypeService(shiftTypeRepo *repositories.ShiftTypeRepository) *ShiftTypeService {
	return &ShiftTypeService{
		shiftTypeRepo: shiftTypeRepo,
	}
}

// CreateShiftType validates and creates a new shift type
func (s *ShiftTypeService) CreateShiftType(name, startTime, endTime string, minEmployees, maxEmployees int, color string, groupID *string) (*models.ShiftType, error) {
	if err := validateClockTimes(startTime, endTime); err != nil {
		return nil, err
	}
	if groupID != nil {
		if _, err := uuid.Parse(*groupID); err != nil {
			return nil, errors.New("invalid group ID format")
		}
	}

	shiftType, err := models.NewShiftType(name, startTime, endTime, minEmployees, maxEmployees, color, groupID)
	if err != nil {
		return nil, err
	}

	if err := s.shiftTypeRepo.Create(shiftType); err != nil {
		return nil, err
	}

	return shiftType, nil
}

// GetShiftType retrieves a shift type by ID
func (s *ShiftTypeService) GetShiftType(id string) (*models.ShiftType, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.New("invalid shift type ID format")
	}
	return s.shiftTypeRepo.GetByID(id)
}

// ListShiftTypes retrieves the shift types available to a group
func (s *ShiftTypeService) ListShiftTypes(groupID string) ([]*models.ShiftType, error) {
	if _, err := uuid.Parse(groupID); err != nil {
		return nil, errors.New("invalid group ID format")
	}
	return s.shiftTypeRepo.ListByGroup(groupID)
}

// UpdateShiftType validates and updates a shift type
func (s *ShiftTypeService) UpdateShiftType(shiftType *models.ShiftType) error {
	if _, err := uuid.Parse(shiftType.ID); err != nil {
		return errors.New("invalid shift type ID format")
	}
	if err := validateClockTimes(shiftType.StartTime, shiftType.EndTime); err != nil {
		return err
	}
	if err := shiftType.Validate(); err != nil {
		return err
	}

	return s.shiftTypeRepo.Update(shiftType)
}

// DeleteShiftType deletes a shift type
func (s *ShiftTypeService) DeleteShiftType(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.New("invalid shift type ID format")
	}
	return s.shiftTypeRepo.Delete(id)
}

func validateClockTimes(startTime, endTime string) error {
	if _, err := schedule.ParseClock(startTime); err != nil {
		return fmt.Errorf("invalid start time: %v", err)
	}
	if _, err := schedule.ParseClock(endTime); err != nil {
		return fmt.Errorf("invalid end time: %v", err)
	}
	return nil
}
