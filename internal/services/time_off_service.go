package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shiftline/shiftline/internal/models"
	"github.com/shiftline/shiftline/internal/repositories"
	"github.com/shiftline/shiftline/internal/schedule"
)

type TimeOffService struct {
	timeOffRepo *repositories.TimeOffRepository
}

func NewTimeOffService(timeOffRepo *repositories.TimeOffRepository) *TimeOffService {
	return &TimeOffService{
		timeOffRepo: timeOffRepo,
	}
}

// CreateTimeOff validates and records an approved absence
func (s *TimeOffService) CreateTimeOff(employeeID, startDate, endDate string, timeOffType models.TimeOffType) (*models.TimeOff, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, errors.New("invalid employee ID format")
	}
	if err := validateDate(startDate); err != nil {
		return nil, err
	}
	if err := validateDate(endDate); err != nil {
		return nil, err
	}

	timeOff, err := models.NewTimeOff(employeeID, startDate, endDate, timeOffType)
	if err != nil {
		return nil, err
	}

	if err := s.timeOffRepo.Create(timeOff); err != nil {
		return nil, err
	}

	return timeOff, nil
}

// ListForEmployee retrieves all absences for an employee
func (s *TimeOffService) ListForEmployee(employeeID string) ([]models.TimeOff, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, errors.New("invalid employee ID format")
	}
	return s.timeOffRepo.ListByEmployee(employeeID)
}

// ListForPeriod retrieves all absences overlapping a date range
func (s *TimeOffService) ListForPeriod(startDate, endDate string) ([]models.TimeOff, error) {
	if err := validateDate(startDate); err != nil {
		return nil, err
	}
	if err := validateDate(endDate); err != nil {
		return nil, err
	}
	return s.timeOffRepo.ListOverlapping(startDate, endDate)
}

// ResolveForDate returns the absence active for an employee on a date, if any
func (s *TimeOffService) ResolveForDate(employeeID, date string) (*models.TimeOff, error) {
	timeOffs, err := s.ListForEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	return schedule.TimeOffOn(employeeID, date, timeOffs), nil
}

// DeleteTimeOff removes an absence record
func (s *TimeOffService) DeleteTimeOff(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.New("invalid time off ID format")
	}
	return s.timeOffRepo.Delete(id)
}

func validateDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return errors.New("invalid date, expected YYYY-MM-DD")
	}
	return nil
}
