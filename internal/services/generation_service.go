package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shiftline/shiftline/internal/models"
	"github.com/shiftline/shiftline/internal/repositories"
	"github.com/shiftline/shiftline/pkg/logger"
)

// Generator abstracts the remote generation service for testing
type Generator interface {
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResult, error)
	GenerateRetail(ctx context.Context, req *GenerateRetailRequest) (*GenerateResult, error)
}

// GenerationService runs remote schedule generation and applies the
// outcome. The Warning/Error distinction is load-bearing: Warning still
// applies the returned shifts, Error applies nothing.
type GenerationService struct {
	generator     Generator
	scheduleRepo  *repositories.ScheduleRepository
	shiftTypeRepo *repositories.ShiftTypeRepository
	employeeRepo  *repositories.EmployeeRepository
}

func NewGenerationService(generator Generator, scheduleRepo *repositories.ScheduleRepository, shiftTypeRepo *repositories.ShiftTypeRepository, employeeRepo *repositories.EmployeeRepository) *GenerationService {
	return &GenerationService{
		generator:     generator,
		scheduleRepo:  scheduleRepo,
		shiftTypeRepo: shiftTypeRepo,
		employeeRepo:  employeeRepo,
	}
}

// Generate runs constraint-based generation for a group's period and
// applies the result to the group's schedule
func (s *GenerationService) Generate(ctx context.Context, groupID string, req *GenerateRequest) (*GenerateResult, error) {
	if _, err := uuid.Parse(groupID); err != nil {
		return nil, errors.New("invalid group ID format")
	}
	if err := validateDate(req.StartDate); err != nil {
		return nil, err
	}
	if err := validateDate(req.EndDate); err != nil {
		return nil, err
	}

	result, err := s.generator.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	if result.Status == GenerationError {
		return result, nil
	}

	sched, err := s.scheduleRepo.GetForGroupPeriod(groupID, req.StartDate, req.EndDate, false)
	if err != nil {
		return nil, err
	}
	if sched == nil {
		sched = models.NewSchedule(groupID, req.StartDate, req.EndDate)
		if err := s.scheduleRepo.Create(sched); err != nil {
			return nil, err
		}
	}

	if err := s.applyShifts(sched, result); err != nil {
		return nil, err
	}

	return result, nil
}

// GenerateRetail runs total-hours generation against an existing
// schedule and applies the result
func (s *GenerationService) GenerateRetail(ctx context.Context, req *GenerateRetailRequest) (*GenerateResult, error) {
	if _, err := uuid.Parse(req.ScheduleID); err != nil {
		return nil, errors.New("invalid schedule ID format")
	}

	sched, err := s.scheduleRepo.GetByID(req.ScheduleID)
	if err != nil {
		return nil, err
	}
	if sched == nil {
		return nil, errors.New("schedule not found")
	}

	result, err := s.generator.GenerateRetail(ctx, req)
	if err != nil {
		return nil, err
	}

	if result.Status == GenerationError {
		return result, nil
	}

	if err := s.applyShifts(sched, result); err != nil {
		return nil, err
	}

	return result, nil
}

// applyShifts replaces the schedule's shifts with the generated set and
// clears the confirmation flag so the new schedule needs review
func (s *GenerationService) applyShifts(sched *models.Schedule, result *GenerateResult) error {
	shiftTypes := make(map[string]*models.ShiftType)

	var shifts []*models.Shift
	for _, generated := range result.Shifts {
		shiftType, ok := shiftTypes[generated.ShiftTypeID]
		if !ok {
			var err error
			shiftType, err = s.shiftTypeRepo.GetByID(generated.ShiftTypeID)
			if err != nil {
				return err
			}
			if shiftType == nil {
				logger.Warnf("generator returned unknown shift type %s, skipping", generated.ShiftTypeID)
				continue
			}
			shiftTypes[generated.ShiftTypeID] = shiftType
		}

		shift := models.NewShift(sched.ID, generated.Date, shiftType)
		for _, assignment := range generated.Employees {
			name := assignment.ID
			if employee, err := s.employeeRepo.GetByID(assignment.ID); err == nil && employee != nil {
				name = employee.Name
			}
			shift.Employees = append(shift.Employees, models.ShiftEmployee{
				EmployeeID: assignment.ID,
				Name:       name,
				Note:       assignment.Note,
			})
		}
		shifts = append(shifts, shift)
	}

	if err := s.scheduleRepo.ReplaceShifts(sched.ID, shifts); err != nil {
		return err
	}

	if sched.IsConfirmed {
		if err := s.scheduleRepo.SetConfirmed(sched.ID, false); err != nil {
			return err
		}
	}

	return nil
}
