package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shiftline/shiftline/internal/models"
	"github.com/shiftline/shiftline/internal/repositories"
	"github.com/shiftline/shiftline/internal/schedule"
)

// CoverageService assembles the inputs for the coverage evaluator from
// the stored configuration and the group's schedule for the month
type CoverageService struct {
	scheduleService *ScheduleService
	shiftTypeRepo   *repositories.ShiftTypeRepository
	workDayRepo     *repositories.WorkDayRepository
	holidayRepo     *repositories.HolidayRepository
}

func NewCoverageService(scheduleService *ScheduleService, shiftTypeRepo *repositories.ShiftTypeRepository, workDayRepo *repositories.WorkDayRepository, holidayRepo *repositories.HolidayRepository) *CoverageService {
	return &CoverageService{
		scheduleService: scheduleService,
		shiftTypeRepo:   shiftTypeRepo,
		workDayRepo:     workDayRepo,
		holidayRepo:     holidayRepo,
	}
}

// CheckMonth evaluates staffing coverage for every working day of the
// month against each shift type's staffing band
func (s *CoverageService) CheckMonth(groupID string, year, month int) (*schedule.CoverageReport, error) {
	if _, err := uuid.Parse(groupID); err != nil {
		return nil, errors.New("invalid group ID format")
	}
	if month < 1 || month > 12 {
		return nil, errors.New("month must be between 1 and 12")
	}

	shiftTypes, err := s.shiftTypeRepo.ListByGroup(groupID)
	if err != nil {
		return nil, err
	}
	workDays, err := s.workDayRepo.List()
	if err != nil {
		return nil, err
	}
	holidays, err := s.holidayRepo.List()
	if err != nil {
		return nil, err
	}

	var shifts []*models.Shift
	sched, err := s.scheduleService.GetScheduleInfoWithShifts(groupID, year, month, false)
	if err != nil {
		return nil, err
	}
	if sched != nil {
		shifts = sched.Shifts
	}

	days := schedule.MonthDays(year, time.Month(month))
	return schedule.EvaluateCoverage(shiftTypes, shifts, days, holidays, workDays), nil
}
