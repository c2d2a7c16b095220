package services

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shiftline/shiftline/internal/models"
	"github.com/shiftline/shiftline/internal/repositories"
	"github.com/shiftline/shiftline/internal/schedule"
)

// ErrSaveInProgress is returned when a save for the same group is
// already pending; there is no server-side conflict resolution, so the
// second save is refused instead of raced.
var ErrSaveInProgress = errors.New("a save for this group is already in progress")

// ConflictError is a scheduling rule rejection with its reason code
type ConflictError struct {
	Reason  schedule.ConflictReason
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

type ScheduleService struct {
	scheduleRepo  *repositories.ScheduleRepository
	shiftTypeRepo *repositories.ShiftTypeRepository
	employeeRepo  *repositories.EmployeeRepository

	mu     sync.Mutex
	saving map[string]bool // group id -> save pending
}

func NewScheduleService(scheduleRepo *repositories.ScheduleRepository, shiftTypeRepo *repositories.ShiftTypeRepository, employeeRepo *repositories.EmployeeRepository) *ScheduleService {
	return &ScheduleService{
		scheduleRepo:  scheduleRepo,
		shiftTypeRepo: shiftTypeRepo,
		employeeRepo:  employeeRepo,
		saving:        make(map[string]bool),
	}
}

// UpdateScheduleShift is one shift entry of a schedule save request
type UpdateScheduleShift struct {
	ShiftTypeID string                     `json:"shiftTypeId" binding:"required"`
	Date        string                     `json:"date" binding:"required"`
	Employees   []UpdateScheduleAssignment `json:"employees"`
}

// UpdateScheduleAssignment is one employee slot within a saved shift
type UpdateScheduleAssignment struct {
	ID   string `json:"id" binding:"required"`
	Note string `json:"note"`
}

// UpdateScheduleRequest replaces the full shift set of a group's schedule
type UpdateScheduleRequest struct {
	GroupID     string                `json:"groupId" binding:"required"`
	StartDate   string                `json:"startDate" binding:"required"`
	EndDate     string                `json:"endDate" binding:"required"`
	Autorenewal bool                  `json:"autorenewal"`
	IsConfirmed bool                  `json:"isConfirmed"`
	Shifts      []UpdateScheduleShift `json:"shifts"`
}

// GetScheduleInfoWithShifts retrieves the schedule covering the given
// month for a group, with its shifts and their employees loaded
func (s *ScheduleService) GetScheduleInfoWithShifts(groupID string, year, month int, onlyConfirmed bool) (*models.Schedule, error) {
	if _, err := uuid.Parse(groupID); err != nil {
		return nil, errors.New("invalid group ID format")
	}
	startDate, endDate, err := monthRange(year, month)
	if err != nil {
		return nil, err
	}

	sched, err := s.scheduleRepo.GetForGroupPeriod(groupID, startDate, endDate, onlyConfirmed)
	if err != nil {
		return nil, err
	}
	if sched == nil {
		return nil, nil
	}

	shifts, err := s.scheduleRepo.GetShifts(sched.ID)
	if err != nil {
		return nil, err
	}
	sched.Shifts = shifts

	return sched, nil
}

// GetSchedule retrieves a schedule with its shifts by ID
func (s *ScheduleService) GetSchedule(scheduleID string) (*models.Schedule, error) {
	if _, err := uuid.Parse(scheduleID); err != nil {
		return nil, errors.New("invalid schedule ID format")
	}

	sched, err := s.scheduleRepo.GetByID(scheduleID)
	if err != nil || sched == nil {
		return sched, err
	}

	shifts, err := s.scheduleRepo.GetShifts(sched.ID)
	if err != nil {
		return nil, err
	}
	sched.Shifts = shifts

	return sched, nil
}

// UpdateSchedule replaces the shift set of the group's schedule for the
// requested period, creating the schedule if none exists. The incoming
// shifts are re-checked against the assignment rules so an ill-behaved
// client cannot save a double booking.
func (s *ScheduleService) UpdateSchedule(req *UpdateScheduleRequest) (*models.Schedule, error) {
	if _, err := uuid.Parse(req.GroupID); err != nil {
		return nil, errors.New("invalid group ID format")
	}
	if err := validateDate(req.StartDate); err != nil {
		return nil, err
	}
	if err := validateDate(req.EndDate); err != nil {
		return nil, err
	}
	if req.EndDate < req.StartDate {
		return nil, errors.New("end date cannot be before start date")
	}

	if !s.beginSave(req.GroupID) {
		return nil, ErrSaveInProgress
	}
	defer s.endSave(req.GroupID)

	sched, err := s.scheduleRepo.GetForGroupPeriod(req.GroupID, req.StartDate, req.EndDate, false)
	if err != nil {
		return nil, err
	}
	if sched == nil {
		sched = models.NewSchedule(req.GroupID, req.StartDate, req.EndDate)
		sched.Autorenewal = req.Autorenewal
		sched.IsConfirmed = req.IsConfirmed
		if err := s.scheduleRepo.Create(sched); err != nil {
			return nil, err
		}
	} else {
		sched.StartDate = req.StartDate
		sched.EndDate = req.EndDate
		sched.Autorenewal = req.Autorenewal
		sched.IsConfirmed = req.IsConfirmed
		if err := s.scheduleRepo.Update(sched); err != nil {
			return nil, err
		}
	}

	shifts, err := s.buildShifts(sched, req.Shifts)
	if err != nil {
		return nil, err
	}

	if err := s.scheduleRepo.ReplaceShifts(sched.ID, shifts); err != nil {
		return nil, err
	}
	sched.Shifts = shifts

	return sched, nil
}

// buildShifts replays the request entries through the draft reducer,
// enforcing the one-shift-per-(date, type) and
// one-shift-per-employee-per-day rules. Entries are applied in date
// order so an overnight shift is seen before the day it spills into,
// wherever the entry sits in the payload.
func (s *ScheduleService) buildShifts(sched *models.Schedule, entries []UpdateScheduleShift) ([]*models.Shift, error) {
	entries = append([]UpdateScheduleShift{}, entries...)
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })

	shiftTypes := make(map[string]*models.ShiftType)
	draft := &schedule.Draft{ScheduleID: sched.ID}

	for _, entry := range entries {
		if err := validateDate(entry.Date); err != nil {
			return nil, fmt.Errorf("shift on %q: %v", entry.Date, err)
		}
		if !sched.ContainsDate(entry.Date) {
			return nil, fmt.Errorf("shift date %s is outside the schedule period", entry.Date)
		}

		shiftType, ok := shiftTypes[entry.ShiftTypeID]
		if !ok {
			var err error
			shiftType, err = s.shiftTypeRepo.GetByID(entry.ShiftTypeID)
			if err != nil {
				return nil, err
			}
			if shiftType == nil {
				return nil, fmt.Errorf("unknown shift type %s", entry.ShiftTypeID)
			}
			shiftTypes[entry.ShiftTypeID] = shiftType
		}

		next, reason := draft.Apply(schedule.ShiftTypeDropped{Date: entry.Date, ShiftType: shiftType})
		if reason != nil {
			return nil, &ConflictError{
				Reason:  *reason,
				Message: fmt.Sprintf("duplicate shift type %s on %s", shiftType.Name, entry.Date),
			}
		}
		draft = next

		for _, assignment := range entry.Employees {
			employee, err := s.employeeRepo.GetByID(assignment.ID)
			if err != nil {
				return nil, err
			}
			name := assignment.ID
			if employee != nil {
				name = employee.Name
			}

			next, reason := draft.Apply(schedule.EmployeeDropped{
				Date:       entry.Date,
				ShiftType:  shiftType,
				EmployeeID: assignment.ID,
				Name:       name,
				Note:       assignment.Note,
			})
			if reason != nil {
				return nil, &ConflictError{
					Reason:  *reason,
					Message: fmt.Sprintf("employee %s cannot be assigned on %s: %s", assignment.ID, entry.Date, *reason),
				}
			}
			draft = next
		}
	}

	return draft.Shifts, nil
}

// Unconfirm clears the confirmation flag of a schedule
func (s *ScheduleService) Unconfirm(scheduleID string) error {
	if _, err := uuid.Parse(scheduleID); err != nil {
		return errors.New("invalid schedule ID format")
	}
	return s.scheduleRepo.SetConfirmed(scheduleID, false)
}

func (s *ScheduleService) beginSave(groupID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saving[groupID] {
		return false
	}
	s.saving[groupID] = true
	return true
}

func (s *ScheduleService) endSave(groupID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.saving, groupID)
}

func monthRange(year, month int) (string, string, error) {
	if month < 1 || month > 12 {
		return "", "", errors.New("month must be between 1 and 12")
	}
	if year < 1 {
		return "", "", errors.New("invalid year")
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format("2006-01-02"), last.Format("2006-01-02"), nil
}
