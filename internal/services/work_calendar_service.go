package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/shiftline/shiftline/internal/models"
	"github.com/shiftline/shiftline/internal/repositories"
	"github.com/shiftline/shiftline/internal/schedule"
)

type WorkCalendarService struct {
	workDayRepo *repositories.WorkDayRepository
	holidayRepo *repositories.HolidayRepository
}

func NewWorkCalendarService(workDayRepo *repositories.WorkDayRepository, holidayRepo *repositories.HolidayRepository) *WorkCalendarService {
	return &WorkCalendarService{
		workDayRepo: workDayRepo,
		holidayRepo: holidayRepo,
	}
}

// SetWorkDay configures a day of the week as an operating day
func (s *WorkCalendarService) SetWorkDay(dayOfWeek, startTime, endTime string) (*models.WorkDay, error) {
	if !validWeekday(dayOfWeek) {
		return nil, fmt.Errorf("invalid day of week %q", dayOfWeek)
	}
	if err := validateClockTimes(startTime, endTime); err != nil {
		return nil, err
	}

	workDay := models.NewWorkDay(dayOfWeek, startTime, endTime)
	if err := s.workDayRepo.CreateOrUpdate(workDay); err != nil {
		return nil, err
	}

	return workDay, nil
}

// ClearWorkDay makes a day of the week non-working
func (s *WorkCalendarService) ClearWorkDay(dayOfWeek string) error {
	if !validWeekday(dayOfWeek) {
		return fmt.Errorf("invalid day of week %q", dayOfWeek)
	}
	return s.workDayRepo.DeleteByDay(dayOfWeek)
}

// ListWorkDays retrieves the configured operating days
func (s *WorkCalendarService) ListWorkDays() ([]models.WorkDay, error) {
	return s.workDayRepo.List()
}

// AddHoliday creates an annually recurring holiday
func (s *WorkCalendarService) AddHoliday(name string, month, day int) (*models.Holiday, error) {
	if name == "" {
		return nil, errors.New("holiday name is required")
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return nil, errors.New("invalid holiday date")
	}

	holiday := models.NewHoliday(name, month, day)
	if err := s.holidayRepo.Create(holiday); err != nil {
		return nil, err
	}

	return holiday, nil
}

// ListHolidays retrieves all holidays
func (s *WorkCalendarService) ListHolidays() ([]models.Holiday, error) {
	return s.holidayRepo.List()
}

// DeleteHoliday removes a holiday
func (s *WorkCalendarService) DeleteHoliday(id string) error {
	return s.holidayRepo.Delete(id)
}

// IsWorkingDay decides whether a date counts for coverage: an operating
// weekday that is not a holiday
func (s *WorkCalendarService) IsWorkingDay(date string) (bool, error) {
	workDays, err := s.workDayRepo.List()
	if err != nil {
		return false, err
	}
	holidays, err := s.holidayRepo.List()
	if err != nil {
		return false, err
	}

	return schedule.IsWorkingDay(date, workDays) && !schedule.IsHoliday(date, holidays), nil
}

func validWeekday(dayOfWeek string) bool {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if d.String() == dayOfWeek {
			return true
		}
	}
	return false
}
