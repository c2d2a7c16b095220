package schedule

import (
	"time"

	"github.com/shiftline/shiftline/internal/models"
)

const dateLayout = "2006-01-02"

// DateData is one calendar cell of the visible month
type DateData struct {
	Date  string `json:"date"`  // ISO calendar date
	Label string `json:"label"` // e.g. "Mon 2"
}

// MonthDays enumerates the calendar cells for the given month
func MonthDays(year int, month time.Month) []DateData {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	var days []DateData
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		days = append(days, DateData{
			Date:  d.Format(dateLayout),
			Label: d.Format("Mon 2"),
		})
	}
	return days
}

// IsHoliday checks the date's (month, day) against the holiday list,
// year-independent.
func IsHoliday(date string, holidays []models.Holiday) bool {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return false
	}

	for i := range holidays {
		if holidays[i].Matches(t) {
			return true
		}
	}
	return false
}

// IsWorkingDay checks whether the date's weekday has a WorkDay entry.
// A weekday with no entry is always non-working.
func IsWorkingDay(date string, workDays []models.WorkDay) bool {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return false
	}

	for i := range workDays {
		if workDays[i].Matches(t.Weekday()) {
			return true
		}
	}
	return false
}

// WorkingDays filters the month's cells down to coverage-relevant days:
// a configured operating weekday that is not a holiday.
func WorkingDays(days []DateData, workDays []models.WorkDay, holidays []models.Holiday) []DateData {
	var working []DateData
	for _, d := range days {
		if IsWorkingDay(d.Date, workDays) && !IsHoliday(d.Date, holidays) {
			working = append(working, d)
		}
	}
	return working
}

// PreviousDate returns the ISO date of the calendar day before the given one
func PreviousDate(date string) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(dateLayout)
}

// NextDate returns the ISO date of the calendar day after the given one
func NextDate(date string) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, 1).Format(dateLayout)
}
