package schedule

import (
	"testing"
	"time"

	"github.com/shiftline/shiftline/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateCoverage(t *testing.T) {
	weekdays := weekWorkDays("Monday", "Tuesday", "Wednesday", "Thursday", "Friday")
	march := MonthDays(2024, time.March) // 21 weekdays

	t.Run("Understaffed day is recorded", func(t *testing.T) {
		st := testShiftType("Morning", "08:00", "16:00", 2, 4)
		shifts := []*models.Shift{testShift(st, "2024-03-05", "emp-1")}

		report := EvaluateCoverage([]*models.ShiftType{st}, shifts, march, nil, weekdays)

		require.Len(t, report.ShiftTypes, 1)
		result := report.ShiftTypes[0]
		assert.Equal(t, 21, result.WorkingDays)

		// every other weekday has 0 assigned, 2024-03-05 has 1
		require.Len(t, result.Understaffed, 21)
		for _, issue := range result.Understaffed {
			assert.Equal(t, 2, issue.Required)
			if issue.Date == "2024-03-05" {
				assert.Equal(t, 1, issue.Assigned)
			} else {
				assert.Equal(t, 0, issue.Assigned)
			}
		}
		assert.Equal(t, 0, result.OKDays)
		assert.False(t, result.OK)
		assert.False(t, report.AllOK)
	})

	t.Run("Single understaffed day against a zero-minimum baseline", func(t *testing.T) {
		// min 0 everywhere except the band forces one failing day
		st := testShiftType("Morning", "08:00", "16:00", 0, 4)
		stStrict := testShiftType("Evening", "16:00", "23:00", 2, 4)
		shifts := []*models.Shift{testShift(stStrict, "2024-03-05", "emp-1")}

		report := EvaluateCoverage([]*models.ShiftType{st, stStrict}, shifts, march, nil, weekdays)

		morning := report.ShiftTypes[0]
		assert.True(t, morning.OK)
		assert.Equal(t, 21, morning.OKDays)

		evening := report.ShiftTypes[1]
		assert.Equal(t, 21-len(evening.Understaffed), evening.OKDays)
		assert.False(t, report.AllOK)
	})

	t.Run("Overstaffed day is a warning not a failure", func(t *testing.T) {
		st := testShiftType("Morning", "08:00", "16:00", 0, 2)
		shifts := []*models.Shift{testShift(st, "2024-03-05", "emp-1", "emp-2", "emp-3")}

		report := EvaluateCoverage([]*models.ShiftType{st}, shifts, march, nil, weekdays)

		result := report.ShiftTypes[0]
		require.Len(t, result.Overstaffed, 1)
		assert.Equal(t, "2024-03-05", result.Overstaffed[0].Date)
		assert.Equal(t, 3, result.Overstaffed[0].Assigned)
		assert.Equal(t, 2, result.Overstaffed[0].Required)

		// the overstaffed day still counts as ok for the headline
		assert.Equal(t, 21, result.OKDays)
		assert.True(t, result.OK)
		assert.True(t, report.AllOK)
		assert.Equal(t, 21, report.FullyCoveredDays)
	})

	t.Run("Holidays and weekends are not evaluated", func(t *testing.T) {
		st := testShiftType("Morning", "08:00", "16:00", 1, 4)
		holidays := []models.Holiday{*models.NewHoliday("Spring holiday", 3, 5)}

		report := EvaluateCoverage([]*models.ShiftType{st}, nil, march, holidays, weekdays)

		result := report.ShiftTypes[0]
		assert.Equal(t, 20, result.WorkingDays)
		for _, issue := range result.Understaffed {
			assert.NotEqual(t, "2024-03-05", issue.Date)
		}
	})

	t.Run("Fully covered days subtract the union of understaffed dates", func(t *testing.T) {
		morning := testShiftType("Morning", "08:00", "16:00", 0, 4)
		evening := testShiftType("Evening", "16:00", "23:00", 0, 4)
		// force exactly one understaffed day per type, same date
		morning.MinEmployees = 1
		evening.MinEmployees = 1

		var shifts []*models.Shift
		for _, day := range WorkingDays(march, weekdays, nil) {
			if day.Date == "2024-03-07" {
				continue // leave one day empty for both types
			}
			shifts = append(shifts,
				testShift(morning, day.Date, "emp-1"),
				testShift(evening, day.Date, "emp-2"),
			)
		}

		report := EvaluateCoverage([]*models.ShiftType{morning, evening}, shifts, march, nil, weekdays)

		// both types fail on the same single date, so the union is one day
		assert.Equal(t, 21, report.TotalWorkingDays)
		assert.Equal(t, 20, report.FullyCoveredDays)
		assert.False(t, report.AllOK)
	})

	t.Run("Deterministic for identical inputs", func(t *testing.T) {
		st := testShiftType("Morning", "08:00", "16:00", 2, 4)
		shifts := []*models.Shift{testShift(st, "2024-03-05", "emp-1")}
		holidays := []models.Holiday{*models.NewHoliday("Spring holiday", 3, 8)}

		first := EvaluateCoverage([]*models.ShiftType{st}, shifts, march, holidays, weekdays)
		second := EvaluateCoverage([]*models.ShiftType{st}, shifts, march, holidays, weekdays)
		assert.Equal(t, first, second)
	})

	t.Run("No shift types yields an empty passing report", func(t *testing.T) {
		report := EvaluateCoverage(nil, nil, march, nil, weekdays)
		assert.True(t, report.AllOK)
		assert.Equal(t, 21, report.TotalWorkingDays)
		assert.Equal(t, 21, report.FullyCoveredDays)
		assert.Empty(t, report.ShiftTypes)
	})
}
