package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCoverageService(f *testFixture) *CoverageService {
	return NewCoverageService(newScheduleService(f), f.shiftTypeRepo, f.workDayRepo, f.holidayRepo)
}

func TestCheckMonth(t *testing.T) {
	calendar := func(t *testing.T, f *testFixture) *WorkCalendarService {
		t.Helper()
		service := NewWorkCalendarService(f.workDayRepo, f.holidayRepo)
		_, err := service.SetWorkDay("Monday", "08:00", "23:00")
		require.NoError(t, err)
		return service
	}

	t.Run("No schedule means every working day is understaffed", func(t *testing.T) {
		f := newTestFixture(t)
		calendar(t, f)
		service := newCoverageService(f)

		// Mondays in March 2024: the 4th, 11th, 18th and 25th
		report, err := service.CheckMonth(f.group.ID, 2024, 3)
		require.NoError(t, err)

		assert.Equal(t, 4, report.TotalWorkingDays)
		assert.Equal(t, 0, report.FullyCoveredDays)
		assert.False(t, report.AllOK)
		require.Len(t, report.ShiftTypes, 2)
		for _, st := range report.ShiftTypes {
			assert.Len(t, st.Understaffed, 4)
			assert.Equal(t, 0, st.OKDays)
			assert.False(t, st.OK)
		}
	})

	t.Run("Holidays do not count as working days", func(t *testing.T) {
		f := newTestFixture(t)
		workCalendar := calendar(t, f)
		_, err := workCalendar.AddHoliday("Spring festival", 3, 4)
		require.NoError(t, err)

		service := newCoverageService(f)
		report, err := service.CheckMonth(f.group.ID, 2024, 3)
		require.NoError(t, err)

		assert.Equal(t, 3, report.TotalWorkingDays)
	})

	t.Run("Fully staffed month passes", func(t *testing.T) {
		f := newTestFixture(t)
		calendar(t, f)
		second := f.addEmployee(t, "Bea Ortiz")

		scheduleService := newScheduleService(f)
		var shifts []UpdateScheduleShift
		for _, date := range []string{"2024-03-04", "2024-03-11", "2024-03-18", "2024-03-25"} {
			shifts = append(shifts,
				UpdateScheduleShift{ShiftTypeID: f.morning.ID, Date: date, Employees: []UpdateScheduleAssignment{{ID: f.employee.ID}}},
				UpdateScheduleShift{ShiftTypeID: f.evening.ID, Date: date, Employees: []UpdateScheduleAssignment{{ID: second.ID}}},
			)
		}
		_, err := scheduleService.UpdateSchedule(&UpdateScheduleRequest{
			GroupID:   f.group.ID,
			StartDate: "2024-03-01",
			EndDate:   "2024-03-31",
			Shifts:    shifts,
		})
		require.NoError(t, err)

		service := newCoverageService(f)
		report, err := service.CheckMonth(f.group.ID, 2024, 3)
		require.NoError(t, err)

		assert.True(t, report.AllOK)
		assert.Equal(t, 4, report.FullyCoveredDays)
		for _, st := range report.ShiftTypes {
			assert.Empty(t, st.Understaffed)
			assert.Empty(t, st.Overstaffed)
			assert.Equal(t, 4, st.OKDays)
		}
	})

	t.Run("Partial coverage reports the gap days", func(t *testing.T) {
		f := newTestFixture(t)
		calendar(t, f)
		second := f.addEmployee(t, "Bea Ortiz")

		scheduleService := newScheduleService(f)
		_, err := scheduleService.UpdateSchedule(&UpdateScheduleRequest{
			GroupID:   f.group.ID,
			StartDate: "2024-03-01",
			EndDate:   "2024-03-31",
			Shifts: []UpdateScheduleShift{
				{ShiftTypeID: f.morning.ID, Date: "2024-03-04", Employees: []UpdateScheduleAssignment{{ID: f.employee.ID}}},
				{ShiftTypeID: f.evening.ID, Date: "2024-03-04", Employees: []UpdateScheduleAssignment{{ID: second.ID}}},
				{ShiftTypeID: f.morning.ID, Date: "2024-03-11", Employees: []UpdateScheduleAssignment{{ID: f.employee.ID}}},
			},
		})
		require.NoError(t, err)

		service := newCoverageService(f)
		report, err := service.CheckMonth(f.group.ID, 2024, 3)
		require.NoError(t, err)

		assert.False(t, report.AllOK)
		assert.Equal(t, 1, report.FullyCoveredDays)

		for _, st := range report.ShiftTypes {
			switch st.ShiftTypeID {
			case f.morning.ID:
				require.Len(t, st.Understaffed, 2)
				assert.Equal(t, "2024-03-18", st.Understaffed[0].Date)
				assert.Equal(t, "2024-03-25", st.Understaffed[1].Date)
				assert.Equal(t, 2, st.OKDays)
			case f.evening.ID:
				assert.Len(t, st.Understaffed, 3)
				assert.Equal(t, 1, st.OKDays)
			}
		}
	})

	t.Run("Invalid inputs", func(t *testing.T) {
		f := newTestFixture(t)
		service := newCoverageService(f)

		_, err := service.CheckMonth("not-a-uuid", 2024, 3)
		assert.Error(t, err)

		_, err = service.CheckMonth(f.group.ID, 2024, 13)
		assert.Error(t, err)
	})
}
