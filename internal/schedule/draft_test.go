package schedule

import (
	"testing"

	"github.com/shiftline/shiftline/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDraft(shifts []*models.Shift, timeOffs []models.TimeOff) *Draft {
	return &Draft{ScheduleID: "schedule-1", Shifts: shifts, TimeOffs: timeOffs}
}

func testTimeOff(employeeID, start, end string, kind models.TimeOffType) models.TimeOff {
	timeOff, err := models.NewTimeOff(employeeID, start, end, kind)
	if err != nil {
		panic(err)
	}
	return *timeOff
}

func TestDraftShiftTypeDropped(t *testing.T) {
	morning := testShiftType("Morning", "08:00", "16:00", 1, 3)

	t.Run("Creates an empty shift from the type defaults", func(t *testing.T) {
		draft := testDraft(nil, nil)

		next, rejection := draft.Apply(ShiftTypeDropped{Date: "2024-03-05", ShiftType: morning})
		require.Nil(t, rejection)
		require.Len(t, next.Shifts, 1)

		shift := next.Shifts[0]
		assert.Equal(t, "2024-03-05", shift.Date)
		assert.Equal(t, morning.ID, shift.ShiftTypeID)
		assert.Equal(t, "Morning", shift.ShiftTypeName)
		assert.Equal(t, "08:00", shift.StartTime)
		assert.Empty(t, shift.Employees)
	})

	t.Run("Rejects a duplicate shift type on the day", func(t *testing.T) {
		existing := testShift(morning, "2024-03-05", "emp-1")
		other := testShift(morning, "2024-03-06")
		draft := testDraft([]*models.Shift{existing, other}, nil)

		next, rejection := draft.Apply(ShiftTypeDropped{Date: "2024-03-05", ShiftType: morning})
		require.NotNil(t, rejection)
		assert.Equal(t, ReasonShiftTypeAlreadyOnDay, *rejection)

		// the shift list is unchanged, same backing pointers
		assert.Same(t, draft, next)
		assert.Same(t, existing, next.Shifts[0])
		assert.Same(t, other, next.Shifts[1])
	})
}

func TestDraftEmployeeDropped(t *testing.T) {
	morning := testShiftType("Morning", "08:00", "16:00", 1, 3)
	evening := testShiftType("Evening", "16:00", "23:00", 1, 3)

	t.Run("Appends to the existing shift", func(t *testing.T) {
		existing := testShift(morning, "2024-03-05", "emp-1")
		draft := testDraft([]*models.Shift{existing}, nil)

		next, rejection := draft.Apply(EmployeeDropped{
			Date: "2024-03-05", ShiftType: morning, EmployeeID: "emp-2", Name: "Dana",
		})
		require.Nil(t, rejection)
		require.Len(t, next.Shifts, 1)
		assert.Len(t, next.Shifts[0].Employees, 2)

		// original shift untouched
		assert.Len(t, existing.Employees, 1)
	})

	t.Run("Creates a shift when the type is absent on the day", func(t *testing.T) {
		existing := testShift(morning, "2024-03-05", "emp-1")
		draft := testDraft([]*models.Shift{existing}, nil)

		next, rejection := draft.Apply(EmployeeDropped{
			Date: "2024-03-05", ShiftType: evening, EmployeeID: "emp-2", Name: "Dana",
		})
		require.Nil(t, rejection)
		require.Len(t, next.Shifts, 2)
		assert.Same(t, existing, next.Shifts[0])
		assert.Equal(t, evening.ID, next.Shifts[1].ShiftTypeID)
		assert.Len(t, next.Shifts[1].Employees, 1)
	})

	t.Run("Rejects a double booking without mutating", func(t *testing.T) {
		existing := testShift(morning, "2024-03-05", "emp-1")
		draft := testDraft([]*models.Shift{existing}, nil)

		next, rejection := draft.Apply(EmployeeDropped{
			Date: "2024-03-05", ShiftType: evening, EmployeeID: "emp-1", Name: "Alex",
		})
		require.NotNil(t, rejection)
		assert.Equal(t, ReasonDoubleBookedSameDay, *rejection)
		assert.Same(t, draft, next)
	})

	t.Run("Time off blocks the drop before legality checks", func(t *testing.T) {
		timeOffs := []models.TimeOff{
			testTimeOff("emp-1", "2024-03-04", "2024-03-06", models.TimeOffVacation),
		}
		draft := testDraft(nil, timeOffs)

		next, rejection := draft.Apply(EmployeeDropped{
			Date: "2024-03-05", ShiftType: morning, EmployeeID: "emp-1", Name: "Alex",
		})
		require.NotNil(t, rejection)
		assert.Equal(t, ReasonEmployeeTimeOff, *rejection)
		assert.Empty(t, next.Shifts)
	})

	t.Run("Drop outside the absence range is allowed", func(t *testing.T) {
		timeOffs := []models.TimeOff{
			testTimeOff("emp-1", "2024-03-04", "2024-03-06", models.TimeOffSickLeave),
		}
		draft := testDraft(nil, timeOffs)

		_, rejection := draft.Apply(EmployeeDropped{
			Date: "2024-03-07", ShiftType: morning, EmployeeID: "emp-1", Name: "Alex",
		})
		assert.Nil(t, rejection)
	})
}

func TestDraftShiftMoved(t *testing.T) {
	morning := testShiftType("Morning", "08:00", "16:00", 1, 3)

	t.Run("Moves to a free date, sharing unaffected shifts", func(t *testing.T) {
		moving := testShift(morning, "2024-03-05", "emp-1")
		evening := testShiftType("Evening", "16:00", "23:00", 1, 3)
		bystander := testShift(evening, "2024-03-05", "emp-2")
		draft := testDraft([]*models.Shift{moving, bystander}, nil)

		next, rejection := draft.Apply(ShiftMoved{ShiftID: moving.ID, ToDate: "2024-03-07"})
		require.Nil(t, rejection)
		assert.Equal(t, "2024-03-07", next.Shifts[0].Date)
		assert.Equal(t, "2024-03-05", moving.Date)
		assert.Same(t, bystander, next.Shifts[1])
	})

	t.Run("Rejects when the destination has the shift type", func(t *testing.T) {
		moving := testShift(morning, "2024-03-05", "emp-1")
		blocking := testShift(morning, "2024-03-07", "emp-2")
		draft := testDraft([]*models.Shift{moving, blocking}, nil)

		next, rejection := draft.Apply(ShiftMoved{ShiftID: moving.ID, ToDate: "2024-03-07"})
		require.NotNil(t, rejection)
		assert.Equal(t, ReasonShiftTypeAlreadyOnDay, *rejection)
		assert.Same(t, draft, next)
	})

	t.Run("Own date is a silent no-op", func(t *testing.T) {
		moving := testShift(morning, "2024-03-05", "emp-1")
		draft := testDraft([]*models.Shift{moving}, nil)

		next, rejection := draft.Apply(ShiftMoved{ShiftID: moving.ID, ToDate: "2024-03-05"})
		assert.Nil(t, rejection)
		assert.Same(t, draft, next)
	})

	t.Run("Rejects when a member has time off on the destination", func(t *testing.T) {
		moving := testShift(morning, "2024-03-05", "emp-1")
		timeOffs := []models.TimeOff{
			testTimeOff("emp-1", "2024-03-07", "2024-03-07", models.TimeOffPersonalDay),
		}
		draft := testDraft([]*models.Shift{moving}, timeOffs)

		_, rejection := draft.Apply(ShiftMoved{ShiftID: moving.ID, ToDate: "2024-03-07"})
		require.NotNil(t, rejection)
		assert.Equal(t, ReasonEmployeeTimeOff, *rejection)
	})

	t.Run("Unknown shift is ignored", func(t *testing.T) {
		draft := testDraft(nil, nil)
		next, rejection := draft.Apply(ShiftMoved{ShiftID: "missing", ToDate: "2024-03-07"})
		assert.Nil(t, rejection)
		assert.Same(t, draft, next)
	})
}

func TestDraftEmployeeRemoved(t *testing.T) {
	morning := testShiftType("Morning", "08:00", "16:00", 1, 3)

	t.Run("Removing one of several keeps the shift", func(t *testing.T) {
		shift := testShift(morning, "2024-03-05", "emp-1", "emp-2")
		draft := testDraft([]*models.Shift{shift}, nil)

		next, rejection := draft.Apply(EmployeeRemoved{ShiftID: shift.ID, EmployeeID: "emp-1"})
		require.Nil(t, rejection)
		require.Len(t, next.Shifts, 1)
		require.Len(t, next.Shifts[0].Employees, 1)
		assert.Equal(t, "emp-2", next.Shifts[0].Employees[0].EmployeeID)
	})

	t.Run("Removing the last employee deletes the shift", func(t *testing.T) {
		shift := testShift(morning, "2024-03-05", "emp-1")
		draft := testDraft([]*models.Shift{shift}, nil)

		next, rejection := draft.Apply(EmployeeRemoved{ShiftID: shift.ID, EmployeeID: "emp-1"})
		require.Nil(t, rejection)
		assert.Empty(t, next.Shifts)
	})

	t.Run("Unknown employee is ignored", func(t *testing.T) {
		shift := testShift(morning, "2024-03-05", "emp-1")
		draft := testDraft([]*models.Shift{shift}, nil)

		next, rejection := draft.Apply(EmployeeRemoved{ShiftID: shift.ID, EmployeeID: "emp-9"})
		assert.Nil(t, rejection)
		assert.Same(t, draft, next)
	})
}

// After any sequence of gated events, no employee appears twice on one date.
func TestDraftUniquenessInvariant(t *testing.T) {
	morning := testShiftType("Morning", "08:00", "16:00", 1, 3)
	evening := testShiftType("Evening", "16:00", "23:00", 1, 3)
	night := testShiftType("Night", "22:00", "06:00", 1, 2)

	draft := testDraft(nil, nil)
	events := []Event{
		EmployeeDropped{Date: "2024-03-05", ShiftType: morning, EmployeeID: "emp-1", Name: "Alex"},
		EmployeeDropped{Date: "2024-03-05", ShiftType: evening, EmployeeID: "emp-1", Name: "Alex"}, // rejected
		EmployeeDropped{Date: "2024-03-05", ShiftType: evening, EmployeeID: "emp-2", Name: "Dana"},
		EmployeeDropped{Date: "2024-03-05", ShiftType: morning, EmployeeID: "emp-2", Name: "Dana"}, // rejected
		EmployeeDropped{Date: "2024-03-05", ShiftType: night, EmployeeID: "emp-3", Name: "Kim"},
		EmployeeDropped{Date: "2024-03-06", ShiftType: morning, EmployeeID: "emp-3", Name: "Kim"}, // rejected, overnight carry
		EmployeeDropped{Date: "2024-03-06", ShiftType: morning, EmployeeID: "emp-1", Name: "Alex"},
	}

	for _, ev := range events {
		draft, _ = draft.Apply(ev)
	}

	seen := make(map[string]map[string]bool)
	for _, shift := range draft.Shifts {
		byDate, ok := seen[shift.Date]
		if !ok {
			byDate = make(map[string]bool)
			seen[shift.Date] = byDate
		}
		for _, e := range shift.Employees {
			assert.False(t, byDate[e.EmployeeID], "employee %s appears twice on %s", e.EmployeeID, shift.Date)
			byDate[e.EmployeeID] = true
		}
	}

	require.Len(t, draft.Shifts, 4)
}
