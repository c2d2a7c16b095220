package schedule

import (
	"testing"

	"github.com/shiftline/shiftline/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testShiftType(name, start, end string, min, max int) *models.ShiftType {
	st, err := models.NewShiftType(name, start, end, min, max, "#4287f5", nil)
	if err != nil {
		panic(err)
	}
	return st
}

func testShift(st *models.ShiftType, date string, employeeIDs ...string) *models.Shift {
	shift := models.NewShift("schedule-1", date, st)
	for _, id := range employeeIDs {
		shift.Employees = append(shift.Employees, models.ShiftEmployee{EmployeeID: id, Name: "Employee " + id})
	}
	return shift
}

func TestCanAssign(t *testing.T) {
	morning := testShiftType("Morning", "08:00", "16:00", 1, 3)
	evening := testShiftType("Evening", "16:00", "23:00", 1, 3)

	t.Run("Already on the exact shift", func(t *testing.T) {
		shifts := []*models.Shift{testShift(morning, "2024-03-05", "emp-1")}

		decision := CanAssign("emp-1", "2024-03-05", morning.ID, shifts)
		assert.False(t, decision.OK)
		assert.Equal(t, ReasonAlreadyAssigned, decision.Reason)
	})

	t.Run("Double booked across shift types on the same day", func(t *testing.T) {
		shifts := []*models.Shift{testShift(morning, "2024-03-05", "emp-1")}

		decision := CanAssign("emp-1", "2024-03-05", evening.ID, shifts)
		assert.False(t, decision.OK)
		assert.Equal(t, ReasonDoubleBookedSameDay, decision.Reason)
	})

	t.Run("Append to existing shift", func(t *testing.T) {
		existing := testShift(morning, "2024-03-05", "emp-1")
		shifts := []*models.Shift{existing}

		decision := CanAssign("emp-2", "2024-03-05", morning.ID, shifts)
		require.True(t, decision.OK)
		assert.Equal(t, AssignAppend, decision.Mode)
		assert.Same(t, existing, decision.Target)
	})

	t.Run("Create new shift when none exists", func(t *testing.T) {
		shifts := []*models.Shift{testShift(morning, "2024-03-05", "emp-1")}

		decision := CanAssign("emp-2", "2024-03-06", morning.ID, shifts)
		require.True(t, decision.OK)
		assert.Equal(t, AssignCreate, decision.Mode)
		assert.Nil(t, decision.Target)
	})

	t.Run("Empty shift list creates", func(t *testing.T) {
		decision := CanAssign("emp-1", "2024-03-05", morning.ID, nil)
		require.True(t, decision.OK)
		assert.Equal(t, AssignCreate, decision.Mode)
	})

	t.Run("Overnight shift from previous day blocks the next day", func(t *testing.T) {
		night := testShiftType("Night", "22:00", "06:00", 1, 2)
		shifts := []*models.Shift{testShift(night, "2024-03-05", "emp-1")}

		// emp-1 still occupies 2024-03-06 until 06:00
		decision := CanAssign("emp-1", "2024-03-06", morning.ID, shifts)
		assert.False(t, decision.OK)
		assert.Equal(t, ReasonDoubleBookedSameDay, decision.Reason)

		// other employees are unaffected
		decision = CanAssign("emp-2", "2024-03-06", morning.ID, shifts)
		assert.True(t, decision.OK)
	})

	t.Run("Day shift on previous day does not carry over", func(t *testing.T) {
		shifts := []*models.Shift{testShift(morning, "2024-03-05", "emp-1")}

		decision := CanAssign("emp-1", "2024-03-06", morning.ID, shifts)
		assert.True(t, decision.OK)
	})
}

func TestCanPlaceShiftType(t *testing.T) {
	morning := testShiftType("Morning", "08:00", "16:00", 1, 3)

	t.Run("Date already has the shift type", func(t *testing.T) {
		shifts := []*models.Shift{testShift(morning, "2024-03-05")}

		decision := CanPlaceShiftType("2024-03-05", morning.ID, shifts)
		assert.False(t, decision.OK)
		assert.Equal(t, ReasonShiftTypeAlreadyOnDay, decision.Reason)
	})

	t.Run("Free date accepts", func(t *testing.T) {
		shifts := []*models.Shift{testShift(morning, "2024-03-05")}

		decision := CanPlaceShiftType("2024-03-06", morning.ID, shifts)
		assert.True(t, decision.OK)
	})
}

func TestCanMove(t *testing.T) {
	morning := testShiftType("Morning", "08:00", "16:00", 1, 3)
	evening := testShiftType("Evening", "16:00", "23:00", 1, 3)

	t.Run("Destination holds the same shift type", func(t *testing.T) {
		moving := testShift(morning, "2024-03-05", "emp-1")
		blocking := testShift(morning, "2024-03-06", "emp-2")
		shifts := []*models.Shift{moving, blocking}

		decision := CanMove(moving, "2024-03-06", shifts)
		assert.False(t, decision.OK)
		assert.Equal(t, ReasonShiftTypeAlreadyOnDay, decision.Reason)
	})

	t.Run("Member already works the destination date", func(t *testing.T) {
		moving := testShift(morning, "2024-03-05", "emp-1")
		other := testShift(evening, "2024-03-06", "emp-1")
		shifts := []*models.Shift{moving, other}

		decision := CanMove(moving, "2024-03-06", shifts)
		assert.False(t, decision.OK)
		assert.Equal(t, ReasonDoubleBookedSameDay, decision.Reason)
	})

	t.Run("Own date is accepted as a no-op", func(t *testing.T) {
		moving := testShift(morning, "2024-03-05", "emp-1")

		decision := CanMove(moving, "2024-03-05", []*models.Shift{moving})
		assert.True(t, decision.OK)
	})

	t.Run("Member holds an overnight shift ending on the destination date", func(t *testing.T) {
		night := testShiftType("Night", "22:00", "06:00", 1, 2)
		moving := testShift(morning, "2024-03-08", "emp-1")
		overnight := testShift(night, "2024-03-05", "emp-1")
		shifts := []*models.Shift{moving, overnight}

		// emp-1 still occupies 2024-03-06 until 06:00
		decision := CanMove(moving, "2024-03-06", shifts)
		assert.False(t, decision.OK)
		assert.Equal(t, ReasonDoubleBookedSameDay, decision.Reason)
	})

	t.Run("Free destination accepts", func(t *testing.T) {
		moving := testShift(morning, "2024-03-05", "emp-1")
		other := testShift(evening, "2024-03-06", "emp-2")
		shifts := []*models.Shift{moving, other}

		decision := CanMove(moving, "2024-03-07", shifts)
		assert.True(t, decision.OK)
	})
}
