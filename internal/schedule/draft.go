package schedule

import (
	"github.com/shiftline/shiftline/internal/models"
)

// Draft is the in-memory shift list being edited. It is the single
// source of truth until an explicit save persists it; every edit goes
// through Apply so the legality rules cannot be bypassed.
type Draft struct {
	ScheduleID string
	Shifts     []*models.Shift
	TimeOffs   []models.TimeOff
}

// Event is one discrete edit of the draft
type Event interface {
	isEvent()
}

// ShiftTypeDropped places a new empty shift of the given type on a date
type ShiftTypeDropped struct {
	Date      string
	ShiftType *models.ShiftType
}

// EmployeeDropped assigns an employee to a shift type on a date,
// appending to the existing shift or creating a new one
type EmployeeDropped struct {
	Date       string
	ShiftType  *models.ShiftType
	EmployeeID string
	Name       string
	Note       string
}

// ShiftMoved drags an existing shift to another anchor date
type ShiftMoved struct {
	ShiftID string
	ToDate  string
}

// EmployeeRemoved takes an employee off a shift; removing the last
// employee deletes the shift
type EmployeeRemoved struct {
	ShiftID    string
	EmployeeID string
}

// ShiftDeleted removes a shift outright
type ShiftDeleted struct {
	ShiftID string
}

func (ShiftTypeDropped) isEvent() {}
func (EmployeeDropped) isEvent()  {}
func (ShiftMoved) isEvent()       {}
func (EmployeeRemoved) isEvent()  {}
func (ShiftDeleted) isEvent()     {}

// Apply runs one event against the draft and returns the resulting
// draft. A rejected event returns the draft unchanged along with the
// conflict reason; an accepted event returns a new draft sharing every
// unaffected shift with the old one.
func (d *Draft) Apply(ev Event) (*Draft, *ConflictReason) {
	switch e := ev.(type) {
	case ShiftTypeDropped:
		return d.applyShiftTypeDropped(e)
	case EmployeeDropped:
		return d.applyEmployeeDropped(e)
	case ShiftMoved:
		return d.applyShiftMoved(e)
	case EmployeeRemoved:
		return d.applyEmployeeRemoved(e)
	case ShiftDeleted:
		return d.applyShiftDeleted(e)
	}
	return d, nil
}

func (d *Draft) applyShiftTypeDropped(e ShiftTypeDropped) (*Draft, *ConflictReason) {
	if decision := CanPlaceShiftType(e.Date, e.ShiftType.ID, d.Shifts); !decision.OK {
		return d, &decision.Reason
	}

	shift := models.NewShift(d.ScheduleID, e.Date, e.ShiftType)
	return d.withShifts(append(copyShifts(d.Shifts), shift)), nil
}

func (d *Draft) applyEmployeeDropped(e EmployeeDropped) (*Draft, *ConflictReason) {
	// Time off blocks the cell before any legality checking
	if TimeOffOn(e.EmployeeID, e.Date, d.TimeOffs) != nil {
		reason := ReasonEmployeeTimeOff
		return d, &reason
	}

	decision := CanAssign(e.EmployeeID, e.Date, e.ShiftType.ID, d.Shifts)
	if !decision.OK {
		return d, &decision.Reason
	}

	member := models.ShiftEmployee{EmployeeID: e.EmployeeID, Name: e.Name, Note: e.Note}

	if decision.Mode == AssignAppend {
		shifts := copyShifts(d.Shifts)
		for i, shift := range shifts {
			if shift.ID == decision.Target.ID {
				updated := *shift
				updated.Employees = append(append([]models.ShiftEmployee{}, shift.Employees...), member)
				shifts[i] = &updated
				break
			}
		}
		return d.withShifts(shifts), nil
	}

	shift := models.NewShift(d.ScheduleID, e.Date, e.ShiftType)
	shift.Employees = []models.ShiftEmployee{member}
	return d.withShifts(append(copyShifts(d.Shifts), shift)), nil
}

func (d *Draft) applyShiftMoved(e ShiftMoved) (*Draft, *ConflictReason) {
	shift := d.findShift(e.ShiftID)
	if shift == nil {
		return d, nil
	}

	decision := CanMove(shift, e.ToDate, d.Shifts)
	if !decision.OK {
		return d, &decision.Reason
	}
	if shift.Date == e.ToDate {
		// Dropped on its own date
		return d, nil
	}

	for _, member := range shift.Employees {
		if TimeOffOn(member.EmployeeID, e.ToDate, d.TimeOffs) != nil {
			reason := ReasonEmployeeTimeOff
			return d, &reason
		}
	}

	shifts := copyShifts(d.Shifts)
	for i, s := range shifts {
		if s.ID == e.ShiftID {
			updated := *s
			updated.Date = e.ToDate
			shifts[i] = &updated
			break
		}
	}
	return d.withShifts(shifts), nil
}

func (d *Draft) applyEmployeeRemoved(e EmployeeRemoved) (*Draft, *ConflictReason) {
	shift := d.findShift(e.ShiftID)
	if shift == nil || !shift.HasEmployee(e.EmployeeID) {
		return d, nil
	}

	remaining := make([]models.ShiftEmployee, 0, len(shift.Employees)-1)
	for _, member := range shift.Employees {
		if member.EmployeeID != e.EmployeeID {
			remaining = append(remaining, member)
		}
	}

	// The last employee leaving deletes the shift
	if len(remaining) == 0 {
		return d.applyShiftDeleted(ShiftDeleted{ShiftID: e.ShiftID})
	}

	shifts := copyShifts(d.Shifts)
	for i, s := range shifts {
		if s.ID == e.ShiftID {
			updated := *s
			updated.Employees = remaining
			shifts[i] = &updated
			break
		}
	}
	return d.withShifts(shifts), nil
}

func (d *Draft) applyShiftDeleted(e ShiftDeleted) (*Draft, *ConflictReason) {
	shifts := make([]*models.Shift, 0, len(d.Shifts))
	for _, s := range d.Shifts {
		if s.ID != e.ShiftID {
			shifts = append(shifts, s)
		}
	}
	return d.withShifts(shifts), nil
}

func (d *Draft) findShift(shiftID string) *models.Shift {
	for _, s := range d.Shifts {
		if s.ID == shiftID {
			return s
		}
	}
	return nil
}

func (d *Draft) withShifts(shifts []*models.Shift) *Draft {
	return &Draft{ScheduleID: d.ScheduleID, Shifts: shifts, TimeOffs: d.TimeOffs}
}

func copyShifts(shifts []*models.Shift) []*models.Shift {
	return append([]*models.Shift{}, shifts...)
}
