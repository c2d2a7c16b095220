package schedule

import (
	"github.com/shiftline/shiftline/internal/models"
)

// ConflictReason identifies why an assignment or move was rejected
type ConflictReason string

const (
	// ReasonAlreadyAssigned: the employee is already on this exact shift
	ReasonAlreadyAssigned ConflictReason = "AlreadyAssigned"
	// ReasonDoubleBookedSameDay: the employee already works another shift
	// that occupies this date, including overnight spill-over from the
	// previous day
	ReasonDoubleBookedSameDay ConflictReason = "DoubleBookedSameDay"
	// ReasonShiftTypeAlreadyOnDay: the destination date already has a
	// shift of the same shift type
	ReasonShiftTypeAlreadyOnDay ConflictReason = "ShiftTypeAlreadyOnDay"
	// ReasonEmployeeTimeOff: the employee has an approved absence on
	// the date
	ReasonEmployeeTimeOff ConflictReason = "EmployeeTimeOff"
)

// AssignMode tells the caller how to realize an accepted assignment
type AssignMode string

const (
	// AssignAppend: add the employee to the existing shift
	AssignAppend AssignMode = "append"
	// AssignCreate: create a new shift from the shift type defaults
	AssignCreate AssignMode = "create"
)

// Decision is the discriminated result of a legality check. Legality
// checks never return errors; a rejected check carries a reason code
// and no state is mutated.
type Decision struct {
	OK     bool
	Reason ConflictReason
	Mode   AssignMode
	// Target is the existing shift to append to when Mode is AssignAppend
	Target *models.Shift
}

func accept(mode AssignMode, target *models.Shift) Decision {
	return Decision{OK: true, Mode: mode, Target: target}
}

func reject(reason ConflictReason) Decision {
	return Decision{Reason: reason}
}

// CanAssign decides whether the employee may be assigned to the given
// shift type on the given anchor date. Rules are evaluated in order:
//
//  1. already on the exact (date, shift type) shift -> AlreadyAssigned
//  2. on any shift occupying the date, including an overnight shift
//     anchored on the previous day -> DoubleBookedSameDay
//  3. the (date, shift type) shift exists -> accept, append
//  4. no such shift -> accept, create
func CanAssign(employeeID, date, shiftTypeID string, shifts []*models.Shift) Decision {
	var target *models.Shift

	for _, shift := range shifts {
		if shift.Date != date {
			continue
		}
		if shift.ShiftTypeID == shiftTypeID {
			if shift.HasEmployee(employeeID) {
				return reject(ReasonAlreadyAssigned)
			}
			target = shift
			continue
		}
		if shift.HasEmployee(employeeID) {
			return reject(ReasonDoubleBookedSameDay)
		}
	}

	// An overnight shift anchored yesterday spills into today and
	// blocks the employee here as well.
	if carriesOvernightInto(employeeID, date, shifts, "") {
		return reject(ReasonDoubleBookedSameDay)
	}

	if target != nil {
		return accept(AssignAppend, target)
	}
	return accept(AssignCreate, nil)
}

// CanPlaceShiftType decides whether a shift of the given type may be
// placed on the date. At most one shift per (date, shift type) exists.
func CanPlaceShiftType(date, shiftTypeID string, shifts []*models.Shift) Decision {
	for _, shift := range shifts {
		if shift.Date == date && shift.ShiftTypeID == shiftTypeID {
			return reject(ReasonShiftTypeAlreadyOnDay)
		}
	}
	return accept(AssignCreate, nil)
}

// CanMove decides whether an existing shift may be moved to another
// anchor date. Moving onto the shift's own date is a no-op for the
// caller; a destination already holding the same shift type rejects
// the move, and every member must remain legal on the new date.
func CanMove(shift *models.Shift, toDate string, shifts []*models.Shift) Decision {
	if shift.Date == toDate {
		return accept("", nil)
	}

	for _, other := range shifts {
		if other.ID == shift.ID {
			continue
		}
		if other.Date == toDate && other.ShiftTypeID == shift.ShiftTypeID {
			return reject(ReasonShiftTypeAlreadyOnDay)
		}
		if other.Date == toDate {
			for _, e := range shift.Employees {
				if other.HasEmployee(e.EmployeeID) {
					return reject(ReasonDoubleBookedSameDay)
				}
			}
		}
	}

	for _, e := range shift.Employees {
		if carriesOvernightInto(e.EmployeeID, toDate, shifts, shift.ID) {
			return reject(ReasonDoubleBookedSameDay)
		}
	}

	return accept("", nil)
}

// carriesOvernightInto reports whether the employee holds an overnight
// shift anchored on the previous date whose spill-over segment occupies
// the given date. skipShiftID excludes the shift being edited.
func carriesOvernightInto(employeeID, date string, shifts []*models.Shift, skipShiftID string) bool {
	previous := PreviousDate(date)
	for _, shift := range shifts {
		if shift.ID == skipShiftID || shift.Date != previous || !shift.HasEmployee(employeeID) {
			continue
		}
		if span, err := SplitShift(shift.StartTime, shift.EndTime); err == nil && span.Overnight {
			return true
		}
	}
	return false
}
