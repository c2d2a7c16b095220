package schedule

import (
	"github.com/shiftline/shiftline/internal/models"
)

// TimeOffOn returns the absence covering the given date for the employee,
// or nil if none exists. When an absence is active the cell is not
// assignable: drops must be rejected before any legality checking.
func TimeOffOn(employeeID, date string, timeOffs []models.TimeOff) *models.TimeOff {
	for i := range timeOffs {
		if timeOffs[i].EmployeeID == employeeID && timeOffs[i].Covers(date) {
			return &timeOffs[i]
		}
	}
	return nil
}
