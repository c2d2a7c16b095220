package schedule

import (
	"github.com/shiftline/shiftline/internal/models"
)

// CoverageIssue records one staffing problem on one working day
type CoverageIssue struct {
	Date     string `json:"date"`
	Assigned int    `json:"assigned"`
	Required int    `json:"required"`
}

// ShiftTypeCoverage is the per-shift-type result of a coverage check
type ShiftTypeCoverage struct {
	ShiftTypeID   string          `json:"shift_type_id"`
	ShiftTypeName string          `json:"shift_type_name"`
	WorkingDays   int             `json:"working_days"`
	OKDays        int             `json:"ok_days"`
	Understaffed  []CoverageIssue `json:"understaffed"`
	Overstaffed   []CoverageIssue `json:"overstaffed"`
	OK            bool            `json:"ok"`
}

// CoverageReport is the month-level result of a coverage check
type CoverageReport struct {
	TotalWorkingDays int                 `json:"total_working_days"`
	FullyCoveredDays int                 `json:"fully_covered_days"`
	AllOK            bool                `json:"all_ok"`
	ShiftTypes       []ShiftTypeCoverage `json:"shift_types"`
}

// EvaluateCoverage compares assigned headcount against each shift
// type's staffing band for every working day of the month. Understaffed
// days fail the shift type; overstaffed days are recorded but still
// count as ok for the pass/fail headline. The evaluation is a pure
// function of its inputs.
func EvaluateCoverage(shiftTypes []*models.ShiftType, shifts []*models.Shift, days []DateData, holidays []models.Holiday, workDays []models.WorkDay) *CoverageReport {
	working := WorkingDays(days, workDays, holidays)

	// (date, shift type) -> assigned headcount
	assigned := make(map[string]map[string]int)
	for _, shift := range shifts {
		byType, ok := assigned[shift.Date]
		if !ok {
			byType = make(map[string]int)
			assigned[shift.Date] = byType
		}
		byType[shift.ShiftTypeID] = len(shift.Employees)
	}

	report := &CoverageReport{
		TotalWorkingDays: len(working),
		AllOK:            true,
	}

	understaffedDates := make(map[string]bool)

	for _, st := range shiftTypes {
		result := ShiftTypeCoverage{
			ShiftTypeID:   st.ID,
			ShiftTypeName: st.Name,
			WorkingDays:   len(working),
			Understaffed:  []CoverageIssue{},
			Overstaffed:   []CoverageIssue{},
		}

		for _, day := range working {
			count := assigned[day.Date][st.ID]

			if count < st.MinEmployees {
				result.Understaffed = append(result.Understaffed, CoverageIssue{
					Date:     day.Date,
					Assigned: count,
					Required: st.MinEmployees,
				})
				understaffedDates[day.Date] = true
			} else if count > st.MaxEmployees {
				result.Overstaffed = append(result.Overstaffed, CoverageIssue{
					Date:     day.Date,
					Assigned: count,
					Required: st.MaxEmployees,
				})
			}
		}

		result.OKDays = result.WorkingDays - len(result.Understaffed)
		result.OK = len(result.Understaffed) == 0
		if !result.OK {
			report.AllOK = false
		}

		report.ShiftTypes = append(report.ShiftTypes, result)
	}

	report.FullyCoveredDays = report.TotalWorkingDays - len(understaffedDates)

	return report
}
