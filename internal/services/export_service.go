package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shiftline/shiftline/internal/models"
	"github.com/shiftline/shiftline/internal/repositories"
	"github.com/xuri/excelize/v2"
)

// ExportService renders a schedule as a spreadsheet: one row per date,
// one column per employee, the assigned shift type names in the cells
type ExportService struct {
	scheduleRepo *repositories.ScheduleRepository
	employeeRepo *repositories.EmployeeRepository
	holidayRepo  *repositories.HolidayRepository
}

func NewExportService(scheduleRepo *repositories.ScheduleRepository, employeeRepo *repositories.EmployeeRepository, holidayRepo *repositories.HolidayRepository) *ExportService {
	return &ExportService{
		scheduleRepo: scheduleRepo,
		employeeRepo: employeeRepo,
		holidayRepo:  holidayRepo,
	}
}

// Export builds the spreadsheet for a schedule and returns it with a
// download file name
func (s *ExportService) Export(scheduleID string) (*excelize.File, string, error) {
	if _, err := uuid.Parse(scheduleID); err != nil {
		return nil, "", errors.New("invalid schedule ID format")
	}

	sched, err := s.scheduleRepo.GetByID(scheduleID)
	if err != nil {
		return nil, "", err
	}
	if sched == nil {
		return nil, "", errors.New("schedule not found")
	}

	shifts, err := s.scheduleRepo.GetShifts(sched.ID)
	if err != nil {
		return nil, "", err
	}
	employees, err := s.employeeRepo.ListByGroup(sched.GroupID)
	if err != nil {
		return nil, "", err
	}
	holidays, err := s.holidayRepo.List()
	if err != nil {
		return nil, "", err
	}

	file, err := s.buildWorkbook(sched, shifts, employees, holidays)
	if err != nil {
		return nil, "", err
	}

	fileName := fmt.Sprintf("schedule_%s_%s.xlsx", sched.StartDate, sched.EndDate)
	return file, fileName, nil
}

func (s *ExportService) buildWorkbook(sched *models.Schedule, shifts []*models.Shift, employees []*models.Employee, holidays []models.Holiday) (*excelize.File, error) {
	f := excelize.NewFile()

	sheetName := "Schedule"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	title := fmt.Sprintf("Schedule %s to %s", sched.StartDate, sched.EndDate)
	f.SetCellValue(sheetName, "A1", title)
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", "A1", titleStyle)
	}

	// header row: date, weekday, then one column per employee
	f.SetCellValue(sheetName, "A3", "Date")
	f.SetCellValue(sheetName, "B3", "Day")
	for i, employee := range employees {
		col, err := excelize.ColumnNumberToName(3 + i)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheetName, col+"3", employee.Name)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	lastCol, err := excelize.ColumnNumberToName(2 + len(employees))
	if err != nil {
		return nil, err
	}
	f.SetCellStyle(sheetName, "A3", lastCol+"3", headerStyle)

	holidayStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "FF0000"},
	})

	// assignment lookup: (date, employee) -> shift type name
	assignments := make(map[string]map[string]string)
	for _, shift := range shifts {
		byEmployee, ok := assignments[shift.Date]
		if !ok {
			byEmployee = make(map[string]string)
			assignments[shift.Date] = byEmployee
		}
		for _, member := range shift.Employees {
			byEmployee[member.EmployeeID] = shift.ShiftTypeName
		}
	}

	start, err := time.Parse("2006-01-02", sched.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse("2006-01-02", sched.EndDate)
	if err != nil {
		return nil, err
	}

	row := 4
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := d.Format("2006-01-02")
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), date)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), d.Weekday().String()[:3])

		if isExportHoliday(d, holidays) {
			f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), holidayStyle)
		}

		for i, employee := range employees {
			if name, ok := assignments[date][employee.ID]; ok {
				col, err := excelize.ColumnNumberToName(3 + i)
				if err != nil {
					return nil, err
				}
				f.SetCellValue(sheetName, fmt.Sprintf("%s%d", col, row), name)
			}
		}
		row++
	}

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", lastCol, 10)

	return f, nil
}

func isExportHoliday(t time.Time, holidays []models.Holiday) bool {
	for i := range holidays {
		if holidays[i].Matches(t) {
			return true
		}
	}
	return false
}
