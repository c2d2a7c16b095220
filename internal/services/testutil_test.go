package services

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shiftline/shiftline/internal/models"
	"github.com/shiftline/shiftline/internal/repositories"
	"github.com/stretchr/testify/require"
)

// newTestDB opens an in-memory SQLite database with the real schema
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:?_foreign_keys=ON")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	schema, err := os.ReadFile("../../migrations/001_init.sql")
	require.NoError(t, err)

	_, err = db.Exec(string(schema))
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })
	return db
}

type testFixture struct {
	db            *sql.DB
	groupRepo     *repositories.GroupRepository
	employeeRepo  *repositories.EmployeeRepository
	shiftTypeRepo *repositories.ShiftTypeRepository
	scheduleRepo  *repositories.ScheduleRepository
	workDayRepo   *repositories.WorkDayRepository
	holidayRepo   *repositories.HolidayRepository
	timeOffRepo   *repositories.TimeOffRepository

	group    *models.Group
	employee *models.Employee
	morning  *models.ShiftType
	evening  *models.ShiftType
}

// newTestFixture seeds a group with one employee and two shift types
func newTestFixture(t *testing.T) *testFixture {
	t.Helper()

	db := newTestDB(t)
	f := &testFixture{
		db:            db,
		groupRepo:     repositories.NewGroupRepository(db),
		employeeRepo:  repositories.NewEmployeeRepository(db),
		shiftTypeRepo: repositories.NewShiftTypeRepository(db),
		scheduleRepo:  repositories.NewScheduleRepository(db),
		workDayRepo:   repositories.NewWorkDayRepository(db),
		holidayRepo:   repositories.NewHolidayRepository(db),
		timeOffRepo:   repositories.NewTimeOffRepository(db),
	}

	f.group = models.NewGroup("Front desk")
	require.NoError(t, f.groupRepo.Create(f.group))

	f.employee = models.NewEmployee("Alex Doyle", "alex@example.com", &f.group.ID)
	require.NoError(t, f.employeeRepo.Create(f.employee))

	var err error
	f.morning, err = models.NewShiftType("Morning", "08:00", "16:00", 1, 3, "#4287f5", &f.group.ID)
	require.NoError(t, err)
	require.NoError(t, f.shiftTypeRepo.Create(f.morning))

	f.evening, err = models.NewShiftType("Evening", "16:00", "23:00", 1, 3, "#f5a442", &f.group.ID)
	require.NoError(t, err)
	require.NoError(t, f.shiftTypeRepo.Create(f.evening))

	return f
}

func (f *testFixture) addEmployee(t *testing.T, name string) *models.Employee {
	t.Helper()
	employee := models.NewEmployee(name, "", &f.group.ID)
	require.NoError(t, f.employeeRepo.Create(employee))
	return employee
}
