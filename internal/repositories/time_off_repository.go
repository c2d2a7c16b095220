package repositories

import (
	"database/sql"
	"fmt"

	"github.com/shiftline/shiftline/internal/models"
)

type TimeOffRepository struct {
	db *sql.DB
}

func NewTimeOffRepository(db *sql.DB) *TimeOffRepository {
	return &TimeOffRepository{db: db}
}

// Create creates a new time off record
func (r *TimeOffRepository) Create(timeOff *models.TimeOff) error {
	query := `
		INSERT INTO time_offs (id, employee_id, start_date, end_date, type)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(query,
		timeOff.ID, timeOff.EmployeeID, timeOff.StartDate, timeOff.EndDate, string(timeOff.Type),
	)
	if err != nil {
		return fmt.Errorf("error creating time off: %v", err)
	}

	return nil
}

// ListByEmployee retrieves all time off records for an employee
func (r *TimeOffRepository) ListByEmployee(employeeID string) ([]models.TimeOff, error) {
	query := `
		SELECT id, employee_id, start_date, end_date, type, created_at, updated_at
		FROM time_offs WHERE employee_id = $1 ORDER BY start_date
	`
	return r.list(query, employeeID)
}

// ListOverlapping retrieves all time off records overlapping the date range
func (r *TimeOffRepository) ListOverlapping(startDate, endDate string) ([]models.TimeOff, error) {
	query := `
		SELECT id, employee_id, start_date, end_date, type, created_at, updated_at
		FROM time_offs
		WHERE start_date <= $1 AND end_date >= $2
		ORDER BY start_date
	`
	return r.list(query, endDate, startDate)
}

func (r *TimeOffRepository) list(query string, args ...interface{}) ([]models.TimeOff, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing time offs: %v", err)
	}
	defer rows.Close()

	var timeOffs []models.TimeOff
	for rows.Next() {
		var timeOff models.TimeOff
		var timeOffType string
		if err := rows.Scan(
			&timeOff.ID, &timeOff.EmployeeID, &timeOff.StartDate, &timeOff.EndDate, &timeOffType,
			&timeOff.CreatedAt, &timeOff.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning time off: %v", err)
		}
		timeOff.Type = models.TimeOffType(timeOffType)
		timeOffs = append(timeOffs, timeOff)
	}

	return timeOffs, rows.Err()
}

// Delete deletes a time off record
func (r *TimeOffRepository) Delete(id string) error {
	query := `DELETE FROM time_offs WHERE id = $1`

	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("error deleting time off: %v", err)
	}

	return nil
}
