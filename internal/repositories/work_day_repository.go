package repositories

import (
	"database/sql"
	"fmt"

	"github.com/shiftline/shiftline/internal/models"
)

type WorkDayRepository struct {
	db *sql.DB
}

func NewWorkDayRepository(db *sql.DB) *WorkDayRepository {
	return &WorkDayRepository{db: db}
}

// CreateOrUpdate creates or replaces the entry for a day of the week
func (r *WorkDayRepository) CreateOrUpdate(workDay *models.WorkDay) error {
	query := `
		INSERT INTO work_days (id, day_of_week, start_time, end_time)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT(day_of_week) DO UPDATE
		SET start_time = excluded.start_time, end_time = excluded.end_time,
		    updated_at = CURRENT_TIMESTAMP
	`

	_, err := r.db.Exec(query, workDay.ID, workDay.DayOfWeek, workDay.StartTime, workDay.EndTime)
	if err != nil {
		return fmt.Errorf("error saving work day: %v", err)
	}

	return nil
}

// List retrieves all configured work days
func (r *WorkDayRepository) List() ([]models.WorkDay, error) {
	query := `SELECT id, day_of_week, start_time, end_time, created_at, updated_at FROM work_days`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error listing work days: %v", err)
	}
	defer rows.Close()

	var workDays []models.WorkDay
	for rows.Next() {
		var workDay models.WorkDay
		if err := rows.Scan(
			&workDay.ID, &workDay.DayOfWeek, &workDay.StartTime, &workDay.EndTime,
			&workDay.CreatedAt, &workDay.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning work day: %v", err)
		}
		workDays = append(workDays, workDay)
	}

	return workDays, rows.Err()
}

// DeleteByDay removes the entry for a day of the week, making it non-working
func (r *WorkDayRepository) DeleteByDay(dayOfWeek string) error {
	query := `DELETE FROM work_days WHERE day_of_week = $1`

	_, err := r.db.Exec(query, dayOfWeek)
	if err != nil {
		return fmt.Errorf("error deleting work day: %v", err)
	}

	return nil
}
