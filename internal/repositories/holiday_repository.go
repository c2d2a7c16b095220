package repositories

import (
	"database/sql"
	"fmt"

	"github.com/shiftline/shiftline/internal/models"
)

type HolidayRepository struct {
	db *sql.DB
}

func NewHolidayRepository(db *sql.DB) *HolidayRepository {
	return &HolidayRepository{db: db}
}

// Create creates a new holiday
func (r *HolidayRepository) Create(holiday *models.Holiday) error {
	query := `INSERT INTO holidays (id, holiday_name, month, day) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(query, holiday.ID, holiday.HolidayName, holiday.Month, holiday.Day)
	if err != nil {
		return fmt.Errorf("error creating holiday: %v", err)
	}

	return nil
}

// CreateOrUpdate creates or renames the holiday on (month, day).
// Used by the holiday sync worker so re-importing a feed is idempotent.
func (r *HolidayRepository) CreateOrUpdate(holiday *models.Holiday) error {
	query := `
		INSERT INTO holidays (id, holiday_name, month, day)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT(month, day) DO UPDATE
		SET holiday_name = excluded.holiday_name, updated_at = CURRENT_TIMESTAMP
	`

	_, err := r.db.Exec(query, holiday.ID, holiday.HolidayName, holiday.Month, holiday.Day)
	if err != nil {
		return fmt.Errorf("error saving holiday: %v", err)
	}

	return nil
}

// List retrieves all holidays
func (r *HolidayRepository) List() ([]models.Holiday, error) {
	query := `
		SELECT id, holiday_name, month, day, created_at, updated_at
		FROM holidays ORDER BY month, day
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error listing holidays: %v", err)
	}
	defer rows.Close()

	var holidays []models.Holiday
	for rows.Next() {
		var holiday models.Holiday
		if err := rows.Scan(
			&holiday.ID, &holiday.HolidayName, &holiday.Month, &holiday.Day,
			&holiday.CreatedAt, &holiday.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning holiday: %v", err)
		}
		holidays = append(holidays, holiday)
	}

	return holidays, rows.Err()
}

// Delete deletes a holiday
func (r *HolidayRepository) Delete(id string) error {
	query := `DELETE FROM holidays WHERE id = $1`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("error deleting holiday: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %v", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("no holiday found with id %s", id)
	}

	return nil
}
