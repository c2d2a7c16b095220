package repositories

import (
	"database/sql"
	"fmt"

	"github.com/shiftline/shiftline/internal/models"
)

type ScheduleRepository struct {
	db *sql.DB
}

func NewScheduleRepository(db *sql.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// Create creates a new schedule
func (r *ScheduleRepository) Create(schedule *models.Schedule) error {
	query := `
		INSERT INTO schedules (id, group_id, start_date, end_date, autorenewal, is_confirmed)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(query,
		schedule.ID, schedule.GroupID, schedule.StartDate, schedule.EndDate,
		schedule.Autorenewal, schedule.IsConfirmed,
	)
	if err != nil {
		return fmt.Errorf("error creating schedule: %v", err)
	}

	return nil
}

// GetByID retrieves a schedule by ID, without its shifts
func (r *ScheduleRepository) GetByID(id string) (*models.Schedule, error) {
	query := `
		SELECT id, group_id, start_date, end_date, autorenewal, is_confirmed, created_at, updated_at
		FROM schedules WHERE id = $1
	`

	var schedule models.Schedule
	err := r.db.QueryRow(query, id).Scan(
		&schedule.ID, &schedule.GroupID, &schedule.StartDate, &schedule.EndDate,
		&schedule.Autorenewal, &schedule.IsConfirmed, &schedule.CreatedAt, &schedule.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting schedule: %v", err)
	}

	return &schedule, nil
}

// GetForGroupPeriod retrieves the schedule for a group whose period
// overlaps [startDate, endDate], optionally only a confirmed one
func (r *ScheduleRepository) GetForGroupPeriod(groupID, startDate, endDate string, onlyConfirmed bool) (*models.Schedule, error) {
	query := `
		SELECT id, group_id, start_date, end_date, autorenewal, is_confirmed, created_at, updated_at
		FROM schedules
		WHERE group_id = $1 AND start_date <= $2 AND end_date >= $3
	`
	if onlyConfirmed {
		query += ` AND is_confirmed = 1`
	}
	query += ` ORDER BY start_date DESC LIMIT 1`

	var schedule models.Schedule
	err := r.db.QueryRow(query, groupID, endDate, startDate).Scan(
		&schedule.ID, &schedule.GroupID, &schedule.StartDate, &schedule.EndDate,
		&schedule.Autorenewal, &schedule.IsConfirmed, &schedule.CreatedAt, &schedule.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting schedule for group: %v", err)
	}

	return &schedule, nil
}

// Update updates a schedule's period and flags
func (r *ScheduleRepository) Update(schedule *models.Schedule) error {
	query := `
		UPDATE schedules
		SET start_date = $1, end_date = $2, autorenewal = $3, is_confirmed = $4,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $5
	`

	result, err := r.db.Exec(query,
		schedule.StartDate, schedule.EndDate, schedule.Autorenewal, schedule.IsConfirmed, schedule.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating schedule: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %v", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("no schedule found with id %s", schedule.ID)
	}

	return nil
}

// SetConfirmed flips the confirmation flag
func (r *ScheduleRepository) SetConfirmed(id string, confirmed bool) error {
	query := `UPDATE schedules SET is_confirmed = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`

	result, err := r.db.Exec(query, confirmed, id)
	if err != nil {
		return fmt.Errorf("error updating schedule confirmation: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %v", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("no schedule found with id %s", id)
	}

	return nil
}

// GetShifts retrieves all shifts of a schedule with their employees in order
func (r *ScheduleRepository) GetShifts(scheduleID string) ([]*models.Shift, error) {
	query := `
		SELECT id, schedule_id, shift_type_id, shift_type_name, date, start_time, end_time, color,
		       created_at, updated_at
		FROM shifts WHERE schedule_id = $1 ORDER BY date, start_time
	`

	rows, err := r.db.Query(query, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("error listing shifts: %v", err)
	}
	defer rows.Close()

	var shifts []*models.Shift
	byID := make(map[string]*models.Shift)
	for rows.Next() {
		var shift models.Shift
		if err := rows.Scan(
			&shift.ID, &shift.ScheduleID, &shift.ShiftTypeID, &shift.ShiftTypeName,
			&shift.Date, &shift.StartTime, &shift.EndTime, &shift.Color,
			&shift.CreatedAt, &shift.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning shift: %v", err)
		}
		shifts = append(shifts, &shift)
		byID[shift.ID] = &shift
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	memberQuery := `
		SELECT se.shift_id, se.employee_id, se.name, se.note
		FROM shift_employees se
		JOIN shifts s ON s.id = se.shift_id
		WHERE s.schedule_id = $1
		ORDER BY se.shift_id, se.position
	`

	memberRows, err := r.db.Query(memberQuery, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("error listing shift employees: %v", err)
	}
	defer memberRows.Close()

	for memberRows.Next() {
		var shiftID string
		var member models.ShiftEmployee
		if err := memberRows.Scan(&shiftID, &member.EmployeeID, &member.Name, &member.Note); err != nil {
			return nil, fmt.Errorf("error scanning shift employee: %v", err)
		}
		if shift, ok := byID[shiftID]; ok {
			shift.Employees = append(shift.Employees, member)
		}
	}

	return shifts, memberRows.Err()
}

// ReplaceShifts atomically replaces the shift set of a schedule
func (r *ScheduleRepository) ReplaceShifts(scheduleID string, shifts []*models.Shift) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %v", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM shifts WHERE schedule_id = $1`, scheduleID); err != nil {
		return fmt.Errorf("error clearing shifts: %v", err)
	}

	shiftQuery := `
		INSERT INTO shifts (id, schedule_id, shift_type_id, shift_type_name, date, start_time, end_time, color)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	memberQuery := `
		INSERT INTO shift_employees (shift_id, employee_id, name, note, position)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, shift := range shifts {
		if _, err := tx.Exec(shiftQuery,
			shift.ID, scheduleID, shift.ShiftTypeID, shift.ShiftTypeName,
			shift.Date, shift.StartTime, shift.EndTime, shift.Color,
		); err != nil {
			return fmt.Errorf("error inserting shift: %v", err)
		}

		for position, member := range shift.Employees {
			if _, err := tx.Exec(memberQuery,
				shift.ID, member.EmployeeID, member.Name, member.Note, position,
			); err != nil {
				return fmt.Errorf("error inserting shift employee: %v", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing shifts: %v", err)
	}

	return nil
}

// Delete deletes a schedule and its shifts
func (r *ScheduleRepository) Delete(id string) error {
	query := `DELETE FROM schedules WHERE id = $1`

	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("error deleting schedule: %v", err)
	}

	return nil
}
