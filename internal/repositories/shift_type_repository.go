package repositories

import (
	"database/sql"
	"fmt"

	"github.com/shiftline/shiftline/internal/models"
)

type ShiftTypeRepository struct {
	db *sql.DB
}

func NewShiftTypeRepository(db *sql.DB) *ShiftTypeRepository {
	return &ShiftTypeRepository{db: db}
}

// Create creates a new shift type
func (r *ShiftTypeRepository) Create(shiftType *models.ShiftType) error {
	query := `
		INSERT INTO shift_types (
			id, group_id, name, start_time, end_time, min_employees, max_employees, color
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(query,
		shiftType.ID, shiftType.GroupID, shiftType.Name, shiftType.StartTime, shiftType.EndTime,
		shiftType.MinEmployees, shiftType.MaxEmployees, shiftType.Color,
	)
	if err != nil {
		return fmt.Errorf("error creating shift type: %v", err)
	}

	return nil
}

// GetByID retrieves a shift type by ID
func (r *ShiftTypeRepository) GetByID(id string) (*models.ShiftType, error) {
	query := `
		SELECT id, group_id, name, start_time, end_time, min_employees, max_employees, color,
		       created_at, updated_at
		FROM shift_types WHERE id = $1
	`

	var shiftType models.ShiftType
	err := r.db.QueryRow(query, id).Scan(
		&shiftType.ID, &shiftType.GroupID, &shiftType.Name, &shiftType.StartTime, &shiftType.EndTime,
		&shiftType.MinEmployees, &shiftType.MaxEmployees, &shiftType.Color,
		&shiftType.CreatedAt, &shiftType.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting shift type: %v", err)
	}

	return &shiftType, nil
}

// ListByGroup retrieves all shift types for a group, including ungrouped ones
func (r *ShiftTypeRepository) ListByGroup(groupID string) ([]*models.ShiftType, error) {
	query := `
		SELECT id, group_id, name, start_time, end_time, min_employees, max_employees, color,
		       created_at, updated_at
		FROM shift_types
		WHERE group_id = $1 OR group_id IS NULL
		ORDER BY start_time, name
	`

	rows, err := r.db.Query(query, groupID)
	if err != nil {
		return nil, fmt.Errorf("error listing shift types: %v", err)
	}
	defer rows.Close()

	var shiftTypes []*models.ShiftType
	for rows.Next() {
		var shiftType models.ShiftType
		if err := rows.Scan(
			&shiftType.ID, &shiftType.GroupID, &shiftType.Name, &shiftType.StartTime, &shiftType.EndTime,
			&shiftType.MinEmployees, &shiftType.MaxEmployees, &shiftType.Color,
			&shiftType.CreatedAt, &shiftType.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning shift type: %v", err)
		}
		shiftTypes = append(shiftTypes, &shiftType)
	}

	return shiftTypes, rows.Err()
}

// Update updates a shift type
func (r *ShiftTypeRepository) Update(shiftType *models.ShiftType) error {
	query := `
		UPDATE shift_types
		SET name = $1, start_time = $2, end_time = $3, min_employees = $4, max_employees = $5,
		    color = $6, updated_at = CURRENT_TIMESTAMP
		WHERE id = $7
	`

	result, err := r.db.Exec(query,
		shiftType.Name, shiftType.StartTime, shiftType.EndTime,
		shiftType.MinEmployees, shiftType.MaxEmployees, shiftType.Color, shiftType.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating shift type: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %v", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("no shift type found with id %s", shiftType.ID)
	}

	return nil
}

// Delete deletes a shift type
func (r *ShiftTypeRepository) Delete(id string) error {
	query := `DELETE FROM shift_types WHERE id = $1`

	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("error deleting shift type: %v", err)
	}

	return nil
}
