package repositories

import (
	"database/sql"
	"fmt"

	"github.com/shiftline/shiftline/internal/models"
)

type GroupRepository struct {
	db *sql.DB
}

func NewGroupRepository(db *sql.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// Create creates a new group
func (r *GroupRepository) Create(group *models.Group) error {
	query := `INSERT INTO groups (id, name) VALUES ($1, $2)`

	_, err := r.db.Exec(query, group.ID, group.Name)
	if err != nil {
		return fmt.Errorf("error creating group: %v", err)
	}

	return nil
}

// GetByID retrieves a group by its ID
func (r *GroupRepository) GetByID(id string) (*models.Group, error) {
	query := `SELECT id, name, created_at, updated_at FROM groups WHERE id = $1`

	var group models.Group
	err := r.db.QueryRow(query, id).Scan(&group.ID, &group.Name, &group.CreatedAt, &group.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting group: %v", err)
	}

	return &group, nil
}

// List retrieves all groups
func (r *GroupRepository) List() ([]*models.Group, error) {
	query := `SELECT id, name, created_at, updated_at FROM groups ORDER BY name`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error listing groups: %v", err)
	}
	defer rows.Close()

	var groups []*models.Group
	for rows.Next() {
		var group models.Group
		if err := rows.Scan(&group.ID, &group.Name, &group.CreatedAt, &group.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning group: %v", err)
		}
		groups = append(groups, &group)
	}

	return groups, rows.Err()
}

// Update updates a group's name
func (r *GroupRepository) Update(group *models.Group) error {
	query := `UPDATE groups SET name = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`

	result, err := r.db.Exec(query, group.Name, group.ID)
	if err != nil {
		return fmt.Errorf("error updating group: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %v", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("no group found with id %s", group.ID)
	}

	return nil
}

// Delete deletes a group
func (r *GroupRepository) Delete(id string) error {
	query := `DELETE FROM groups WHERE id = $1`

	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("error deleting group: %v", err)
	}

	return nil
}
