package repositories

import (
	"database/sql"
	"fmt"

	"github.com/shiftline/shiftline/internal/models"
)

type EmployeeRepository struct {
	db *sql.DB
}

func NewEmployeeRepository(db *sql.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create creates a new employee
func (r *EmployeeRepository) Create(employee *models.Employee) error {
	query := `INSERT INTO employees (id, group_id, name, email) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(query, employee.ID, employee.GroupID, employee.Name, employee.Email)
	if err != nil {
		return fmt.Errorf("error creating employee: %v", err)
	}

	return nil
}

// GetByID retrieves an employee by ID
func (r *EmployeeRepository) GetByID(id string) (*models.Employee, error) {
	query := `
		SELECT id, group_id, name, email, created_at, updated_at
		FROM employees WHERE id = $1
	`

	var employee models.Employee
	err := r.db.QueryRow(query, id).Scan(
		&employee.ID, &employee.GroupID, &employee.Name, &employee.Email,
		&employee.CreatedAt, &employee.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting employee: %v", err)
	}

	return &employee, nil
}

// ListByGroup retrieves all employees in a group
func (r *EmployeeRepository) ListByGroup(groupID string) ([]*models.Employee, error) {
	query := `
		SELECT id, group_id, name, email, created_at, updated_at
		FROM employees WHERE group_id = $1 ORDER BY name
	`
	return r.list(query, groupID)
}

// List retrieves all employees
func (r *EmployeeRepository) List() ([]*models.Employee, error) {
	query := `
		SELECT id, group_id, name, email, created_at, updated_at
		FROM employees ORDER BY name
	`
	return r.list(query)
}

func (r *EmployeeRepository) list(query string, args ...interface{}) ([]*models.Employee, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing employees: %v", err)
	}
	defer rows.Close()

	var employees []*models.Employee
	for rows.Next() {
		var employee models.Employee
		if err := rows.Scan(
			&employee.ID, &employee.GroupID, &employee.Name, &employee.Email,
			&employee.CreatedAt, &employee.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning employee: %v", err)
		}
		employees = append(employees, &employee)
	}

	return employees, rows.Err()
}

// Update updates an employee
func (r *EmployeeRepository) Update(employee *models.Employee) error {
	query := `
		UPDATE employees
		SET group_id = $1, name = $2, email = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4
	`

	result, err := r.db.Exec(query, employee.GroupID, employee.Name, employee.Email, employee.ID)
	if err != nil {
		return fmt.Errorf("error updating employee: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %v", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("no employee found with id %s", employee.ID)
	}

	return nil
}

// Delete deletes an employee
func (r *EmployeeRepository) Delete(id string) error {
	query := `DELETE FROM employees WHERE id = $1`

	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("error deleting employee: %v", err)
	}

	return nil
}
