package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shiftline/shiftline/internal/models"
	"github.com/shiftline/shiftline/internal/repositories"
)

type EmployeeService struct {
	employeeRepo *repositories.EmployeeRepository
}

func NewEmployeeService(employeeRepo *repositories.EmployeeRepository) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
	}
}

// CreateEmployee creates a new employee
func (s *EmployeeService) CreateEmployee(name, email string, groupID *string) (*models.Employee, error) {
	if name == "" {
		return nil, errors.New("employee name is required")
	}
	if groupID != nil {
		if _, err := uuid.Parse(*groupID); err != nil {
			return nil, errors.New("invalid group ID format")
		}
	}

	employee := models.NewEmployee(name, email, groupID)
	if err := s.employeeRepo.Create(employee); err != nil {
		return nil, err
	}

	return employee, nil
}

// GetEmployee retrieves an employee by ID
func (s *EmployeeService) GetEmployee(id string) (*models.Employee, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.New("invalid employee ID format")
	}
	return s.employeeRepo.GetByID(id)
}

// ListEmployees retrieves all employees
func (s *EmployeeService) ListEmployees() ([]*models.Employee, error) {
	return s.employeeRepo.List()
}

// ListByGroup retrieves employees belonging to a group
func (s *EmployeeService) ListByGroup(groupID string) ([]*models.Employee, error) {
	if _, err := uuid.Parse(groupID); err != nil {
		return nil, errors.New("invalid group ID format")
	}
	return s.employeeRepo.ListByGroup(groupID)
}

// UpdateEmployee updates an employee
func (s *EmployeeService) UpdateEmployee(employee *models.Employee) error {
	if _, err := uuid.Parse(employee.ID); err != nil {
		return errors.New("invalid employee ID format")
	}
	if employee.Name == "" {
		return errors.New("employee name is required")
	}
	return s.employeeRepo.Update(employee)
}

// DeleteEmployee deletes an employee
func (s *EmployeeService) DeleteEmployee(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.New("invalid employee ID format")
	}
	return s.employeeRepo.Delete(id)
}
