package ports

import (
	"context"

	"github.com/empresacafe/coffee-registry/internal/core/domain"
)

// DepartmentInput carries the writable fields of a department.
type DepartmentInput struct {
	Nombre      string
	Descripcion string
}

// DepartmentRepository defines persistence operations for departments.
type DepartmentRepository interface {
	Insert(ctx context.Context, d *domain.Department) (*domain.Department, error)
	FindByID(ctx context.Context, id string) (*domain.Department, error)
	FindAll(ctx context.Context) ([]*domain.Department, error)
	Update(ctx context.Context, id string, d *domain.Department) (*domain.Department, error)
	Delete(ctx context.Context, id string) error
	// AddEmployee appends an employee to the department roster (idempotent).
	AddEmployee(ctx context.Context, id, employeeID string) error
}

// DepartmentService defines use-case operations for departments.
type DepartmentService interface {
	Create(ctx context.Context, in DepartmentInput) (*domain.Department, error)
	Get(ctx context.Context, id string) (*domain.Department, error)
	List(ctx context.Context) ([]*domain.Department, error)
	Update(ctx context.Context, id string, in DepartmentInput) (*domain.Department, error)
	Delete(ctx context.Context, id string) error
	// Assign places an employee in a department, updating both sides.
	Assign(ctx context.Context, departmentID, employeeID string) error
}
