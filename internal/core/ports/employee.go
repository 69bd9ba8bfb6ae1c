package ports

import (
	"context"

	"github.com/empresacafe/coffee-registry/internal/core/domain"
)

// EmployeeInput carries the writable fields of an employee record.
type EmployeeInput struct {
	Nombre          string
	Identificacion  string
	TipoCafe        string
	Peso            float64
	Precio          float64
	Telefono        string
	Estado          string
	EstadoMonetario string
}

// EmployeeRepository defines persistence operations for employees.
type EmployeeRepository interface {
	Insert(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	FindByID(ctx context.Context, id string) (*domain.Employee, error)
	FindAll(ctx context.Context) ([]*domain.Employee, error)
	Update(ctx context.Context, id string, e *domain.Employee) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
	// SetDepartment records the department an employee is assigned to.
	SetDepartment(ctx context.Context, id, departmentID string) error
}

// EmployeeService defines use-case operations for employees.
type EmployeeService interface {
	Create(ctx context.Context, in EmployeeInput) (*domain.Employee, error)
	Get(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context) ([]*domain.Employee, error)
	Update(ctx context.Context, id string, in EmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
}
