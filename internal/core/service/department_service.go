package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/empresacafe/coffee-registry/internal/core/domain"
	"github.com/empresacafe/coffee-registry/internal/core/ports"
)

type DepartmentService struct {
	repo      ports.DepartmentRepository
	employees ports.EmployeeRepository
	log       zerolog.Logger
}

func NewDepartmentService(repo ports.DepartmentRepository, employees ports.EmployeeRepository, log zerolog.Logger) *DepartmentService {
	return &DepartmentService{repo: repo, employees: employees, log: log}
}

func (s *DepartmentService) Create(ctx context.Context, in ports.DepartmentInput) (*domain.Department, error) {
	department := &domain.Department{
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Empleados:   []string{},
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, department)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create department")
		return nil, err
	}

	s.log.Info().Str("department_id", created.ID).Str("nombre", created.Nombre).Msg("department created")
	return created, nil
}

func (s *DepartmentService) Get(ctx context.Context, id string) (*domain.Department, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *DepartmentService) List(ctx context.Context) ([]*domain.Department, error) {
	return s.repo.FindAll(ctx)
}

func (s *DepartmentService) Update(ctx context.Context, id string, in ports.DepartmentInput) (*domain.Department, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Nombre = in.Nombre
	existing.Descripcion = in.Descripcion

	return s.repo.Update(ctx, id, existing)
}

func (s *DepartmentService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Assign places an employee in a department. Both records must exist; the
// roster update and the employee back-reference are applied in sequence.
func (s *DepartmentService) Assign(ctx context.Context, departmentID, employeeID string) error {
	if _, err := s.repo.FindByID(ctx, departmentID); err != nil {
		return err
	}
	if _, err := s.employees.FindByID(ctx, employeeID); err != nil {
		return err
	}

	if err := s.repo.AddEmployee(ctx, departmentID, employeeID); err != nil {
		return fmt.Errorf("assign employee: %w", err)
	}
	if err := s.employees.SetDepartment(ctx, employeeID, departmentID); err != nil {
		return fmt.Errorf("assign employee: %w", err)
	}

	s.log.Info().Str("department_id", departmentID).Str("employee_id", employeeID).Msg("employee assigned")
	return nil
}
