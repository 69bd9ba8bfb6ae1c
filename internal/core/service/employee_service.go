package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/empresacafe/coffee-registry/internal/core/domain"
	"github.com/empresacafe/coffee-registry/internal/core/ports"
)

type EmployeeService struct {
	repo ports.EmployeeRepository
	log  zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, log zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, log: log}
}

func (s *EmployeeService) Create(ctx context.Context, in ports.EmployeeInput) (*domain.Employee, error) {
	employee := &domain.Employee{
		Nombre:          in.Nombre,
		Identificacion:  in.Identificacion,
		TipoCafe:        in.TipoCafe,
		Peso:            in.Peso,
		Precio:          in.Precio,
		Telefono:        in.Telefono,
		Estado:          in.Estado,
		EstadoMonetario: in.EstadoMonetario,
		CreatedAt:       time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, employee)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create employee")
		return nil, err
	}

	s.log.Info().Str("employee_id", created.ID).Msg("employee created")
	return created, nil
}

func (s *EmployeeService) Get(ctx context.Context, id string) (*domain.Employee, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EmployeeService) List(ctx context.Context) ([]*domain.Employee, error) {
	return s.repo.FindAll(ctx)
}

func (s *EmployeeService) Update(ctx context.Context, id string, in ports.EmployeeInput) (*domain.Employee, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Nombre = in.Nombre
	existing.Identificacion = in.Identificacion
	existing.TipoCafe = in.TipoCafe
	existing.Peso = in.Peso
	existing.Precio = in.Precio
	existing.Telefono = in.Telefono
	existing.Estado = in.Estado
	existing.EstadoMonetario = in.EstadoMonetario

	return s.repo.Update(ctx, id, existing)
}

func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("employee_id", id).Msg("employee deleted")
	return nil
}
