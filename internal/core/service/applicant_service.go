package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/empresacafe/coffee-registry/internal/core/domain"
	"github.com/empresacafe/coffee-registry/internal/core/ports"
)

type ApplicantService struct {
	repo ports.ApplicantRepository
	log  zerolog.Logger
}

func NewApplicantService(repo ports.ApplicantRepository, log zerolog.Logger) *ApplicantService {
	return &ApplicantService{repo: repo, log: log}
}

// Create registers a new applicant. The lot total is always recomputed from
// peso × precio, never taken from the client.
func (s *ApplicantService) Create(ctx context.Context, in ports.ApplicantInput) (*domain.Applicant, error) {
	applicant := &domain.Applicant{
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
	applicant.PrecioTotal = applicant.TotalPrice()

	created, err := s.repo.Insert(ctx, applicant)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create applicant")
		return nil, err
	}

	s.log.Info().Str("applicant_id", created.ID).Str("tipo_cafe", created.TipoCafe).Msg("applicant created")
	return created, nil
}

func (s *ApplicantService) Get(ctx context.Context, id string) (*domain.Applicant, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ApplicantService) List(ctx context.Context) ([]*domain.Applicant, error) {
	return s.repo.FindAll(ctx)
}

func (s *ApplicantService) Update(ctx context.Context, id string, in ports.ApplicantInput) (*domain.Applicant, error) {
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
	existing.PrecioTotal = existing.TotalPrice()

	return s.repo.Update(ctx, id, existing)
}

func (s *ApplicantService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("applicant_id", id).Msg("applicant deleted")
	return nil
}
