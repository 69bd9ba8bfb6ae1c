package ports

import (
	"context"

	"github.com/empresacafe/coffee-registry/internal/core/domain"
)

// ApplicantInput carries the writable fields of an applicant record.
// PrecioTotal is always recomputed server-side from Peso and Precio.
type ApplicantInput struct {
	Nombre          string
	Identificacion  string
	TipoCafe        string
	Peso            float64
	Precio          float64
	Telefono        string
	Estado          string
	EstadoMonetario string
}

// ApplicantRepository defines persistence operations for applicants.
type ApplicantRepository interface {
	Insert(ctx context.Context, a *domain.Applicant) (*domain.Applicant, error)
	FindByID(ctx context.Context, id string) (*domain.Applicant, error)
	FindAll(ctx context.Context) ([]*domain.Applicant, error)
	Update(ctx context.Context, id string, a *domain.Applicant) (*domain.Applicant, error)
	Delete(ctx context.Context, id string) error
}

// ApplicantService defines use-case operations for applicants.
type ApplicantService interface {
	Create(ctx context.Context, in ApplicantInput) (*domain.Applicant, error)
	Get(ctx context.Context, id string) (*domain.Applicant, error)
	List(ctx context.Context) ([]*domain.Applicant, error)
	Update(ctx context.Context, id string, in ApplicantInput) (*domain.Applicant, error)
	Delete(ctx context.Context, id string) error
}
