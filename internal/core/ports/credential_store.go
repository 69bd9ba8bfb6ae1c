package ports

import (
	"context"

	"github.com/empresacafe/coffee-registry/internal/core/domain"
)

// CredentialStore persists one record per user.
//
// Insert must enforce the username uniqueness invariant atomically: when two
// registrations race on the same username, exactly one succeeds and the other
// observes domain.ErrUserExists.
type CredentialStore interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
}
