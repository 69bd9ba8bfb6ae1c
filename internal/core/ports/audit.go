package ports

import (
	"context"
	"time"

	"github.com/empresacafe/coffee-registry/internal/core/domain"
)

// AuthEventInput carries one authentication attempt into the audit pipeline.
type AuthEventInput struct {
	Action   string
	Username string
	Result   string
	Reason   string
	RemoteIP string
	At       time.Time
}

// AuditSink accepts audit events for asynchronous delivery. Enqueue must not
// block the request path beyond channel buffering.
type AuditSink interface {
	Enqueue(event AuthEventInput)
}

// AuditService persists audit events dequeued by the dispatcher workers.
type AuditService interface {
	Record(ctx context.Context, event AuthEventInput) error
}

// AuditRepository defines persistence for the auth audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuthEvent) error
}
