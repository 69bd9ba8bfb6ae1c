package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/empresacafe/coffee-registry/internal/api/metrics"
	"github.com/empresacafe/coffee-registry/internal/core/domain"
	"github.com/empresacafe/coffee-registry/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns the AuditService implementation that persists
// authentication events dequeued by the dispatcher workers.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Record(ctx context.Context, in ports.AuthEventInput) error {
	event := &domain.AuthEvent{
		Action:   in.Action,
		Username: in.Username,
		Result:   in.Result,
		Reason:   in.Reason,
		RemoteIP: in.RemoteIP,
		At:       in.At,
	}

	if err := s.repo.Insert(ctx, event); err != nil {
		return fmt.Errorf("record auth event: %w", err)
	}

	metrics.AuditEventsTotal.WithLabelValues(in.Action, in.Result).Inc()
	return nil
}
