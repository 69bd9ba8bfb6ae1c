package queue

import (
	"context"
	"strconv"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/empresacafe/coffee-registry/internal/core/ports"
)

type recordingAuditService struct {
	mu     sync.Mutex
	events []ports.AuthEventInput
}

func (s *recordingAuditService) Record(_ context.Context, event ports.AuthEventInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *recordingAuditService) byUser(username string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var reasons []string
	for _, e := range s.events {
		if e.Username == username {
			reasons = append(reasons, e.Reason)
		}
	}
	return reasons
}

func TestDispatcher_DeliversAllEvents(t *testing.T) {
	svc := &recordingAuditService{}
	d := NewDispatcher(4, svc, zerolog.Nop())
	d.Start(context.Background())

	const perUser = 20
	for i := 0; i < perUser; i++ {
		for _, username := range []string{"alice", "bob", "carol"} {
			d.Enqueue(ports.AuthEventInput{Username: username, Reason: strconv.Itoa(i)})
		}
	}
	d.Stop()

	svc.mu.Lock()
	total := len(svc.events)
	svc.mu.Unlock()
	if total != 3*perUser {
		t.Fatalf("expected %d events, got %d", 3*perUser, total)
	}
}

// Events for one username always land on the same worker, so their relative
// order survives the fan-out.
func TestDispatcher_PerUserOrdering(t *testing.T) {
	svc := &recordingAuditService{}
	d := NewDispatcher(4, svc, zerolog.Nop())
	d.Start(context.Background())

	const n = 50
	for i := 0; i < n; i++ {
		d.Enqueue(ports.AuthEventInput{Username: "alice", Reason: strconv.Itoa(i)})
	}
	d.Stop()

	reasons := svc.byUser("alice")
	if len(reasons) != n {
		t.Fatalf("expected %d events for alice, got %d", n, len(reasons))
	}
	for i, r := range reasons {
		if r != strconv.Itoa(i) {
			t.Fatalf("ordering broken at index %d: got %s", i, r)
		}
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &recordingAuditService{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
