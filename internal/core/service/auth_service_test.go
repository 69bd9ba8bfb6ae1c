package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/empresacafe/coffee-registry/internal/core/domain"
	"github.com/empresacafe/coffee-registry/internal/core/ports"
)

type stubCredentialStore struct {
	mu    sync.Mutex
	users map[string]*domain.User
	next  int
}

func newStubCredentialStore() *stubCredentialStore {
	return &stubCredentialStore{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubCredentialStore) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	r.next++
	copy.ID = "user-" + strconv.Itoa(r.next)
	r.users[copy.Username] = cloneUser(copy)
	return copy, nil
}

func (r *stubCredentialStore) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[username]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubCredentialStore) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type stubReplayGuard struct {
	mu    sync.Mutex
	steps map[string]bool
	fail  error
}

func newStubReplayGuard() *stubReplayGuard {
	return &stubReplayGuard{steps: make(map[string]bool)}
}

func (g *stubReplayGuard) key(userID string, step uint64) string {
	return userID + ":" + strconv.FormatUint(step, 10)
}

func (g *stubReplayGuard) Seen(_ context.Context, userID string, step uint64) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.fail != nil {
		return false, g.fail
	}
	return g.steps[g.key(userID, step)], nil
}

func (g *stubReplayGuard) Mark(_ context.Context, userID string, step uint64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.fail != nil {
		return g.fail
	}
	g.steps[g.key(userID, step)] = true
	return nil
}

type stubAuditSink struct {
	mu     sync.Mutex
	events []ports.AuthEventInput
}

func (s *stubAuditSink) Enqueue(event ports.AuthEventInput) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func (s *stubAuditSink) lastReason() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.events) == 0 {
		return ""
	}
	return s.events[len(s.events)-1].Reason
}

func newTestAuthService(t *testing.T) (*AuthService, *stubCredentialStore, *stubReplayGuard, *stubAuditSink) {
	t.Helper()
	store := newStubCredentialStore()
	replay := newStubReplayGuard()
	audit := &stubAuditSink{}
	issuer, err := NewTokenIssuer("test-signing-key", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenIssuer returned error: %v", err)
	}
	svc := NewAuthService(store, issuer, NewTwoFactor("EmpresaCafe"), replay, audit, zerolog.Nop())
	return svc, store, replay, audit
}

func currentCode(t *testing.T, secret string) string {
	t.Helper()
	code, err := totp.GenerateCode(secret, time.Now().UTC())
	if err != nil {
		t.Fatalf("GenerateCode returned error: %v", err)
	}
	return code
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, store, _, _ := newTestAuthService(t)

	result, err := svc.Register(context.Background(), "alice", "s3cret-pass", "10.0.0.1")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token")
	}
	if !strings.HasPrefix(result.QRCodeURL, "data:image/png;base64,") {
		t.Fatalf("expected QR data URI, got %.40s", result.QRCodeURL)
	}

	user, err := store.FindByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if user.Role != domain.RoleEmpleado {
		t.Fatalf("expected default role %s, got %s", domain.RoleEmpleado, user.Role)
	}
	if user.TOTPSecret == "" {
		t.Fatalf("expected stored totp secret")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-pass")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t)

	if _, err := svc.Register(context.Background(), "", "pass", ""); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "", ""); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _, _, audit := newTestAuthService(t)

	if _, err := svc.Register(context.Background(), "bob", "s3cret-pass", ""); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "other-pass", ""); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if audit.lastReason() != "duplicate_username" {
		t.Fatalf("expected duplicate_username audit reason, got %q", audit.lastReason())
	}
}

func TestAuthService_Register_ConcurrentDuplicate(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t)

	const attempts = 8
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Register(context.Background(), "carol", "s3cret-pass", "")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, dup int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrUserExists):
			dup++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 1 || dup != attempts-1 {
		t.Fatalf("expected exactly one winner, got %d ok / %d dup", ok, dup)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, store, _, _ := newTestAuthService(t)

	if _, err := svc.Register(context.Background(), "dave", "s3cret-pass", ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	user, _ := store.FindByUsername(context.Background(), "dave")

	token, err := svc.Login(context.Background(), "dave", "s3cret-pass", currentCode(t, user.TOTPSecret), "10.0.0.1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims, err := svc.issuer.Verify(token, time.Now().UTC())
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Username != "dave" {
		t.Fatalf("unexpected username claim: %s", claims.Username)
	}
	if claims.UserID != user.ID {
		t.Fatalf("unexpected subject: %s", claims.UserID)
	}
}

func TestAuthService_Login_Rejections(t *testing.T) {
	svc, store, _, audit := newTestAuthService(t)

	if _, err := svc.Register(context.Background(), "erin", "s3cret-pass", ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	user, _ := store.FindByUsername(context.Background(), "erin")
	code := currentCode(t, user.TOTPSecret)

	cases := []struct {
		name     string
		username string
		password string
		code     string
		reason   string
	}{
		{"missing fields", "", "", "", "missing_fields"},
		{"unknown user", "ghost", "s3cret-pass", code, "unknown_user"},
		{"bad password", "erin", "wrong-pass", code, "bad_password"},
		{"bad code", "erin", "s3cret-pass", "000000", "bad_totp_code"},
	}
	for _, tc := range cases {
		if _, err := svc.Login(context.Background(), tc.username, tc.password, tc.code, ""); !errors.Is(err, domain.ErrUnauthorized) {
			t.Fatalf("%s: expected ErrUnauthorized, got %v", tc.name, err)
		}
		if audit.lastReason() != tc.reason {
			t.Fatalf("%s: expected audit reason %q, got %q", tc.name, tc.reason, audit.lastReason())
		}
	}
}

func TestAuthService_Login_ReplayedCode(t *testing.T) {
	svc, store, _, audit := newTestAuthService(t)

	if _, err := svc.Register(context.Background(), "frank", "s3cret-pass", ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	user, _ := store.FindByUsername(context.Background(), "frank")
	code := currentCode(t, user.TOTPSecret)

	if _, err := svc.Login(context.Background(), "frank", "s3cret-pass", code, ""); err != nil {
		t.Fatalf("first login failed: %v", err)
	}
	if _, err := svc.Login(context.Background(), "frank", "s3cret-pass", code, ""); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected replayed code to be rejected, got %v", err)
	}
	if audit.lastReason() != "replayed_code" {
		t.Fatalf("expected replayed_code audit reason, got %q", audit.lastReason())
	}
}

func TestAuthService_Login_ReplayGuardFailsOpen(t *testing.T) {
	svc, store, replay, _ := newTestAuthService(t)

	if _, err := svc.Register(context.Background(), "grace", "s3cret-pass", ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	user, _ := store.FindByUsername(context.Background(), "grace")
	replay.fail = errors.New("redis down")

	if _, err := svc.Login(context.Background(), "grace", "s3cret-pass", currentCode(t, user.TOTPSecret), ""); err != nil {
		t.Fatalf("expected login to succeed when replay guard is unavailable, got %v", err)
	}
}
