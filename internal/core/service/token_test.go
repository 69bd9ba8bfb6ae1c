package service

import (
	"errors"
	"testing"
	"time"

	"github.com/empresacafe/coffee-registry/internal/core/domain"
)

func TestTokenIssuer_IssueAndVerify(t *testing.T) {
	issuer, err := NewTokenIssuer("signing-key", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenIssuer returned error: %v", err)
	}

	user := &domain.User{ID: "user-1", Username: "alice", Role: domain.RoleEmpleado}
	token, err := issuer.Issue(user)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	claims, err := issuer.Verify(token, time.Now().UTC())
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("unexpected user id: %s", claims.UserID)
	}
	if claims.Username != "alice" {
		t.Fatalf("unexpected username: %s", claims.Username)
	}
}

func TestTokenIssuer_Expiry(t *testing.T) {
	issuer, err := NewTokenIssuer("signing-key", time.Minute)
	if err != nil {
		t.Fatalf("NewTokenIssuer returned error: %v", err)
	}

	token, err := issuer.Issue(&domain.User{ID: "user-1", Username: "alice"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := issuer.Verify(token, time.Now().UTC().Add(30*time.Second)); err != nil {
		t.Fatalf("token should still be valid inside ttl: %v", err)
	}
	if _, err := issuer.Verify(token, time.Now().UTC().Add(2*time.Minute)); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken after expiry, got %v", err)
	}
}

func TestTokenIssuer_WrongKey(t *testing.T) {
	issuer, _ := NewTokenIssuer("signing-key", time.Hour)
	other, _ := NewTokenIssuer("different-key", time.Hour)

	token, err := issuer.Issue(&domain.User{ID: "user-1", Username: "alice"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := other.Verify(token, time.Now().UTC()); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong key, got %v", err)
	}
}

func TestTokenIssuer_Malformed(t *testing.T) {
	issuer, _ := NewTokenIssuer("signing-key", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := issuer.Verify(token, time.Now().UTC()); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", token, err)
		}
	}
}

func TestTokenIssuer_EmptyKey(t *testing.T) {
	if _, err := NewTokenIssuer("", time.Hour); !errors.Is(err, domain.ErrSigningKey) {
		t.Fatalf("expected ErrSigningKey, got %v", err)
	}
}

func TestTokenIssuer_DefaultTTL(t *testing.T) {
	issuer, err := NewTokenIssuer("signing-key", 0)
	if err != nil {
		t.Fatalf("NewTokenIssuer returned error: %v", err)
	}
	if issuer.TTL() != defaultTokenTTL {
		t.Fatalf("expected default ttl %v, got %v", defaultTokenTTL, issuer.TTL())
	}
}
