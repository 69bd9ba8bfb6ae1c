package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/empresacafe/coffee-registry/internal/api/metrics"
	"github.com/empresacafe/coffee-registry/internal/core/domain"
	"github.com/empresacafe/coffee-registry/internal/core/ports"
)

// ReplayGuard tracks the TOTP time steps already accepted per user so a
// captured code cannot be replayed within its validity window.
type ReplayGuard interface {
	Seen(ctx context.Context, userID string, step uint64) (bool, error)
	Mark(ctx context.Context, userID string, step uint64) error
}

// AuthService implements registration and login on top of the credential
// store, the two-factor provisioner/verifier and the token issuer.
type AuthService struct {
	store     ports.CredentialStore
	issuer    *TokenIssuer
	twoFactor *TwoFactor
	replay    ReplayGuard
	audit     ports.AuditSink
	log       zerolog.Logger
}

func NewAuthService(
	store ports.CredentialStore,
	issuer *TokenIssuer,
	twoFactor *TwoFactor,
	replay ReplayGuard,
	audit ports.AuditSink,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		store:     store,
		issuer:    issuer,
		twoFactor: twoFactor,
		replay:    replay,
		audit:     audit,
		log:       log,
	}
}

// Register creates a user with an explicit default role, provisions a TOTP
// secret and returns a signed token plus the enrollment QR. Steps run
// sequentially; when persistence fails nothing is returned to the caller.
func (s *AuthService) Register(ctx context.Context, username, password, remoteIP string) (*ports.RegisterResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrValidation
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	secret, err := s.twoFactor.GenerateSecret(username)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		TOTPSecret:   secret.Secret,
		Role:         domain.RoleEmpleado,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.store.Insert(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			s.record(domain.AuthActionRegister, username, domain.AuthResultConflict, "duplicate_username", remoteIP)
		}
		return nil, err
	}

	qr, err := s.twoFactor.EnrollmentQR(secret.URL)
	if err != nil {
		s.log.Error().Err(err).Str("username", username).Msg("enrollment artifact rendering failed")
		return nil, err
	}

	token, err := s.issuer.Issue(created)
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.Inc()
	s.record(domain.AuthActionRegister, username, domain.AuthResultSuccess, "", remoteIP)
	s.log.Info().Str("username", username).Str("user_id", created.ID).Msg("user registered")

	return &ports.RegisterResult{Token: token, QRCodeURL: qr}, nil
}

// Login verifies both proofs and mints a token. Unknown user, bad password,
// bad code and replayed code all collapse to domain.ErrUnauthorized; the
// audit trail keeps the real reason.
func (s *AuthService) Login(ctx context.Context, username, password, totpCode, remoteIP string) (string, error) {
	if username == "" || password == "" || totpCode == "" {
		return "", s.reject(username, "missing_fields", remoteIP)
	}

	user, err := s.store.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", s.reject(username, "unknown_user", remoteIP)
		}
		return "", fmt.Errorf("login: %w", err)
	}

	ok, err := VerifyPassword(password, user.PasswordHash)
	if err != nil {
		// unparseable stored hash, surfaces as a 500
		return "", err
	}
	if !ok {
		return "", s.reject(username, "bad_password", remoteIP)
	}

	valid, step := s.twoFactor.VerifyCode(totpCode, user.TOTPSecret, time.Now().UTC())
	if !valid {
		return "", s.reject(username, "bad_totp_code", remoteIP)
	}

	if s.replay != nil {
		seen, err := s.replay.Seen(ctx, user.ID, step)
		if err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("replay check failed, accepting code")
		} else if seen {
			metrics.TOTPReplayRejectedTotal.Inc()
			return "", s.reject(username, "replayed_code", remoteIP)
		} else if markErr := s.replay.Mark(ctx, user.ID, step); markErr != nil {
			s.log.Warn().Err(markErr).Str("username", username).Msg("failed to record totp step")
		}
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.record(domain.AuthActionLogin, username, domain.AuthResultSuccess, "", remoteIP)
	s.log.Info().Str("username", username).Msg("login succeeded")

	return token, nil
}

func (s *AuthService) reject(username, reason, remoteIP string) error {
	metrics.LoginsTotal.WithLabelValues("unauthorized").Inc()
	s.record(domain.AuthActionLogin, username, domain.AuthResultUnauthorized, reason, remoteIP)
	s.log.Info().Str("username", username).Str("reason", reason).Msg("login rejected")
	return domain.ErrUnauthorized
}

func (s *AuthService) record(action, username, result, reason, remoteIP string) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(ports.AuthEventInput{
		Action:   action,
		Username: username,
		Result:   result,
		Reason:   reason,
		RemoteIP: remoteIP,
		At:       time.Now().UTC(),
	})
}
