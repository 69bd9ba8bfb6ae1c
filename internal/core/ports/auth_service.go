package ports

import (
	"context"
	"time"
)

// RegisterResult is returned to a freshly enrolled user. QRCodeURL is a
// data:image/png;base64 URI wrapping the otpauth provisioning URI; it is the
// only time the TOTP secret leaves the server.
type RegisterResult struct {
	Token     string
	QRCodeURL string
}

// AuthService defines the registration and login use cases.
type AuthService interface {
	// Register creates a user with a fresh TOTP secret and returns a signed
	// token plus the enrollment artifact. Fails with domain.ErrUserExists on
	// a duplicate username.
	Register(ctx context.Context, username, password, remoteIP string) (*RegisterResult, error)

	// Login verifies password and TOTP code. Every failure cause (unknown
	// user, bad password, bad or replayed code) collapses to
	// domain.ErrUnauthorized.
	Login(ctx context.Context, username, password, totpCode, remoteIP string) (string, error)
}

// TokenClaims is the identity carried by a verified bearer token. Role is
// deliberately absent: authorization re-resolves it from the CredentialStore.
type TokenClaims struct {
	UserID   string
	Username string
}

// TokenVerifier is the single decision point every protected route depends
// on. Implementations return domain.ErrInvalidToken for malformed, tampered
// or expired tokens and never panic.
type TokenVerifier interface {
	Verify(token string, now time.Time) (*TokenClaims, error)
}
