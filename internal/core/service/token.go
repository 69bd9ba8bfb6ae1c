package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/empresacafe/coffee-registry/internal/core/domain"
	"github.com/empresacafe/coffee-registry/internal/core/ports"
)

// defaultTokenTTL applies when no lifetime is configured. The upstream system
// shipped with a 5-second lifetime, which expires tokens before clients can
// use them; an hour is the operational default here.
const defaultTokenTTL = time.Hour

type tokenClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and verifies HS256-signed bearer tokens. Tokens carry
// only {id, username}; role is never embedded (see middleware.RBAC).
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer fails with domain.ErrSigningKey when the key is empty: a
// process without a signing key cannot serve authenticated traffic.
func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, domain.ErrSigningKey
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}, nil
}

// TTL returns the configured token lifetime.
func (i *TokenIssuer) TTL() time.Duration {
	return i.ttl
}

// Issue mints a token for user expiring at now + ttl.
func (i *TokenIssuer) Issue(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := tokenClaims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrSigningKey, err)
	}
	return signed, nil
}

// Verify checks signature integrity and expiry against now. Malformed
// tokens, bad signatures and expired tokens all return domain.ErrInvalidToken.
func (i *TokenIssuer) Verify(token string, now time.Time) (*ports.TokenClaims, error) {
	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims,
		func(t *jwt.Token) (interface{}, error) {
			if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return i.secret, nil
		},
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	if claims.Subject == "" || claims.Username == "" {
		return nil, domain.ErrInvalidToken
	}

	return &ports.TokenClaims{UserID: claims.Subject, Username: claims.Username}, nil
}
