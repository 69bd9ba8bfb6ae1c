package domain

import "errors"

// Sentinel errors shared across layers. The API error handler maps each of
// these to a deterministic HTTP status; anything else becomes a 500.
var (
	// ErrUserExists signals a duplicate username at registration (409).
	ErrUserExists = errors.New("user already exists")

	// ErrUserNotFound is internal only. Login collapses it into
	// ErrUnauthorized so callers cannot enumerate usernames.
	ErrUserNotFound = errors.New("user not found")

	// ErrValidation signals missing or malformed client input (400).
	ErrValidation = errors.New("invalid input")

	// ErrUnauthorized covers every authentication failure: unknown user,
	// bad password, bad or replayed TOTP code (401).
	ErrUnauthorized = errors.New("invalid credentials")

	// ErrForbidden means the caller is authenticated but its role is not in
	// the route's allow-list (403).
	ErrForbidden = errors.New("access forbidden")

	// ErrInvalidToken covers malformed, tampered or expired bearer tokens.
	ErrInvalidToken = errors.New("invalid token")

	// ErrCorruptCredential means a stored password hash could not be parsed.
	// Server-side data corruption, fatal for the request (500).
	ErrCorruptCredential = errors.New("stored credential is corrupt")

	// ErrSigningKey means the token signing key is misconfigured (500).
	ErrSigningKey = errors.New("token signing key misconfigured")

	// ErrEncoding means the enrollment QR artifact could not be rendered (500).
	ErrEncoding = errors.New("enrollment artifact encoding failed")

	ErrApplicantNotFound  = errors.New("applicant not found")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrDepartmentNotFound = errors.New("department not found")
)
