package service

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/crypto/bcrypt"

	"github.com/empresacafe/coffee-registry/internal/core/domain"
)

const (
	totpPeriod     = 30 // seconds per time step
	totpSecretSize = 20 // bytes of entropy behind each secret
	totpSkew       = 1  // accepted drift, in steps, either side of now

	qrPixels = 256
)

// ProvisionedSecret is the output of secret provisioning: the base32 shared
// secret as stored, and the otpauth:// URI handed to authenticator apps.
type ProvisionedSecret struct {
	Secret string
	URL    string
}

// TwoFactor provisions and verifies TOTP second factors.
type TwoFactor struct {
	issuer string
}

func NewTwoFactor(issuer string) *TwoFactor {
	return &TwoFactor{issuer: issuer}
}

// GenerateSecret produces a fresh secret for account. Each call draws
// totpSecretSize bytes from crypto/rand; secrets are never reused.
func (t *TwoFactor) GenerateSecret(account string) (*ProvisionedSecret, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      t.issuer,
		AccountName: account,
		SecretSize:  totpSecretSize,
		Period:      totpPeriod,
		Digits:      otp.DigitsSix,
	})
	if err != nil {
		return nil, fmt.Errorf("generate totp secret: %w", err)
	}
	return &ProvisionedSecret{Secret: key.Secret(), URL: key.URL()}, nil
}

// EnrollmentQR renders a provisioning URI as a scannable PNG wrapped in a
// data URI. A rendering failure maps to domain.ErrEncoding.
func (t *TwoFactor) EnrollmentQR(uri string) (string, error) {
	png, err := qrcode.Encode(uri, qrcode.Medium, qrPixels)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrEncoding, err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// VerifyCode checks a 6-digit code against secret at now, accepting the
// current step plus totpSkew steps either side. On success it returns the
// matched time step so the caller can reject replays of the same code.
func (t *TwoFactor) VerifyCode(code, secret string, now time.Time) (bool, uint64) {
	for _, offset := range []int{0, -1, 1} {
		at := now.Add(time.Duration(offset*totpPeriod) * time.Second)
		ok, err := totp.ValidateCustom(code, secret, at, totp.ValidateOpts{
			Period:    totpPeriod,
			Skew:      0,
			Digits:    otp.DigitsSix,
			Algorithm: otp.AlgorithmSHA1,
		})
		if err == nil && ok {
			return true, uint64(at.Unix()) / totpPeriod
		}
	}
	return false, 0
}

// HashPassword derives the salted one-way hash stored at registration.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compares plaintext against a stored bcrypt hash. The
// comparison is constant time. A mismatch returns (false, nil); only an
// unparseable stored hash yields an error, mapped to ErrCorruptCredential.
func VerifyPassword(plaintext, storedHash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", domain.ErrCorruptCredential, err)
	}
}
