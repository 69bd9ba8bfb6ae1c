package service

import (
	"encoding/base64"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"golang.org/x/crypto/bcrypt"

	"github.com/empresacafe/coffee-registry/internal/core/domain"
)

func TestTwoFactor_GenerateSecret(t *testing.T) {
	tf := NewTwoFactor("EmpresaCafe")

	first, err := tf.GenerateSecret("alice")
	if err != nil {
		t.Fatalf("GenerateSecret returned error: %v", err)
	}
	if first.Secret == "" {
		t.Fatalf("expected non-empty secret")
	}
	if !strings.HasPrefix(first.URL, "otpauth://totp/") {
		t.Fatalf("unexpected provisioning URI: %s", first.URL)
	}
	if !strings.Contains(first.URL, "EmpresaCafe") {
		t.Fatalf("issuer missing from URI: %s", first.URL)
	}
	if !strings.Contains(first.URL, "alice") {
		t.Fatalf("account missing from URI: %s", first.URL)
	}

	second, err := tf.GenerateSecret("alice")
	if err != nil {
		t.Fatalf("GenerateSecret returned error: %v", err)
	}
	if first.Secret == second.Secret {
		t.Fatalf("expected unique secrets per call")
	}
}

func TestTwoFactor_EnrollmentQR(t *testing.T) {
	tf := NewTwoFactor("EmpresaCafe")

	secret, err := tf.GenerateSecret("bob")
	if err != nil {
		t.Fatalf("GenerateSecret returned error: %v", err)
	}

	qr, err := tf.EnrollmentQR(secret.URL)
	if err != nil {
		t.Fatalf("EnrollmentQR returned error: %v", err)
	}

	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(qr, prefix) {
		t.Fatalf("expected data URI, got %.40s", qr)
	}
	png, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(qr, prefix))
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}
	if len(png) < 4 || png[1] != 'P' || png[2] != 'N' || png[3] != 'G' {
		t.Fatalf("payload is not a PNG")
	}
}

func TestTwoFactor_VerifyCode(t *testing.T) {
	tf := NewTwoFactor("EmpresaCafe")
	secret, err := tf.GenerateSecret("carol")
	if err != nil {
		t.Fatalf("GenerateSecret returned error: %v", err)
	}

	now := time.Now().UTC()

	code, err := totp.GenerateCode(secret.Secret, now)
	if err != nil {
		t.Fatalf("GenerateCode returned error: %v", err)
	}
	ok, step := tf.VerifyCode(code, secret.Secret, now)
	if !ok {
		t.Fatalf("expected current code to verify")
	}
	if step != uint64(now.Unix())/totpPeriod {
		t.Fatalf("unexpected step: got %d want %d", step, uint64(now.Unix())/totpPeriod)
	}

	// one step old still passes inside the skew window
	prev := now.Add(-totpPeriod * time.Second)
	prevCode, err := totp.GenerateCode(secret.Secret, prev)
	if err != nil {
		t.Fatalf("GenerateCode returned error: %v", err)
	}
	ok, step = tf.VerifyCode(prevCode, secret.Secret, now)
	if !ok {
		t.Fatalf("expected previous-step code to verify")
	}
	if step != uint64(prev.Unix())/totpPeriod {
		t.Fatalf("expected matched step to be the previous step")
	}

	// three steps old is outside the window
	stale := now.Add(-3 * totpPeriod * time.Second)
	staleCode, err := totp.GenerateCode(secret.Secret, stale)
	if err != nil {
		t.Fatalf("GenerateCode returned error: %v", err)
	}
	if ok, _ := tf.VerifyCode(staleCode, secret.Secret, now); ok {
		t.Fatalf("expected stale code to be rejected")
	}

	if ok, _ := tf.VerifyCode("000000", secret.Secret, now); ok {
		t.Fatalf("expected arbitrary code to be rejected")
	}
	if ok, _ := tf.VerifyCode("not-a-code", secret.Secret, now); ok {
		t.Fatalf("expected malformed code to be rejected")
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	for _, password := range []string{"s3cret-pass", "", "contraseña☕"} {
		hash, err := HashPassword(password)
		if err != nil {
			t.Fatalf("HashPassword(%q) returned error: %v", password, err)
		}
		if hash == password {
			t.Fatalf("expected hash to differ from plaintext")
		}

		ok, err := VerifyPassword(password, hash)
		if err != nil {
			t.Fatalf("VerifyPassword returned error: %v", err)
		}
		if !ok {
			t.Fatalf("expected password %q to verify against its own hash", password)
		}

		ok, err = VerifyPassword(password+"x", hash)
		if err != nil {
			t.Fatalf("VerifyPassword returned error on mismatch: %v", err)
		}
		if ok {
			t.Fatalf("expected wrong password to fail verification")
		}
	}
}

// randomPassword builds a password of the given length from a pool that
// includes ASCII, punctuation and multi-byte runes.
func randomPassword(rng *rand.Rand, length int) string {
	pool := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 !@#$%^&*()-_=+áéíóúñÑçü☕日本語€")
	runes := make([]rune, length)
	for i := range runes {
		runes[i] = pool[rng.Intn(len(pool))]
	}
	return string(runes)
}

func TestVerifyPassword_RandomizedSamples(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		// length 0 keeps the empty string in the sample set; 18 runes of up
		// to 4 bytes stays under bcrypt's 72-byte input limit
		password := randomPassword(rng, rng.Intn(19))

		// MinCost keeps a 100-sample run fast; the cost factor does not
		// change the match/mismatch property under test
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		if err != nil {
			t.Fatalf("sample %d: hash failed: %v", i, err)
		}

		ok, err := VerifyPassword(password, string(hash))
		if err != nil {
			t.Fatalf("sample %d: VerifyPassword returned error: %v", i, err)
		}
		if !ok {
			t.Fatalf("sample %d: password %q did not verify against its own hash", i, password)
		}

		ok, err = VerifyPassword(password+"☕x", string(hash))
		if err != nil {
			t.Fatalf("sample %d: VerifyPassword returned error on mutation: %v", i, err)
		}
		if ok {
			t.Fatalf("sample %d: mutated password %q verified", i, password)
		}
	}
}

func TestVerifyPassword_CorruptHash(t *testing.T) {
	_, err := VerifyPassword("whatever", "not-a-bcrypt-hash")
	if !errors.Is(err, domain.ErrCorruptCredential) {
		t.Fatalf("expected ErrCorruptCredential, got %v", err)
	}
}
