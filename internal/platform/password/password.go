// Package password hashes and verifies user credentials with bcrypt.
package password

import (
	"errors"
	"fmt"
	"unicode"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost keeps a comparison in the tens of milliseconds.
	DefaultCost = 10

	// MaxLength is the longest input bcrypt accepts.
	MaxLength = 72

	// MinStrongLength is the minimum length of a user-chosen password.
	MinStrongLength = 12

	// DummyHash is compared against when no user matched, so that a
	// failed lookup costs as much as a wrong password.
	DummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

	safeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghjkmnpqrstuvwxyz23456789!@#$%&*"
)

var ErrTooLong = fmt.Errorf("password must be at most %d bytes", MaxLength)

// Hasher hashes plaintext secrets at a fixed bcrypt cost.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher. A cost outside bcrypt's range falls back to
// DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns a salted digest of plain.
func (h *Hasher) Hash(plain string) (string, error) {
	if len(plain) > MaxLength {
		return "", ErrTooLong
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(b), nil
}

// Verify reports whether plain matches digest. A malformed digest is a
// mismatch.
func (h *Hasher) Verify(plain, digest string) bool {
	// bcrypt は先頭72バイトしか比較しないため、それを超える入力は一致させない
	if len(plain) > MaxLength {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}

// Generate returns a random password of length n drawn from an alphabet
// without look-alike characters.
func Generate(n int) (string, error) {
	p, err := gonanoid.Generate(safeAlphabet, n)
	if err != nil {
		return "", fmt.Errorf("failed to generate password: %w", err)
	}
	return p, nil
}

// CheckStrength enforces the policy for user-chosen passwords.
func CheckStrength(plain string) error {
	if len([]rune(plain)) < MinStrongLength {
		return fmt.Errorf("password must be at least %d characters long", MinStrongLength)
	}
	if len(plain) > MaxLength {
		return ErrTooLong
	}
	var lower, upper, digit, special bool
	for _, r := range plain {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case unicode.IsDigit(r) && r < unicode.MaxASCII:
			digit = true
		default:
			special = true
		}
	}
	switch {
	case !lower:
		return errors.New("password must contain at least one lowercase letter")
	case !upper:
		return errors.New("password must contain at least one uppercase letter")
	case !digit:
		return errors.New("password must contain at least one number")
	case !special:
		return errors.New("password must contain at least one special character")
	}
	return nil
}
