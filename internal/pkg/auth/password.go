package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost matches the cost used by the legacy deployment.
const DefaultBcryptCost = 10

// PasswordHasher hashes and verifies admin passwords with bcrypt.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a hasher; cost outside bcrypt's range falls back to DefaultBcryptCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &PasswordHasher{cost: cost}
}

// HashPassword returns a salted one-way digest of password.
func (h *PasswordHasher) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword reports whether password matches the bcrypt digest.
func (h *PasswordHasher) CheckPassword(hashedPassword, password string) bool {
	return CheckPassword(hashedPassword, password)
}

// CheckPassword verifies password against a bcrypt digest.
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// IsHashed reports whether stored is a bcrypt digest rather than a plaintext value.
func IsHashed(stored string) bool {
	_, err := bcrypt.Cost([]byte(stored))
	return err == nil
}

// MatchesPlaintext compares a legacy plaintext value in constant time.
// It never matches a value that is already a bcrypt digest.
func MatchesPlaintext(stored, password string) bool {
	if stored == "" || IsHashed(stored) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}
