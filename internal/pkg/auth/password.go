package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the cost used when hashing secrets
const BcryptCost = 12

// HashPassword hashes a secret with bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword compares a bcrypt hash with a candidate secret
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// ConstantTimeEqual compares two plaintext secrets without leaking timing.
func ConstantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// SharedSecret verifies the admin password. The bcrypt hash wins when both
// forms are configured.
type SharedSecret struct {
	plain string
	hash  string
}

// NewSharedSecret creates a SharedSecret from a plaintext secret and/or a bcrypt hash.
func NewSharedSecret(plain, hash string) *SharedSecret {
	return &SharedSecret{plain: plain, hash: hash}
}

// Verify reports whether candidate matches the configured secret. An
// unconfigured secret matches nothing.
func (s *SharedSecret) Verify(candidate string) bool {
	switch {
	case s.hash != "":
		return CheckPassword(s.hash, candidate)
	case s.plain != "":
		return ConstantTimeEqual(s.plain, candidate)
	default:
		return false
	}
}
