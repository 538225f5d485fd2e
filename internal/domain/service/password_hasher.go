// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "errors"

// Sentinel causes reported by ValidatePasswordStrength. The auth service
// collapses all of them into a single weak-password rejection; the
// distinction exists for logging.
var (
	ErrPasswordTooShort       = errors.New("password too short")
	ErrPasswordNeedsUppercase = errors.New("password needs an uppercase letter")
	ErrPasswordNeedsLowercase = errors.New("password needs a lowercase letter")
	ErrPasswordNeedsDigit     = errors.New("password needs a digit")
	ErrPasswordNeedsSymbol    = errors.New("password needs a symbol")
)

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. Two hashes of
	// the same plaintext differ because the salt is drawn per call.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash in constant time.
	// It returns false on any mismatch or malformed hash, never an error.
	Check(password, hash string) bool

	// ValidatePasswordStrength reports whether a plaintext password meets
	// the signup policy. Pure, no side effects.
	ValidatePasswordStrength(password string) error
}
