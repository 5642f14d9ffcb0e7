// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Compare checks a plaintext password against a stored hash. A mismatch is
	// (false, nil); a non-nil error means the primitive itself failed (e.g. a
	// malformed hash) and must never be read as a plain mismatch.
	Compare(password, hash string) (bool, error)
}
