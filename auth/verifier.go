//go:generate go run go.uber.org/mock/mockgen -source=verifier.go -destination=../mocks/mock_verifier.go -package=mocks
// Package auth isolates credential handling behind a small capability
// so a stronger scheme can replace the prototype's plaintext comparison
// without touching routing or messaging logic.
package auth

import "crypto/subtle"

// Verifier seals a password for storage and verifies a login attempt
// against the stored form.
type Verifier interface {
	Seal(password string) (string, error)
	Verify(password, stored string) (bool, error)
}

// PlainVerifier stores passwords verbatim and compares them exactly.
// This is the prototype behavior of the portal and the default mode;
// the comparison is constant-time anyway.
type PlainVerifier struct{}

func (PlainVerifier) Seal(password string) (string, error) {
	return password, nil
}

func (PlainVerifier) Verify(password, stored string) (bool, error) {
	return subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1, nil
}
