package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/ryankelly77/raptor-portal-sub000/internal/domain"
)

// HashSecret hashes an admin password or a driver PIN with bcrypt.
func HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash secret: %w", err)
	}
	return string(hash), nil
}

// CompareSecret checks secret against a bcrypt hash.
// A mismatch is reported as domain.ErrUnauthenticated.
func CompareSecret(hash, secret string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return fmt.Errorf("wrong credentials: %w", domain.ErrUnauthenticated)
	default:
		return fmt.Errorf("compare secret: %w", err)
	}
}
