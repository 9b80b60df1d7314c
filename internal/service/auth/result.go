package auth

import (
	"time"

	"github.com/ryankelly77/raptor-portal-sub000/internal/domain"
)

// LoginResult is returned by both login operations.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Principal domain.Principal
	Name      string // driver display name; empty for admin
}
