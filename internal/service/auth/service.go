// Package auth implements admin and driver login and driver PIN management.
// Tokens are issued by internal/auth; this package decides who gets one.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ryankelly77/raptor-portal-sub000/internal/config"
	"github.com/ryankelly77/raptor-portal-sub000/internal/domain"
)

// driverRepo defines the driver credential queries needed by the auth service.
type driverRepo interface {
	GetCredentialsByEmail(ctx context.Context, email string) (*domain.DriverCredentials, error)
	SetPINHash(ctx context.Context, id uuid.UUID, hash string) error
}

// tokenIssuer signs tokens for a principal.
type tokenIssuer interface {
	Issue(p domain.Principal) (string, time.Time, error)
}

// Service implements login operations.
type Service struct {
	log     *zap.Logger
	drivers driverRepo
	tokens  tokenIssuer
	cfg     config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(log *zap.Logger, drivers driverRepo, tokens tokenIssuer, cfg config.AuthConfig) *Service {
	return &Service{
		log:     log.Named("auth"),
		drivers: drivers,
		tokens:  tokens,
		cfg:     cfg,
	}
}
