package auth

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ryankelly77/raptor-portal-sub000/internal/auth"
	"github.com/ryankelly77/raptor-portal-sub000/internal/domain"
)

// dummyHash is compared against when the driver is unknown so that both
// failure paths cost one bcrypt comparison.
const dummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BgQPGHr0Wm4GZBPbUaG8KQjSN8Ou"

// AdminLogin checks the shared admin password and issues an admin token.
// Returns domain.ErrServiceUnavailable when admin login is not configured.
func (s *Service) AdminLogin(ctx context.Context, input AdminLoginInput) (*LoginResult, error) {
	if !s.cfg.AdminLoginConfigured() {
		return nil, fmt.Errorf("admin login: %w", domain.ErrServiceUnavailable)
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := auth.CompareSecret(s.cfg.AdminPasswordHash, input.Password); err != nil {
		s.log.Warn("admin login rejected")
		return nil, domain.ErrUnauthenticated
	}

	p := domain.Principal{Role: domain.RoleAdmin}
	token, exp, err := s.tokens.Issue(p)
	if err != nil {
		return nil, fmt.Errorf("issue admin token: %w", err)
	}

	s.log.Info("admin logged in")
	return &LoginResult{Token: token, ExpiresAt: exp, Principal: p}, nil
}

// DriverLogin checks a driver's email and PIN and issues a driver token.
// Unknown, inactive and PIN-less drivers all fail with
// domain.ErrUnauthenticated.
func (s *Service) DriverLogin(ctx context.Context, input DriverLoginInput) (*LoginResult, error) {
	if !s.cfg.SigningConfigured() {
		return nil, fmt.Errorf("driver login: %w", domain.ErrServiceUnavailable)
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	creds, err := s.drivers.GetCredentialsByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			_ = auth.CompareSecret(dummyHash, input.PIN)
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("get driver credentials: %w", err)
	}
	if creds.PINHash == "" {
		_ = auth.CompareSecret(dummyHash, input.PIN)
		return nil, domain.ErrUnauthenticated
	}
	if err := auth.CompareSecret(creds.PINHash, input.PIN); err != nil {
		s.log.Warn("driver login rejected", zap.Stringer("driver_id", creds.ID))
		return nil, domain.ErrUnauthenticated
	}

	p := domain.Principal{Role: domain.RoleDriver, DriverID: creds.ID}
	token, exp, err := s.tokens.Issue(p)
	if err != nil {
		return nil, fmt.Errorf("issue driver token: %w", err)
	}

	s.log.Info("driver logged in", zap.Stringer("driver_id", creds.ID))
	return &LoginResult{Token: token, ExpiresAt: exp, Principal: p, Name: creds.Name}, nil
}
