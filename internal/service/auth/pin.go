package auth

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ryankelly77/raptor-portal-sub000/internal/auth"
)

// SetDriverPIN stores a new bcrypt-hashed PIN for a driver. Admin only;
// the caller enforces the role.
func (s *Service) SetDriverPIN(ctx context.Context, input SetPINInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	hash, err := auth.HashSecret(input.PIN)
	if err != nil {
		return fmt.Errorf("hash pin: %w", err)
	}
	if err := s.drivers.SetPINHash(ctx, input.DriverID, hash); err != nil {
		return fmt.Errorf("set pin: %w", err)
	}

	s.log.Info("driver pin set", zap.Stringer("driver_id", input.DriverID))
	return nil
}
