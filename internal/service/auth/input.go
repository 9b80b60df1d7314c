package auth

import (
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/ryankelly77/raptor-portal-sub000/internal/domain"
)

const (
	minPINLen      = 4
	maxPINLen      = 8
	maxPasswordLen = 72 // bcrypt limit
)

// AdminLoginInput holds the admin password.
type AdminLoginInput struct {
	Password string
}

// Validate checks all fields and collects all errors.
func (i AdminLoginInput) Validate() error {
	if i.Password == "" {
		return domain.NewValidationError("password", "required")
	}
	if len(i.Password) > maxPasswordLen {
		return domain.NewValidationError("password", "too long")
	}
	return nil
}

// DriverLoginInput holds a driver's email and PIN.
type DriverLoginInput struct {
	Email string
	PIN   string
}

// Validate checks all fields and collects all errors.
func (i DriverLoginInput) Validate() error {
	var errs []domain.FieldError

	email := strings.TrimSpace(i.Email)
	if email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email format"})
	}
	if i.PIN == "" {
		errs = append(errs, domain.FieldError{Field: "pin", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SetPINInput holds a new PIN for a driver.
type SetPINInput struct {
	DriverID uuid.UUID
	PIN      string
}

// Validate checks all fields and collects all errors.
func (i SetPINInput) Validate() error {
	var errs []domain.FieldError

	if i.DriverID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "driver_id", Message: "required"})
	}
	if !validPIN(i.PIN) {
		errs = append(errs, domain.FieldError{Field: "pin", Message: "must be 4 to 8 digits"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validPIN(pin string) bool {
	if len(pin) < minPINLen || len(pin) > maxPINLen {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
