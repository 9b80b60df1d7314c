package templog

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/ryankelly77/raptor-portal-sub000/internal/domain"
)

const (
	maxVehicleIDLen = 64
	maxNotesLen     = 2000
	maxLocationLen  = 200
	maxPhotoURLLen  = 2048
)

// CreateSessionInput holds the parameters for opening a session.
type CreateSessionInput struct {
	VehicleID *string
	Notes     *string
}

// Validate checks all fields and collects all errors.
func (i CreateSessionInput) Validate() error {
	var errs []domain.FieldError
	if i.VehicleID != nil && len(strings.TrimSpace(*i.VehicleID)) > maxVehicleIDLen {
		errs = append(errs, domain.FieldError{Field: "vehicle_id", Message: fmt.Sprintf("max %d characters", maxVehicleIDLen)})
	}
	if i.Notes != nil && len(*i.Notes) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: fmt.Sprintf("max %d characters", maxNotesLen)})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AddEntryInput holds the parameters for recording a reading.
type AddEntryInput struct {
	SessionID    uuid.UUID
	EntryType    domain.EntryType
	Temperature  *float64
	LocationName *string
	PhotoURL     *string
	Notes        *string
	StopNumber   *int // delivery only; ignored for pickup
}

// Validate checks all fields and collects all errors.
func (i AddEntryInput) Validate() error {
	var errs []domain.FieldError

	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "required"})
	}
	if !i.EntryType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "entry_type", Message: "must be pickup or delivery"})
	}
	if i.Temperature == nil {
		errs = append(errs, domain.FieldError{Field: "temperature", Message: "required"})
	} else if math.IsNaN(*i.Temperature) || math.IsInf(*i.Temperature, 0) {
		errs = append(errs, domain.FieldError{Field: "temperature", Message: "must be a finite number"})
	}
	if i.EntryType == domain.EntryDelivery && i.StopNumber != nil && *i.StopNumber < 1 {
		errs = append(errs, domain.FieldError{Field: "stop_number", Message: "delivery stops start at 1"})
	}
	errs = append(errs, textErrors(i.LocationName, i.PhotoURL, i.Notes)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateEntryInput holds the fields to change on an entry.
type UpdateEntryInput struct {
	EntryID uuid.UUID
	Patch   domain.EntryPatch
}

// Validate checks all fields and collects all errors.
func (i UpdateEntryInput) Validate() error {
	var errs []domain.FieldError

	if i.EntryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Patch.IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "data", Message: "at least one field must be provided"})
	}
	if t := i.Patch.Temperature; t != nil && (math.IsNaN(*t) || math.IsInf(*t, 0)) {
		errs = append(errs, domain.FieldError{Field: "temperature", Message: "must be a finite number"})
	}
	errs = append(errs, textErrors(i.Patch.LocationName, i.Patch.PhotoURL, i.Patch.Notes)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func textErrors(location, photo, notes *string) []domain.FieldError {
	var errs []domain.FieldError
	if location != nil && len(*location) > maxLocationLen {
		errs = append(errs, domain.FieldError{Field: "location_name", Message: fmt.Sprintf("max %d characters", maxLocationLen)})
	}
	if photo != nil && len(*photo) > maxPhotoURLLen {
		errs = append(errs, domain.FieldError{Field: "photo_url", Message: fmt.Sprintf("max %d characters", maxPhotoURLLen)})
	}
	if notes != nil && len(*notes) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: fmt.Sprintf("max %d characters", maxNotesLen)})
	}
	return errs
}

// ParseTemperature coerces a decoded JSON value to float64. Numbers and
// numeric strings are accepted.
func ParseTemperature(v any) (float64, error) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case json.Number:
		n, err := x.Float64()
		if err != nil {
			return 0, domain.NewValidationError("temperature", "must be a number")
		}
		f = n
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, domain.NewValidationError("temperature", "must be a number")
		}
		f = n
	case nil:
		return 0, domain.NewValidationError("temperature", "required")
	default:
		return 0, domain.NewValidationError("temperature", "must be a number")
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, domain.NewValidationError("temperature", "must be a finite number")
	}
	return f, nil
}
