package crud

import (
	"encoding/json"
	"maps"
	"regexp"
	"slices"
	"strings"

	"github.com/ryankelly77/raptor-portal-sub000/internal/domain"
	"github.com/ryankelly77/raptor-portal-sub000/internal/schema"
)

// Request is one dispatch call.
type Request struct {
	EntityType string
	Action     domain.Action
	ID         any
	Data       map[string]any
	Filters    map[string]any
	Limit      uint64
	Offset     uint64
}

// Result is what a dispatch returns. Data holds a domain.Record for single
// row actions and a []domain.Record for lists; Success is set by delete.
type Result struct {
	Data    any  `json:"data,omitempty"`
	Success bool `json:"success,omitempty"`
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// parseID validates the request id against the entity's key kind.
func parseID(et schema.EntityType, raw any) (domain.ID, error) {
	if raw == nil {
		return domain.ID{}, domain.NewValidationError("id", "required")
	}
	id, err := domain.ParseID(raw)
	if err != nil {
		return domain.ID{}, domain.NewValidationError("id", err.Error())
	}
	if id.Kind() != et.IDKind {
		return domain.ID{}, domain.NewValidationError("id", "must be a "+et.IDKind.String())
	}
	return id, nil
}

// validateRequired checks RequiredOnCreate in declared order and reports the
// first field that is missing or malformed.
func validateRequired(et schema.EntityType, data map[string]any) error {
	for _, f := range et.RequiredOnCreate {
		v, ok := data[f]
		if !ok || v == nil {
			return domain.NewValidationError(f, "required")
		}
		if strings.HasSuffix(f, "_id") {
			if _, err := domain.ParseID(v); err != nil {
				return domain.NewValidationError(f, "must be a positive integer or uuid")
			}
			continue
		}
		s, isStr := v.(string)
		if !isStr || strings.TrimSpace(s) == "" {
			return domain.NewValidationError(f, "must be a non-empty string")
		}
	}
	return nil
}

// validateEmail checks the email key of data, if any. A null email clears
// the column and is accepted.
func validateEmail(data map[string]any) error {
	v, ok := data["email"]
	if !ok || v == nil {
		return nil
	}
	s, isStr := v.(string)
	if !isStr || !emailRe.MatchString(strings.TrimSpace(s)) {
		return domain.NewValidationError("email", "invalid email address")
	}
	return nil
}

// validateFilters rejects filter values that are not plain scalars. Filters
// are equality matches; an array would otherwise widen into IN (...).
func validateFilters(filters map[string]any) error {
	for _, k := range slices.Sorted(maps.Keys(filters)) {
		switch filters[k].(type) {
		case nil, string, bool, json.Number, float64, int, int32, int64, uint, uint32, uint64:
		default:
			return domain.NewValidationError("filters."+k, "must be a scalar value")
		}
	}
	return nil
}
