package schema

import (
	"time"

	"github.com/ryankelly77/raptor-portal-sub000/internal/domain"
)

// Sanitize keeps only the keys of input that the entity type allows.
// Everything else is dropped silently, including id and timestamps.
// The result is never nil.
func Sanitize(et EntityType, input map[string]any) domain.Record {
	out := make(domain.Record, len(et.AllowedFields))
	for _, f := range et.AllowedFields {
		if v, ok := input[f]; ok {
			out[f] = v
		}
	}
	return out
}

// SanitizeFilters keeps the keys usable as read filters: allowed fields and id.
func SanitizeFilters(et EntityType, filters map[string]any) map[string]any {
	out := make(map[string]any, len(filters))
	for k, v := range filters {
		if et.Filterable(k) {
			out[k] = v
		}
	}
	return out
}

// ApplyDefaults fills the entity's defaults for keys the record does not carry yet.
func ApplyDefaults(et EntityType, rec domain.Record, now time.Time) {
	if et.Defaults == nil {
		return
	}
	for k, v := range et.Defaults(now) {
		if _, ok := rec[k]; !ok {
			rec[k] = v
		}
	}
}
