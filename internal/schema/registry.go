// Package schema declares the entity types reachable through the admin CRUD
// dispatcher: which fields may be written, which are required on create,
// how lists are ordered and which defaults a fresh record receives.
//
// A Registry is immutable after construction and is passed explicitly to
// its consumers.
package schema

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/ryankelly77/raptor-portal-sub000/internal/domain"
)

// Order is the default listing order of an entity type.
type Order struct {
	Column string
	Desc   bool
}

// DefaultsFunc returns server-side defaults for a record being created.
// Keys already present in the sanitized input are never overwritten.
type DefaultsFunc func(now time.Time) map[string]any

// EntityType describes one table reachable through the dispatcher.
type EntityType struct {
	Name             string
	Table            string
	IDKind           domain.IDKind
	AllowedFields    []string
	RequiredOnCreate []string
	DefaultOrder     Order
	Defaults         DefaultsFunc

	allowed map[string]struct{}
}

// Allows reports whether field may be written.
func (e EntityType) Allows(field string) bool {
	if e.allowed == nil {
		return slices.Contains(e.AllowedFields, field)
	}
	_, ok := e.allowed[field]
	return ok
}

// Filterable reports whether field may be used as a read filter.
func (e EntityType) Filterable(field string) bool {
	return field == "id" || e.Allows(field)
}

func (e EntityType) validate() error {
	if e.Name == "" || e.Table == "" {
		return fmt.Errorf("name and table are required")
	}
	if e.IDKind != domain.IDKindInt && e.IDKind != domain.IDKindUUID {
		return fmt.Errorf("%s: id kind must be set", e.Name)
	}
	if len(e.AllowedFields) == 0 {
		return fmt.Errorf("%s: allowed fields are empty", e.Name)
	}
	seen := make(map[string]struct{}, len(e.AllowedFields))
	for _, f := range e.AllowedFields {
		if f == "id" || f == "created_at" || f == "updated_at" {
			return fmt.Errorf("%s: %s is server-managed and cannot be allowed", e.Name, f)
		}
		if _, dup := seen[f]; dup {
			return fmt.Errorf("%s: duplicate allowed field %s", e.Name, f)
		}
		seen[f] = struct{}{}
	}
	for _, f := range e.RequiredOnCreate {
		if _, ok := seen[f]; !ok {
			return fmt.Errorf("%s: required field %s is not allowed", e.Name, f)
		}
	}
	if e.DefaultOrder.Column == "" {
		return fmt.Errorf("%s: default order is required", e.Name)
	}
	return nil
}

// Registry maps entity-type names to their schema.
type Registry struct {
	types map[string]EntityType
}

// NewRegistry validates and freezes the given entity types.
// Slices are copied so later mutation by the caller has no effect.
func NewRegistry(types ...EntityType) (*Registry, error) {
	r := &Registry{types: make(map[string]EntityType, len(types))}
	for _, et := range types {
		if err := et.validate(); err != nil {
			return nil, fmt.Errorf("schema: %w", err)
		}
		if _, dup := r.types[et.Name]; dup {
			return nil, fmt.Errorf("schema: duplicate entity type %s", et.Name)
		}

		et.AllowedFields = slices.Clone(et.AllowedFields)
		et.RequiredOnCreate = slices.Clone(et.RequiredOnCreate)
		et.allowed = make(map[string]struct{}, len(et.AllowedFields))
		for _, f := range et.AllowedFields {
			et.allowed[f] = struct{}{}
		}
		r.types[et.Name] = et
	}
	return r, nil
}

// Lookup returns the entity type registered under name.
func (r *Registry) Lookup(name string) (EntityType, error) {
	et, ok := r.types[name]
	if !ok {
		return EntityType{}, fmt.Errorf("%q: %w", name, domain.ErrUnknownEntityType)
	}
	return et, nil
}

// Names returns the registered entity-type names, sorted.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.types))
}
