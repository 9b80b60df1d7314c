package schema

import (
	"time"

	"github.com/segmentio/ksuid"

	"github.com/ryankelly77/raptor-portal-sub000/internal/domain"
)

// Entity-type names of the portal.
const (
	Projects         = "projects"
	Phases           = "phases"
	Tasks            = "tasks"
	Properties       = "properties"
	Locations        = "locations"
	PropertyManagers = "property_managers"
	Drivers          = "drivers"
)

// Phase statuses.
const (
	PhaseNotStarted = "not_started"
	PhaseInProgress = "in_progress"
	PhaseCompleted  = "completed"
)

// NewPublicToken returns an opaque, URL-safe project sharing token.
func NewPublicToken() string {
	return ksuid.New().String()
}

// PortalTypes returns the entity types of the portal schema.
func PortalTypes() []EntityType {
	return []EntityType{
		{
			Name:   Projects,
			Table:  "projects",
			IDKind: domain.IDKindInt,
			AllowedFields: []string{
				"property_id", "location_id", "project_number", "public_token", "is_active",
				"configuration", "employee_count", "overall_progress", "estimated_completion", "notes",
			},
			RequiredOnCreate: []string{"property_id"},
			DefaultOrder:     Order{Column: "created_at", Desc: true},
			Defaults: func(time.Time) map[string]any {
				return map[string]any{
					"public_token": NewPublicToken(),
					"is_active":    true,
				}
			},
		},
		{
			Name:   Phases,
			Table:  "phases",
			IDKind: domain.IDKindInt,
			AllowedFields: []string{
				"project_id", "phase_number", "title", "status", "start_date", "end_date",
				"description", "is_approximate",
			},
			RequiredOnCreate: []string{"project_id", "title"},
			DefaultOrder:     Order{Column: "phase_number"},
			Defaults: func(time.Time) map[string]any {
				return map[string]any{
					"status":       PhaseNotStarted,
					"phase_number": 1,
				}
			},
		},
		{
			Name:             Tasks,
			Table:            "tasks",
			IDKind:           domain.IDKindInt,
			AllowedFields:    []string{"phase_id", "label", "completed", "sort_order", "scheduled_date", "notes"},
			RequiredOnCreate: []string{"phase_id", "label"},
			DefaultOrder:     Order{Column: "sort_order"},
			Defaults: func(time.Time) map[string]any {
				return map[string]any{
					"completed":  false,
					"sort_order": 0,
				}
			},
		},
		{
			Name:   Properties,
			Table:  "properties",
			IDKind: domain.IDKindInt,
			AllowedFields: []string{
				"property_manager_id", "name", "address", "city", "state", "zip",
				"total_employees", "notes",
			},
			RequiredOnCreate: []string{"name"},
			DefaultOrder:     Order{Column: "name"},
		},
		{
			Name:             Locations,
			Table:            "locations",
			IDKind:           domain.IDKindInt,
			AllowedFields:    []string{"property_id", "name", "floor", "notes"},
			RequiredOnCreate: []string{"property_id", "name"},
			DefaultOrder:     Order{Column: "name"},
		},
		{
			Name:             PropertyManagers,
			Table:            "property_managers",
			IDKind:           domain.IDKindInt,
			AllowedFields:    []string{"name", "email", "phone", "company", "is_active", "notes"},
			RequiredOnCreate: []string{"name"},
			DefaultOrder:     Order{Column: "name"},
			Defaults: func(time.Time) map[string]any {
				return map[string]any{"is_active": true}
			},
		},
		{
			Name:             Drivers,
			Table:            "drivers",
			IDKind:           domain.IDKindUUID,
			AllowedFields:    []string{"name", "email", "phone", "is_active", "notes"},
			RequiredOnCreate: []string{"name"},
			DefaultOrder:     Order{Column: "name"},
			Defaults: func(time.Time) map[string]any {
				return map[string]any{"is_active": true}
			},
		},
	}
}

// Portal builds the registry of the portal schema.
func Portal() *Registry {
	r, err := NewRegistry(PortalTypes()...)
	if err != nil {
		panic(err) // static declarations; a failure here is a programming error
	}
	return r
}
