// Package projectview serves the read-only project page shared with
// property managers through a project's public token.
package projectview

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ryankelly77/raptor-portal-sub000/internal/domain"
	"github.com/ryankelly77/raptor-portal-sub000/internal/schema"
)

// maxParallelPhases bounds the concurrent task queries of one view.
const maxParallelPhases = 4

type recordStore interface {
	Get(ctx context.Context, table string, id domain.ID) (domain.Record, error)
	List(ctx context.Context, table string, q domain.ListQuery) ([]domain.Record, error)
}

// Public column sets. Internal notes and ids of unrelated rows stay private.
var (
	projectFields  = []string{"id", "project_number", "configuration", "employee_count", "overall_progress", "estimated_completion"}
	propertyFields = []string{"name", "address", "city", "state", "zip"}
	phaseFields    = []string{"id", "phase_number", "title", "status", "start_date", "end_date", "description", "is_approximate"}
	taskFields     = []string{"id", "label", "completed", "sort_order", "scheduled_date"}
)

// Phase is a phase with its tasks in display order.
type Phase struct {
	Phase domain.Record
	Tasks []domain.Record
}

// View is the public project page.
type View struct {
	Project  domain.Record
	Property domain.Record
	Phases   []Phase
}

// Service builds public project views.
type Service struct {
	registry *schema.Registry
	store    recordStore
	log      *zap.Logger
}

// NewService creates a new project view service.
func NewService(log *zap.Logger, registry *schema.Registry, store recordStore) *Service {
	return &Service{
		registry: registry,
		store:    store,
		log:      log.Named("projectview"),
	}
}

// GetByToken returns the view of the active project with the given public
// token. Unknown and inactive tokens fail with domain.ErrNotFound.
func (s *Service) GetByToken(ctx context.Context, token string) (*View, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domain.NewValidationError("token", "required")
	}

	projects, err := s.entity(schema.Projects)
	if err != nil {
		return nil, err
	}
	rows, err := s.store.List(ctx, projects.Table, domain.ListQuery{
		Filters: map[string]any{"public_token": token, "is_active": true},
		Limit:   1,
	})
	if err != nil {
		return nil, fmt.Errorf("find project: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("project: %w", domain.ErrNotFound)
	}
	project := rows[0]

	view := &View{Project: pick(project, projectFields)}

	if pid, err := domain.ParseID(project["property_id"]); err == nil {
		properties, err := s.entity(schema.Properties)
		if err != nil {
			return nil, err
		}
		property, err := s.store.Get(ctx, properties.Table, pid)
		if err != nil {
			return nil, fmt.Errorf("get property: %w", err)
		}
		view.Property = pick(property, propertyFields)
	}

	phases, err := s.children(ctx, schema.Phases, "project_id", project["id"])
	if err != nil {
		return nil, err
	}

	view.Phases = make([]Phase, len(phases))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelPhases)
	for i, ph := range phases {
		view.Phases[i].Phase = pick(ph, phaseFields)
		g.Go(func() error {
			tasks, err := s.children(gctx, schema.Tasks, "phase_id", ph["id"])
			if err != nil {
				return err
			}
			out := make([]domain.Record, len(tasks))
			for j, t := range tasks {
				out[j] = pick(t, taskFields)
			}
			view.Phases[i].Tasks = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log.Debug("project viewed", zap.Any("project_id", project["id"]), zap.Int("phases", len(phases)))
	return view, nil
}

// children lists the rows of entity whose parent column equals parentID, in
// the entity's default order.
func (s *Service) children(ctx context.Context, entity, parent string, parentID any) ([]domain.Record, error) {
	et, err := s.entity(entity)
	if err != nil {
		return nil, err
	}
	rows, err := s.store.List(ctx, et.Table, domain.ListQuery{
		Filters: map[string]any{parent: parentID},
		OrderBy: et.DefaultOrder.Column,
		Desc:    et.DefaultOrder.Desc,
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", entity, err)
	}
	return rows, nil
}

func (s *Service) entity(name string) (schema.EntityType, error) {
	et, err := s.registry.Lookup(name)
	if err != nil {
		return schema.EntityType{}, fmt.Errorf("project view: %w", err)
	}
	return et, nil
}

func pick(rec domain.Record, fields []string) domain.Record {
	out := make(domain.Record, len(fields))
	for _, f := range fields {
		if v, ok := rec[f]; ok {
			out[f] = v
		}
	}
	return out
}
