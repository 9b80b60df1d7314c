package crud

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ryankelly77/raptor-portal-sub000/internal/domain"
	"github.com/ryankelly77/raptor-portal-sub000/internal/schema"
)

// Execute runs one CRUD action against one entity type.
func (s *Service) Execute(ctx context.Context, req Request) (Result, error) {
	et, err := s.registry.Lookup(req.EntityType)
	if err != nil {
		return Result{}, err
	}

	var res Result
	switch req.Action {
	case domain.ActionRead:
		res, err = s.read(ctx, et, req)
	case domain.ActionCreate:
		res, err = s.create(ctx, et, req)
	case domain.ActionUpdate:
		res, err = s.update(ctx, et, req)
	case domain.ActionDelete:
		res, err = s.delete(ctx, et, req)
	default:
		return Result{}, domain.NewValidationError("action", fmt.Sprintf("unknown action %q", req.Action))
	}
	if err != nil {
		if domain.Kind(err) == "StorageError" {
			s.log.Error("record store failure",
				zap.String("entity", et.Name),
				zap.String("action", string(req.Action)),
				zap.Error(err),
			)
		}
		return Result{}, err
	}

	if req.Action != domain.ActionRead {
		s.log.Info("record changed",
			zap.String("entity", et.Name),
			zap.String("action", string(req.Action)),
		)
	}
	return res, nil
}

func (s *Service) read(ctx context.Context, et schema.EntityType, req Request) (Result, error) {
	if req.ID != nil {
		id, err := parseID(et, req.ID)
		if err != nil {
			return Result{}, err
		}
		rec, err := s.store.Get(ctx, et.Table, id)
		if err != nil {
			return Result{}, fmt.Errorf("read %s: %w", et.Name, err)
		}
		return Result{Data: rec}, nil
	}

	filters := schema.SanitizeFilters(et, req.Filters)
	if err := validateFilters(filters); err != nil {
		return Result{}, err
	}
	recs, err := s.store.List(ctx, et.Table, domain.ListQuery{
		Filters: filters,
		OrderBy: et.DefaultOrder.Column,
		Desc:    et.DefaultOrder.Desc,
		Limit:   req.Limit,
		Offset:  req.Offset,
	})
	if err != nil {
		return Result{}, fmt.Errorf("list %s: %w", et.Name, err)
	}
	if recs == nil {
		recs = []domain.Record{}
	}
	return Result{Data: recs}, nil
}

func (s *Service) create(ctx context.Context, et schema.EntityType, req Request) (Result, error) {
	if len(req.Data) == 0 {
		return Result{}, domain.NewValidationError("data", "required")
	}
	if err := validateRequired(et, req.Data); err != nil {
		return Result{}, err
	}
	if err := validateEmail(req.Data); err != nil {
		return Result{}, err
	}

	fields := schema.Sanitize(et, req.Data)
	schema.ApplyDefaults(et, fields, s.now())

	rec, err := s.store.Insert(ctx, et.Table, fields)
	if err != nil {
		return Result{}, fmt.Errorf("create %s: %w", et.Name, err)
	}
	return Result{Data: rec}, nil
}

func (s *Service) update(ctx context.Context, et schema.EntityType, req Request) (Result, error) {
	id, err := parseID(et, req.ID)
	if err != nil {
		return Result{}, err
	}
	if len(req.Data) == 0 {
		return Result{}, domain.NewValidationError("data", "required")
	}
	if err := validateEmail(req.Data); err != nil {
		return Result{}, err
	}

	fields := schema.Sanitize(et, req.Data)
	fields["updated_at"] = s.now().UTC()

	rec, err := s.store.Update(ctx, et.Table, id, fields)
	if err != nil {
		return Result{}, fmt.Errorf("update %s: %w", et.Name, err)
	}
	return Result{Data: rec}, nil
}

func (s *Service) delete(ctx context.Context, et schema.EntityType, req Request) (Result, error) {
	id, err := parseID(et, req.ID)
	if err != nil {
		return Result{}, err
	}
	if err := s.store.Delete(ctx, et.Table, id); err != nil {
		return Result{}, fmt.Errorf("delete %s: %w", et.Name, err)
	}
	return Result{Success: true}, nil
}
