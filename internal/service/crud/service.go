// Package crud dispatches admin create/read/update/delete requests over the
// entity types declared in the schema registry.
//
// The dispatcher does not authorize. Callers must have checked that the
// principal is an admin before calling Execute.
package crud

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ryankelly77/raptor-portal-sub000/internal/domain"
	"github.com/ryankelly77/raptor-portal-sub000/internal/schema"
)

type recordStore interface {
	Get(ctx context.Context, table string, id domain.ID) (domain.Record, error)
	List(ctx context.Context, table string, q domain.ListQuery) ([]domain.Record, error)
	Insert(ctx context.Context, table string, fields domain.Record) (domain.Record, error)
	Update(ctx context.Context, table string, id domain.ID, fields domain.Record) (domain.Record, error)
	Delete(ctx context.Context, table string, id domain.ID) error
}

// Service is the generic CRUD dispatcher.
type Service struct {
	registry *schema.Registry
	store    recordStore
	log      *zap.Logger
	now      func() time.Time
}

// NewService creates a dispatcher over the given registry and store.
func NewService(log *zap.Logger, registry *schema.Registry, store recordStore) *Service {
	return &Service{
		registry: registry,
		store:    store,
		log:      log.Named("crud"),
		now:      time.Now,
	}
}
