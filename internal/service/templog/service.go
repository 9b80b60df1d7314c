// Package templog is the driver temperature-log engine: route sessions,
// their pickup and delivery readings, and the one-way completion of a
// session. Every operation acts on behalf of the driver in the context.
package templog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ryankelly77/raptor-portal-sub000/internal/config"
	"github.com/ryankelly77/raptor-portal-sub000/internal/domain"
)

type sessionRepo interface {
	CreateSession(ctx context.Context, driverID uuid.UUID, vehicleID, notes *string, sessionDate time.Time) (*domain.TempLogSession, error)
	GetSession(ctx context.Context, id uuid.UUID) (*domain.TempLogSession, error)
	LockSession(ctx context.Context, id uuid.UUID) (*domain.TempLogSession, error)
	ActiveSession(ctx context.Context, driverID uuid.UUID) (*domain.TempLogSession, error)
	HasActiveSession(ctx context.Context, driverID uuid.UUID) (bool, error)
	LockDriver(ctx context.Context, driverID uuid.UUID) error
	CompleteSession(ctx context.Context, id, driverID uuid.UUID) (*domain.TempLogSession, error)
	CompleteStale(ctx context.Context, cutoff time.Time) (int64, error)
	History(ctx context.Context, driverID uuid.UUID, since time.Time) ([]domain.SessionSummary, error)
}

type entryRepo interface {
	ListEntries(ctx context.Context, sessionID uuid.UUID) ([]domain.TempLogEntry, error)
	MaxDeliveryStop(ctx context.Context, sessionID uuid.UUID) (int, error)
	InsertEntry(ctx context.Context, e domain.TempLogEntry) (*domain.TempLogEntry, error)
	EntryOwner(ctx context.Context, entryID uuid.UUID) (*domain.EntryOwner, error)
	UpdateEntry(ctx context.Context, entryID, driverID uuid.UUID, p domain.EntryPatch) (*domain.TempLogEntry, error)
	DeleteEntry(ctx context.Context, entryID, driverID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides the temp-log operations.
type Service struct {
	sessions sessionRepo
	entries  entryRepo
	tx       txManager
	cfg      config.TempLogConfig
	log      *zap.Logger
	now      func() time.Time
}

// NewService creates a new temp-log service.
func NewService(
	log *zap.Logger,
	sessions sessionRepo,
	entries entryRepo,
	tx txManager,
	cfg config.TempLogConfig,
) *Service {
	return &Service{
		sessions: sessions,
		entries:  entries,
		tx:       tx,
		cfg:      cfg,
		log:      log.Named("templog"),
		now:      time.Now,
	}
}

// today is the server's current calendar date at midnight UTC, the form
// pgx writes to a date column without shifting.
func (s *Service) today() time.Time {
	y, m, d := s.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
