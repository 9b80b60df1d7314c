package templog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ryankelly77/raptor-portal-sub000/internal/domain"
	"github.com/ryankelly77/raptor-portal-sub000/pkg/ctxutil"
)

// GetActiveSession returns the driver's newest in_progress session with its
// entries, or nil when there is none.
func (s *Service) GetActiveSession(ctx context.Context) (*domain.SessionWithEntries, error) {
	driverID, ok := ctxutil.DriverIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}

	session, err := s.sessions.ActiveSession(ctx, driverID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get active session: %w", err)
	}

	entries, err := s.entries.ListEntries(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	if entries == nil {
		entries = []domain.TempLogEntry{}
	}

	return &domain.SessionWithEntries{TempLogSession: *session, Entries: entries}, nil
}

// CreateSession opens a new in_progress session dated today.
// Unless multiple active sessions are allowed, it fails with
// domain.ErrInvalidState while the driver still has one open.
func (s *Service) CreateSession(ctx context.Context, input CreateSessionInput) (*domain.TempLogSession, error) {
	driverID, ok := ctxutil.DriverIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	vehicleID := trimOrNil(input.VehicleID)
	notes := trimOrNil(input.Notes)

	var session *domain.TempLogSession
	create := func(ctx context.Context) error {
		var err error
		session, err = s.sessions.CreateSession(ctx, driverID, vehicleID, notes, s.today())
		if err != nil {
			return fmt.Errorf("create session: %w", err)
		}
		return nil
	}

	var err error
	if s.cfg.AllowMultipleActive {
		err = create(ctx)
	} else {
		err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			if err := s.sessions.LockDriver(txCtx, driverID); err != nil {
				return fmt.Errorf("lock driver: %w", err)
			}
			open, err := s.sessions.HasActiveSession(txCtx, driverID)
			if err != nil {
				return fmt.Errorf("check active session: %w", err)
			}
			if open {
				return fmt.Errorf("driver already has a session in progress: %w", domain.ErrInvalidState)
			}
			return create(txCtx)
		})
	}
	if err != nil {
		return nil, err
	}

	s.log.Info("session created",
		zap.Stringer("session_id", session.ID),
		zap.Stringer("driver_id", driverID),
	)
	return session, nil
}

// CompleteSession closes the session. It fails with domain.ErrForbidden for
// another driver's session and domain.ErrInvalidState once completed.
func (s *Service) CompleteSession(ctx context.Context, sessionID uuid.UUID) (*domain.TempLogSession, error) {
	driverID, ok := ctxutil.DriverIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	if sessionID == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	current, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if err := current.OwnedBy(driverID); err != nil {
		return nil, err
	}
	if _, err := current.Status.Transition(domain.EventComplete); err != nil {
		return nil, err
	}

	// The write repeats the in_progress condition; a concurrent completion
	// between the read above and here yields ErrInvalidState.
	done, err := s.sessions.CompleteSession(ctx, sessionID, driverID)
	if err != nil {
		return nil, fmt.Errorf("complete session: %w", err)
	}

	s.log.Info("session completed",
		zap.Stringer("session_id", sessionID),
		zap.Stringer("driver_id", driverID),
	)
	return done, nil
}

// GetSessionHistory lists the driver's sessions dated within the trailing
// window, newest first. windowDays == 0 selects the configured default.
func (s *Service) GetSessionHistory(ctx context.Context, windowDays int) ([]domain.SessionSummary, error) {
	driverID, ok := ctxutil.DriverIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}

	if windowDays == 0 {
		windowDays = s.cfg.HistoryWindowDays
	}
	if windowDays < 0 {
		return nil, domain.NewValidationError("window_days", "must be at least 1")
	}
	if windowDays > s.cfg.MaxHistoryWindowDays {
		return nil, domain.NewValidationError("window_days", fmt.Sprintf("max %d", s.cfg.MaxHistoryWindowDays))
	}

	since := s.today().AddDate(0, 0, -windowDays)
	sessions, err := s.sessions.History(ctx, driverID, since)
	if err != nil {
		return nil, fmt.Errorf("session history: %w", err)
	}
	if sessions == nil {
		sessions = []domain.SessionSummary{}
	}
	return sessions, nil
}

// CompleteStaleSessions completes every in_progress session older than the
// configured staleness age. It runs without a principal.
func (s *Service) CompleteStaleSessions(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-time.Duration(s.cfg.StaleAfterHours) * time.Hour)

	n, err := s.sessions.CompleteStale(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("complete stale sessions: %w", err)
	}

	s.log.Info("stale sessions completed",
		zap.Int64("count", n),
		zap.Time("cutoff", cutoff),
	)
	return n, nil
}

// trimOrNil trims whitespace. Returns nil if the result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
