package templog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ryankelly77/raptor-portal-sub000/internal/domain"
	"github.com/ryankelly77/raptor-portal-sub000/pkg/ctxutil"
)

// AddEntry records a reading in an open session owned by the driver.
//
// Pickup readings always get stop 0. A delivery uses the supplied stop
// number or the session's highest delivery stop plus one. The session row
// is locked for the duration so concurrent adds are numbered in turn.
func (s *Service) AddEntry(ctx context.Context, input AddEntryInput) (*domain.TempLogEntry, error) {
	driverID, ok := ctxutil.DriverIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var entry *domain.TempLogEntry
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		session, err := s.sessions.LockSession(txCtx, input.SessionID)
		if err != nil {
			return fmt.Errorf("lock session: %w", err)
		}
		if err := session.OwnedBy(driverID); err != nil {
			return err
		}
		if err := session.Status.RequireOpen(); err != nil {
			return err
		}

		stop, err := s.stopNumber(txCtx, input)
		if err != nil {
			return err
		}

		entry, err = s.entries.InsertEntry(txCtx, domain.TempLogEntry{
			SessionID:    input.SessionID,
			EntryType:    input.EntryType,
			StopNumber:   stop,
			LocationName: trimOrNil(input.LocationName),
			Temperature:  *input.Temperature,
			PhotoURL:     trimOrNil(input.PhotoURL),
			Notes:        trimOrNil(input.Notes),
		})
		if err != nil {
			return fmt.Errorf("insert entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug("entry added",
		zap.Stringer("session_id", input.SessionID),
		zap.String("entry_type", string(entry.EntryType)),
		zap.Int("stop_number", entry.StopNumber),
	)
	return entry, nil
}

func (s *Service) stopNumber(ctx context.Context, input AddEntryInput) (int, error) {
	if input.EntryType == domain.EntryPickup {
		return domain.PickupStopNumber, nil
	}
	if input.StopNumber != nil {
		return *input.StopNumber, nil
	}
	last, err := s.entries.MaxDeliveryStop(ctx, input.SessionID)
	if err != nil {
		return 0, fmt.Errorf("next stop number: %w", err)
	}
	return last + 1, nil
}

// UpdateEntry changes the supplied fields of an entry in an open session
// owned by the driver.
func (s *Service) UpdateEntry(ctx context.Context, input UpdateEntryInput) (*domain.TempLogEntry, error) {
	driverID, ok := ctxutil.DriverIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkEntryAccess(ctx, input.EntryID, driverID); err != nil {
		return nil, err
	}

	patch := input.Patch
	patch.LocationName = trimOrNil(patch.LocationName)
	patch.PhotoURL = trimOrNil(patch.PhotoURL)
	patch.Notes = trimOrNil(patch.Notes)

	entry, err := s.entries.UpdateEntry(ctx, input.EntryID, driverID, patch)
	if err != nil {
		return nil, fmt.Errorf("update entry: %w", err)
	}
	return entry, nil
}

// DeleteEntry removes an entry from an open session owned by the driver.
func (s *Service) DeleteEntry(ctx context.Context, entryID uuid.UUID) error {
	driverID, ok := ctxutil.DriverIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthenticated
	}
	if entryID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	if err := s.checkEntryAccess(ctx, entryID, driverID); err != nil {
		return err
	}

	if err := s.entries.DeleteEntry(ctx, entryID, driverID); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	s.log.Debug("entry deleted", zap.Stringer("entry_id", entryID))
	return nil
}

// checkEntryAccess resolves the entry's parent session and reports the
// precise failure. The conditional write that follows closes the gap
// between this read and the change.
func (s *Service) checkEntryAccess(ctx context.Context, entryID, driverID uuid.UUID) error {
	owner, err := s.entries.EntryOwner(ctx, entryID)
	if err != nil {
		return fmt.Errorf("resolve entry owner: %w", err)
	}
	if owner.DriverID != driverID {
		return fmt.Errorf("entry %s: %w", entryID, domain.ErrForbidden)
	}
	return owner.SessionStatus.RequireOpen()
}
