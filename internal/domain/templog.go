package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SessionStatus is the lifecycle state of a temp-log session.
type SessionStatus string

const (
	SessionInProgress SessionStatus = "in_progress"
	SessionCompleted  SessionStatus = "completed"
)

// SessionEvent drives SessionStatus transitions.
type SessionEvent string

const EventComplete SessionEvent = "complete"

func (s SessionStatus) String() string { return string(s) }

func (s SessionStatus) IsValid() bool {
	switch s {
	case SessionInProgress, SessionCompleted:
		return true
	}
	return false
}

// Transition is the only way a session changes state.
// in_progress --complete--> completed; completed is terminal.
func (s SessionStatus) Transition(ev SessionEvent) (SessionStatus, error) {
	if s == SessionInProgress && ev == EventComplete {
		return SessionCompleted, nil
	}
	return s, fmt.Errorf("session %s cannot %s: %w", s, ev, ErrInvalidState)
}

// RequireOpen fails with ErrInvalidState unless entries may still change.
func (s SessionStatus) RequireOpen() error {
	if s != SessionInProgress {
		return fmt.Errorf("session is %s: %w", s, ErrInvalidState)
	}
	return nil
}

// EntryType distinguishes the pickup reading from delivery drops.
type EntryType string

const (
	EntryPickup   EntryType = "pickup"
	EntryDelivery EntryType = "delivery"
)

func (t EntryType) String() string { return string(t) }

func (t EntryType) IsValid() bool {
	switch t {
	case EntryPickup, EntryDelivery:
		return true
	}
	return false
}

// PickupStopNumber is reserved for the pickup reading of every session.
const PickupStopNumber = 0

// TempLogSession is one driver's delivery route.
type TempLogSession struct {
	ID          uuid.UUID
	DriverID    uuid.UUID
	VehicleID   *string
	Notes       *string
	Status      SessionStatus
	SessionDate time.Time
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// OwnedBy fails with ErrForbidden when driverID does not own the session.
func (s *TempLogSession) OwnedBy(driverID uuid.UUID) error {
	if s.DriverID != driverID {
		return fmt.Errorf("session %s: %w", s.ID, ErrForbidden)
	}
	return nil
}

// TempLogEntry is one temperature reading inside a session.
type TempLogEntry struct {
	ID           uuid.UUID
	SessionID    uuid.UUID
	EntryType    EntryType
	StopNumber   int
	LocationName *string
	Temperature  float64
	PhotoURL     *string
	Notes        *string
	Timestamp    time.Time
}

// SessionWithEntries is a session and its readings ordered by timestamp.
type SessionWithEntries struct {
	TempLogSession
	Entries []TempLogEntry
}

// SessionSummary is a history row.
type SessionSummary struct {
	TempLogSession
	EntryCount int
}

// EntryOwner is what ownership checks need to know about an entry's parent.
type EntryOwner struct {
	EntryID       uuid.UUID
	SessionID     uuid.UUID
	DriverID      uuid.UUID
	SessionStatus SessionStatus
}

// EntryPatch holds the fields a driver may change on an entry. Nil means untouched.
type EntryPatch struct {
	Temperature  *float64
	LocationName *string
	PhotoURL     *string
	Notes        *string
}

func (p EntryPatch) IsEmpty() bool {
	return p.Temperature == nil && p.LocationName == nil && p.PhotoURL == nil && p.Notes == nil
}
