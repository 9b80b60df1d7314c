// Package templog implements temperature-log session and entry persistence.
// Every state-sensitive write is conditional on the parent session still
// being in_progress and owned by the caller, so a concurrent completion can
// never be overtaken by a late entry write.
package templog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/ryankelly77/raptor-portal-sub000/internal/adapter/postgres"
	"github.com/ryankelly77/raptor-portal-sub000/internal/domain"
)

// Repo provides temp-log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new temp-log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const sessionColumns = `id, driver_id, vehicle_id, notes, status, session_date, created_at, completed_at`

const entryColumns = `id, session_id, entry_type, stop_number, location_name, temperature, photo_url, notes, timestamp`

const createSessionSQL = `
INSERT INTO temp_log_sessions (driver_id, vehicle_id, notes, status, session_date)
VALUES ($1, $2, $3, 'in_progress', $4)
RETURNING ` + sessionColumns

const getSessionSQL = `
SELECT ` + sessionColumns + `
FROM temp_log_sessions
WHERE id = $1`

const lockSessionSQL = getSessionSQL + `
FOR UPDATE`

const activeSessionSQL = `
SELECT ` + sessionColumns + `
FROM temp_log_sessions
WHERE driver_id = $1 AND status = 'in_progress'
ORDER BY created_at DESC
LIMIT 1`

const hasActiveSQL = `
SELECT EXISTS (
    SELECT 1 FROM temp_log_sessions WHERE driver_id = $1 AND status = 'in_progress'
)`

const lockDriverSQL = `SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`

const completeSessionSQL = `
UPDATE temp_log_sessions
SET status = 'completed', completed_at = now()
WHERE id = $1 AND driver_id = $2 AND status = 'in_progress'
RETURNING ` + sessionColumns

const completeStaleSQL = `
UPDATE temp_log_sessions
SET status = 'completed', completed_at = now()
WHERE status = 'in_progress' AND created_at < $1`

const historySQL = `
SELECT s.id, s.driver_id, s.vehicle_id, s.notes, s.status, s.session_date, s.created_at, s.completed_at,
       count(e.id) AS entry_count
FROM temp_log_sessions s
LEFT JOIN temp_log_entries e ON e.session_id = s.id
WHERE s.driver_id = $1 AND s.session_date >= $2
GROUP BY s.id
ORDER BY s.created_at DESC`

const listEntriesSQL = `
SELECT ` + entryColumns + `
FROM temp_log_entries
WHERE session_id = $1
ORDER BY timestamp ASC, stop_number ASC`

const maxDeliveryStopSQL = `
SELECT COALESCE(max(stop_number), 0)
FROM temp_log_entries
WHERE session_id = $1 AND entry_type = 'delivery'`

const insertEntrySQL = `
INSERT INTO temp_log_entries (session_id, entry_type, stop_number, location_name, temperature, photo_url, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + entryColumns

const entryOwnerSQL = `
SELECT e.id AS entry_id, e.session_id, s.driver_id, s.status
FROM temp_log_entries e
JOIN temp_log_sessions s ON s.id = e.session_id
WHERE e.id = $1`

const updateEntrySQL = `
UPDATE temp_log_entries e
SET temperature   = COALESCE($3, e.temperature),
    location_name = COALESCE($4, e.location_name),
    photo_url     = COALESCE($5, e.photo_url),
    notes         = COALESCE($6, e.notes)
FROM temp_log_sessions s
WHERE e.id = $1 AND e.session_id = s.id AND s.driver_id = $2 AND s.status = 'in_progress'
RETURNING e.id, e.session_id, e.entry_type, e.stop_number, e.location_name, e.temperature, e.photo_url, e.notes, e.timestamp`

const entryExistsSQL = `SELECT EXISTS (SELECT 1 FROM temp_log_entries WHERE id = $1)`

const deleteEntrySQL = `
DELETE FROM temp_log_entries e
USING temp_log_sessions s
WHERE e.id = $1 AND e.session_id = s.id AND s.driver_id = $2 AND s.status = 'in_progress'`

// ---------------------------------------------------------------------------
// Row types
// ---------------------------------------------------------------------------

type sessionRow struct {
	ID          uuid.UUID  `db:"id"`
	DriverID    uuid.UUID  `db:"driver_id"`
	VehicleID   *string    `db:"vehicle_id"`
	Notes       *string    `db:"notes"`
	Status      string     `db:"status"`
	SessionDate time.Time  `db:"session_date"`
	CreatedAt   time.Time  `db:"created_at"`
	CompletedAt *time.Time `db:"completed_at"`
}

func (r sessionRow) toDomain() domain.TempLogSession {
	return domain.TempLogSession{
		ID:          r.ID,
		DriverID:    r.DriverID,
		VehicleID:   r.VehicleID,
		Notes:       r.Notes,
		Status:      domain.SessionStatus(r.Status),
		SessionDate: r.SessionDate,
		CreatedAt:   r.CreatedAt,
		CompletedAt: r.CompletedAt,
	}
}

type summaryRow struct {
	ID          uuid.UUID  `db:"id"`
	DriverID    uuid.UUID  `db:"driver_id"`
	VehicleID   *string    `db:"vehicle_id"`
	Notes       *string    `db:"notes"`
	Status      string     `db:"status"`
	SessionDate time.Time  `db:"session_date"`
	CreatedAt   time.Time  `db:"created_at"`
	CompletedAt *time.Time `db:"completed_at"`
	EntryCount  int        `db:"entry_count"`
}

func (r summaryRow) toDomain() domain.SessionSummary {
	return domain.SessionSummary{
		TempLogSession: sessionRow{
			ID:          r.ID,
			DriverID:    r.DriverID,
			VehicleID:   r.VehicleID,
			Notes:       r.Notes,
			Status:      r.Status,
			SessionDate: r.SessionDate,
			CreatedAt:   r.CreatedAt,
			CompletedAt: r.CompletedAt,
		}.toDomain(),
		EntryCount: r.EntryCount,
	}
}

type entryRow struct {
	ID           uuid.UUID `db:"id"`
	SessionID    uuid.UUID `db:"session_id"`
	EntryType    string    `db:"entry_type"`
	StopNumber   int       `db:"stop_number"`
	LocationName *string   `db:"location_name"`
	Temperature  float64   `db:"temperature"`
	PhotoURL     *string   `db:"photo_url"`
	Notes        *string   `db:"notes"`
	Timestamp    time.Time `db:"timestamp"`
}

func (r entryRow) toDomain() domain.TempLogEntry {
	return domain.TempLogEntry{
		ID:           r.ID,
		SessionID:    r.SessionID,
		EntryType:    domain.EntryType(r.EntryType),
		StopNumber:   r.StopNumber,
		LocationName: r.LocationName,
		Temperature:  r.Temperature,
		PhotoURL:     r.PhotoURL,
		Notes:        r.Notes,
		Timestamp:    r.Timestamp,
	}
}

type ownerRow struct {
	EntryID   uuid.UUID `db:"entry_id"`
	SessionID uuid.UUID `db:"session_id"`
	DriverID  uuid.UUID `db:"driver_id"`
	Status    string    `db:"status"`
}

// ---------------------------------------------------------------------------
// Sessions
// ---------------------------------------------------------------------------

// CreateSession inserts a new in_progress session.
func (r *Repo) CreateSession(ctx context.Context, driverID uuid.UUID, vehicleID, notes *string, sessionDate time.Time) (*domain.TempLogSession, error) {
	var row sessionRow
	err := pgxscan.Get(ctx, r.q(ctx), &row, createSessionSQL, driverID, vehicleID, notes, sessionDate)
	if err != nil {
		return nil, mapError(err, "temp_log_session", driverID)
	}
	s := row.toDomain()
	return &s, nil
}

// GetSession returns a session by id or domain.ErrNotFound.
func (r *Repo) GetSession(ctx context.Context, id uuid.UUID) (*domain.TempLogSession, error) {
	return r.getSession(ctx, getSessionSQL, id)
}

// LockSession reads a session and holds its row lock until the surrounding
// transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) LockSession(ctx context.Context, id uuid.UUID) (*domain.TempLogSession, error) {
	if !postgres.InTx(ctx) {
		return nil, fmt.Errorf("lock temp_log_session %s: no transaction in context", id)
	}
	return r.getSession(ctx, lockSessionSQL, id)
}

// ActiveSession returns the driver's newest in_progress session or
// domain.ErrNotFound.
func (r *Repo) ActiveSession(ctx context.Context, driverID uuid.UUID) (*domain.TempLogSession, error) {
	return r.getSession(ctx, activeSessionSQL, driverID)
}

// HasActiveSession reports whether the driver has any in_progress session.
func (r *Repo) HasActiveSession(ctx context.Context, driverID uuid.UUID) (bool, error) {
	var exists bool
	if err := r.q(ctx).QueryRow(ctx, hasActiveSQL, driverID).Scan(&exists); err != nil {
		return false, mapError(err, "temp_log_session", driverID)
	}
	return exists, nil
}

// LockDriver takes a transaction-scoped advisory lock keyed by driver id.
// Must be called inside TxManager.RunInTx.
func (r *Repo) LockDriver(ctx context.Context, driverID uuid.UUID) error {
	if !postgres.InTx(ctx) {
		return fmt.Errorf("lock driver %s: no transaction in context", driverID)
	}
	if _, err := r.q(ctx).Exec(ctx, lockDriverSQL, driverID.String()); err != nil {
		return mapError(err, "driver", driverID)
	}
	return nil
}

// CompleteSession moves an owned in_progress session to completed.
// Returns domain.ErrInvalidState when no row matched the condition.
func (r *Repo) CompleteSession(ctx context.Context, id, driverID uuid.UUID) (*domain.TempLogSession, error) {
	var row sessionRow
	err := pgxscan.Get(ctx, r.q(ctx), &row, completeSessionSQL, id, driverID)
	if pgxscan.NotFound(err) {
		return nil, fmt.Errorf("temp_log_session %s: %w", id, domain.ErrInvalidState)
	}
	if err != nil {
		return nil, mapError(err, "temp_log_session", id)
	}
	s := row.toDomain()
	return &s, nil
}

// CompleteStale completes every in_progress session created before cutoff
// and returns how many were closed.
func (r *Repo) CompleteStale(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.q(ctx).Exec(ctx, completeStaleSQL, cutoff)
	if err != nil {
		return 0, mapError(err, "temp_log_session", "stale")
	}
	return tag.RowsAffected(), nil
}

// History returns the driver's sessions dated on or after since, newest
// first, each with its entry count.
func (r *Repo) History(ctx context.Context, driverID uuid.UUID, since time.Time) ([]domain.SessionSummary, error) {
	var rows []summaryRow
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, historySQL, driverID, since); err != nil {
		return nil, mapError(err, "temp_log_session", driverID)
	}

	out := make([]domain.SessionSummary, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Entries
// ---------------------------------------------------------------------------

// ListEntries returns a session's entries ordered by timestamp.
func (r *Repo) ListEntries(ctx context.Context, sessionID uuid.UUID) ([]domain.TempLogEntry, error) {
	var rows []entryRow
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, listEntriesSQL, sessionID); err != nil {
		return nil, mapError(err, "temp_log_entry", sessionID)
	}

	out := make([]domain.TempLogEntry, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// MaxDeliveryStop returns the highest delivery stop number in the session,
// or 0 when it has no deliveries.
func (r *Repo) MaxDeliveryStop(ctx context.Context, sessionID uuid.UUID) (int, error) {
	var n int
	if err := r.q(ctx).QueryRow(ctx, maxDeliveryStopSQL, sessionID).Scan(&n); err != nil {
		return 0, mapError(err, "temp_log_entry", sessionID)
	}
	return n, nil
}

// InsertEntry persists an entry. The caller has already fixed the stop number.
func (r *Repo) InsertEntry(ctx context.Context, e domain.TempLogEntry) (*domain.TempLogEntry, error) {
	var row entryRow
	err := pgxscan.Get(ctx, r.q(ctx), &row, insertEntrySQL,
		e.SessionID,
		string(e.EntryType),
		e.StopNumber,
		e.LocationName,
		e.Temperature,
		e.PhotoURL,
		e.Notes,
	)
	if err != nil {
		return nil, mapError(err, "temp_log_entry", e.SessionID)
	}
	out := row.toDomain()
	return &out, nil
}

// EntryOwner resolves the session and driver an entry belongs to.
func (r *Repo) EntryOwner(ctx context.Context, entryID uuid.UUID) (*domain.EntryOwner, error) {
	var row ownerRow
	if err := pgxscan.Get(ctx, r.q(ctx), &row, entryOwnerSQL, entryID); err != nil {
		return nil, mapError(err, "temp_log_entry", entryID)
	}
	return &domain.EntryOwner{
		EntryID:       row.EntryID,
		SessionID:     row.SessionID,
		DriverID:      row.DriverID,
		SessionStatus: domain.SessionStatus(row.Status),
	}, nil
}

// UpdateEntry applies the non-nil patch fields, provided the parent session
// is still in_progress and owned by driverID. Returns domain.ErrNotFound when
// the entry is gone and domain.ErrInvalidState when the condition no longer
// holds.
func (r *Repo) UpdateEntry(ctx context.Context, entryID, driverID uuid.UUID, p domain.EntryPatch) (*domain.TempLogEntry, error) {
	var row entryRow
	err := pgxscan.Get(ctx, r.q(ctx), &row, updateEntrySQL,
		entryID, driverID, p.Temperature, p.LocationName, p.PhotoURL, p.Notes)
	if pgxscan.NotFound(err) {
		return nil, r.entryMiss(ctx, entryID)
	}
	if err != nil {
		return nil, mapError(err, "temp_log_entry", entryID)
	}
	out := row.toDomain()
	return &out, nil
}

// DeleteEntry removes an entry under the same condition as UpdateEntry.
func (r *Repo) DeleteEntry(ctx context.Context, entryID, driverID uuid.UUID) error {
	tag, err := r.q(ctx).Exec(ctx, deleteEntrySQL, entryID, driverID)
	if err != nil {
		return mapError(err, "temp_log_entry", entryID)
	}
	if tag.RowsAffected() == 0 {
		return r.entryMiss(ctx, entryID)
	}
	return nil
}

// entryMiss explains a conditional entry write that matched no row.
func (r *Repo) entryMiss(ctx context.Context, entryID uuid.UUID) error {
	var exists bool
	if err := r.q(ctx).QueryRow(ctx, entryExistsSQL, entryID).Scan(&exists); err != nil {
		return mapError(err, "temp_log_entry", entryID)
	}
	if !exists {
		return fmt.Errorf("temp_log_entry %s: %w", entryID, domain.ErrNotFound)
	}
	return fmt.Errorf("temp_log_entry %s: %w", entryID, domain.ErrInvalidState)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

func (r *Repo) getSession(ctx context.Context, query string, arg uuid.UUID) (*domain.TempLogSession, error) {
	var row sessionRow
	if err := pgxscan.Get(ctx, r.q(ctx), &row, query, arg); err != nil {
		return nil, mapError(err, "temp_log_session", arg)
	}
	s := row.toDomain()
	return &s, nil
}

// mapError folds scany's empty-result error into domain.ErrNotFound before
// handing off to the shared pg mapping.
func mapError(err error, entity string, id any) error {
	if pgxscan.NotFound(err) {
		return fmt.Errorf("%s %v: %w", entity, id, domain.ErrNotFound)
	}
	if errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return postgres.MapError(err, entity, id)
}
