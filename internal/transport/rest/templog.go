package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ryankelly77/raptor-portal-sub000/internal/domain"
	"github.com/ryankelly77/raptor-portal-sub000/internal/service/templog"
)

type tempLogService interface {
	GetActiveSession(ctx context.Context) (*domain.SessionWithEntries, error)
	CreateSession(ctx context.Context, input templog.CreateSessionInput) (*domain.TempLogSession, error)
	CompleteSession(ctx context.Context, sessionID uuid.UUID) (*domain.TempLogSession, error)
	GetSessionHistory(ctx context.Context, windowDays int) ([]domain.SessionSummary, error)
	AddEntry(ctx context.Context, input templog.AddEntryInput) (*domain.TempLogEntry, error)
	UpdateEntry(ctx context.Context, input templog.UpdateEntryInput) (*domain.TempLogEntry, error)
	DeleteEntry(ctx context.Context, entryID uuid.UUID) error
}

// TempLogHandler serves the driver temperature log. Mounted behind driver auth.
type TempLogHandler struct {
	svc tempLogService
	log *zap.Logger
}

// NewTempLogHandler creates a TempLogHandler.
func NewTempLogHandler(svc tempLogService, log *zap.Logger) *TempLogHandler {
	return &TempLogHandler{svc: svc, log: log.Named("rest.templog")}
}

type tempLogRequest struct {
	Action string         `json:"action"`
	ID     any            `json:"id"`
	Data   map[string]any `json:"data"`
}

type sessionResponse struct {
	ID          string           `json:"id"`
	DriverID    string           `json:"driverId"`
	VehicleID   *string          `json:"vehicleId"`
	Notes       *string          `json:"notes"`
	Status      string           `json:"status"`
	SessionDate string           `json:"sessionDate"`
	CreatedAt   time.Time        `json:"createdAt"`
	CompletedAt *time.Time       `json:"completedAt"`
	Entries     *[]entryResponse `json:"entries,omitempty"`
	EntryCount  *int             `json:"entryCount,omitempty"`
}

type entryResponse struct {
	ID           string    `json:"id"`
	SessionID    string    `json:"sessionId"`
	EntryType    string    `json:"entryType"`
	StopNumber   int       `json:"stopNumber"`
	LocationName *string   `json:"locationName"`
	Temperature  float64   `json:"temperature"`
	PhotoURL     *string   `json:"photoUrl"`
	Notes        *string   `json:"notes"`
	Timestamp    time.Time `json:"timestamp"`
}

// Handle dispatches one temp-log action.
// POST /api/driver/temp-log
func (h *TempLogHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req tempLogRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if req.Data == nil {
		req.Data = map[string]any{}
	}

	resp, err := h.dispatch(r.Context(), req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *TempLogHandler) dispatch(ctx context.Context, req tempLogRequest) (map[string]any, error) {
	switch req.Action {
	case "getActiveSession":
		s, err := h.svc.GetActiveSession(ctx)
		if err != nil {
			return nil, err
		}
		if s == nil {
			return map[string]any{"session": nil}, nil
		}
		out := toSessionResponse(s.TempLogSession)
		// Always an array for the active session, even with no readings.
		entries := make([]entryResponse, len(s.Entries))
		for i, e := range s.Entries {
			entries[i] = toEntryResponse(e)
		}
		out.Entries = &entries
		return map[string]any{"session": out}, nil

	case "createSession":
		s, err := h.svc.CreateSession(ctx, templog.CreateSessionInput{
			VehicleID: stringField(req.Data, "vehicleId", "vehicle_id"),
			Notes:     stringField(req.Data, "notes"),
		})
		if err != nil {
			return nil, err
		}
		return map[string]any{"session": toSessionResponse(*s)}, nil

	case "completeSession":
		id, err := uuidArg(req.ID, req.Data, "id", "sessionId", "session_id")
		if err != nil {
			return nil, err
		}
		s, err := h.svc.CompleteSession(ctx, id)
		if err != nil {
			return nil, err
		}
		return map[string]any{"session": toSessionResponse(*s)}, nil

	case "getSessionHistory":
		days, err := intField(req.Data, "window_days", "windowDays", "window_days", "days")
		if err != nil {
			return nil, err
		}
		window := 0
		if days != nil {
			if *days < 1 {
				return nil, domain.NewValidationError("window_days", "must be at least 1")
			}
			window = *days
		}
		rows, err := h.svc.GetSessionHistory(ctx, window)
		if err != nil {
			return nil, err
		}
		out := make([]sessionResponse, len(rows))
		for i, row := range rows {
			out[i] = toSessionResponse(row.TempLogSession)
			count := row.EntryCount
			out[i].EntryCount = &count
		}
		return map[string]any{"sessions": out}, nil

	case "addEntry":
		input, err := addEntryInput(req.Data)
		if err != nil {
			return nil, err
		}
		e, err := h.svc.AddEntry(ctx, input)
		if err != nil {
			return nil, err
		}
		return map[string]any{"entry": toEntryResponse(*e)}, nil

	case "updateEntry":
		id, err := uuidArg(req.ID, req.Data, "id", "entryId", "entry_id")
		if err != nil {
			return nil, err
		}
		patch, err := entryPatch(req.Data)
		if err != nil {
			return nil, err
		}
		e, err := h.svc.UpdateEntry(ctx, templog.UpdateEntryInput{EntryID: id, Patch: patch})
		if err != nil {
			return nil, err
		}
		return map[string]any{"entry": toEntryResponse(*e)}, nil

	case "deleteEntry":
		id, err := uuidArg(req.ID, req.Data, "id", "entryId", "entry_id")
		if err != nil {
			return nil, err
		}
		if err := h.svc.DeleteEntry(ctx, id); err != nil {
			return nil, err
		}
		return map[string]any{"success": true}, nil
	}
	return nil, domain.NewValidationError("action", fmt.Sprintf("unknown action %q", req.Action))
}

func addEntryInput(data map[string]any) (templog.AddEntryInput, error) {
	sessionID, err := uuidArg(nil, data, "session_id", "sessionId", "session_id")
	if err != nil {
		return templog.AddEntryInput{}, err
	}
	input := templog.AddEntryInput{
		SessionID:    sessionID,
		LocationName: stringField(data, "locationName", "location_name"),
		PhotoURL:     stringField(data, "photoUrl", "photo_url"),
		Notes:        stringField(data, "notes"),
	}
	if et := stringField(data, "entryType", "entry_type"); et != nil {
		input.EntryType = domain.EntryType(*et)
	}
	if raw, ok := lookup(data, "temperature"); ok && raw != nil {
		t, err := templog.ParseTemperature(raw)
		if err != nil {
			return templog.AddEntryInput{}, err
		}
		input.Temperature = &t
	}
	stop, err := intField(data, "stop_number", "stopNumber", "stop_number")
	if err != nil {
		return templog.AddEntryInput{}, err
	}
	input.StopNumber = stop
	return input, nil
}

func entryPatch(data map[string]any) (domain.EntryPatch, error) {
	patch := domain.EntryPatch{
		LocationName: stringField(data, "locationName", "location_name"),
		PhotoURL:     stringField(data, "photoUrl", "photo_url"),
		Notes:        stringField(data, "notes"),
	}
	if raw, ok := lookup(data, "temperature"); ok && raw != nil {
		t, err := templog.ParseTemperature(raw)
		if err != nil {
			return domain.EntryPatch{}, err
		}
		patch.Temperature = &t
	}
	return patch, nil
}

// lookup returns the first present key. Clients send camelCase; column
// names are accepted too.
func lookup(data map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := data[k]; ok {
			return v, true
		}
	}
	return nil, false
}

func stringField(data map[string]any, keys ...string) *string {
	v, ok := lookup(data, keys...)
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

func intField(data map[string]any, field string, keys ...string) (*int, error) {
	v, ok := lookup(data, keys...)
	if !ok || v == nil {
		return nil, nil
	}
	var n int64
	switch x := v.(type) {
	case json.Number:
		i, err := x.Int64()
		if err != nil {
			return nil, domain.NewValidationError(field, "must be an integer")
		}
		n = i
	case float64:
		if x != math.Trunc(x) {
			return nil, domain.NewValidationError(field, "must be an integer")
		}
		n = int64(x)
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(x), 10, 32)
		if err != nil {
			return nil, domain.NewValidationError(field, "must be an integer")
		}
		n = i
	default:
		return nil, domain.NewValidationError(field, "must be an integer")
	}
	if n > math.MaxInt32 || n < math.MinInt32 {
		return nil, domain.NewValidationError(field, "out of range")
	}
	out := int(n)
	return &out, nil
}

// uuidArg reads an id from the top-level id or, failing that, from data.
// A missing id yields uuid.Nil so the service reports it as required.
func uuidArg(id any, data map[string]any, field string, keys ...string) (uuid.UUID, error) {
	v := id
	if v == nil {
		v, _ = lookup(data, keys...)
	}
	if v == nil {
		return uuid.Nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return uuid.Nil, domain.NewValidationError(field, "must be a uuid")
	}
	u, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(field, "must be a uuid")
	}
	return u, nil
}

func toSessionResponse(s domain.TempLogSession) sessionResponse {
	return sessionResponse{
		ID:          s.ID.String(),
		DriverID:    s.DriverID.String(),
		VehicleID:   s.VehicleID,
		Notes:       s.Notes,
		Status:      s.Status.String(),
		SessionDate: s.SessionDate.Format(time.DateOnly),
		CreatedAt:   s.CreatedAt,
		CompletedAt: s.CompletedAt,
	}
}

func toEntryResponse(e domain.TempLogEntry) entryResponse {
	return entryResponse{
		ID:           e.ID.String(),
		SessionID:    e.SessionID.String(),
		EntryType:    e.EntryType.String(),
		StopNumber:   e.StopNumber,
		LocationName: e.LocationName,
		Temperature:  e.Temperature,
		PhotoURL:     e.PhotoURL,
		Notes:        e.Notes,
		Timestamp:    e.Timestamp,
	}
}
