package rest

import (
	"context"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/ryankelly77/raptor-portal-sub000/internal/domain"
	"github.com/ryankelly77/raptor-portal-sub000/internal/service/crud"
)

type crudService interface {
	Execute(ctx context.Context, req crud.Request) (crud.Result, error)
}

// CRUDHandler exposes the admin dispatcher as one action endpoint plus
// resource-style aliases. Routes are mounted behind admin auth.
type CRUDHandler struct {
	svc crudService
	log *zap.Logger
}

// NewCRUDHandler creates a CRUDHandler.
func NewCRUDHandler(svc crudService, log *zap.Logger) *CRUDHandler {
	return &CRUDHandler{svc: svc, log: log.Named("rest.crud")}
}

type crudRequest struct {
	EntityType string         `json:"entityType"`
	Table      string         `json:"table"`
	Action     string         `json:"action"`
	ID         any            `json:"id"`
	Data       map[string]any `json:"data"`
	Filters    map[string]any `json:"filters"`
	Limit      uint64         `json:"limit"`
	Offset     uint64         `json:"offset"`
}

// Dispatch handles POST /api/admin/crud.
func (h *CRUDHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	var req crudRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	entity := req.EntityType
	if entity == "" {
		entity = req.Table
	}

	h.execute(w, r, http.StatusOK, crud.Request{
		EntityType: entity,
		Action:     domain.Action(req.Action),
		ID:         req.ID,
		Data:       req.Data,
		Filters:    req.Filters,
		Limit:      req.Limit,
		Offset:     req.Offset,
	})
}

// List handles GET /api/admin/{entity}. Query parameters other than limit
// and offset are equality filters.
func (h *CRUDHandler) List(w http.ResponseWriter, r *http.Request) {
	req := crud.Request{
		EntityType: r.PathValue("entity"),
		Action:     domain.ActionRead,
		Filters:    make(map[string]any),
	}
	for key, values := range r.URL.Query() {
		if len(values) == 0 {
			continue
		}
		switch key {
		case "limit":
			n, err := strconv.ParseUint(values[0], 10, 64)
			if err != nil {
				handleError(h.log, w, r, domain.NewValidationError("limit", "must be a non-negative integer"))
				return
			}
			req.Limit = n
		case "offset":
			n, err := strconv.ParseUint(values[0], 10, 64)
			if err != nil {
				handleError(h.log, w, r, domain.NewValidationError("offset", "must be a non-negative integer"))
				return
			}
			req.Offset = n
		default:
			req.Filters[key] = values[0]
		}
	}
	h.execute(w, r, http.StatusOK, req)
}

// Get handles GET /api/admin/{entity}/{id}.
func (h *CRUDHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.execute(w, r, http.StatusOK, crud.Request{
		EntityType: r.PathValue("entity"),
		Action:     domain.ActionRead,
		ID:         r.PathValue("id"),
	})
}

// Create handles POST /api/admin/{entity}. The body is the field map.
func (h *CRUDHandler) Create(w http.ResponseWriter, r *http.Request) {
	var data map[string]any
	if err := decodeBody(r, &data); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.execute(w, r, http.StatusCreated, crud.Request{
		EntityType: r.PathValue("entity"),
		Action:     domain.ActionCreate,
		Data:       data,
	})
}

// Update handles PATCH /api/admin/{entity}/{id}. The body is the field map.
func (h *CRUDHandler) Update(w http.ResponseWriter, r *http.Request) {
	var data map[string]any
	if err := decodeBody(r, &data); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.execute(w, r, http.StatusOK, crud.Request{
		EntityType: r.PathValue("entity"),
		Action:     domain.ActionUpdate,
		ID:         r.PathValue("id"),
		Data:       data,
	})
}

// Delete handles DELETE /api/admin/{entity}/{id}.
func (h *CRUDHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.execute(w, r, http.StatusOK, crud.Request{
		EntityType: r.PathValue("entity"),
		Action:     domain.ActionDelete,
		ID:         r.PathValue("id"),
	})
}

func (h *CRUDHandler) execute(w http.ResponseWriter, r *http.Request, status int, req crud.Request) {
	res, err := h.svc.Execute(r.Context(), req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, status, res)
}
