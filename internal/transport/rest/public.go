package rest

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/ryankelly77/raptor-portal-sub000/internal/domain"
	"github.com/ryankelly77/raptor-portal-sub000/internal/service/projectview"
)

type projectViewService interface {
	GetByToken(ctx context.Context, token string) (*projectview.View, error)
}

// PublicHandler serves the unauthenticated project page.
type PublicHandler struct {
	svc projectViewService
	log *zap.Logger
}

// NewPublicHandler creates a PublicHandler.
func NewPublicHandler(svc projectViewService, log *zap.Logger) *PublicHandler {
	return &PublicHandler{svc: svc, log: log.Named("rest.public")}
}

type projectViewResponse struct {
	Project  domain.Record   `json:"project"`
	Property domain.Record   `json:"property"`
	Phases   []domain.Record `json:"phases"`
}

// Project handles GET /api/public/projects/{token}.
func (h *PublicHandler) Project(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.GetByToken(r.Context(), r.PathValue("token"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := projectViewResponse{
		Project:  view.Project,
		Property: view.Property,
		Phases:   make([]domain.Record, len(view.Phases)),
	}
	for i, ph := range view.Phases {
		rec := make(domain.Record, len(ph.Phase)+1)
		for k, v := range ph.Phase {
			rec[k] = v
		}
		rec["tasks"] = ph.Tasks
		resp.Phases[i] = rec
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, resp)
}
