package rest

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/ryankelly77/raptor-portal-sub000/internal/domain"
)

type errorResponse struct {
	Error   string `json:"error"`
	Kind    string `json:"kind"`
	Field   string `json:"field,omitempty"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
	Hint    string `json:"hint,omitempty"`
}

// statusFor maps an error kind to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrUnknownEntityType), errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, domain.ErrServiceUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// handleError writes err as a JSON error body. Storage diagnostics are
// passed through; anything unclassified becomes a generic 500.
func handleError(log *zap.Logger, w http.ResponseWriter, r *http.Request, err error) {
	resp := errorResponse{Error: err.Error(), Kind: domain.Kind(err)}

	var ve *domain.ValidationError
	var se *domain.StorageError
	switch {
	case errors.As(err, &ve):
		resp.Field = ve.Field()
		if len(ve.Errors) > 0 {
			resp.Error = ve.Errors[0].Field + ": " + ve.Errors[0].Message
		}
	case errors.As(err, &se):
		resp.Error = se.Message
		resp.Code = se.Code
		resp.Details = se.Details
		resp.Hint = se.Hint
		log.Error("storage error",
			zap.String("path", r.URL.Path),
			zap.String("code", se.Code),
			zap.Error(err),
		)
	case errors.Is(err, domain.ErrTokenExpired):
		resp.Error = "token expired"
	case errors.Is(err, domain.ErrServiceUnavailable):
		resp.Error = "service not configured"
	case resp.Kind == "Internal":
		log.Error("internal error", zap.String("path", r.URL.Path), zap.Error(err))
		resp.Error = "internal server error"
	}

	writeJSON(w, statusFor(err), resp)
}
