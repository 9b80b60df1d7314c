package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ryankelly77/raptor-portal-sub000/internal/domain"
	"github.com/ryankelly77/raptor-portal-sub000/internal/service/auth"
)

type authService interface {
	AdminLogin(ctx context.Context, input auth.AdminLoginInput) (*auth.LoginResult, error)
	DriverLogin(ctx context.Context, input auth.DriverLoginInput) (*auth.LoginResult, error)
	SetDriverPIN(ctx context.Context, input auth.SetPINInput) error
}

// AuthHandler serves the login endpoints and driver PIN management.
type AuthHandler struct {
	svc authService
	log *zap.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: log.Named("rest.auth")}
}

type adminLoginRequest struct {
	Password string `json:"password"`
}

type driverLoginRequest struct {
	Email string `json:"email"`
	PIN   any    `json:"pin"`
}

type setPINRequest struct {
	PIN any `json:"pin"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Role      string    `json:"role"`
	DriverID  string    `json:"driverId,omitempty"`
	Name      string    `json:"name,omitempty"`
}

// AdminLogin handles POST /api/auth/admin/login.
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.AdminLogin(r.Context(), auth.AdminLoginInput{Password: req.Password})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLoginResponse(res))
}

// DriverLogin handles POST /api/auth/driver/login.
func (h *AuthHandler) DriverLogin(w http.ResponseWriter, r *http.Request) {
	var req driverLoginRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.DriverLogin(r.Context(), auth.DriverLoginInput{
		Email: req.Email,
		PIN:   pinString(req.PIN),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLoginResponse(res))
}

// SetDriverPIN handles POST /api/admin/drivers/{id}/pin.
func (h *AuthHandler) SetDriverPIN(w http.ResponseWriter, r *http.Request) {
	driverID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("driver_id", "must be a uuid"))
		return
	}
	var req setPINRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.SetDriverPIN(r.Context(), auth.SetPINInput{DriverID: driverID, PIN: pinString(req.PIN)}); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// pinString accepts a PIN sent as a string or a bare JSON number.
func pinString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case json.Number:
		return x.String()
	}
	return ""
}

func toLoginResponse(res *auth.LoginResult) loginResponse {
	out := loginResponse{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		Role:      string(res.Principal.Role),
		Name:      res.Name,
	}
	if res.Principal.IsDriver() {
		out.DriverID = res.Principal.DriverID.String()
	}
	return out
}
