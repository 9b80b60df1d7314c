package rest

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/ryankelly77/raptor-portal-sub000/internal/config"
	"github.com/ryankelly77/raptor-portal-sub000/internal/domain"
	"github.com/ryankelly77/raptor-portal-sub000/internal/transport/middleware"
)

// TokenValidator checks a bearer credential for the given role.
type TokenValidator interface {
	Authenticate(credential string, role domain.Role) (domain.Principal, error)
}

// RouterConfig wires handlers and cross-cutting middleware into one mux.
type RouterConfig struct {
	Log       *zap.Logger
	Validator TokenValidator
	Limiter   *middleware.RateLimiter
	CORS      config.CORSConfig
	RateLimit config.RateLimitConfig

	Health  *HealthHandler
	Auth    *AuthHandler
	CRUD    *CRUDHandler
	TempLog *TempLogHandler
	Public  *PublicHandler
}

// NewRouter builds the HTTP surface:
//
//	Recovery → RequestID → Logger → SecureHeaders → CORS → mux
//
// Admin routes require an admin token, the temp-log route a driver token.
// Login and public routes are rate limited per client IP.
func NewRouter(cfg RouterConfig) http.Handler {
	admin := middleware.Auth(cfg.Validator, domain.RoleAdmin)
	driver := middleware.Auth(cfg.Validator, domain.RoleDriver)
	login := cfg.Limiter.Limit(cfg.RateLimit.LoginPerMinute)
	public := cfg.Limiter.Limit(cfg.RateLimit.PublicPerMinute)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", cfg.Health.Live)
	mux.HandleFunc("GET /ready", cfg.Health.Ready)
	mux.HandleFunc("GET /health", cfg.Health.Health)

	mux.Handle("POST /api/auth/admin/login", login.Then(cfg.Auth.AdminLogin))
	mux.Handle("POST /api/auth/driver/login", login.Then(cfg.Auth.DriverLogin))

	mux.Handle("GET /api/public/projects/{token}", public.Then(cfg.Public.Project))

	mux.Handle("POST /api/admin/crud", admin.Then(cfg.CRUD.Dispatch))
	mux.Handle("POST /api/admin/drivers/{id}/pin", admin.Then(cfg.Auth.SetDriverPIN))
	mux.Handle("GET /api/admin/{entity}", admin.Then(cfg.CRUD.List))
	mux.Handle("POST /api/admin/{entity}", admin.Then(cfg.CRUD.Create))
	mux.Handle("GET /api/admin/{entity}/{id}", admin.Then(cfg.CRUD.Get))
	mux.Handle("PATCH /api/admin/{entity}/{id}", admin.Then(cfg.CRUD.Update))
	mux.Handle("DELETE /api/admin/{entity}/{id}", admin.Then(cfg.CRUD.Delete))

	mux.Handle("POST /api/driver/temp-log", driver.Then(cfg.TempLog.Handle))

	return middleware.Chain(
		middleware.Recovery(cfg.Log),
		middleware.RequestID(),
		middleware.Logger(cfg.Log.Named("http")),
		middleware.SecureHeaders(),
		middleware.CORS(cfg.CORS),
	)(mux)
}
