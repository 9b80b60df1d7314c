package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/ryankelly77/raptor-portal-sub000/internal/domain"
	"github.com/ryankelly77/raptor-portal-sub000/pkg/ctxutil"
)

type tokenValidator interface {
	Authenticate(credential string, role domain.Role) (domain.Principal, error)
}

// Auth rejects requests without a valid token of the given role and stores
// the resulting Principal in the request context.
func Auth(validator tokenValidator, role domain.Role) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, err := validator.Authenticate(r.Header.Get("Authorization"), role)
			if err != nil {
				writeAuthError(w, err)
				return
			}
			if h, ok := r.Context().Value(holderKey{}).(*principalHolder); ok {
				h.p, h.set = p, true
			}
			ctx := ctxutil.WithPrincipal(r.Context(), p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeAuthError(w http.ResponseWriter, err error) {
	status, msg := http.StatusUnauthorized, "unauthorized"
	switch {
	case errors.Is(err, domain.ErrServiceUnavailable):
		status, msg = http.StatusServiceUnavailable, "service not configured"
	case errors.Is(err, domain.ErrTokenExpired):
		msg = "token expired"
	}
	writeError(w, status, msg, domain.Kind(err))
}

// principalHolder lets an outer middleware see the principal that Auth
// resolved further down the chain.
type principalHolder struct {
	p   domain.Principal
	set bool
}

type holderKey struct{}

func withHolder(ctx context.Context, h *principalHolder) context.Context {
	return context.WithValue(ctx, holderKey{}, h)
}
