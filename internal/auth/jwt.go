package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ryankelly77/raptor-portal-sub000/internal/config"
	"github.com/ryankelly77/raptor-portal-sub000/internal/domain"
)

// adminSubject is the JWT subject of admin tokens; admins carry no driver id.
const adminSubject = "admin"

// JWTManager issues and verifies the HS256 tokens of admins and drivers.
// A manager built without a secret fails every call with
// domain.ErrServiceUnavailable instead of accepting anything.
type JWTManager struct {
	secret    []byte
	issuer    string
	adminTTL  time.Duration
	driverTTL time.Duration
	now       func() time.Time
}

// NewJWTManager creates a JWT manager from the auth configuration.
func NewJWTManager(cfg config.AuthConfig) *JWTManager {
	return &JWTManager{
		secret:    []byte(cfg.JWTSecret),
		issuer:    cfg.JWTIssuer,
		adminTTL:  cfg.AdminTokenTTL,
		driverTTL: cfg.DriverTokenTTL,
		now:       time.Now,
	}
}

// portalClaims extends standard JWT claims with the caller's role.
type portalClaims struct {
	jwt.RegisteredClaims
	Role domain.Role `json:"role"`
}

// Issue signs a token for the principal. Driver principals need a driver id.
func (m *JWTManager) Issue(p domain.Principal) (string, time.Time, error) {
	if len(m.secret) == 0 {
		return "", time.Time{}, fmt.Errorf("issue token: %w", domain.ErrServiceUnavailable)
	}

	var (
		subject string
		ttl     time.Duration
	)
	switch p.Role {
	case domain.RoleAdmin:
		subject, ttl = adminSubject, m.adminTTL
	case domain.RoleDriver:
		if p.DriverID == uuid.Nil {
			return "", time.Time{}, fmt.Errorf("issue token: driver id is required")
		}
		subject, ttl = p.DriverID.String(), m.driverTTL
	default:
		return "", time.Time{}, fmt.Errorf("issue token: unknown role %q", p.Role)
	}

	now := m.now()
	expiresAt := now.Add(ttl)
	claims := portalClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
		Role: p.Role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify parses a raw token and returns its principal.
// Expired tokens fail with domain.ErrTokenExpired, all other
// failures with domain.ErrUnauthenticated.
func (m *JWTManager) Verify(tokenString string) (domain.Principal, error) {
	if len(m.secret) == 0 {
		return domain.Principal{}, fmt.Errorf("verify token: %w", domain.ErrServiceUnavailable)
	}
	if tokenString == "" {
		return domain.Principal{}, fmt.Errorf("token is empty: %w", domain.ErrUnauthenticated)
	}

	token, err := jwt.ParseWithClaims(tokenString, &portalClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithTimeFunc(m.now), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Principal{}, domain.ErrTokenExpired
		}
		return domain.Principal{}, fmt.Errorf("parse token: %v: %w", err, domain.ErrUnauthenticated)
	}

	claims, ok := token.Claims.(*portalClaims)
	if !ok || !token.Valid {
		return domain.Principal{}, fmt.Errorf("invalid token claims: %w", domain.ErrUnauthenticated)
	}

	switch claims.Role {
	case domain.RoleAdmin:
		return domain.Principal{Role: domain.RoleAdmin}, nil
	case domain.RoleDriver:
		driverID, err := uuid.Parse(claims.Subject)
		if err != nil || driverID == uuid.Nil {
			return domain.Principal{}, fmt.Errorf("invalid driver subject: %w", domain.ErrUnauthenticated)
		}
		return domain.Principal{Role: domain.RoleDriver, DriverID: driverID}, nil
	}
	return domain.Principal{}, fmt.Errorf("unknown role %q: %w", claims.Role, domain.ErrUnauthenticated)
}

// Authenticate verifies credential material and requires the given role.
// The credential is either "Bearer <token>" or the bare token.
func (m *JWTManager) Authenticate(credential string, expected domain.Role) (domain.Principal, error) {
	if len(m.secret) == 0 {
		return domain.Principal{}, fmt.Errorf("authenticate: %w", domain.ErrServiceUnavailable)
	}

	token := ExtractToken(credential)
	if token == "" {
		return domain.Principal{}, fmt.Errorf("no credentials: %w", domain.ErrUnauthenticated)
	}

	p, err := m.Verify(token)
	if err != nil {
		return domain.Principal{}, err
	}
	if p.Role != expected {
		return domain.Principal{}, fmt.Errorf("role %s, want %s: %w", p.Role, expected, domain.ErrUnauthenticated)
	}
	return p, nil
}

// ExtractToken strips an optional case-insensitive "Bearer " prefix.
func ExtractToken(credential string) string {
	credential = strings.TrimSpace(credential)
	if scheme, rest, ok := strings.Cut(credential, " "); ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(rest)
	}
	if strings.EqualFold(credential, "Bearer") {
		return ""
	}
	return credential
}
