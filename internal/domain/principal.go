package domain

import "github.com/google/uuid"

// Role is the actor class carried by a verified token.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleDriver Role = "driver"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDriver:
		return true
	}
	return false
}

// Principal is the authenticated caller of one request. It is never persisted.
type Principal struct {
	Role     Role
	DriverID uuid.UUID // set for RoleDriver only
}

func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }

func (p Principal) IsDriver() bool { return p.Role == RoleDriver && p.DriverID != uuid.Nil }
