// Package driver implements the driver credential queries used by login.
// Driver profile CRUD goes through the generic record store.
package driver

import (
	"context"
	"fmt"
	"strings"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/ryankelly77/raptor-portal-sub000/internal/adapter/postgres"
	"github.com/ryankelly77/raptor-portal-sub000/internal/domain"
)

// Repo provides driver credential persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new driver repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const credentialsByEmailSQL = `
SELECT id, name, email, COALESCE(pin_hash, '') AS pin_hash
FROM drivers
WHERE lower(email) = $1 AND is_active`

const setPINHashSQL = `
UPDATE drivers
SET pin_hash = $2, updated_at = now()
WHERE id = $1`

type credentialsRow struct {
	ID      uuid.UUID `db:"id"`
	Name    string    `db:"name"`
	Email   string    `db:"email"`
	PINHash string    `db:"pin_hash"`
}

// GetCredentialsByEmail returns an active driver's login data.
// The email match is case-insensitive. Returns domain.ErrNotFound if no
// active driver has the address.
func (r *Repo) GetCredentialsByEmail(ctx context.Context, email string) (*domain.DriverCredentials, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var row credentialsRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, credentialsByEmailSQL, email)
	if pgxscan.NotFound(err) {
		return nil, fmt.Errorf("driver %s: %w", email, domain.ErrNotFound)
	}
	if err != nil {
		return nil, postgres.MapError(err, "driver", email)
	}

	return &domain.DriverCredentials{
		ID:      row.ID,
		Name:    row.Name,
		Email:   row.Email,
		PINHash: row.PINHash,
	}, nil
}

// SetPINHash stores a new PIN hash. Returns domain.ErrNotFound if the driver
// does not exist.
func (r *Repo) SetPINHash(ctx context.Context, id uuid.UUID, hash string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, setPINHashSQL, id, hash)
	if err != nil {
		return postgres.MapError(err, "driver", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("driver %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
