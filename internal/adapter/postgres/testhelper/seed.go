package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueSuffix returns a short unique string for non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeededDriver is a driver row created by SeedDriver.
type SeededDriver struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// SeedDriver inserts an active driver. pinHash may be empty.
func SeedDriver(t *testing.T, pool *pgxpool.Pool, pinHash string) SeededDriver {
	t.Helper()

	suffix := uniqueSuffix()
	d := SeededDriver{
		Name:  "Driver " + suffix,
		Email: "driver-" + suffix + "@example.com",
	}

	var hash *string
	if pinHash != "" {
		hash = &pinHash
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO drivers (name, email, pin_hash) VALUES ($1, $2, $3) RETURNING id`,
		d.Name, d.Email, hash,
	).Scan(&d.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedDriver: %v", err)
	}
	return d
}

// SeedProperty inserts a property and returns its id.
func SeedProperty(t *testing.T, pool *pgxpool.Pool) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO properties (name, city) VALUES ($1, 'Austin') RETURNING id`,
		"Property "+uniqueSuffix(),
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedProperty: %v", err)
	}
	return id
}

// SeedProject inserts an active project with the given public token under a
// new property and returns its id.
func SeedProject(t *testing.T, pool *pgxpool.Pool, publicToken string) int64 {
	t.Helper()

	propertyID := SeedProperty(t, pool)

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO projects (property_id, project_number, public_token) VALUES ($1, $2, $3) RETURNING id`,
		propertyID, "P-"+uniqueSuffix(), publicToken,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedProject: %v", err)
	}
	return id
}

// SeedPhase inserts a phase for a project and returns its id.
func SeedPhase(t *testing.T, pool *pgxpool.Pool, projectID int64, number int, title string) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO phases (project_id, phase_number, title) VALUES ($1, $2, $3) RETURNING id`,
		projectID, number, title,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedPhase: %v", err)
	}
	return id
}
