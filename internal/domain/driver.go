package domain

import "github.com/google/uuid"

// DriverCredentials is what driver login needs from the drivers table.
// PINHash is empty when no PIN has been set.
type DriverCredentials struct {
	ID      uuid.UUID
	Name    string
	Email   string
	PINHash string
}
