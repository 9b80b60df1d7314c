package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ryankelly77/raptor-portal-sub000/internal/domain"
)

var _ driverRepo = &driverRepoMock{}

type driverRepoMock struct {
	GetCredentialsByEmailFunc func(ctx context.Context, email string) (*domain.DriverCredentials, error)
	SetPINHashFunc            func(ctx context.Context, id uuid.UUID, hash string) error

	calls struct {
		GetCredentialsByEmail []struct {
			Email string
		}
		SetPINHash []struct {
			ID   uuid.UUID
			Hash string
		}
	}
	lockGetCredentialsByEmail sync.RWMutex
	lockSetPINHash            sync.RWMutex
}

func (mock *driverRepoMock) GetCredentialsByEmail(ctx context.Context, email string) (*domain.DriverCredentials, error) {
	if mock.GetCredentialsByEmailFunc == nil {
		panic("driverRepoMock.GetCredentialsByEmailFunc: method is nil but driverRepo.GetCredentialsByEmail was just called")
	}
	callInfo := struct {
		Email string
	}{
		Email: email,
	}
	mock.lockGetCredentialsByEmail.Lock()
	mock.calls.GetCredentialsByEmail = append(mock.calls.GetCredentialsByEmail, callInfo)
	mock.lockGetCredentialsByEmail.Unlock()
	return mock.GetCredentialsByEmailFunc(ctx, email)
}

func (mock *driverRepoMock) GetCredentialsByEmailCalls() []struct {
	Email string
} {
	mock.lockGetCredentialsByEmail.RLock()
	calls := mock.calls.GetCredentialsByEmail
	mock.lockGetCredentialsByEmail.RUnlock()
	return calls
}

func (mock *driverRepoMock) SetPINHash(ctx context.Context, id uuid.UUID, hash string) error {
	if mock.SetPINHashFunc == nil {
		panic("driverRepoMock.SetPINHashFunc: method is nil but driverRepo.SetPINHash was just called")
	}
	callInfo := struct {
		ID   uuid.UUID
		Hash string
	}{
		ID:   id,
		Hash: hash,
	}
	mock.lockSetPINHash.Lock()
	mock.calls.SetPINHash = append(mock.calls.SetPINHash, callInfo)
	mock.lockSetPINHash.Unlock()
	return mock.SetPINHashFunc(ctx, id, hash)
}

func (mock *driverRepoMock) SetPINHashCalls() []struct {
	ID   uuid.UUID
	Hash string
} {
	mock.lockSetPINHash.RLock()
	calls := mock.calls.SetPINHash
	mock.lockSetPINHash.RUnlock()
	return calls
}
