package templog

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ryankelly77/raptor-portal-sub000/internal/domain"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	CreateSessionFunc    func(ctx context.Context, driverID uuid.UUID, vehicleID *string, notes *string, sessionDate time.Time) (*domain.TempLogSession, error)
	GetSessionFunc       func(ctx context.Context, id uuid.UUID) (*domain.TempLogSession, error)
	LockSessionFunc      func(ctx context.Context, id uuid.UUID) (*domain.TempLogSession, error)
	ActiveSessionFunc    func(ctx context.Context, driverID uuid.UUID) (*domain.TempLogSession, error)
	HasActiveSessionFunc func(ctx context.Context, driverID uuid.UUID) (bool, error)
	LockDriverFunc       func(ctx context.Context, driverID uuid.UUID) error
	CompleteSessionFunc  func(ctx context.Context, id uuid.UUID, driverID uuid.UUID) (*domain.TempLogSession, error)
	CompleteStaleFunc    func(ctx context.Context, cutoff time.Time) (int64, error)
	HistoryFunc          func(ctx context.Context, driverID uuid.UUID, since time.Time) ([]domain.SessionSummary, error)

	calls struct {
		CreateSession []struct {
			DriverID    uuid.UUID
			VehicleID   *string
			Notes       *string
			SessionDate time.Time
		}
		GetSession []struct {
			ID uuid.UUID
		}
		LockSession []struct {
			ID uuid.UUID
		}
		ActiveSession []struct {
			DriverID uuid.UUID
		}
		HasActiveSession []struct {
			DriverID uuid.UUID
		}
		LockDriver []struct {
			DriverID uuid.UUID
		}
		CompleteSession []struct {
			ID       uuid.UUID
			DriverID uuid.UUID
		}
		CompleteStale []struct {
			Cutoff time.Time
		}
		History []struct {
			DriverID uuid.UUID
			Since    time.Time
		}
	}
	lockCreateSession    sync.RWMutex
	lockGetSession       sync.RWMutex
	lockLockSession      sync.RWMutex
	lockActiveSession    sync.RWMutex
	lockHasActiveSession sync.RWMutex
	lockLockDriver       sync.RWMutex
	lockCompleteSession  sync.RWMutex
	lockCompleteStale    sync.RWMutex
	lockHistory          sync.RWMutex
}

func (mock *sessionRepoMock) CreateSession(ctx context.Context, driverID uuid.UUID, vehicleID *string, notes *string, sessionDate time.Time) (*domain.TempLogSession, error) {
	if mock.CreateSessionFunc == nil {
		panic("sessionRepoMock.CreateSessionFunc: method is nil but sessionRepo.CreateSession was just called")
	}
	callInfo := struct {
		DriverID    uuid.UUID
		VehicleID   *string
		Notes       *string
		SessionDate time.Time
	}{
		DriverID:    driverID,
		VehicleID:   vehicleID,
		Notes:       notes,
		SessionDate: sessionDate,
	}
	mock.lockCreateSession.Lock()
	mock.calls.CreateSession = append(mock.calls.CreateSession, callInfo)
	mock.lockCreateSession.Unlock()
	return mock.CreateSessionFunc(ctx, driverID, vehicleID, notes, sessionDate)
}

func (mock *sessionRepoMock) CreateSessionCalls() []struct {
	DriverID    uuid.UUID
	VehicleID   *string
	Notes       *string
	SessionDate time.Time
} {
	mock.lockCreateSession.RLock()
	calls := mock.calls.CreateSession
	mock.lockCreateSession.RUnlock()
	return calls
}

func (mock *sessionRepoMock) GetSession(ctx context.Context, id uuid.UUID) (*domain.TempLogSession, error) {
	if mock.GetSessionFunc == nil {
		panic("sessionRepoMock.GetSessionFunc: method is nil but sessionRepo.GetSession was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{
		ID: id,
	}
	mock.lockGetSession.Lock()
	mock.calls.GetSession = append(mock.calls.GetSession, callInfo)
	mock.lockGetSession.Unlock()
	return mock.GetSessionFunc(ctx, id)
}

func (mock *sessionRepoMock) GetSessionCalls() []struct {
	ID uuid.UUID
} {
	mock.lockGetSession.RLock()
	calls := mock.calls.GetSession
	mock.lockGetSession.RUnlock()
	return calls
}

func (mock *sessionRepoMock) LockSession(ctx context.Context, id uuid.UUID) (*domain.TempLogSession, error) {
	if mock.LockSessionFunc == nil {
		panic("sessionRepoMock.LockSessionFunc: method is nil but sessionRepo.LockSession was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{
		ID: id,
	}
	mock.lockLockSession.Lock()
	mock.calls.LockSession = append(mock.calls.LockSession, callInfo)
	mock.lockLockSession.Unlock()
	return mock.LockSessionFunc(ctx, id)
}

func (mock *sessionRepoMock) LockSessionCalls() []struct {
	ID uuid.UUID
} {
	mock.lockLockSession.RLock()
	calls := mock.calls.LockSession
	mock.lockLockSession.RUnlock()
	return calls
}

func (mock *sessionRepoMock) ActiveSession(ctx context.Context, driverID uuid.UUID) (*domain.TempLogSession, error) {
	if mock.ActiveSessionFunc == nil {
		panic("sessionRepoMock.ActiveSessionFunc: method is nil but sessionRepo.ActiveSession was just called")
	}
	callInfo := struct {
		DriverID uuid.UUID
	}{
		DriverID: driverID,
	}
	mock.lockActiveSession.Lock()
	mock.calls.ActiveSession = append(mock.calls.ActiveSession, callInfo)
	mock.lockActiveSession.Unlock()
	return mock.ActiveSessionFunc(ctx, driverID)
}

func (mock *sessionRepoMock) ActiveSessionCalls() []struct {
	DriverID uuid.UUID
} {
	mock.lockActiveSession.RLock()
	calls := mock.calls.ActiveSession
	mock.lockActiveSession.RUnlock()
	return calls
}

func (mock *sessionRepoMock) HasActiveSession(ctx context.Context, driverID uuid.UUID) (bool, error) {
	if mock.HasActiveSessionFunc == nil {
		panic("sessionRepoMock.HasActiveSessionFunc: method is nil but sessionRepo.HasActiveSession was just called")
	}
	callInfo := struct {
		DriverID uuid.UUID
	}{
		DriverID: driverID,
	}
	mock.lockHasActiveSession.Lock()
	mock.calls.HasActiveSession = append(mock.calls.HasActiveSession, callInfo)
	mock.lockHasActiveSession.Unlock()
	return mock.HasActiveSessionFunc(ctx, driverID)
}

func (mock *sessionRepoMock) HasActiveSessionCalls() []struct {
	DriverID uuid.UUID
} {
	mock.lockHasActiveSession.RLock()
	calls := mock.calls.HasActiveSession
	mock.lockHasActiveSession.RUnlock()
	return calls
}

func (mock *sessionRepoMock) LockDriver(ctx context.Context, driverID uuid.UUID) error {
	if mock.LockDriverFunc == nil {
		panic("sessionRepoMock.LockDriverFunc: method is nil but sessionRepo.LockDriver was just called")
	}
	callInfo := struct {
		DriverID uuid.UUID
	}{
		DriverID: driverID,
	}
	mock.lockLockDriver.Lock()
	mock.calls.LockDriver = append(mock.calls.LockDriver, callInfo)
	mock.lockLockDriver.Unlock()
	return mock.LockDriverFunc(ctx, driverID)
}

func (mock *sessionRepoMock) LockDriverCalls() []struct {
	DriverID uuid.UUID
} {
	mock.lockLockDriver.RLock()
	calls := mock.calls.LockDriver
	mock.lockLockDriver.RUnlock()
	return calls
}

func (mock *sessionRepoMock) CompleteSession(ctx context.Context, id uuid.UUID, driverID uuid.UUID) (*domain.TempLogSession, error) {
	if mock.CompleteSessionFunc == nil {
		panic("sessionRepoMock.CompleteSessionFunc: method is nil but sessionRepo.CompleteSession was just called")
	}
	callInfo := struct {
		ID       uuid.UUID
		DriverID uuid.UUID
	}{
		ID:       id,
		DriverID: driverID,
	}
	mock.lockCompleteSession.Lock()
	mock.calls.CompleteSession = append(mock.calls.CompleteSession, callInfo)
	mock.lockCompleteSession.Unlock()
	return mock.CompleteSessionFunc(ctx, id, driverID)
}

func (mock *sessionRepoMock) CompleteSessionCalls() []struct {
	ID       uuid.UUID
	DriverID uuid.UUID
} {
	mock.lockCompleteSession.RLock()
	calls := mock.calls.CompleteSession
	mock.lockCompleteSession.RUnlock()
	return calls
}

func (mock *sessionRepoMock) CompleteStale(ctx context.Context, cutoff time.Time) (int64, error) {
	if mock.CompleteStaleFunc == nil {
		panic("sessionRepoMock.CompleteStaleFunc: method is nil but sessionRepo.CompleteStale was just called")
	}
	callInfo := struct {
		Cutoff time.Time
	}{
		Cutoff: cutoff,
	}
	mock.lockCompleteStale.Lock()
	mock.calls.CompleteStale = append(mock.calls.CompleteStale, callInfo)
	mock.lockCompleteStale.Unlock()
	return mock.CompleteStaleFunc(ctx, cutoff)
}

func (mock *sessionRepoMock) CompleteStaleCalls() []struct {
	Cutoff time.Time
} {
	mock.lockCompleteStale.RLock()
	calls := mock.calls.CompleteStale
	mock.lockCompleteStale.RUnlock()
	return calls
}

func (mock *sessionRepoMock) History(ctx context.Context, driverID uuid.UUID, since time.Time) ([]domain.SessionSummary, error) {
	if mock.HistoryFunc == nil {
		panic("sessionRepoMock.HistoryFunc: method is nil but sessionRepo.History was just called")
	}
	callInfo := struct {
		DriverID uuid.UUID
		Since    time.Time
	}{
		DriverID: driverID,
		Since:    since,
	}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, callInfo)
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx, driverID, since)
}

func (mock *sessionRepoMock) HistoryCalls() []struct {
	DriverID uuid.UUID
	Since    time.Time
} {
	mock.lockHistory.RLock()
	calls := mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}
