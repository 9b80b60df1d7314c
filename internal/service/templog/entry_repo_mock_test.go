package templog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ryankelly77/raptor-portal-sub000/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	ListEntriesFunc     func(ctx context.Context, sessionID uuid.UUID) ([]domain.TempLogEntry, error)
	MaxDeliveryStopFunc func(ctx context.Context, sessionID uuid.UUID) (int, error)
	InsertEntryFunc     func(ctx context.Context, e domain.TempLogEntry) (*domain.TempLogEntry, error)
	EntryOwnerFunc      func(ctx context.Context, entryID uuid.UUID) (*domain.EntryOwner, error)
	UpdateEntryFunc     func(ctx context.Context, entryID uuid.UUID, driverID uuid.UUID, p domain.EntryPatch) (*domain.TempLogEntry, error)
	DeleteEntryFunc     func(ctx context.Context, entryID uuid.UUID, driverID uuid.UUID) error

	calls struct {
		ListEntries []struct {
			SessionID uuid.UUID
		}
		MaxDeliveryStop []struct {
			SessionID uuid.UUID
		}
		InsertEntry []struct {
			E domain.TempLogEntry
		}
		EntryOwner []struct {
			EntryID uuid.UUID
		}
		UpdateEntry []struct {
			EntryID  uuid.UUID
			DriverID uuid.UUID
			P        domain.EntryPatch
		}
		DeleteEntry []struct {
			EntryID  uuid.UUID
			DriverID uuid.UUID
		}
	}
	lockListEntries     sync.RWMutex
	lockMaxDeliveryStop sync.RWMutex
	lockInsertEntry     sync.RWMutex
	lockEntryOwner      sync.RWMutex
	lockUpdateEntry     sync.RWMutex
	lockDeleteEntry     sync.RWMutex
}

func (mock *entryRepoMock) ListEntries(ctx context.Context, sessionID uuid.UUID) ([]domain.TempLogEntry, error) {
	if mock.ListEntriesFunc == nil {
		panic("entryRepoMock.ListEntriesFunc: method is nil but entryRepo.ListEntries was just called")
	}
	callInfo := struct {
		SessionID uuid.UUID
	}{
		SessionID: sessionID,
	}
	mock.lockListEntries.Lock()
	mock.calls.ListEntries = append(mock.calls.ListEntries, callInfo)
	mock.lockListEntries.Unlock()
	return mock.ListEntriesFunc(ctx, sessionID)
}

func (mock *entryRepoMock) ListEntriesCalls() []struct {
	SessionID uuid.UUID
} {
	mock.lockListEntries.RLock()
	calls := mock.calls.ListEntries
	mock.lockListEntries.RUnlock()
	return calls
}

func (mock *entryRepoMock) MaxDeliveryStop(ctx context.Context, sessionID uuid.UUID) (int, error) {
	if mock.MaxDeliveryStopFunc == nil {
		panic("entryRepoMock.MaxDeliveryStopFunc: method is nil but entryRepo.MaxDeliveryStop was just called")
	}
	callInfo := struct {
		SessionID uuid.UUID
	}{
		SessionID: sessionID,
	}
	mock.lockMaxDeliveryStop.Lock()
	mock.calls.MaxDeliveryStop = append(mock.calls.MaxDeliveryStop, callInfo)
	mock.lockMaxDeliveryStop.Unlock()
	return mock.MaxDeliveryStopFunc(ctx, sessionID)
}

func (mock *entryRepoMock) MaxDeliveryStopCalls() []struct {
	SessionID uuid.UUID
} {
	mock.lockMaxDeliveryStop.RLock()
	calls := mock.calls.MaxDeliveryStop
	mock.lockMaxDeliveryStop.RUnlock()
	return calls
}

func (mock *entryRepoMock) InsertEntry(ctx context.Context, e domain.TempLogEntry) (*domain.TempLogEntry, error) {
	if mock.InsertEntryFunc == nil {
		panic("entryRepoMock.InsertEntryFunc: method is nil but entryRepo.InsertEntry was just called")
	}
	callInfo := struct {
		E domain.TempLogEntry
	}{
		E: e,
	}
	mock.lockInsertEntry.Lock()
	mock.calls.InsertEntry = append(mock.calls.InsertEntry, callInfo)
	mock.lockInsertEntry.Unlock()
	return mock.InsertEntryFunc(ctx, e)
}

func (mock *entryRepoMock) InsertEntryCalls() []struct {
	E domain.TempLogEntry
} {
	mock.lockInsertEntry.RLock()
	calls := mock.calls.InsertEntry
	mock.lockInsertEntry.RUnlock()
	return calls
}

func (mock *entryRepoMock) EntryOwner(ctx context.Context, entryID uuid.UUID) (*domain.EntryOwner, error) {
	if mock.EntryOwnerFunc == nil {
		panic("entryRepoMock.EntryOwnerFunc: method is nil but entryRepo.EntryOwner was just called")
	}
	callInfo := struct {
		EntryID uuid.UUID
	}{
		EntryID: entryID,
	}
	mock.lockEntryOwner.Lock()
	mock.calls.EntryOwner = append(mock.calls.EntryOwner, callInfo)
	mock.lockEntryOwner.Unlock()
	return mock.EntryOwnerFunc(ctx, entryID)
}

func (mock *entryRepoMock) EntryOwnerCalls() []struct {
	EntryID uuid.UUID
} {
	mock.lockEntryOwner.RLock()
	calls := mock.calls.EntryOwner
	mock.lockEntryOwner.RUnlock()
	return calls
}

func (mock *entryRepoMock) UpdateEntry(ctx context.Context, entryID uuid.UUID, driverID uuid.UUID, p domain.EntryPatch) (*domain.TempLogEntry, error) {
	if mock.UpdateEntryFunc == nil {
		panic("entryRepoMock.UpdateEntryFunc: method is nil but entryRepo.UpdateEntry was just called")
	}
	callInfo := struct {
		EntryID  uuid.UUID
		DriverID uuid.UUID
		P        domain.EntryPatch
	}{
		EntryID:  entryID,
		DriverID: driverID,
		P:        p,
	}
	mock.lockUpdateEntry.Lock()
	mock.calls.UpdateEntry = append(mock.calls.UpdateEntry, callInfo)
	mock.lockUpdateEntry.Unlock()
	return mock.UpdateEntryFunc(ctx, entryID, driverID, p)
}

func (mock *entryRepoMock) UpdateEntryCalls() []struct {
	EntryID  uuid.UUID
	DriverID uuid.UUID
	P        domain.EntryPatch
} {
	mock.lockUpdateEntry.RLock()
	calls := mock.calls.UpdateEntry
	mock.lockUpdateEntry.RUnlock()
	return calls
}

func (mock *entryRepoMock) DeleteEntry(ctx context.Context, entryID uuid.UUID, driverID uuid.UUID) error {
	if mock.DeleteEntryFunc == nil {
		panic("entryRepoMock.DeleteEntryFunc: method is nil but entryRepo.DeleteEntry was just called")
	}
	callInfo := struct {
		EntryID  uuid.UUID
		DriverID uuid.UUID
	}{
		EntryID:  entryID,
		DriverID: driverID,
	}
	mock.lockDeleteEntry.Lock()
	mock.calls.DeleteEntry = append(mock.calls.DeleteEntry, callInfo)
	mock.lockDeleteEntry.Unlock()
	return mock.DeleteEntryFunc(ctx, entryID, driverID)
}

func (mock *entryRepoMock) DeleteEntryCalls() []struct {
	EntryID  uuid.UUID
	DriverID uuid.UUID
} {
	mock.lockDeleteEntry.RLock()
	calls := mock.calls.DeleteEntry
	mock.lockDeleteEntry.RUnlock()
	return calls
}
