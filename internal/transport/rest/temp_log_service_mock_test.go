package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ryankelly77/raptor-portal-sub000/internal/domain"
	"github.com/ryankelly77/raptor-portal-sub000/internal/service/templog"
)

var _ tempLogService = &tempLogServiceMock{}

type tempLogServiceMock struct {
	GetActiveSessionFunc  func(ctx context.Context) (*domain.SessionWithEntries, error)
	CreateSessionFunc     func(ctx context.Context, input templog.CreateSessionInput) (*domain.TempLogSession, error)
	CompleteSessionFunc   func(ctx context.Context, sessionID uuid.UUID) (*domain.TempLogSession, error)
	GetSessionHistoryFunc func(ctx context.Context, windowDays int) ([]domain.SessionSummary, error)
	AddEntryFunc          func(ctx context.Context, input templog.AddEntryInput) (*domain.TempLogEntry, error)
	UpdateEntryFunc       func(ctx context.Context, input templog.UpdateEntryInput) (*domain.TempLogEntry, error)
	DeleteEntryFunc       func(ctx context.Context, entryID uuid.UUID) error

	calls struct {
		GetActiveSession []struct{}
		CreateSession    []struct {
			Input templog.CreateSessionInput
		}
		CompleteSession []struct {
			SessionID uuid.UUID
		}
		GetSessionHistory []struct {
			WindowDays int
		}
		AddEntry []struct {
			Input templog.AddEntryInput
		}
		UpdateEntry []struct {
			Input templog.UpdateEntryInput
		}
		DeleteEntry []struct {
			EntryID uuid.UUID
		}
	}
	lockGetActiveSession  sync.RWMutex
	lockCreateSession     sync.RWMutex
	lockCompleteSession   sync.RWMutex
	lockGetSessionHistory sync.RWMutex
	lockAddEntry          sync.RWMutex
	lockUpdateEntry       sync.RWMutex
	lockDeleteEntry       sync.RWMutex
}

func (mock *tempLogServiceMock) GetActiveSession(ctx context.Context) (*domain.SessionWithEntries, error) {
	if mock.GetActiveSessionFunc == nil {
		panic("tempLogServiceMock.GetActiveSessionFunc: method is nil but tempLogService.GetActiveSession was just called")
	}
	callInfo := struct{}{}
	mock.lockGetActiveSession.Lock()
	mock.calls.GetActiveSession = append(mock.calls.GetActiveSession, callInfo)
	mock.lockGetActiveSession.Unlock()
	return mock.GetActiveSessionFunc(ctx)
}

func (mock *tempLogServiceMock) GetActiveSessionCalls() []struct{} {
	mock.lockGetActiveSession.RLock()
	calls := mock.calls.GetActiveSession
	mock.lockGetActiveSession.RUnlock()
	return calls
}

func (mock *tempLogServiceMock) CreateSession(ctx context.Context, input templog.CreateSessionInput) (*domain.TempLogSession, error) {
	if mock.CreateSessionFunc == nil {
		panic("tempLogServiceMock.CreateSessionFunc: method is nil but tempLogService.CreateSession was just called")
	}
	callInfo := struct {
		Input templog.CreateSessionInput
	}{
		Input: input,
	}
	mock.lockCreateSession.Lock()
	mock.calls.CreateSession = append(mock.calls.CreateSession, callInfo)
	mock.lockCreateSession.Unlock()
	return mock.CreateSessionFunc(ctx, input)
}

func (mock *tempLogServiceMock) CreateSessionCalls() []struct {
	Input templog.CreateSessionInput
} {
	mock.lockCreateSession.RLock()
	calls := mock.calls.CreateSession
	mock.lockCreateSession.RUnlock()
	return calls
}

func (mock *tempLogServiceMock) CompleteSession(ctx context.Context, sessionID uuid.UUID) (*domain.TempLogSession, error) {
	if mock.CompleteSessionFunc == nil {
		panic("tempLogServiceMock.CompleteSessionFunc: method is nil but tempLogService.CompleteSession was just called")
	}
	callInfo := struct {
		SessionID uuid.UUID
	}{
		SessionID: sessionID,
	}
	mock.lockCompleteSession.Lock()
	mock.calls.CompleteSession = append(mock.calls.CompleteSession, callInfo)
	mock.lockCompleteSession.Unlock()
	return mock.CompleteSessionFunc(ctx, sessionID)
}

func (mock *tempLogServiceMock) CompleteSessionCalls() []struct {
	SessionID uuid.UUID
} {
	mock.lockCompleteSession.RLock()
	calls := mock.calls.CompleteSession
	mock.lockCompleteSession.RUnlock()
	return calls
}

func (mock *tempLogServiceMock) GetSessionHistory(ctx context.Context, windowDays int) ([]domain.SessionSummary, error) {
	if mock.GetSessionHistoryFunc == nil {
		panic("tempLogServiceMock.GetSessionHistoryFunc: method is nil but tempLogService.GetSessionHistory was just called")
	}
	callInfo := struct {
		WindowDays int
	}{
		WindowDays: windowDays,
	}
	mock.lockGetSessionHistory.Lock()
	mock.calls.GetSessionHistory = append(mock.calls.GetSessionHistory, callInfo)
	mock.lockGetSessionHistory.Unlock()
	return mock.GetSessionHistoryFunc(ctx, windowDays)
}

func (mock *tempLogServiceMock) GetSessionHistoryCalls() []struct {
	WindowDays int
} {
	mock.lockGetSessionHistory.RLock()
	calls := mock.calls.GetSessionHistory
	mock.lockGetSessionHistory.RUnlock()
	return calls
}

func (mock *tempLogServiceMock) AddEntry(ctx context.Context, input templog.AddEntryInput) (*domain.TempLogEntry, error) {
	if mock.AddEntryFunc == nil {
		panic("tempLogServiceMock.AddEntryFunc: method is nil but tempLogService.AddEntry was just called")
	}
	callInfo := struct {
		Input templog.AddEntryInput
	}{
		Input: input,
	}
	mock.lockAddEntry.Lock()
	mock.calls.AddEntry = append(mock.calls.AddEntry, callInfo)
	mock.lockAddEntry.Unlock()
	return mock.AddEntryFunc(ctx, input)
}

func (mock *tempLogServiceMock) AddEntryCalls() []struct {
	Input templog.AddEntryInput
} {
	mock.lockAddEntry.RLock()
	calls := mock.calls.AddEntry
	mock.lockAddEntry.RUnlock()
	return calls
}

func (mock *tempLogServiceMock) UpdateEntry(ctx context.Context, input templog.UpdateEntryInput) (*domain.TempLogEntry, error) {
	if mock.UpdateEntryFunc == nil {
		panic("tempLogServiceMock.UpdateEntryFunc: method is nil but tempLogService.UpdateEntry was just called")
	}
	callInfo := struct {
		Input templog.UpdateEntryInput
	}{
		Input: input,
	}
	mock.lockUpdateEntry.Lock()
	mock.calls.UpdateEntry = append(mock.calls.UpdateEntry, callInfo)
	mock.lockUpdateEntry.Unlock()
	return mock.UpdateEntryFunc(ctx, input)
}

func (mock *tempLogServiceMock) UpdateEntryCalls() []struct {
	Input templog.UpdateEntryInput
} {
	mock.lockUpdateEntry.RLock()
	calls := mock.calls.UpdateEntry
	mock.lockUpdateEntry.RUnlock()
	return calls
}

func (mock *tempLogServiceMock) DeleteEntry(ctx context.Context, entryID uuid.UUID) error {
	if mock.DeleteEntryFunc == nil {
		panic("tempLogServiceMock.DeleteEntryFunc: method is nil but tempLogService.DeleteEntry was just called")
	}
	callInfo := struct {
		EntryID uuid.UUID
	}{
		EntryID: entryID,
	}
	mock.lockDeleteEntry.Lock()
	mock.calls.DeleteEntry = append(mock.calls.DeleteEntry, callInfo)
	mock.lockDeleteEntry.Unlock()
	return mock.DeleteEntryFunc(ctx, entryID)
}

func (mock *tempLogServiceMock) DeleteEntryCalls() []struct {
	EntryID uuid.UUID
} {
	mock.lockDeleteEntry.RLock()
	calls := mock.calls.DeleteEntry
	mock.lockDeleteEntry.RUnlock()
	return calls
}
