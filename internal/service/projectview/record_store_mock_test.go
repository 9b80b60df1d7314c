package projectview

import (
	"context"
	"sync"

	"github.com/ryankelly77/raptor-portal-sub000/internal/domain"
)

var _ recordStore = &recordStoreMock{}

type recordStoreMock struct {
	GetFunc  func(ctx context.Context, table string, id domain.ID) (domain.Record, error)
	ListFunc func(ctx context.Context, table string, q domain.ListQuery) ([]domain.Record, error)

	calls struct {
		Get []struct {
			Table string
			ID    domain.ID
		}
		List []struct {
			Table string
			Q     domain.ListQuery
		}
	}
	lockGet  sync.RWMutex
	lockList sync.RWMutex
}

func (mock *recordStoreMock) Get(ctx context.Context, table string, id domain.ID) (domain.Record, error) {
	if mock.GetFunc == nil {
		panic("recordStoreMock.GetFunc: method is nil but recordStore.Get was just called")
	}
	callInfo := struct {
		Table string
		ID    domain.ID
	}{
		Table: table,
		ID:    id,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, table, id)
}

func (mock *recordStoreMock) GetCalls() []struct {
	Table string
	ID    domain.ID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *recordStoreMock) List(ctx context.Context, table string, q domain.ListQuery) ([]domain.Record, error) {
	if mock.ListFunc == nil {
		panic("recordStoreMock.ListFunc: method is nil but recordStore.List was just called")
	}
	callInfo := struct {
		Table string
		Q     domain.ListQuery
	}{
		Table: table,
		Q:     q,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, table, q)
}

func (mock *recordStoreMock) ListCalls() []struct {
	Table string
	Q     domain.ListQuery
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
