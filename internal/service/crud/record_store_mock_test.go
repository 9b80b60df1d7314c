package crud

import (
	"context"
	"sync"

	"github.com/ryankelly77/raptor-portal-sub000/internal/domain"
)

var _ recordStore = &recordStoreMock{}

type recordStoreMock struct {
	GetFunc    func(ctx context.Context, table string, id domain.ID) (domain.Record, error)
	ListFunc   func(ctx context.Context, table string, q domain.ListQuery) ([]domain.Record, error)
	InsertFunc func(ctx context.Context, table string, fields domain.Record) (domain.Record, error)
	UpdateFunc func(ctx context.Context, table string, id domain.ID, fields domain.Record) (domain.Record, error)
	DeleteFunc func(ctx context.Context, table string, id domain.ID) error

	calls struct {
		Get []struct {
			Table string
			ID    domain.ID
		}
		List []struct {
			Table string
			Q     domain.ListQuery
		}
		Insert []struct {
			Table  string
			Fields domain.Record
		}
		Update []struct {
			Table  string
			ID     domain.ID
			Fields domain.Record
		}
		Delete []struct {
			Table string
			ID    domain.ID
		}
	}
	lockGet    sync.RWMutex
	lockList   sync.RWMutex
	lockInsert sync.RWMutex
	lockUpdate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *recordStoreMock) Get(ctx context.Context, table string, id domain.ID) (domain.Record, error) {
	if mock.GetFunc == nil {
		panic("recordStoreMock.GetFunc: method is nil but recordStore.Get was just called")
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, struct {
		Table string
		ID    domain.ID
	}{table, id})
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, table, id)
}

func (mock *recordStoreMock) GetCalls() []struct {
	Table string
	ID    domain.ID
} {
	mock.lockGet.RLock()
	defer mock.lockGet.RUnlock()
	return mock.calls.Get
}

func (mock *recordStoreMock) List(ctx context.Context, table string, q domain.ListQuery) ([]domain.Record, error) {
	if mock.ListFunc == nil {
		panic("recordStoreMock.ListFunc: method is nil but recordStore.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		Table string
		Q     domain.ListQuery
	}{table, q})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, table, q)
}

func (mock *recordStoreMock) ListCalls() []struct {
	Table string
	Q     domain.ListQuery
} {
	mock.lockList.RLock()
	defer mock.lockList.RUnlock()
	return mock.calls.List
}

func (mock *recordStoreMock) Insert(ctx context.Context, table string, fields domain.Record) (domain.Record, error) {
	if mock.InsertFunc == nil {
		panic("recordStoreMock.InsertFunc: method is nil but recordStore.Insert was just called")
	}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, struct {
		Table  string
		Fields domain.Record
	}{table, fields})
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, table, fields)
}

func (mock *recordStoreMock) InsertCalls() []struct {
	Table  string
	Fields domain.Record
} {
	mock.lockInsert.RLock()
	defer mock.lockInsert.RUnlock()
	return mock.calls.Insert
}

func (mock *recordStoreMock) Update(ctx context.Context, table string, id domain.ID, fields domain.Record) (domain.Record, error) {
	if mock.UpdateFunc == nil {
		panic("recordStoreMock.UpdateFunc: method is nil but recordStore.Update was just called")
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		Table  string
		ID     domain.ID
		Fields domain.Record
	}{table, id, fields})
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, table, id, fields)
}

func (mock *recordStoreMock) UpdateCalls() []struct {
	Table  string
	ID     domain.ID
	Fields domain.Record
} {
	mock.lockUpdate.RLock()
	defer mock.lockUpdate.RUnlock()
	return mock.calls.Update
}

func (mock *recordStoreMock) Delete(ctx context.Context, table string, id domain.ID) error {
	if mock.DeleteFunc == nil {
		panic("recordStoreMock.DeleteFunc: method is nil but recordStore.Delete was just called")
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		Table string
		ID    domain.ID
	}{table, id})
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, table, id)
}

func (mock *recordStoreMock) DeleteCalls() []struct {
	Table string
	ID    domain.ID
} {
	mock.lockDelete.RLock()
	defer mock.lockDelete.RUnlock()
	return mock.calls.Delete
}
