package rest

import (
	"context"
	"sync"

	"github.com/ryankelly77/raptor-portal-sub000/internal/service/projectview"
)

var _ projectViewService = &projectViewServiceMock{}

type projectViewServiceMock struct {
	GetByTokenFunc func(ctx context.Context, token string) (*projectview.View, error)

	calls struct {
		GetByToken []struct {
			Token string
		}
	}
	lockGetByToken sync.RWMutex
}

func (mock *projectViewServiceMock) GetByToken(ctx context.Context, token string) (*projectview.View, error) {
	if mock.GetByTokenFunc == nil {
		panic("projectViewServiceMock.GetByTokenFunc: method is nil but projectViewService.GetByToken was just called")
	}
	callInfo := struct {
		Token string
	}{
		Token: token,
	}
	mock.lockGetByToken.Lock()
	mock.calls.GetByToken = append(mock.calls.GetByToken, callInfo)
	mock.lockGetByToken.Unlock()
	return mock.GetByTokenFunc(ctx, token)
}

func (mock *projectViewServiceMock) GetByTokenCalls() []struct {
	Token string
} {
	mock.lockGetByToken.RLock()
	calls := mock.calls.GetByToken
	mock.lockGetByToken.RUnlock()
	return calls
}
