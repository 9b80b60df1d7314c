package middleware

import (
	"sync"

	"github.com/ryankelly77/raptor-portal-sub000/internal/domain"
)

var _ tokenValidator = &tokenValidatorMock{}

type tokenValidatorMock struct {
	AuthenticateFunc func(credential string, role domain.Role) (domain.Principal, error)

	calls struct {
		Authenticate []struct {
			Credential string
			Role       domain.Role
		}
	}
	lockAuthenticate sync.RWMutex
}

func (mock *tokenValidatorMock) Authenticate(credential string, role domain.Role) (domain.Principal, error) {
	if mock.AuthenticateFunc == nil {
		panic("tokenValidatorMock.AuthenticateFunc: method is nil but tokenValidator.Authenticate was just called")
	}
	callInfo := struct {
		Credential string
		Role       domain.Role
	}{
		Credential: credential,
		Role:       role,
	}
	mock.lockAuthenticate.Lock()
	mock.calls.Authenticate = append(mock.calls.Authenticate, callInfo)
	mock.lockAuthenticate.Unlock()
	return mock.AuthenticateFunc(credential, role)
}

func (mock *tokenValidatorMock) AuthenticateCalls() []struct {
	Credential string
	Role       domain.Role
} {
	mock.lockAuthenticate.RLock()
	calls := mock.calls.Authenticate
	mock.lockAuthenticate.RUnlock()
	return calls
}
