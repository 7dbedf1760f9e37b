package rest

import (
	"context"
	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
	"sync"
)

var _ dashboardService = &dashboardServiceMock{}

type dashboardServiceMock struct {
	GetFunc func(ctx context.Context) (*domain.Dashboard, error)

	calls struct {
		Get []struct {
			Ctx context.Context
		}
	}
	lockGet sync.RWMutex
}

func (mock *dashboardServiceMock) Get(ctx context.Context) (*domain.Dashboard, error) {
	if mock.GetFunc == nil {
		panic("dashboardServiceMock.GetFunc: method is nil but dashboardService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx)
}

func (mock *dashboardServiceMock) GetCalls() []struct {
	Ctx context.Context
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}
