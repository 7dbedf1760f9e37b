package enrichment

import (
	"context"
	"github.com/google/uuid"
	"sync"
)

var _ viewCache = &viewCacheMock{}

type viewCacheMock struct {
	InvalidateFunc func(ctx context.Context, userID uuid.UUID) error

	calls struct {
		Invalidate []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockInvalidate sync.RWMutex
}

func (mock *viewCacheMock) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if mock.InvalidateFunc == nil {
		panic("viewCacheMock.InvalidateFunc: method is nil but viewCache.Invalidate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockInvalidate.Lock()
	mock.calls.Invalidate = append(mock.calls.Invalidate, callInfo)
	mock.lockInvalidate.Unlock()
	return mock.InvalidateFunc(ctx, userID)
}

func (mock *viewCacheMock) InvalidateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockInvalidate.RLock()
	calls := mock.calls.Invalidate
	mock.lockInvalidate.RUnlock()
	return calls
}
