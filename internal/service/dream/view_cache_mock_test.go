package dream

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/dreamjournal-backend/internal/adapter/cache"
	"sync"
)

var _ viewCache = &viewCacheMock{}

type viewCacheMock struct {
	GetFunc        func(ctx context.Context, userID uuid.UUID, view string, dst any) (bool, cache.Stamp, error)
	InvalidateFunc func(ctx context.Context, userID uuid.UUID) error
	SetFunc        func(ctx context.Context, userID uuid.UUID, view string, stamp cache.Stamp, v any) error

	calls struct {
		Get []struct {
			Ctx    context.Context
			UserID uuid.UUID
			View   string
			Dst    any
		}
		Invalidate []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Set []struct {
			Ctx    context.Context
			UserID uuid.UUID
			View   string
			Stamp  cache.Stamp
			V      any
		}
	}
	lockGet        sync.RWMutex
	lockInvalidate sync.RWMutex
	lockSet        sync.RWMutex
}

func (mock *viewCacheMock) Get(ctx context.Context, userID uuid.UUID, view string, dst any) (bool, cache.Stamp, error) {
	if mock.GetFunc == nil {
		panic("viewCacheMock.GetFunc: method is nil but viewCache.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		View   string
		Dst    any
	}{Ctx: ctx, UserID: userID, View: view, Dst: dst}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userID, view, dst)
}

func (mock *viewCacheMock) GetCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	View   string
	Dst    any
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
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

func (mock *viewCacheMock) Set(ctx context.Context, userID uuid.UUID, view string, stamp cache.Stamp, v any) error {
	if mock.SetFunc == nil {
		panic("viewCacheMock.SetFunc: method is nil but viewCache.Set was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		View   string
		Stamp  cache.Stamp
		V      any
	}{Ctx: ctx, UserID: userID, View: view, Stamp: stamp, V: v}
	mock.lockSet.Lock()
	mock.calls.Set = append(mock.calls.Set, callInfo)
	mock.lockSet.Unlock()
	return mock.SetFunc(ctx, userID, view, stamp, v)
}

func (mock *viewCacheMock) SetCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	View   string
	Stamp  cache.Stamp
	V      any
} {
	mock.lockSet.RLock()
	calls := mock.calls.Set
	mock.lockSet.RUnlock()
	return calls
}
