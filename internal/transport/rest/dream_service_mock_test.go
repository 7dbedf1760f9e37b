package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
	"github.com/heartmarshall/dreamjournal-backend/internal/service/dream"
	"sync"
)

var _ dreamService = &dreamServiceMock{}

type dreamServiceMock struct {
	CreateFunc  func(ctx context.Context, input dream.DreamInput) (*domain.Dream, error)
	DeleteFunc  func(ctx context.Context, dreamID uuid.UUID) error
	GetByIDFunc func(ctx context.Context, dreamID uuid.UUID) (*domain.Dream, error)
	ListFunc    func(ctx context.Context, query string) ([]domain.Dream, error)
	UpdateFunc  func(ctx context.Context, dreamID uuid.UUID, input dream.DreamInput) (*domain.Dream, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input dream.DreamInput
		}
		Delete []struct {
			Ctx     context.Context
			DreamID uuid.UUID
		}
		GetByID []struct {
			Ctx     context.Context
			DreamID uuid.UUID
		}
		List []struct {
			Ctx   context.Context
			Query string
		}
		Update []struct {
			Ctx     context.Context
			DreamID uuid.UUID
			Input   dream.DreamInput
		}
	}
	lockCreate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockUpdate  sync.RWMutex
}

func (mock *dreamServiceMock) Create(ctx context.Context, input dream.DreamInput) (*domain.Dream, error) {
	if mock.CreateFunc == nil {
		panic("dreamServiceMock.CreateFunc: method is nil but dreamService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input dream.DreamInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *dreamServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input dream.DreamInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *dreamServiceMock) Delete(ctx context.Context, dreamID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("dreamServiceMock.DeleteFunc: method is nil but dreamService.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		DreamID uuid.UUID
	}{Ctx: ctx, DreamID: dreamID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, dreamID)
}

func (mock *dreamServiceMock) DeleteCalls() []struct {
	Ctx     context.Context
	DreamID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *dreamServiceMock) GetByID(ctx context.Context, dreamID uuid.UUID) (*domain.Dream, error) {
	if mock.GetByIDFunc == nil {
		panic("dreamServiceMock.GetByIDFunc: method is nil but dreamService.GetByID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		DreamID uuid.UUID
	}{Ctx: ctx, DreamID: dreamID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, dreamID)
}

func (mock *dreamServiceMock) GetByIDCalls() []struct {
	Ctx     context.Context
	DreamID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *dreamServiceMock) List(ctx context.Context, query string) ([]domain.Dream, error) {
	if mock.ListFunc == nil {
		panic("dreamServiceMock.ListFunc: method is nil but dreamService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Query string
	}{Ctx: ctx, Query: query}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, query)
}

func (mock *dreamServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Query string
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *dreamServiceMock) Update(ctx context.Context, dreamID uuid.UUID, input dream.DreamInput) (*domain.Dream, error) {
	if mock.UpdateFunc == nil {
		panic("dreamServiceMock.UpdateFunc: method is nil but dreamService.Update was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		DreamID uuid.UUID
		Input   dream.DreamInput
	}{Ctx: ctx, DreamID: dreamID, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, dreamID, input)
}

func (mock *dreamServiceMock) UpdateCalls() []struct {
	Ctx     context.Context
	DreamID uuid.UUID
	Input   dream.DreamInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
