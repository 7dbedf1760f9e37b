package dream

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
	"sync"
)

var _ dreamRepo = &dreamRepoMock{}

type dreamRepoMock struct {
	CreateFunc  func(ctx context.Context, ownerID uuid.UUID, fields domain.DreamFields) (*domain.Dream, error)
	DeleteFunc  func(ctx context.Context, ownerID uuid.UUID, dreamID uuid.UUID) (bool, error)
	GetByIDFunc func(ctx context.Context, ownerID uuid.UUID, dreamID uuid.UUID) (*domain.Dream, error)
	ListFunc    func(ctx context.Context, ownerID uuid.UUID, filter domain.DreamFilter) ([]domain.Dream, error)
	UpdateFunc  func(ctx context.Context, ownerID uuid.UUID, dreamID uuid.UUID, fields domain.DreamFields) (*domain.Dream, error)

	calls struct {
		Create []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Fields  domain.DreamFields
		}
		Delete []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			DreamID uuid.UUID
		}
		GetByID []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			DreamID uuid.UUID
		}
		List []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Filter  domain.DreamFilter
		}
		Update []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			DreamID uuid.UUID
			Fields  domain.DreamFields
		}
	}
	lockCreate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockUpdate  sync.RWMutex
}

func (mock *dreamRepoMock) Create(ctx context.Context, ownerID uuid.UUID, fields domain.DreamFields) (*domain.Dream, error) {
	if mock.CreateFunc == nil {
		panic("dreamRepoMock.CreateFunc: method is nil but dreamRepo.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Fields  domain.DreamFields
	}{Ctx: ctx, OwnerID: ownerID, Fields: fields}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, ownerID, fields)
}

func (mock *dreamRepoMock) CreateCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Fields  domain.DreamFields
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *dreamRepoMock) Delete(ctx context.Context, ownerID uuid.UUID, dreamID uuid.UUID) (bool, error) {
	if mock.DeleteFunc == nil {
		panic("dreamRepoMock.DeleteFunc: method is nil but dreamRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		DreamID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, DreamID: dreamID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, ownerID, dreamID)
}

func (mock *dreamRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	DreamID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *dreamRepoMock) GetByID(ctx context.Context, ownerID uuid.UUID, dreamID uuid.UUID) (*domain.Dream, error) {
	if mock.GetByIDFunc == nil {
		panic("dreamRepoMock.GetByIDFunc: method is nil but dreamRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		DreamID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, DreamID: dreamID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, ownerID, dreamID)
}

func (mock *dreamRepoMock) GetByIDCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	DreamID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *dreamRepoMock) List(ctx context.Context, ownerID uuid.UUID, filter domain.DreamFilter) ([]domain.Dream, error) {
	if mock.ListFunc == nil {
		panic("dreamRepoMock.ListFunc: method is nil but dreamRepo.List was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Filter  domain.DreamFilter
	}{Ctx: ctx, OwnerID: ownerID, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, ownerID, filter)
}

func (mock *dreamRepoMock) ListCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Filter  domain.DreamFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *dreamRepoMock) Update(ctx context.Context, ownerID uuid.UUID, dreamID uuid.UUID, fields domain.DreamFields) (*domain.Dream, error) {
	if mock.UpdateFunc == nil {
		panic("dreamRepoMock.UpdateFunc: method is nil but dreamRepo.Update was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		DreamID uuid.UUID
		Fields  domain.DreamFields
	}{Ctx: ctx, OwnerID: ownerID, DreamID: dreamID, Fields: fields}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, ownerID, dreamID, fields)
}

func (mock *dreamRepoMock) UpdateCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	DreamID uuid.UUID
	Fields  domain.DreamFields
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
