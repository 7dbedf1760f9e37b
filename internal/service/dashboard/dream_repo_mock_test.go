package dashboard

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
	"sync"
)

var _ dreamRepo = &dreamRepoMock{}

type dreamRepoMock struct {
	CountFunc       func(ctx context.Context, ownerID uuid.UUID) (int, error)
	ListFunc        func(ctx context.Context, ownerID uuid.UUID, filter domain.DreamFilter) ([]domain.Dream, error)
	TopEmotionsFunc func(ctx context.Context, ownerID uuid.UUID, limit int) ([]domain.EmotionCount, error)

	calls struct {
		Count []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		List []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Filter  domain.DreamFilter
		}
		TopEmotions []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Limit   int
		}
	}
	lockCount       sync.RWMutex
	lockList        sync.RWMutex
	lockTopEmotions sync.RWMutex
}

func (mock *dreamRepoMock) Count(ctx context.Context, ownerID uuid.UUID) (int, error) {
	if mock.CountFunc == nil {
		panic("dreamRepoMock.CountFunc: method is nil but dreamRepo.Count was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, ownerID)
}

func (mock *dreamRepoMock) CountCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
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

func (mock *dreamRepoMock) TopEmotions(ctx context.Context, ownerID uuid.UUID, limit int) ([]domain.EmotionCount, error) {
	if mock.TopEmotionsFunc == nil {
		panic("dreamRepoMock.TopEmotionsFunc: method is nil but dreamRepo.TopEmotions was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Limit   int
	}{Ctx: ctx, OwnerID: ownerID, Limit: limit}
	mock.lockTopEmotions.Lock()
	mock.calls.TopEmotions = append(mock.calls.TopEmotions, callInfo)
	mock.lockTopEmotions.Unlock()
	return mock.TopEmotionsFunc(ctx, ownerID, limit)
}

func (mock *dreamRepoMock) TopEmotionsCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Limit   int
} {
	mock.lockTopEmotions.RLock()
	calls := mock.calls.TopEmotions
	mock.lockTopEmotions.RUnlock()
	return calls
}
