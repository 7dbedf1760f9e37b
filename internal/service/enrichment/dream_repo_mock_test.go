package enrichment

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
	"sync"
)

var _ dreamRepo = &dreamRepoMock{}

type dreamRepoMock struct {
	GetByIDFunc           func(ctx context.Context, ownerID uuid.UUID, dreamID uuid.UUID) (*domain.Dream, error)
	SetImageFunc          func(ctx context.Context, ownerID uuid.UUID, dreamID uuid.UUID, imageURL string) (*domain.Dream, error)
	SetInterpretationFunc func(ctx context.Context, ownerID uuid.UUID, dreamID uuid.UUID, interp domain.AIInterpretation) (*domain.Dream, error)

	calls struct {
		GetByID []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			DreamID uuid.UUID
		}
		SetImage []struct {
			Ctx      context.Context
			OwnerID  uuid.UUID
			DreamID  uuid.UUID
			ImageURL string
		}
		SetInterpretation []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			DreamID uuid.UUID
			Interp  domain.AIInterpretation
		}
	}
	lockGetByID           sync.RWMutex
	lockSetImage          sync.RWMutex
	lockSetInterpretation sync.RWMutex
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

func (mock *dreamRepoMock) SetImage(ctx context.Context, ownerID uuid.UUID, dreamID uuid.UUID, imageURL string) (*domain.Dream, error) {
	if mock.SetImageFunc == nil {
		panic("dreamRepoMock.SetImageFunc: method is nil but dreamRepo.SetImage was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		OwnerID  uuid.UUID
		DreamID  uuid.UUID
		ImageURL string
	}{Ctx: ctx, OwnerID: ownerID, DreamID: dreamID, ImageURL: imageURL}
	mock.lockSetImage.Lock()
	mock.calls.SetImage = append(mock.calls.SetImage, callInfo)
	mock.lockSetImage.Unlock()
	return mock.SetImageFunc(ctx, ownerID, dreamID, imageURL)
}

func (mock *dreamRepoMock) SetImageCalls() []struct {
	Ctx      context.Context
	OwnerID  uuid.UUID
	DreamID  uuid.UUID
	ImageURL string
} {
	mock.lockSetImage.RLock()
	calls := mock.calls.SetImage
	mock.lockSetImage.RUnlock()
	return calls
}

func (mock *dreamRepoMock) SetInterpretation(ctx context.Context, ownerID uuid.UUID, dreamID uuid.UUID, interp domain.AIInterpretation) (*domain.Dream, error) {
	if mock.SetInterpretationFunc == nil {
		panic("dreamRepoMock.SetInterpretationFunc: method is nil but dreamRepo.SetInterpretation was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		DreamID uuid.UUID
		Interp  domain.AIInterpretation
	}{Ctx: ctx, OwnerID: ownerID, DreamID: dreamID, Interp: interp}
	mock.lockSetInterpretation.Lock()
	mock.calls.SetInterpretation = append(mock.calls.SetInterpretation, callInfo)
	mock.lockSetInterpretation.Unlock()
	return mock.SetInterpretationFunc(ctx, ownerID, dreamID, interp)
}

func (mock *dreamRepoMock) SetInterpretationCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	DreamID uuid.UUID
	Interp  domain.AIInterpretation
} {
	mock.lockSetInterpretation.RLock()
	calls := mock.calls.SetInterpretation
	mock.lockSetInterpretation.RUnlock()
	return calls
}
