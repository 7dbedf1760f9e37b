package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
	"sync"
)

var _ enrichmentService = &enrichmentServiceMock{}

type enrichmentServiceMock struct {
	GenerateImageFunc      func(ctx context.Context, dreamID uuid.UUID) (string, error)
	InterpretFunc          func(ctx context.Context, dreamID uuid.UUID) (*domain.AIInterpretation, error)
	SaveImageFunc          func(ctx context.Context, dreamID uuid.UUID, imageURL string) (*domain.Dream, error)
	SaveInterpretationFunc func(ctx context.Context, dreamID uuid.UUID, interp domain.AIInterpretation) (*domain.Dream, error)

	calls struct {
		GenerateImage []struct {
			Ctx     context.Context
			DreamID uuid.UUID
		}
		Interpret []struct {
			Ctx     context.Context
			DreamID uuid.UUID
		}
		SaveImage []struct {
			Ctx      context.Context
			DreamID  uuid.UUID
			ImageURL string
		}
		SaveInterpretation []struct {
			Ctx     context.Context
			DreamID uuid.UUID
			Interp  domain.AIInterpretation
		}
	}
	lockGenerateImage      sync.RWMutex
	lockInterpret          sync.RWMutex
	lockSaveImage          sync.RWMutex
	lockSaveInterpretation sync.RWMutex
}

func (mock *enrichmentServiceMock) GenerateImage(ctx context.Context, dreamID uuid.UUID) (string, error) {
	if mock.GenerateImageFunc == nil {
		panic("enrichmentServiceMock.GenerateImageFunc: method is nil but enrichmentService.GenerateImage was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		DreamID uuid.UUID
	}{Ctx: ctx, DreamID: dreamID}
	mock.lockGenerateImage.Lock()
	mock.calls.GenerateImage = append(mock.calls.GenerateImage, callInfo)
	mock.lockGenerateImage.Unlock()
	return mock.GenerateImageFunc(ctx, dreamID)
}

func (mock *enrichmentServiceMock) GenerateImageCalls() []struct {
	Ctx     context.Context
	DreamID uuid.UUID
} {
	mock.lockGenerateImage.RLock()
	calls := mock.calls.GenerateImage
	mock.lockGenerateImage.RUnlock()
	return calls
}

func (mock *enrichmentServiceMock) Interpret(ctx context.Context, dreamID uuid.UUID) (*domain.AIInterpretation, error) {
	if mock.InterpretFunc == nil {
		panic("enrichmentServiceMock.InterpretFunc: method is nil but enrichmentService.Interpret was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		DreamID uuid.UUID
	}{Ctx: ctx, DreamID: dreamID}
	mock.lockInterpret.Lock()
	mock.calls.Interpret = append(mock.calls.Interpret, callInfo)
	mock.lockInterpret.Unlock()
	return mock.InterpretFunc(ctx, dreamID)
}

func (mock *enrichmentServiceMock) InterpretCalls() []struct {
	Ctx     context.Context
	DreamID uuid.UUID
} {
	mock.lockInterpret.RLock()
	calls := mock.calls.Interpret
	mock.lockInterpret.RUnlock()
	return calls
}

func (mock *enrichmentServiceMock) SaveImage(ctx context.Context, dreamID uuid.UUID, imageURL string) (*domain.Dream, error) {
	if mock.SaveImageFunc == nil {
		panic("enrichmentServiceMock.SaveImageFunc: method is nil but enrichmentService.SaveImage was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		DreamID  uuid.UUID
		ImageURL string
	}{Ctx: ctx, DreamID: dreamID, ImageURL: imageURL}
	mock.lockSaveImage.Lock()
	mock.calls.SaveImage = append(mock.calls.SaveImage, callInfo)
	mock.lockSaveImage.Unlock()
	return mock.SaveImageFunc(ctx, dreamID, imageURL)
}

func (mock *enrichmentServiceMock) SaveImageCalls() []struct {
	Ctx      context.Context
	DreamID  uuid.UUID
	ImageURL string
} {
	mock.lockSaveImage.RLock()
	calls := mock.calls.SaveImage
	mock.lockSaveImage.RUnlock()
	return calls
}

func (mock *enrichmentServiceMock) SaveInterpretation(ctx context.Context, dreamID uuid.UUID, interp domain.AIInterpretation) (*domain.Dream, error) {
	if mock.SaveInterpretationFunc == nil {
		panic("enrichmentServiceMock.SaveInterpretationFunc: method is nil but enrichmentService.SaveInterpretation was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		DreamID uuid.UUID
		Interp  domain.AIInterpretation
	}{Ctx: ctx, DreamID: dreamID, Interp: interp}
	mock.lockSaveInterpretation.Lock()
	mock.calls.SaveInterpretation = append(mock.calls.SaveInterpretation, callInfo)
	mock.lockSaveInterpretation.Unlock()
	return mock.SaveInterpretationFunc(ctx, dreamID, interp)
}

func (mock *enrichmentServiceMock) SaveInterpretationCalls() []struct {
	Ctx     context.Context
	DreamID uuid.UUID
	Interp  domain.AIInterpretation
} {
	mock.lockSaveInterpretation.RLock()
	calls := mock.calls.SaveInterpretation
	mock.lockSaveInterpretation.RUnlock()
	return calls
}
