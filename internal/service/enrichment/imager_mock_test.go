package enrichment

import (
	"context"
	"sync"
)

var _ imager = &imagerMock{}

type imagerMock struct {
	GenerateImageFunc func(ctx context.Context, dreamText string) (string, error)

	calls struct {
		GenerateImage []struct {
			Ctx       context.Context
			DreamText string
		}
	}
	lockGenerateImage sync.RWMutex
}

func (mock *imagerMock) GenerateImage(ctx context.Context, dreamText string) (string, error) {
	if mock.GenerateImageFunc == nil {
		panic("imagerMock.GenerateImageFunc: method is nil but imager.GenerateImage was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		DreamText string
	}{Ctx: ctx, DreamText: dreamText}
	mock.lockGenerateImage.Lock()
	mock.calls.GenerateImage = append(mock.calls.GenerateImage, callInfo)
	mock.lockGenerateImage.Unlock()
	return mock.GenerateImageFunc(ctx, dreamText)
}

func (mock *imagerMock) GenerateImageCalls() []struct {
	Ctx       context.Context
	DreamText string
} {
	mock.lockGenerateImage.RLock()
	calls := mock.calls.GenerateImage
	mock.lockGenerateImage.RUnlock()
	return calls
}
