package rest

import (
	"context"
	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
	"github.com/heartmarshall/dreamjournal-backend/internal/service/user"
	"sync"
)

var _ profileService = &profileServiceMock{}

type profileServiceMock struct {
	GetProfileFunc     func(ctx context.Context) (*domain.User, error)
	UpdateUsernameFunc func(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)

	calls struct {
		GetProfile []struct {
			Ctx context.Context
		}
		UpdateUsername []struct {
			Ctx   context.Context
			Input user.UpdateProfileInput
		}
	}
	lockGetProfile     sync.RWMutex
	lockUpdateUsername sync.RWMutex
}

func (mock *profileServiceMock) GetProfile(ctx context.Context) (*domain.User, error) {
	if mock.GetProfileFunc == nil {
		panic("profileServiceMock.GetProfileFunc: method is nil but profileService.GetProfile was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetProfile.Lock()
	mock.calls.GetProfile = append(mock.calls.GetProfile, callInfo)
	mock.lockGetProfile.Unlock()
	return mock.GetProfileFunc(ctx)
}

func (mock *profileServiceMock) GetProfileCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetProfile.RLock()
	calls := mock.calls.GetProfile
	mock.lockGetProfile.RUnlock()
	return calls
}

func (mock *profileServiceMock) UpdateUsername(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error) {
	if mock.UpdateUsernameFunc == nil {
		panic("profileServiceMock.UpdateUsernameFunc: method is nil but profileService.UpdateUsername was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.UpdateProfileInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateUsername.Lock()
	mock.calls.UpdateUsername = append(mock.calls.UpdateUsername, callInfo)
	mock.lockUpdateUsername.Unlock()
	return mock.UpdateUsernameFunc(ctx, input)
}

func (mock *profileServiceMock) UpdateUsernameCalls() []struct {
	Ctx   context.Context
	Input user.UpdateProfileInput
} {
	mock.lockUpdateUsername.RLock()
	calls := mock.calls.UpdateUsername
	mock.lockUpdateUsername.RUnlock()
	return calls
}
