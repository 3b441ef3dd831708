package reference

import (
	"context"
	"github.com/DAAT-RI/quipu/internal/domain"
	"sync"
)

var _ orgRepo = &orgRepoMock{}

type orgRepoMock struct {
	ListFunc func(ctx context.Context) ([]domain.Organization, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
	}
	lockList sync.RWMutex
}

func (mock *orgRepoMock) List(ctx context.Context) ([]domain.Organization, error) {
	if mock.ListFunc == nil {
		panic("orgRepoMock.ListFunc: method is nil but orgRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *orgRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
