package declaration

import (
	"context"
	"github.com/DAAT-RI/quipu/internal/domain"
	"sync"
)

var _ partyRepo = &partyRepoMock{}

type partyRepoMock struct {
	ListFunc func(ctx context.Context) ([]domain.Party, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
	}
	lockList sync.RWMutex
}

func (mock *partyRepoMock) List(ctx context.Context) ([]domain.Party, error) {
	if mock.ListFunc == nil {
		panic("partyRepoMock.ListFunc: method is nil but partyRepo.List was just called")
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

func (mock *partyRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
