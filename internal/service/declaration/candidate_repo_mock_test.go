package declaration

import (
	"context"
	"github.com/DAAT-RI/quipu/internal/domain"
	"sync"
)

var _ candidateRepo = &candidateRepoMock{}

type candidateRepoMock struct {
	ListPageFunc func(ctx context.Context, limit int, offset int) ([]domain.Candidate, error)

	calls struct {
		ListPage []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
	}
	lockListPage sync.RWMutex
}

func (mock *candidateRepoMock) ListPage(ctx context.Context, limit int, offset int) ([]domain.Candidate, error) {
	if mock.ListPageFunc == nil {
		panic("candidateRepoMock.ListPageFunc: method is nil but candidateRepo.ListPage was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}{
		Ctx:    ctx,
		Limit:  limit,
		Offset: offset,
	}
	mock.lockListPage.Lock()
	mock.calls.ListPage = append(mock.calls.ListPage, callInfo)
	mock.lockListPage.Unlock()
	return mock.ListPageFunc(ctx, limit, offset)
}

func (mock *candidateRepoMock) ListPageCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockListPage.RLock()
	calls := mock.calls.ListPage
	mock.lockListPage.RUnlock()
	return calls
}
