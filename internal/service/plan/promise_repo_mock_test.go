package plan

import (
	"context"
	"github.com/DAAT-RI/quipu/internal/domain"
	"sync"
)

var _ promiseRepo = &promiseRepoMock{}

type promiseRepoMock struct {
	ListCategoryPageFunc func(ctx context.Context, limit int, offset int) ([]string, error)
	ListFunc             func(ctx context.Context, f domain.PromiseFilter) (domain.Page[domain.PlanPromise], error)

	calls struct {
		ListCategoryPage []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
		List []struct {
			Ctx context.Context
			F   domain.PromiseFilter
		}
	}
	lockListCategoryPage sync.RWMutex
	lockList             sync.RWMutex
}

func (mock *promiseRepoMock) ListCategoryPage(ctx context.Context, limit int, offset int) ([]string, error) {
	if mock.ListCategoryPageFunc == nil {
		panic("promiseRepoMock.ListCategoryPageFunc: method is nil but promiseRepo.ListCategoryPage was just called")
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
	mock.lockListCategoryPage.Lock()
	mock.calls.ListCategoryPage = append(mock.calls.ListCategoryPage, callInfo)
	mock.lockListCategoryPage.Unlock()
	return mock.ListCategoryPageFunc(ctx, limit, offset)
}

func (mock *promiseRepoMock) ListCategoryPageCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockListCategoryPage.RLock()
	calls := mock.calls.ListCategoryPage
	mock.lockListCategoryPage.RUnlock()
	return calls
}

func (mock *promiseRepoMock) List(ctx context.Context, f domain.PromiseFilter) (domain.Page[domain.PlanPromise], error) {
	if mock.ListFunc == nil {
		panic("promiseRepoMock.ListFunc: method is nil but promiseRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.PromiseFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *promiseRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.PromiseFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
