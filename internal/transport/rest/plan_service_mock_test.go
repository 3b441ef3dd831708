package rest

import (
	"context"
	"github.com/DAAT-RI/quipu/internal/domain"
	plansvc "github.com/DAAT-RI/quipu/internal/service/plan"
	"sync"
)

var _ planService = &planServiceMock{}

type planServiceMock struct {
	CategoryCountsFunc func(ctx context.Context) (plansvc.CategoryCounts, error)
	SearchFunc         func(ctx context.Context, in plansvc.SearchInput) (domain.Page[domain.PlanPromise], error)

	calls struct {
		CategoryCounts []struct {
			Ctx context.Context
		}
		Search []struct {
			Ctx context.Context
			In  plansvc.SearchInput
		}
	}
	lockCategoryCounts sync.RWMutex
	lockSearch         sync.RWMutex
}

func (mock *planServiceMock) CategoryCounts(ctx context.Context) (plansvc.CategoryCounts, error) {
	if mock.CategoryCountsFunc == nil {
		panic("planServiceMock.CategoryCountsFunc: method is nil but planService.CategoryCounts was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCategoryCounts.Lock()
	mock.calls.CategoryCounts = append(mock.calls.CategoryCounts, callInfo)
	mock.lockCategoryCounts.Unlock()
	return mock.CategoryCountsFunc(ctx)
}

func (mock *planServiceMock) CategoryCountsCalls() []struct {
	Ctx context.Context
} {
	mock.lockCategoryCounts.RLock()
	calls := mock.calls.CategoryCounts
	mock.lockCategoryCounts.RUnlock()
	return calls
}

func (mock *planServiceMock) Search(ctx context.Context, in plansvc.SearchInput) (domain.Page[domain.PlanPromise], error) {
	if mock.SearchFunc == nil {
		panic("planServiceMock.SearchFunc: method is nil but planService.Search was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  plansvc.SearchInput
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, in)
}

func (mock *planServiceMock) SearchCalls() []struct {
	Ctx context.Context
	In  plansvc.SearchInput
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}
