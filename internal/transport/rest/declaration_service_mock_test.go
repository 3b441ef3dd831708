package rest

import (
	"context"
	"github.com/DAAT-RI/quipu/internal/domain"
	declsvc "github.com/DAAT-RI/quipu/internal/service/declaration"
	"sync"
)

var _ declarationService = &declarationServiceMock{}

type declarationServiceMock struct {
	ListFunc        func(ctx context.Context, in declsvc.ListInput) (domain.Page[domain.Declaration], error)
	TopicCountsFunc func(ctx context.Context) (declsvc.TopicCounts, error)
	PartyCountsFunc func(ctx context.Context) (declsvc.PartyCounts, error)

	calls struct {
		List []struct {
			Ctx context.Context
			In  declsvc.ListInput
		}
		TopicCounts []struct {
			Ctx context.Context
		}
		PartyCounts []struct {
			Ctx context.Context
		}
	}
	lockList        sync.RWMutex
	lockTopicCounts sync.RWMutex
	lockPartyCounts sync.RWMutex
}

func (mock *declarationServiceMock) List(ctx context.Context, in declsvc.ListInput) (domain.Page[domain.Declaration], error) {
	if mock.ListFunc == nil {
		panic("declarationServiceMock.ListFunc: method is nil but declarationService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  declsvc.ListInput
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, in)
}

func (mock *declarationServiceMock) ListCalls() []struct {
	Ctx context.Context
	In  declsvc.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *declarationServiceMock) TopicCounts(ctx context.Context) (declsvc.TopicCounts, error) {
	if mock.TopicCountsFunc == nil {
		panic("declarationServiceMock.TopicCountsFunc: method is nil but declarationService.TopicCounts was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockTopicCounts.Lock()
	mock.calls.TopicCounts = append(mock.calls.TopicCounts, callInfo)
	mock.lockTopicCounts.Unlock()
	return mock.TopicCountsFunc(ctx)
}

func (mock *declarationServiceMock) TopicCountsCalls() []struct {
	Ctx context.Context
} {
	mock.lockTopicCounts.RLock()
	calls := mock.calls.TopicCounts
	mock.lockTopicCounts.RUnlock()
	return calls
}

func (mock *declarationServiceMock) PartyCounts(ctx context.Context) (declsvc.PartyCounts, error) {
	if mock.PartyCountsFunc == nil {
		panic("declarationServiceMock.PartyCountsFunc: method is nil but declarationService.PartyCounts was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockPartyCounts.Lock()
	mock.calls.PartyCounts = append(mock.calls.PartyCounts, callInfo)
	mock.lockPartyCounts.Unlock()
	return mock.PartyCountsFunc(ctx)
}

func (mock *declarationServiceMock) PartyCountsCalls() []struct {
	Ctx context.Context
} {
	mock.lockPartyCounts.RLock()
	calls := mock.calls.PartyCounts
	mock.lockPartyCounts.RUnlock()
	return calls
}
