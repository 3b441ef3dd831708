package tenantscope

import (
	"context"
	"sync"
)

var _ aliasRepo = &aliasRepoMock{}

type aliasRepoMock struct {
	ListNormalizedPageFunc func(ctx context.Context, candidateIDs []int64, limit int, offset int) ([]string, error)

	calls struct {
		ListNormalizedPage []struct {
			Ctx          context.Context
			CandidateIDs []int64
			Limit        int
			Offset       int
		}
	}
	lockListNormalizedPage sync.RWMutex
}

func (mock *aliasRepoMock) ListNormalizedPage(ctx context.Context, candidateIDs []int64, limit int, offset int) ([]string, error) {
	if mock.ListNormalizedPageFunc == nil {
		panic("aliasRepoMock.ListNormalizedPageFunc: method is nil but aliasRepo.ListNormalizedPage was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		CandidateIDs []int64
		Limit        int
		Offset       int
	}{
		Ctx:          ctx,
		CandidateIDs: candidateIDs,
		Limit:        limit,
		Offset:       offset,
	}
	mock.lockListNormalizedPage.Lock()
	mock.calls.ListNormalizedPage = append(mock.calls.ListNormalizedPage, callInfo)
	mock.lockListNormalizedPage.Unlock()
	return mock.ListNormalizedPageFunc(ctx, candidateIDs, limit, offset)
}

func (mock *aliasRepoMock) ListNormalizedPageCalls() []struct {
	Ctx          context.Context
	CandidateIDs []int64
	Limit        int
	Offset       int
} {
	mock.lockListNormalizedPage.RLock()
	calls := mock.calls.ListNormalizedPage
	mock.lockListNormalizedPage.RUnlock()
	return calls
}
