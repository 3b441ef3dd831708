package alias

import (
	"context"
	"github.com/DAAT-RI/quipu/internal/domain"
	"sync"
)

var _ aliasRepo = &aliasRepoMock{}

type aliasRepoMock struct {
	CreateFunc           func(ctx context.Context, a domain.Alias) (domain.Alias, error)
	AssignCandidateFunc  func(ctx context.Context, id int64, candidateID *int64, verified bool) (domain.Alias, error)
	ListUnmatchedFunc    func(ctx context.Context, limit int, offset int) (domain.Page[domain.Alias], error)
	ListPageFunc         func(ctx context.Context, limit int, offset int) ([]domain.Alias, error)
	UpdateNormalizedFunc func(ctx context.Context, id int64, normalized string) error

	calls struct {
		Create []struct {
			Ctx context.Context
			A   domain.Alias
		}
		AssignCandidate []struct {
			Ctx         context.Context
			Id          int64
			CandidateID *int64
			Verified    bool
		}
		ListUnmatched []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
		ListPage []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
		UpdateNormalized []struct {
			Ctx        context.Context
			Id         int64
			Normalized string
		}
	}
	lockCreate           sync.RWMutex
	lockAssignCandidate  sync.RWMutex
	lockListUnmatched    sync.RWMutex
	lockListPage         sync.RWMutex
	lockUpdateNormalized sync.RWMutex
}

func (mock *aliasRepoMock) Create(ctx context.Context, a domain.Alias) (domain.Alias, error) {
	if mock.CreateFunc == nil {
		panic("aliasRepoMock.CreateFunc: method is nil but aliasRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   domain.Alias
	}{
		Ctx: ctx,
		A:   a,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *aliasRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   domain.Alias
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *aliasRepoMock) AssignCandidate(ctx context.Context, id int64, candidateID *int64, verified bool) (domain.Alias, error) {
	if mock.AssignCandidateFunc == nil {
		panic("aliasRepoMock.AssignCandidateFunc: method is nil but aliasRepo.AssignCandidate was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Id          int64
		CandidateID *int64
		Verified    bool
	}{
		Ctx:         ctx,
		Id:          id,
		CandidateID: candidateID,
		Verified:    verified,
	}
	mock.lockAssignCandidate.Lock()
	mock.calls.AssignCandidate = append(mock.calls.AssignCandidate, callInfo)
	mock.lockAssignCandidate.Unlock()
	return mock.AssignCandidateFunc(ctx, id, candidateID, verified)
}

func (mock *aliasRepoMock) AssignCandidateCalls() []struct {
	Ctx         context.Context
	Id          int64
	CandidateID *int64
	Verified    bool
} {
	mock.lockAssignCandidate.RLock()
	calls := mock.calls.AssignCandidate
	mock.lockAssignCandidate.RUnlock()
	return calls
}

func (mock *aliasRepoMock) ListUnmatched(ctx context.Context, limit int, offset int) (domain.Page[domain.Alias], error) {
	if mock.ListUnmatchedFunc == nil {
		panic("aliasRepoMock.ListUnmatchedFunc: method is nil but aliasRepo.ListUnmatched was just called")
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
	mock.lockListUnmatched.Lock()
	mock.calls.ListUnmatched = append(mock.calls.ListUnmatched, callInfo)
	mock.lockListUnmatched.Unlock()
	return mock.ListUnmatchedFunc(ctx, limit, offset)
}

func (mock *aliasRepoMock) ListUnmatchedCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockListUnmatched.RLock()
	calls := mock.calls.ListUnmatched
	mock.lockListUnmatched.RUnlock()
	return calls
}

func (mock *aliasRepoMock) ListPage(ctx context.Context, limit int, offset int) ([]domain.Alias, error) {
	if mock.ListPageFunc == nil {
		panic("aliasRepoMock.ListPageFunc: method is nil but aliasRepo.ListPage was just called")
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

func (mock *aliasRepoMock) ListPageCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockListPage.RLock()
	calls := mock.calls.ListPage
	mock.lockListPage.RUnlock()
	return calls
}

func (mock *aliasRepoMock) UpdateNormalized(ctx context.Context, id int64, normalized string) error {
	if mock.UpdateNormalizedFunc == nil {
		panic("aliasRepoMock.UpdateNormalizedFunc: method is nil but aliasRepo.UpdateNormalized was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Id         int64
		Normalized string
	}{
		Ctx:        ctx,
		Id:         id,
		Normalized: normalized,
	}
	mock.lockUpdateNormalized.Lock()
	mock.calls.UpdateNormalized = append(mock.calls.UpdateNormalized, callInfo)
	mock.lockUpdateNormalized.Unlock()
	return mock.UpdateNormalizedFunc(ctx, id, normalized)
}

func (mock *aliasRepoMock) UpdateNormalizedCalls() []struct {
	Ctx        context.Context
	Id         int64
	Normalized string
} {
	mock.lockUpdateNormalized.RLock()
	calls := mock.calls.UpdateNormalized
	mock.lockUpdateNormalized.RUnlock()
	return calls
}
