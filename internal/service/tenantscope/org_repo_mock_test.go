package tenantscope

import (
	"context"
	"github.com/DAAT-RI/quipu/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ orgRepo = &orgRepoMock{}

type orgRepoMock struct {
	GetByIDFunc              func(ctx context.Context, id uuid.UUID) (domain.Organization, error)
	ListCandidateIDsPageFunc func(ctx context.Context, orgID uuid.UUID, limit int, offset int) ([]int64, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListCandidateIDsPage []struct {
			Ctx    context.Context
			OrgID  uuid.UUID
			Limit  int
			Offset int
		}
	}
	lockGetByID              sync.RWMutex
	lockListCandidateIDsPage sync.RWMutex
}

func (mock *orgRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Organization, error) {
	if mock.GetByIDFunc == nil {
		panic("orgRepoMock.GetByIDFunc: method is nil but orgRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *orgRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *orgRepoMock) ListCandidateIDsPage(ctx context.Context, orgID uuid.UUID, limit int, offset int) ([]int64, error) {
	if mock.ListCandidateIDsPageFunc == nil {
		panic("orgRepoMock.ListCandidateIDsPageFunc: method is nil but orgRepo.ListCandidateIDsPage was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		OrgID  uuid.UUID
		Limit  int
		Offset int
	}{
		Ctx:    ctx,
		OrgID:  orgID,
		Limit:  limit,
		Offset: offset,
	}
	mock.lockListCandidateIDsPage.Lock()
	mock.calls.ListCandidateIDsPage = append(mock.calls.ListCandidateIDsPage, callInfo)
	mock.lockListCandidateIDsPage.Unlock()
	return mock.ListCandidateIDsPageFunc(ctx, orgID, limit, offset)
}

func (mock *orgRepoMock) ListCandidateIDsPageCalls() []struct {
	Ctx    context.Context
	OrgID  uuid.UUID
	Limit  int
	Offset int
} {
	mock.lockListCandidateIDsPage.RLock()
	calls := mock.calls.ListCandidateIDsPage
	mock.lockListCandidateIDsPage.RUnlock()
	return calls
}
