package declaration

import (
	"context"
	"github.com/DAAT-RI/quipu/internal/domain"
	"sync"
)

var _ declarationRepo = &declarationRepoMock{}

type declarationRepoMock struct {
	ListFunc                 func(ctx context.Context, scope domain.TenantScope, f domain.DeclarationFilter) (domain.Page[domain.Declaration], error)
	ListLabelsPageFunc       func(ctx context.Context, scope domain.TenantScope, limit int, offset int) ([]domain.DeclarationLabels, error)
	ListStakeholdersPageFunc func(ctx context.Context, scope domain.TenantScope, limit int, offset int) ([]string, error)

	calls struct {
		List []struct {
			Ctx   context.Context
			Scope domain.TenantScope
			F     domain.DeclarationFilter
		}
		ListLabelsPage []struct {
			Ctx    context.Context
			Scope  domain.TenantScope
			Limit  int
			Offset int
		}
		ListStakeholdersPage []struct {
			Ctx    context.Context
			Scope  domain.TenantScope
			Limit  int
			Offset int
		}
	}
	lockList                 sync.RWMutex
	lockListLabelsPage       sync.RWMutex
	lockListStakeholdersPage sync.RWMutex
}

func (mock *declarationRepoMock) List(ctx context.Context, scope domain.TenantScope, f domain.DeclarationFilter) (domain.Page[domain.Declaration], error) {
	if mock.ListFunc == nil {
		panic("declarationRepoMock.ListFunc: method is nil but declarationRepo.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scope domain.TenantScope
		F     domain.DeclarationFilter
	}{
		Ctx:   ctx,
		Scope: scope,
		F:     f,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, scope, f)
}

func (mock *declarationRepoMock) ListCalls() []struct {
	Ctx   context.Context
	Scope domain.TenantScope
	F     domain.DeclarationFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *declarationRepoMock) ListLabelsPage(ctx context.Context, scope domain.TenantScope, limit int, offset int) ([]domain.DeclarationLabels, error) {
	if mock.ListLabelsPageFunc == nil {
		panic("declarationRepoMock.ListLabelsPageFunc: method is nil but declarationRepo.ListLabelsPage was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Scope  domain.TenantScope
		Limit  int
		Offset int
	}{
		Ctx:    ctx,
		Scope:  scope,
		Limit:  limit,
		Offset: offset,
	}
	mock.lockListLabelsPage.Lock()
	mock.calls.ListLabelsPage = append(mock.calls.ListLabelsPage, callInfo)
	mock.lockListLabelsPage.Unlock()
	return mock.ListLabelsPageFunc(ctx, scope, limit, offset)
}

func (mock *declarationRepoMock) ListLabelsPageCalls() []struct {
	Ctx    context.Context
	Scope  domain.TenantScope
	Limit  int
	Offset int
} {
	mock.lockListLabelsPage.RLock()
	calls := mock.calls.ListLabelsPage
	mock.lockListLabelsPage.RUnlock()
	return calls
}

func (mock *declarationRepoMock) ListStakeholdersPage(ctx context.Context, scope domain.TenantScope, limit int, offset int) ([]string, error) {
	if mock.ListStakeholdersPageFunc == nil {
		panic("declarationRepoMock.ListStakeholdersPageFunc: method is nil but declarationRepo.ListStakeholdersPage was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Scope  domain.TenantScope
		Limit  int
		Offset int
	}{
		Ctx:    ctx,
		Scope:  scope,
		Limit:  limit,
		Offset: offset,
	}
	mock.lockListStakeholdersPage.Lock()
	mock.calls.ListStakeholdersPage = append(mock.calls.ListStakeholdersPage, callInfo)
	mock.lockListStakeholdersPage.Unlock()
	return mock.ListStakeholdersPageFunc(ctx, scope, limit, offset)
}

func (mock *declarationRepoMock) ListStakeholdersPageCalls() []struct {
	Ctx    context.Context
	Scope  domain.TenantScope
	Limit  int
	Offset int
} {
	mock.lockListStakeholdersPage.RLock()
	calls := mock.calls.ListStakeholdersPage
	mock.lockListStakeholdersPage.RUnlock()
	return calls
}
