package rest

import (
	"context"
	"github.com/DAAT-RI/quipu/internal/domain"
	aliassvc "github.com/DAAT-RI/quipu/internal/service/alias"
	"sync"
)

var _ aliasService = &aliasServiceMock{}

type aliasServiceMock struct {
	CreateFunc        func(ctx context.Context, in aliassvc.CreateInput) (domain.Alias, error)
	AssignFunc        func(ctx context.Context, in aliassvc.AssignInput) (domain.Alias, error)
	ListUnmatchedFunc func(ctx context.Context, limit int, offset int) (domain.Page[domain.Alias], error)

	calls struct {
		Create []struct {
			Ctx context.Context
			In  aliassvc.CreateInput
		}
		Assign []struct {
			Ctx context.Context
			In  aliassvc.AssignInput
		}
		ListUnmatched []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
	}
	lockCreate        sync.RWMutex
	lockAssign        sync.RWMutex
	lockListUnmatched sync.RWMutex
}

func (mock *aliasServiceMock) Create(ctx context.Context, in aliassvc.CreateInput) (domain.Alias, error) {
	if mock.CreateFunc == nil {
		panic("aliasServiceMock.CreateFunc: method is nil but aliasService.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  aliassvc.CreateInput
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, in)
}

func (mock *aliasServiceMock) CreateCalls() []struct {
	Ctx context.Context
	In  aliassvc.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *aliasServiceMock) Assign(ctx context.Context, in aliassvc.AssignInput) (domain.Alias, error) {
	if mock.AssignFunc == nil {
		panic("aliasServiceMock.AssignFunc: method is nil but aliasService.Assign was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  aliassvc.AssignInput
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockAssign.Lock()
	mock.calls.Assign = append(mock.calls.Assign, callInfo)
	mock.lockAssign.Unlock()
	return mock.AssignFunc(ctx, in)
}

func (mock *aliasServiceMock) AssignCalls() []struct {
	Ctx context.Context
	In  aliassvc.AssignInput
} {
	mock.lockAssign.RLock()
	calls := mock.calls.Assign
	mock.lockAssign.RUnlock()
	return calls
}

func (mock *aliasServiceMock) ListUnmatched(ctx context.Context, limit int, offset int) (domain.Page[domain.Alias], error) {
	if mock.ListUnmatchedFunc == nil {
		panic("aliasServiceMock.ListUnmatchedFunc: method is nil but aliasService.ListUnmatched was just called")
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

func (mock *aliasServiceMock) ListUnmatchedCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockListUnmatched.RLock()
	calls := mock.calls.ListUnmatched
	mock.lockListUnmatched.RUnlock()
	return calls
}
