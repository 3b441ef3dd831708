package declaration

import (
	"context"
	"github.com/DAAT-RI/quipu/internal/domain"
	"sync"
)

var _ scopeResolver = &scopeResolverMock{}

type scopeResolverMock struct {
	ResolveFromCtxFunc func(ctx context.Context) (domain.TenantScope, error)

	calls struct {
		ResolveFromCtx []struct {
			Ctx context.Context
		}
	}
	lockResolveFromCtx sync.RWMutex
}

func (mock *scopeResolverMock) ResolveFromCtx(ctx context.Context) (domain.TenantScope, error) {
	if mock.ResolveFromCtxFunc == nil {
		panic("scopeResolverMock.ResolveFromCtxFunc: method is nil but scopeResolver.ResolveFromCtx was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockResolveFromCtx.Lock()
	mock.calls.ResolveFromCtx = append(mock.calls.ResolveFromCtx, callInfo)
	mock.lockResolveFromCtx.Unlock()
	return mock.ResolveFromCtxFunc(ctx)
}

func (mock *scopeResolverMock) ResolveFromCtxCalls() []struct {
	Ctx context.Context
} {
	mock.lockResolveFromCtx.RLock()
	calls := mock.calls.ResolveFromCtx
	mock.lockResolveFromCtx.RUnlock()
	return calls
}
