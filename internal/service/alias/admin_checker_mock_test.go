package alias

import (
	"context"
	"sync"
)

var _ adminChecker = &adminCheckerMock{}

type adminCheckerMock struct {
	IsSuperadminFunc func(ctx context.Context) (bool, error)

	calls struct {
		IsSuperadmin []struct {
			Ctx context.Context
		}
	}
	lockIsSuperadmin sync.RWMutex
}

func (mock *adminCheckerMock) IsSuperadmin(ctx context.Context) (bool, error) {
	if mock.IsSuperadminFunc == nil {
		panic("adminCheckerMock.IsSuperadminFunc: method is nil but adminChecker.IsSuperadmin was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockIsSuperadmin.Lock()
	mock.calls.IsSuperadmin = append(mock.calls.IsSuperadmin, callInfo)
	mock.lockIsSuperadmin.Unlock()
	return mock.IsSuperadminFunc(ctx)
}

func (mock *adminCheckerMock) IsSuperadminCalls() []struct {
	Ctx context.Context
} {
	mock.lockIsSuperadmin.RLock()
	calls := mock.calls.IsSuperadmin
	mock.lockIsSuperadmin.RUnlock()
	return calls
}
