package alias

import (
	"sync"
)

var _ scopeCache = &scopeCacheMock{}

type scopeCacheMock struct {
	PurgeFunc func()

	calls struct {
		Purge []struct{}
	}
	lockPurge sync.RWMutex
}

func (mock *scopeCacheMock) Purge() {
	if mock.PurgeFunc == nil {
		panic("scopeCacheMock.PurgeFunc: method is nil but scopeCache.Purge was just called")
	}
	mock.lockPurge.Lock()
	mock.calls.Purge = append(mock.calls.Purge, struct{}{})
	mock.lockPurge.Unlock()
	mock.PurgeFunc()
}

func (mock *scopeCacheMock) PurgeCalls() []struct{} {
	mock.lockPurge.RLock()
	calls := mock.calls.Purge
	mock.lockPurge.RUnlock()
	return calls
}
