package reference

import (
	"context"
	"sync"
)

var _ channelRepo = &channelRepoMock{}

type channelRepoMock struct {
	ListChannelsFunc func(ctx context.Context) ([]string, error)

	calls struct {
		ListChannels []struct {
			Ctx context.Context
		}
	}
	lockListChannels sync.RWMutex
}

func (mock *channelRepoMock) ListChannels(ctx context.Context) ([]string, error) {
	if mock.ListChannelsFunc == nil {
		panic("channelRepoMock.ListChannelsFunc: method is nil but channelRepo.ListChannels was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListChannels.Lock()
	mock.calls.ListChannels = append(mock.calls.ListChannels, callInfo)
	mock.lockListChannels.Unlock()
	return mock.ListChannelsFunc(ctx)
}

func (mock *channelRepoMock) ListChannelsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListChannels.RLock()
	calls := mock.calls.ListChannels
	mock.lockListChannels.RUnlock()
	return calls
}
