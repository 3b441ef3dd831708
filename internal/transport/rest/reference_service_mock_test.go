package rest

import (
	"context"
	"github.com/DAAT-RI/quipu/internal/domain"
	"sync"
)

var _ referenceService = &referenceServiceMock{}

type referenceServiceMock struct {
	ChannelsFunc      func(ctx context.Context) ([]string, error)
	OrganizationsFunc func(ctx context.Context) ([]domain.Organization, error)

	calls struct {
		Channels []struct {
			Ctx context.Context
		}
		Organizations []struct {
			Ctx context.Context
		}
	}
	lockChannels      sync.RWMutex
	lockOrganizations sync.RWMutex
}

func (mock *referenceServiceMock) Channels(ctx context.Context) ([]string, error) {
	if mock.ChannelsFunc == nil {
		panic("referenceServiceMock.ChannelsFunc: method is nil but referenceService.Channels was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockChannels.Lock()
	mock.calls.Channels = append(mock.calls.Channels, callInfo)
	mock.lockChannels.Unlock()
	return mock.ChannelsFunc(ctx)
}

func (mock *referenceServiceMock) ChannelsCalls() []struct {
	Ctx context.Context
} {
	mock.lockChannels.RLock()
	calls := mock.calls.Channels
	mock.lockChannels.RUnlock()
	return calls
}

func (mock *referenceServiceMock) Organizations(ctx context.Context) ([]domain.Organization, error) {
	if mock.OrganizationsFunc == nil {
		panic("referenceServiceMock.OrganizationsFunc: method is nil but referenceService.Organizations was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockOrganizations.Lock()
	mock.calls.Organizations = append(mock.calls.Organizations, callInfo)
	mock.lockOrganizations.Unlock()
	return mock.OrganizationsFunc(ctx)
}

func (mock *referenceServiceMock) OrganizationsCalls() []struct {
	Ctx context.Context
} {
	mock.lockOrganizations.RLock()
	calls := mock.calls.Organizations
	mock.lockOrganizations.RUnlock()
	return calls
}
