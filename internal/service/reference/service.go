// Package reference serves slowly-changing reference data from a TTL cache.
package reference

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DAAT-RI/quipu/internal/cache"
	"github.com/DAAT-RI/quipu/internal/domain"
)

type channelRepo interface {
	ListChannels(ctx context.Context) ([]string, error)
}

type orgRepo interface {
	List(ctx context.Context) ([]domain.Organization, error)
}

type adminChecker interface {
	IsSuperadmin(ctx context.Context) (bool, error)
}

// Service provides cached reference lists.
type Service struct {
	log      *slog.Logger
	channels channelRepo
	orgs     orgRepo
	admins   adminChecker
	chCache  *cache.Query[[]string]
	orgCache *cache.Query[[]domain.Organization]
}

// NewService creates a new reference data service.
func NewService(
	log *slog.Logger,
	channels channelRepo,
	orgs orgRepo,
	admins adminChecker,
	chCache *cache.Query[[]string],
	orgCache *cache.Query[[]domain.Organization],
) *Service {
	return &Service{
		log:      log.With("service", "reference"),
		channels: channels,
		orgs:     orgs,
		admins:   admins,
		chCache:  chCache,
		orgCache: orgCache,
	}
}

// Channels returns the distinct media channels. The list is public.
func (s *Service) Channels(ctx context.Context) ([]string, error) {
	out, err := s.chCache.GetOrLoad(ctx, cache.Key("channels"), s.channels.ListChannels)
	if err != nil {
		return nil, fmt.Errorf("reference.Channels: %w", err)
	}
	return out, nil
}

// Organizations returns the active organizations (superadmin only).
func (s *Service) Organizations(ctx context.Context) ([]domain.Organization, error) {
	ok, err := s.admins.IsSuperadmin(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrForbidden
	}

	out, err := s.orgCache.GetOrLoad(ctx, cache.Key("organizations"), s.orgs.List)
	if err != nil {
		return nil, fmt.Errorf("reference.Organizations: %w", err)
	}
	return out, nil
}
