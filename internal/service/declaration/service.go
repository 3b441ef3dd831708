// Package declaration serves tenant-scoped media declarations and their
// aggregates.
package declaration

import (
	"context"
	"log/slog"
	"strings"

	"github.com/DAAT-RI/quipu/internal/cache"
	"github.com/DAAT-RI/quipu/internal/category"
	"github.com/DAAT-RI/quipu/internal/config"
	"github.com/DAAT-RI/quipu/internal/domain"
)

type declarationRepo interface {
	List(ctx context.Context, scope domain.TenantScope, f domain.DeclarationFilter) (domain.Page[domain.Declaration], error)
	ListLabelsPage(ctx context.Context, scope domain.TenantScope, limit, offset int) ([]domain.DeclarationLabels, error)
	ListStakeholdersPage(ctx context.Context, scope domain.TenantScope, limit, offset int) ([]string, error)
}

type partyRepo interface {
	List(ctx context.Context) ([]domain.Party, error)
}

type candidateRepo interface {
	ListPage(ctx context.Context, limit, offset int) ([]domain.Candidate, error)
}

type scopeResolver interface {
	ResolveFromCtx(ctx context.Context) (domain.TenantScope, error)
}

// Service provides declaration listing and aggregation within the caller's
// tenant scope.
type Service struct {
	log          *slog.Logger
	declarations declarationRepo
	parties      partyRepo
	candidates   candidateRepo
	scopes       scopeResolver
	registry     *category.Registry
	cfg          config.QueryConfig
	topicCache   *cache.Query[TopicCounts]
	partyCache   *cache.Query[PartyCounts]
}

// NewService creates a new declaration service. Nil caches disable caching.
func NewService(
	log *slog.Logger,
	declarations declarationRepo,
	parties partyRepo,
	candidates candidateRepo,
	scopes scopeResolver,
	registry *category.Registry,
	cfg config.QueryConfig,
	topicCache *cache.Query[TopicCounts],
	partyCache *cache.Query[PartyCounts],
) *Service {
	return &Service{
		log:          log.With("service", "declaration"),
		declarations: declarations,
		parties:      parties,
		candidates:   candidates,
		scopes:       scopes,
		registry:     registry,
		cfg:          cfg,
		topicCache:   topicCache,
		partyCache:   partyCache,
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
