// Package tenantscope resolves the declaration visibility boundary of a
// client organization.
package tenantscope

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/DAAT-RI/quipu/internal/aggregate"
	"github.com/DAAT-RI/quipu/internal/cache"
	"github.com/DAAT-RI/quipu/internal/domain"
	"github.com/DAAT-RI/quipu/pkg/ctxutil"
)

type orgRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Organization, error)
	ListCandidateIDsPage(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]int64, error)
}

type aliasRepo interface {
	ListNormalizedPage(ctx context.Context, candidateIDs []int64, limit, offset int) ([]string, error)
}

// Service resolves organizations into tenant scopes.
type Service struct {
	log      *slog.Logger
	orgs     orgRepo
	aliases  aliasRepo
	pageSize int
	cache    *cache.Query[domain.TenantScope]
}

// NewService creates a tenant scope resolver. A nil or disabled cache
// resolves every call against the store.
func NewService(
	log *slog.Logger,
	orgs orgRepo,
	aliases aliasRepo,
	pageSize int,
	scopes *cache.Query[domain.TenantScope],
) *Service {
	return &Service{
		log:      log.With("service", "tenantscope"),
		orgs:     orgs,
		aliases:  aliases,
		pageSize: pageSize,
		cache:    scopes,
	}
}

// ResolveFromCtx resolves the scope of the organization stored in ctx.
func (s *Service) ResolveFromCtx(ctx context.Context) (domain.TenantScope, error) {
	orgID, ok := ctxutil.OrgIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.Resolve(ctx, orgID)
}

// Resolve returns Unrestricted for the superadmin organization and a
// Restricted scope holding the normalized aliases of the organization's
// candidates otherwise. A fetch failure is returned as an error and is never
// turned into an empty scope.
func (s *Service) Resolve(ctx context.Context, orgID uuid.UUID) (domain.TenantScope, error) {
	return s.cache.GetOrLoad(ctx, cache.Key("scope", orgID), func(ctx context.Context) (domain.TenantScope, error) {
		return s.resolve(ctx, orgID)
	})
}

// IsSuperadmin reports whether the organization in ctx sees every declaration.
func (s *Service) IsSuperadmin(ctx context.Context) (bool, error) {
	scope, err := s.ResolveFromCtx(ctx)
	if err != nil {
		return false, err
	}
	_, ok := scope.(domain.Unrestricted)
	return ok, nil
}

func (s *Service) resolve(ctx context.Context, orgID uuid.UUID) (domain.TenantScope, error) {
	org, err := s.orgs.GetByID(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("get organization: %w", err)
	}
	if !org.Active {
		return nil, fmt.Errorf("organization %s is inactive: %w", orgID, domain.ErrForbidden)
	}
	if org.IsSuperadmin {
		return domain.Unrestricted{}, nil
	}

	ids, err := aggregate.Paginate(ctx, s.pageSize, func(ctx context.Context, offset, limit int) ([]int64, error) {
		return s.orgs.ListCandidateIDsPage(ctx, orgID, limit, offset)
	})
	if err != nil {
		return nil, fmt.Errorf("list candidates of organization %s: %w", orgID, err)
	}
	if len(ids) == 0 {
		s.log.WarnContext(ctx, "organization has no candidates", slog.String("org_id", orgID.String()))
		return domain.Restricted{}, nil
	}

	normalized, err := aggregate.Paginate(ctx, s.pageSize, func(ctx context.Context, offset, limit int) ([]string, error) {
		return s.aliases.ListNormalizedPage(ctx, ids, limit, offset)
	})
	if err != nil {
		return nil, fmt.Errorf("list aliases of organization %s: %w", orgID, err)
	}

	aliases := dedupe(normalized)
	if len(aliases) == 0 {
		s.log.WarnContext(ctx, "organization candidates have no aliases",
			slog.String("org_id", orgID.String()),
			slog.Int("candidates", len(ids)),
		)
	}
	return domain.Restricted{Aliases: aliases}, nil
}

// dedupe drops blank and repeated aliases, keeping first-seen order.
func dedupe(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, a := range in {
		if a == "" {
			continue
		}
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}
