// Package alias administers the stakeholder alias mapping that decides tenant
// visibility. Every mutation invalidates cached tenant scopes and the
// results derived from them.
package alias

import (
	"context"
	"log/slog"

	"github.com/DAAT-RI/quipu/internal/domain"
)

type aliasRepo interface {
	Create(ctx context.Context, a domain.Alias) (domain.Alias, error)
	AssignCandidate(ctx context.Context, id int64, candidateID *int64, verified bool) (domain.Alias, error)
	ListUnmatched(ctx context.Context, limit, offset int) (domain.Page[domain.Alias], error)
	ListPage(ctx context.Context, limit, offset int) ([]domain.Alias, error)
	UpdateNormalized(ctx context.Context, id int64, normalized string) error
}

type adminChecker interface {
	IsSuperadmin(ctx context.Context) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// scopeCache purges cached tenant scopes and the per-tenant aggregates
// computed from them.
type scopeCache interface {
	Purge()
}

// Service provides alias administration. Request-facing operations require
// the superadmin organization.
type Service struct {
	log      *slog.Logger
	aliases  aliasRepo
	admins   adminChecker
	tx       txManager
	scopes   scopeCache
	pageSize int
}

// NewService creates a new alias service.
func NewService(
	log *slog.Logger,
	aliases aliasRepo,
	admins adminChecker,
	tx txManager,
	scopes scopeCache,
	pageSize int,
) *Service {
	return &Service{
		log:      log.With("service", "alias"),
		aliases:  aliases,
		admins:   admins,
		tx:       tx,
		scopes:   scopes,
		pageSize: pageSize,
	}
}

func (s *Service) requireSuperadmin(ctx context.Context) error {
	ok, err := s.admins.IsSuperadmin(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrForbidden
	}
	return nil
}
