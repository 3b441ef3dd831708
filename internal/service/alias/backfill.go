package alias

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DAAT-RI/quipu/internal/aggregate"
	"github.com/DAAT-RI/quipu/internal/domain"
)

// BackfillResult reports what a normalization backfill changed.
type BackfillResult struct {
	Scanned int
	Updated int
}

// Backfill recomputes alias_normalized for every alias in one transaction.
// It is an operator task run after a normalizer change and performs no
// tenant check. A collision on the unique normalized form rolls back the
// whole run.
func (s *Service) Backfill(ctx context.Context) (BackfillResult, error) {
	var res BackfillResult

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		res = BackfillResult{}

		all, err := aggregate.Paginate(ctx, s.pageSize, func(ctx context.Context, offset, limit int) ([]domain.Alias, error) {
			return s.aliases.ListPage(ctx, limit, offset)
		})
		if err != nil {
			return fmt.Errorf("list aliases: %w", err)
		}
		res.Scanned = len(all)

		for _, a := range all {
			normalized := domain.NormalizeName(a.Alias)
			if normalized == a.Normalized || normalized == "" {
				continue
			}
			if err := s.aliases.UpdateNormalized(ctx, a.ID, normalized); err != nil {
				return fmt.Errorf("update alias %d: %w", a.ID, err)
			}
			res.Updated++
		}
		return nil
	})
	if err != nil {
		return BackfillResult{}, fmt.Errorf("alias.Backfill: %w", err)
	}

	if res.Updated > 0 {
		s.scopes.Purge()
	}
	s.log.InfoContext(ctx, "alias normalization backfilled",
		slog.Int("scanned", res.Scanned),
		slog.Int("updated", res.Updated),
	)
	return res, nil
}
