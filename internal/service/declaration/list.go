package declaration

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DAAT-RI/quipu/internal/domain"
)

// List returns one page of declarations visible to the caller's organization.
// Search terms shorter than the configured minimum apply no text filter;
// longer ones are expanded into accent variants.
func (s *Service) List(ctx context.Context, in ListInput) (domain.Page[domain.Declaration], error) {
	if err := in.Validate(); err != nil {
		return domain.Page[domain.Declaration]{}, err
	}

	scope, err := s.scopes.ResolveFromCtx(ctx)
	if err != nil {
		return domain.Page[domain.Declaration]{}, fmt.Errorf("resolve scope: %w", err)
	}

	f := domain.DeclarationFilter{
		Topic:   trimOrNil(in.Topic),
		Channel: trimOrNil(in.Channel),
		Limit:   in.Limit,
		Offset:  in.Offset,
	}
	if term, ok := domain.SearchTerm(in.Search, s.cfg.MinSearchLength); ok {
		f.Variants = domain.SearchVariants(term)
	}

	page, err := s.declarations.List(ctx, scope, f)
	if err != nil {
		return domain.Page[domain.Declaration]{}, fmt.Errorf("list declarations: %w", err)
	}

	s.log.DebugContext(ctx, "declarations listed",
		slog.Int("variants", len(f.Variants)),
		slog.Int("total", page.Total),
	)
	return page, nil
}
