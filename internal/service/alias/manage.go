package alias

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/DAAT-RI/quipu/internal/domain"
)

// Create stores a new alias. The normalized form is computed here and is the
// value tenant scopes match against.
func (s *Service) Create(ctx context.Context, in CreateInput) (domain.Alias, error) {
	if err := s.requireSuperadmin(ctx); err != nil {
		return domain.Alias{}, err
	}
	if err := in.Validate(); err != nil {
		return domain.Alias{}, err
	}

	confidence := 1.0
	if in.Confidence != nil {
		confidence = *in.Confidence
	}
	alias := strings.TrimSpace(in.Alias)

	created, err := s.aliases.Create(ctx, domain.Alias{
		Alias:       alias,
		Normalized:  domain.NormalizeName(alias),
		CandidateID: in.CandidateID,
		Confidence:  confidence,
		Verified:    in.Verified,
	})
	if err != nil {
		return domain.Alias{}, fmt.Errorf("alias.Create: %w", err)
	}
	s.scopes.Purge()

	s.log.InfoContext(ctx, "alias created",
		slog.Int64("alias_id", created.ID),
		slog.String("normalized", created.Normalized),
		slog.Bool("matched", created.Matched()),
	)
	return created, nil
}

// Assign attaches an alias to a candidate, or detaches it when CandidateID is
// nil.
func (s *Service) Assign(ctx context.Context, in AssignInput) (domain.Alias, error) {
	if err := s.requireSuperadmin(ctx); err != nil {
		return domain.Alias{}, err
	}
	if err := in.Validate(); err != nil {
		return domain.Alias{}, err
	}

	updated, err := s.aliases.AssignCandidate(ctx, in.ID, in.CandidateID, in.Verified)
	if err != nil {
		return domain.Alias{}, fmt.Errorf("alias.Assign: %w", err)
	}
	s.scopes.Purge()

	s.log.InfoContext(ctx, "alias assigned",
		slog.Int64("alias_id", updated.ID),
		slog.Bool("matched", updated.Matched()),
		slog.Bool("verified", updated.Verified),
	)
	return updated, nil
}

// ListUnmatched returns one page of aliases without a candidate.
func (s *Service) ListUnmatched(ctx context.Context, limit, offset int) (domain.Page[domain.Alias], error) {
	if err := s.requireSuperadmin(ctx); err != nil {
		return domain.Page[domain.Alias]{}, err
	}
	if limit < 0 || offset < 0 {
		return domain.Page[domain.Alias]{}, domain.NewValidationError("limit", "limit and offset must not be negative")
	}

	page, err := s.aliases.ListUnmatched(ctx, limit, offset)
	if err != nil {
		return domain.Page[domain.Alias]{}, fmt.Errorf("alias.ListUnmatched: %w", err)
	}
	return page, nil
}
