package declaration

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/DAAT-RI/quipu/internal/aggregate"
	"github.com/DAAT-RI/quipu/internal/cache"
	"github.com/DAAT-RI/quipu/internal/domain"
	"github.com/DAAT-RI/quipu/pkg/ctxutil"
)

// PartyCount is the number of visible declarations attributed to one party.
type PartyCount struct {
	PartyID int64  `json:"partyId"`
	Name    string `json:"name"`
	Count   int    `json:"count"`
}

// PartyCounts is the per-party distribution of the declarations visible to
// one organization. Unmatched counts declarations whose stakeholder matches
// no party.
type PartyCounts struct {
	Declarations int          `json:"declarations"`
	Unmatched    int          `json:"unmatched"`
	Parties      []PartyCount `json:"parties"`
}

// PartyCounts attributes every visible declaration to a party by matching
// its stakeholder against party and candidate names.
func (s *Service) PartyCounts(ctx context.Context) (PartyCounts, error) {
	orgID, ok := ctxutil.OrgIDFromCtx(ctx)
	if !ok {
		return PartyCounts{}, domain.ErrUnauthorized
	}
	return s.partyCache.GetOrLoad(ctx, cache.Key("declaration_parties", orgID), s.loadPartyCounts)
}

func (s *Service) loadPartyCounts(ctx context.Context) (PartyCounts, error) {
	scope, err := s.scopes.ResolveFromCtx(ctx)
	if err != nil {
		return PartyCounts{}, fmt.Errorf("resolve scope: %w", err)
	}

	matcher, err := s.partyMatcher(ctx)
	if err != nil {
		return PartyCounts{}, err
	}

	stakeholders, err := aggregate.Paginate(ctx, s.cfg.PageSize, func(ctx context.Context, offset, limit int) ([]string, error) {
		return s.declarations.ListStakeholdersPage(ctx, scope, limit, offset)
	})
	if err != nil {
		return PartyCounts{}, fmt.Errorf("fetch stakeholders: %w", err)
	}

	table := make(aggregate.Table)
	unmatched := 0
	for _, sh := range stakeholders {
		p, ok := matcher.Match(sh)
		if !ok {
			unmatched++
			continue
		}
		table.Add(strconv.FormatInt(p.ID, 10), partyLabel(p))
	}

	out := PartyCounts{
		Declarations: len(stakeholders),
		Unmatched:    unmatched,
		Parties:      make([]PartyCount, 0, len(table)),
	}
	for _, e := range table.Sorted() {
		id, err := strconv.ParseInt(e.Key, 10, 64)
		if err != nil {
			return PartyCounts{}, fmt.Errorf("party key %q: %w", e.Key, err)
		}
		out.Parties = append(out.Parties, PartyCount{PartyID: id, Name: e.Label, Count: e.Count})
	}
	return out, nil
}

// partyMatcher fetches the party and candidate lists concurrently.
func (s *Service) partyMatcher(ctx context.Context) (*PartyMatcher, error) {
	var (
		parties    []domain.Party
		candidates []domain.Candidate
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		parties, err = s.parties.List(gctx)
		if err != nil {
			return fmt.Errorf("list parties: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		candidates, err = aggregate.Paginate(gctx, s.cfg.PageSize, func(ctx context.Context, offset, limit int) ([]domain.Candidate, error) {
			return s.candidates.ListPage(ctx, limit, offset)
		})
		if err != nil {
			return fmt.Errorf("list candidates: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	m := NewPartyMatcher(parties, candidates)
	s.log.DebugContext(ctx, "party matcher built",
		slog.Int("parties", len(parties)),
		slog.Int("candidates", len(candidates)),
		slog.Int("terms", m.Terms()),
	)
	return m, nil
}

func partyLabel(p domain.Party) string {
	if p.Name != "" {
		return p.Name
	}
	return p.OfficialName
}
