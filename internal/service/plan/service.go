// Package plan serves government-plan promises and their category
// distribution. Plan data is public: no tenant scope applies.
package plan

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/DAAT-RI/quipu/internal/aggregate"
	"github.com/DAAT-RI/quipu/internal/cache"
	"github.com/DAAT-RI/quipu/internal/category"
	"github.com/DAAT-RI/quipu/internal/config"
	"github.com/DAAT-RI/quipu/internal/domain"
)

type promiseRepo interface {
	ListCategoryPage(ctx context.Context, limit, offset int) ([]string, error)
	List(ctx context.Context, f domain.PromiseFilter) (domain.Page[domain.PlanPromise], error)
}

// Service provides plan promise search and category aggregation.
type Service struct {
	log      *slog.Logger
	promises promiseRepo
	registry *category.Registry
	cfg      config.QueryConfig
	counts   *cache.Query[CategoryCounts]
}

// NewService creates a new plan service.
func NewService(
	log *slog.Logger,
	promises promiseRepo,
	registry *category.Registry,
	cfg config.QueryConfig,
	counts *cache.Query[CategoryCounts],
) *Service {
	return &Service{
		log:      log.With("service", "plan"),
		promises: promises,
		registry: registry,
		cfg:      cfg,
		counts:   counts,
	}
}

// CategoryCounts is the category distribution of all plan promises.
type CategoryCounts struct {
	Promises   int                `json:"promises"`
	Categories []category.Counted `json:"categories"`
}

// CategoryCounts aggregates every promise by categoria.
func (s *Service) CategoryCounts(ctx context.Context) (CategoryCounts, error) {
	return s.counts.GetOrLoad(ctx, cache.Key("plan_categories"), func(ctx context.Context) (CategoryCounts, error) {
		labels, err := aggregate.Paginate(ctx, s.cfg.PageSize, func(ctx context.Context, offset, limit int) ([]string, error) {
			return s.promises.ListCategoryPage(ctx, limit, offset)
		})
		if err != nil {
			return CategoryCounts{}, fmt.Errorf("fetch plan categories: %w", err)
		}

		table := aggregate.CountLabels(labels, func(l string) string { return l })
		return CategoryCounts{
			Promises:   len(labels),
			Categories: s.registry.Annotate(category.SourcePlan, table.Sorted()),
		}, nil
	})
}

// SearchInput holds the parameters for searching plan promises.
type SearchInput struct {
	Search   string
	Category string
	PartyID  *int64
	Limit    int
	Offset   int
}

// Validate checks all fields and collects all errors.
func (i *SearchInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}
	if utf8.RuneCountInString(i.Search) > 200 {
		errs = append(errs, domain.FieldError{Field: "q", Message: "too long (max 200)"})
	}
	if i.PartyID != nil && *i.PartyID <= 0 {
		errs = append(errs, domain.FieldError{Field: "party_id", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Search returns one page of promises. The search term is expanded into
// accent variants; terms below the minimum length apply no text filter.
func (s *Service) Search(ctx context.Context, in SearchInput) (domain.Page[domain.PlanPromise], error) {
	if err := in.Validate(); err != nil {
		return domain.Page[domain.PlanPromise]{}, err
	}

	f := domain.PromiseFilter{
		PartyID: in.PartyID,
		Limit:   in.Limit,
		Offset:  in.Offset,
	}
	if c := strings.TrimSpace(in.Category); c != "" {
		f.Category = &c
	}
	if term, ok := domain.SearchTerm(in.Search, s.cfg.MinSearchLength); ok {
		f.Variants = domain.SearchVariants(term)
	}

	page, err := s.promises.List(ctx, f)
	if err != nil {
		return domain.Page[domain.PlanPromise]{}, fmt.Errorf("search plan promises: %w", err)
	}
	return page, nil
}
