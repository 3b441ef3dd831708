package declaration

import (
	"context"
	"fmt"
	"strings"

	"github.com/DAAT-RI/quipu/internal/aggregate"
	"github.com/DAAT-RI/quipu/internal/cache"
	"github.com/DAAT-RI/quipu/internal/category"
	"github.com/DAAT-RI/quipu/internal/domain"
	"github.com/DAAT-RI/quipu/pkg/ctxutil"
)

// TopicCounts is the topic distribution of the declarations visible to one
// organization.
type TopicCounts struct {
	Declarations int                `json:"declarations"`
	Topics       []category.Counted `json:"topics"`
}

// TopicCounts aggregates every visible declaration by topic. The categorias
// field is split into its labels; declarations without categorias count
// under tema.
func (s *Service) TopicCounts(ctx context.Context) (TopicCounts, error) {
	orgID, ok := ctxutil.OrgIDFromCtx(ctx)
	if !ok {
		return TopicCounts{}, domain.ErrUnauthorized
	}
	return s.topicCache.GetOrLoad(ctx, cache.Key("declaration_topics", orgID), s.loadTopicCounts)
}

func (s *Service) loadTopicCounts(ctx context.Context) (TopicCounts, error) {
	scope, err := s.scopes.ResolveFromCtx(ctx)
	if err != nil {
		return TopicCounts{}, fmt.Errorf("resolve scope: %w", err)
	}

	rows, err := aggregate.Paginate(ctx, s.cfg.PageSize, func(ctx context.Context, offset, limit int) ([]domain.DeclarationLabels, error) {
		return s.declarations.ListLabelsPage(ctx, scope, limit, offset)
	})
	if err != nil {
		return TopicCounts{}, fmt.Errorf("fetch declaration labels: %w", err)
	}

	table := aggregate.CountMulti(rows, topicField, aggregate.DefaultSeparators)
	return TopicCounts{
		Declarations: len(rows),
		Topics:       s.registry.Annotate(category.SourceDeclaration, table.Sorted()),
	}, nil
}

func topicField(l domain.DeclarationLabels) string {
	if strings.TrimSpace(l.Categories) != "" {
		return l.Categories
	}
	return l.Topic
}
