// Package declaration implements tenant-scoped reads over the declaraciones
// relation. Every method that returns declaration data takes a
// domain.TenantScope and applies ScopePredicate to the query.
package declaration

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/DAAT-RI/quipu/internal/adapter/postgres"
	"github.com/DAAT-RI/quipu/internal/domain"
)

const defaultLimit = 50

// Repo provides declaration reads backed by PostgreSQL.
type Repo struct {
	db         postgres.Querier
	maxAliases int
}

// New creates a declaration repository. maxAliases caps the stakeholder
// predicates per query; values outside (0, MaxAliasPredicates] use the cap.
func New(db postgres.Querier, maxAliases int) *Repo {
	return &Repo{db: db, maxAliases: maxAliases}
}

var columns = []string{
	"id",
	"stakeholder",
	"contenido",
	"COALESCE(tema, '')",
	"COALESCE(categorias, '')",
	"COALESCE(medio, '')",
	"fecha",
	"COALESCE(url, '')",
}

// List returns one page of declarations visible in scope, newest first, with
// the exact count of matching rows.
func (r *Repo) List(ctx context.Context, scope domain.TenantScope, f domain.DeclarationFilter) (domain.Page[domain.Declaration], error) {
	limit, offset := postgres.ClampPage(f.Limit, f.Offset, defaultLimit)
	where := r.conditions(scope, f)
	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := postgres.Builder().
		Select("COUNT(*)").From("declaraciones").Where(where).ToSql()
	if err != nil {
		return domain.Page[domain.Declaration]{}, fmt.Errorf("build count declarations: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return domain.Page[domain.Declaration]{}, fmt.Errorf("count declarations: %w", err)
	}

	listSQL, listArgs, err := postgres.Builder().
		Select(columns...).From("declaraciones").Where(where).
		OrderBy("fecha DESC NULLS LAST", "id DESC").
		Limit(uint64(limit)).Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return domain.Page[domain.Declaration]{}, fmt.Errorf("build list declarations: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return domain.Page[domain.Declaration]{}, fmt.Errorf("list declarations: %w", err)
	}

	items, err := pgx.CollectRows(rows, scanDeclaration)
	if err != nil {
		return domain.Page[domain.Declaration]{}, fmt.Errorf("scan declarations: %w", err)
	}

	return domain.Page[domain.Declaration]{Items: items, Total: total}, nil
}

// ListLabelsPage returns the topic fields of one page of declarations visible
// in scope, ordered by id. It is meant to be driven by aggregate.Paginate.
func (r *Repo) ListLabelsPage(ctx context.Context, scope domain.TenantScope, limit, offset int) ([]domain.DeclarationLabels, error) {
	sb := postgres.Builder().
		Select("COALESCE(tema, '')", "COALESCE(categorias, '')").
		From("declaraciones").
		Where(r.conditions(scope, domain.DeclarationFilter{}))

	rows, err := r.page(ctx, sb, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list declaration labels: %w", err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DeclarationLabels, error) {
		var l domain.DeclarationLabels
		err := row.Scan(&l.Topic, &l.Categories)
		return l, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan declaration labels: %w", err)
	}
	return out, nil
}

// ListStakeholdersPage returns the stakeholder field of one page of
// declarations visible in scope, ordered by id.
func (r *Repo) ListStakeholdersPage(ctx context.Context, scope domain.TenantScope, limit, offset int) ([]string, error) {
	sb := postgres.Builder().
		Select("stakeholder").
		From("declaraciones").
		Where(r.conditions(scope, domain.DeclarationFilter{}))

	rows, err := r.page(ctx, sb, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stakeholders: %w", err)
	}

	out, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan stakeholders: %w", err)
	}
	return out, nil
}

// ListChannels returns the distinct non-empty medio values in lexical order.
// Channel names are reference data and not tenant scoped.
func (r *Repo) ListChannels(ctx context.Context) ([]string, error) {
	sqlStr, args, err := postgres.Builder().
		Select("DISTINCT medio").
		From("declaraciones").
		Where(sq.And{sq.NotEq{"medio": nil}, sq.NotEq{"medio": ""}}).
		OrderBy("medio").
		Limit(postgres.MaxRowsPerRequest).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list channels: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list channels: %w", err)
	}

	out, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan channels: %w", err)
	}
	return out, nil
}

// conditions always contains the scope predicate (unless unrestricted), so a
// query built from it can never widen a restricted tenant's visibility.
func (r *Repo) conditions(scope domain.TenantScope, f domain.DeclarationFilter) sq.And {
	where := sq.And{}
	if p := scopePredicate(scope, r.maxAliases); p != nil {
		where = append(where, p)
	}
	if len(f.Variants) > 0 {
		where = append(where, sq.Or{
			postgres.ContainsAny("contenido", f.Variants),
			postgres.ContainsAny("stakeholder", f.Variants),
		})
	}
	if f.Topic != nil && *f.Topic != "" {
		where = append(where, sq.Or{
			sq.ILike{"tema": postgres.EscapeLike(*f.Topic)},
			postgres.Contains("categorias", *f.Topic),
		})
	}
	if f.Channel != nil && *f.Channel != "" {
		where = append(where, sq.Eq{"medio": *f.Channel})
	}
	return where
}

func (r *Repo) page(ctx context.Context, sb sq.SelectBuilder, limit, offset int) (pgx.Rows, error) {
	limit, offset = postgres.ClampPage(limit, offset, postgres.MaxRowsPerRequest)

	sqlStr, args, err := sb.OrderBy("id").Limit(uint64(limit)).Offset(uint64(offset)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sqlStr, args...)
}

func scanDeclaration(row pgx.CollectableRow) (domain.Declaration, error) {
	var d domain.Declaration
	err := row.Scan(
		&d.ID, &d.Stakeholder, &d.Content, &d.Topic,
		&d.Categories, &d.Channel, &d.PublishedAt, &d.URL,
	)
	return d, err
}
