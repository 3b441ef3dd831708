// Package plan implements reads over government-plan promises.
package plan

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/DAAT-RI/quipu/internal/adapter/postgres"
	"github.com/DAAT-RI/quipu/internal/domain"
)

const defaultLimit = 50

// Repo provides plan promise reads backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new plan repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ListCategoryPage returns the categoria field of one page of promises
// ordered by id. It is meant to be driven by aggregate.Paginate.
func (r *Repo) ListCategoryPage(ctx context.Context, limit, offset int) ([]string, error) {
	limit, offset = postgres.ClampPage(limit, offset, postgres.MaxRowsPerRequest)

	sqlStr, args, err := postgres.Builder().
		Select("categoria").From("promesas_plan").
		OrderBy("id").
		Limit(uint64(limit)).Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list plan categories: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list plan categories: %w", err)
	}

	out, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan plan categories: %w", err)
	}
	return out, nil
}

// List returns one page of promises matching f with the exact match count.
func (r *Repo) List(ctx context.Context, f domain.PromiseFilter) (domain.Page[domain.PlanPromise], error) {
	limit, offset := postgres.ClampPage(f.Limit, f.Offset, defaultLimit)
	q := postgres.QuerierFromCtx(ctx, r.db)

	where := sq.And{}
	if len(f.Variants) > 0 {
		where = append(where, postgres.ContainsAny("texto", f.Variants))
	}
	if f.Category != nil && *f.Category != "" {
		where = append(where, sq.ILike{"categoria": postgres.EscapeLike(*f.Category)})
	}
	if f.PartyID != nil {
		where = append(where, sq.Eq{"partido_id": *f.PartyID})
	}

	countSQL, countArgs, err := postgres.Builder().
		Select("COUNT(*)").From("promesas_plan").Where(where).ToSql()
	if err != nil {
		return domain.Page[domain.PlanPromise]{}, fmt.Errorf("build count plan promises: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return domain.Page[domain.PlanPromise]{}, fmt.Errorf("count plan promises: %w", err)
	}

	listSQL, listArgs, err := postgres.Builder().
		Select("id", "partido_id", "categoria", "texto").
		From("promesas_plan").Where(where).
		OrderBy("id").
		Limit(uint64(limit)).Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return domain.Page[domain.PlanPromise]{}, fmt.Errorf("build list plan promises: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return domain.Page[domain.PlanPromise]{}, fmt.Errorf("list plan promises: %w", err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PlanPromise, error) {
		var p domain.PlanPromise
		err := row.Scan(&p.ID, &p.PartyID, &p.Category, &p.Text)
		return p, err
	})
	if err != nil {
		return domain.Page[domain.PlanPromise]{}, fmt.Errorf("scan plan promises: %w", err)
	}

	return domain.Page[domain.PlanPromise]{Items: items, Total: total}, nil
}
