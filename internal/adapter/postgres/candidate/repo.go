// Package candidate implements reads over the candidatos relation.
package candidate

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	postgres "github.com/DAAT-RI/quipu/internal/adapter/postgres"
	"github.com/DAAT-RI/quipu/internal/domain"
)

// Repo provides candidate reads backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new candidate repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ListPage returns one page of candidates with their party name, ordered by id.
func (r *Repo) ListPage(ctx context.Context, limit, offset int) ([]domain.Candidate, error) {
	limit, offset = postgres.ClampPage(limit, offset, postgres.MaxRowsPerRequest)

	sqlStr, args, err := postgres.Builder().
		Select("c.id", "c.nombre", "c.partido_id", "COALESCE(p.nombre, '')").
		From("candidatos c").
		LeftJoin("partidos p ON p.id = c.partido_id").
		OrderBy("c.id").
		Limit(uint64(limit)).Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list candidates: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Candidate, error) {
		var c domain.Candidate
		err := row.Scan(&c.ID, &c.Name, &c.PartyID, &c.PartyName)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan candidates: %w", err)
	}
	return out, nil
}
