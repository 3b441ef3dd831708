// Package party implements reads over the partidos relation.
package party

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	postgres "github.com/DAAT-RI/quipu/internal/adapter/postgres"
	"github.com/DAAT-RI/quipu/internal/domain"
)

// Repo provides party reads backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new party repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// List returns every party ordered by id, up to the request row ceiling.
func (r *Repo) List(ctx context.Context) ([]domain.Party, error) {
	sqlStr, args, err := postgres.Builder().
		Select("id", "nombre", "nombre_oficial").
		From("partidos").
		OrderBy("id").
		Limit(postgres.MaxRowsPerRequest).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list parties: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list parties: %w", err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Party, error) {
		var p domain.Party
		err := row.Scan(&p.ID, &p.Name, &p.OfficialName)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan parties: %w", err)
	}
	return out, nil
}
