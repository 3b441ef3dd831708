// Package organization implements reads over client organizations and their
// candidate ownership.
package organization

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/DAAT-RI/quipu/internal/adapter/postgres"
	"github.com/DAAT-RI/quipu/internal/domain"
)

var columns = []string{"id", "nombre", "slug", "es_superadmin", "activo", "created_at"}

// Repo provides organization reads backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new organization repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns an organization by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Organization, error) {
	sqlStr, args, err := postgres.Builder().
		Select(columns...).From("organizaciones").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return domain.Organization{}, fmt.Errorf("build get organization: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sqlStr, args...)
	if err != nil {
		return domain.Organization{}, postgres.MapError(err, "organization", id)
	}

	org, err := pgx.CollectExactlyOneRow(rows, scanOrganization)
	if err != nil {
		return domain.Organization{}, postgres.MapError(err, "organization", id)
	}
	return org, nil
}

// List returns active organizations ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Organization, error) {
	sqlStr, args, err := postgres.Builder().
		Select(columns...).From("organizaciones").
		Where(sq.Eq{"activo": true}).
		OrderBy("nombre").
		Limit(postgres.MaxRowsPerRequest).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list organizations: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}

	out, err := pgx.CollectRows(rows, scanOrganization)
	if err != nil {
		return nil, fmt.Errorf("scan organizations: %w", err)
	}
	return out, nil
}

// ListCandidateIDsPage returns one page of candidate ids owned by orgID
// through the organizacion_candidatos junction, in ascending order.
func (r *Repo) ListCandidateIDsPage(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]int64, error) {
	limit, offset = postgres.ClampPage(limit, offset, postgres.MaxRowsPerRequest)

	sqlStr, args, err := postgres.Builder().
		Select("candidato_id").
		From("organizacion_candidatos").
		Where(sq.Eq{"organizacion_id": orgID}).
		OrderBy("candidato_id").
		Limit(uint64(limit)).Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list organization candidates: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list organization %s candidates: %w", orgID, err)
	}

	out, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("scan organization %s candidates: %w", orgID, err)
	}
	return out, nil
}

func scanOrganization(row pgx.CollectableRow) (domain.Organization, error) {
	var o domain.Organization
	err := row.Scan(&o.ID, &o.Name, &o.Slug, &o.IsSuperadmin, &o.Active, &o.CreatedAt)
	return o, err
}
