// Package alias implements the stakeholder alias repository.
package alias

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/DAAT-RI/quipu/internal/adapter/postgres"
	"github.com/DAAT-RI/quipu/internal/domain"
)

const (
	table        = "stakeholder_aliases"
	defaultLimit = 50
)

var columns = []string{"id", "alias", "alias_normalized", "candidato_id", "confidence", "verified"}

// Repo provides alias persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new alias repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ListNormalizedPage returns one page of distinct alias_normalized values for
// aliases attached to any of candidateIDs, in lexical order. Values are
// returned verbatim. An empty candidate set returns an empty slice without
// querying.
func (r *Repo) ListNormalizedPage(ctx context.Context, candidateIDs []int64, limit, offset int) ([]string, error) {
	if len(candidateIDs) == 0 {
		return []string{}, nil
	}
	limit, offset = postgres.ClampPage(limit, offset, postgres.MaxRowsPerRequest)

	sqlStr, args, err := postgres.Builder().
		Select("DISTINCT alias_normalized").
		From(table).
		Where(sq.Eq{"candidato_id": candidateIDs}).
		OrderBy("alias_normalized").
		Limit(uint64(limit)).Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list normalized aliases: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list normalized aliases: %w", err)
	}

	out, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan normalized aliases: %w", err)
	}
	return out, nil
}

// Create inserts an alias. Normalized must already be filled in.
// Returns domain.ErrAlreadyExists if the normalized form is taken.
func (r *Repo) Create(ctx context.Context, a domain.Alias) (domain.Alias, error) {
	sqlStr, args, err := postgres.Builder().
		Insert(table).
		Columns("alias", "alias_normalized", "candidato_id", "confidence", "verified").
		Values(a.Alias, a.Normalized, a.CandidateID, a.Confidence, a.Verified).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return domain.Alias{}, fmt.Errorf("build create alias: %w", err)
	}

	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sqlStr, args...).Scan(&a.ID); err != nil {
		return domain.Alias{}, postgres.MapError(err, "alias", a.Normalized)
	}
	return a, nil
}

// AssignCandidate links an alias to candidateID (nil unlinks it) and sets the
// verified flag. Returns domain.ErrNotFound if the alias or the candidate
// does not exist.
func (r *Repo) AssignCandidate(ctx context.Context, id int64, candidateID *int64, verified bool) (domain.Alias, error) {
	sqlStr, args, err := postgres.Builder().
		Update(table).
		Set("candidato_id", candidateID).
		Set("verified", verified).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.Alias{}, fmt.Errorf("build assign alias: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sqlStr, args...)
	if err != nil {
		return domain.Alias{}, postgres.MapError(err, "alias", id)
	}

	a, err := pgx.CollectExactlyOneRow(rows, scanAlias)
	if err != nil {
		return domain.Alias{}, postgres.MapError(err, "alias", id)
	}
	return a, nil
}

// ListUnmatched returns aliases without a candidate, oldest first, with the
// exact count of unmatched rows.
func (r *Repo) ListUnmatched(ctx context.Context, limit, offset int) (domain.Page[domain.Alias], error) {
	limit, offset = postgres.ClampPage(limit, offset, defaultLimit)
	where := sq.Eq{"candidato_id": nil}
	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := postgres.Builder().Select("COUNT(*)").From(table).Where(where).ToSql()
	if err != nil {
		return domain.Page[domain.Alias]{}, fmt.Errorf("build count unmatched aliases: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return domain.Page[domain.Alias]{}, fmt.Errorf("count unmatched aliases: %w", err)
	}

	items, err := r.list(ctx, postgres.Builder().Select(columns...).From(table).Where(where), limit, offset)
	if err != nil {
		return domain.Page[domain.Alias]{}, fmt.Errorf("list unmatched aliases: %w", err)
	}
	return domain.Page[domain.Alias]{Items: items, Total: total}, nil
}

// ListPage returns one page of all aliases ordered by id.
func (r *Repo) ListPage(ctx context.Context, limit, offset int) ([]domain.Alias, error) {
	limit, offset = postgres.ClampPage(limit, offset, postgres.MaxRowsPerRequest)

	items, err := r.list(ctx, postgres.Builder().Select(columns...).From(table), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list aliases: %w", err)
	}
	return items, nil
}

// UpdateNormalized rewrites the stored normalized form of one alias.
func (r *Repo) UpdateNormalized(ctx context.Context, id int64, normalized string) error {
	sqlStr, args, err := postgres.Builder().
		Update(table).
		Set("alias_normalized", normalized).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update normalized alias: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sqlStr, args...)
	if err != nil {
		return postgres.MapError(err, "alias", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("alias %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) list(ctx context.Context, sb sq.SelectBuilder, limit, offset int) ([]domain.Alias, error) {
	sqlStr, args, err := sb.OrderBy("id").Limit(uint64(limit)).Offset(uint64(offset)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanAlias)
}

func scanAlias(row pgx.CollectableRow) (domain.Alias, error) {
	var a domain.Alias
	err := row.Scan(&a.ID, &a.Alias, &a.Normalized, &a.CandidateID, &a.Confidence, &a.Verified)
	return a, err
}
