package postgres

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// MaxRowsPerRequest is the per-request row ceiling every repository enforces.
const MaxRowsPerRequest = 1000

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Builder returns a squirrel statement builder with PostgreSQL placeholders.
func Builder() sq.StatementBuilderType {
	return psql
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE metacharacters so s matches literally. PostgreSQL
// uses backslash as the default LIKE escape character.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Contains returns a case-insensitive substring predicate on column.
func Contains(column, term string) sq.Sqlizer {
	return sq.ILike{column: "%" + EscapeLike(term) + "%"}
}

// ContainsAny ORs one Contains predicate per term. It returns nil for an
// empty term list.
func ContainsAny(column string, terms []string) sq.Sqlizer {
	if len(terms) == 0 {
		return nil
	}
	or := make(sq.Or, 0, len(terms))
	for _, t := range terms {
		or = append(or, Contains(column, t))
	}
	return or
}

// ClampPage applies the default limit and the per-request ceiling.
func ClampPage(limit, offset, defaultLimit int) (int, int) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > MaxRowsPerRequest {
		limit = MaxRowsPerRequest
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
