package declaration

import (
	sq "github.com/Masterminds/squirrel"

	postgres "github.com/DAAT-RI/quipu/internal/adapter/postgres"
	"github.com/DAAT-RI/quipu/internal/domain"
)

// MaxAliasPredicates caps the OR'd stakeholder predicates of one query.
const MaxAliasPredicates = 100

// denyAll matches no row: declaration ids are BIGSERIAL and never negative.
var denyAll = sq.Eq{"id": -1}

// ScopePredicate translates a tenant scope into a WHERE predicate on the
// declaraciones relation:
//   - Unrestricted: nil (no filter)
//   - Restricted with aliases: OR of stakeholder ILIKE '%alias%' over the
//     first MaxAliasPredicates non-blank aliases
//   - Restricted without usable aliases, or an unknown scope: id = -1
func ScopePredicate(scope domain.TenantScope) sq.Sqlizer {
	return scopePredicate(scope, MaxAliasPredicates)
}

func scopePredicate(scope domain.TenantScope, limit int) sq.Sqlizer {
	if limit <= 0 || limit > MaxAliasPredicates {
		limit = MaxAliasPredicates
	}

	switch s := scope.(type) {
	case domain.Unrestricted:
		return nil
	case domain.Restricted:
		if s.DeniesAll() {
			return denyAll
		}
		return postgres.ContainsAny("stakeholder", s.MatchAliases(limit))
	default:
		return denyAll
	}
}
