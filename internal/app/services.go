package app

import (
	"log/slog"

	"github.com/DAAT-RI/quipu/internal/adapter/postgres"
	aliasrepo "github.com/DAAT-RI/quipu/internal/adapter/postgres/alias"
	"github.com/DAAT-RI/quipu/internal/adapter/postgres/candidate"
	declrepo "github.com/DAAT-RI/quipu/internal/adapter/postgres/declaration"
	"github.com/DAAT-RI/quipu/internal/adapter/postgres/organization"
	"github.com/DAAT-RI/quipu/internal/adapter/postgres/party"
	planrepo "github.com/DAAT-RI/quipu/internal/adapter/postgres/plan"
	"github.com/DAAT-RI/quipu/internal/cache"
	"github.com/DAAT-RI/quipu/internal/category"
	"github.com/DAAT-RI/quipu/internal/config"
	"github.com/DAAT-RI/quipu/internal/domain"
	aliassvc "github.com/DAAT-RI/quipu/internal/service/alias"
	declsvc "github.com/DAAT-RI/quipu/internal/service/declaration"
	plansvc "github.com/DAAT-RI/quipu/internal/service/plan"
	"github.com/DAAT-RI/quipu/internal/service/reference"
	"github.com/DAAT-RI/quipu/internal/service/tenantscope"
)

// Services holds the wired service layer. The HTTP server and the operator
// CLI share it.
type Services struct {
	Registry     *category.Registry
	Scopes       *tenantscope.Service
	Declarations *declsvc.Service
	Plan         *plansvc.Service
	Reference    *reference.Service
	Aliases      *aliassvc.Service
}

// NewServices builds repositories, caches and services on top of db.
func NewServices(log *slog.Logger, db postgres.DB, registry *category.Registry, cfg *config.Config) *Services {
	orgs := organization.New(db)
	aliases := aliasrepo.New(db)
	declarations := declrepo.New(db, cfg.Query.MaxAliasPredicates)
	promises := planrepo.New(db)
	parties := party.New(db)
	candidates := candidate.New(db)
	tx := postgres.NewTxManager(db)

	size := cfg.Cache.Size
	scopeCache := cache.New[domain.TenantScope](size, cfg.Cache.ScopeTTL)
	topicCache := cache.New[declsvc.TopicCounts](size, cfg.Cache.AggregateTTL)
	partyCache := cache.New[declsvc.PartyCounts](size, cfg.Cache.AggregateTTL)

	scopes := tenantscope.NewService(log, orgs, aliases, cfg.Query.PageSize, scopeCache)

	return &Services{
		Registry: registry,
		Scopes:   scopes,
		Declarations: declsvc.NewService(log, declarations, parties, candidates, scopes, registry, cfg.Query,
			topicCache, partyCache),
		Plan: plansvc.NewService(log, promises, registry, cfg.Query,
			cache.New[plansvc.CategoryCounts](size, cfg.Cache.AggregateTTL),
		),
		Reference: reference.NewService(log, declarations, orgs, scopes,
			cache.New[[]string](size, cfg.Cache.ReferenceTTL),
			cache.New[[]domain.Organization](size, cfg.Cache.ReferenceTTL),
		),
		// Alias writes change tenant scopes and every per-tenant aggregate.
		Aliases: aliassvc.NewService(log, aliases, scopes, tx,
			cache.Group{scopeCache, topicCache, partyCache}, cfg.Query.PageSize),
	}
}
