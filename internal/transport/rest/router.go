package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/DAAT-RI/quipu/internal/transport/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Health       *HealthHandler
	Catalog      *CatalogHandler
	Declarations *DeclarationHandler
	Plan         *PlanHandler
	Reference    *ReferenceHandler
	Aliases      *AliasHandler
}

// NewRouter mounts every endpoint behind the given global middleware. Routes
// that read tenant data additionally require an organization in the token.
func NewRouter(h Handlers, global ...middleware.Middleware) http.Handler {
	r := chi.NewRouter()
	for _, mw := range global {
		r.Use(mw)
	}

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	r.Route("/api", func(api chi.Router) {
		api.Get("/categories", h.Catalog.Categories)
		api.Get("/search/variants", h.Catalog.Variants)
		api.Get("/normalize", h.Catalog.Normalize)
		api.Get("/plan/categories", h.Plan.Categories)
		api.Get("/plan/promises", h.Plan.Promises)
		api.Get("/channels", h.Reference.Channels)

		api.Group(func(tenant chi.Router) {
			tenant.Use(middleware.RequireTenant)

			tenant.Get("/declarations", h.Declarations.List)
			tenant.Get("/declarations/topics", h.Declarations.Topics)
			tenant.Get("/declarations/parties", h.Declarations.Parties)

			tenant.Get("/organizations", h.Reference.Organizations)
			tenant.Get("/aliases/unmatched", h.Aliases.Unmatched)
			tenant.Post("/aliases", h.Aliases.Create)
			tenant.Put("/aliases/{id}/candidate", h.Aliases.Assign)
		})
	})

	return r
}
