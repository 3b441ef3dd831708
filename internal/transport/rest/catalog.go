package rest

import (
	"log/slog"
	"net/http"

	"github.com/DAAT-RI/quipu/internal/category"
	"github.com/DAAT-RI/quipu/internal/domain"
)

// CatalogHandler serves the category catalog and the text utilities built on
// the normalizer. None of its endpoints touch the store.
type CatalogHandler struct {
	registry        *category.Registry
	minSearchLength int
	log             *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(registry *category.Registry, minSearchLength int, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		registry:        registry,
		minSearchLength: minSearchLength,
		log:             logger.With("handler", "catalog"),
	}
}

type categoriesResponse struct {
	Version     int               `json:"version"`
	Plan        []category.Config `json:"plan,omitempty"`
	Declaration []category.Config `json:"declaration,omitempty"`
}

// Categories returns the static category configuration.
// GET /api/categories?source=plan|declaration
func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	resp := categoriesResponse{Version: h.registry.Version()}

	raw := r.URL.Query().Get("source")
	if raw == "" {
		resp.Plan = h.registry.List(category.SourcePlan)
		resp.Declaration = h.registry.List(category.SourceDeclaration)
		writeJSON(w, http.StatusOK, resp)
		return
	}

	src, err := category.ParseSource(raw)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	switch src {
	case category.SourcePlan:
		resp.Plan = h.registry.List(src)
	case category.SourceDeclaration:
		resp.Declaration = h.registry.List(src)
	}
	writeJSON(w, http.StatusOK, resp)
}

type variantsResponse struct {
	Term     string   `json:"term"`
	Variants []string `json:"variants"`
}

// Variants shows how a search term is expanded. Terms below the minimum
// length expand to nothing.
// GET /api/search/variants?q=
func (h *CatalogHandler) Variants(w http.ResponseWriter, r *http.Request) {
	resp := variantsResponse{Variants: []string{}}
	if term, ok := domain.SearchTerm(r.URL.Query().Get("q"), h.minSearchLength); ok {
		resp.Term = term
		resp.Variants = domain.SearchVariants(term)
	}
	writeJSON(w, http.StatusOK, resp)
}

type normalizeResponse struct {
	Text string `json:"text"`
	Name string `json:"name"`
	Key  string `json:"key"`
}

// Normalize returns the alias form and the category key of a text.
// GET /api/normalize?text=
func (h *CatalogHandler) Normalize(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	writeJSON(w, http.StatusOK, normalizeResponse{
		Text: text,
		Name: domain.NormalizeName(text),
		Key:  domain.NormalizeKey(text),
	})
}
