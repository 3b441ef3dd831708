package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/DAAT-RI/quipu/internal/domain"
	aliassvc "github.com/DAAT-RI/quipu/internal/service/alias"
)

type aliasService interface {
	Create(ctx context.Context, in aliassvc.CreateInput) (domain.Alias, error)
	Assign(ctx context.Context, in aliassvc.AssignInput) (domain.Alias, error)
	ListUnmatched(ctx context.Context, limit, offset int) (domain.Page[domain.Alias], error)
}

// AliasHandler serves alias administration endpoints.
type AliasHandler struct {
	svc aliasService
	log *slog.Logger
}

// NewAliasHandler creates an AliasHandler.
func NewAliasHandler(svc aliasService, logger *slog.Logger) *AliasHandler {
	return &AliasHandler{svc: svc, log: logger.With("handler", "alias")}
}

type createAliasRequest struct {
	Alias       string   `json:"alias"`
	CandidateID *int64   `json:"candidateId"`
	Confidence  *float64 `json:"confidence"`
	Verified    bool     `json:"verified"`
}

type assignAliasRequest struct {
	CandidateID *int64 `json:"candidateId"`
	Verified    bool   `json:"verified"`
}

type aliasResponse struct {
	ID          int64   `json:"id"`
	Alias       string  `json:"alias"`
	Normalized  string  `json:"normalized"`
	CandidateID *int64  `json:"candidateId"`
	Confidence  float64 `json:"confidence"`
	Verified    bool    `json:"verified"`
}

func toAliasResponse(a domain.Alias) aliasResponse {
	return aliasResponse{
		ID:          a.ID,
		Alias:       a.Alias,
		Normalized:  a.Normalized,
		CandidateID: a.CandidateID,
		Confidence:  a.Confidence,
		Verified:    a.Verified,
	}
}

// Unmatched lists aliases without a candidate.
// GET /api/aliases/unmatched?limit=&offset=
func (h *AliasHandler) Unmatched(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pagination(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	page, err := h.svc.ListUnmatched(r.Context(), limit, offset)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := pageResponse[aliasResponse]{
		Items: make([]aliasResponse, 0, len(page.Items)),
		Total: page.Total,
	}
	for _, a := range page.Items {
		resp.Items = append(resp.Items, toAliasResponse(a))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create stores a new alias.
// POST /api/aliases
func (h *AliasHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAliasRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	created, err := h.svc.Create(r.Context(), aliassvc.CreateInput{
		Alias:       req.Alias,
		CandidateID: req.CandidateID,
		Confidence:  req.Confidence,
		Verified:    req.Verified,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAliasResponse(created))
}

// Assign attaches an alias to a candidate or detaches it.
// PUT /api/aliases/{id}/candidate
func (h *AliasHandler) Assign(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("id", "must be an integer"))
		return
	}

	var req assignAliasRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	updated, err := h.svc.Assign(r.Context(), aliassvc.AssignInput{
		ID:          id,
		CandidateID: req.CandidateID,
		Verified:    req.Verified,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAliasResponse(updated))
}
