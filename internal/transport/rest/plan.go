package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DAAT-RI/quipu/internal/domain"
	plansvc "github.com/DAAT-RI/quipu/internal/service/plan"
)

type planService interface {
	CategoryCounts(ctx context.Context) (plansvc.CategoryCounts, error)
	Search(ctx context.Context, in plansvc.SearchInput) (domain.Page[domain.PlanPromise], error)
}

// PlanHandler serves government-plan endpoints.
type PlanHandler struct {
	svc planService
	log *slog.Logger
}

// NewPlanHandler creates a PlanHandler.
func NewPlanHandler(svc planService, logger *slog.Logger) *PlanHandler {
	return &PlanHandler{svc: svc, log: logger.With("handler", "plan")}
}

type promiseResponse struct {
	ID       int64  `json:"id"`
	PartyID  *int64 `json:"partyId,omitempty"`
	Category string `json:"category"`
	Text     string `json:"text"`
}

// Categories returns the category distribution of all promises.
// GET /api/plan/categories
func (h *PlanHandler) Categories(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.CategoryCounts(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

// Promises searches plan promises.
// GET /api/plan/promises?q=&category=&party_id=&limit=&offset=
func (h *PlanHandler) Promises(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pagination(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	partyID, err := queryInt64Ptr(r, "party_id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	q := r.URL.Query()
	page, err := h.svc.Search(r.Context(), plansvc.SearchInput{
		Search:   q.Get("q"),
		Category: q.Get("category"),
		PartyID:  partyID,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := pageResponse[promiseResponse]{
		Items: make([]promiseResponse, 0, len(page.Items)),
		Total: page.Total,
	}
	for _, p := range page.Items {
		resp.Items = append(resp.Items, promiseResponse{
			ID:       p.ID,
			PartyID:  p.PartyID,
			Category: p.Category,
			Text:     p.Text,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
