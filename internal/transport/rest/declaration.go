package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/DAAT-RI/quipu/internal/aggregate"
	"github.com/DAAT-RI/quipu/internal/domain"
	declsvc "github.com/DAAT-RI/quipu/internal/service/declaration"
)

type declarationService interface {
	List(ctx context.Context, in declsvc.ListInput) (domain.Page[domain.Declaration], error)
	TopicCounts(ctx context.Context) (declsvc.TopicCounts, error)
	PartyCounts(ctx context.Context) (declsvc.PartyCounts, error)
}

// DeclarationHandler serves tenant-scoped declaration endpoints.
type DeclarationHandler struct {
	svc declarationService
	log *slog.Logger
}

// NewDeclarationHandler creates a DeclarationHandler.
func NewDeclarationHandler(svc declarationService, logger *slog.Logger) *DeclarationHandler {
	return &DeclarationHandler{svc: svc, log: logger.With("handler", "declaration")}
}

type declarationResponse struct {
	ID          int64      `json:"id"`
	Stakeholder string     `json:"stakeholder"`
	Content     string     `json:"content"`
	Topic       string     `json:"topic,omitempty"`
	Categories  []string   `json:"categories"`
	Channel     string     `json:"channel,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	URL         string     `json:"url,omitempty"`
}

type pageResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// List returns one page of visible declarations.
// GET /api/declarations?q=&topic=&channel=&limit=&offset=
func (h *DeclarationHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pagination(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	q := r.URL.Query()
	page, err := h.svc.List(r.Context(), declsvc.ListInput{
		Search:  q.Get("q"),
		Topic:   q.Get("topic"),
		Channel: q.Get("channel"),
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := pageResponse[declarationResponse]{
		Items: make([]declarationResponse, 0, len(page.Items)),
		Total: page.Total,
	}
	for _, d := range page.Items {
		resp.Items = append(resp.Items, declarationResponse{
			ID:          d.ID,
			Stakeholder: d.Stakeholder,
			Content:     d.Content,
			Topic:       d.Topic,
			Categories:  append([]string{}, aggregate.SplitLabels(d.Categories, aggregate.DefaultSeparators)...),
			Channel:     d.Channel,
			PublishedAt: d.PublishedAt,
			URL:         d.URL,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Topics returns topic counts over the visible declarations.
// GET /api/declarations/topics
func (h *DeclarationHandler) Topics(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.TopicCounts(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

// Parties returns per-party counts over the visible declarations.
// GET /api/declarations/parties
func (h *DeclarationHandler) Parties(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.PartyCounts(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}
