package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DAAT-RI/quipu/internal/domain"
)

type referenceService interface {
	Channels(ctx context.Context) ([]string, error)
	Organizations(ctx context.Context) ([]domain.Organization, error)
}

// ReferenceHandler serves cached reference lists.
type ReferenceHandler struct {
	svc referenceService
	log *slog.Logger
}

// NewReferenceHandler creates a ReferenceHandler.
func NewReferenceHandler(svc referenceService, logger *slog.Logger) *ReferenceHandler {
	return &ReferenceHandler{svc: svc, log: logger.With("handler", "reference")}
}

type organizationResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	Superadmin bool   `json:"superadmin"`
}

// Channels returns the distinct media channels.
// GET /api/channels
func (h *ReferenceHandler) Channels(w http.ResponseWriter, r *http.Request) {
	channels, err := h.svc.Channels(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if channels == nil {
		channels = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"channels": channels})
}

// Organizations returns the active organizations.
// GET /api/organizations
func (h *ReferenceHandler) Organizations(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.svc.Organizations(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]organizationResponse, 0, len(orgs))
	for _, o := range orgs {
		resp = append(resp, organizationResponse{
			ID:         o.ID.String(),
			Name:       o.Name,
			Slug:       o.Slug,
			Superadmin: o.IsSuperadmin,
		})
	}
	writeJSON(w, http.StatusOK, map[string][]organizationResponse{"organizations": resp})
}
