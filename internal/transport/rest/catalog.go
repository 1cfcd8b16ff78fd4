package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/kagehisa/animemo-backend/internal/domain"
)

// catalogService defines the minimal interface needed by CatalogHandler.
type catalogService interface {
	GetTitle(ctx context.Context, anilistID int64) (domain.Title, error)
	ListTitles(ctx context.Context, limit, offset int) ([]domain.Title, error)
}

// CatalogHandler serves title catalog endpoints.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

// Get handles GET /v1/titles/{anilistId}.
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	anilistID, err := strconv.ParseInt(r.PathValue("anilistId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid anilist id")
		return
	}

	title, err := h.svc.GetTitle(r.Context(), anilistID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTitleResponse(title))
}

// List handles GET /v1/titles.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	titles, err := h.svc.ListTitles(r.Context(), queryInt(r, "limit"), queryInt(r, "offset"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	items := make([]titleResponse, 0, len(titles))
	for _, t := range titles {
		items = append(items, toTitleResponse(t))
	}

	writeJSON(w, http.StatusOK, listResponse[titleResponse]{Items: items, Total: len(items)})
}
