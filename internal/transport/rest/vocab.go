package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/kagehisa/animemo-backend/internal/domain"
	"github.com/kagehisa/animemo-backend/internal/service/vocab"
)

// vocabService defines the minimal interface needed by VocabHandler.
type vocabService interface {
	Add(ctx context.Context, input vocab.AddInput) (domain.VocabEntry, error)
	Update(ctx context.Context, input vocab.UpdateInput) (domain.VocabEntry, error)
	Delete(ctx context.Context, vocabID uuid.UUID) error
}

// VocabHandler serves vocabulary entry endpoints.
type VocabHandler struct {
	svc vocabService
	log *slog.Logger
}

// NewVocabHandler creates a VocabHandler.
func NewVocabHandler(svc vocabService, logger *slog.Logger) *VocabHandler {
	return &VocabHandler{svc: svc, log: logger.With("handler", "vocab")}
}

// Add handles POST /v1/screenshots/{id}/vocab.
func (h *VocabHandler) Add(w http.ResponseWriter, r *http.Request) {
	screenshotID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid screenshot id")
		return
	}

	var req vocabRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.svc.Add(r.Context(), vocab.AddInput{
		ScreenshotID: screenshotID,
		Word:         req.Word,
		Reading:      req.Reading,
		Meaning:      req.Meaning,
		PartOfSpeech: domain.PartOfSpeech(req.PartOfSpeech),
		Notes:        req.Notes,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toVocabResponse(entry))
}

// Update handles PUT /v1/vocab/{id}.
func (h *VocabHandler) Update(w http.ResponseWriter, r *http.Request) {
	vocabID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid vocab id")
		return
	}

	var req vocabRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.svc.Update(r.Context(), vocab.UpdateInput{
		VocabID:      vocabID,
		Word:         req.Word,
		Reading:      req.Reading,
		Meaning:      req.Meaning,
		PartOfSpeech: domain.PartOfSpeech(req.PartOfSpeech),
		Notes:        req.Notes,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toVocabResponse(entry))
}

// Delete handles DELETE /v1/vocab/{id}.
func (h *VocabHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vocabID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid vocab id")
		return
	}

	if err := h.svc.Delete(r.Context(), vocabID); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
