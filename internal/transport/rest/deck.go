package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/kagehisa/animemo-backend/internal/domain"
	"github.com/kagehisa/animemo-backend/internal/service/deck"
)

// deckService defines the minimal interface needed by DeckHandler.
type deckService interface {
	UploadScreenshot(ctx context.Context, input deck.UploadScreenshotInput) (deck.UploadResult, error)
	GetScreenshot(ctx context.Context, screenshotID uuid.UUID) (deck.ScreenshotWithVocab, error)
	UpdateScreenshot(ctx context.Context, input deck.UpdateScreenshotInput) (domain.Screenshot, error)
	DeleteScreenshot(ctx context.Context, screenshotID uuid.UUID) error
	SetVisibility(ctx context.Context, input deck.SetVisibilityInput) (domain.Screenshot, error)
	Adopt(ctx context.Context, screenshotID uuid.UUID) (deck.UploadResult, error)
	ListMine(ctx context.Context, input deck.ListMineInput) ([]domain.Screenshot, int, error)
	BrowsePublic(ctx context.Context, input deck.BrowsePublicInput) ([]domain.Screenshot, int, error)
}

// DeckHandler serves screenshot deck endpoints.
type DeckHandler struct {
	svc deckService
	log *slog.Logger
}

// NewDeckHandler creates a DeckHandler.
func NewDeckHandler(svc deckService, logger *slog.Logger) *DeckHandler {
	return &DeckHandler{svc: svc, log: logger.With("handler", "deck")}
}

type vocabRequest struct {
	Word         string  `json:"word"`
	Reading      *string `json:"reading,omitempty"`
	Meaning      string  `json:"meaning"`
	PartOfSpeech string  `json:"partOfSpeech"`
	Notes        *string `json:"notes,omitempty"`
}

func (v vocabRequest) toInput() deck.VocabInput {
	return deck.VocabInput{
		Word:         v.Word,
		Reading:      v.Reading,
		Meaning:      v.Meaning,
		PartOfSpeech: domain.PartOfSpeech(v.PartOfSpeech),
		Notes:        v.Notes,
	}
}

type uploadRequest struct {
	AnilistID   int64          `json:"anilistId"`
	Sentence    string         `json:"sentence"`
	Translation *string        `json:"translation,omitempty"`
	ImageURL    string         `json:"imageUrl"`
	Vocab       []vocabRequest `json:"vocab,omitempty"`
}

type uploadResponse struct {
	Screenshot screenshotResponse `json:"screenshot"`
	Card       cardResponse       `json:"card"`
	Vocab      []vocabResponse    `json:"vocab"`
}

type screenshotDetailResponse struct {
	Screenshot screenshotResponse `json:"screenshot"`
	Vocab      []vocabResponse    `json:"vocab"`
}

func toUploadResponse(result deck.UploadResult) uploadResponse {
	return uploadResponse{
		Screenshot: toScreenshotResponse(result.Screenshot),
		Card:       toCardResponse(result.Card),
		Vocab:      toVocabResponses(result.Vocab),
	}
}

// Upload handles POST /v1/screenshots.
func (h *DeckHandler) Upload(w http.ResponseWriter, r *http.Request) {
	var req uploadRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := deck.UploadScreenshotInput{
		AnilistID:   req.AnilistID,
		Sentence:    req.Sentence,
		Translation: req.Translation,
		ImageURL:    req.ImageURL,
	}
	for _, v := range req.Vocab {
		input.Vocab = append(input.Vocab, v.toInput())
	}

	result, err := h.svc.UploadScreenshot(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUploadResponse(result))
}

// Get handles GET /v1/screenshots/{id}.
func (h *DeckHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid screenshot id")
		return
	}

	result, err := h.svc.GetScreenshot(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, screenshotDetailResponse{
		Screenshot: toScreenshotResponse(result.Screenshot),
		Vocab:      toVocabResponses(result.Vocab),
	})
}

type updateScreenshotRequest struct {
	Sentence    string  `json:"sentence"`
	Translation *string `json:"translation,omitempty"`
}

// Update handles PATCH /v1/screenshots/{id}.
func (h *DeckHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid screenshot id")
		return
	}

	var req updateScreenshotRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	screenshot, err := h.svc.UpdateScreenshot(r.Context(), deck.UpdateScreenshotInput{
		ScreenshotID: id,
		Sentence:     req.Sentence,
		Translation:  req.Translation,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toScreenshotResponse(screenshot))
}

// Delete handles DELETE /v1/screenshots/{id}.
func (h *DeckHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid screenshot id")
		return
	}

	if err := h.svc.DeleteScreenshot(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type visibilityRequest struct {
	Public bool `json:"public"`
}

// SetVisibility handles PUT /v1/screenshots/{id}/visibility.
func (h *DeckHandler) SetVisibility(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid screenshot id")
		return
	}

	var req visibilityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	screenshot, err := h.svc.SetVisibility(r.Context(), deck.SetVisibilityInput{
		ScreenshotID: id,
		Public:       req.Public,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toScreenshotResponse(screenshot))
}

// Adopt handles POST /v1/screenshots/{id}/adopt.
func (h *DeckHandler) Adopt(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid screenshot id")
		return
	}

	result, err := h.svc.Adopt(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUploadResponse(result))
}

// ListMine handles GET /v1/screenshots.
func (h *DeckHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	screenshots, total, err := h.svc.ListMine(r.Context(), deck.ListMineInput{
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse[screenshotResponse]{
		Items: toScreenshotResponses(screenshots),
		Total: total,
	})
}

// BrowsePublic handles GET /v1/screenshots/public.
func (h *DeckHandler) BrowsePublic(w http.ResponseWriter, r *http.Request) {
	input := deck.BrowsePublicInput{
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	}
	if raw := r.URL.Query().Get("anilistId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid anilistId")
			return
		}
		input.AnilistID = &id
	}

	screenshots, total, err := h.svc.BrowsePublic(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse[screenshotResponse]{
		Items: toScreenshotResponses(screenshots),
		Total: total,
	})
}

// queryInt parses an integer query parameter, returning 0 when absent or
// malformed. The services validate ranges.
func queryInt(r *http.Request, name string) int {
	n, _ := strconv.Atoi(r.URL.Query().Get(name))
	return n
}
