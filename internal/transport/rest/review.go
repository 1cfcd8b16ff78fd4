package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/kagehisa/animemo-backend/internal/domain"
	"github.com/kagehisa/animemo-backend/internal/service/review"
)

// reviewService defines the minimal interface needed by ReviewHandler.
type reviewService interface {
	DueQueue(ctx context.Context, input review.DueQueueInput) ([]domain.DueCard, error)
	DueCount(ctx context.Context) (int, error)
	SubmitReview(ctx context.Context, input review.SubmitReviewInput) (domain.Card, error)
}

// ReviewHandler serves spaced-repetition review endpoints.
type ReviewHandler struct {
	svc reviewService
	log *slog.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc reviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, log: logger.With("handler", "review")}
}

type dueCardResponse struct {
	Card       cardResponse       `json:"card"`
	Screenshot screenshotResponse `json:"screenshot"`
	Title      titleResponse      `json:"title"`
	Vocab      []vocabResponse    `json:"vocab"`
}

// DueQueue handles GET /v1/reviews/due.
func (h *ReviewHandler) DueQueue(w http.ResponseWriter, r *http.Request) {
	input := review.DueQueueInput{Limit: queryInt(r, "limit")}
	if raw := r.URL.Query().Get("asOf"); raw != "" {
		asOf, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid asOf, want RFC 3339")
			return
		}
		input.AsOf = &asOf
	}

	due, err := h.svc.DueQueue(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	items := make([]dueCardResponse, 0, len(due))
	for _, d := range due {
		items = append(items, dueCardResponse{
			Card:       toCardResponse(d.Card),
			Screenshot: toScreenshotResponse(d.Screenshot),
			Title:      toTitleResponse(d.Title),
			Vocab:      toVocabResponses(d.Vocab),
		})
	}

	writeJSON(w, http.StatusOK, listResponse[dueCardResponse]{Items: items, Total: len(items)})
}

// DueCount handles GET /v1/reviews/due/count.
func (h *ReviewHandler) DueCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.DueCount(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"count": count})
}

type submitReviewRequest struct {
	Rating int `json:"rating"`
}

// Submit handles POST /v1/cards/{id}/review.
func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid card id")
		return
	}

	var req submitReviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	card, err := h.svc.SubmitReview(r.Context(), review.SubmitReviewInput{
		CardID: cardID,
		Rating: domain.ReviewRating(req.Rating),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponse(card))
}
