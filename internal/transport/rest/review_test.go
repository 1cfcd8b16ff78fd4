package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kagehisa/animemo-backend/internal/domain"
	"github.com/kagehisa/animemo-backend/internal/service/review"
)

type reviewServiceMock struct {
	dueQueueFn func(ctx context.Context, input review.DueQueueInput) ([]domain.DueCard, error)
	dueCountFn func(ctx context.Context) (int, error)
	submitFn   func(ctx context.Context, input review.SubmitReviewInput) (domain.Card, error)
}

func (m *reviewServiceMock) DueQueue(ctx context.Context, input review.DueQueueInput) ([]domain.DueCard, error) {
	return m.dueQueueFn(ctx, input)
}

func (m *reviewServiceMock) DueCount(ctx context.Context) (int, error) {
	return m.dueCountFn(ctx)
}

func (m *reviewServiceMock) SubmitReview(ctx context.Context, input review.SubmitReviewInput) (domain.Card, error) {
	return m.submitFn(ctx, input)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSubmit(t *testing.T) {
	t.Parallel()

	cardID := uuid.New()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		var got review.SubmitReviewInput
		svc := &reviewServiceMock{
			submitFn: func(_ context.Context, input review.SubmitReviewInput) (domain.Card, error) {
				got = input
				return domain.Card{
					ID:           input.CardID,
					InReview:     true,
					IntervalDays: 6,
					Repetitions:  2,
					EaseFactor:   2.5,
					NextReviewAt: time.Now().Add(6 * 24 * time.Hour),
				}, nil
			},
		}
		h := NewReviewHandler(svc, testLogger())

		req := httptest.NewRequest(http.MethodPost, "/v1/cards/"+cardID.String()+"/review",
			strings.NewReader(`{"rating":2}`))
		req.SetPathValue("id", cardID.String())
		rec := httptest.NewRecorder()

		h.Submit(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
		}
		if got.CardID != cardID {
			t.Errorf("card ID = %s, want %s", got.CardID, cardID)
		}
		if got.Rating != domain.ReviewRatingGood {
			t.Errorf("rating = %d, want %d", got.Rating, domain.ReviewRatingGood)
		}

		var resp cardResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.IntervalDays != 6 {
			t.Errorf("interval = %d, want 6", resp.IntervalDays)
		}
	})

	t.Run("malformed card id", func(t *testing.T) {
		t.Parallel()

		h := NewReviewHandler(&reviewServiceMock{}, testLogger())

		req := httptest.NewRequest(http.MethodPost, "/v1/cards/not-a-uuid/review",
			strings.NewReader(`{"rating":2}`))
		req.SetPathValue("id", "not-a-uuid")
		rec := httptest.NewRecorder()

		h.Submit(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("foreign card forbidden", func(t *testing.T) {
		t.Parallel()

		svc := &reviewServiceMock{
			submitFn: func(context.Context, review.SubmitReviewInput) (domain.Card, error) {
				return domain.Card{}, domain.ErrForbidden
			},
		}
		h := NewReviewHandler(svc, testLogger())

		req := httptest.NewRequest(http.MethodPost, "/v1/cards/"+cardID.String()+"/review",
			strings.NewReader(`{"rating":0}`))
		req.SetPathValue("id", cardID.String())
		rec := httptest.NewRecorder()

		h.Submit(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", rec.Code)
		}
	})
}

func TestDueQueue(t *testing.T) {
	t.Parallel()

	t.Run("passes asOf and limit", func(t *testing.T) {
		t.Parallel()

		var got review.DueQueueInput
		svc := &reviewServiceMock{
			dueQueueFn: func(_ context.Context, input review.DueQueueInput) ([]domain.DueCard, error) {
				got = input
				return nil, nil
			},
		}
		h := NewReviewHandler(svc, testLogger())

		req := httptest.NewRequest(http.MethodGet,
			"/v1/reviews/due?limit=5&asOf=2026-08-28T10:00:00Z", nil)
		rec := httptest.NewRecorder()

		h.DueQueue(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if got.Limit != 5 {
			t.Errorf("limit = %d, want 5", got.Limit)
		}
		if got.AsOf == nil || !got.AsOf.Equal(time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)) {
			t.Errorf("asOf = %v", got.AsOf)
		}
	})

	t.Run("rejects malformed asOf", func(t *testing.T) {
		t.Parallel()

		h := NewReviewHandler(&reviewServiceMock{}, testLogger())

		req := httptest.NewRequest(http.MethodGet, "/v1/reviews/due?asOf=yesterday", nil)
		rec := httptest.NewRecorder()

		h.DueQueue(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

func TestDueCount(t *testing.T) {
	t.Parallel()

	svc := &reviewServiceMock{
		dueCountFn: func(context.Context) (int, error) { return 7, nil },
	}
	h := NewReviewHandler(svc, testLogger())

	rec := httptest.NewRecorder()
	h.DueCount(rec, httptest.NewRequest(http.MethodGet, "/v1/reviews/due/count", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp map[string]int
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["count"] != 7 {
		t.Errorf("count = %d, want 7", resp["count"])
	}
}
