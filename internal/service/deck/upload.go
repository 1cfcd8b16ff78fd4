package deck

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kagehisa/animemo-backend/internal/domain"
	"github.com/kagehisa/animemo-backend/pkg/ctxutil"
)

// UploadResult is the outcome of a screenshot upload.
type UploadResult struct {
	Screenshot domain.Screenshot
	Card       domain.Card
	Vocab      []domain.VocabEntry
}

// UploadScreenshot creates a private screenshot together with its review card
// and any initial vocabulary, all in one transaction. The card starts due
// immediately with the configured default ease.
func (s *Service) UploadScreenshot(ctx context.Context, input UploadScreenshotInput) (UploadResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return UploadResult{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return UploadResult{}, err
	}

	known, err := s.titles.Exists(ctx, input.AnilistID)
	if err != nil {
		return UploadResult{}, fmt.Errorf("check title: %w", err)
	}
	if !known {
		return UploadResult{}, domain.NewValidationError("anilist_id", "unknown title")
	}

	now := time.Now().UTC().Truncate(time.Microsecond)

	var result UploadResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		shot, err := s.screenshots.Create(txCtx, domain.Screenshot{
			ID:          uuid.New(),
			CreatorID:   userID,
			AnilistID:   input.AnilistID,
			Sentence:    input.Sentence,
			Translation: input.Translation,
			ImageURL:    input.ImageURL,
			Public:      false,
		})
		if err != nil {
			return fmt.Errorf("create screenshot: %w", err)
		}

		c, err := s.cards.Create(txCtx, domain.Card{
			ID:           uuid.New(),
			UserID:       userID,
			ScreenshotID: shot.ID,
			InReview:     true,
			IntervalDays: 0,
			Repetitions:  0,
			EaseFactor:   s.srs.DefaultEaseFactor,
			NextReviewAt: now,
		})
		if err != nil {
			return fmt.Errorf("create card: %w", err)
		}

		entries := make([]domain.VocabEntry, 0, len(input.Vocab))
		for _, v := range input.Vocab {
			entries = append(entries, domain.VocabEntry{
				ID:           uuid.New(),
				ScreenshotID: shot.ID,
				Word:         v.Word,
				Reading:      v.Reading,
				Meaning:      v.Meaning,
				PartOfSpeech: v.PartOfSpeech,
				Notes:        v.Notes,
			})
		}
		created, err := s.vocab.CreateBatch(txCtx, entries)
		if err != nil {
			return fmt.Errorf("create vocab: %w", err)
		}

		result = UploadResult{Screenshot: shot, Card: c, Vocab: created}
		return nil
	})
	if err != nil {
		return UploadResult{}, err
	}

	s.log.InfoContext(ctx, "screenshot uploaded",
		"screenshot_id", result.Screenshot.ID,
		"anilist_id", input.AnilistID,
		"vocab_count", len(result.Vocab),
	)

	return result, nil
}
