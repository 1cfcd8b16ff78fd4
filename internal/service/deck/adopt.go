package deck

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kagehisa/animemo-backend/internal/domain"
	"github.com/kagehisa/animemo-backend/pkg/ctxutil"
)

// Adopt copies a public screenshot into the actor's own deck: a forked
// screenshot row, cloned vocabulary, and a fresh card starting from scratch.
// The fork is private regardless of the source's visibility and stays alive
// if the source is later retracted or deleted.
//
// Adopting your own screenshot is ErrConflict. Adopting twice produces two
// independent forks; the operation is deliberately not idempotent.
// A private foreign screenshot is indistinguishable from a missing one.
func (s *Service) Adopt(ctx context.Context, screenshotID uuid.UUID) (UploadResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return UploadResult{}, domain.ErrUnauthorized
	}

	if screenshotID == uuid.Nil {
		return UploadResult{}, domain.NewValidationError("screenshot_id", "required")
	}

	source, err := s.screenshots.GetByID(ctx, screenshotID)
	if err != nil {
		return UploadResult{}, fmt.Errorf("get screenshot: %w", err)
	}

	if source.CreatorID == userID {
		return UploadResult{}, fmt.Errorf("screenshot %s: already yours: %w", source.ID, domain.ErrConflict)
	}
	if !source.Public {
		return UploadResult{}, fmt.Errorf("screenshot %s: %w", source.ID, domain.ErrNotFound)
	}

	sourceVocab, err := s.vocab.ListByScreenshot(ctx, source.ID)
	if err != nil {
		return UploadResult{}, fmt.Errorf("list source vocab: %w", err)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)

	var result UploadResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		fork, err := s.screenshots.Create(txCtx, domain.Screenshot{
			ID:          uuid.New(),
			CreatorID:   userID,
			AnilistID:   source.AnilistID,
			Sentence:    source.Sentence,
			Translation: source.Translation,
			ImageURL:    source.ImageURL,
			Public:      false,
		})
		if err != nil {
			return fmt.Errorf("fork screenshot: %w", err)
		}

		clones := make([]domain.VocabEntry, 0, len(sourceVocab))
		for _, v := range sourceVocab {
			clones = append(clones, domain.VocabEntry{
				ID:           uuid.New(),
				ScreenshotID: fork.ID,
				Word:         v.Word,
				Reading:      v.Reading,
				Meaning:      v.Meaning,
				PartOfSpeech: v.PartOfSpeech,
				Notes:        v.Notes,
			})
		}
		cloned, err := s.vocab.CreateBatch(txCtx, clones)
		if err != nil {
			return fmt.Errorf("clone vocab: %w", err)
		}

		c, err := s.cards.Create(txCtx, domain.Card{
			ID:           uuid.New(),
			UserID:       userID,
			ScreenshotID: fork.ID,
			InReview:     true,
			IntervalDays: 0,
			Repetitions:  0,
			EaseFactor:   s.srs.DefaultEaseFactor,
			NextReviewAt: now,
		})
		if err != nil {
			return fmt.Errorf("create card: %w", err)
		}

		result = UploadResult{Screenshot: fork, Card: c, Vocab: cloned}
		return nil
	})
	if err != nil {
		return UploadResult{}, err
	}

	s.log.InfoContext(ctx, "screenshot adopted",
		"source_id", source.ID,
		"fork_id", result.Screenshot.ID,
		"vocab_count", len(result.Vocab),
	)

	return result, nil
}
