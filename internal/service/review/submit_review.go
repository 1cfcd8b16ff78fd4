package review

import (
	"context"
	"fmt"
	"time"

	"github.com/kagehisa/animemo-backend/internal/adapter/postgres/card"
	"github.com/kagehisa/animemo-backend/internal/domain"
	"github.com/kagehisa/animemo-backend/pkg/ctxutil"
)

// SubmitReview records a rating for a card and advances its SM-2 state.
// The card is re-read under a row lock inside the transaction so that two
// concurrent submissions for the same card serialize instead of clobbering
// each other. A rated card is always left in review, even after a lapse.
func (s *Service) SubmitReview(ctx context.Context, input SubmitReviewInput) (domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Card{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Card{}, err
	}

	now := time.Now().UTC().Truncate(time.Microsecond)

	var updated domain.Card
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.cards.GetByIDForUpdate(txCtx, input.CardID)
		if err != nil {
			return fmt.Errorf("get card: %w", err)
		}

		if c.UserID != userID {
			return fmt.Errorf("card %s: %w", c.ID, domain.ErrForbidden)
		}

		result := ApplySM2(SM2State{
			IntervalDays: c.IntervalDays,
			Repetitions:  c.Repetitions,
			EaseFactor:   c.EaseFactor,
		}, input.Rating, now, s.srs.MinEaseFactor)

		updated, err = s.cards.UpdateSRS(txCtx, c.ID, card.SRSUpdateParams{
			InReview:     true,
			IntervalDays: result.IntervalDays,
			Repetitions:  result.Repetitions,
			EaseFactor:   result.EaseFactor,
			NextReviewAt: result.NextReviewAt,
		})
		if err != nil {
			return fmt.Errorf("update card: %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.Card{}, err
	}

	s.log.InfoContext(ctx, "review submitted",
		"card_id", updated.ID,
		"rating", input.Rating.String(),
		"interval_days", updated.IntervalDays,
		"repetitions", updated.Repetitions,
	)

	return updated, nil
}
