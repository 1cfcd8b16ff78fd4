package review

import (
	"context"
	"fmt"
	"time"

	"github.com/kagehisa/animemo-backend/internal/domain"
	"github.com/kagehisa/animemo-backend/pkg/ctxutil"
)

// DueQueue returns the user's cards ready for review as of the given time,
// oldest deadline first, each joined with its screenshot, title, and vocab
// entries. The queue is a plain snapshot: a card rated into the future simply
// drops out of the next call.
func (s *Service) DueQueue(ctx context.Context, input DueQueueInput) ([]domain.DueCard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	asOf := time.Now().UTC()
	if input.AsOf != nil {
		asOf = input.AsOf.UTC()
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.srs.DueQueueLimit
	}

	due, err := s.cards.GetDue(ctx, userID, asOf, limit)
	if err != nil {
		return nil, fmt.Errorf("get due cards: %w", err)
	}

	for i := range due {
		vocab, err := s.vocab.ListByScreenshot(ctx, due[i].Screenshot.ID)
		if err != nil {
			return nil, fmt.Errorf("list vocab for screenshot %s: %w", due[i].Screenshot.ID, err)
		}
		due[i].Vocab = vocab
	}

	return due, nil
}

// DueCount returns the number of the user's cards ready for review now.
func (s *Service) DueCount(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	count, err := s.cards.CountDue(ctx, userID, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("count due cards: %w", err)
	}

	return count, nil
}
