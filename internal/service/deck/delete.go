package deck

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kagehisa/animemo-backend/internal/domain"
	"github.com/kagehisa/animemo-backend/pkg/ctxutil"
)

// DeleteScreenshot removes a screenshot together with its vocabulary and
// card in one transaction. Forks made by other users reference their own
// rows and survive. Repeating the call is ErrNotFound.
func (s *Service) DeleteScreenshot(ctx context.Context, screenshotID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if screenshotID == uuid.Nil {
		return domain.NewValidationError("screenshot_id", "required")
	}

	shot, err := s.screenshots.GetByID(ctx, screenshotID)
	if err != nil {
		return fmt.Errorf("get screenshot: %w", err)
	}

	if shot.CreatorID != userID {
		return fmt.Errorf("screenshot %s: %w", shot.ID, domain.ErrForbidden)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.vocab.DeleteByScreenshot(txCtx, shot.ID); err != nil {
			return fmt.Errorf("delete vocab: %w", err)
		}
		if err := s.cards.DeleteByScreenshot(txCtx, shot.ID); err != nil {
			return fmt.Errorf("delete cards: %w", err)
		}
		if err := s.screenshots.Delete(txCtx, shot.ID); err != nil {
			return fmt.Errorf("delete screenshot: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "screenshot deleted", "screenshot_id", shot.ID)

	return nil
}
