package deck

import (
	"context"
	"fmt"

	"github.com/kagehisa/animemo-backend/internal/domain"
	"github.com/kagehisa/animemo-backend/pkg/ctxutil"
)

// SetVisibility publishes or retracts a screenshot by flipping its flag in
// place. The row keeps its identity, so cards pointing at it are unaffected
// and retracting later hides it from the browse pool without breaking
// earlier adoptions.
func (s *Service) SetVisibility(ctx context.Context, input SetVisibilityInput) (domain.Screenshot, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Screenshot{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Screenshot{}, err
	}

	shot, err := s.screenshots.GetByID(ctx, input.ScreenshotID)
	if err != nil {
		return domain.Screenshot{}, fmt.Errorf("get screenshot: %w", err)
	}

	if shot.CreatorID != userID {
		return domain.Screenshot{}, fmt.Errorf("screenshot %s: %w", shot.ID, domain.ErrForbidden)
	}

	updated, err := s.screenshots.SetPublic(ctx, shot.ID, input.Public)
	if err != nil {
		return domain.Screenshot{}, fmt.Errorf("set visibility: %w", err)
	}

	s.log.InfoContext(ctx, "screenshot visibility changed",
		"screenshot_id", updated.ID,
		"public", updated.Public,
	)

	return updated, nil
}
