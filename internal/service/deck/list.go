package deck

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kagehisa/animemo-backend/internal/adapter/postgres/screenshot"
	"github.com/kagehisa/animemo-backend/internal/domain"
	"github.com/kagehisa/animemo-backend/pkg/ctxutil"
)

const defaultPageSize = 20

// ScreenshotWithVocab bundles a screenshot with its annotations.
type ScreenshotWithVocab struct {
	Screenshot domain.Screenshot
	Vocab      []domain.VocabEntry
}

// ListMine returns the actor's screenshots newest first, plus the total count.
func (s *Service) ListMine(ctx context.Context, input ListMineInput) ([]domain.Screenshot, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultPageSize
	}

	screenshots, total, err := s.screenshots.ListByCreator(ctx, userID, limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list screenshots: %w", err)
	}

	return screenshots, total, nil
}

// GetScreenshot returns one screenshot with its vocabulary. Private
// screenshots of other users are reported as missing, not as forbidden,
// so their existence never leaks.
func (s *Service) GetScreenshot(ctx context.Context, screenshotID uuid.UUID) (ScreenshotWithVocab, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return ScreenshotWithVocab{}, domain.ErrUnauthorized
	}

	if screenshotID == uuid.Nil {
		return ScreenshotWithVocab{}, domain.NewValidationError("screenshot_id", "required")
	}

	shot, err := s.screenshots.GetByID(ctx, screenshotID)
	if err != nil {
		return ScreenshotWithVocab{}, fmt.Errorf("get screenshot: %w", err)
	}

	if !shot.IsVisibleTo(userID) {
		return ScreenshotWithVocab{}, fmt.Errorf("screenshot %s: %w", screenshotID, domain.ErrNotFound)
	}

	vocab, err := s.vocab.ListByScreenshot(ctx, shot.ID)
	if err != nil {
		return ScreenshotWithVocab{}, fmt.Errorf("list vocab: %w", err)
	}

	return ScreenshotWithVocab{Screenshot: shot, Vocab: vocab}, nil
}

// UpdateScreenshot edits the sentence and translation of an owned screenshot.
func (s *Service) UpdateScreenshot(ctx context.Context, input UpdateScreenshotInput) (domain.Screenshot, error) {
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

	updated, err := s.screenshots.UpdateContent(ctx, shot.ID, input.Sentence, input.Translation)
	if err != nil {
		return domain.Screenshot{}, fmt.Errorf("update screenshot: %w", err)
	}

	return updated, nil
}

// BrowsePublic returns the public pool newest first with an optional title
// filter. No authentication gate beyond the ambient one; the pool is the
// same for every viewer.
func (s *Service) BrowsePublic(ctx context.Context, input BrowsePublicInput) ([]domain.Screenshot, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultPageSize
	}

	screenshots, total, err := s.screenshots.ListPublic(ctx, screenshot.PublicFilter{
		AnilistID: input.AnilistID,
		Limit:     limit,
		Offset:    input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list public screenshots: %w", err)
	}

	return screenshots, total, nil
}
