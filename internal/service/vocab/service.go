// Package vocab implements vocabulary annotation management. All mutations
// are authorized through ownership of the parent screenshot.
package vocab

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kagehisa/animemo-backend/internal/domain"
	"github.com/kagehisa/animemo-backend/pkg/ctxutil"
)

type vocabRepo interface {
	Create(ctx context.Context, v domain.VocabEntry) (domain.VocabEntry, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.VocabEntry, error)
	Update(ctx context.Context, v domain.VocabEntry) (domain.VocabEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type screenshotRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Screenshot, error)
}

// Service implements vocabulary annotation business logic.
type Service struct {
	vocab       vocabRepo
	screenshots screenshotRepo
	log         *slog.Logger
}

// NewService creates a new vocab service.
func NewService(log *slog.Logger, vocab vocabRepo, screenshots screenshotRepo) *Service {
	return &Service{
		vocab:       vocab,
		screenshots: screenshots,
		log:         log.With("service", "vocab"),
	}
}

// requireOwnedScreenshot loads a screenshot and verifies the actor owns it.
func (s *Service) requireOwnedScreenshot(ctx context.Context, userID, screenshotID uuid.UUID) error {
	shot, err := s.screenshots.GetByID(ctx, screenshotID)
	if err != nil {
		return fmt.Errorf("get screenshot: %w", err)
	}
	if shot.CreatorID != userID {
		return fmt.Errorf("screenshot %s: %w", shot.ID, domain.ErrForbidden)
	}
	return nil
}

// Add attaches a new vocabulary annotation to an owned screenshot.
func (s *Service) Add(ctx context.Context, input AddInput) (domain.VocabEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.VocabEntry{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.VocabEntry{}, err
	}

	if err := s.requireOwnedScreenshot(ctx, userID, input.ScreenshotID); err != nil {
		return domain.VocabEntry{}, err
	}

	created, err := s.vocab.Create(ctx, domain.VocabEntry{
		ID:           uuid.New(),
		ScreenshotID: input.ScreenshotID,
		Word:         input.Word,
		Reading:      input.Reading,
		Meaning:      input.Meaning,
		PartOfSpeech: input.PartOfSpeech,
		Notes:        input.Notes,
	})
	if err != nil {
		return domain.VocabEntry{}, fmt.Errorf("create vocab entry: %w", err)
	}

	s.log.InfoContext(ctx, "vocab entry added",
		"vocab_id", created.ID,
		"screenshot_id", created.ScreenshotID,
	)

	return created, nil
}

// Update edits an annotation on an owned screenshot.
func (s *Service) Update(ctx context.Context, input UpdateInput) (domain.VocabEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.VocabEntry{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.VocabEntry{}, err
	}

	entry, err := s.vocab.GetByID(ctx, input.VocabID)
	if err != nil {
		return domain.VocabEntry{}, fmt.Errorf("get vocab entry: %w", err)
	}

	if err := s.requireOwnedScreenshot(ctx, userID, entry.ScreenshotID); err != nil {
		return domain.VocabEntry{}, err
	}

	entry.Word = input.Word
	entry.Reading = input.Reading
	entry.Meaning = input.Meaning
	entry.PartOfSpeech = input.PartOfSpeech
	entry.Notes = input.Notes

	updated, err := s.vocab.Update(ctx, entry)
	if err != nil {
		return domain.VocabEntry{}, fmt.Errorf("update vocab entry: %w", err)
	}

	return updated, nil
}

// Delete removes an annotation from an owned screenshot.
func (s *Service) Delete(ctx context.Context, vocabID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if vocabID == uuid.Nil {
		return domain.NewValidationError("vocab_id", "required")
	}

	entry, err := s.vocab.GetByID(ctx, vocabID)
	if err != nil {
		return fmt.Errorf("get vocab entry: %w", err)
	}

	if err := s.requireOwnedScreenshot(ctx, userID, entry.ScreenshotID); err != nil {
		return err
	}

	if err := s.vocab.Delete(ctx, entry.ID); err != nil {
		return fmt.Errorf("delete vocab entry: %w", err)
	}

	s.log.InfoContext(ctx, "vocab entry deleted", "vocab_id", entry.ID)

	return nil
}
