// Package deck implements screenshot ownership: uploading, visibility,
// adoption from the public pool, and deletion with its cascade.
package deck

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kagehisa/animemo-backend/internal/adapter/postgres/screenshot"
	"github.com/kagehisa/animemo-backend/internal/config"
	"github.com/kagehisa/animemo-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type screenshotRepo interface {
	Create(ctx context.Context, s domain.Screenshot) (domain.Screenshot, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Screenshot, error)
	UpdateContent(ctx context.Context, id uuid.UUID, sentence string, translation *string) (domain.Screenshot, error)
	SetPublic(ctx context.Context, id uuid.UUID, public bool) (domain.Screenshot, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByCreator(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]domain.Screenshot, int, error)
	ListPublic(ctx context.Context, filter screenshot.PublicFilter) ([]domain.Screenshot, int, error)
}

type vocabRepo interface {
	CreateBatch(ctx context.Context, entries []domain.VocabEntry) ([]domain.VocabEntry, error)
	ListByScreenshot(ctx context.Context, screenshotID uuid.UUID) ([]domain.VocabEntry, error)
	DeleteByScreenshot(ctx context.Context, screenshotID uuid.UUID) error
}

type cardRepo interface {
	Create(ctx context.Context, c domain.Card) (domain.Card, error)
	DeleteByScreenshot(ctx context.Context, screenshotID uuid.UUID) error
}

type titleRepo interface {
	Exists(ctx context.Context, anilistID int64) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the deck business logic.
type Service struct {
	screenshots screenshotRepo
	vocab       vocabRepo
	cards       cardRepo
	titles      titleRepo
	tx          txManager
	log         *slog.Logger
	srs         config.SRSConfig
}

// NewService creates a new deck service.
func NewService(
	log *slog.Logger,
	screenshots screenshotRepo,
	vocab vocabRepo,
	cards cardRepo,
	titles titleRepo,
	tx txManager,
	srs config.SRSConfig,
) *Service {
	return &Service{
		screenshots: screenshots,
		vocab:       vocab,
		cards:       cards,
		titles:      titles,
		tx:          tx,
		log:         log.With("service", "deck"),
		srs:         srs,
	}
}
