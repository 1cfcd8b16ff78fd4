package review

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kagehisa/animemo-backend/internal/adapter/postgres/card"
	"github.com/kagehisa/animemo-backend/internal/config"
	"github.com/kagehisa/animemo-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type cardRepo interface {
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.Card, error)
	UpdateSRS(ctx context.Context, id uuid.UUID, params card.SRSUpdateParams) (domain.Card, error)
	GetDue(ctx context.Context, userID uuid.UUID, asOf time.Time, limit int) ([]domain.DueCard, error)
	CountDue(ctx context.Context, userID uuid.UUID, asOf time.Time) (int, error)
}

type vocabRepo interface {
	ListByScreenshot(ctx context.Context, screenshotID uuid.UUID) ([]domain.VocabEntry, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements review scheduling: the due queue and review submission.
type Service struct {
	cards cardRepo
	vocab vocabRepo
	tx    txManager
	log   *slog.Logger
	srs   config.SRSConfig
}

// NewService creates a new review service.
func NewService(log *slog.Logger, cards cardRepo, vocab vocabRepo, tx txManager, srs config.SRSConfig) *Service {
	return &Service{
		cards: cards,
		vocab: vocab,
		tx:    tx,
		log:   log.With("service", "review"),
		srs:   srs,
	}
}
