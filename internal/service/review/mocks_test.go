package review

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kagehisa/animemo-backend/internal/adapter/postgres/card"
	"github.com/kagehisa/animemo-backend/internal/domain"
)

// Hand-rolled func-field mocks for the service's private interfaces.

type cardRepoMock struct {
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (domain.Card, error)
	UpdateSRSFunc        func(ctx context.Context, id uuid.UUID, params card.SRSUpdateParams) (domain.Card, error)
	GetDueFunc           func(ctx context.Context, userID uuid.UUID, asOf time.Time, limit int) ([]domain.DueCard, error)
	CountDueFunc         func(ctx context.Context, userID uuid.UUID, asOf time.Time) (int, error)
}

func (m *cardRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.Card, error) {
	return m.GetByIDForUpdateFunc(ctx, id)
}

func (m *cardRepoMock) UpdateSRS(ctx context.Context, id uuid.UUID, params card.SRSUpdateParams) (domain.Card, error) {
	return m.UpdateSRSFunc(ctx, id, params)
}

func (m *cardRepoMock) GetDue(ctx context.Context, userID uuid.UUID, asOf time.Time, limit int) ([]domain.DueCard, error) {
	return m.GetDueFunc(ctx, userID, asOf, limit)
}

func (m *cardRepoMock) CountDue(ctx context.Context, userID uuid.UUID, asOf time.Time) (int, error) {
	return m.CountDueFunc(ctx, userID, asOf)
}

type vocabRepoMock struct {
	ListByScreenshotFunc func(ctx context.Context, screenshotID uuid.UUID) ([]domain.VocabEntry, error)
}

func (m *vocabRepoMock) ListByScreenshot(ctx context.Context, screenshotID uuid.UUID) ([]domain.VocabEntry, error) {
	return m.ListByScreenshotFunc(ctx, screenshotID)
}

// txManagerMock runs the callback directly, without a real transaction.
type txManagerMock struct{}

func (txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
