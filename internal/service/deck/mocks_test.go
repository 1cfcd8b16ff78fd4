package deck

import (
	"context"

	"github.com/google/uuid"

	"github.com/kagehisa/animemo-backend/internal/adapter/postgres/screenshot"
	"github.com/kagehisa/animemo-backend/internal/domain"
)

// Hand-rolled func-field mocks for the service's private interfaces.

type screenshotRepoMock struct {
	CreateFunc        func(ctx context.Context, s domain.Screenshot) (domain.Screenshot, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (domain.Screenshot, error)
	UpdateContentFunc func(ctx context.Context, id uuid.UUID, sentence string, translation *string) (domain.Screenshot, error)
	SetPublicFunc     func(ctx context.Context, id uuid.UUID, public bool) (domain.Screenshot, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	ListByCreatorFunc func(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]domain.Screenshot, int, error)
	ListPublicFunc    func(ctx context.Context, filter screenshot.PublicFilter) ([]domain.Screenshot, int, error)
}

func (m *screenshotRepoMock) Create(ctx context.Context, s domain.Screenshot) (domain.Screenshot, error) {
	return m.CreateFunc(ctx, s)
}

func (m *screenshotRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Screenshot, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *screenshotRepoMock) UpdateContent(ctx context.Context, id uuid.UUID, sentence string, translation *string) (domain.Screenshot, error) {
	return m.UpdateContentFunc(ctx, id, sentence, translation)
}

func (m *screenshotRepoMock) SetPublic(ctx context.Context, id uuid.UUID, public bool) (domain.Screenshot, error) {
	return m.SetPublicFunc(ctx, id, public)
}

func (m *screenshotRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

func (m *screenshotRepoMock) ListByCreator(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]domain.Screenshot, int, error) {
	return m.ListByCreatorFunc(ctx, creatorID, limit, offset)
}

func (m *screenshotRepoMock) ListPublic(ctx context.Context, filter screenshot.PublicFilter) ([]domain.Screenshot, int, error) {
	return m.ListPublicFunc(ctx, filter)
}

type vocabRepoMock struct {
	CreateBatchFunc        func(ctx context.Context, entries []domain.VocabEntry) ([]domain.VocabEntry, error)
	ListByScreenshotFunc   func(ctx context.Context, screenshotID uuid.UUID) ([]domain.VocabEntry, error)
	DeleteByScreenshotFunc func(ctx context.Context, screenshotID uuid.UUID) error
}

func (m *vocabRepoMock) CreateBatch(ctx context.Context, entries []domain.VocabEntry) ([]domain.VocabEntry, error) {
	return m.CreateBatchFunc(ctx, entries)
}

func (m *vocabRepoMock) ListByScreenshot(ctx context.Context, screenshotID uuid.UUID) ([]domain.VocabEntry, error) {
	return m.ListByScreenshotFunc(ctx, screenshotID)
}

func (m *vocabRepoMock) DeleteByScreenshot(ctx context.Context, screenshotID uuid.UUID) error {
	return m.DeleteByScreenshotFunc(ctx, screenshotID)
}

type cardRepoMock struct {
	CreateFunc             func(ctx context.Context, c domain.Card) (domain.Card, error)
	DeleteByScreenshotFunc func(ctx context.Context, screenshotID uuid.UUID) error
}

func (m *cardRepoMock) Create(ctx context.Context, c domain.Card) (domain.Card, error) {
	return m.CreateFunc(ctx, c)
}

func (m *cardRepoMock) DeleteByScreenshot(ctx context.Context, screenshotID uuid.UUID) error {
	return m.DeleteByScreenshotFunc(ctx, screenshotID)
}

type titleRepoMock struct {
	ExistsFunc func(ctx context.Context, anilistID int64) (bool, error)
}

func (m *titleRepoMock) Exists(ctx context.Context, anilistID int64) (bool, error) {
	return m.ExistsFunc(ctx, anilistID)
}

// txManagerMock runs the callback directly, without a real transaction.
type txManagerMock struct{}

func (txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
