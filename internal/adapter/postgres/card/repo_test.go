package card_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kagehisa/animemo-backend/internal/adapter/postgres/card"
	"github.com/kagehisa/animemo-backend/internal/adapter/postgres/testhelper"
	"github.com/kagehisa/animemo-backend/internal/domain"
)

// newRepo sets up a test DB and returns a ready Repo + pool.
func newRepo(t *testing.T) (*card.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return card.New(pool), pool
}

func TestRepo_Create_AndGetByID(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	title := testhelper.SeedTitle(t, pool)
	screenshot := testhelper.SeedScreenshot(t, pool, user.ID, title.AnilistID)

	now := time.Now().UTC().Truncate(time.Microsecond)
	created, err := repo.Create(ctx, domain.Card{
		ID:           uuid.New(),
		UserID:       user.ID,
		ScreenshotID: screenshot.ID,
		InReview:     true,
		EaseFactor:   2.5,
		NextReviewAt: now,
	})
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	if created.UserID != user.ID {
		t.Errorf("UserID mismatch: got %s, want %s", created.UserID, user.ID)
	}
	if created.ScreenshotID != screenshot.ID {
		t.Errorf("ScreenshotID mismatch: got %s, want %s", created.ScreenshotID, screenshot.ID)
	}
	if !created.InReview {
		t.Error("expected card in review")
	}
	if created.IntervalDays != 0 || created.Repetitions != 0 {
		t.Errorf("fresh card state: interval %d, reps %d", created.IntervalDays, created.Repetitions)
	}
	if created.EaseFactor != 2.5 {
		t.Errorf("EaseFactor mismatch: got %f, want 2.5", created.EaseFactor)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("GetByID ID mismatch: got %s, want %s", got.ID, created.ID)
	}
	if !got.NextReviewAt.Equal(now) {
		t.Errorf("NextReviewAt mismatch: got %v, want %v", got.NextReviewAt, now)
	}
}

func TestRepo_Create_DuplicatePair(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	title := testhelper.SeedTitle(t, pool)
	screenshot := testhelper.SeedScreenshot(t, pool, user.ID, title.AnilistID)
	testhelper.SeedCard(t, pool, user.ID, screenshot.ID, time.Now().UTC())

	_, err := repo.Create(ctx, domain.Card{
		ID:           uuid.New(),
		UserID:       user.ID,
		ScreenshotID: screenshot.ID,
		InReview:     true,
		EaseFactor:   2.5,
		NextReviewAt: time.Now().UTC(),
	})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists for duplicate pair, got %v", err)
	}
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	_, err := repo.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRepo_UpdateSRS(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	title := testhelper.SeedTitle(t, pool)
	screenshot := testhelper.SeedScreenshot(t, pool, user.ID, title.AnilistID)
	seeded := testhelper.SeedCard(t, pool, user.ID, screenshot.ID, time.Now().UTC())

	next := time.Now().UTC().Truncate(time.Microsecond).Add(6 * 24 * time.Hour)
	updated, err := repo.UpdateSRS(ctx, seeded.ID, card.SRSUpdateParams{
		InReview:     true,
		IntervalDays: 6,
		Repetitions:  2,
		EaseFactor:   2.5,
		NextReviewAt: next,
	})
	if err != nil {
		t.Fatalf("UpdateSRS: unexpected error: %v", err)
	}

	if updated.IntervalDays != 6 {
		t.Errorf("IntervalDays mismatch: got %d, want 6", updated.IntervalDays)
	}
	if updated.Repetitions != 2 {
		t.Errorf("Repetitions mismatch: got %d, want 2", updated.Repetitions)
	}
	if !updated.NextReviewAt.Equal(next) {
		t.Errorf("NextReviewAt mismatch: got %v, want %v", updated.NextReviewAt, next)
	}
}

func TestRepo_GetDue_OrderAndCutoff(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	title := testhelper.SeedTitle(t, pool)
	now := time.Now().UTC().Truncate(time.Microsecond)

	// Three cards: overdue, just due, and not yet due.
	overdueShot := testhelper.SeedScreenshot(t, pool, user.ID, title.AnilistID)
	overdue := testhelper.SeedCard(t, pool, user.ID, overdueShot.ID, now.Add(-48*time.Hour))

	dueShot := testhelper.SeedScreenshot(t, pool, user.ID, title.AnilistID)
	due := testhelper.SeedCard(t, pool, user.ID, dueShot.ID, now.Add(-time.Minute))

	futureShot := testhelper.SeedScreenshot(t, pool, user.ID, title.AnilistID)
	testhelper.SeedCard(t, pool, user.ID, futureShot.ID, now.Add(24*time.Hour))

	got, err := repo.GetDue(ctx, user.ID, now, 50)
	if err != nil {
		t.Fatalf("GetDue: unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 due cards, got %d", len(got))
	}
	if got[0].Card.ID != overdue.ID {
		t.Errorf("most overdue card first: got %s, want %s", got[0].Card.ID, overdue.ID)
	}
	if got[1].Card.ID != due.ID {
		t.Errorf("second card: got %s, want %s", got[1].Card.ID, due.ID)
	}

	// The join must carry the review material.
	if got[0].Screenshot.ID != overdueShot.ID {
		t.Errorf("joined screenshot mismatch: got %s, want %s", got[0].Screenshot.ID, overdueShot.ID)
	}
	if got[0].Title.AnilistID != title.AnilistID {
		t.Errorf("joined title mismatch: got %d, want %d", got[0].Title.AnilistID, title.AnilistID)
	}

	count, err := repo.CountDue(ctx, user.ID, now)
	if err != nil {
		t.Fatalf("CountDue: unexpected error: %v", err)
	}
	if count != 2 {
		t.Errorf("CountDue = %d, want 2", count)
	}
}

func TestRepo_GetDue_CreatedAtTiebreak(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	title := testhelper.SeedTitle(t, pool)
	now := time.Now().UTC().Truncate(time.Microsecond)
	sameDue := now.Add(-time.Hour)

	firstShot := testhelper.SeedScreenshot(t, pool, user.ID, title.AnilistID)
	first := testhelper.SeedCard(t, pool, user.ID, firstShot.ID, sameDue)

	// The second card is created strictly later.
	time.Sleep(10 * time.Millisecond)
	secondShot := testhelper.SeedScreenshot(t, pool, user.ID, title.AnilistID)
	second := testhelper.SeedCard(t, pool, user.ID, secondShot.ID, sameDue)

	got, err := repo.GetDue(ctx, user.ID, now, 50)
	if err != nil {
		t.Fatalf("GetDue: unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 due cards, got %d", len(got))
	}
	if got[0].Card.ID != first.ID || got[1].Card.ID != second.ID {
		t.Errorf("tiebreak by creation order: got [%s, %s], want [%s, %s]",
			got[0].Card.ID, got[1].Card.ID, first.ID, second.ID)
	}
}

func TestRepo_GetDue_ExcludesOtherUsers(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool)
	other := testhelper.SeedUser(t, pool)
	title := testhelper.SeedTitle(t, pool)
	now := time.Now().UTC()

	shot := testhelper.SeedScreenshot(t, pool, owner.ID, title.AnilistID)
	testhelper.SeedCard(t, pool, owner.ID, shot.ID, now.Add(-time.Hour))

	got, err := repo.GetDue(ctx, other.ID, now, 50)
	if err != nil {
		t.Fatalf("GetDue: unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no due cards for another user, got %d", len(got))
	}
}

func TestRepo_DeleteByScreenshot(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool)
	adopter := testhelper.SeedUser(t, pool)
	title := testhelper.SeedTitle(t, pool)
	shot := testhelper.SeedScreenshot(t, pool, owner.ID, title.AnilistID)

	ownerCard := testhelper.SeedCard(t, pool, owner.ID, shot.ID, time.Now().UTC())
	adopterCard := testhelper.SeedCard(t, pool, adopter.ID, shot.ID, time.Now().UTC())

	if err := repo.DeleteByScreenshot(ctx, shot.ID); err != nil {
		t.Fatalf("DeleteByScreenshot: unexpected error: %v", err)
	}

	for _, id := range []uuid.UUID{ownerCard.ID, adopterCard.ID} {
		if _, err := repo.GetByID(ctx, id); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("card %s should be gone, got %v", id, err)
		}
	}
}
