package testhelper

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kagehisa/animemo-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique username. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Username:     "testuser-" + suffix,
		PasswordHash: "$2a$04$notarealhash" + suffix,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, username, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Username, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

var seedAnilistID atomic.Int64

// nextAnilistID hands out unique catalog IDs across parallel tests.
func nextAnilistID() int64 {
	return 100000 + seedAnilistID.Add(1)
}

// SeedTitle creates a catalog title with a unique AniList ID.
func SeedTitle(t *testing.T, pool *pgxpool.Pool) domain.Title {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	title := domain.Title{
		AnilistID: nextAnilistID(),
		Title:     "Test Title " + suffix,
		Kind:      domain.TitleKindAnime,
		SyncedAt:  now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO titles (anilist_id, title, native_title, kind, cover_url, synced_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		title.AnilistID, title.Title, title.NativeTitle, string(title.Kind), title.CoverURL, title.SyncedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTitle insert: %v", err)
	}

	return title
}

// SeedScreenshot creates a private screenshot owned by creatorID.
func SeedScreenshot(t *testing.T, pool *pgxpool.Pool, creatorID uuid.UUID, anilistID int64) domain.Screenshot {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	screenshot := domain.Screenshot{
		ID:        uuid.New(),
		CreatorID: creatorID,
		AnilistID: anilistID,
		Sentence:  "テスト文 " + suffix,
		ImageURL:  "https://img.example.com/" + suffix + ".png",
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO screenshots (id, creator_id, anilist_id, sentence, translation, image_url, public, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		screenshot.ID, screenshot.CreatorID, screenshot.AnilistID, screenshot.Sentence,
		screenshot.Translation, screenshot.ImageURL, screenshot.Public,
		screenshot.CreatedAt, screenshot.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedScreenshot insert: %v", err)
	}

	return screenshot
}

// SeedVocab creates a vocab entry attached to screenshotID.
func SeedVocab(t *testing.T, pool *pgxpool.Pool, screenshotID uuid.UUID) domain.VocabEntry {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	entry := domain.VocabEntry{
		ID:           uuid.New(),
		ScreenshotID: screenshotID,
		Word:         "言葉" + suffix,
		Meaning:      "word " + suffix,
		PartOfSpeech: domain.PartOfSpeechNoun,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO vocab_entries (id, screenshot_id, word, reading, meaning, part_of_speech, notes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		entry.ID, entry.ScreenshotID, entry.Word, entry.Reading, entry.Meaning,
		string(entry.PartOfSpeech), entry.Notes, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedVocab insert: %v", err)
	}

	return entry
}

// SeedCard creates an in-review card for the (user, screenshot) pair with
// fresh SM-2 state due at nextReviewAt.
func SeedCard(t *testing.T, pool *pgxpool.Pool, userID, screenshotID uuid.UUID, nextReviewAt time.Time) domain.Card {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	card := domain.Card{
		ID:           uuid.New(),
		UserID:       userID,
		ScreenshotID: screenshotID,
		InReview:     true,
		EaseFactor:   2.5,
		NextReviewAt: nextReviewAt.UTC().Truncate(time.Microsecond),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO cards (id, user_id, screenshot_id, in_review, interval_days, repetitions, ease_factor, next_review_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		card.ID, card.UserID, card.ScreenshotID, card.InReview, card.IntervalDays,
		card.Repetitions, card.EaseFactor, card.NextReviewAt, card.CreatedAt, card.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCard insert: %v", err)
	}

	return card
}
