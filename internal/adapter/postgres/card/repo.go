// Package card implements the review Card repository using PostgreSQL.
// Due-queue queries join screenshots and titles; everything else is plain CRUD.
package card

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kagehisa/animemo-backend/internal/adapter/postgres"
	"github.com/kagehisa/animemo-backend/internal/domain"
)

// SRSUpdateParams holds the scheduling fields written back after a review.
type SRSUpdateParams struct {
	InReview     bool
	IntervalDays int
	Repetitions  int
	EaseFactor   float64
	NextReviewAt time.Time
}

// Repo provides card persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new card repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const cardColumns = `id, user_id, screenshot_id, in_review, interval_days, repetitions, ease_factor, next_review_at, created_at, updated_at`

const createSQL = `
INSERT INTO cards (id, user_id, screenshot_id, in_review, interval_days, repetitions, ease_factor, next_review_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
RETURNING ` + cardColumns

const getByIDSQL = `
SELECT ` + cardColumns + `
FROM cards
WHERE id = $1`

// Row lock held until the surrounding transaction ends. Protects the
// read-compute-write cycle of a review against concurrent submissions.
const getByIDForUpdateSQL = getByIDSQL + `
FOR UPDATE`

const getByScreenshotSQL = `
SELECT ` + cardColumns + `
FROM cards
WHERE user_id = $1 AND screenshot_id = $2`

const updateSRSSQL = `
UPDATE cards
SET in_review = $2, interval_days = $3, repetitions = $4, ease_factor = $5,
    next_review_at = $6, updated_at = $7
WHERE id = $1
RETURNING ` + cardColumns

const deleteByScreenshotSQL = `
DELETE FROM cards WHERE screenshot_id = $1`

const dueCardsSQL = `
SELECT c.id, c.user_id, c.screenshot_id, c.in_review, c.interval_days, c.repetitions,
       c.ease_factor, c.next_review_at, c.created_at, c.updated_at,
       s.id, s.creator_id, s.anilist_id, s.sentence, s.translation, s.image_url,
       s.public, s.created_at, s.updated_at,
       t.anilist_id, t.title, t.native_title, t.kind, t.cover_url, t.synced_at
FROM cards c
JOIN screenshots s ON c.screenshot_id = s.id
JOIN titles t ON s.anilist_id = t.anilist_id
WHERE c.user_id = $1
  AND c.in_review
  AND c.next_review_at <= $2
ORDER BY c.next_review_at ASC, c.created_at ASC
LIMIT $3`

const countDueSQL = `
SELECT count(*)
FROM cards
WHERE user_id = $1 AND in_review AND next_review_at <= $2`

// Create inserts a new card and returns the persisted row.
// A second card for the same (user, screenshot) pair results in
// domain.ErrAlreadyExists via the unique constraint.
func (r *Repo) Create(ctx context.Context, c domain.Card) (domain.Card, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		c.ID,
		c.UserID,
		c.ScreenshotID,
		c.InReview,
		c.IntervalDays,
		c.Repetitions,
		c.EaseFactor,
		c.NextReviewAt,
		now,
	)

	created, err := scanCard(row)
	if err != nil {
		return domain.Card{}, postgres.MapError(err, "card", c.ID)
	}

	return created, nil
}

// GetByID returns a card by primary key.
// Returns domain.ErrNotFound if the card does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Card, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCard(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return domain.Card{}, postgres.MapError(err, "card", id)
	}

	return c, nil
}

// GetByIDForUpdate returns a card by primary key with a FOR UPDATE row lock.
// Must be called inside a transaction; outside one the lock is released
// immediately and protects nothing.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.Card, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCard(querier.QueryRow(ctx, getByIDForUpdateSQL, id))
	if err != nil {
		return domain.Card{}, postgres.MapError(err, "card", id)
	}

	return c, nil
}

// GetByScreenshot returns the user's card for a screenshot.
// Returns domain.ErrNotFound if the user has no card for it.
func (r *Repo) GetByScreenshot(ctx context.Context, userID, screenshotID uuid.UUID) (domain.Card, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCard(querier.QueryRow(ctx, getByScreenshotSQL, userID, screenshotID))
	if err != nil {
		return domain.Card{}, postgres.MapError(err, "card", screenshotID)
	}

	return c, nil
}

// UpdateSRS writes the post-review scheduling state back to a card.
// Returns domain.ErrNotFound if the card does not exist.
func (r *Repo) UpdateSRS(ctx context.Context, id uuid.UUID, params SRSUpdateParams) (domain.Card, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, updateSRSSQL,
		id,
		params.InReview,
		params.IntervalDays,
		params.Repetitions,
		params.EaseFactor,
		params.NextReviewAt,
		now,
	)

	updated, err := scanCard(row)
	if err != nil {
		return domain.Card{}, postgres.MapError(err, "card", id)
	}

	return updated, nil
}

// DeleteByScreenshot removes all cards referencing a screenshot.
// Deleting zero rows is not an error.
func (r *Repo) DeleteByScreenshot(ctx context.Context, screenshotID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteByScreenshotSQL, screenshotID); err != nil {
		return postgres.MapError(err, "cards of screenshot", screenshotID)
	}

	return nil
}

// GetDue returns the user's due cards joined with their screenshot and title,
// ordered by next_review_at then created_at. Vocab entries are attached by
// the caller.
func (r *Repo) GetDue(ctx context.Context, userID uuid.UUID, asOf time.Time, limit int) ([]domain.DueCard, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, dueCardsSQL, userID, asOf, limit)
	if err != nil {
		return nil, fmt.Errorf("get due cards: %w", err)
	}
	defer rows.Close()

	var due []domain.DueCard
	for rows.Next() {
		var (
			item domain.DueCard
			kind string
		)
		if err := rows.Scan(
			&item.Card.ID, &item.Card.UserID, &item.Card.ScreenshotID, &item.Card.InReview,
			&item.Card.IntervalDays, &item.Card.Repetitions, &item.Card.EaseFactor,
			&item.Card.NextReviewAt, &item.Card.CreatedAt, &item.Card.UpdatedAt,
			&item.Screenshot.ID, &item.Screenshot.CreatorID, &item.Screenshot.AnilistID,
			&item.Screenshot.Sentence, &item.Screenshot.Translation, &item.Screenshot.ImageURL,
			&item.Screenshot.Public, &item.Screenshot.CreatedAt, &item.Screenshot.UpdatedAt,
			&item.Title.AnilistID, &item.Title.Title, &item.Title.NativeTitle, &kind,
			&item.Title.CoverURL, &item.Title.SyncedAt,
		); err != nil {
			return nil, fmt.Errorf("get due cards: %w", err)
		}
		item.Title.Kind = domain.TitleKind(kind)
		due = append(due, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get due cards: %w", err)
	}

	return due, nil
}

// CountDue returns the number of the user's due cards.
func (r *Repo) CountDue(ctx context.Context, userID uuid.UUID, asOf time.Time) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countDueSQL, userID, asOf).Scan(&count); err != nil {
		return 0, fmt.Errorf("count due cards: %w", err)
	}

	return count, nil
}

// scanCard scans a single card row from pgx.Row.
func scanCard(row pgx.Row) (domain.Card, error) {
	var c domain.Card
	if err := row.Scan(&c.ID, &c.UserID, &c.ScreenshotID, &c.InReview, &c.IntervalDays,
		&c.Repetitions, &c.EaseFactor, &c.NextReviewAt, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return domain.Card{}, err
	}
	return c, nil
}
