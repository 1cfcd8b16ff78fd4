// Package vocab implements the VocabEntry repository using PostgreSQL.
package vocab

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

// Repo provides vocabulary annotation persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new vocab repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const vocabColumns = `id, screenshot_id, word, reading, meaning, part_of_speech, notes, created_at, updated_at`

const createSQL = `
INSERT INTO vocab_entries (id, screenshot_id, word, reading, meaning, part_of_speech, notes, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
RETURNING ` + vocabColumns

const getByIDSQL = `
SELECT ` + vocabColumns + `
FROM vocab_entries
WHERE id = $1`

const listByScreenshotSQL = `
SELECT ` + vocabColumns + `
FROM vocab_entries
WHERE screenshot_id = $1
ORDER BY created_at ASC`

const updateSQL = `
UPDATE vocab_entries
SET word = $2, reading = $3, meaning = $4, part_of_speech = $5, notes = $6, updated_at = $7
WHERE id = $1
RETURNING ` + vocabColumns

const deleteSQL = `
DELETE FROM vocab_entries WHERE id = $1`

const deleteByScreenshotSQL = `
DELETE FROM vocab_entries WHERE screenshot_id = $1`

// Create inserts a new vocab entry and returns the persisted row.
func (r *Repo) Create(ctx context.Context, v domain.VocabEntry) (domain.VocabEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		v.ID,
		v.ScreenshotID,
		v.Word,
		v.Reading,
		v.Meaning,
		string(v.PartOfSpeech),
		v.Notes,
		now,
	)

	created, err := scanEntry(row)
	if err != nil {
		return domain.VocabEntry{}, postgres.MapError(err, "vocab entry", v.ID)
	}

	return created, nil
}

// CreateBatch inserts several vocab entries for one screenshot in a single
// round trip using a pgx batch. Used when cloning annotations onto a fork.
func (r *Repo) CreateBatch(ctx context.Context, entries []domain.VocabEntry) ([]domain.VocabEntry, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	batch := &pgx.Batch{}
	for _, v := range entries {
		batch.Queue(createSQL,
			v.ID, v.ScreenshotID, v.Word, v.Reading, v.Meaning,
			string(v.PartOfSpeech), v.Notes, now,
		)
	}

	results := querier.SendBatch(ctx, batch)
	defer results.Close()

	created := make([]domain.VocabEntry, 0, len(entries))
	for range entries {
		v, err := scanEntry(results.QueryRow())
		if err != nil {
			return nil, postgres.MapError(err, "vocab entry", uuid.Nil)
		}
		created = append(created, v)
	}

	return created, nil
}

// GetByID returns a vocab entry by primary key.
// Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.VocabEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	v, err := scanEntry(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return domain.VocabEntry{}, postgres.MapError(err, "vocab entry", id)
	}

	return v, nil
}

// ListByScreenshot returns all vocab entries of a screenshot in creation order.
func (r *Repo) ListByScreenshot(ctx context.Context, screenshotID uuid.UUID) ([]domain.VocabEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByScreenshotSQL, screenshotID)
	if err != nil {
		return nil, fmt.Errorf("list vocab by screenshot: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Update replaces the mutable fields of a vocab entry.
// Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) Update(ctx context.Context, v domain.VocabEntry) (domain.VocabEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, updateSQL,
		v.ID,
		v.Word,
		v.Reading,
		v.Meaning,
		string(v.PartOfSpeech),
		v.Notes,
		now,
	)

	updated, err := scanEntry(row)
	if err != nil {
		return domain.VocabEntry{}, postgres.MapError(err, "vocab entry", v.ID)
	}

	return updated, nil
}

// Delete removes a single vocab entry.
// Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "vocab entry", id)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("vocab entry %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// DeleteByScreenshot removes all vocab entries of a screenshot.
// Deleting zero rows is not an error.
func (r *Repo) DeleteByScreenshot(ctx context.Context, screenshotID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteByScreenshotSQL, screenshotID); err != nil {
		return postgres.MapError(err, "vocab entries of screenshot", screenshotID)
	}

	return nil
}

// scanEntry scans a single vocab entry row from pgx.Row.
func scanEntry(row pgx.Row) (domain.VocabEntry, error) {
	var (
		v   domain.VocabEntry
		pos string
	)
	if err := row.Scan(&v.ID, &v.ScreenshotID, &v.Word, &v.Reading, &v.Meaning,
		&pos, &v.Notes, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return domain.VocabEntry{}, err
	}
	v.PartOfSpeech = domain.PartOfSpeech(pos)
	return v, nil
}

// scanEntries scans multiple vocab entry rows from pgx.Rows.
func scanEntries(rows pgx.Rows) ([]domain.VocabEntry, error) {
	var entries []domain.VocabEntry
	for rows.Next() {
		var (
			v   domain.VocabEntry
			pos string
		)
		if err := rows.Scan(&v.ID, &v.ScreenshotID, &v.Word, &v.Reading, &v.Meaning,
			&pos, &v.Notes, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		v.PartOfSpeech = domain.PartOfSpeech(pos)
		entries = append(entries, v)
	}
	return entries, rows.Err()
}
