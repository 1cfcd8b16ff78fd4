// Package screenshot implements the Screenshot repository using PostgreSQL.
package screenshot

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kagehisa/animemo-backend/internal/adapter/postgres"
	"github.com/kagehisa/animemo-backend/internal/domain"
)

// Repo provides screenshot persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new screenshot repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// psql builds queries with PostgreSQL $N placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const screenshotColumns = `id, creator_id, anilist_id, sentence, translation, image_url, public, created_at, updated_at`

const createSQL = `
INSERT INTO screenshots (id, creator_id, anilist_id, sentence, translation, image_url, public, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
RETURNING ` + screenshotColumns

const getByIDSQL = `
SELECT ` + screenshotColumns + `
FROM screenshots
WHERE id = $1`

const updateContentSQL = `
UPDATE screenshots
SET sentence = $2, translation = $3, updated_at = $4
WHERE id = $1
RETURNING ` + screenshotColumns

const setPublicSQL = `
UPDATE screenshots
SET public = $2, updated_at = $3
WHERE id = $1
RETURNING ` + screenshotColumns

const deleteSQL = `
DELETE FROM screenshots WHERE id = $1`

const listByCreatorSQL = `
SELECT ` + screenshotColumns + `
FROM screenshots
WHERE creator_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

const countByCreatorSQL = `
SELECT count(*) FROM screenshots WHERE creator_id = $1`

// PublicFilter narrows the public browse pool.
type PublicFilter struct {
	AnilistID *int64
	Limit     int
	Offset    int
}

// Create inserts a new screenshot and returns the persisted row.
func (r *Repo) Create(ctx context.Context, s domain.Screenshot) (domain.Screenshot, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		s.ID,
		s.CreatorID,
		s.AnilistID,
		s.Sentence,
		s.Translation,
		s.ImageURL,
		s.Public,
		now,
	)

	created, err := scanScreenshot(row)
	if err != nil {
		return domain.Screenshot{}, postgres.MapError(err, "screenshot", s.ID)
	}

	return created, nil
}

// GetByID returns a screenshot by primary key.
// Returns domain.ErrNotFound if the screenshot does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Screenshot, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanScreenshot(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return domain.Screenshot{}, postgres.MapError(err, "screenshot", id)
	}

	return s, nil
}

// UpdateContent replaces the sentence and translation of a screenshot.
// Returns domain.ErrNotFound if the screenshot does not exist.
func (r *Repo) UpdateContent(ctx context.Context, id uuid.UUID, sentence string, translation *string) (domain.Screenshot, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	s, err := scanScreenshot(querier.QueryRow(ctx, updateContentSQL, id, sentence, translation, now))
	if err != nil {
		return domain.Screenshot{}, postgres.MapError(err, "screenshot", id)
	}

	return s, nil
}

// SetPublic flips the visibility flag on a screenshot in place.
// Returns domain.ErrNotFound if the screenshot does not exist.
func (r *Repo) SetPublic(ctx context.Context, id uuid.UUID, public bool) (domain.Screenshot, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	s, err := scanScreenshot(querier.QueryRow(ctx, setPublicSQL, id, public, now))
	if err != nil {
		return domain.Screenshot{}, postgres.MapError(err, "screenshot", id)
	}

	return s, nil
}

// Delete removes a screenshot row.
// Returns domain.ErrNotFound if the screenshot does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "screenshot", id)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("screenshot %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ListByCreator returns a user's screenshots newest first with pagination.
// Returns screenshots, total count, and error.
func (r *Repo) ListByCreator(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]domain.Screenshot, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := querier.QueryRow(ctx, countByCreatorSQL, creatorID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count screenshots by creator: %w", err)
	}

	rows, err := querier.Query(ctx, listByCreatorSQL, creatorID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list screenshots by creator: %w", err)
	}
	defer rows.Close()

	screenshots, err := scanScreenshots(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list screenshots by creator: %w", err)
	}

	return screenshots, total, nil
}

// ListPublic returns the public browse pool newest first, honoring the
// optional filter fields. The WHERE clause is assembled dynamically.
func (r *Repo) ListPublic(ctx context.Context, filter PublicFilter) ([]domain.Screenshot, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	where := squirrel.And{squirrel.Eq{"public": true}}
	if filter.AnilistID != nil {
		where = append(where, squirrel.Eq{"anilist_id": *filter.AnilistID})
	}

	countSQL, countArgs, err := psql.Select("count(*)").From("screenshots").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build public count query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count public screenshots: %w", err)
	}

	listSQL, listArgs, err := psql.Select(screenshotColumns).
		From("screenshots").
		Where(where).
		OrderBy("created_at DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build public list query: %w", err)
	}

	rows, err := querier.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list public screenshots: %w", err)
	}
	defer rows.Close()

	screenshots, err := scanScreenshots(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list public screenshots: %w", err)
	}

	return screenshots, total, nil
}

// scanScreenshot scans a single screenshot row from pgx.Row.
func scanScreenshot(row pgx.Row) (domain.Screenshot, error) {
	var s domain.Screenshot
	if err := row.Scan(&s.ID, &s.CreatorID, &s.AnilistID, &s.Sentence, &s.Translation,
		&s.ImageURL, &s.Public, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return domain.Screenshot{}, err
	}
	return s, nil
}

// scanScreenshots scans multiple screenshot rows from pgx.Rows.
func scanScreenshots(rows pgx.Rows) ([]domain.Screenshot, error) {
	var screenshots []domain.Screenshot
	for rows.Next() {
		var s domain.Screenshot
		if err := rows.Scan(&s.ID, &s.CreatorID, &s.AnilistID, &s.Sentence, &s.Translation,
			&s.ImageURL, &s.Public, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		screenshots = append(screenshots, s)
	}
	return screenshots, rows.Err()
}
