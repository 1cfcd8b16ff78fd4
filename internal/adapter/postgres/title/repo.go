// Package title implements the catalog Title repository using PostgreSQL.
package title

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kagehisa/animemo-backend/internal/adapter/postgres"
	"github.com/kagehisa/animemo-backend/internal/domain"
)

// Repo provides catalog title persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new title repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const titleColumns = `anilist_id, title, native_title, kind, cover_url, synced_at`

const getByAnilistIDSQL = `
SELECT ` + titleColumns + `
FROM titles
WHERE anilist_id = $1`

const existsSQL = `
SELECT EXISTS (SELECT 1 FROM titles WHERE anilist_id = $1)`

const upsertSQL = `
INSERT INTO titles (anilist_id, title, native_title, kind, cover_url, synced_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (anilist_id) DO UPDATE
SET title = EXCLUDED.title,
    native_title = EXCLUDED.native_title,
    kind = EXCLUDED.kind,
    cover_url = EXCLUDED.cover_url,
    synced_at = EXCLUDED.synced_at`

const listSQL = `
SELECT ` + titleColumns + `
FROM titles
ORDER BY title ASC
LIMIT $1 OFFSET $2`

// GetByAnilistID returns a catalog title by its AniList identifier.
// Returns domain.ErrNotFound if the title is not in the catalog.
func (r *Repo) GetByAnilistID(ctx context.Context, anilistID int64) (domain.Title, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	title, err := scanTitle(querier.QueryRow(ctx, getByAnilistIDSQL, anilistID))
	if err != nil {
		return domain.Title{}, postgres.MapError(err, "title", anilistID)
	}

	return title, nil
}

// Exists reports whether the catalog contains the given AniList identifier.
func (r *Repo) Exists(ctx context.Context, anilistID int64) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := querier.QueryRow(ctx, existsSQL, anilistID).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "title", anilistID)
	}

	return exists, nil
}

// Upsert inserts or refreshes a catalog title. Used by the seeder; the
// catalog is read-only for the rest of the application.
func (r *Repo) Upsert(ctx context.Context, title domain.Title) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	syncedAt := time.Now().UTC().Truncate(time.Microsecond)

	_, err := querier.Exec(ctx, upsertSQL,
		title.AnilistID,
		title.Title,
		title.NativeTitle,
		string(title.Kind),
		title.CoverURL,
		syncedAt,
	)
	if err != nil {
		return postgres.MapError(err, "title", title.AnilistID)
	}

	return nil
}

// List returns catalog titles ordered alphabetically with pagination.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.Title, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSQL, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list titles: %w", err)
	}
	defer rows.Close()

	var titles []domain.Title
	for rows.Next() {
		title, err := scanTitleRows(rows)
		if err != nil {
			return nil, fmt.Errorf("list titles: %w", err)
		}
		titles = append(titles, title)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list titles: %w", err)
	}

	return titles, nil
}

func scanTitle(row pgx.Row) (domain.Title, error) {
	var (
		t    domain.Title
		kind string
	)
	if err := row.Scan(&t.AnilistID, &t.Title, &t.NativeTitle, &kind, &t.CoverURL, &t.SyncedAt); err != nil {
		return domain.Title{}, err
	}
	t.Kind = domain.TitleKind(kind)
	return t, nil
}

func scanTitleRows(rows pgx.Rows) (domain.Title, error) {
	var (
		t    domain.Title
		kind string
	)
	if err := rows.Scan(&t.AnilistID, &t.Title, &t.NativeTitle, &kind, &t.CoverURL, &t.SyncedAt); err != nil {
		return domain.Title{}, err
	}
	t.Kind = domain.TitleKind(kind)
	return t, nil
}
