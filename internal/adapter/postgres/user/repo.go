// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kagehisa/animemo-backend/internal/adapter/postgres"
	"github.com/kagehisa/animemo-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, username, password_hash, created_at, updated_at`

const createSQL = `
INSERT INTO users (id, username, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, $4, $4)
RETURNING ` + userColumns

const getByIDSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

const getByUsernameSQL = `
SELECT ` + userColumns + `
FROM users
WHERE username = $1`

// Create inserts a new user and returns the persisted domain.User.
// A duplicate username results in domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		user.ID,
		user.Username,
		user.PasswordHash,
		now,
	)

	created, err := scanUser(row)
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", user.Username)
	}

	return created, nil
}

// GetByID returns a user by primary key.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	user, err := scanUser(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", id)
	}

	return user, nil
}

// GetByUsername returns a user by unique username.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	user, err := scanUser(querier.QueryRow(ctx, getByUsernameSQL, username))
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", username)
	}

	return user, nil
}

// scanUser scans a single user row from pgx.Row.
func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return domain.User{}, err
	}
	return u, nil
}
