// Package catalog exposes read access to the anime and manga title catalog.
package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kagehisa/animemo-backend/internal/domain"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

type titleRepo interface {
	GetByAnilistID(ctx context.Context, anilistID int64) (domain.Title, error)
	List(ctx context.Context, limit, offset int) ([]domain.Title, error)
}

// Service implements catalog read operations. The catalog itself is
// populated out of band by the seeder.
type Service struct {
	titles titleRepo
	log    *slog.Logger
}

// NewService creates a new catalog service.
func NewService(log *slog.Logger, titles titleRepo) *Service {
	return &Service{
		titles: titles,
		log:    log.With("service", "catalog"),
	}
}

// GetTitle returns a catalog title by its AniList identifier.
func (s *Service) GetTitle(ctx context.Context, anilistID int64) (domain.Title, error) {
	if anilistID <= 0 {
		return domain.Title{}, domain.NewValidationError("anilist_id", "must be positive")
	}

	title, err := s.titles.GetByAnilistID(ctx, anilistID)
	if err != nil {
		return domain.Title{}, fmt.Errorf("get title: %w", err)
	}

	return title, nil
}

// ListTitles returns catalog titles ordered alphabetically.
func (s *Service) ListTitles(ctx context.Context, limit, offset int) ([]domain.Title, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		return nil, domain.NewValidationError("limit", fmt.Sprintf("must be at most %d", maxPageSize))
	}
	if offset < 0 {
		return nil, domain.NewValidationError("offset", "must not be negative")
	}

	titles, err := s.titles.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list titles: %w", err)
	}

	return titles, nil
}
