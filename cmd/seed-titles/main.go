// Command seed-titles populates the anime/manga title catalog from a JSON
// dump. It is intended to be run offline, not as part of the main server.
//
// Flags:
//
//	--file     path to the JSON dump (required)
//	--dry-run  parse the dump without writing to DB
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/kagehisa/animemo-backend/internal/adapter/postgres"
	titlerepo "github.com/kagehisa/animemo-backend/internal/adapter/postgres/title"
	"github.com/kagehisa/animemo-backend/internal/app"
	"github.com/kagehisa/animemo-backend/internal/config"
	"github.com/kagehisa/animemo-backend/internal/domain"
)

type titleRecord struct {
	AnilistID   int64   `json:"anilistId"`
	Title       string  `json:"title"`
	NativeTitle *string `json:"nativeTitle,omitempty"`
	Kind        string  `json:"kind"`
	CoverURL    *string `json:"coverUrl,omitempty"`
}

func (r titleRecord) validate() error {
	if r.AnilistID <= 0 {
		return fmt.Errorf("anilistId must be positive, got %d", r.AnilistID)
	}
	if r.Title == "" {
		return fmt.Errorf("anilistId %d: title is required", r.AnilistID)
	}
	kind := domain.TitleKind(r.Kind)
	if kind != domain.TitleKindAnime && kind != domain.TitleKindManga {
		return fmt.Errorf("anilistId %d: unknown kind %q", r.AnilistID, r.Kind)
	}
	return nil
}

func main() {
	fileFlag := flag.String("file", "", "path to the JSON dump (required)")
	dryRunFlag := flag.Bool("dry-run", false, "parse the dump without writing to DB")
	flag.Parse()

	if *fileFlag == "" {
		log.Fatal("--file is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	records, err := readDump(*fileFlag)
	if err != nil {
		logger.Error("read dump", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("dump parsed", slog.Int("titles", len(records)))

	if *dryRunFlag {
		logger.Info("dry run, nothing written")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := titlerepo.New(pool)

	for _, rec := range records {
		title := domain.Title{
			AnilistID:   rec.AnilistID,
			Title:       rec.Title,
			NativeTitle: rec.NativeTitle,
			Kind:        domain.TitleKind(rec.Kind),
			CoverURL:    rec.CoverURL,
		}
		if err := repo.Upsert(ctx, title); err != nil {
			logger.Error("upsert title",
				slog.Int64("anilist_id", rec.AnilistID),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
	}

	logger.Info("catalog seeded", slog.Int("titles", len(records)))
}

func readDump(path string) ([]titleRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dump: %w", err)
	}
	defer f.Close()

	var records []titleRecord
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode dump: %w", err)
	}

	for _, rec := range records {
		if err := rec.validate(); err != nil {
			return nil, err
		}
	}

	return records, nil
}
