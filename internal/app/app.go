// Package app wires configuration, storage, services and transport into
// a running HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/kagehisa/animemo-backend/internal/adapter/postgres"
	cardrepo "github.com/kagehisa/animemo-backend/internal/adapter/postgres/card"
	screenshotrepo "github.com/kagehisa/animemo-backend/internal/adapter/postgres/screenshot"
	titlerepo "github.com/kagehisa/animemo-backend/internal/adapter/postgres/title"
	userrepo "github.com/kagehisa/animemo-backend/internal/adapter/postgres/user"
	vocabrepo "github.com/kagehisa/animemo-backend/internal/adapter/postgres/vocab"
	jwtauth "github.com/kagehisa/animemo-backend/internal/auth"
	"github.com/kagehisa/animemo-backend/internal/config"
	authsvc "github.com/kagehisa/animemo-backend/internal/service/auth"
	"github.com/kagehisa/animemo-backend/internal/service/catalog"
	"github.com/kagehisa/animemo-backend/internal/service/deck"
	"github.com/kagehisa/animemo-backend/internal/service/review"
	vocabsvc "github.com/kagehisa/animemo-backend/internal/service/vocab"
	"github.com/kagehisa/animemo-backend/internal/transport/middleware"
	"github.com/kagehisa/animemo-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, applies migrations, builds the service graph and serves
// HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if err := postgres.Migrate(ctx, cfg.Database.DSN, cfg.Database.MigrationsDir); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	tx := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	titles := titlerepo.New(pool)
	screenshots := screenshotrepo.New(pool)
	vocab := vocabrepo.New(pool)
	cards := cardrepo.New(pool)

	tokens := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, tokens, cfg.Auth.BcryptCost)
	deckService := deck.NewService(logger, screenshots, vocab, cards, titles, tx, cfg.SRS)
	vocabService := vocabsvc.NewService(logger, vocab, screenshots)
	reviewService := review.NewService(logger, cards, vocab, tx, cfg.SRS)
	catalogService := catalog.NewService(logger, titles)

	mux := rest.NewRouter(rest.Handlers{
		Auth:    rest.NewAuthHandler(authService, logger),
		Deck:    rest.NewDeckHandler(deckService, logger),
		Vocab:   rest.NewVocabHandler(vocabService, logger),
		Review:  rest.NewReviewHandler(reviewService, logger),
		Catalog: rest.NewCatalogHandler(catalogService, logger),
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
	})

	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}
	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit, time.Minute)
		defer limiter.Stop()
		mws = append(mws, limiter.Limit())
	}
	mws = append(mws, middleware.Auth(tokens))

	handler := middleware.Chain(mws...)(mux)

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
