//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kagehisa/animemo-backend/internal/adapter/postgres"
	cardrepo "github.com/kagehisa/animemo-backend/internal/adapter/postgres/card"
	screenshotrepo "github.com/kagehisa/animemo-backend/internal/adapter/postgres/screenshot"
	"github.com/kagehisa/animemo-backend/internal/adapter/postgres/testhelper"
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
	"github.com/jackc/pgx/v5/pgxpool"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// startServer builds the whole service graph on top of the shared test
// database and serves it via httptest.
func startServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tx := postgres.NewTxManager(pool)

	srsCfg := config.SRSConfig{
		DefaultEaseFactor: 2.5,
		MinEaseFactor:     1.3,
		DueQueueLimit:     100,
	}

	users := userrepo.New(pool)
	titles := titlerepo.New(pool)
	screenshots := screenshotrepo.New(pool)
	vocab := vocabrepo.New(pool)
	cards := cardrepo.New(pool)

	tokens := jwtauth.NewJWTManager("e2e-test-secret-at-least-32-chars!!", "animemo-test", time.Hour)

	mux := rest.NewRouter(rest.Handlers{
		Auth:    rest.NewAuthHandler(authsvc.NewService(logger, users, tokens, 4), logger),
		Deck:    rest.NewDeckHandler(deck.NewService(logger, screenshots, vocab, cards, titles, tx, srsCfg), logger),
		Vocab:   rest.NewVocabHandler(vocabsvc.NewService(logger, vocab, screenshots), logger),
		Review:  rest.NewReviewHandler(review.NewService(logger, cards, vocab, tx, srsCfg), logger),
		Catalog: rest.NewCatalogHandler(catalog.NewService(logger, titles), logger),
		Health:  rest.NewHealthHandler(pool, "e2e"),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Auth(tokens),
	)(mux)

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &testServer{
		URL:    server.URL,
		Client: server.Client(),
		Pool:   pool,
	}
}

// doJSON sends a JSON request with an optional bearer token and decodes the
// response body into a generic map. A nil body sends an empty request.
func (s *testServer) doJSON(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, s.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}

	return resp.StatusCode, decoded
}

var registerCounter int

// register creates a fresh account and returns its access token.
func (s *testServer) register(t *testing.T) string {
	t.Helper()

	registerCounter++
	username := fmt.Sprintf("e2e-user-%d-%d", time.Now().UnixNano(), registerCounter)

	status, resp := s.doJSON(t, http.MethodPost, "/v1/auth/register", "", map[string]any{
		"username": username,
		"password": "correct horse battery",
	})
	require.Equal(t, http.StatusCreated, status, "register: %v", resp)

	token, ok := resp["accessToken"].(string)
	require.True(t, ok, "expected accessToken in response")
	return token
}

// seedCatalogTitle puts a title into the catalog directly; the API has no
// write surface for the catalog.
func (s *testServer) seedCatalogTitle(t *testing.T) int64 {
	t.Helper()
	title := testhelper.SeedTitle(t, s.Pool)
	return title.AnilistID
}
