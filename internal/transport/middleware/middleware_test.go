package middleware

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kagehisa/animemo-backend/internal/config"
	"github.com/kagehisa/animemo-backend/pkg/ctxutil"
)

func TestChain_Order(t *testing.T) {
	var order []string

	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name+"-before")
				next.ServeHTTP(w, r)
				order = append(order, name+"-after")
			})
		}
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
		w.WriteHeader(http.StatusOK)
	})

	Chain(mw("outer"), mw("inner"))(handler).ServeHTTP(
		httptest.NewRecorder(),
		httptest.NewRequest(http.MethodGet, "/", nil),
	)

	expected := []string{"outer-before", "inner-before", "handler", "inner-after", "outer-after"}
	if len(order) != len(expected) {
		t.Fatalf("expected %d calls, got %d: %v", len(expected), len(order), order)
	}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("order[%d] = %s, want %s", i, order[i], v)
		}
	}
}

func TestRequestID(t *testing.T) {
	t.Run("generates when absent", func(t *testing.T) {
		var got string
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = ctxutil.RequestIDFromCtx(r.Context())
		})

		rec := httptest.NewRecorder()
		RequestID(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if got == "" {
			t.Error("expected request ID in context")
		}
		if rec.Header().Get("X-Request-Id") != got {
			t.Errorf("header = %q, context = %q", rec.Header().Get("X-Request-Id"), got)
		}
	})

	t.Run("reuses incoming header", func(t *testing.T) {
		var got string
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = ctxutil.RequestIDFromCtx(r.Context())
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-Id", "upstream-id")
		RequestID(handler).ServeHTTP(httptest.NewRecorder(), req)

		if got != "upstream-id" {
			t.Errorf("request ID = %q, want %q", got, "upstream-id")
		}
	})
}

type validatorStub struct {
	userID uuid.UUID
	err    error
}

func (v *validatorStub) ValidateAccessToken(string) (uuid.UUID, error) {
	return v.userID, v.err
}

func TestAuth(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		userID := uuid.New()
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok := ctxutil.UserIDFromCtx(r.Context())
			if !ok {
				t.Error("user ID missing from context")
			}
			if got != userID {
				t.Errorf("user ID = %s, want %s", got, userID)
			}
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer good")
		rec := httptest.NewRecorder()

		Auth(&validatorStub{userID: userID})(handler).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler should not run")
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer bad")
		rec := httptest.NewRecorder()

		Auth(&validatorStub{err: errors.New("expired")})(handler).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
		}
	})

	t.Run("no token passes through anonymously", func(t *testing.T) {
		called := false
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			if _, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
				t.Error("anonymous request should have no user ID")
			}
		})

		Auth(&validatorStub{err: errors.New("unused")})(handler).ServeHTTP(
			httptest.NewRecorder(),
			httptest.NewRequest(http.MethodGet, "/", nil),
		)

		if !called {
			t.Error("handler not called")
		}
	})
}

func TestRecovery(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	Recovery(logger)(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{
		Enabled:           true,
		RequestsPerMinute: 60,
		Burst:             2,
	}, time.Minute)
	defer rl.Stop()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	limited := rl.Limit()(handler)

	newReq := func() *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "203.0.113.7:54321"
		return req
	}

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, newReq())
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want %d", i+1, rec.Code, http.StatusOK)
		}
	}

	rec := httptest.NewRecorder()
	limited.ServeHTTP(rec, newReq())
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTooManyRequests)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header")
	}

	// A different client has its own bucket.
	other := httptest.NewRequest(http.MethodGet, "/", nil)
	other.RemoteAddr = "198.51.100.9:1234"
	rec = httptest.NewRecorder()
	limited.ServeHTTP(rec, other)
	if rec.Code != http.StatusOK {
		t.Errorf("other client status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestCORS(t *testing.T) {
	cfg := config.CORSConfig{
		AllowedOrigins:   "https://app.example.com",
		AllowedMethods:   "GET,POST,PATCH,DELETE,OPTIONS",
		AllowedHeaders:   "Authorization,Content-Type",
		AllowCredentials: true,
		MaxAge:           3600,
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	wrapped := CORS(cfg)(handler)

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://app.example.com")
		rec := httptest.NewRecorder()

		wrapped.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
			t.Errorf("Allow-Origin = %q", got)
		}
		if rec.Header().Get("Access-Control-Allow-Credentials") != "true" {
			t.Error("expected Allow-Credentials header")
		}
	})

	t.Run("disallowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rec := httptest.NewRecorder()

		wrapped.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Allow-Origin = %q, want empty", got)
		}
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", "https://app.example.com")
		rec := httptest.NewRecorder()

		wrapped.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
		}
		if rec.Header().Get("Access-Control-Allow-Methods") == "" {
			t.Error("expected Allow-Methods header")
		}
	})
}
