package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cemdon/pkg/client"
	"cemdon/pkg/config"
	"cemdon/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type echoHandler struct{}

func (echoHandler) RegisterRoutes(r *httprouter.Router) {
	r.GET("/api/v1/echo", func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})
	r.POST("/api/v1/echo", func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusCreated)
	})
}

type downStore struct{}

func (downStore) Ping(context.Context) error { return errors.New("down") }

func testConfig() *config.Config {
	return &config.Config{
		Port:              "0",
		RateLimitRequests: 2,
		RateLimitWindow:   time.Minute,
		RequestTimeout:    time.Second,
		IdempotencyTTL:    time.Minute,
		MaxRequestSize:    1024,
		ShutdownTimeout:   time.Second,
		Log:               logger.Discard(),
		Client:            client.NewClient(),
	}
}

func newApp(t *testing.T) *Application {
	t.Helper()
	a := NewApplication(testConfig())
	a.SetApp(echoHandler{}, downStore{}, "redis")
	t.Cleanup(func() {
		a.idempotencyStore.Stop()
		a.rateLimiter.Stop()
	})
	return a
}

func serve(a *Application, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.RemoteAddr = "203.0.113.7:5555"
	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoints(t *testing.T) {
	a := newApp(t)

	if rec := serve(a, http.MethodGet, "/health", ""); rec.Code != http.StatusOK {
		t.Errorf("/health status = %d", rec.Code)
	}
	if rec := serve(a, http.MethodGet, "/ready", ""); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("/ready status = %d, want 503 with the store down", rec.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	a := newApp(t)
	serve(a, http.MethodGet, "/api/v1/echo", "")

	rec := serve(a, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("/metrics status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "cemdon_http_requests_total") {
		t.Error("/metrics does not expose request counters")
	}
	if !strings.Contains(rec.Body.String(), "go_goroutines") {
		t.Error("/metrics does not expose runtime metrics")
	}
}

func TestMiddlewareStack(t *testing.T) {
	a := newApp(t)

	rec := serve(a, http.MethodPost, "/api/v1/echo", "{}")
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST status = %d", rec.Code)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/echo", strings.NewReader("x=1"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusUnsupportedMediaType {
		t.Errorf("form POST status = %d, want 415", rec.Code)
	}
}

func TestRateLimit(t *testing.T) {
	a := newApp(t)

	for i := 0; i < 2; i++ {
		if rec := serve(a, http.MethodGet, "/api/v1/echo", ""); rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d", i, rec.Code)
		}
	}
	if rec := serve(a, http.MethodGet, "/api/v1/echo", ""); rec.Code != http.StatusTooManyRequests {
		t.Errorf("third request status = %d, want 429", rec.Code)
	}
	if rec := serve(a, http.MethodGet, "/health", ""); rec.Code != http.StatusOK {
		t.Errorf("health must not be rate limited, got %d", rec.Code)
	}
}
