package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cemdon/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func serve(t *testing.T, h *HealthHandler, path string) (int, HealthResponse) {
	t.Helper()
	router := httprouter.New()
	h.RegisterRoutes(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var body HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode %s: %v", rec.Body.String(), err)
	}
	return rec.Code, body
}

func TestHealth(t *testing.T) {
	h := NewHealthHandler(nil, "", logger.Discard())

	code, body := serve(t, h, "/health")
	if code != http.StatusOK || body.Status != "ok" {
		t.Errorf("GET /health = %d %+v", code, body)
	}
}

func TestReady(t *testing.T) {
	tests := []struct {
		name       string
		store      Pinger
		wantStatus int
		wantBody   HealthResponse
	}{
		{
			name:       "no store",
			store:      nil,
			wantStatus: http.StatusOK,
			wantBody:   HealthResponse{Status: "ready"},
		},
		{
			name:       "store up",
			store:      pingerFunc(func(context.Context) error { return nil }),
			wantStatus: http.StatusOK,
			wantBody:   HealthResponse{Status: "ready", Store: "redis: ok"},
		},
		{
			name:       "store down",
			store:      pingerFunc(func(context.Context) error { return errors.New("connection refused") }),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   HealthResponse{Status: "unavailable", Store: "redis: error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(tt.store, "redis", logger.Discard())
			code, body := serve(t, h, "/ready")
			if code != tt.wantStatus {
				t.Errorf("status = %d, want %d", code, tt.wantStatus)
			}
			if body != tt.wantBody {
				t.Errorf("body = %+v, want %+v", body, tt.wantBody)
			}
		})
	}
}

func TestReady_UsesDeadline(t *testing.T) {
	var hadDeadline bool
	h := NewHealthHandler(pingerFunc(func(ctx context.Context) error {
		_, hadDeadline = ctx.Deadline()
		return nil
	}), "mongo", logger.Discard())

	serve(t, h, "/ready")
	if !hadDeadline {
		t.Error("Ready should bound the ping with a deadline")
	}
}
