package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "cemdon/pkg/errors"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "step incomplete",
			err:        apperrors.StepIncomplete("complete the current step", nil),
			wantStatus: http.StatusConflict,
			wantCode:   apperrors.CodeStepIncomplete,
			wantMsg:    "complete the current step",
		},
		{
			name:       "validation",
			err:        apperrors.Validation("unknown area", map[string]any{"area": "x"}),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   apperrors.CodeValidation,
			wantMsg:    "unknown area",
		},
		{
			name:       "internal hides cause",
			err:        apperrors.Internal("redis exploded at 10.0.0.3", errors.New("dial tcp")),
			wantStatus: http.StatusInternalServerError,
			wantCode:   apperrors.CodeInternal,
			wantMsg:    "Internal server error",
		},
		{
			name:       "plain error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   apperrors.CodeInternal,
			wantMsg:    "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			if err := WriteError(rec, tt.err); err != nil {
				t.Fatalf("WriteError() error = %v", err)
			}
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var body ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", body.Code, tt.wantCode)
			}
			if body.Error != tt.wantMsg {
				t.Errorf("error = %q, want %q", body.Error, tt.wantMsg)
			}
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Area string `json:"area"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", `{"area":"nutricion"}`, false},
		{"empty", ``, true},
		{"unknown field", `{"area":"x","extra":1}`, true},
		{"two objects", `{"area":"x"}{"area":"y"}`, true},
		{"malformed", `{"area":`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(tt.body))
			var p payload
			err := DecodeJSON(req, &p)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !apperrors.IsAppError(err) {
				t.Errorf("expected AppError, got %T", err)
			}
		})
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded for", map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.1"}, "10.0.0.1:1234", "203.0.113.9"},
		{"real ip", map[string]string{"X-Real-IP": "198.51.100.4"}, "10.0.0.1:1234", "198.51.100.4"},
		{"remote addr", nil, "192.0.2.7:5555", "192.0.2.7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := ClientIP(req); got != tt.want {
				t.Errorf("ClientIP() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/staff?index=2&bad=x", nil)

	if v, err := QueryInt(req, "index", 0); err != nil || v != 2 {
		t.Errorf("QueryInt(index) = %d, %v", v, err)
	}
	if v, err := QueryInt(req, "missing", 7); err != nil || v != 7 {
		t.Errorf("QueryInt(missing) = %d, %v", v, err)
	}
	if _, err := QueryInt(req, "bad", 0); err == nil {
		t.Error("QueryInt(bad) expected error")
	}
}
