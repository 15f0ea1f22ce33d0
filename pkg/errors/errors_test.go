package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestWrap(t *testing.T) {
	originalErr := errors.New("redis connection refused")
	wrapped := Wrap(originalErr, CodeInternal, "internal error", http.StatusInternalServerError)

	if wrapped.Err != originalErr {
		t.Errorf("expected wrapped error to contain original error")
	}
	if errors.Unwrap(wrapped) != originalErr {
		t.Errorf("Unwrap() should return original error")
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without underlying error",
			appErr:   New(CodeNotFound, "session not found", http.StatusNotFound),
			expected: "NOT_FOUND: session not found",
		},
		{
			name:     "with underlying error",
			appErr:   Internal("failed to save draft", errors.New("redis down")),
			expected: "INTERNAL_ERROR: failed to save draft (caused by: redis down)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.appErr.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{"not found", NotFound("Session"), CodeNotFound, http.StatusNotFound},
		{"validation", Validation("bad", nil), CodeValidation, http.StatusUnprocessableEntity},
		{"invalid input", InvalidInput("bad body"), CodeInvalidInput, http.StatusBadRequest},
		{"conflict", Conflict("busy"), CodeConflict, http.StatusConflict},
		{"step incomplete", StepIncomplete("pick an area", nil), CodeStepIncomplete, http.StatusConflict},
		{"rate limited", RateLimited("slow down"), CodeRateLimited, http.StatusTooManyRequests},
		{"internal", Internal("boom", nil), CodeInternal, http.StatusInternalServerError},
		{"timeout", Timeout("late"), CodeTimeout, http.StatusGatewayTimeout},
		{"unavailable", Unavailable("Draft store"), CodeUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, tt.err.Code)
			}
			if tt.err.StatusCode() != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, tt.err.StatusCode())
			}
		})
	}
}

func TestNotFoundWithID(t *testing.T) {
	err := NotFoundWithID("Session", "abc")

	if err.Message != "Session not found" {
		t.Errorf("expected message 'Session not found', got %s", err.Message)
	}
	if err.Details["id"] != "abc" {
		t.Errorf("expected id 'abc', got %v", err.Details["id"])
	}
	if err.Details["resource"] != "Session" {
		t.Errorf("expected resource 'Session', got %v", err.Details["resource"])
	}
}

func TestAsAppError(t *testing.T) {
	appErr := NotFound("Session")
	regularErr := errors.New("regular error")

	if AsAppError(appErr) != appErr {
		t.Errorf("AsAppError() should return same AppError")
	}

	wrapped := fmt.Errorf("loading session: %w", appErr)
	if AsAppError(wrapped) != appErr {
		t.Errorf("AsAppError() should find an AppError inside a wrapped chain")
	}
	if !IsAppError(wrapped) {
		t.Errorf("IsAppError() should see through wrapping")
	}

	result := AsAppError(regularErr)
	if result.Code != CodeInternal {
		t.Errorf("AsAppError() should wrap regular error as internal error")
	}
	if result.Err != regularErr {
		t.Errorf("AsAppError() should wrap the original error")
	}
	if IsAppError(regularErr) {
		t.Errorf("IsAppError() should return false for regular error")
	}
}

func TestAppError_ToJSON(t *testing.T) {
	err := StepIncomplete("complete the current step", map[string]any{"step": 2})
	body := string(err.ToJSON())

	if !strings.Contains(body, CodeStepIncomplete) {
		t.Errorf("ToJSON() should contain error code, got %s", body)
	}
	if !strings.Contains(body, `"step":2`) {
		t.Errorf("ToJSON() should contain details, got %s", body)
	}
}
