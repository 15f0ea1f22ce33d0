package testutil

import (
	"testing"

	"cemdon/pkg/client"
)

// AssertStatusCode fails the test if the status code doesn't match.
func AssertStatusCode(t *testing.T, resp *client.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Fatalf("expected status %d, got %d. Body: %s", expected, resp.StatusCode, string(resp.Body))
	}
}

// AssertErrorCode fails unless the response is an error with the given code.
func AssertErrorCode(t *testing.T, resp *client.Response, status int, code string) {
	t.Helper()
	AssertStatusCode(t, resp, status)
	if got := client.GetErrorCode(resp); got != code {
		t.Fatalf("expected error code %s, got %s. Body: %s", code, got, string(resp.Body))
	}
}

// Data returns a checker that fails on a transport error or a non-2xx
// status and unwraps the data envelope into T. Call it as
// Data[T](t)(c.Areas(ctx)).
func Data[T any](t *testing.T) func(*client.Response, error) T {
	return func(resp *client.Response, err error) T {
		t.Helper()
		return DecodeData[T](t, Must(t)(resp, err))
	}
}

// DecodeData unwraps the data envelope of a success response into T.
func DecodeData[T any](t *testing.T, resp *client.Response) T {
	t.Helper()
	var out T
	if resp.StatusCode >= 300 {
		t.Fatalf("unexpected status %d. Body: %s", resp.StatusCode, string(resp.Body))
	}
	if err := resp.DecodeData(&out); err != nil {
		t.Fatalf("failed to decode response: %v. Body: %s", err, string(resp.Body))
	}
	return out
}

// Must returns a checker that fails the test on a transport error.
func Must(t *testing.T) func(*client.Response, error) *client.Response {
	return func(resp *client.Response, err error) *client.Response {
		t.Helper()
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		return resp
	}
}
