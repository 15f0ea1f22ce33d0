package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"cemdon/pkg/client"
)

const (
	EnvBookingURL = "TEST_BOOKING_URL"
	EnvContactURL = "TEST_CONTACT_URL"
	EnvSiteURL    = "TEST_SITE_URL"
	EnvMongoURI   = "TEST_MONGO_URI"
	EnvDBName     = "TEST_DB_NAME"

	DefaultHealthCheckTimeout = 30 * time.Second
)

// TestEnv points at a running cemdon service. Integration tests skip
// unless the service's URL variable is set.
type TestEnv struct {
	ServerURL    string
	MongoURI     string
	DatabaseName string
}

func NewTestEnv(t *testing.T, urlVar string) *TestEnv {
	t.Helper()

	serverURL := os.Getenv(urlVar)
	if serverURL == "" {
		t.Skipf("%s not set; skipping integration test", urlVar)
	}

	return &TestEnv{
		ServerURL:    serverURL,
		MongoURI:     os.Getenv(EnvMongoURI),
		DatabaseName: getEnv(EnvDBName, DefaultDatabaseName),
	}
}

// WaitForService blocks until the liveness probe answers.
func (e *TestEnv) WaitForService(t *testing.T) {
	t.Helper()

	c := client.NewHttpClient(e.ServerURL)
	if err := c.WaitForHealthy(context.Background(), e.ServerURL+"/health", DefaultHealthCheckTimeout); err != nil {
		t.Fatalf("service at %s is not healthy: %v", e.ServerURL, err)
	}
}

// Mongo connects to the deployment's database, or returns nil when the
// deployment runs without a mongo-backed store.
func (e *TestEnv) Mongo(t *testing.T) *MongoHelper {
	t.Helper()

	if e.MongoURI == "" {
		return nil
	}
	m := NewMongoHelper(t, e.MongoURI, e.DatabaseName)
	t.Cleanup(func() { m.Close(t) })
	return m
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
